package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	apierrors "github.com/pribylovaa/party-one/internal/http/errors"
	"github.com/pribylovaa/party-one/internal/http/handlers"
	"github.com/pribylovaa/party-one/internal/http/middleware"
	"github.com/pribylovaa/party-one/internal/metrics"
	"github.com/pribylovaa/party-one/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.

	// AllowedOrigins — источники SPA для CORS; пустой список отключает CORS.
	AllowedOrigins []string
	CORSMaxAge     int
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(opts.Metrics),
	)
	if len(opts.AllowedOrigins) > 0 {
		root.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"X-Request-Id"},
			AllowCredentials: false,
			MaxAge:           opts.CORSMaxAge,
		}))
	}
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	root.NotFound(func(w http.ResponseWriter, r *http.Request) {
		apierrors.WriteError(w, r, service.ErrNotFound)
	})

	h := handlers.New(svc)
	auth := middleware.Authenticate(svc)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		sub.NotFound(func(w http.ResponseWriter, r *http.Request) {
			apierrors.WriteError(w, r, service.ErrNotFound)
		})
		registerRoutes(sub, h, auth)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, auth)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, auth middleware.Middleware) {
	// auth
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	r.Get("/auth/google/url", h.GoogleURL)
	r.Post("/auth/google/callback", h.GoogleCallback)
	r.Post("/auth/verify-email", h.VerifyEmail)
	r.Post("/auth/resend-verification", h.ResendVerification)
	r.Post("/auth/refresh", h.Refresh)
	r.Post("/auth/logout", h.Logout)

	// password reset
	r.Post("/password-reset/otp", h.SendResetOTP)
	r.Post("/password-reset/verify", h.VerifyResetOTP)
	r.Post("/password-reset/reset", h.ResetPassword)

	// locations
	r.Get("/locations/countries", h.Countries)
	r.Get("/locations/states", h.States)
	r.Get("/locations/cities", h.Cities)

	// payments: токен в теле подписан сервером
	r.Post("/payments/confirm", h.ConfirmPayment)

	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Get("/auth/me", h.Me)

		// profile
		r.Get("/profile", h.GetProfile)
		r.Patch("/profile", h.UpdateProfile)
		r.Get("/profile/status", h.ProfileStatus)

		// uploads & kyc
		r.Post("/uploads", h.UploadURL)
		r.Get("/uploads/url", h.DocumentURL)
		r.Get("/kyc", h.GetKYC)
		r.Post("/kyc", h.SubmitKYC)

		// memberships
		r.Get("/memberships", h.Memberships)
		r.Post("/memberships/requests", h.RequestMembership)
		r.Get("/memberships/requests", h.MembershipRequests)

		// account deletion
		r.Post("/account/deletion/otp", h.RequestAccountDeletion)
		r.Post("/account/deletion/verify", h.VerifyDeletionOTP)
		r.Post("/account/deletion/confirm", h.ConfirmAccountDeletion)
	})
}
