package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/party-one/internal/events"
	"github.com/pribylovaa/party-one/internal/models"
	"github.com/pribylovaa/party-one/internal/oauth"
	"github.com/pribylovaa/party-one/internal/pkg/log"
	"github.com/pribylovaa/party-one/internal/pkg/redact"
	"github.com/pribylovaa/party-one/internal/profile"
	"github.com/pribylovaa/party-one/internal/storage"
)

// Лимиты входа по паролю: не более loginLimit попыток на e-mail за loginWindow.
const (
	loginLimit  = 10
	loginWindow = 15 * time.Minute

	oauthStateTTL = 10 * time.Minute
	flowOAuth     = "oauth_google"
)

// GoogleProvider — вход через Google (см. oauth.Google).
//
//go:generate mockgen -destination=../../mocks/google.go -package=mocks github.com/pribylovaa/party-one/internal/service GoogleProvider
type GoogleProvider interface {
	AuthCodeURL(state, verifier string) string
	Exchange(ctx context.Context, code, verifier string) (*oauth.Identity, error)
}

// RegisterInput — данные формы регистрации.
type RegisterInput struct {
	Email       string
	Password    string
	Name        string
	Gender      models.Gender
	DOB         *time.Time
	ContactNo   string
	IsWhatsApp  bool
	HomeCountry models.Place
	HomeState   models.Place
	HomeCity    models.Place
}

// Register создаёт учётку по e-mail и паролю и документ профиля, затем
// отправляет письмо подтверждения. Токены не выдаются: вход возможен после
// подтверждения e-mail (если это требуется конфигурацией).
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	const op = "service.auth.Register"

	email, err := validateEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if err := s.validatePassword(in.Password); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if in.DOB != nil && in.DOB.After(s.now()) {
		return nil, fmt.Errorf("%s: %w: dob in the future", op, ErrInvalidArgument)
	}

	_, err = s.accounts.UserByEmail(ctx, email)
	if err == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
	}

	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()
	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Provider:     models.ProviderPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.accounts.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p := &models.Profile{
		UserID:      user.ID,
		Email:       email,
		Name:        strings.TrimSpace(in.Name),
		Gender:      in.Gender,
		DOB:         in.DOB,
		Contacts:    models.BuildContacts(in.ContactNo, in.IsWhatsApp),
		HomeCountry: in.HomeCountry,
		HomeState:   in.HomeState,
		HomeCity:    in.HomeCity,
		Roles:       []string{"user"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.documents.CreateProfile(ctx, p); err != nil {
		// Без профиля учётка стала бы «осиротевшей» — откатываем.
		if delErr := s.accounts.DeleteUser(ctx, user.ID); delErr != nil {
			log.From(ctx).Error("register_rollback_failed",
				slog.String("op", op),
				slog.String("user_id", user.ID.String()),
				slog.String("err", delErr.Error()),
			)
		}

		return nil, fmt.Errorf("%s: create profile: %w", op, err)
	}

	// Учётка уже создана: письмо можно запросить повторно через
	// ResendVerification.
	if err := s.sendVerification(ctx, user, events.TypeUserRegistered); err != nil {
		log.From(ctx).Error("verification_send_failed",
			slog.String("op", op),
			slog.String("user_id", user.ID.String()),
			slog.String("email", redact.Email(email)),
			slog.String("err", err.Error()),
		)
	}

	log.From(ctx).Info("user_registered",
		slog.String("user_id", user.ID.String()),
		slog.String("email", redact.Email(email)),
	)

	return user, nil
}

// VerifyEmail применяет токен из письма подтверждения.
func (s *Service) VerifyEmail(ctx context.Context, token string) error {
	const op = "service.auth.VerifyEmail"

	uid, email, err := s.validateVerifyToken(token)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.accounts.UserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	// Токен, выпущенный для прежнего адреса, недействителен.
	if user.Email != email {
		return fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if user.EmailVerified {
		return nil
	}

	if err := s.accounts.MarkEmailVerified(ctx, uid, s.now()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ResendVerification повторно отправляет письмо подтверждения не чаще
// одного раза за OTP.ResendCooldown.
func (s *Service) ResendVerification(ctx context.Context, email string) error {
	const op = "service.auth.ResendVerification"

	norm, err := validateEmail(email)
	if err != nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if err := s.allow(ctx, "verify:"+norm, 1, s.cfg.OTP.ResendCooldown); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.accounts.UserByEmail(ctx, norm)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if user.EmailVerified {
		return nil
	}

	if err := s.sendVerification(ctx, user, events.TypeVerificationResent); err != nil {
		s.resetLimit(ctx, "verify:"+norm)
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Login выполняет вход по e-mail и паролю и возвращает маршрут, на
// который следует перейти клиенту.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Session, error) {
	const op = "service.auth.Login"

	sess, err := s.login(ctx, email, password)
	if err != nil {
		s.metrics.Login(string(models.ProviderPassword), loginResult(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.Login(string(models.ProviderPassword), "ok")

	return sess, nil
}

func (s *Service) login(ctx context.Context, email, password string) (*models.Session, error) {
	norm, err := validateEmail(email)
	if err != nil {
		return nil, ErrInvalidEmail
	}

	if password == "" {
		return nil, ErrInvalidCredentials
	}

	if err := s.allow(ctx, "login:"+norm, loginLimit, loginWindow); err != nil {
		return nil, err
	}

	user, err := s.accounts.UserByEmail(ctx, norm)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if user.PasswordHash == "" || !checkPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	if user.Disabled {
		return nil, ErrUserDisabled
	}

	if s.cfg.Auth.RequireVerifiedEmail && !user.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	return s.startSession(ctx, user, false)
}

// GoogleAuthURL возвращает URL согласия Google и state, который клиент
// должен вернуть вместе с кодом.
func (s *Service) GoogleAuthURL(ctx context.Context) (string, string, error) {
	const op = "service.auth.GoogleAuthURL"

	if s.google == nil {
		return "", "", fmt.Errorf("%s: %w", op, ErrOperationNotAllowed)
	}

	state, err := s.randomToken()
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}

	verifier, err := s.randomToken()
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}

	sess := storage.WizardSession{Flow: flowOAuth, Subject: verifier, UpdatedAt: s.now()}
	if err := s.ephemeral.SaveSession(ctx, flowOAuth+":"+hashToken(state), sess, oauthStateTTL); err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}

	return s.google.AuthCodeURL(state, verifier), state, nil
}

// GoogleLogin завершает вход через Google: находит учётку по e-mail или
// создаёт её вместе с пустым профилем.
func (s *Service) GoogleLogin(ctx context.Context, code, state string) (*models.Session, error) {
	const op = "service.auth.GoogleLogin"

	provider := string(models.ProviderGoogle)

	sess, err := s.googleLogin(ctx, code, state)
	if err != nil {
		s.metrics.Login(provider, loginResult(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.Login(provider, "ok")

	return sess, nil
}

func (s *Service) googleLogin(ctx context.Context, code, state string) (*models.Session, error) {
	if s.google == nil {
		return nil, ErrOperationNotAllowed
	}

	if code == "" || state == "" {
		return nil, ErrInvalidArgument
	}

	key := flowOAuth + ":" + hashToken(state)

	saved, err := s.ephemeral.Session(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidToken
		}

		return nil, err
	}

	// state одноразовый.
	if err := s.ephemeral.DeleteSession(ctx, key); err != nil {
		return nil, err
	}

	id, err := s.google.Exchange(ctx, code, saved.Subject)
	if err != nil {
		if errors.Is(err, oauth.ErrExchange) || errors.Is(err, oauth.ErrNoEmail) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
		}

		return nil, err
	}

	user, err := s.accounts.UserByEmail(ctx, id.Email)
	switch {
	case err == nil:
		if user.Disabled {
			return nil, ErrUserDisabled
		}

		if !user.EmailVerified && id.EmailVerified {
			if err := s.accounts.MarkEmailVerified(ctx, user.ID, s.now()); err != nil {
				return nil, err
			}
			user.EmailVerified = true
		}

		return s.startSession(ctx, user, false)

	case errors.Is(err, storage.ErrNotFound):
		user, err = s.createGoogleUser(ctx, id)
		if err != nil {
			return nil, err
		}

		return s.startSession(ctx, user, true)

	default:
		return nil, err
	}
}

func (s *Service) createGoogleUser(ctx context.Context, id *oauth.Identity) (*models.User, error) {
	now := s.now()
	user := &models.User{
		ID:            uuid.New(),
		Email:         id.Email,
		Provider:      models.ProviderGoogle,
		ExternalID:    id.Subject,
		EmailVerified: id.EmailVerified,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.accounts.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}

		return nil, err
	}

	if err := s.ensureProfile(ctx, user, id.Name, id.Picture); err != nil {
		return nil, err
	}

	log.From(ctx).Info("user_created_oauth",
		slog.String("user_id", user.ID.String()),
		slog.String("email", redact.Email(user.Email)),
		slog.String("provider", string(models.ProviderGoogle)),
	)

	return user, nil
}

// ensureProfile создаёт профиль с placeholder-контактом и пустыми
// обязательными полями, если его ещё нет.
func (s *Service) ensureProfile(ctx context.Context, user *models.User, name, image string) error {
	now := s.now()
	p := &models.Profile{
		UserID:       user.ID,
		Email:        user.Email,
		Name:         name,
		Contacts:     models.BuildContacts("", false),
		Roles:        []string{"user"},
		ProfileImage: image,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.documents.CreateProfile(ctx, p); err != nil && !errors.Is(err, storage.ErrAlreadyExists) {
		return err
	}

	return nil
}

// startSession выпускает токены и определяет маршрут по полноте профиля.
func (s *Service) startSession(ctx context.Context, user *models.User, created bool) (*models.Session, error) {
	tokens, err := s.issueTokenPair(ctx, user, "")
	if err != nil {
		return nil, err
	}

	p, err := s.documents.Profile(ctx, user.ID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	return &models.Session{
		User:      *user,
		Tokens:    *tokens,
		NextRoute: string(profile.NextRoute(p)),
		Created:   created,
	}, nil
}

// Refresh обновляет пару токенов по refresh-токену (с ротацией).
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "service.auth.Refresh"

	token, err := s.validateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.accounts.UserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if user.Disabled {
		return nil, fmt.Errorf("%s: %w", op, ErrUserDisabled)
	}

	tp, err := s.issueTokenPair(ctx, user, token.RefreshHash)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tp, nil
}

// Logout отзывает refresh-токен.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	const op = "service.auth.Logout"

	revoked, err := s.accounts.RevokeRefreshTokenIfActive(ctx, hashToken(refreshToken))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if !revoked {
		return fmt.Errorf("%s: %w", op, ErrTokenRevoked)
	}

	return nil
}

// ValidateToken проверяет access-токен и возвращает данные пользователя.
func (s *Service) ValidateToken(ctx context.Context, accessToken string) (uuid.UUID, string, error) {
	const op = "service.auth.ValidateToken"

	uid, email, err := s.validateAccessToken(accessToken)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%s: %w", op, err)
	}

	return uid, email, nil
}

// Me перечитывает учётку (reload-user).
func (s *Service) Me(ctx context.Context, uid uuid.UUID) (*models.User, error) {
	const op = "service.auth.Me"

	user, err := s.accounts.UserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *Service) sendVerification(ctx context.Context, user *models.User, typ string) error {
	token, err := s.generateVerifyToken(user, s.now())
	if err != nil {
		return err
	}

	ev := events.New(typ, events.VerificationEmail{
		UserID: user.ID.String(),
		Email:  user.Email,
		Token:  token,
	})

	return s.events.Publish(ctx, ev)
}

// allow проверяет лимит; limit <= 0 отключает проверку.
func (s *Service) allow(ctx context.Context, key string, limit int, window time.Duration) error {
	ok, err := s.ephemeral.Allow(ctx, key, limit, window)
	if err != nil {
		return err
	}

	if !ok {
		return ErrTooManyRequests
	}

	return nil
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidEmail):
		return "invalid_credentials"
	case errors.Is(err, ErrTooManyRequests):
		return "rate_limited"
	case errors.Is(err, ErrUserDisabled), errors.Is(err, ErrEmailNotVerified):
		return "forbidden"
	default:
		return "error"
	}
}

// hashPassword хэширует пароль с помощью bcrypt.
func hashPassword(password string) (string, error) {
	const op = "service.auth.hashPassword"

	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(b), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// validateEmail проверяет формат e-mail, обрезает пробелы и приводит к
// нижнему регистру.
func validateEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}

	return strings.ToLower(email), nil
}

// validatePassword: не короче Auth.PasswordMinLen символов; bcrypt
// принимает не более 72 байт.
func (s *Service) validatePassword(pw string) error {
	if utf8.RuneCountInString(pw) < s.cfg.Auth.PasswordMinLen || len(pw) > 72 {
		return ErrWeakPassword
	}

	return nil
}
