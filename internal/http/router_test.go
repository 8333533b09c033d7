package http

// Сквозные тесты REST-слоя: настоящий роутер и service.Service поверх
// gomock-хранилищ. Проверяем маршрутизацию, аутентификацию, формат
// тел и маппинг ошибок в коды.

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/party-one/internal/config"
	"github.com/pribylovaa/party-one/internal/models"
	"github.com/pribylovaa/party-one/internal/service"
	"github.com/pribylovaa/party-one/internal/storage"
	"github.com/pribylovaa/party-one/mocks"
	"github.com/pribylovaa/party-one/pkg/api"
)

const (
	testSecret = "router-secret"
	basePath   = "/api"
)

type env struct {
	h    http.Handler
	acc  *mocks.MockAccountStorage
	docs *mocks.MockDocumentStorage
	eph  *mocks.MockEphemeralStorage
}

func newEnv(t *testing.T) *env {
	t.Helper()

	ctrl := gomock.NewController(t)
	e := &env{
		acc:  mocks.NewMockAccountStorage(ctrl),
		docs: mocks.NewMockDocumentStorage(ctrl),
		eph:  mocks.NewMockEphemeralStorage(ctrl),
	}

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:            testSecret,
			AccessTokenTTL:       time.Minute,
			RefreshTokenTTL:      time.Hour,
			VerifyTokenTTL:       time.Hour,
			Issuer:               "party-one",
			Audience:             []string{"party-one-web"},
			RequireVerifiedEmail: true,
			PasswordMinLen:       6,
		},
		OTP: config.OTPConfig{TTL: time.Minute, MaxAttempts: 3, SessionTTL: time.Minute},
	}

	svc := service.New(service.Deps{
		Accounts:  e.acc,
		Documents: e.docs,
		Ephemeral: e.eph,
	}, cfg)

	e.h = NewRouter(svc, Options{
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Timeout:        time.Second,
		BasePath:       basePath,
		AllowedOrigins: []string{"https://app.party.one"},
		CORSMaxAge:     60,
	})

	return e
}

// accessToken подписывает access-токен так же, как это делает сервис.
func accessToken(t *testing.T, uid uuid.UUID, email string) string {
	t.Helper()

	now := time.Now()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":   uid.String(),
		"email": email,
		"sub":   uid.String(),
		"iss":   "party-one",
		"aud":   []string{"party-one-web"},
		"iat":   now.Unix(),
		"exp":   now.Add(time.Minute).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return tok
}

func (e *env) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, basePath+path, rd)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.h.ServeHTTP(rr, req)

	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func requireError(t *testing.T, rr *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	require.Equal(t, status, rr.Code, rr.Body.String())
	resp := decode[api.ErrorResponse](t, rr)
	require.False(t, resp.Success)
	require.Equal(t, code, resp.Error.Code)
	require.Equal(t, rr.Header().Get("X-Request-Id"), resp.Error.RequestID)
}

func fullProfile(uid uuid.UUID) *models.Profile {
	dob := time.Date(1992, 3, 4, 0, 0, 0, 0, time.UTC)
	return &models.Profile{
		UserID:      uid,
		Email:       "ann@example.com",
		Name:        "Ann",
		Gender:      models.GenderFemale,
		DOB:         &dob,
		Contacts:    []models.Contact{{ContactNo: "+15550100", Mode: models.ContactPhone, IsActive: true}},
		HomeCountry: models.Place{ID: "US", Name: "United States"},
		HomeState:   models.Place{ID: "CA", Name: "California"},
		HomeCity:    models.Place{ID: "LA", Name: "Los Angeles"},
	}
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		ID:            uuid.New(),
		Email:         "ann@example.com",
		PasswordHash:  string(hash),
		Provider:      models.ProviderPassword,
		EmailVerified: true,
	}

	t.Run("ok_routes_to_membership", func(t *testing.T) {
		e := newEnv(t)
		e.eph.EXPECT().Allow(gomock.Any(), "login:ann@example.com", gomock.Any(), gomock.Any()).Return(true, nil)
		e.acc.EXPECT().UserByEmail(gomock.Any(), "ann@example.com").Return(user, nil)
		e.acc.EXPECT().SaveRefreshToken(gomock.Any(), gomock.Any()).Return(nil)
		e.docs.EXPECT().Profile(gomock.Any(), user.ID).Return(fullProfile(user.ID), nil)

		rr := e.do(t, http.MethodPost, "/auth/login", "", api.LoginRequest{Email: "ann@example.com", Password: "secret1"})
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		s := decode[api.Session](t, rr)
		require.Equal(t, "/membership-request", s.NextRoute)
		require.Equal(t, user.ID.String(), s.User.ID)
		require.NotEmpty(t, s.Tokens.AccessToken)
		require.NotEmpty(t, s.Tokens.RefreshToken)
	})

	t.Run("wrong_password", func(t *testing.T) {
		e := newEnv(t)
		e.eph.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		e.acc.EXPECT().UserByEmail(gomock.Any(), "ann@example.com").Return(user, nil)

		rr := e.do(t, http.MethodPost, "/auth/login", "", api.LoginRequest{Email: "ann@example.com", Password: "nope"})
		requireError(t, rr, http.StatusUnauthorized, api.CodeInvalidCredential)
	})

	t.Run("rate_limited", func(t *testing.T) {
		e := newEnv(t)
		e.eph.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		rr := e.do(t, http.MethodPost, "/auth/login", "", api.LoginRequest{Email: "ann@example.com", Password: "secret1"})
		requireError(t, rr, http.StatusTooManyRequests, api.CodeTooManyRequests)
	})

	t.Run("invalid_email", func(t *testing.T) {
		e := newEnv(t)
		rr := e.do(t, http.MethodPost, "/auth/login", "", api.LoginRequest{Email: "not-an-email", Password: "x"})
		requireError(t, rr, http.StatusBadRequest, api.CodeInvalidEmail)
	})
}

func TestRegister_BadBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown_field", `{"email":"a@b.co","password":"secret1","role":"admin"}`},
		{"not_json", `email=a@b.co`},
		{"trailing", `{"email":"a@b.co","password":"secret1"} {}`},
		{"bad_dob", `{"email":"a@b.co","password":"secret1","dob":"04/03/1992"}`},
		{"bad_gender", `{"email":"a@b.co","password":"secret1","gender":"robot"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			rr := e.do(t, http.MethodPost, "/auth/register", "", tt.body)
			requireError(t, rr, http.StatusBadRequest, api.CodeInvalidArgument)
		})
	}
}

func TestProtectedRoutes_RequireBearer(t *testing.T) {
	e := newEnv(t)

	for _, path := range []string{"/auth/me", "/profile", "/profile/status", "/kyc", "/memberships", "/memberships/requests"} {
		rr := e.do(t, http.MethodGet, path, "", nil)
		requireError(t, rr, http.StatusUnauthorized, api.CodeUnauthenticated)
	}

	rr := e.do(t, http.MethodGet, "/profile", "garbage", nil)
	requireError(t, rr, http.StatusUnauthorized, api.CodeInvalidToken)
}

func TestProfile_GetAndStatus(t *testing.T) {
	uid := uuid.New()
	tok := accessToken(t, uid, "ann@example.com")

	t.Run("get_nulls_for_unset_fields", func(t *testing.T) {
		e := newEnv(t)
		e.docs.EXPECT().Profile(gomock.Any(), uid).Return(&models.Profile{
			UserID:   uid,
			Email:    "ann@example.com",
			Contacts: models.BuildContacts("", false),
		}, nil)

		rr := e.do(t, http.MethodGet, "/profile", tok, nil)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		raw := decode[map[string]any](t, rr)
		require.Nil(t, raw["gender"])
		require.Nil(t, raw["dob"])
		require.Nil(t, raw["home_country"])
		require.Nil(t, raw["active_membership_name"])
		require.Equal(t, []any{}, raw["role"])
	})

	t.Run("status_placeholder_contact", func(t *testing.T) {
		e := newEnv(t)
		p := fullProfile(uid)
		p.Contacts = models.BuildContacts("", false)
		e.docs.EXPECT().Profile(gomock.Any(), uid).Return(p, nil)
		e.docs.EXPECT().KYCByUser(gomock.Any(), uid).Return(nil, storage.ErrNotFound)

		rr := e.do(t, http.MethodGet, "/profile/status", tok, nil)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		st := decode[api.ProfileStatus](t, rr)
		require.True(t, st.PlaceholderContact)
		require.False(t, st.HasKYC)
		require.Equal(t, "kyc_required", st.Eligibility)
	})

	t.Run("missing_profile", func(t *testing.T) {
		e := newEnv(t)
		e.docs.EXPECT().Profile(gomock.Any(), uid).Return(nil, storage.ErrNotFound)

		rr := e.do(t, http.MethodGet, "/profile", tok, nil)
		requireError(t, rr, http.StatusNotFound, api.CodeNotFound)
	})
}

func TestUpdateProfile(t *testing.T) {
	uid := uuid.New()
	tok := accessToken(t, uid, "ann@example.com")

	t.Run("merges_fields", func(t *testing.T) {
		e := newEnv(t)
		e.docs.EXPECT().MergeProfile(gomock.Any(), uid, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, upd models.ProfileUpdate, _ time.Time) (*models.Profile, error) {
				require.Equal(t, "Ann", *upd.Name)
				require.Equal(t, models.GenderFemale, *upd.Gender)
				require.Equal(t, "1992-03-04", upd.DOB.Format(api.DateLayout))
				require.Equal(t, "CA", upd.HomeState.ID)
				require.Nil(t, upd.HomeCity)
				return fullProfile(uid), nil
			})

		gender, dob, name := "female", "1992-03-04", "Ann"
		rr := e.do(t, http.MethodPatch, "/profile", tok, api.ProfileUpdate{
			Name:      &name,
			Gender:    &gender,
			DOB:       &dob,
			HomeState: &api.Place{ID: "CA", Name: "California"},
		})
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		p := decode[api.Profile](t, rr)
		require.Equal(t, "Female", *p.Gender)
		require.Equal(t, "1992-03-04", *p.DOB)
	})

	t.Run("membership_is_not_writable", func(t *testing.T) {
		e := newEnv(t)
		rr := e.do(t, http.MethodPatch, "/profile", tok, `{"active_membership_name":"Solitaire"}`)
		requireError(t, rr, http.StatusBadRequest, api.CodeInvalidArgument)
	})
}

func TestLocations(t *testing.T) {
	e := newEnv(t)
	e.acc.EXPECT().Countries(gomock.Any()).Return([]models.Country{{ID: "101", Name: "India", ISO2: "IN"}}, nil)
	e.acc.EXPECT().Cities(gomock.Any(), "101", "4008").Return([]models.City{{ID: "133", CountryID: "101", StateID: "4008", Name: "Mumbai"}}, nil)

	rr := e.do(t, http.MethodGet, "/locations/countries", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, []api.Country{{ID: "101", Name: "India", ISO2: "IN"}}, decode[[]api.Country](t, rr))

	rr = e.do(t, http.MethodGet, "/locations/cities?country=101&state=4008", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, decode[[]api.City](t, rr), 1)

	rr = e.do(t, http.MethodGet, "/locations/states", "", nil)
	requireError(t, rr, http.StatusBadRequest, api.CodeInvalidArgument)
}

func TestMemberships_FilteredByCurrentTier(t *testing.T) {
	uid := uuid.New()
	tok := accessToken(t, uid, "ann@example.com")

	e := newEnv(t)
	p := fullProfile(uid)
	p.ActiveMembershipName = "Platinum"
	e.docs.EXPECT().Profile(gomock.Any(), uid).Return(p, nil)
	e.docs.EXPECT().Memberships(gomock.Any()).Return([]models.Membership{
		{ID: "1", Name: "Silver"}, {ID: "2", Name: "Gold"}, {ID: "3", Name: "Platinum"},
		{ID: "4", Name: "Amethyst"}, {ID: "5", Name: "Solitaire"},
	}, nil)

	rr := e.do(t, http.MethodGet, "/memberships", tok, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	resp := decode[api.MembershipsResponse](t, rr)
	require.Equal(t, "Platinum", resp.Current)

	got := make([]string, 0, len(resp.Memberships))
	for _, m := range resp.Memberships {
		got = append(got, m.Name)
	}
	require.Equal(t, []string{"Amethyst", "Solitaire"}, got)
}

func TestKYC_NotSubmitted(t *testing.T) {
	uid := uuid.New()
	e := newEnv(t)
	e.docs.EXPECT().KYCByUser(gomock.Any(), uid).Return(nil, storage.ErrNotFound)

	rr := e.do(t, http.MethodGet, "/kyc", accessToken(t, uid, "ann@example.com"), nil)
	requireError(t, rr, http.StatusNotFound, api.CodeNotFound)
}

func TestUploads_DisabledWithoutFileStorage(t *testing.T) {
	uid := uuid.New()
	e := newEnv(t)

	rr := e.do(t, http.MethodPost, "/uploads", accessToken(t, uid, "ann@example.com"),
		api.UploadRequest{Kind: "govt_id_front", ContentType: "image/jpeg", Size: 10})
	requireError(t, rr, http.StatusServiceUnavailable, api.CodeUploadsDisabled)
}

func TestPasswordReset_Validation(t *testing.T) {
	e := newEnv(t)

	rr := e.do(t, http.MethodPost, "/password-reset/verify", "", api.OTPRequest{Email: "ann@example.com", OTP: "12a4"})
	requireError(t, rr, http.StatusBadRequest, api.CodeOTPInvalid)

	rr = e.do(t, http.MethodPost, "/password-reset/reset", "", api.ResetPasswordRequest{
		Email: "ann@example.com", Ticket: "t", Password: "secret1", ConfirmPassword: "secret2",
	})
	requireError(t, rr, http.StatusBadRequest, api.CodePasswordMismatch)
}

func TestUnknownRoute_JSON404(t *testing.T) {
	e := newEnv(t)
	rr := e.do(t, http.MethodGet, "/nope", "", nil)
	requireError(t, rr, http.StatusNotFound, api.CodeNotFound)
}

func TestCORS_Preflight(t *testing.T) {
	e := newEnv(t)

	req := httptest.NewRequest(http.MethodOptions, basePath+"/auth/login", nil)
	req.Header.Set("Origin", "https://app.party.one")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	rr := httptest.NewRecorder()
	e.h.ServeHTTP(rr, req)

	require.Equal(t, "https://app.party.one", rr.Header().Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://evil.example")
	rr = httptest.NewRecorder()
	e.h.ServeHTTP(rr, req)
	require.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
