package partyclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/party-one/pkg/api"
)

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func writeErr(t *testing.T, w http.ResponseWriter, status int, code string) {
	writeJSON(t, w, status, api.ErrorResponse{Error: api.Error{Code: code, Message: code, RequestID: "rid"}})
}

func newServer(t *testing.T, mux *http.ServeMux) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLogin_StoresSessionAndSignsRequests(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, "ann@example.com", in.Email)

		writeJSON(t, w, http.StatusOK, api.Session{
			User:      api.User{ID: "u1", Email: in.Email},
			Tokens:    api.Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"},
			NextRoute: "/form",
		})
	})
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, api.User{ID: "u1"})
	})
	srv := newServer(t, mux)

	store, err := OpenSessionStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	c := New(srv.URL+"/api/", WithSessionStore(store))

	s, err := c.Login(context.Background(), "ann@example.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, "/form", s.NextRoute)

	saved := store.Load()
	require.Equal(t, int64(1), saved.Version)
	require.Equal(t, "refresh-1", saved.Tokens.RefreshToken)
	require.Equal(t, "/form", saved.NextRoute)

	u, err := c.Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)

	// Новый клиент подхватывает токены из хранилища.
	c2 := New(srv.URL+"/api", WithSessionStore(store))
	require.Equal(t, "access-1", c2.Tokens().AccessToken)
}

func TestLogin_ErrorMessages(t *testing.T) {
	tcs := []struct {
		code string
		want string
	}{
		{api.CodeInvalidCredential, "Invalid email or password."},
		{api.CodeUserNotFound, "No account found with this email."},
		{api.CodeUserDisabled, "This account has been disabled."},
		{api.CodeTooManyRequests, "Too many failed attempts. Please try again later."},
		{api.CodeEmailNotVerified, "Login failed. Please try again."},
	}

	for _, tc := range tcs {
		t.Run(tc.code, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
				writeErr(t, w, http.StatusUnauthorized, tc.code)
			})
			c := New(newServer(t, mux).URL)

			_, err := c.Login(context.Background(), "a@b.co", "x")
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, tc.code, apiErr.Code)
			require.Equal(t, "rid", apiErr.RequestID)
			require.Equal(t, tc.want, LoginMessage(err))
		})
	}
}

func TestRegisterMessage(t *testing.T) {
	require.Equal(t, "This email is already registered.", RegisterMessage(&APIError{Code: api.CodeEmailInUse}))
	require.Equal(t, "Password is too weak.", RegisterMessage(&APIError{Code: api.CodeWeakPassword}))
	require.Equal(t, "Email/password accounts are not enabled.", RegisterMessage(&APIError{Code: api.CodeOperationNotAllow}))
	require.Equal(t, "Registration failed. Please try again.", RegisterMessage(&APIError{Code: api.CodeInternal}))
	require.Equal(t, "Registration failed. Please try again.", RegisterMessage(nil))
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url)
	_, err := c.Login(context.Background(), "a@b.co", "x")
	require.ErrorIs(t, err, ErrNetwork)
	require.Equal(t, api.CodeNetworkFailed, Code(err))
	require.Equal(t, "Network error. Please check your connection.", LoginMessage(err))
	require.Equal(t, "Network error. Please check your connection.", RegisterMessage(err))
}

func TestNonJSONErrorBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /locations/countries", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})
	c := New(newServer(t, mux).URL)

	_, err := c.Countries(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.Status)
	require.Equal(t, api.CodeInternal, apiErr.Code)
}

func TestLocations_QueryParams(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /locations/cities", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "in", r.URL.Query().Get("country"))
		require.Equal(t, "mh", r.URL.Query().Get("state"))
		writeJSON(t, w, http.StatusOK, []api.City{{ID: "mum", Name: "Mumbai"}})
	})
	c := New(newServer(t, mux).URL)

	cities, err := c.Cities(context.Background(), "in", "mh")
	require.NoError(t, err)
	require.Len(t, cities, 1)
	require.Equal(t, "Mumbai", cities[0].Name)
}

func TestProfileWithFallback(t *testing.T) {
	var mode atomic.Int32 // 0 — ok, 1 — 500, 2 — 401

	mux := http.NewServeMux()
	mux.HandleFunc("GET /profile", func(w http.ResponseWriter, r *http.Request) {
		switch mode.Load() {
		case 1:
			writeErr(t, w, http.StatusInternalServerError, api.CodeInternal)
		case 2:
			writeErr(t, w, http.StatusUnauthorized, api.CodeTokenExpired)
		default:
			writeJSON(t, w, http.StatusOK, api.Profile{UserID: "u1", Name: "Ann"})
		}
	})

	store, err := OpenSessionStore("")
	require.NoError(t, err)
	c := New(newServer(t, mux).URL, WithSessionStore(store))
	c.SetTokens(api.Tokens{AccessToken: "a"})

	p, cached, err := c.ProfileWithFallback(context.Background())
	require.NoError(t, err)
	require.False(t, cached)
	require.Equal(t, "Ann", p.Name)

	mode.Store(1)
	p, cached, err = c.ProfileWithFallback(context.Background())
	require.NoError(t, err)
	require.True(t, cached)
	require.Equal(t, "Ann", p.Name)

	mode.Store(2)
	_, _, err = c.ProfileWithFallback(context.Background())
	require.True(t, IsCode(err, api.CodeTokenExpired))
}

func TestProfileWithFallback_NoCache(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /profile", func(w http.ResponseWriter, r *http.Request) {
		writeErr(t, w, http.StatusInternalServerError, api.CodeInternal)
	})
	c := New(newServer(t, mux).URL)

	_, cached, err := c.ProfileWithFallback(context.Background())
	require.Error(t, err)
	require.False(t, cached)
}

func TestLogout_ClearsSessionEvenOnError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		var in api.RefreshRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, "r1", in.RefreshToken)
		writeErr(t, w, http.StatusUnauthorized, api.CodeTokenRevoked)
	})

	store, err := OpenSessionStore("")
	require.NoError(t, err)
	_, err = store.Replace(Session{Tokens: &api.Tokens{AccessToken: "a1", RefreshToken: "r1"}})
	require.NoError(t, err)

	c := New(newServer(t, mux).URL, WithSessionStore(store))

	err = c.Logout(context.Background())
	require.True(t, IsCode(err, api.CodeTokenRevoked))
	require.Empty(t, c.Tokens().AccessToken)
	require.Nil(t, store.Load().Tokens)
}
