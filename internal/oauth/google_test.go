package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/pribylovaa/party-one/internal/config"
)

func newProvider(t *testing.T, userinfo map[string]any) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.Form.Get("code") != "good-code" || r.Form.Get("code_verifier") != "verifier" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer at" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(userinfo)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func newGoogle(srv *httptest.Server) *Google {
	return NewGoogle(config.GoogleOAuthConfig{
		ClientID:     "cid",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:5173/auth/google/callback",
		Scopes:       []string{"openid", "email"},
	}, WithEndpoint(oauth2.Endpoint{
		AuthURL:   srv.URL + "/auth",
		TokenURL:  srv.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}, srv.URL+"/userinfo"))
}

func TestAuthCodeURL(t *testing.T) {
	t.Parallel()

	g := newGoogle(newProvider(t, nil))

	u, err := url.Parse(g.AuthCodeURL("st", "verifier"))
	require.NoError(t, err)

	q := u.Query()
	require.Equal(t, "st", q.Get("state"))
	require.Equal(t, "cid", q.Get("client_id"))
	require.Equal(t, "S256", q.Get("code_challenge_method"))
	require.NotEmpty(t, q.Get("code_challenge"))
	require.NotEqual(t, "verifier", q.Get("code_challenge"))
}

func TestExchange_OK(t *testing.T) {
	t.Parallel()

	g := newGoogle(newProvider(t, map[string]any{
		"sub":            "g-1",
		"email":          " Ann@Example.com ",
		"email_verified": true,
		"name":           "Ann",
	}))

	id, err := g.Exchange(context.Background(), "good-code", "verifier")
	require.NoError(t, err)
	require.Equal(t, "g-1", id.Subject)
	require.Equal(t, "ann@example.com", id.Email)
	require.True(t, id.EmailVerified)
	require.Equal(t, "Ann", id.Name)
}

func TestExchange_BadCode(t *testing.T) {
	t.Parallel()

	g := newGoogle(newProvider(t, nil))

	_, err := g.Exchange(context.Background(), "bad", "verifier")
	require.ErrorIs(t, err, ErrExchange)
}

func TestExchange_NoEmail(t *testing.T) {
	t.Parallel()

	g := newGoogle(newProvider(t, map[string]any{"sub": "g-2"}))

	_, err := g.Exchange(context.Background(), "good-code", "verifier")
	require.ErrorIs(t, err, ErrNoEmail)
}
