// Package oauth — вход через внешних провайдеров (authorization code + PKCE).
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/pribylovaa/party-one/internal/config"
)

// DefaultUserInfoURL — OpenID Connect userinfo Google.
const DefaultUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

var (
	// ErrExchange — провайдер отклонил код авторизации.
	ErrExchange = errors.New("oauth code exchange failed")
	// ErrNoEmail — провайдер не вернул e-mail.
	ErrNoEmail = errors.New("oauth identity has no email")
)

// Identity — пользователь, подтверждённый провайдером.
type Identity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}

// Google — клиент OAuth2 Google.
type Google struct {
	cfg         *oauth2.Config
	userInfoURL string
}

// Option настраивает Google (используется в тестах для подмены эндпоинтов).
type Option func(*Google)

// WithEndpoint подменяет эндпоинты авторизации и userinfo.
func WithEndpoint(ep oauth2.Endpoint, userInfoURL string) Option {
	return func(g *Google) {
		g.cfg.Endpoint = ep
		g.userInfoURL = userInfoURL
	}
}

func NewGoogle(c config.GoogleOAuthConfig, opts ...Option) *Google {
	g := &Google{
		cfg: &oauth2.Config{
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			RedirectURL:  c.RedirectURL,
			Scopes:       c.Scopes,
			Endpoint:     google.Endpoint,
		},
		userInfoURL: DefaultUserInfoURL,
	}

	for _, o := range opts {
		o(g)
	}

	return g
}

// AuthCodeURL строит URL согласия с state и PKCE-challenge от verifier.
func (g *Google) AuthCodeURL(state, verifier string) string {
	return g.cfg.AuthCodeURL(state,
		oauth2.S256ChallengeOption(verifier),
		oauth2.SetAuthURLParam("prompt", "select_account"),
	)
}

// Exchange меняет код на токен и читает профиль пользователя.
func (g *Google) Exchange(ctx context.Context, code, verifier string) (*Identity, error) {
	const op = "oauth/Google.Exchange"

	tok, err := g.cfg.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrExchange, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := g.cfg.Client(ctx, tok).Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: userinfo: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: userinfo status %d", op, resp.StatusCode)
	}

	var info struct {
		Sub           string `json:"sub"`
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%s: decode userinfo: %w", op, err)
	}

	email := strings.ToLower(strings.TrimSpace(info.Email))
	if email == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrNoEmail)
	}

	return &Identity{
		Subject:       info.Sub,
		Email:         email,
		EmailVerified: info.EmailVerified,
		Name:          info.Name,
		Picture:       info.Picture,
	}, nil
}
