package partyclient

import (
	"context"
	"net/http"

	"github.com/pribylovaa/party-one/pkg/api"
)

// Register создаёт учётную запись. Войти можно после подтверждения email.
func (c *Client) Register(ctx context.Context, in api.RegisterRequest) (*api.User, error) {
	var u api.User
	if err := c.do(ctx, request{method: http.MethodPost, path: "/auth/register", body: in}, &u); err != nil {
		return nil, err
	}

	return &u, nil
}

// Login входит по email и паролю. Токены запоминаются в клиенте, сессия
// целиком записывается в SessionStore.
func (c *Client) Login(ctx context.Context, email, password string) (*api.Session, error) {
	var s api.Session
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   api.LoginRequest{Email: email, Password: password},
	}, &s)
	if err != nil {
		return nil, err
	}

	if err := c.startSession(&s); err != nil {
		return &s, err
	}

	return &s, nil
}

// GoogleURL возвращает адрес согласия Google и state для callback.
func (c *Client) GoogleURL(ctx context.Context) (*api.GoogleURLResponse, error) {
	var out api.GoogleURLResponse
	if err := c.do(ctx, request{method: http.MethodGet, path: "/auth/google/url"}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GoogleLogin завершает вход через Google кодом авторизации.
func (c *Client) GoogleLogin(ctx context.Context, code, state string) (*api.Session, error) {
	var s api.Session
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/google/callback",
		body:   api.GoogleCallbackRequest{Code: code, State: state},
	}, &s)
	if err != nil {
		return nil, err
	}

	if err := c.startSession(&s); err != nil {
		return &s, err
	}

	return &s, nil
}

func (c *Client) startSession(s *api.Session) error {
	c.SetTokens(s.Tokens)

	if c.store == nil {
		return nil
	}

	user, tokens := s.User, s.Tokens
	_, err := c.store.Replace(Session{User: &user, Tokens: &tokens, NextRoute: s.NextRoute})

	return err
}

func (c *Client) VerifyEmail(ctx context.Context, token string) error {
	return c.do(ctx, request{method: http.MethodPost, path: "/auth/verify-email", body: api.TokenRequest{Token: token}}, nil)
}

// ResendVerification повторно отправляет письмо (не чаще раза в минуту).
func (c *Client) ResendVerification(ctx context.Context, email string) error {
	return c.do(ctx, request{method: http.MethodPost, path: "/auth/resend-verification", body: api.EmailRequest{Email: email}}, nil)
}

// Refresh обменивает refresh-токен на новую пару.
func (c *Client) Refresh(ctx context.Context) (*api.Tokens, error) {
	var t api.Tokens
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/refresh",
		body:   api.RefreshRequest{RefreshToken: c.Tokens().RefreshToken},
	}, &t)
	if err != nil {
		return nil, err
	}

	c.SetTokens(t)

	if c.store != nil {
		if _, err := c.store.Merge(Session{Tokens: &t}); err != nil {
			return &t, err
		}
	}

	return &t, nil
}

// Logout отзывает refresh-токен. Локальная сессия очищается даже при
// ошибке сервера.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/logout",
		body:   api.RefreshRequest{RefreshToken: c.Tokens().RefreshToken},
	}, nil)

	c.SetTokens(api.Tokens{})

	if c.store != nil {
		if cerr := c.store.Clear(); cerr != nil && err == nil {
			err = cerr
		}
	}

	return err
}

// Me перечитывает учётную запись текущего пользователя.
func (c *Client) Me(ctx context.Context) (*api.User, error) {
	var u api.User
	if err := c.do(ctx, request{method: http.MethodGet, path: "/auth/me", auth: true}, &u); err != nil {
		return nil, err
	}

	return &u, nil
}
