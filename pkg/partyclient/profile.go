package partyclient

import (
	"context"
	"errors"
	"net/http"

	"github.com/pribylovaa/party-one/pkg/api"
)

// Profile читает профиль с сервера и сохраняет его в SessionStore.
func (c *Client) Profile(ctx context.Context) (*api.Profile, error) {
	var p api.Profile
	if err := c.do(ctx, request{method: http.MethodGet, path: "/profile", auth: true}, &p); err != nil {
		return nil, err
	}

	if c.store != nil {
		if err := c.store.setProfile(&p); err != nil {
			return &p, err
		}
	}

	return &p, nil
}

// ProfileWithFallback читает профиль с сервера, а если запрос не удался,
// возвращает сохранённую копию из SessionStore; cached=true в этом случае.
// Ошибки аутентификации (401) не маскируются.
func (c *Client) ProfileWithFallback(ctx context.Context) (p *api.Profile, cached bool, err error) {
	p, err = c.Profile(ctx)
	if err == nil {
		return p, false, nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
		return nil, false, err
	}

	if c.store != nil {
		if s := c.store.Load(); s.Profile != nil {
			return s.Profile, true, nil
		}
	}

	return nil, false, err
}

// UpdateProfile отправляет частичное обновление. Сервер отвечает полным
// профилем, он и сохраняется локально.
func (c *Client) UpdateProfile(ctx context.Context, upd api.ProfileUpdate) (*api.Profile, error) {
	var p api.Profile
	err := c.do(ctx, request{method: http.MethodPatch, path: "/profile", body: upd, auth: true}, &p)
	if err != nil {
		return nil, err
	}

	if c.store != nil {
		if err := c.store.setProfile(&p); err != nil {
			return &p, err
		}
	}

	return &p, nil
}

func (c *Client) ProfileStatus(ctx context.Context) (*api.ProfileStatus, error) {
	var st api.ProfileStatus
	if err := c.do(ctx, request{method: http.MethodGet, path: "/profile/status", auth: true}, &st); err != nil {
		return nil, err
	}

	return &st, nil
}
