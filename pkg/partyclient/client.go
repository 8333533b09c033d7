// Package partyclient — Go-клиент HTTP API party-one.
//
// Client покрывает все эндпойнты сервиса типизированными методами и
// разбирает ошибки сервера в *APIError. Вместе с клиентом живут:
//   - Messages: тексты ошибок входа и регистрации для пользователя;
//   - SessionStore: локальная копия сессии и профиля;
//   - PasswordResetWizard: пошаговый сброс пароля.
//
// Повторов и backoff клиент не делает.
package partyclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pribylovaa/party-one/pkg/api"
)

const defaultTimeout = 30 * time.Second

// Client — клиент API. Безопасен для конкурентного использования.
type Client struct {
	baseURL string
	http    *http.Client
	store   *SessionStore

	mu     sync.RWMutex
	tokens api.Tokens
}

// Option настраивает Client.
type Option func(*Client)

// WithHTTPClient подменяет HTTP-клиент (по умолчанию таймаут 30s).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithSessionStore подключает локальное хранилище сессии. Токены из него
// подхватываются при создании клиента; вход, обновление токенов и выход
// обновляют его.
func WithSessionStore(s *SessionStore) Option {
	return func(c *Client) { c.store = s }
}

// New создаёт клиент для baseURL вида https://host/api.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}

	for _, o := range opts {
		o(c)
	}

	if c.store != nil {
		if s := c.store.Load(); s.Tokens != nil {
			c.tokens = *s.Tokens
		}
	}

	return c
}

// SetTokens задаёт токены, которыми подписываются защищённые запросы.
func (c *Client) SetTokens(t api.Tokens) {
	c.mu.Lock()
	c.tokens = t
	c.mu.Unlock()
}

// Tokens возвращает текущие токены.
func (c *Client) Tokens() api.Tokens {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tokens
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	auth   bool
}

// do выполняет запрос и декодирует успешный ответ в out (если out != nil).
func (c *Client) do(ctx context.Context, r request, out any) error {
	var body io.Reader
	if r.body != nil {
		raw, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("partyclient: marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return fmt.Errorf("partyclient: build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if r.auth {
		if tok := c.Tokens().AccessToken; tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %s %s: %v", ErrNetwork, r.method, r.path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("partyclient: decode %s %s: %w", r.method, r.path, err)
	}

	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var er api.ErrorResponse
	if err := json.Unmarshal(raw, &er); err == nil && er.Error.Code != "" {
		apiErr.Code = er.Error.Code
		apiErr.Message = er.Error.Message
		apiErr.RequestID = er.Error.RequestID
		return apiErr
	}

	apiErr.Code = api.CodeInternal
	apiErr.Message = http.StatusText(resp.StatusCode)

	return apiErr
}

// APIError — ошибка, которую вернул сервер.
type APIError struct {
	Status    int
	Code      string
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("party-one: %d %s: %s (request %s)", e.Status, e.Code, e.Message, e.RequestID)
	}
	return fmt.Sprintf("party-one: %d %s: %s", e.Status, e.Code, e.Message)
}

// ErrNetwork — запрос не дошёл до сервера или ответ не получен.
var ErrNetwork = errors.New("partyclient: network request failed")

// Code возвращает код ошибки API. Для ErrNetwork это
// auth/network-request-failed, для прочих ошибок пустая строка.
func Code(err error) string {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Code
	case errors.Is(err, ErrNetwork):
		return api.CodeNetworkFailed
	default:
		return ""
	}
}

// IsCode сообщает, что err — ошибка API с кодом code.
func IsCode(err error, code string) bool {
	return err != nil && Code(err) == code
}
