package partyclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pribylovaa/party-one/pkg/api"
)

// UploadURL запрашивает presigned URL для загрузки документа KYC.
// Файл загружается PUT-запросом на UploadTicket.UploadURL с заголовками
// UploadTicket.Headers.
func (c *Client) UploadURL(ctx context.Context, in api.UploadRequest) (*api.UploadTicket, error) {
	var t api.UploadTicket
	if err := c.do(ctx, request{method: http.MethodPost, path: "/uploads", body: in, auth: true}, &t); err != nil {
		return nil, err
	}

	return &t, nil
}

// DocumentURL возвращает временную ссылку на скачивание документа.
func (c *Client) DocumentURL(ctx context.Context, key string) (string, error) {
	var out api.URLResponse
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/uploads/url",
		query:  url.Values{"key": {key}},
		auth:   true,
	}, &out)
	if err != nil {
		return "", err
	}

	return out.URL, nil
}

// KYC возвращает анкету; если её нет — *APIError с кодом not-found.
func (c *Client) KYC(ctx context.Context) (*api.KYC, error) {
	var k api.KYC
	if err := c.do(ctx, request{method: http.MethodGet, path: "/kyc", auth: true}, &k); err != nil {
		return nil, err
	}

	return &k, nil
}

func (c *Client) SubmitKYC(ctx context.Context, in api.KYC) (*api.KYC, error) {
	var k api.KYC
	if err := c.do(ctx, request{method: http.MethodPost, path: "/kyc", body: in, auth: true}, &k); err != nil {
		return nil, err
	}

	return &k, nil
}
