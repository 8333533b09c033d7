package partyclient

import (
	"context"
	"net/http"

	"github.com/pribylovaa/party-one/pkg/api"
)

// Memberships возвращает уровни, доступные при текущем членстве.
func (c *Client) Memberships(ctx context.Context) (*api.MembershipsResponse, error) {
	var out api.MembershipsResponse
	if err := c.do(ctx, request{method: http.MethodGet, path: "/memberships", auth: true}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// RequestMembership создаёт заявку; в ответе ссылка на оплату.
func (c *Client) RequestMembership(ctx context.Context, in api.MembershipRequestInput) (*api.MembershipRequest, error) {
	var out api.MembershipRequest
	err := c.do(ctx, request{method: http.MethodPost, path: "/memberships/requests", body: in, auth: true}, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) MembershipRequests(ctx context.Context) ([]api.MembershipRequest, error) {
	var out []api.MembershipRequest
	if err := c.do(ctx, request{method: http.MethodGet, path: "/memberships/requests", auth: true}, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ConfirmPayment подтверждает оплату подписанным токеном из ссылки.
func (c *Client) ConfirmPayment(ctx context.Context, token string) (*api.MembershipRequest, error) {
	var out api.MembershipRequest
	err := c.do(ctx, request{method: http.MethodPost, path: "/payments/confirm", body: api.PaymentConfirmRequest{Token: token}}, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}
