package partyclient

import (
	"context"
	"net/http"

	"github.com/pribylovaa/party-one/pkg/api"
)

func (c *Client) SendResetOTP(ctx context.Context, email string) error {
	return c.do(ctx, request{method: http.MethodPost, path: "/password-reset/otp", body: api.EmailRequest{Email: email}}, nil)
}

// VerifyResetOTP проверяет код и возвращает билет для ResetPassword.
func (c *Client) VerifyResetOTP(ctx context.Context, email, code string) (string, error) {
	var out api.TicketResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/password-reset/verify",
		body:   api.OTPRequest{Email: email, OTP: code},
	}, &out)
	if err != nil {
		return "", err
	}

	return out.Ticket, nil
}

func (c *Client) ResetPassword(ctx context.Context, in api.ResetPasswordRequest) error {
	return c.do(ctx, request{method: http.MethodPost, path: "/password-reset/reset", body: in}, nil)
}
