package partyclient

import (
	"context"
	"net/http"

	"github.com/pribylovaa/party-one/pkg/api"
)

// RequestAccountDeletion отправляет OTP на email текущего пользователя.
func (c *Client) RequestAccountDeletion(ctx context.Context) error {
	return c.do(ctx, request{method: http.MethodPost, path: "/account/deletion/otp", auth: true}, nil)
}

func (c *Client) VerifyDeletionOTP(ctx context.Context, code string) (string, error) {
	var out api.TicketResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/account/deletion/verify",
		body:   api.OTPRequest{OTP: code},
		auth:   true,
	}, &out)
	if err != nil {
		return "", err
	}

	return out.Ticket, nil
}

// ConfirmAccountDeletion удаляет аккаунт и очищает локальную сессию.
func (c *Client) ConfirmAccountDeletion(ctx context.Context, ticket string) error {
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/account/deletion/confirm",
		body:   api.TicketRequest{Ticket: ticket},
		auth:   true,
	}, nil)
	if err != nil {
		return err
	}

	c.SetTokens(api.Tokens{})
	if c.store != nil {
		return c.store.Clear()
	}

	return nil
}
