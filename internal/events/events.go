// Package events публикует доменные события party-one во внешний брокер.
// Потребители (почтовый сервис, биллинг) подписываются по routing key,
// совпадающему с Event.Type.
package events

//go:generate mockgen -destination=../../mocks/events.go -package=mocks github.com/pribylovaa/party-one/internal/events Publisher

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Типы событий (routing keys).
const (
	TypeUserRegistered      = "user.registered"
	TypeVerificationResent  = "user.verification_resent"
	TypeOTPRequested        = "otp.requested"
	TypePasswordChanged     = "user.password_changed"
	TypeKYCSubmitted        = "kyc.submitted"
	TypeMembershipRequested = "membership.requested"
	TypeMembershipPaid      = "membership.paid"
	TypeAccountDeleted      = "account.deleted"
)

// Event — конверт события.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// New создаёт событие с новым идентификатором.
func New(typ string, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       typ,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// Publisher — контракт публикации.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

// VerificationEmail — письмо со ссылкой подтверждения e-mail.
type VerificationEmail struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// OTPEmail — письмо с одноразовым кодом.
type OTPEmail struct {
	Flow      string    `json:"flow"`
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserRef — событие, касающееся пользователя целиком.
type UserRef struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}

// MembershipRequest — заявка на членство ожидает оплаты (или оплачена).
type MembershipRequest struct {
	RequestID      string `json:"request_id"`
	UserID         string `json:"user_id"`
	MembershipID   string `json:"membership_id"`
	MembershipName string `json:"membership_name"`
	PlanID         string `json:"plan_id"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	PaymentLink    string `json:"payment_link,omitempty"`
}
