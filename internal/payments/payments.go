// Package payments строит подписанные ссылки на оплату заявки на членство
// и проверяет подтверждения оплаты, приходящие обратно от биллинга.
//
// Ссылка и подтверждение — разные токены: ссылку подписывает party-one
// секретом ссылок (аудитория payments-checkout), подтверждение подписывает
// биллинг секретом webhook (аудитория payments-confirm). Токен из ссылки
// оплату не подтверждает.
package payments

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidLink — подпись/срок действия/состав токена не прошли проверку.
	ErrInvalidLink = errors.New("invalid payment token")
	// ErrConfirmDisabled — секрет webhook не задан, подтверждения не принимаются.
	ErrConfirmDisabled = errors.New("payment confirmations are disabled")
)

const (
	audienceCheckout = "payments-checkout"
	audienceConfirm  = "payments-confirm"

	purposeCheckout = "checkout"
	purposeConfirm  = "confirm"
)

// Order — оплачиваемая заявка.
type Order struct {
	RequestID      string
	UserID         string
	MembershipID   string
	MembershipName string
	PlanID         string
	Amount         int64
	Currency       string
	DurationMonths int
}

type claims struct {
	MembershipID   string `json:"mid"`
	MembershipName string `json:"mname"`
	PlanID         string `json:"plan"`
	Amount         int64  `json:"amt"`
	Currency       string `json:"cur"`
	DurationMonths int    `json:"months"`
	Purpose        string `json:"pur"`
	jwt.RegisteredClaims
}

// Linker подписывает заказы HS256.
type Linker struct {
	checkoutURL   string
	linkSecret    []byte
	confirmSecret []byte
	ttl           time.Duration
	issuer        string
	now           func() time.Time
}

// NewLinker создаёт Linker. Пустой confirmSecret отключает приём
// подтверждений.
func NewLinker(checkoutURL, linkSecret, confirmSecret, issuer string, ttl time.Duration) *Linker {
	return &Linker{
		checkoutURL:   checkoutURL,
		linkSecret:    []byte(linkSecret),
		confirmSecret: []byte(confirmSecret),
		ttl:           ttl,
		issuer:        issuer,
		now:           time.Now,
	}
}

func (l *Linker) claims(o Order, audience, purpose string, now time.Time) claims {
	return claims{
		MembershipID:   o.MembershipID,
		MembershipName: o.MembershipName,
		PlanID:         o.PlanID,
		Amount:         o.Amount,
		Currency:       o.Currency,
		DurationMonths: o.DurationMonths,
		Purpose:        purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        o.RequestID,
			Subject:   o.UserID,
			Issuer:    l.issuer,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(l.ttl)),
		},
	}
}

// Link возвращает checkoutURL?token=<jwt> и момент истечения ссылки.
func (l *Linker) Link(o Order) (string, time.Time, error) {
	const op = "payments/Link"

	u, err := url.Parse(l.checkoutURL)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	now := l.now().UTC()
	exp := now.Add(l.ttl)

	c := l.claims(o, audienceCheckout, purposeCheckout, now)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(l.linkSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	q := u.Query()
	q.Set("token", signed)
	u.RawQuery = q.Encode()

	return u.String(), exp, nil
}

// Confirmation подписывает подтверждение оплаты секретом webhook. Так
// делает биллинг после успешного платежа; в party-one используется
// утилитами и тестами.
func (l *Linker) Confirmation(o Order) (string, error) {
	const op = "payments/Confirmation"

	if len(l.confirmSecret) == 0 {
		return "", fmt.Errorf("%s: %w", op, ErrConfirmDisabled)
	}

	c := l.claims(o, audienceConfirm, purposeConfirm, l.now().UTC())

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(l.confirmSecret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// Verify проверяет токен подтверждения оплаты и возвращает заказ.
// Токены ссылок на оплату отклоняются.
func (l *Linker) Verify(token string) (*Order, error) {
	const op = "payments/Verify"

	if len(l.confirmSecret) == 0 {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidLink, ErrConfirmDisabled)
	}

	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return l.confirmSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(l.issuer),
		jwt.WithAudience(audienceConfirm),
		jwt.WithTimeFunc(l.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInvalidLink, err)
	}

	if c.Purpose != purposeConfirm {
		return nil, fmt.Errorf("%s: %w: purpose %q", op, ErrInvalidLink, c.Purpose)
	}

	if c.ID == "" || c.Subject == "" {
		return nil, fmt.Errorf("%s: %w: missing ids", op, ErrInvalidLink)
	}

	return &Order{
		RequestID:      c.ID,
		UserID:         c.Subject,
		MembershipID:   c.MembershipID,
		MembershipName: c.MembershipName,
		PlanID:         c.PlanID,
		Amount:         c.Amount,
		Currency:       c.Currency,
		DurationMonths: c.DurationMonths,
	}, nil
}
