package partyclient

import (
	"context"
	"errors"
	"sync"

	"github.com/pribylovaa/party-one/internal/otp"
	"github.com/pribylovaa/party-one/internal/wizard"
	"github.com/pribylovaa/party-one/pkg/api"
)

// State — шаг мастера сброса пароля.
type State = wizard.State

// Шаги PasswordResetWizard по порядку.
const (
	StepEmail   State = wizard.StepEmail
	StepOTP     State = wizard.StepOTP
	StepReset   State = wizard.StepReset
	StepSuccess State = wizard.StepSuccess
)

var (
	// ErrBusy — предыдущий шаг ещё выполняется.
	ErrBusy = wizard.ErrBusy
	// ErrInvalidStep — действие недоступно на текущем шаге.
	ErrInvalidStep = wizard.ErrInvalidTransition
	// ErrFinished — сценарий уже завершён.
	ErrFinished = wizard.ErrFinished

	// Ошибки ввода кода.
	ErrInvalidCode     = otp.ErrInvalidCode
	ErrInvalidDigit    = otp.ErrInvalidDigit
	ErrIndexOutOfRange = otp.ErrIndexOutOfRange

	// ErrPasswordMismatch — пароль и подтверждение не совпали; запрос не
	// отправлялся.
	ErrPasswordMismatch = errors.New("partyclient: passwords do not match")
)

// PasswordResetWizard ведёт сброс пароля: email -> otp -> reset -> success.
// Шаг продвигается только при успехе запроса; пока запрос выполняется,
// повторная отправка отклоняется с ErrBusy.
type PasswordResetWizard struct {
	c *Client
	m *wizard.Machine

	mu     sync.Mutex
	input  otp.Input
	email  string
	ticket string
}

// NewPasswordReset начинает сценарий сброса пароля.
func (c *Client) NewPasswordReset() *PasswordResetWizard {
	return &PasswordResetWizard{c: c, m: wizard.New(wizard.PasswordReset)}
}

func (w *PasswordResetWizard) State() State { return w.m.State() }

// Loading — выполняется запрос текущего шага.
func (w *PasswordResetWizard) Loading() bool { return w.m.Busy() }

func (w *PasswordResetWizard) Done() bool { return w.m.Finished() }

// Email возвращает адрес, на который отправлен код.
func (w *PasswordResetWizard) Email() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.email
}

// SetDigit вводит цифру в ячейку i (пустая строка стирает ячейку).
func (w *PasswordResetWizard) SetDigit(i int, v string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.input.Set(i, v)
}

// PasteOTP заполняет все ячейки из вставленного текста. Неподходящий
// текст не меняет ввод.
func (w *PasswordResetWizard) PasteOTP(text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.input.Paste(text)
}

// OTP возвращает текущий ввод кода.
func (w *PasswordResetWizard) OTP() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.input.Value()
}

// SubmitEmail запрашивает код на email.
func (w *PasswordResetWizard) SubmitEmail(ctx context.Context, email string) error {
	_, err := w.m.Do(ctx, StepEmail, func(ctx context.Context) error {
		if err := w.c.SendResetOTP(ctx, email); err != nil {
			return err
		}

		w.mu.Lock()
		w.email = email
		w.mu.Unlock()

		return nil
	})

	return err
}

// ResendOTP повторно отправляет код и очищает ввод. Доступно только на
// шаге otp.
func (w *PasswordResetWizard) ResendOTP(ctx context.Context) error {
	if st := w.m.State(); st != StepOTP {
		return ErrInvalidStep
	}

	if w.m.Busy() {
		return ErrBusy
	}

	if err := w.c.SendResetOTP(ctx, w.Email()); err != nil {
		return err
	}

	w.mu.Lock()
	w.input.Reset()
	w.mu.Unlock()

	return nil
}

// SubmitOTP проверяет введённый код. Неполный ввод отклоняется без запроса.
func (w *PasswordResetWizard) SubmitOTP(ctx context.Context) error {
	w.mu.Lock()
	code, err := w.input.Code()
	email := w.email
	w.mu.Unlock()

	if err != nil {
		return err
	}

	_, err = w.m.Do(ctx, StepOTP, func(ctx context.Context) error {
		ticket, err := w.c.VerifyResetOTP(ctx, email, code)
		if err != nil {
			return err
		}

		w.mu.Lock()
		w.ticket = ticket
		w.mu.Unlock()

		return nil
	})

	return err
}

// SubmitPassword задаёт новый пароль.
func (w *PasswordResetWizard) SubmitPassword(ctx context.Context, password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}

	w.mu.Lock()
	in := api.ResetPasswordRequest{
		Email:           w.email,
		Ticket:          w.ticket,
		Password:        password,
		ConfirmPassword: confirm,
	}
	w.mu.Unlock()

	_, err := w.m.Do(ctx, StepReset, func(ctx context.Context) error {
		return w.c.ResetPassword(ctx, in)
	})

	return err
}
