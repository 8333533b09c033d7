package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pribylovaa/party-one/internal/events"
	"github.com/pribylovaa/party-one/internal/otp"
	"github.com/pribylovaa/party-one/internal/pkg/log"
	"github.com/pribylovaa/party-one/internal/pkg/redact"
	"github.com/pribylovaa/party-one/internal/storage"
	"github.com/pribylovaa/party-one/internal/wizard"
)

// OTP-сценарии (сброс пароля, удаление аккаунта) устроены одинаково:
//
//	<start> --issueOTP--> otp --verifyOTP--> <ticket step> --action--> <terminal>
//
// Сессия сценария хранится в EphemeralStorage под ключом flow:subject и
// содержит текущий шаг и хэш одноразового ticket, выданного после OTP.

func flowKey(flow wizard.Flow, subject string) string {
	return flow.Name + ":" + subject
}

// issueOTP генерирует код, сохраняет его хэш и открывает (или
// перезапускает) сессию сценария на шаге otp. Повторная отправка не чаще
// раза за OTP.ResendCooldown; неудачная попытка окно не расходует.
func (s *Service) issueOTP(ctx context.Context, flow wizard.Flow, subject, email string) error {
	key := flowKey(flow, subject)

	if err := s.allow(ctx, "otp:"+key, 1, s.cfg.OTP.ResendCooldown); err != nil {
		return err
	}

	if err := s.sendOTP(ctx, flow, key, subject, email); err != nil {
		s.resetLimit(ctx, "otp:"+key)
		return err
	}

	return nil
}

func (s *Service) sendOTP(ctx context.Context, flow wizard.Flow, key, subject, email string) error {
	m := wizard.New(flow)
	state, err := m.Advance(flow.Steps[0])
	if err != nil {
		return err
	}

	code, err := otp.Generate(s.rand)
	if err != nil {
		return err
	}

	if err := s.ephemeral.SaveOTP(ctx, key, otp.Hash(key, code), s.cfg.OTP.TTL); err != nil {
		return err
	}

	now := s.now()
	sess := storage.WizardSession{
		Flow:      flow.Name,
		Subject:   subject,
		State:     string(state),
		UpdatedAt: now,
	}
	if err := s.ephemeral.SaveSession(ctx, key, sess, s.cfg.OTP.SessionTTL); err != nil {
		return err
	}

	ev := events.New(events.TypeOTPRequested, events.OTPEmail{
		Flow:      flow.Name,
		Email:     email,
		Code:      code,
		ExpiresAt: now.Add(s.cfg.OTP.TTL),
	})
	if err := s.events.Publish(ctx, ev); err != nil {
		return err
	}

	s.metrics.OTPSent(flow.Name)

	log.From(ctx).Info("otp_issued",
		slog.String("flow", flow.Name),
		slog.String("email", redact.Email(email)),
		slog.String("code", redact.OTP()),
	)

	return nil
}

// restoreFlow читает сессию и восстанавливает автомат сценария.
func (s *Service) restoreFlow(ctx context.Context, flow wizard.Flow, subject string) (*storage.WizardSession, *wizard.Machine, error) {
	sess, err := s.ephemeral.Session(ctx, flowKey(flow, subject))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, ErrOTPExpired
		}

		return nil, nil, err
	}

	if sess.Flow != flow.Name || sess.Subject != subject {
		return nil, nil, ErrWizardState
	}

	m, err := wizard.Restore(flow, wizard.State(sess.State))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrWizardState, err)
	}

	return sess, m, nil
}

// verifyOTP сверяет код на шаге otp и возвращает ticket для следующего шага.
// После исчерпания попыток сессия удаляется: сценарий начинается заново.
func (s *Service) verifyOTP(ctx context.Context, flow wizard.Flow, subject, code string) (string, error) {
	if err := otp.Validate(code); err != nil {
		return "", ErrInvalidOTP
	}

	sess, m, err := s.restoreFlow(ctx, flow, subject)
	if err != nil {
		return "", err
	}

	key := flowKey(flow, subject)

	var ticket string
	next, err := m.Do(ctx, wizard.StepOTP, func(ctx context.Context) error {
		if err := s.ephemeral.CheckOTP(ctx, key, otp.Hash(key, code), s.cfg.OTP.MaxAttempts); err != nil {
			return mapOTPError(err)
		}

		t, err := s.randomToken()
		if err != nil {
			return err
		}
		ticket = t

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrTooManyAttempts) {
			if delErr := s.ephemeral.DeleteSession(ctx, key); delErr != nil {
				log.From(ctx).Warn("wizard_session_delete_failed",
					slog.String("flow", flow.Name),
					slog.String("err", delErr.Error()),
				)
			}
		}

		return "", wizardError(err)
	}

	sess.State = string(next)
	sess.TicketHash = hashToken(ticket)
	sess.UpdatedAt = s.now()
	if err := s.ephemeral.SaveSession(ctx, key, *sess, s.cfg.OTP.SessionTTL); err != nil {
		return "", err
	}

	return ticket, nil
}

// requireTicket проверяет, что сценарий стоит на шаге at, и гасит ticket:
// из параллельных запросов с одним ticket дальше проходит только один.
// Если действие шага не удалось, ticket возвращают через reopenTicket.
func (s *Service) requireTicket(ctx context.Context, flow wizard.Flow, subject, ticket string, at wizard.State) (*wizard.Machine, *storage.WizardSession, error) {
	sess, m, err := s.restoreFlow(ctx, flow, subject)
	if err != nil {
		return nil, nil, err
	}

	if m.State() != at {
		return nil, nil, fmt.Errorf("%w: at %q", ErrWizardState, m.State())
	}

	if ticket == "" || subtle.ConstantTimeCompare([]byte(hashToken(ticket)), []byte(sess.TicketHash)) != 1 {
		return nil, nil, ErrInvalidToken
	}

	if err := s.ephemeral.ConsumeTicket(ctx, flowKey(flow, subject), sess.TicketHash); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, nil, ErrOTPExpired
		case errors.Is(err, storage.ErrMismatch):
			return nil, nil, ErrInvalidToken
		default:
			return nil, nil, err
		}
	}

	return m, sess, nil
}

// reopenTicket восстанавливает сессию в том виде, в каком её прочитал
// requireTicket, чтобы шаг можно было повторить с тем же ticket.
func (s *Service) reopenTicket(ctx context.Context, flow wizard.Flow, sess *storage.WizardSession) {
	if err := s.ephemeral.SaveSession(ctx, flowKey(flow, sess.Subject), *sess, s.cfg.OTP.SessionTTL); err != nil {
		log.From(ctx).Warn("wizard_ticket_reopen_failed",
			slog.String("flow", flow.Name),
			slog.String("err", err.Error()),
		)
	}
}

// resetLimit освобождает окно лимита; ошибка только логируется.
func (s *Service) resetLimit(ctx context.Context, key string) {
	if err := s.ephemeral.ResetLimit(ctx, key); err != nil {
		log.From(ctx).Warn("rate_limit_reset_failed",
			slog.String("key", key),
			slog.String("err", err.Error()),
		)
	}
}

func (s *Service) closeFlow(ctx context.Context, flow wizard.Flow, subject string) {
	if err := s.ephemeral.DeleteSession(ctx, flowKey(flow, subject)); err != nil {
		log.From(ctx).Warn("wizard_session_delete_failed",
			slog.String("flow", flow.Name),
			slog.String("err", err.Error()),
		)
	}
}

func mapOTPError(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return ErrOTPExpired
	case errors.Is(err, storage.ErrMismatch):
		return ErrWrongOTP
	case errors.Is(err, storage.ErrAttemptsExceeded):
		return ErrTooManyAttempts
	default:
		return err
	}
}

// wizardError сводит ошибки автомата к ErrWizardState.
func wizardError(err error) error {
	switch {
	case errors.Is(err, wizard.ErrInvalidTransition),
		errors.Is(err, wizard.ErrFinished),
		errors.Is(err, wizard.ErrUnknownState),
		errors.Is(err, wizard.ErrBusy):
		return fmt.Errorf("%w: %v", ErrWizardState, err)
	default:
		return err
	}
}
