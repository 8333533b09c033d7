package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pribylovaa/party-one/internal/events"
	"github.com/pribylovaa/party-one/internal/pkg/log"
	"github.com/pribylovaa/party-one/internal/storage"
	"github.com/pribylovaa/party-one/internal/wizard"
)

// SendResetOTP — шаг email сценария сброса пароля: отправляет код на
// e-mail учётки. Повторный вызов перезапускает сценарий (не чаще cooldown).
func (s *Service) SendResetOTP(ctx context.Context, email string) error {
	const op = "service.password_reset.SendResetOTP"

	norm, err := validateEmail(email)
	if err != nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	user, err := s.accounts.UserByEmail(ctx, norm)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if user.Disabled {
		return fmt.Errorf("%s: %w", op, ErrUserDisabled)
	}

	if err := s.issueOTP(ctx, wizard.PasswordReset, norm, norm); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// VerifyResetOTP — шаг otp: сверяет код и выдаёт ticket для шага reset.
func (s *Service) VerifyResetOTP(ctx context.Context, email, code string) (string, error) {
	const op = "service.password_reset.VerifyResetOTP"

	norm, err := validateEmail(email)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	ticket, err := s.verifyOTP(ctx, wizard.PasswordReset, norm, code)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return ticket, nil
}

// ResetPassword — шаг reset: меняет пароль, отзывает все refresh-токены
// учётки и завершает сценарий.
func (s *Service) ResetPassword(ctx context.Context, email, ticket, password, confirm string) error {
	const op = "service.password_reset.ResetPassword"

	norm, err := validateEmail(email)
	if err != nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if err := s.validatePassword(password); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if password != confirm {
		return fmt.Errorf("%s: %w", op, ErrPasswordMismatch)
	}

	m, sess, err := s.requireTicket(ctx, wizard.PasswordReset, norm, ticket, wizard.StepReset)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var uid string
	_, err = m.Do(ctx, wizard.StepReset, func(ctx context.Context) error {
		user, err := s.accounts.UserByEmail(ctx, norm)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrUserNotFound
			}

			return err
		}
		uid = user.ID.String()

		hash, err := hashPassword(password)
		if err != nil {
			return err
		}

		if err := s.accounts.UpdatePassword(ctx, user.ID, hash, s.now()); err != nil {
			return err
		}

		n, err := s.accounts.RevokeUserTokens(ctx, user.ID)
		if err != nil {
			return err
		}

		log.From(ctx).Info("password_reset_done",
			slog.String("user_id", uid),
			slog.Int64("revoked_tokens", n),
		)

		return nil
	})
	if err != nil {
		s.reopenTicket(ctx, wizard.PasswordReset, sess)
		return fmt.Errorf("%s: %w", op, wizardError(err))
	}

	s.closeFlow(ctx, wizard.PasswordReset, norm)

	if err := s.events.Publish(ctx, events.New(events.TypePasswordChanged, events.UserRef{UserID: uid, Email: norm})); err != nil {
		log.From(ctx).Warn("password_event_publish_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	return nil
}
