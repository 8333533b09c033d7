package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pribylovaa/party-one/internal/events"
	"github.com/pribylovaa/party-one/internal/pkg/log"
	"github.com/pribylovaa/party-one/internal/storage"
	"github.com/pribylovaa/party-one/internal/wizard"
)

// RequestAccountDeletion — шаг request: отправляет код на e-mail учётки.
func (s *Service) RequestAccountDeletion(ctx context.Context, uid uuid.UUID) error {
	const op = "service.account_deletion.RequestAccountDeletion"

	user, err := s.Me(ctx, uid)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.issueOTP(ctx, wizard.AccountDeletion, uid.String(), user.Email); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// VerifyDeletionOTP — шаг otp: сверяет код и выдаёт ticket для шага confirm.
func (s *Service) VerifyDeletionOTP(ctx context.Context, uid uuid.UUID, code string) (string, error) {
	const op = "service.account_deletion.VerifyDeletionOTP"

	ticket, err := s.verifyOTP(ctx, wizard.AccountDeletion, uid.String(), code)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return ticket, nil
}

// ConfirmAccountDeletion — шаг confirm: удаляет аккаунт со всеми данными.
func (s *Service) ConfirmAccountDeletion(ctx context.Context, uid uuid.UUID, ticket string) error {
	const op = "service.account_deletion.ConfirmAccountDeletion"

	m, sess, err := s.requireTicket(ctx, wizard.AccountDeletion, uid.String(), ticket, wizard.StepConfirm)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := m.Do(ctx, wizard.StepConfirm, func(ctx context.Context) error {
		return s.DeleteAccount(ctx, uid)
	}); err != nil {
		s.reopenTicket(ctx, wizard.AccountDeletion, sess)
		return fmt.Errorf("%s: %w", op, wizardError(err))
	}

	s.closeFlow(ctx, wizard.AccountDeletion, uid.String())

	return nil
}

// DeleteAccount удаляет файлы KYC, заявки, анкету, профиль, токены и
// учётку. Отсутствие отдельных частей ошибкой не считается; учётка
// удаляется последней, чтобы повторный вызов мог дочистить остальное.
func (s *Service) DeleteAccount(ctx context.Context, uid uuid.UUID) error {
	const op = "service.account_deletion.DeleteAccount"

	lg := log.From(ctx).With(slog.String("user_id", uid.String()))

	user, err := s.accounts.UserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	k, err := s.documents.KYCByUser(ctx, uid)
	switch {
	case err == nil:
		s.removeFiles(ctx, lg, k.GovtIDFrontKey, k.GovtIDBackKey, k.UserImageKey)
	case !errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%s: %w", op, err)
	}

	reqs, err := s.documents.RequestsByUser(ctx, uid)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, r := range reqs {
		s.removeFiles(ctx, lg, r.CabinCrewFrontImageID, r.CabinCrewBackImageID)
	}

	if err := s.documents.DeleteUserRequests(ctx, uid); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := ignoreNotFound(s.documents.DeleteKYC(ctx, uid)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := ignoreNotFound(s.documents.DeleteProfile(ctx, uid)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.accounts.RevokeUserTokens(ctx, uid); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := ignoreNotFound(s.accounts.DeleteUser(ctx, uid)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.events.Publish(ctx, events.New(events.TypeAccountDeleted, events.UserRef{UserID: uid.String(), Email: user.Email})); err != nil {
		lg.Warn("account_event_publish_failed", slog.String("err", err.Error()))
	}

	lg.Info("account_deleted")

	return nil
}

// removeFiles удаляет документы; ошибки только логируются.
func (s *Service) removeFiles(ctx context.Context, lg *slog.Logger, keys ...string) {
	if s.files == nil {
		return
	}

	for _, key := range keys {
		if key == "" {
			continue
		}

		if err := s.files.Remove(ctx, key); err != nil {
			lg.Warn("document_remove_failed",
				slog.String("key", key),
				slog.String("err", err.Error()),
			)
		}
	}
}

func ignoreNotFound(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}

	return err
}
