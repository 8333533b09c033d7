package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/party-one/internal/models"
	"github.com/pribylovaa/party-one/internal/pkg/log"
	"github.com/pribylovaa/party-one/internal/pkg/redact"
	"github.com/pribylovaa/party-one/internal/storage"
)

const orphanBatch = 200

// PurgeExpiredTokens удаляет истёкшие refresh-токены.
func (s *Service) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	const op = "service.maintenance.PurgeExpiredTokens"

	n, err := s.accounts.DeleteExpiredTokens(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.JanitorRemoved("tokens", n)

	return n, nil
}

// PurgeOrphans находит учётки старше grace без документа профиля и, если
// dryRun=false, удаляет их. Возвращает найденные учётки.
func (s *Service) PurgeOrphans(ctx context.Context, grace time.Duration, dryRun bool) ([]models.User, error) {
	const op = "service.maintenance.PurgeOrphans"

	lg := log.From(ctx)
	cutoff := s.now().Add(-grace)

	var (
		orphans []models.User
		cursor  storage.UserCursor
	)

	for {
		users, err := s.accounts.UsersCreatedBefore(ctx, cutoff, cursor, orphanBatch)
		if err != nil {
			return orphans, fmt.Errorf("%s: %w", op, err)
		}

		if len(users) == 0 {
			break
		}

		ids := make([]uuid.UUID, 0, len(users))
		for _, u := range users {
			ids = append(ids, u.ID)
		}

		exists, err := s.documents.ExistingProfiles(ctx, ids)
		if err != nil {
			return orphans, fmt.Errorf("%s: %w", op, err)
		}

		for _, u := range users {
			if exists[u.ID] {
				continue
			}

			orphans = append(orphans, u)

			if dryRun {
				continue
			}

			if err := s.DeleteAccount(ctx, u.ID); err != nil {
				return orphans, fmt.Errorf("%s: %w", op, err)
			}

			lg.Info("orphan_deleted",
				slog.String("user_id", u.ID.String()),
				slog.String("email", redact.Email(u.Email)),
			)
		}

		if len(users) < orphanBatch {
			break
		}

		cursor = storage.CursorAfter(users[len(users)-1])
	}

	if !dryRun {
		s.metrics.JanitorRemoved("orphans", int64(len(orphans)))
	}

	return orphans, nil
}
