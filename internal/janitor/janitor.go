// Package janitor — фоновые задачи очистки по расписанию robfig/cron:
// удаление истёкших refresh-токенов и «осиротевших» учёток без профиля.
package janitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pribylovaa/party-one/internal/config"
	"github.com/pribylovaa/party-one/internal/models"
	"github.com/pribylovaa/party-one/internal/pkg/log"
)

// Maintainer — операции обслуживания; реализуется service.Service.
type Maintainer interface {
	PurgeExpiredTokens(ctx context.Context) (int64, error)
	PurgeOrphans(ctx context.Context, grace time.Duration, dryRun bool) ([]models.User, error)
}

// Janitor управляет cron-задачами.
type Janitor struct {
	cron    *cron.Cron
	svc     Maintainer
	logger  *slog.Logger
	grace   time.Duration
	timeout time.Duration
}

// New регистрирует задачи по расписаниям из cfg. Ошибка — невалидное
// расписание.
func New(svc Maintainer, logger *slog.Logger, cfg config.JanitorConfig, timeout time.Duration) (*Janitor, error) {
	const op = "janitor.New"

	if logger == nil {
		logger = slog.Default()
	}

	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelWarn))

	j := &Janitor{
		cron:    cron.New(cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger))),
		svc:     svc,
		logger:  logger.With(slog.String("component", "janitor")),
		grace:   cfg.OrphanGrace,
		timeout: timeout,
	}

	if _, err := j.cron.AddFunc(cfg.TokensSchedule, j.PurgeTokens); err != nil {
		return nil, fmt.Errorf("%s: tokens schedule %q: %w", op, cfg.TokensSchedule, err)
	}

	if _, err := j.cron.AddFunc(cfg.OrphansSchedule, j.PurgeOrphans); err != nil {
		return nil, fmt.Errorf("%s: orphans schedule %q: %w", op, cfg.OrphansSchedule, err)
	}

	j.logger.Info("janitor_scheduled",
		slog.String("tokens", cfg.TokensSchedule),
		slog.String("orphans", cfg.OrphansSchedule),
	)

	return j, nil
}

// Start запускает планировщик в собственной горутине.
func (j *Janitor) Start() {
	j.cron.Start()
}

// Stop останавливает планировщик и ждёт выполняющиеся задачи, но не
// дольше ctx.
func (j *Janitor) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
		j.logger.Warn("janitor_stop_timeout")
	}
}

// PurgeTokens — задача удаления истёкших refresh-токенов.
func (j *Janitor) PurgeTokens() {
	ctx, cancel := j.jobContext("tokens")
	defer cancel()

	n, err := j.svc.PurgeExpiredTokens(ctx)
	if err != nil {
		log.From(ctx).Error("janitor_job_failed", slog.String("err", err.Error()))
		return
	}

	log.From(ctx).Info("janitor_job_done", slog.Int64("removed", n))
}

// PurgeOrphans — задача удаления учёток без профиля старше grace.
func (j *Janitor) PurgeOrphans() {
	ctx, cancel := j.jobContext("orphans")
	defer cancel()

	users, err := j.svc.PurgeOrphans(ctx, j.grace, false)
	if err != nil {
		log.From(ctx).Error("janitor_job_failed",
			slog.Int("removed", len(users)),
			slog.String("err", err.Error()),
		)
		return
	}

	log.From(ctx).Info("janitor_job_done", slog.Int("removed", len(users)))
}

func (j *Janitor) jobContext(job string) (context.Context, context.CancelFunc) {
	ctx := log.Into(context.Background(), j.logger.With(slog.String("job", job)))
	if j.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, j.timeout)
}
