// Package app собирает внешние зависимости party-one (БД, кэш, брокер,
// объектное хранилище) и сервисный слой поверх них. Используется
// HTTP-сервисом и операторской утилитой partyctl.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/pribylovaa/party-one/internal/cache"
	"github.com/pribylovaa/party-one/internal/config"
	"github.com/pribylovaa/party-one/internal/events"
	"github.com/pribylovaa/party-one/internal/metrics"
	"github.com/pribylovaa/party-one/internal/oauth"
	"github.com/pribylovaa/party-one/internal/payments"
	"github.com/pribylovaa/party-one/internal/service"
	"github.com/pribylovaa/party-one/internal/storage"
	"github.com/pribylovaa/party-one/internal/storage/minio"
	"github.com/pribylovaa/party-one/internal/storage/mongo"
	"github.com/pribylovaa/party-one/internal/storage/postgres"
)

// App агрегирует подключения. Files и Events могут быть отключены
// конфигурацией: тогда Files == nil, а Events пишет события в лог.
type App struct {
	Postgres *postgres.Storage
	Mongo    *mongo.Mongo
	Redis    *cache.Redis
	Files    storage.FileStorage
	Events   events.Publisher

	cfg *config.Config
}

// Open подключается ко всем хранилищам параллельно. При ошибке уже
// открытые подключения закрываются.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	const op = "internal/app/Open"

	a := &App{cfg: cfg, Events: events.LogPublisher{}}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		pg, err := postgres.New(gctx, cfg.Postgres.URL)
		if err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		a.Postgres = pg
		log.Info("postgres_connected")
		return nil
	})

	g.Go(func() error {
		m, err := mongo.New(gctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return fmt.Errorf("mongo: %w", err)
		}
		a.Mongo = m
		log.Info("mongo_connected", slog.String("database", cfg.Mongo.Database))
		return nil
	})

	g.Go(func() error {
		r, err := cache.New(gctx, cfg.Redis.URL, "party:")
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		a.Redis = r
		log.Info("redis_connected")
		return nil
	})

	if cfg.S3.Endpoint != "" {
		g.Go(func() error {
			d, err := minio.New(gctx, cfg.S3)
			if err != nil {
				return fmt.Errorf("minio: %w", err)
			}
			a.Files = d
			log.Info("minio_connected", slog.String("bucket", cfg.S3.Bucket))
			return nil
		})
	} else {
		log.Warn("uploads_disabled", slog.String("reason", "s3 endpoint is empty"))
	}

	if cfg.RabbitMQ.URL != "" {
		g.Go(func() error {
			p, err := events.NewRabbitMQ(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
			if err != nil {
				return fmt.Errorf("rabbitmq: %w", err)
			}
			a.Events = p
			log.Info("rabbitmq_connected", slog.String("exchange", cfg.RabbitMQ.Exchange))
			return nil
		})
	} else {
		log.Warn("events_log_only", slog.String("reason", "rabbitmq url is empty"))
	}

	if err := g.Wait(); err != nil {
		a.Close(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

// Service создаёт бизнес-логику поверх подключений. m может быть nil.
func (a *App) Service(m *metrics.Metrics) *service.Service {
	d := service.Deps{
		Accounts:  a.Postgres,
		Documents: a.Mongo,
		Ephemeral: a.Redis,
		Files:     a.Files,
		Events:    a.Events,
		Payments:  a.linker(),
		Metrics:   m,
	}

	if a.cfg.OAuth.Google.Enabled() {
		d.Google = oauth.NewGoogle(a.cfg.OAuth.Google)
	}

	return service.New(d, a.cfg)
}

// linker подписывает ссылки отдельным секретом (без него — секретом JWT),
// подтверждения проверяет секретом webhook.
func (a *App) linker() *payments.Linker {
	secret := a.cfg.Payments.SigningSecret
	if secret == "" {
		secret = a.cfg.Auth.JWTSecret
	}

	return payments.NewLinker(a.cfg.Payments.CheckoutURL, secret, a.cfg.Payments.WebhookSecret, a.cfg.Auth.Issuer, a.cfg.Payments.LinkTTL)
}

// Ping проверяет обязательные хранилища (для /healthz).
func (a *App) Ping(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.Postgres.Ping(gctx) })
	g.Go(func() error { return a.Mongo.Ping(gctx) })
	g.Go(func() error { return a.Redis.Ping(gctx) })
	return g.Wait()
}

// Close закрывает все открытые подключения.
func (a *App) Close(ctx context.Context) {
	log := slog.Default()

	if a.Events != nil {
		if err := a.Events.Close(); err != nil {
			log.Warn("events_close_failed", slog.String("err", err.Error()))
		}
	}

	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			log.Warn("redis_close_failed", slog.String("err", err.Error()))
		}
	}

	if a.Mongo != nil {
		if err := a.Mongo.Close(ctx); err != nil {
			log.Warn("mongo_close_failed", slog.String("err", err.Error()))
		}
	}

	if a.Postgres != nil {
		a.Postgres.Close()
	}
}
