package events

import (
	"context"
	"log/slog"

	logctx "github.com/pribylovaa/party-one/internal/pkg/log"
)

// LogPublisher используется, когда брокер не сконфигурирован: событие
// фиксируется в логе без полезной нагрузки (в ней бывают коды и токены).
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, ev Event) error {
	logctx.From(ctx).Info("event_not_published",
		slog.String("event_id", ev.ID),
		slog.String("event_type", ev.Type),
	)

	return nil
}

func (LogPublisher) Close() error { return nil }

var (
	_ Publisher = LogPublisher{}
	_ Publisher = (*RabbitMQ)(nil)
)
