// Package cache — короткоживущее состояние в Redis: хэши OTP, сессии
// многошаговых сценариев и счётчики лимитов.
package cache

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/pribylovaa/party-one/internal/storage"
)

// Redis — адаптер поверх go-redis.
type Redis struct {
	rdb    redis.UniversalClient
	prefix string
}

// New создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "party:".
func New(ctx context.Context, redisURL, prefix string) (*Redis, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis parse url: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewWithClient(rdb, prefix), nil
}

// NewWithClient оборачивает готовый клиент.
func NewWithClient(rdb redis.UniversalClient, prefix string) *Redis {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "party:"
	}

	if !strings.HasSuffix(prefix, ":") {
		prefix += ":"
	}

	return &Redis{rdb: rdb, prefix: prefix}
}

func (r *Redis) key(kind, k string) string { return r.prefix + kind + ":" + k }

// Ping проверяет доступность Redis (для /healthz).
func (r *Redis) Ping(ctx context.Context) error { return r.rdb.Ping(ctx).Err() }

func (r *Redis) Close() error { return r.rdb.Close() }

var _ storage.EphemeralStorage = (*Redis)(nil)
