package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pribylovaa/party-one/internal/storage"
)

// Сессия хранится как Redis Hash с полями: flow, sub, st, tk, ts (unix ms).

// Результаты consumeTicketScript.
const (
	ticketMissing  = 0
	ticketOK       = 1
	ticketMismatch = 2
)

// consumeTicketScript очищает поле tk, только если оно равно ARGV[1].
// KEYS[1] — ключ сессии.
var consumeTicketScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
  return 0
end
local tk = redis.call("HGET", KEYS[1], "tk")
if not tk or tk == "" or tk ~= ARGV[1] then
  return 2
end
redis.call("HSET", KEYS[1], "tk", "")
return 1
`)

// SaveSession записывает сессию с TTL.
func (r *Redis) SaveSession(ctx context.Context, key string, s storage.WizardSession, ttl time.Duration) error {
	const op = "cache.SaveSession"

	k := r.key("wiz", key)
	kv := map[string]any{
		"flow": s.Flow,
		"sub":  s.Subject,
		"st":   s.State,
		"tk":   s.TicketHash,
		"ts":   strconv.FormatInt(s.UpdatedAt.UnixMilli(), 10),
	}

	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, k, kv)
	pipe.PExpire(ctx, k, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Session возвращает сессию или storage.ErrNotFound.
func (r *Redis) Session(ctx context.Context, key string) (*storage.WizardSession, error) {
	const op = "cache.Session"

	m, err := r.rdb.HGetAll(ctx, r.key("wiz", key)).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(m) == 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	ms, err := strconv.ParseInt(m["ts"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: bad ts: %w", op, err)
	}

	return &storage.WizardSession{
		Flow:       m["flow"],
		Subject:    m["sub"],
		State:      m["st"],
		TicketHash: m["tk"],
		UpdatedAt:  time.UnixMilli(ms).UTC(),
	}, nil
}

// DeleteSession удаляет сессию.
func (r *Redis) DeleteSession(ctx context.Context, key string) error {
	const op = "cache.DeleteSession"

	if err := r.rdb.Del(ctx, r.key("wiz", key)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ConsumeTicket гасит ticket сессии.
func (r *Redis) ConsumeTicket(ctx context.Context, key, ticketHash string) error {
	const op = "cache.ConsumeTicket"

	res, err := consumeTicketScript.Run(ctx, r.rdb, []string{r.key("wiz", key)}, ticketHash).Int()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	switch res {
	case ticketOK:
		return nil
	case ticketMissing:
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	default:
		return fmt.Errorf("%s: %w", op, storage.ErrMismatch)
	}
}
