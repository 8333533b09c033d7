package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pribylovaa/party-one/internal/storage"
)

// Результаты checkOTPScript.
const (
	otpMissing  = 0
	otpOK       = 1
	otpMismatch = 2
	otpExceeded = 3
)

// checkOTPScript атомарно сверяет хэш и ведёт счётчик неудачных попыток.
// KEYS[1] — ключ кода; ARGV[1] — хэш; ARGV[2] — лимит попыток.
var checkOTPScript = redis.NewScript(`
local h = redis.call("HGET", KEYS[1], "h")
if not h then
  return 0
end
if h == ARGV[1] then
  redis.call("DEL", KEYS[1])
  return 1
end
local n = redis.call("HINCRBY", KEYS[1], "n", 1)
if n >= tonumber(ARGV[2]) then
  redis.call("DEL", KEYS[1])
  return 3
end
return 2
`)

// SaveOTP сохраняет хэш кода с TTL, сбрасывая счётчик попыток.
func (r *Redis) SaveOTP(ctx context.Context, key, hash string, ttl time.Duration) error {
	const op = "cache.SaveOTP"

	k := r.key("otp", key)

	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, k)
	pipe.HSet(ctx, k, map[string]any{"h": hash, "n": 0})
	pipe.PExpire(ctx, k, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CheckOTP сверяет хэш кода.
func (r *Redis) CheckOTP(ctx context.Context, key, hash string, maxAttempts int) error {
	const op = "cache.CheckOTP"

	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	res, err := checkOTPScript.Run(ctx, r.rdb, []string{r.key("otp", key)}, hash, maxAttempts).Int()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	switch res {
	case otpOK:
		return nil
	case otpMissing:
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	case otpMismatch:
		return fmt.Errorf("%s: %w", op, storage.ErrMismatch)
	case otpExceeded:
		return fmt.Errorf("%s: %w", op, storage.ErrAttemptsExceeded)
	default:
		return fmt.Errorf("%s: unexpected script result %d", op, res)
	}
}

// DeleteOTP удаляет код.
func (r *Redis) DeleteOTP(ctx context.Context, key string) error {
	const op = "cache.DeleteOTP"

	if err := r.rdb.Del(ctx, r.key("otp", key)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
