package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// fixedWindowScript: INCR + PEXPIRE на первом событии окна.
var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// Allow засчитывает событие и сообщает, укладывается ли оно в limit за window.
// limit <= 0 или window <= 0 отключают ограничение.
func (r *Redis) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	const op = "cache.Allow"

	if limit <= 0 || window <= 0 {
		return true, nil
	}

	windowMs := window.Milliseconds()
	if windowMs < 1 {
		windowMs = 1
	}

	n, err := fixedWindowScript.Run(ctx, r.rdb, []string{r.key("rl", key)}, windowMs).Int64()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return n <= int64(limit), nil
}

// ResetLimit удаляет счётчик окна.
func (r *Redis) ResetLimit(ctx context.Context, key string) error {
	const op = "cache.ResetLimit"

	if err := r.rdb.Del(ctx, r.key("rl", key)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
