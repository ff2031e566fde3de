package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

var releaseScript = goredis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

// EventLock implements ports.EventLock using Redis SET NX.
type EventLock struct {
	client *goredis.Client
	prefix string
}

// NewEventLock creates a new Redis-backed lock.
func NewEventLock(client *goredis.Client) *EventLock {
	return &EventLock{
		client: client,
		prefix: "lock:",
	}
}

// Acquire takes the lock for key. ok is false when someone else holds it.
func (l *EventLock) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	result, err := l.client.SetArgs(ctx, l.prefix+key, token, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis lock acquire: %w", err)
	}
	return token, result == "OK", nil
}

// Release deletes the lock only if token still owns it.
func (l *EventLock) Release(ctx context.Context, key string, token string) error {
	if err := releaseScript.Run(ctx, l.client, []string{l.prefix + key}, token).Err(); err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("redis lock release: %w", err)
	}
	return nil
}
