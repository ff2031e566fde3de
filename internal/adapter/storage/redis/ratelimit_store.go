package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// incrementScript bumps a fixed-window counter and arms its expiry in one
// server-side step, so concurrent callers never share a slot.
var incrementScript = goredis.NewScript(`
local count = redis.call('INCR', KEYS[1])
local ttl = redis.call('PTTL', KEYS[1])
if count == 1 or ttl < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
	ttl = tonumber(ARGV[1])
end
return {count, ttl}
`)

// RateLimitStore implements ports.RateLimitStore backed by Redis.
type RateLimitStore struct {
	client *goredis.Client
	prefix string
}

// NewRateLimitStore creates a new Redis-backed rate limit store.
func NewRateLimitStore(client *goredis.Client) *RateLimitStore {
	return &RateLimitStore{
		client: client,
		prefix: "ratelimit:",
	}
}

// Increment counts one request for key. The window starts with the first
// request and the counter disappears when it elapses.
func (s *RateLimitStore) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	res, err := incrementScript.Run(ctx, s.client, []string{s.prefix + key}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, 0, fmt.Errorf("redis rate limit incr: %w", err)
	}
	if len(res) != 2 {
		return 0, 0, fmt.Errorf("redis rate limit incr: unexpected reply length %d", len(res))
	}
	return res[0], time.Duration(res[1]) * time.Millisecond, nil
}

// Peek reads the counter and the time left in its window.
func (s *RateLimitStore) Peek(ctx context.Context, key string) (int64, time.Duration, error) {
	redisKey := s.prefix + key

	pipe := s.client.Pipeline()
	getCmd := pipe.Get(ctx, redisKey)
	ttlCmd := pipe.PTTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, goredis.Nil) {
		return 0, 0, fmt.Errorf("redis rate limit peek: %w", err)
	}

	count, err := getCmd.Int64()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("redis rate limit peek: %w", err)
	}

	ttl := ttlCmd.Val()
	if ttl < 0 {
		ttl = 0
	}
	return count, ttl, nil
}
