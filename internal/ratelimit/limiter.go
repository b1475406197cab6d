// Package ratelimit throttles contact submissions per client.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Decision is the outcome of a single Allow call.
type Decision struct {
	Allowed   bool
	Remaining int
	ResetIn   time.Duration
}

// Limiter decides whether key may perform another action in the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// fixedWindowScript increments the counter and sets the TTL on first hit.
// KEYS[1] = counter key, ARGV[1] = window in seconds. Returns {count, ttl}.
var fixedWindowScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`)

// RedisLimiter is a fixed-window counter stored in Redis. When Redis is
// unreachable it falls back to an in-process window so intake keeps working.
type RedisLimiter struct {
	client   *redis.Client
	prefix   string
	limit    int
	window   time.Duration
	fallback *MemoryLimiter
	logger   *zap.Logger
}

// NewRedisLimiter builds a limiter allowing limit hits per window per key.
func NewRedisLimiter(client *redis.Client, prefix string, limit int, window time.Duration, logger *zap.Logger) *RedisLimiter {
	return &RedisLimiter{
		client:   client,
		prefix:   prefix,
		limit:    limit,
		window:   window,
		fallback: NewMemoryLimiter(limit, window),
		logger:   logger,
	}
}

// Allow implements Limiter.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	if l.client == nil {
		return l.fallback.Allow(ctx, key)
	}

	seconds := int(l.window / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	res, err := fixedWindowScript.Run(ctx, l.client, []string{l.prefix + key}, seconds).Int64Slice()
	if err != nil || len(res) != 2 {
		l.logger.Warn("redis rate limit unavailable; using local window", zap.Error(err))
		return l.fallback.Allow(ctx, key)
	}

	count, ttl := int(res[0]), time.Duration(res[1])*time.Second
	remaining := l.limit - count
	if remaining < 0 {
		remaining = 0
	}
	return Decision{Allowed: count <= l.limit, Remaining: remaining, ResetIn: ttl}, nil
}

type window struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is an in-process fixed-window limiter.
type MemoryLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	entries map[string]*window
	now     func() time.Time
}

// NewMemoryLimiter builds an in-process limiter.
func NewMemoryLimiter(limit int, win time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		window:  win,
		entries: make(map[string]*window),
		now:     time.Now,
	}
}

// Allow implements Limiter.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for k, w := range l.entries {
		if !now.Before(w.resetAt) {
			delete(l.entries, k)
		}
	}

	w, ok := l.entries[key]
	if !ok {
		w = &window{resetAt: now.Add(l.window)}
		l.entries[key] = w
	}
	w.count++

	remaining := l.limit - w.count
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   w.count <= l.limit,
		Remaining: remaining,
		ResetIn:   w.resetAt.Sub(now),
	}, nil
}
