package middleware

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"productmgmt/internal/apierror"
	"productmgmt/internal/infra"
)

// Decision is the outcome of one rate limit check.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter counts requests per key within a fixed window.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// RateLimit rejects requests over the limiter's budget with 429. Limiter
// errors let the request through.
func RateLimit(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Error().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("rate limiter unavailable")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		if !d.Allowed {
			wait := int(math.Ceil(time.Until(d.ResetAt).Seconds()))
			c.Header("Retry-After", strconv.Itoa(max(wait, 1)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Too many requests"))
			return
		}
		c.Next()
	}
}

func decide(count int64, limit int, resetAt time.Time) Decision {
	return Decision{
		Allowed:   count <= int64(limit),
		Limit:     limit,
		Remaining: max(limit-int(count), 0),
		ResetAt:   resetAt,
	}
}

// ── In-memory limiter ─────────────────────────────────────────────────────────

// rateEntry tracks request counts per IP.
type rateEntry struct {
	count     int64
	windowEnd time.Time
}

// MemoryLimiter keeps counters in process memory. Counts are per instance.
type MemoryLimiter struct {
	limit   int
	window  time.Duration
	mu      sync.Mutex
	entries map[string]*rateEntry
	now     func() time.Time
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		window:  window,
		entries: make(map[string]*rateEntry),
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.entries[key]
	if !ok || !now.Before(entry.windowEnd) {
		entry = &rateEntry{windowEnd: now.Add(l.window)}
		l.entries[key] = entry
	}
	entry.count++
	return decide(entry.count, l.limit, entry.windowEnd), nil
}

// Run purges expired entries every interval until ctx is done, so IPs that
// never come back do not accumulate.
func (l *MemoryLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if purged, remaining := l.purge(); purged > 0 {
				log.Debug().
					Int("entries_purged", purged).
					Int("entries_remaining", remaining).
					Msg("rate limiter map purged")
			}
		}
	}
}

func (l *MemoryLimiter) purge() (purged, remaining int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, entry := range l.entries {
		if !now.Before(entry.windowEnd) {
			delete(l.entries, key)
			purged++
		}
	}
	return purged, len(l.entries)
}

// ── Redis limiter ─────────────────────────────────────────────────────────────

// RedisLimiter shares counters across instances. Each window is one key,
// INCR'd and given a TTL in a single MULTI/EXEC.
type RedisLimiter struct {
	rdb    redis.Cmdable
	limit  int
	window time.Duration
	prefix string
	now    func() time.Time
}

func NewRedisLimiter(rdb redis.Cmdable, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		prefix: "ratelimit",
		now:    time.Now,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	now := l.now()
	start := now.Truncate(l.window)
	redisKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, start.Unix())

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, fmt.Errorf("redis rate limit: %w", err)
	}
	return decide(incr.Val(), l.limit, start.Add(l.window)), nil
}

// ── Fallback ──────────────────────────────────────────────────────────────────

// FallbackLimiter uses primary behind a circuit breaker and answers from
// fallback whenever primary fails or the breaker is open.
type FallbackLimiter struct {
	primary  Limiter
	fallback Limiter
	breaker  *infra.CircuitBreaker
}

func NewFallbackLimiter(primary, fallback Limiter, breaker *infra.CircuitBreaker) *FallbackLimiter {
	return &FallbackLimiter{primary: primary, fallback: fallback, breaker: breaker}
}

func (l *FallbackLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	var d Decision
	err := l.breaker.Execute(func() error {
		var err error
		d, err = l.primary.Allow(ctx, key)
		return err
	})
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, infra.ErrCircuitOpen) {
		log.Warn().Err(err).Msg("primary rate limiter failed, using fallback")
	}
	return l.fallback.Allow(ctx, key)
}

// BreakerState reports the breaker guarding the primary limiter.
func (l *FallbackLimiter) BreakerState() infra.CBState {
	return l.breaker.State()
}
