package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"padel-club/internal/handler/httperr"
	"padel-club/internal/pkg/clock"
	"padel-club/internal/pkg/config"
	"padel-club/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errs.New("rate limit exceeded")

const defaultIdleTTL = 10 * time.Minute

type bucket struct {
	lim      *rate.Limiter
	lastSeen atomic.Int64
}

// RateLimiter keeps one token bucket per caller. Authenticated requests are
// keyed by user id, the rest by client ip. Buckets idle for longer than the
// configured TTL are swept, at most once per TTL.
type RateLimiter struct {
	limiters  sync.Map
	cfg       config.RateLimitConfig
	clock     clock.Clock
	lastSweep atomic.Int64
}

func NewRateLimiter(cfg config.RateLimitConfig, clk clock.Clock) *RateLimiter {
	l := &RateLimiter{cfg: cfg, clock: clk}
	l.lastSweep.Store(clk.Now().UnixNano())
	return l
}

func (l *RateLimiter) idleTTL() time.Duration {
	if l.cfg.IdleTTL <= 0 {
		return defaultIdleTTL
	}
	return l.cfg.IdleTTL
}

func (l *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := l.clock.Now().UnixNano()
	l.sweep(now)

	if v, ok := l.limiters.Load(key); ok {
		b := v.(*bucket)
		b.lastSeen.Store(now)
		return b.lim
	}

	burst := l.cfg.Burst
	if burst <= 0 {
		burst = 5
	}

	fresh := &bucket{lim: rate.NewLimiter(rate.Limit(l.cfg.RPS), burst)}
	actual, _ := l.limiters.LoadOrStore(key, fresh)
	b := actual.(*bucket)
	b.lastSeen.Store(now)
	return b.lim
}

func (l *RateLimiter) sweep(now int64) {
	ttl := int64(l.idleTTL())
	last := l.lastSweep.Load()
	if now-last < ttl || !l.lastSweep.CompareAndSwap(last, now) {
		return
	}
	cutoff := now - ttl
	l.limiters.Range(func(k, v any) bool {
		if v.(*bucket).lastSeen.Load() < cutoff {
			l.limiters.Delete(k)
		}
		return true
	})
}

// Tracked returns the number of live buckets.
func (l *RateLimiter) Tracked() int {
	n := 0
	l.limiters.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}

func (l *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.cfg.Enabled {
			c.Next()
			return
		}
		key := "ip:" + c.ClientIP()
		if actor, ok := GetActor(c); ok {
			key = "user:" + strconv.FormatInt(actor.UserID, 10)
		}
		if !l.getLimiter(key).Allow() {
			c.Header("Retry-After", "1")
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited,
				"RATE_LIMITED", "Demasiadas solicitudes, intente en unos segundos", nil)
			return
		}
		c.Next()
	}
}
