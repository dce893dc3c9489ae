//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"strconv"
	"testing"
	"time"

	"padel-club/internal/handler/middleware"
	"padel-club/internal/pkg/clock"
	"padel-club/internal/pkg/config"
	"padel-club/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", middleware.NewRateLimiter(cfg, clock.NewRealClock()).Limit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimiter(t *testing.T) {
	t.Run("second request inside the window is refused", func(t *testing.T) {
		r := newLimitedRouter(config.RateLimitConfig{Enabled: true, RPS: 0.01, Burst: 1})

		w := httptest.PerformRequest(t, r, http.MethodPost, "/login", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, r, http.MethodPost, "/login", nil, "")
		res := httptest.AssertErrorCode(t, w, http.StatusTooManyRequests, "RATE_LIMITED")
		assert.NotEmpty(t, res.Message)
		assert.Equal(t, "1", w.Header().Get("Retry-After"))
	})

	t.Run("disabled limiter lets everything through", func(t *testing.T) {
		r := newLimitedRouter(config.RateLimitConfig{Enabled: false, RPS: 0.01, Burst: 1})
		for i := 0; i < 5; i++ {
			w := httptest.PerformRequest(t, r, http.MethodPost, "/login", nil, "")
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})
}

func TestRateLimiterForgetsIdleCallers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	clk := clock.NewFixedClock(time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC))
	limiter := middleware.NewRateLimiter(config.RateLimitConfig{
		Enabled: true, RPS: 0.0001, Burst: 1, IdleTTL: 10 * time.Minute,
	}, clk)
	r := gin.New()
	r.POST("/login", limiter.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) int {
		req := nethttptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":40000"
		w := nethttptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 50; i++ {
		assert.Equal(t, http.StatusOK, send("10.0.0."+strconv.Itoa(i)))
	}
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, 50, limiter.Tracked())

	clk.Set(clk.Now().Add(5 * time.Minute))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.2"))

	clk.Set(clk.Now().Add(6 * time.Minute))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	// only the caller seen after the cutoff and the one just admitted remain
	assert.Equal(t, 2, limiter.Tracked())
}
