package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func limiterTestRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", rl.Limit(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter(1, 3)
	router := limiterTestRouter(rl)

	var codes []int
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "203.0.113.9:1234"
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{200, 200, 200, 429, 429}, codes)
}

func TestRateLimiterIsPerIP(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	router := limiterTestRouter(rl)

	for _, addr := range []string{"203.0.113.1:1", "203.0.113.2:1"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = addr
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "first request from %s", addr)
	}
}

func TestEvictIdleKeepsActiveVisitors(t *testing.T) {
	rl := NewRateLimiter(1, 1)

	// exhaust the abusive IP's bucket
	abusive := rl.getLimiter("203.0.113.66")
	assert.True(t, abusive.Allow())
	assert.False(t, abusive.Allow())

	// an eviction sweep while the IP is still active must not reset it
	rl.evictIdle(time.Now().Add(visitorIdleTTL / 2))
	assert.Same(t, abusive, rl.getLimiter("203.0.113.66"))
	assert.False(t, rl.getLimiter("203.0.113.66").Allow())
}

func TestEvictIdleDropsStaleVisitors(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.getLimiter("203.0.113.77")

	rl.evictIdle(time.Now().Add(visitorIdleTTL + time.Minute))

	rl.mu.Lock()
	_, exists := rl.visitors["203.0.113.77"]
	rl.mu.Unlock()
	assert.False(t, exists)
}
