package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/MaxFerr/hair-cut-api/internal/utils"
	"github.com/gin-gonic/gin"
)

// RateLimiter is a fixed-window per-IP limiter guarding the credential and
// mail endpoints against brute force and relay abuse.
type RateLimiter struct {
	limit   int
	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count int
	reset time.Time
}

func NewRateLimiter(limitPerMinute int) *RateLimiter {
	return &RateLimiter{
		limit:   limitPerMinute,
		windows: make(map[string]*window),
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rl.mu.Lock()
		w, ok := rl.windows[ip]
		if !ok || now.After(w.reset) {
			w = &window{reset: now.Add(time.Minute)}
			rl.windows[ip] = w
		}
		w.count++
		count := w.count
		reset := w.reset
		rl.mu.Unlock()

		if count > rl.limit {
			retry := int(time.Until(reset).Seconds())
			c.Header("Retry-After", fmt.Sprintf("%d", retry))
			utils.RespondError(c, utils.NewAppError(http.StatusTooManyRequests, utils.CodeRateLimit, "too many requests", nil))
			c.Abort()
			return
		}

		c.Next()
	}
}
