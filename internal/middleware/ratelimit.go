package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockprice/internal/domain/dto"
)

// client holds the request count of one IP within its current window.
type client struct {
	windowStart time.Time
	count       int
}

// window is the rate limiting period; tests shorten it.
var window = time.Minute

// defaultLimit applies when RateLimiter receives a non-positive limit.
const defaultLimit = 60

// limiter is a fixed-window counter per client IP.
type limiter struct {
	mu        sync.Mutex
	perWindow int
	clients   map[string]*client
	lastSweep time.Time
}

func newLimiter(perWindow int) *limiter {
	if perWindow <= 0 {
		perWindow = defaultLimit
	}
	return &limiter{perWindow: perWindow, clients: make(map[string]*client)}
}

// allow counts one request from ip at now and reports whether it fits in
// the current window. A window starts with the first request after the
// previous one expired, so rejected requests do not extend it. Once per
// window, clients whose window has expired are dropped.
func (l *limiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= window {
		for k, cl := range l.clients {
			if now.Sub(cl.windowStart) >= window {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	cl, ok := l.clients[ip]
	if !ok || now.Sub(cl.windowStart) >= window {
		cl = &client{windowStart: now}
		l.clients[ip] = cl
	}
	cl.count++
	return cl.count <= l.perWindow
}

// RateLimiter is a simple in-memory middleware that limits the number of requests per client IP.
//
// Behavior:
//   - Allows up to perMinute requests per fixed window (default: 60 requests per 1 minute).
//   - Identifies clients by their IP address.
//   - Each call returns a middleware with its own client table; idle clients are evicted.
//   - If limit exceeded, returns HTTP 429 Too Many Requests.
//
// Every request to the price endpoints costs one upstream call, so this also
// protects the RapidAPI quota.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RateLimiter(config.AppConfig.Server.RateLimitPerMinute))
func RateLimiter(perMinute int) gin.HandlerFunc {
	l := newLimiter(perMinute)

	return func(c *gin.Context) {
		if !l.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}

		c.Next()
	}
}
