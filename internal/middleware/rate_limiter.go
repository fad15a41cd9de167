package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientIdleTTL is how long a client's limiter survives without traffic
// before the next sweep drops it.
const clientIdleTTL = 10 * time.Minute

type RateLimiterConfig struct {
	Rate  rate.Limit
	Burst int
}

// RateLimiter throttles per client IP. The clinic API is shared by every
// front-desk workstation, so one misbehaving client must not starve the
// others; each IP gets its own token bucket.
type RateLimiter struct {
	config RateLimiterConfig

	mu      sync.Mutex
	clients map[string]*clientLimiter
	lastGC  time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	return &RateLimiter{
		config:  config,
		clients: make(map[string]*clientLimiter),
		lastGC:  time.Now(),
	}
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	// Sweep idle clients at most once per TTL so the map stays bounded
	// without a background goroutine.
	if now.Sub(rl.lastGC) > clientIdleTTL {
		for ip, cl := range rl.clients {
			if now.Sub(cl.lastSeen) > clientIdleTTL {
				delete(rl.clients, ip)
			}
		}
		rl.lastGC = now
	}

	cl, ok := rl.clients[clientIP]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.config.Rate, rl.config.Burst)}
		rl.clients[clientIP] = cl
	}
	cl.lastSeen = now

	return cl.limiter.Allow()
}
