package middleware

import (
	"net/http"
	"sync"
	"time"

	"standards-hub/backend/common"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	globalAPIRate      = rate.Limit(3) // requests per second, per client
	globalAPIBurst     = 60
	limiterIdleTimeout = 10 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	apiLimiters   = make(map[string]*clientLimiter)
	apiLimitersMu sync.Mutex
	janitorOnce   sync.Once
)

func getClientLimiter(key string) *rate.Limiter {
	apiLimitersMu.Lock()
	defer apiLimitersMu.Unlock()
	entry, ok := apiLimiters[key]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(globalAPIRate, globalAPIBurst)}
		apiLimiters[key] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

func startLimiterJanitor() {
	janitorOnce.Do(func() {
		go func() {
			for range time.Tick(time.Minute) {
				apiLimitersMu.Lock()
				for key, entry := range apiLimiters {
					if time.Since(entry.lastSeen) > limiterIdleTimeout {
						delete(apiLimiters, key)
					}
				}
				apiLimitersMu.Unlock()
			}
		}()
	})
}

// GlobalAPIRateLimit applies a generous per-client token bucket to the whole API
// group. It protects the process, not individual operations; the login route carries
// no extra limiter.
func GlobalAPIRateLimit() gin.HandlerFunc {
	startLimiterJanitor()
	return func(c *gin.Context) {
		if !getClientLimiter(c.ClientIP()).Allow() {
			common.RespErrorStr(c, http.StatusTooManyRequests, "too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
