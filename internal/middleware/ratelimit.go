package middleware

import (
	"time"

	"sep-workflow/internal/bizerror"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// limiterIdle is how long a client's bucket survives without requests.
const limiterIdle = 10 * time.Minute

// RateLimit throttles each client address to perMinute requests with the given burst.
// A zero rate disables throttling.
func RateLimit(perMinute, burst int) gin.HandlerFunc {
	return rateLimit(perMinute, burst, limiterIdle)
}

func rateLimit(perMinute, burst int, idle time.Duration) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst <= 0 {
		burst = 1
	}

	limiters := cache.New(idle, idle)
	every := rate.Every(time.Minute / time.Duration(perMinute))

	limiterFor := func(ip string) *rate.Limiter {
		if v, found := limiters.Get(ip); found {
			limiter := v.(*rate.Limiter)
			// slide the expiry while the client stays active
			limiters.Set(ip, limiter, cache.DefaultExpiration)
			return limiter
		}
		limiter := rate.NewLimiter(every, burst)
		if err := limiters.Add(ip, limiter, cache.DefaultExpiration); err != nil {
			// another request created it first
			if v, found := limiters.Get(ip); found {
				return v.(*rate.Limiter)
			}
		}
		return limiter
	}

	return func(c *gin.Context) {
		if !limiterFor(c.ClientIP()).Allow() {
			bizerror.HandleError(c, bizerror.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
