package middlewares

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"quickbite/utils"
)

const (
	limitGeneral = rate.Limit(10)
	burstGeneral = 20
)

// visitor holds the limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors   = make(map[string]*visitor)
	visitorsMu sync.Mutex
)

func init() {
	go cleanupVisitors()
}

func getVisitor(key string) *rate.Limiter {
	visitorsMu.Lock()
	defer visitorsMu.Unlock()

	v, exists := visitors[key]
	if !exists {
		limiter := rate.NewLimiter(limitGeneral, burstGeneral)
		visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupVisitors drops stale buckets so the map doesn't grow unbounded.
func cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		visitorsMu.Lock()
		for key, v := range visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(visitors, key)
			}
		}
		visitorsMu.Unlock()
	}
}

// RateLimit applies a token bucket per authenticated user, falling back to
// the client IP for anonymous requests.
func RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		var key string
		if userID := utils.CurrentUserID(c); userID != 0 {
			key = fmt.Sprintf("user:%d", userID)
		} else {
			key = "ip:" + c.ClientIP()
		}

		if !getVisitor(key).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "message": "too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}
