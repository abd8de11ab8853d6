package middleware

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"frydays/libs"
	"frydays/metrics"
	"frydays/models"

	"github.com/gin-gonic/gin"
)

// RateLimit rejects a client IP with 429 once the limiter refuses it. A
// limiter backend failure lets the request through.
func RateLimit(limiter libs.Limiter, retryAfter time.Duration, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Printf("Rate limiter unavailable: %v", err)
			c.Next()
			return
		}

		if !allowed {
			metrics.RecordRateLimited(c.FullPath())
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse{
				Success: false,
				Message: message,
				Error:   "rate-limited",
			})
			return
		}

		c.Next()
	}
}
