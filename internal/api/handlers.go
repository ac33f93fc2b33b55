package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitgenius/backend/internal/middleware"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "FitGenius API is running",
	})
}

// RegisterRateLimitRoutes registers an endpoint reporting the caller's
// remaining generation budget
func RegisterRateLimitRoutes(router *gin.RouterGroup, limiter *middleware.RateLimiter) {
	router.GET("/rate-limit", func(c *gin.Context) {
		if !limiter.Enabled() {
			c.JSON(http.StatusOK, gin.H{"enabled": false})
			return
		}

		remaining, resetTime, err := limiter.GetRemainingRequests(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Printf("[RateLimit] failed to read remaining requests: %v", err)
			c.JSON(http.StatusOK, gin.H{"enabled": false})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"enabled":    true,
			"limit":      limiter.Limit(),
			"remaining":  remaining,
			"reset_time": resetTime.Unix(),
			"window":     limiter.Window().String(),
		})
	})
}
