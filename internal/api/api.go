package api

import (
	"github.com/gin-gonic/gin"

	"github.com/fitgenius/backend/internal/middleware"
	"github.com/fitgenius/backend/internal/service"
)

// Services bundles the dependencies of the HTTP handlers
type Services struct {
	BMI      service.IBMIService
	Profiles service.IProfileService
	Chat     service.IChatService
	Plans    service.IDietPlanService
	Tips     service.TipsProvider
}

// RegisterRoutes registers all API routes. The limiter guards the endpoints
// that call the text generator and may be nil.
func RegisterRoutes(router *gin.Engine, svc Services, limiter *middleware.RateLimiter) {
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	limit := limiter.RateLimitMiddleware()

	api := router.Group("/api")
	NewBMIHandler(svc.BMI).RegisterRoutes(api, limit)
	NewProfileHandler(svc.Profiles).RegisterRoutes(api)
	NewChatHandler(svc.Chat).RegisterRoutes(api, limit)
	NewDietPlanHandler(svc.Plans).RegisterRoutes(api, limit)
	NewHealthTipsHandler(svc.Tips).RegisterRoutes(api, limit)
	RegisterRateLimitRoutes(api, limiter)
}
