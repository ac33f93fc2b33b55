package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitgenius/backend/internal/service"
	"github.com/fitgenius/backend/internal/types"
)

type HealthTipsHandler struct {
	tips service.TipsProvider
}

func NewHealthTipsHandler(tips service.TipsProvider) *HealthTipsHandler {
	return &HealthTipsHandler{
		tips: tips,
	}
}

func (h *HealthTipsHandler) RegisterRoutes(router *gin.RouterGroup, limit gin.HandlerFunc) {
	router.POST("/health-tips", limit, h.GetTips)
}

// GetTips never fails once the body parses: unknown categories get general tips
func (h *HealthTipsHandler) GetTips(c *gin.Context) {
	var req types.HealthTipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid health tips request: "+err.Error())
		return
	}

	tips := h.tips.ForCategory(c.Request.Context(), service.TipsContext{
		Category: req.Category,
		Profile:  req.UserProfile,
	})

	c.JSON(http.StatusOK, types.HealthTipsResponse{Tips: tips})
}
