package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitgenius/backend/internal/service"
	"github.com/fitgenius/backend/internal/types"
)

type DietPlanHandler struct {
	dietPlanService service.IDietPlanService
}

func NewDietPlanHandler(dietPlanService service.IDietPlanService) *DietPlanHandler {
	return &DietPlanHandler{
		dietPlanService: dietPlanService,
	}
}

func (h *DietPlanHandler) RegisterRoutes(router *gin.RouterGroup, limit gin.HandlerFunc) {
	plans := router.Group("/diet-plans")
	{
		plans.POST("", limit, h.CreatePlan)
		plans.GET("/:userId", h.ListPlans)
	}
}

func (h *DietPlanHandler) CreatePlan(c *gin.Context) {
	var req types.CreateDietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid diet plan request: "+err.Error())
		return
	}

	plan, err := h.dietPlanService.CreatePlan(c.Request.Context(), req)
	if err != nil {
		respondError(c, "DietPlanHandler", err, "Failed to generate diet plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *DietPlanHandler) ListPlans(c *gin.Context) {
	plans, err := h.dietPlanService.Plans(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, "DietPlanHandler", err, "Failed to fetch diet plans")
		return
	}

	c.JSON(http.StatusOK, plans)
}
