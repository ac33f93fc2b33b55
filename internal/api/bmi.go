package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitgenius/backend/internal/service"
	"github.com/fitgenius/backend/internal/types"
)

type BMIHandler struct {
	bmiService service.IBMIService
}

func NewBMIHandler(bmiService service.IBMIService) *BMIHandler {
	return &BMIHandler{
		bmiService: bmiService,
	}
}

func (h *BMIHandler) RegisterRoutes(router *gin.RouterGroup, limit gin.HandlerFunc) {
	bmi := router.Group("/bmi")
	{
		bmi.POST("", limit, h.CreateRecord)
		bmi.GET("/:userId", h.ListRecords)
	}
}

// CreateRecord calculates a BMI, attaches recommendations and stores the result
func (h *BMIHandler) CreateRecord(c *gin.Context) {
	var req types.CreateBMIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid BMI data: "+err.Error())
		return
	}

	record, err := h.bmiService.Assess(c.Request.Context(), req)
	if err != nil {
		respondError(c, "BMIHandler", err, "Failed to calculate BMI")
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *BMIHandler) ListRecords(c *gin.Context) {
	records, err := h.bmiService.History(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, "BMIHandler", err, "Failed to fetch BMI records")
		return
	}

	c.JSON(http.StatusOK, records)
}
