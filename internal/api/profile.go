package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitgenius/backend/internal/service"
	"github.com/fitgenius/backend/internal/types"
)

type ProfileHandler struct {
	profileService service.IProfileService
}

func NewProfileHandler(profileService service.IProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.POST("", h.CreateProfile)
		profile.GET("/:userId", h.GetProfile)
		profile.PUT("/:userId", h.UpdateProfile)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, "ProfileHandler", err, "Failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req types.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid profile data: "+err.Error())
		return
	}

	profile, err := h.profileService.CreateProfile(c.Request.Context(), req)
	if err != nil {
		respondError(c, "ProfileHandler", err, "Failed to create profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile merges the fields present in the body into the stored profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid profile data: "+err.Error())
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), c.Param("userId"), req)
	if err != nil {
		respondError(c, "ProfileHandler", err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}
