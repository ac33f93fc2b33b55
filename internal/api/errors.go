package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitgenius/backend/internal/middleware"
	"github.com/fitgenius/backend/internal/service"
)

// respondError maps a service error to a status code. Unexpected errors are
// logged and reported with a generic message.
func respondError(c *gin.Context, component string, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrMissingInput),
		errors.Is(err, service.ErrInvalidRecord):
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, middleware.ErrorResponse{Message: err.Error()})
	default:
		log.Printf("[%s] %s: %v", component, fallbackMsg, err)
		c.JSON(http.StatusInternalServerError, middleware.ErrorResponse{Message: fallbackMsg})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Message: msg})
}
