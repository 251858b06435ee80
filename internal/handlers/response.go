package handlers

import (
	"errors"
	"net/http"

	"github.com/eventlodge/room-assignment-backend/internal/middleware"
	"github.com/eventlodge/room-assignment-backend/internal/models"
	"github.com/eventlodge/room-assignment-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// respondError maps engine errors onto HTTP statuses. Unknown errors are
// reported as 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	var assignErr *models.AssignmentError
	if errors.As(err, &assignErr) {
		c.JSON(statusFor(assignErr.Type), gin.H{
			"status":  "error",
			"type":    string(assignErr.Type),
			"message": assignErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Internal server error",
	})
}

func statusFor(errType models.ErrorType) int {
	switch errType {
	case models.ErrorTypeNotFound:
		return http.StatusNotFound
	case models.ErrorTypeCrossScopeMismatch, models.ErrorTypeConfigError:
		return http.StatusBadRequest
	case models.ErrorTypeAlreadyAssigned, models.ErrorTypeNotAssigned, models.ErrorTypeDuplicateResource:
		return http.StatusConflict
	case models.ErrorTypeCapacityExceeded:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// respondBindError reports a malformed or incomplete request body
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Invalid request format",
		"error":   err.Error(),
	})
}

// actionContext captures the actor and request provenance for audit trails
func actionContext(c *gin.Context) services.ActionContext {
	actor := "system"
	if operator, ok := middleware.GetOperatorContext(c); ok {
		actor = operator.Name
	}
	return services.ActionContext{
		Actor:     actor,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}
}
