package handlers

import (
	"net/http"

	"github.com/eventlodge/room-assignment-backend/internal/models"
	"github.com/eventlodge/room-assignment-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AssignmentHandler handles HTTP requests for the assignment engine
type AssignmentHandler struct {
	service *services.AssignmentService
	logger  *logrus.Logger
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(service *services.AssignmentService, logger *logrus.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		service: service,
		logger:  logger,
	}
}

// ManualAssign handles POST /api/v1/events/:eventId/assignments/manual
func (h *AssignmentHandler) ManualAssign(c *gin.Context) {
	var req models.ManualAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	req.EventID = c.Param("eventId")

	result, err := h.service.ManualAssign(actionContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Client assigned",
		"data":    result,
	})
}

// BulkAssign handles POST /api/v1/events/:eventId/assignments/bulk
func (h *AssignmentHandler) BulkAssign(c *gin.Context) {
	var req models.BulkAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	req.EventID = c.Param("eventId")

	result, err := h.service.BulkAssign(actionContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Clients assigned",
		"data":    result,
	})
}

// AutoAssign handles POST /api/v1/events/:eventId/assignments/auto
func (h *AssignmentHandler) AutoAssign(c *gin.Context) {
	var req models.AutoAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	req.EventID = c.Param("eventId")

	result, err := h.service.AutoAssign(actionContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   result,
	})
}

// Move handles POST /api/v1/events/:eventId/assignments/move
func (h *AssignmentHandler) Move(c *gin.Context) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	req.EventID = c.Param("eventId")

	result, err := h.service.Move(actionContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Client moved",
		"data":    result,
	})
}

// Swap handles POST /api/v1/events/:eventId/assignments/swap
func (h *AssignmentHandler) Swap(c *gin.Context) {
	var req models.SwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	req.EventID = c.Param("eventId")

	result, err := h.service.Swap(actionContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Clients swapped",
		"data":    result,
	})
}

// Unassign handles DELETE /api/v1/events/:eventId/assignments/clients/:clientId
func (h *AssignmentHandler) Unassign(c *gin.Context) {
	result, err := h.service.Unassign(actionContext(c), c.Param("eventId"), c.Param("clientId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Client unassigned",
		"data":    result,
	})
}

// ClearAll handles DELETE /api/v1/events/:eventId/assignments
func (h *AssignmentHandler) ClearAll(c *gin.Context) {
	result, err := h.service.ClearAll(actionContext(c), c.Param("eventId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "All assignments cleared",
		"data":    result,
	})
}

// Validate handles GET /api/v1/events/:eventId/assignments/validate
func (h *AssignmentHandler) Validate(c *gin.Context) {
	report, err := h.service.Validate(c.Param("eventId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   report,
	})
}
