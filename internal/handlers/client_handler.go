package handlers

import (
	"net/http"

	"github.com/eventlodge/room-assignment-backend/internal/models"
	"github.com/eventlodge/room-assignment-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ClientHandler handles HTTP requests for client registration
type ClientHandler struct {
	service *services.ClientService
	logger  *logrus.Logger
}

// NewClientHandler creates a new client handler
func NewClientHandler(service *services.ClientService, logger *logrus.Logger) *ClientHandler {
	return &ClientHandler{
		service: service,
		logger:  logger,
	}
}

// Create handles POST /api/v1/events/:eventId/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req models.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	req.EventID = c.Param("eventId")

	client, err := h.service.Create(actionContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   client,
	})
}

// Get handles GET /api/v1/clients/:clientId
func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.service.Get(c.Param("clientId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   client,
	})
}

// ListByEvent handles GET /api/v1/events/:eventId/clients
func (h *ClientHandler) ListByEvent(c *gin.Context) {
	clients, err := h.service.ListByEvent(c.Param("eventId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(clients),
		"data":   clients,
	})
}

// ListUnassigned handles GET /api/v1/events/:eventId/clients/unassigned.
// Passing ?sort=priority orders the list by placement priority instead of
// insertion order.
func (h *ClientHandler) ListUnassigned(c *gin.Context) {
	byPriority := c.Query("sort") == "priority"
	clients, err := h.service.ListUnassigned(c.Param("eventId"), byPriority)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(clients),
		"data":   clients,
	})
}

// UpdateStatus handles PATCH /api/v1/clients/:clientId/status
func (h *ClientHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status models.ClientStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	client, err := h.service.UpdateStatus(actionContext(c), c.Param("clientId"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   client,
	})
}

// Delete handles DELETE /api/v1/clients/:clientId
func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(actionContext(c), c.Param("clientId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Client deleted",
	})
}
