package handlers

import (
	"net/http"

	"github.com/eventlodge/room-assignment-backend/internal/models"
	"github.com/eventlodge/room-assignment-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// EventHandler handles HTTP requests for events
type EventHandler struct {
	service *services.EventService
	logger  *logrus.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(service *services.EventService, logger *logrus.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		logger:  logger,
	}
}

// Create handles POST /api/v1/events
func (h *EventHandler) Create(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	event, err := h.service.Create(actionContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   event,
	})
}

// Get handles GET /api/v1/events/:eventId
func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.service.Get(c.Param("eventId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   event,
	})
}
