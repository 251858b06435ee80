package handlers

import (
	"net/http"

	"github.com/eventlodge/room-assignment-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StatsHandler handles HTTP requests for read-side statistics
type StatsHandler struct {
	service *services.StatsService
	logger  *logrus.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service *services.StatsService, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		logger:  logger,
	}
}

// EventStats handles GET /api/v1/events/:eventId/stats
func (h *StatsHandler) EventStats(c *gin.Context) {
	stats, err := h.service.EventStats(c.Param("eventId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   stats,
	})
}

// GroupReports handles GET /api/v1/events/:eventId/groups
func (h *StatsHandler) GroupReports(c *gin.Context) {
	groups, err := h.service.GroupReports(c.Param("eventId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(groups),
		"data":   groups,
	})
}

// GroupDetail handles GET /api/v1/events/:eventId/groups/:groupName
func (h *StatsHandler) GroupDetail(c *gin.Context) {
	detail, err := h.service.GroupDetail(c.Param("eventId"), c.Param("groupName"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   detail,
	})
}
