package handlers

import (
	"net/http"

	"github.com/eventlodge/room-assignment-backend/internal/models"
	"github.com/eventlodge/room-assignment-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// InventoryHandler handles HTTP requests for hotels, room supply and
// logical rooms.
type InventoryHandler struct {
	service *services.InventoryService
	logger  *logrus.Logger
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(service *services.InventoryService, logger *logrus.Logger) *InventoryHandler {
	return &InventoryHandler{
		service: service,
		logger:  logger,
	}
}

// CreateHotel handles POST /api/v1/events/:eventId/hotels
func (h *InventoryHandler) CreateHotel(c *gin.Context) {
	var req models.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	req.EventID = c.Param("eventId")

	hotel, err := h.service.CreateHotel(actionContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   hotel,
	})
}

// GetHotel handles GET /api/v1/hotels/:hotelId
func (h *InventoryHandler) GetHotel(c *gin.Context) {
	hotel, err := h.service.GetHotel(c.Param("hotelId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   hotel,
	})
}

// ListHotels handles GET /api/v1/events/:eventId/hotels
func (h *InventoryHandler) ListHotels(c *gin.Context) {
	hotels, err := h.service.ListHotels(c.Param("eventId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(hotels),
		"data":   hotels,
	})
}

// GetRoster handles GET /api/v1/hotels/:hotelId/roster
func (h *InventoryHandler) GetRoster(c *gin.Context) {
	roster, err := h.service.GetRoster(c.Param("hotelId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(roster),
		"data":   roster,
	})
}

// DeclareRoomSupply handles POST /api/v1/events/:eventId/room-supply
func (h *InventoryHandler) DeclareRoomSupply(c *gin.Context) {
	var req models.CreateEventHotelAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	req.EventID = c.Param("eventId")

	assignment, err := h.service.DeclareRoomSupply(actionContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   assignment,
	})
}

// ListRoomSupply handles GET /api/v1/events/:eventId/room-supply
func (h *InventoryHandler) ListRoomSupply(c *gin.Context) {
	assignments, err := h.service.ListRoomSupply(c.Param("eventId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(assignments),
		"data":   assignments,
	})
}

// ReserveRooms handles POST /api/v1/room-supply/:assignmentId/reserve
func (h *InventoryHandler) ReserveRooms(c *gin.Context) {
	var req models.ReserveRoomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	assignment, err := h.service.ReserveRooms(actionContext(c), c.Param("assignmentId"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Rooms reserved",
		"data":    assignment,
	})
}

// SuspendSupply handles POST /api/v1/room-supply/:assignmentId/suspend
func (h *InventoryHandler) SuspendSupply(c *gin.Context) {
	assignment, err := h.service.SuspendSupply(actionContext(c), c.Param("assignmentId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Room supply suspended",
		"data":    assignment,
	})
}

// CreateLogicalRoom handles POST /api/v1/events/:eventId/logical-rooms
func (h *InventoryHandler) CreateLogicalRoom(c *gin.Context) {
	var req models.CreateLogicalRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	req.EventID = c.Param("eventId")

	room, err := h.service.CreateLogicalRoom(actionContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   room,
	})
}

// ListLogicalRooms handles GET /api/v1/hotels/:hotelId/logical-rooms
func (h *InventoryHandler) ListLogicalRooms(c *gin.Context) {
	rooms, err := h.service.ListLogicalRooms(c.Param("hotelId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(rooms),
		"data":   rooms,
	})
}

// BindRealRoomNumber handles PATCH /api/v1/logical-rooms/:roomId/real-room
func (h *InventoryHandler) BindRealRoomNumber(c *gin.Context) {
	var req struct {
		RealRoomNumber string `json:"real_room_number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	room, err := h.service.BindRealRoomNumber(actionContext(c), c.Param("roomId"), req.RealRoomNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   room,
	})
}
