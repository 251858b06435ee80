package services

import (
	"github.com/eventlodge/room-assignment-backend/internal/database"
	"github.com/eventlodge/room-assignment-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// InventoryService manages the lodging supply side: hotels, the per-event
// room supply each hotel contributes, and logical rooms.
type InventoryService struct {
	hotelRepo      *database.HotelRepository
	eventRepo      *database.EventRepository
	eventHotelRepo *database.EventHotelAssignmentRepository
	roomRepo       *database.LogicalRoomRepository
	locks          *LockRegistry
	audit          *AuditService
	logger         *logrus.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	hotelRepo *database.HotelRepository,
	eventRepo *database.EventRepository,
	eventHotelRepo *database.EventHotelAssignmentRepository,
	roomRepo *database.LogicalRoomRepository,
	locks *LockRegistry,
	audit *AuditService,
	logger *logrus.Logger,
) *InventoryService {
	return &InventoryService{
		hotelRepo:      hotelRepo,
		eventRepo:      eventRepo,
		eventHotelRepo: eventHotelRepo,
		roomRepo:       roomRepo,
		locks:          locks,
		audit:          audit,
		logger:         logger,
	}
}

// CreateHotel registers a hotel bed pool under an event
func (s *InventoryService) CreateHotel(ctx ActionContext, req models.CreateHotelRequest) (*models.Hotel, error) {
	if err := req.Validate(); err != nil {
		return nil, models.NewConfigError(err.Error())
	}
	event, err := s.eventRepo.GetByID(req.EventID)
	if err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = models.HotelCategoryStandard
	}

	hotel := &models.Hotel{
		EventID:          event.ID,
		Name:             req.Name,
		Category:         category,
		AllowMixedGroups: req.AllowMixedGroups,
		TotalCapacity:    req.TotalCapacity,
	}
	if err := s.hotelRepo.Create(hotel); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"event_id": event.ID,
		"hotel_id": hotel.ID,
		"capacity": hotel.TotalCapacity,
	}).Info("Hotel registered")

	if err := s.audit.LogAction(ctx, AuditEntry{
		Action:     "create_hotel",
		EventID:    event.ID,
		EntityType: "hotel",
		EntityID:   hotel.ID,
	}); err != nil {
		s.logger.WithError(err).Warn("Failed to write audit entry")
	}

	return hotel, nil
}

// GetHotel returns one hotel with its live assigned count
func (s *InventoryService) GetHotel(hotelID string) (*models.Hotel, error) {
	return s.hotelRepo.GetByID(hotelID)
}

// ListHotels returns every hotel of an event in registration order
func (s *InventoryService) ListHotels(eventID string) ([]models.Hotel, error) {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		return nil, err
	}
	return s.hotelRepo.ListByEvent(eventID)
}

// GetRoster returns the occupied-bed records of one hotel
func (s *InventoryService) GetRoster(hotelID string) ([]models.HotelAssignment, error) {
	if _, err := s.hotelRepo.GetByID(hotelID); err != nil {
		return nil, err
	}
	return s.hotelRepo.GetRoster(hotelID)
}

// DeclareRoomSupply records the room tiers a hotel contributes to an event
func (s *InventoryService) DeclareRoomSupply(ctx ActionContext, req models.CreateEventHotelAssignmentRequest) (*models.EventHotelAssignment, error) {
	if err := req.Validate(); err != nil {
		return nil, models.NewConfigError(err.Error())
	}
	event, err := s.eventRepo.GetByID(req.EventID)
	if err != nil {
		return nil, err
	}
	hotel, err := s.hotelRepo.GetByID(req.HotelID)
	if err != nil {
		return nil, err
	}
	if hotel.EventID != event.ID {
		return nil, models.NewCrossScopeError("hotel", hotel.ID, event.ID)
	}

	assignment := &models.EventHotelAssignment{
		EventID: event.ID,
		HotelID: hotel.ID,
	}
	for _, tier := range req.AvailableRooms {
		assignment.AvailableRooms = append(assignment.AvailableRooms, models.RoomTier{
			BedCount:      tier.BedCount,
			Quantity:      tier.Quantity,
			PricePerNight: tier.PricePerNight,
		})
	}
	if err := s.eventHotelRepo.Create(assignment); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"event_id":       event.ID,
		"hotel_id":       hotel.ID,
		"total_capacity": assignment.TotalCapacity,
	}).Info("Room supply declared")

	if err := s.audit.LogAction(ctx, AuditEntry{
		Action:     "declare_room_supply",
		EventID:    event.ID,
		EntityType: "event_hotel_assignment",
		EntityID:   assignment.ID,
	}); err != nil {
		s.logger.WithError(err).Warn("Failed to write audit entry")
	}

	return assignment, nil
}

// ListRoomSupply returns every room supply declaration of an event
func (s *InventoryService) ListRoomSupply(eventID string) ([]models.EventHotelAssignment, error) {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		return nil, err
	}
	return s.eventHotelRepo.ListByEvent(eventID)
}

// ReserveRooms takes rooms from one bed-count tier of a supply
// declaration. Reserved rooms stay reserved when clients are later
// unassigned; use SuspendSupply to withdraw a hotel entirely.
func (s *InventoryService) ReserveRooms(ctx ActionContext, assignmentID string, req models.ReserveRoomsRequest) (*models.EventHotelAssignment, error) {
	assignment, err := s.eventHotelRepo.GetByID(assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment.Status == models.EventHotelStatusSuspended {
		return nil, models.NewConfigError("cannot reserve rooms on a suspended supply declaration")
	}

	release := s.locks.Acquire("supply:" + assignmentID)
	defer release()

	if err := s.eventHotelRepo.ReserveRooms(assignmentID, req.BedCount, req.RoomsNeeded); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"assignment_id": assignmentID,
		"bed_count":     req.BedCount,
		"rooms":         req.RoomsNeeded,
	}).Info("Rooms reserved")

	if err := s.audit.LogAction(ctx, AuditEntry{
		Action:     "reserve_rooms",
		EventID:    assignment.EventID,
		EntityType: "event_hotel_assignment",
		EntityID:   assignmentID,
		Details:    map[string]interface{}{"bed_count": req.BedCount, "rooms_needed": req.RoomsNeeded},
	}); err != nil {
		s.logger.WithError(err).Warn("Failed to write audit entry")
	}

	return s.eventHotelRepo.GetByID(assignmentID)
}

// SuspendSupply withdraws a hotel's room supply from an event without
// deleting the declaration.
func (s *InventoryService) SuspendSupply(ctx ActionContext, assignmentID string) (*models.EventHotelAssignment, error) {
	assignment, err := s.eventHotelRepo.GetByID(assignmentID)
	if err != nil {
		return nil, err
	}

	if err := s.eventHotelRepo.UpdateStatus(assignmentID, models.EventHotelStatusSuspended); err != nil {
		return nil, err
	}

	s.logger.WithField("assignment_id", assignmentID).Info("Room supply suspended")

	if err := s.audit.LogAction(ctx, AuditEntry{
		Action:     "suspend_room_supply",
		EventID:    assignment.EventID,
		EntityType: "event_hotel_assignment",
		EntityID:   assignmentID,
	}); err != nil {
		s.logger.WithError(err).Warn("Failed to write audit entry")
	}

	return s.eventHotelRepo.GetByID(assignmentID)
}

// CreateLogicalRoom declares a conceptual room within a hotel
func (s *InventoryService) CreateLogicalRoom(ctx ActionContext, req models.CreateLogicalRoomRequest) (*models.LogicalRoom, error) {
	if err := req.Validate(); err != nil {
		return nil, models.NewConfigError(err.Error())
	}
	hotel, err := s.hotelRepo.GetByID(req.HotelID)
	if err != nil {
		return nil, err
	}
	if hotel.EventID != req.EventID {
		return nil, models.NewCrossScopeError("hotel", hotel.ID, req.EventID)
	}

	room := &models.LogicalRoom{
		EventID:     req.EventID,
		HotelID:     hotel.ID,
		RoomType:    req.RoomType,
		BedCount:    req.BedCount,
		MaxCapacity: req.MaxCapacity,
	}
	if err := s.roomRepo.Create(room); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"event_id":  req.EventID,
		"hotel_id":  hotel.ID,
		"room_id":   room.ID,
		"room_type": room.RoomType,
	}).Info("Logical room declared")

	if err := s.audit.LogAction(ctx, AuditEntry{
		Action:     "create_logical_room",
		EventID:    req.EventID,
		EntityType: "logical_room",
		EntityID:   room.ID,
	}); err != nil {
		s.logger.WithError(err).Warn("Failed to write audit entry")
	}

	return room, nil
}

// ListLogicalRooms returns the logical rooms of one hotel
func (s *InventoryService) ListLogicalRooms(hotelID string) ([]models.LogicalRoom, error) {
	if _, err := s.hotelRepo.GetByID(hotelID); err != nil {
		return nil, err
	}
	return s.roomRepo.ListByHotel(hotelID)
}

// BindRealRoomNumber attaches the physical room number to a logical room
// for on-site check-in.
func (s *InventoryService) BindRealRoomNumber(ctx ActionContext, roomID, realRoomNumber string) (*models.LogicalRoom, error) {
	if realRoomNumber == "" {
		return nil, models.NewConfigError("real_room_number is required")
	}
	room, err := s.roomRepo.GetByID(roomID)
	if err != nil {
		return nil, err
	}

	if err := s.roomRepo.BindRealRoomNumber(roomID, realRoomNumber); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"room_id":          roomID,
		"real_room_number": realRoomNumber,
	}).Info("Real room number bound")

	if err := s.audit.LogAction(ctx, AuditEntry{
		Action:     "bind_real_room",
		EventID:    room.EventID,
		EntityType: "logical_room",
		EntityID:   roomID,
		Details:    map[string]interface{}{"real_room_number": realRoomNumber},
	}); err != nil {
		s.logger.WithError(err).Warn("Failed to write audit entry")
	}

	return s.roomRepo.GetByID(roomID)
}
