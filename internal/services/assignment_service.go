package services

import (
	"fmt"

	"github.com/eventlodge/room-assignment-backend/internal/database"
	"github.com/eventlodge/room-assignment-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// moveWarning is attached to move and swap results because those
// operations intentionally skip group-cohesion and gender checks as an
// operator escape hatch.
const moveWarning = "group and gender constraints were not re-checked for this operation"

// PostCommitHook runs after a committed engine mutation so dependent
// aggregates (event counters, supply status) can be recomputed explicitly
// instead of through hidden triggers.
type PostCommitHook func(eventID string)

// AssignmentService is the room assignment engine. Every mutating
// operation serializes writers per affected hotel and client through the
// lock registry, then commits through conditional statements that re-check
// the capacity invariant.
type AssignmentService struct {
	clientRepo *database.ClientRepository
	hotelRepo  *database.HotelRepository
	eventRepo  *database.EventRepository
	locks      *LockRegistry
	audit      *AuditService
	logger     *logrus.Logger
	hooks      []PostCommitHook
}

// NewAssignmentService creates a new assignment engine
func NewAssignmentService(
	clientRepo *database.ClientRepository,
	hotelRepo *database.HotelRepository,
	eventRepo *database.EventRepository,
	locks *LockRegistry,
	audit *AuditService,
	logger *logrus.Logger,
) *AssignmentService {
	return &AssignmentService{
		clientRepo: clientRepo,
		hotelRepo:  hotelRepo,
		eventRepo:  eventRepo,
		locks:      locks,
		audit:      audit,
		logger:     logger,
	}
}

// RegisterHook adds a post-commit hook
func (s *AssignmentService) RegisterHook(hook PostCommitHook) {
	s.hooks = append(s.hooks, hook)
}

func (s *AssignmentService) firePostCommit(eventID string) {
	for _, hook := range s.hooks {
		hook(eventID)
	}
}

func hotelLockKey(hotelID string) string   { return "hotel:" + hotelID }
func clientLockKey(clientID string) string { return "client:" + clientID }

// ManualAssign places one client into one hotel
func (s *AssignmentService) ManualAssign(ctx ActionContext, req models.ManualAssignRequest) (*models.ManualAssignResult, error) {
	client, err := s.clientRepo.GetByID(req.ClientID)
	if err != nil {
		return nil, err
	}
	hotel, err := s.hotelRepo.GetByID(req.HotelID)
	if err != nil {
		return nil, err
	}

	if client.EventID != req.EventID {
		return nil, models.NewCrossScopeError("client", client.ID, req.EventID)
	}
	if hotel.EventID != req.EventID {
		return nil, models.NewCrossScopeError("hotel", hotel.ID, req.EventID)
	}
	if client.IsAssigned() {
		return nil, models.NewAlreadyAssignedError(client.ID)
	}

	release := s.locks.Acquire(hotelLockKey(hotel.ID), clientLockKey(client.ID))
	defer release()

	assigned, err := s.hotelRepo.CountAssigned(hotel.ID)
	if err != nil {
		return nil, err
	}
	if assigned >= hotel.TotalCapacity {
		return nil, models.NewCapacityError(fmt.Sprintf("hotel %q is full", hotel.Name))
	}

	record := &models.HotelAssignment{
		HotelID:        hotel.ID,
		ClientID:       client.ID,
		AssignedBy:     ctx.Actor,
		AssignmentType: models.AssignmentTypeManual,
	}
	if err := s.hotelRepo.AddAssignment(record); err != nil {
		return nil, err
	}
	if err := s.clientRepo.SetAssignment(client.ID, hotel.ID, nil, ctx.Actor, models.AssignmentTypeManual); err != nil {
		// Roll the roster record back so the bed is not leaked
		if rbErr := s.hotelRepo.RemoveAssignment(hotel.ID, client.ID); rbErr != nil {
			s.logger.WithError(rbErr).WithField("client_id", client.ID).Error("Failed to roll back roster record")
		}
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"event_id":  req.EventID,
		"client_id": client.ID,
		"hotel_id":  hotel.ID,
		"actor":     ctx.Actor,
	}).Info("Client manually assigned")

	if err := s.audit.LogAction(ctx, AuditEntry{
		Action:     "manual_assign",
		EventID:    req.EventID,
		EntityType: "client",
		EntityID:   client.ID,
		Details:    map[string]interface{}{"hotel_id": hotel.ID},
	}); err != nil {
		s.logger.WithError(err).Warn("Failed to write audit entry")
	}
	s.firePostCommit(req.EventID)

	client, err = s.clientRepo.GetByID(client.ID)
	if err != nil {
		return nil, err
	}
	hotel, err = s.hotelRepo.GetByID(hotel.ID)
	if err != nil {
		return nil, err
	}

	return &models.ManualAssignResult{Client: client, Hotel: hotel, Assignment: record}, nil
}

// BulkAssign places a list of clients into one hotel as a unit: either
// every listed client is assigned or none are.
func (s *AssignmentService) BulkAssign(ctx ActionContext, req models.BulkAssignRequest) (*models.BulkAssignResult, error) {
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

	keys := make([]string, 0, len(req.ClientIDs)+1)
	keys = append(keys, hotelLockKey(hotel.ID))
	for _, clientID := range req.ClientIDs {
		keys = append(keys, clientLockKey(clientID))
	}
	release := s.locks.Acquire(keys...)
	defer release()

	clients, err := s.clientRepo.GetByIDs(req.ClientIDs)
	if err != nil {
		return nil, err
	}
	if len(clients) != len(req.ClientIDs) {
		found := make(map[string]bool, len(clients))
		for _, client := range clients {
			found[client.ID] = true
		}
		for _, clientID := range req.ClientIDs {
			if !found[clientID] {
				return nil, models.NewNotFoundError("client", clientID)
			}
		}
	}
	for i := range clients {
		client := &clients[i]
		if client.EventID != req.EventID {
			return nil, models.NewCrossScopeError("client", client.ID, req.EventID)
		}
		if client.IsAssigned() {
			return nil, models.NewAlreadyAssignedError(client.ID)
		}
	}

	assigned, err := s.hotelRepo.CountAssigned(hotel.ID)
	if err != nil {
		return nil, err
	}
	if len(clients) > hotel.TotalCapacity-assigned {
		return nil, models.NewCapacityError(fmt.Sprintf(
			"hotel %q has %d free beds, %d requested",
			hotel.Name, hotel.TotalCapacity-assigned, len(clients)))
	}

	records, err := s.commitBatch(ctx, clients, hotel.ID, models.AssignmentTypeBulk)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"event_id": req.EventID,
		"hotel_id": hotel.ID,
		"count":    len(clients),
		"actor":    ctx.Actor,
	}).Info("Clients bulk assigned")

	if err := s.audit.LogAction(ctx, AuditEntry{
		Action:     "bulk_assign",
		EventID:    req.EventID,
		EntityType: "hotel",
		EntityID:   hotel.ID,
		Details:    map[string]interface{}{"client_ids": req.ClientIDs},
	}); err != nil {
		s.logger.WithError(err).Warn("Failed to write audit entry")
	}
	s.firePostCommit(req.EventID)

	hotel, err = s.hotelRepo.GetByID(hotel.ID)
	if err != nil {
		return nil, err
	}

	return &models.BulkAssignResult{
		AssignedCount: len(records),
		Hotel:         hotel,
		Assignments:   records,
	}, nil
}

// commitBatch assigns every client to the hotel, rolling back all applied
// mutations when any single one fails.
func (s *AssignmentService) commitBatch(
	ctx ActionContext,
	clients []models.Client,
	hotelID string,
	assignmentType models.AssignmentType,
) ([]models.AssignmentRecord, error) {
	committed := []models.Client{}

	rollback := func() {
		for _, client := range committed {
			if err := s.hotelRepo.RemoveAssignment(hotelID, client.ID); err != nil {
				s.logger.WithError(err).WithField("client_id", client.ID).Error("Rollback: failed to remove roster record")
			}
			if err := s.clientRepo.ClearAssignment(client.ID); err != nil {
				s.logger.WithError(err).WithField("client_id", client.ID).Error("Rollback: failed to clear assignment")
			}
		}
	}

	records := make([]models.AssignmentRecord, 0, len(clients))
	for _, client := range clients {
		record := &models.HotelAssignment{
			HotelID:        hotelID,
			ClientID:       client.ID,
			AssignedBy:     ctx.Actor,
			AssignmentType: assignmentType,
		}
		if err := s.hotelRepo.AddAssignment(record); err != nil {
			rollback()
			return nil, err
		}
		if err := s.clientRepo.SetAssignment(client.ID, hotelID, nil, ctx.Actor, assignmentType); err != nil {
			if rbErr := s.hotelRepo.RemoveAssignment(hotelID, client.ID); rbErr != nil {
				s.logger.WithError(rbErr).WithField("client_id", client.ID).Error("Rollback: failed to remove roster record")
			}
			rollback()
			return nil, err
		}
		committed = append(committed, client)

		groupName := ""
		if client.GroupName != nil {
			groupName = *client.GroupName
		}
		records = append(records, models.AssignmentRecord{
			ClientID:   client.ID,
			ClientName: client.Name,
			HotelID:    hotelID,
			GroupName:  groupName,
		})
	}

	return records, nil
}

// AutoAssign runs the packing algorithm over every unassigned client of
// the event. Group placements commit all-or-nothing; solo placements
// commit one at a time and earlier successes survive later failures. The
// operation never aborts on a single placement failure.
func (s *AssignmentService) AutoAssign(ctx ActionContext, req models.AutoAssignRequest) (*models.AutoAssignResult, error) {
	event, err := s.eventRepo.GetByID(req.EventID)
	if err != nil {
		return nil, err
	}

	hotels, err := s.hotelRepo.ListByEvent(event.ID)
	if err != nil {
		return nil, err
	}
	clients, err := s.clientRepo.ListUnassigned(event.ID)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(hotels)+len(clients))
	for _, hotel := range hotels {
		keys = append(keys, hotelLockKey(hotel.ID))
	}
	for _, client := range clients {
		keys = append(keys, clientLockKey(client.ID))
	}
	release := s.locks.Acquire(keys...)
	defer release()

	opts := AutoAssignOptions{
		PrioritizeVIP:         req.PrioritizeVIP,
		RespectGroupIntegrity: req.RespectGroupIntegrity,
		AllowMixedGroups:      req.AllowMixedGroups || event.AllowMixedGroups,
	}
	plan := PlanAutoAssign(clients, hotels, opts)

	result := &models.AutoAssignResult{
		TotalClients: len(clients),
		Assignments:  []models.AssignmentRecord{},
		Groups:       []models.GroupPlacement{},
		Errors:       plan.Errors,
	}
	if result.Errors == nil {
		result.Errors = []models.PlacementError{}
	}

	hotelNames := make(map[string]string, len(hotels))
	for _, hotel := range hotels {
		hotelNames[hotel.ID] = hotel.Name
	}

	for _, batch := range plan.Batches {
		records, err := s.commitBatch(ctx, batch.Clients, batch.HotelID, models.AssignmentTypeAuto)
		if err != nil {
			// A failed batch becomes an error entry; the run continues
			placementErr := models.PlacementError{Reason: err.Error()}
			if batch.GroupName != "" {
				placementErr.GroupName = batch.GroupName
			} else {
				placementErr.ClientID = batch.Clients[0].ID
				placementErr.ClientName = batch.Clients[0].Name
			}
			result.Errors = append(result.Errors, placementErr)
			continue
		}

		for i := range records {
			records[i].HotelName = hotelNames[batch.HotelID]
		}
		result.Assignments = append(result.Assignments, records...)
		result.AssignedCount += len(records)

		if batch.GroupName != "" {
			result.Groups = append(result.Groups, models.GroupPlacement{
				GroupName:   batch.GroupName,
				MemberCount: len(batch.Clients),
				HotelID:     batch.HotelID,
				HotelName:   hotelNames[batch.HotelID],
				IsMixed:     batch.IsMixed,
			})
		}
	}

	s.logger.WithFields(logrus.Fields{
		"event_id":       event.ID,
		"assigned_count": result.AssignedCount,
		"total_clients":  result.TotalClients,
		"errors":         len(result.Errors),
		"actor":          ctx.Actor,
	}).Info("Automatic assignment completed")

	if err := s.audit.LogAction(ctx, AuditEntry{
		Action:     "auto_assign",
		EventID:    event.ID,
		EntityType: "event",
		Details: map[string]interface{}{
			"assigned_count": result.AssignedCount,
			"total_clients":  result.TotalClients,
		},
	}); err != nil {
		s.logger.WithError(err).Warn("Failed to write audit entry")
	}
	s.firePostCommit(event.ID)

	return result, nil
}

// Move relocates an assigned client to another hotel. Group and gender
// constraints are not re-validated; the result carries a warning instead.
func (s *AssignmentService) Move(ctx ActionContext, req models.MoveRequest) (*models.MoveResult, error) {
	client, err := s.clientRepo.GetByID(req.ClientID)
	if err != nil {
		return nil, err
	}
	fromHotel, err := s.hotelRepo.GetByID(req.FromHotelID)
	if err != nil {
		return nil, err
	}
	toHotel, err := s.hotelRepo.GetByID(req.ToHotelID)
	if err != nil {
		return nil, err
	}

	if client.EventID != req.EventID || fromHotel.EventID != req.EventID || toHotel.EventID != req.EventID {
		return nil, models.NewCrossScopeError("client or hotel", client.ID, req.EventID)
	}
	if client.AssignedHotel == nil || *client.AssignedHotel != fromHotel.ID {
		return nil, models.NewNotAssignedError(client.ID)
	}

	release := s.locks.Acquire(
		hotelLockKey(fromHotel.ID), hotelLockKey(toHotel.ID), clientLockKey(client.ID))
	defer release()

	assigned, err := s.hotelRepo.CountAssigned(toHotel.ID)
	if err != nil {
		return nil, err
	}
	if assigned >= toHotel.TotalCapacity {
		return nil, models.NewCapacityError(fmt.Sprintf("destination hotel %q is full", toHotel.Name))
	}

	record := &models.HotelAssignment{
		HotelID:        toHotel.ID,
		ClientID:       client.ID,
		AssignedBy:     ctx.Actor,
		AssignmentType: models.AssignmentTypeManual,
	}
	if err := s.hotelRepo.AddAssignment(record); err != nil {
		return nil, err
	}
	if err := s.hotelRepo.RemoveAssignment(fromHotel.ID, client.ID); err != nil {
		if rbErr := s.hotelRepo.RemoveAssignment(toHotel.ID, client.ID); rbErr != nil {
			s.logger.WithError(rbErr).WithField("client_id", client.ID).Error("Failed to roll back move")
		}
		return nil, err
	}
	if err := s.clientRepo.UpdateAssignedHotel(client.ID, toHotel.ID); err != nil {
		// Revert the roster move so the client pointer and the rosters
		// stay consistent
		if rbErr := s.hotelRepo.RemoveAssignment(toHotel.ID, client.ID); rbErr != nil {
			s.logger.WithError(rbErr).WithField("client_id", client.ID).Error("Move rollback: failed to remove roster record")
		}
		restore := &models.HotelAssignment{
			HotelID:        fromHotel.ID,
			ClientID:       client.ID,
			AssignedBy:     ctx.Actor,
			AssignmentType: models.AssignmentTypeManual,
		}
		if rbErr := s.hotelRepo.AddAssignment(restore); rbErr != nil {
			s.logger.WithError(rbErr).WithField("client_id", client.ID).Error("Move rollback: failed to restore roster record")
		}
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"event_id":  req.EventID,
		"client_id": client.ID,
		"from":      fromHotel.ID,
		"to":        toHotel.ID,
		"actor":     ctx.Actor,
	}).Info("Client moved between hotels")

	if err := s.audit.LogAction(ctx, AuditEntry{
		Action:     "move",
		EventID:    req.EventID,
		EntityType: "client",
		EntityID:   client.ID,
		Details:    map[string]interface{}{"from_hotel_id": fromHotel.ID, "to_hotel_id": toHotel.ID},
	}); err != nil {
		s.logger.WithError(err).Warn("Failed to write audit entry")
	}
	s.firePostCommit(req.EventID)

	client, err = s.clientRepo.GetByID(client.ID)
	if err != nil {
		return nil, err
	}
	fromHotel, err = s.hotelRepo.GetByID(fromHotel.ID)
	if err != nil {
		return nil, err
	}
	toHotel, err = s.hotelRepo.GetByID(toHotel.ID)
	if err != nil {
		return nil, err
	}

	return &models.MoveResult{
		Client:    client,
		FromHotel: fromHotel,
		ToHotel:   toHotel,
		Warnings:  []string{moveWarning},
	}, nil
}

// Swap exchanges the hotel assignments of two clients. Occupancy counts
// are unchanged so no capacity check is needed.
func (s *AssignmentService) Swap(ctx ActionContext, req models.SwapRequest) (*models.SwapResult, error) {
	if req.Client1ID == req.Client2ID {
		return nil, models.NewConfigError("cannot swap a client with itself")
	}

	client1, err := s.clientRepo.GetByID(req.Client1ID)
	if err != nil {
		return nil, err
	}
	client2, err := s.clientRepo.GetByID(req.Client2ID)
	if err != nil {
		return nil, err
	}

	if client1.EventID != req.EventID {
		return nil, models.NewCrossScopeError("client", client1.ID, req.EventID)
	}
	if client2.EventID != req.EventID {
		return nil, models.NewCrossScopeError("client", client2.ID, req.EventID)
	}
	if client1.AssignedHotel == nil {
		return nil, models.NewNotAssignedError(client1.ID)
	}
	if client2.AssignedHotel == nil {
		return nil, models.NewNotAssignedError(client2.ID)
	}

	hotel1ID := *client1.AssignedHotel
	hotel2ID := *client2.AssignedHotel

	release := s.locks.Acquire(
		hotelLockKey(hotel1ID), hotelLockKey(hotel2ID),
		clientLockKey(client1.ID), clientLockKey(client2.ID))
	defer release()

	if hotel1ID != hotel2ID {
		// Every applied step pushes its inverse so a later failure can
		// unwind the exchange and leave both clients where they started.
		restoreRoster := func(hotelID, clientID string) func() {
			return func() {
				record := &models.HotelAssignment{
					HotelID:        hotelID,
					ClientID:       clientID,
					AssignedBy:     ctx.Actor,
					AssignmentType: models.AssignmentTypeManual,
				}
				if rbErr := s.hotelRepo.AddAssignment(record); rbErr != nil {
					s.logger.WithError(rbErr).WithField("client_id", clientID).Error("Swap rollback: failed to restore roster record")
				}
			}
		}
		dropRoster := func(hotelID, clientID string) func() {
			return func() {
				if rbErr := s.hotelRepo.RemoveAssignment(hotelID, clientID); rbErr != nil {
					s.logger.WithError(rbErr).WithField("client_id", clientID).Error("Swap rollback: failed to remove roster record")
				}
			}
		}
		var undo []func()
		revert := func() {
			for i := len(undo) - 1; i >= 0; i-- {
				undo[i]()
			}
		}

		// Free both beds first so the cross inserts cannot trip the
		// capacity guard on a full hotel.
		if err := s.hotelRepo.RemoveAssignment(hotel1ID, client1.ID); err != nil {
			return nil, err
		}
		undo = append(undo, restoreRoster(hotel1ID, client1.ID))
		if err := s.hotelRepo.RemoveAssignment(hotel2ID, client2.ID); err != nil {
			revert()
			return nil, err
		}
		undo = append(undo, restoreRoster(hotel2ID, client2.ID))
		record1 := &models.HotelAssignment{
			HotelID: hotel2ID, ClientID: client1.ID,
			AssignedBy: ctx.Actor, AssignmentType: models.AssignmentTypeManual,
		}
		if err := s.hotelRepo.AddAssignment(record1); err != nil {
			revert()
			return nil, err
		}
		undo = append(undo, dropRoster(hotel2ID, client1.ID))
		record2 := &models.HotelAssignment{
			HotelID: hotel1ID, ClientID: client2.ID,
			AssignedBy: ctx.Actor, AssignmentType: models.AssignmentTypeManual,
		}
		if err := s.hotelRepo.AddAssignment(record2); err != nil {
			revert()
			return nil, err
		}
		undo = append(undo, dropRoster(hotel1ID, client2.ID))
		if err := s.clientRepo.UpdateAssignedHotel(client1.ID, hotel2ID); err != nil {
			revert()
			return nil, err
		}
		undo = append(undo, func() {
			if rbErr := s.clientRepo.UpdateAssignedHotel(client1.ID, hotel1ID); rbErr != nil {
				s.logger.WithError(rbErr).WithField("client_id", client1.ID).Error("Swap rollback: failed to restore hotel pointer")
			}
		})
		if err := s.clientRepo.UpdateAssignedHotel(client2.ID, hotel1ID); err != nil {
			revert()
			return nil, err
		}
	}

	hotel1, err := s.hotelRepo.GetByID(hotel1ID)
	if err != nil {
		return nil, err
	}
	hotel2, err := s.hotelRepo.GetByID(hotel2ID)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"event_id": req.EventID,
		"client1":  client1.ID,
		"client2":  client2.ID,
		"actor":    ctx.Actor,
	}).Info("Clients swapped between hotels")

	if err := s.audit.LogAction(ctx, AuditEntry{
		Action:     "swap",
		EventID:    req.EventID,
		EntityType: "client",
		EntityID:   client1.ID,
		Details:    map[string]interface{}{"client2_id": client2.ID},
	}); err != nil {
		s.logger.WithError(err).Warn("Failed to write audit entry")
	}
	s.firePostCommit(req.EventID)

	return &models.SwapResult{
		Client1:  models.SwappedClient{Name: client1.Name, NewHotel: hotel2.Name},
		Client2:  models.SwappedClient{Name: client2.Name, NewHotel: hotel1.Name},
		Warnings: []string{moveWarning},
	}, nil
}

// Unassign removes a client's assignment, reverting the lifecycle status
// and clearing all assignment fields. Unassigning a client without an
// assignment is a no-op, not an error.
func (s *AssignmentService) Unassign(ctx ActionContext, eventID, clientID string) (*models.UnassignResult, error) {
	client, err := s.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client.EventID != eventID {
		return nil, models.NewCrossScopeError("client", client.ID, eventID)
	}

	if client.AssignedHotel == nil {
		return &models.UnassignResult{Client: client}, nil
	}
	hotelID := *client.AssignedHotel

	release := s.locks.Acquire(hotelLockKey(hotelID), clientLockKey(client.ID))
	defer release()

	if err := s.hotelRepo.RemoveAssignment(hotelID, client.ID); err != nil {
		return nil, err
	}
	if err := s.clientRepo.ClearAssignment(client.ID); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"event_id":  eventID,
		"client_id": client.ID,
		"hotel_id":  hotelID,
		"actor":     ctx.Actor,
	}).Info("Client unassigned")

	if err := s.audit.LogAction(ctx, AuditEntry{
		Action:     "unassign",
		EventID:    eventID,
		EntityType: "client",
		EntityID:   client.ID,
		Details:    map[string]interface{}{"hotel_id": hotelID},
	}); err != nil {
		s.logger.WithError(err).Warn("Failed to write audit entry")
	}
	s.firePostCommit(eventID)

	client, err = s.clientRepo.GetByID(client.ID)
	if err != nil {
		return nil, err
	}
	hotel, err := s.hotelRepo.GetByID(hotelID)
	if err != nil {
		return nil, err
	}

	return &models.UnassignResult{Client: client, Hotel: hotel}, nil
}

// ClearAll resets every client of the event and empties every hotel
// roster. Destructive and idempotent; no reversible log is kept.
func (s *AssignmentService) ClearAll(ctx ActionContext, eventID string) (*models.ClearAllResult, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}

	hotels, err := s.hotelRepo.ListByEvent(event.ID)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(hotels))
	for _, hotel := range hotels {
		keys = append(keys, hotelLockKey(hotel.ID))
	}
	release := s.locks.Acquire(keys...)
	defer release()

	clearedClients, err := s.clientRepo.ClearAllByEvent(event.ID)
	if err != nil {
		return nil, err
	}
	clearedHotels, err := s.hotelRepo.ClearRostersByEvent(event.ID)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"event_id":        event.ID,
		"cleared_clients": clearedClients,
		"cleared_hotels":  clearedHotels,
		"actor":           ctx.Actor,
	}).Info("All assignments cleared")

	if err := s.audit.LogAction(ctx, AuditEntry{
		Action:     "clear_all",
		EventID:    event.ID,
		EntityType: "event",
		Details: map[string]interface{}{
			"cleared_clients": clearedClients,
			"cleared_hotels":  clearedHotels,
		},
	}); err != nil {
		s.logger.WithError(err).Warn("Failed to write audit entry")
	}
	s.firePostCommit(event.ID)

	return &models.ClearAllResult{
		ClearedClients: clearedClients,
		ClearedHotels:  clearedHotels,
	}, nil
}

// Validate runs the read-only assignment audit for an event
func (s *AssignmentService) Validate(eventID string) (*models.ValidationReport, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}

	hotels, err := s.hotelRepo.ListByEvent(event.ID)
	if err != nil {
		return nil, err
	}
	clients, err := s.clientRepo.ListByEvent(event.ID)
	if err != nil {
		return nil, err
	}

	report := BuildValidationReport(hotels, clients)
	stats := BuildEventStats(event.ID, hotels, clients)
	report.Stats = &stats
	return &report, nil
}
