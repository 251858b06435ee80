package services

import (
	"fmt"

	"github.com/eventlodge/room-assignment-backend/internal/database"
	"github.com/eventlodge/room-assignment-backend/internal/models"
	"github.com/eventlodge/room-assignment-backend/pkg/validator"
	"github.com/sirupsen/logrus"
)

// ClientService manages client registration and lifecycle
type ClientService struct {
	clientRepo *database.ClientRepository
	hotelRepo  *database.HotelRepository
	eventRepo  *database.EventRepository
	locks      *LockRegistry
	audit      *AuditService
	logger     *logrus.Logger
	hooks      []PostCommitHook
}

// NewClientService creates a new client service
func NewClientService(
	clientRepo *database.ClientRepository,
	hotelRepo *database.HotelRepository,
	eventRepo *database.EventRepository,
	locks *LockRegistry,
	audit *AuditService,
	logger *logrus.Logger,
) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		hotelRepo:  hotelRepo,
		eventRepo:  eventRepo,
		locks:      locks,
		audit:      audit,
		logger:     logger,
	}
}

// RegisterHook adds a post-commit hook
func (s *ClientService) RegisterHook(hook PostCommitHook) {
	s.hooks = append(s.hooks, hook)
}

func (s *ClientService) firePostCommit(eventID string) {
	for _, hook := range s.hooks {
		hook(eventID)
	}
}

// Create registers a client under an event
func (s *ClientService) Create(ctx ActionContext, req models.CreateClientRequest) (*models.Client, error) {
	if err := req.Validate(); err != nil {
		return nil, models.NewConfigError(err.Error())
	}
	phone, err := validator.NormalizePhone(req.Phone)
	if err != nil {
		return nil, models.NewConfigError(err.Error())
	}

	event, err := s.eventRepo.GetByID(req.EventID)
	if err != nil {
		return nil, err
	}
	if event.MaxParticipants > 0 {
		count, err := s.clientRepo.CountByEvent(event.ID)
		if err != nil {
			return nil, err
		}
		if count >= event.MaxParticipants {
			return nil, models.NewCapacityError(fmt.Sprintf(
				"event %q has reached its participant limit of %d", event.Name, event.MaxParticipants))
		}
	}

	clientType := req.ClientType
	if clientType == "" {
		clientType = models.ClientTypeStandard
	}

	notes := req.Notes
	if clientType == models.ClientTypeVIP && notes == nil {
		vipNote := "VIP guest: place in a VIP property"
		notes = &vipNote
	}

	client := &models.Client{
		EventID:       event.ID,
		Name:          req.Name,
		Phone:         phone,
		Gender:        req.Gender,
		ClientType:    clientType,
		GroupName:     req.GroupName,
		GroupSize:     req.GroupSize,
		GroupRelation: req.GroupRelation,
		Notes:         notes,
	}
	if err := s.clientRepo.Create(client); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"event_id":    event.ID,
		"client_id":   client.ID,
		"client_type": client.ClientType,
	}).Info("Client registered")

	if err := s.audit.LogAction(ctx, AuditEntry{
		Action:     "create_client",
		EventID:    event.ID,
		EntityType: "client",
		EntityID:   client.ID,
	}); err != nil {
		s.logger.WithError(err).Warn("Failed to write audit entry")
	}
	s.firePostCommit(event.ID)

	return client, nil
}

// Get returns one client by id
func (s *ClientService) Get(clientID string) (*models.Client, error) {
	return s.clientRepo.GetByID(clientID)
}

// ListByEvent returns every client registered under an event
func (s *ClientService) ListByEvent(eventID string) ([]models.Client, error) {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		return nil, err
	}
	return s.clientRepo.ListByEvent(eventID)
}

// ListUnassigned returns the clients of an event still waiting for a bed,
// in insertion order unless the caller asks for the priority ordering.
func (s *ClientService) ListUnassigned(eventID string, byPriority bool) ([]models.Client, error) {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		return nil, err
	}
	clients, err := s.clientRepo.ListUnassigned(eventID)
	if err != nil {
		return nil, err
	}
	if byPriority {
		clients = sortByPriority(clients)
	}
	return clients, nil
}

// UpdateStatus moves a client through the lifecycle
func (s *ClientService) UpdateStatus(ctx ActionContext, clientID string, status models.ClientStatus) (*models.Client, error) {
	switch status {
	case models.ClientStatusPending, models.ClientStatusConfirmed,
		models.ClientStatusAssigned, models.ClientStatusArrived, models.ClientStatusDeparted:
	default:
		return nil, models.NewConfigError(fmt.Sprintf("unknown client status %q", status))
	}

	if err := s.clientRepo.UpdateStatus(clientID, status); err != nil {
		return nil, err
	}
	client, err := s.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}

	if err := s.audit.LogAction(ctx, AuditEntry{
		Action:     "update_client_status",
		EventID:    client.EventID,
		EntityType: "client",
		EntityID:   client.ID,
		Details:    map[string]interface{}{"status": status},
	}); err != nil {
		s.logger.WithError(err).Warn("Failed to write audit entry")
	}

	return client, nil
}

// Delete removes a client. An occupied bed is released first so the
// hotel roster never carries a dangling record.
func (s *ClientService) Delete(ctx ActionContext, clientID string) error {
	client, err := s.clientRepo.GetByID(clientID)
	if err != nil {
		return err
	}

	if client.AssignedHotel != nil {
		hotelID := *client.AssignedHotel
		release := s.locks.Acquire(hotelLockKey(hotelID), clientLockKey(client.ID))
		if err := s.hotelRepo.RemoveAssignment(hotelID, client.ID); err != nil {
			release()
			return err
		}
		release()
	}

	if err := s.clientRepo.Delete(client.ID); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"event_id":  client.EventID,
		"client_id": client.ID,
	}).Info("Client deleted")

	if err := s.audit.LogAction(ctx, AuditEntry{
		Action:     "delete_client",
		EventID:    client.EventID,
		EntityType: "client",
		EntityID:   client.ID,
	}); err != nil {
		s.logger.WithError(err).Warn("Failed to write audit entry")
	}
	s.firePostCommit(client.EventID)

	return nil
}
