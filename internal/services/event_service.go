package services

import (
	"github.com/eventlodge/room-assignment-backend/internal/database"
	"github.com/eventlodge/room-assignment-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// EventService manages event lifecycle
type EventService struct {
	eventRepo *database.EventRepository
	audit     *AuditService
	logger    *logrus.Logger
}

// NewEventService creates a new event service
func NewEventService(eventRepo *database.EventRepository, audit *AuditService, logger *logrus.Logger) *EventService {
	return &EventService{eventRepo: eventRepo, audit: audit, logger: logger}
}

// Create registers a new event
func (s *EventService) Create(ctx ActionContext, req models.CreateEventRequest) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, models.NewConfigError(err.Error())
	}

	event := &models.Event{
		Name:             req.Name,
		MaxParticipants:  req.MaxParticipants,
		AllowMixedGroups: req.AllowMixedGroups,
	}
	if err := s.eventRepo.Create(event); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"event_id": event.ID,
		"name":     event.Name,
	}).Info("Event created")

	if err := s.audit.LogAction(ctx, AuditEntry{
		Action:     "create_event",
		EventID:    event.ID,
		EntityType: "event",
		EntityID:   event.ID,
	}); err != nil {
		s.logger.WithError(err).Warn("Failed to write audit entry")
	}

	return event, nil
}

// Get returns one event by id
func (s *EventService) Get(eventID string) (*models.Event, error) {
	return s.eventRepo.GetByID(eventID)
}
