package database

import (
	"database/sql"
	"fmt"

	"github.com/eventlodge/room-assignment-backend/internal/models"
	"github.com/google/uuid"
)

// EventRepository handles database operations for the events table
type EventRepository struct {
	db DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(event *models.Event) error {
	query := `
		INSERT INTO events (id, name, max_participants, allow_mixed_groups)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	err := r.db.QueryRow(
		query,
		event.ID, event.Name, event.MaxParticipants, event.AllowMixedGroups,
	).Scan(&event.CreatedAt, &event.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// GetByID retrieves an event with its live participant count
func (r *EventRepository) GetByID(eventID string) (*models.Event, error) {
	query := `
		SELECT e.id, e.name, e.max_participants, e.allow_mixed_groups,
			   (SELECT COUNT(*) FROM clients c WHERE c.event_id = e.id) AS participant_count,
			   e.created_at, e.updated_at
		FROM events e
		WHERE e.id = $1
	`

	event := &models.Event{}
	err := r.db.QueryRow(query, eventID).Scan(
		&event.ID, &event.Name, &event.MaxParticipants, &event.AllowMixedGroups,
		&event.ParticipantCount, &event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("event", eventID)
		}
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	return event, nil
}

// RefreshParticipantCount recomputes the stored participant counter from
// the clients table. Called from post-commit hooks after client creation
// and deletion so the cached value never drifts.
func (r *EventRepository) RefreshParticipantCount(eventID string) error {
	query := `
		UPDATE events
		SET participant_count = (SELECT COUNT(*) FROM clients WHERE event_id = $1),
			updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.Exec(query, eventID)
	if err != nil {
		return fmt.Errorf("failed to refresh participant count: %w", err)
	}
	return nil
}
