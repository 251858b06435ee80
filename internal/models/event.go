package models

import (
	"errors"
	"time"
)

// Event is the top-level scope grouping clients, hotels, and lodging
// assignments for one occasion.
type Event struct {
	ID               string    `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	MaxParticipants  int       `json:"max_participants" db:"max_participants"`
	AllowMixedGroups bool      `json:"allow_mixed_groups" db:"allow_mixed_groups"`
	ParticipantCount int       `json:"participant_count" db:"participant_count"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// CreateEventRequest represents the request to create an event
type CreateEventRequest struct {
	Name             string `json:"name" binding:"required"`
	MaxParticipants  int    `json:"max_participants" binding:"required,min=1"`
	AllowMixedGroups bool   `json:"allow_mixed_groups"`
}

// Validate validates the create event request
func (r *CreateEventRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.MaxParticipants <= 0 {
		return errors.New("max_participants must be at least 1")
	}
	return nil
}

// HasRoom reports whether the event's soft participant cap allows more clients
func (e *Event) HasRoom() bool {
	return e.ParticipantCount < e.MaxParticipants
}
