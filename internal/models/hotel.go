package models

import (
	"errors"
	"time"
)

// HotelCategory distinguishes VIP-capable hotels, which may also host
// mixed-gender groups.
type HotelCategory string

const (
	HotelCategoryStandard HotelCategory = "standard"
	HotelCategoryVIP      HotelCategory = "vip"
)

// Hotel is a bed pool scoped to one event
type Hotel struct {
	ID               string        `json:"id" db:"id"`
	EventID          string        `json:"event_id" db:"event_id"`
	Name             string        `json:"name" db:"name"`
	Category         HotelCategory `json:"category" db:"category"`
	AllowMixedGroups bool          `json:"allow_mixed_groups" db:"allow_mixed_groups"`
	TotalCapacity    int           `json:"total_capacity" db:"total_capacity"`
	AssignedCount    int           `json:"assigned_count" db:"assigned_count"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at" db:"updated_at"`
}

// HotelAssignment is one occupied bed: a roster record tying a client to a
// hotel with provenance of when and by whom the placement was made.
type HotelAssignment struct {
	ID             string         `json:"id" db:"id"`
	HotelID        string         `json:"hotel_id" db:"hotel_id"`
	ClientID       string         `json:"client_id" db:"client_id"`
	AssignedAt     time.Time      `json:"assigned_at" db:"assigned_at"`
	AssignedBy     string         `json:"assigned_by" db:"assigned_by"`
	AssignmentType AssignmentType `json:"assignment_type" db:"assignment_type"`
}

// CreateHotelRequest represents the request to register a hotel for an event
type CreateHotelRequest struct {
	EventID          string        `json:"event_id" binding:"required"`
	Name             string        `json:"name" binding:"required"`
	Category         HotelCategory `json:"category"`
	AllowMixedGroups bool          `json:"allow_mixed_groups"`
	TotalCapacity    int           `json:"total_capacity" binding:"required,min=1"`
}

// Validate validates the create hotel request
func (r *CreateHotelRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.TotalCapacity <= 0 {
		return errors.New("total_capacity must be at least 1")
	}
	switch r.Category {
	case "", HotelCategoryStandard, HotelCategoryVIP:
	default:
		return errors.New("category must be standard or vip")
	}
	return nil
}

// AvailableCapacity returns the number of free beds. Can go negative when
// the roster was forced over capacity out of band; callers treat that as
// an integrity error, not a validation failure.
func (h *Hotel) AvailableCapacity() int {
	return h.TotalCapacity - h.AssignedCount
}

// CanAccommodate reports whether count more clients fit into this hotel
func (h *Hotel) CanAccommodate(count int) bool {
	return h.AvailableCapacity() >= count
}

// AcceptsMixedGroups reports whether a mixed-gender group may be placed here
func (h *Hotel) AcceptsMixedGroups() bool {
	return h.Category == HotelCategoryVIP || h.AllowMixedGroups
}
