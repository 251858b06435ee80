package models

import (
	"errors"
	"fmt"
	"time"
)

// EventHotelAssignmentStatus derives from occupancy, never set directly
type EventHotelAssignmentStatus string

const (
	EventHotelStatusActive    EventHotelAssignmentStatus = "active"
	EventHotelStatusSuspended EventHotelAssignmentStatus = "suspended"
	EventHotelStatusFull      EventHotelAssignmentStatus = "full"
)

// RoomTier declares how many rooms of one bed count a hotel makes
// available to an event.
type RoomTier struct {
	ID            string  `json:"id" db:"id"`
	AssignmentID  string  `json:"assignment_id" db:"assignment_id"`
	BedCount      int     `json:"bed_count" db:"bed_count"`
	Quantity      int     `json:"quantity" db:"quantity"`
	PricePerNight float64 `json:"price_per_night" db:"price_per_night"`
	AssignedRooms int     `json:"assigned_rooms" db:"assigned_rooms"`
}

// EventHotelAssignment is the join between an event and a hotel declaring
// the room supply the hotel contributes. Unique per (event, hotel).
type EventHotelAssignment struct {
	ID             string                     `json:"id" db:"id"`
	EventID        string                     `json:"event_id" db:"event_id"`
	HotelID        string                     `json:"hotel_id" db:"hotel_id"`
	Status         EventHotelAssignmentStatus `json:"status" db:"status"`
	AvailableRooms []RoomTier                 `json:"available_rooms"`
	TotalCapacity  int                        `json:"total_capacity"`
	TotalAssigned  int                        `json:"total_assigned"`
	CreatedAt      time.Time                  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at" db:"updated_at"`
}

// RoomTierInput is one room tier in a create request
type RoomTierInput struct {
	BedCount      int     `json:"bed_count" binding:"required,min=1"`
	Quantity      int     `json:"quantity" binding:"min=0"`
	PricePerNight float64 `json:"price_per_night"`
}

// CreateEventHotelAssignmentRequest declares a hotel's room supply for an event
type CreateEventHotelAssignmentRequest struct {
	EventID        string          `json:"event_id" binding:"required"`
	HotelID        string          `json:"hotel_id" binding:"required"`
	AvailableRooms []RoomTierInput `json:"available_rooms" binding:"required"`
}

// Validate validates the create request
func (r *CreateEventHotelAssignmentRequest) Validate() error {
	if len(r.AvailableRooms) == 0 {
		return errors.New("available_rooms cannot be empty")
	}
	for i, tier := range r.AvailableRooms {
		if tier.BedCount < 1 {
			return fmt.Errorf("available_rooms[%d]: bed_count must be at least 1", i)
		}
		if tier.Quantity < 0 {
			return fmt.Errorf("available_rooms[%d]: quantity cannot be negative", i)
		}
		if tier.PricePerNight < 0 {
			return fmt.Errorf("available_rooms[%d]: price_per_night cannot be negative", i)
		}
	}
	return nil
}

// ReserveRoomsRequest reserves rooms from one bed-count tier
type ReserveRoomsRequest struct {
	BedCount    int `json:"bed_count" binding:"required,min=1"`
	RoomsNeeded int `json:"rooms_needed" binding:"required,min=1"`
}

// RecomputeTotals recalculates the derived capacity totals from the room
// tiers. Must be called after every mutation to AvailableRooms; totals are
// never accepted from external input.
func (a *EventHotelAssignment) RecomputeTotals() {
	totalCapacity := 0
	totalAssigned := 0
	for _, tier := range a.AvailableRooms {
		totalCapacity += tier.Quantity * tier.BedCount
		totalAssigned += tier.AssignedRooms * tier.BedCount
	}
	a.TotalCapacity = totalCapacity
	a.TotalAssigned = totalAssigned
	if a.Status != EventHotelStatusSuspended {
		if a.TotalCapacity > 0 && a.TotalAssigned >= a.TotalCapacity {
			a.Status = EventHotelStatusFull
		} else {
			a.Status = EventHotelStatusActive
		}
	}
}

// ReserveRoomsOfType reserves roomsNeeded rooms from the tier with the
// given bed count. Reserved rooms are not released when individual clients
// are later unassigned; operators release tiers explicitly.
func (a *EventHotelAssignment) ReserveRoomsOfType(bedCount, roomsNeeded int) error {
	for i := range a.AvailableRooms {
		tier := &a.AvailableRooms[i]
		if tier.BedCount != bedCount {
			continue
		}
		remaining := tier.Quantity - tier.AssignedRooms
		if roomsNeeded > remaining {
			return NewCapacityError(fmt.Sprintf(
				"insufficient room supply for %d-bed tier: need %d, have %d",
				bedCount, roomsNeeded, remaining))
		}
		tier.AssignedRooms += roomsNeeded
		a.RecomputeTotals()
		return nil
	}
	return NewNotFoundError("room tier", fmt.Sprintf("%d-bed", bedCount))
}
