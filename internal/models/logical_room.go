package models

import (
	"errors"
	"time"
)

// RoomType is the role of a logical room within a hotel
type RoomType string

const (
	RoomTypeVIP         RoomType = "vip"
	RoomTypeInfluencer  RoomType = "influencer"
	RoomTypeStaffMale   RoomType = "staff_male"
	RoomTypeStaffFemale RoomType = "staff_female"
	RoomTypeGroupMale   RoomType = "group_male"
	RoomTypeGroupFemale RoomType = "group_female"
	RoomTypeMixed       RoomType = "mixed"
)

// LogicalRoom is a conceptual room within a hotel for an event. The real
// room number is bound later for on-site check-in.
type LogicalRoom struct {
	ID              string    `json:"id" db:"id"`
	EventID         string    `json:"event_id" db:"event_id"`
	HotelID         string    `json:"hotel_id" db:"hotel_id"`
	RoomType        RoomType  `json:"room_type" db:"room_type"`
	BedCount        int       `json:"bed_count" db:"bed_count"`
	MaxCapacity     int       `json:"max_capacity" db:"max_capacity"`
	RealRoomNumber  *string   `json:"real_room_number,omitempty" db:"real_room_number"`
	AssignedClients UUIDArray `json:"assigned_clients" db:"assigned_clients"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// CreateLogicalRoomRequest represents the request to declare a logical room
type CreateLogicalRoomRequest struct {
	EventID     string   `json:"event_id" binding:"required"`
	HotelID     string   `json:"hotel_id" binding:"required"`
	RoomType    RoomType `json:"room_type" binding:"required"`
	BedCount    int      `json:"bed_count" binding:"required,min=1"`
	MaxCapacity int      `json:"max_capacity"`
}

// Validate validates the create logical room request
func (r *CreateLogicalRoomRequest) Validate() error {
	switch r.RoomType {
	case RoomTypeVIP, RoomTypeInfluencer, RoomTypeStaffMale, RoomTypeStaffFemale,
		RoomTypeGroupMale, RoomTypeGroupFemale, RoomTypeMixed:
	default:
		return errors.New("invalid room_type")
	}
	if r.BedCount < 1 {
		return errors.New("bed_count must be at least 1")
	}
	if r.MaxCapacity < 0 {
		return errors.New("max_capacity cannot be negative")
	}
	return nil
}

// CurrentOccupancy is derived from the room's client list, never stored
func (r *LogicalRoom) CurrentOccupancy() int {
	return len(r.AssignedClients)
}

// IsFullyOccupied reports whether the room has no free beds left
func (r *LogicalRoom) IsFullyOccupied() bool {
	return r.CurrentOccupancy() >= r.MaxCapacity
}
