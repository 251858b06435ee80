package models

import (
	"errors"
	"time"
)

// Gender is required on every client for room segregation
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ClientType classifies clients for assignment priority
type ClientType string

const (
	ClientTypeVIP        ClientType = "vip"
	ClientTypeInfluencer ClientType = "influencer"
	ClientTypeStaff      ClientType = "staff"
	ClientTypeStandard   ClientType = "standard"
)

// ClientStatus represents the lifecycle status of a client
type ClientStatus string

const (
	ClientStatusPending   ClientStatus = "pending"
	ClientStatusConfirmed ClientStatus = "confirmed"
	ClientStatusAssigned  ClientStatus = "assigned"
	ClientStatusArrived   ClientStatus = "arrived"
	ClientStatusDeparted  ClientStatus = "departed"
)

// AssignmentType records how a client was placed
type AssignmentType string

const (
	AssignmentTypeAuto   AssignmentType = "auto"
	AssignmentTypeManual AssignmentType = "manual"
	AssignmentTypeBulk   AssignmentType = "bulk"
)

// Client is an event attendee to be placed into a hotel bed
type Client struct {
	ID             string          `json:"id" db:"id"`
	EventID        string          `json:"event_id" db:"event_id"`
	Name           string          `json:"name" db:"name"`
	Phone          string          `json:"phone" db:"phone"`
	Gender         Gender          `json:"gender" db:"gender"`
	ClientType     ClientType      `json:"client_type" db:"client_type"`
	GroupName      *string         `json:"group_name,omitempty" db:"group_name"`
	GroupSize      int             `json:"group_size" db:"group_size"`
	GroupRelation  *string         `json:"group_relation,omitempty" db:"group_relation"`
	Notes          *string         `json:"notes,omitempty" db:"notes"`
	Status         ClientStatus    `json:"status" db:"status"`
	AssignedHotel  *string         `json:"assigned_hotel,omitempty" db:"assigned_hotel_id"`
	LogicalRoomID  *string         `json:"logical_room_id,omitempty" db:"logical_room_id"`
	RealRoomNumber *string         `json:"real_room_number,omitempty" db:"real_room_number"`
	BedAssignment  *string         `json:"bed_assignment,omitempty" db:"bed_assignment"`
	AssignmentType *AssignmentType `json:"assignment_type,omitempty" db:"assignment_type"`
	AssignmentDate *time.Time      `json:"assignment_date,omitempty" db:"assignment_date"`
	AssignedBy     *string         `json:"assigned_by,omitempty" db:"assigned_by"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// CreateClientRequest represents the request to register a client
type CreateClientRequest struct {
	EventID       string     `json:"event_id" binding:"required"`
	Name          string     `json:"name" binding:"required"`
	Phone         string     `json:"phone" binding:"required"`
	Gender        Gender     `json:"gender" binding:"required"`
	ClientType    ClientType `json:"client_type"`
	GroupName     *string    `json:"group_name,omitempty"`
	GroupSize     int        `json:"group_size"`
	GroupRelation *string    `json:"group_relation,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}

// Validate validates the create client request
func (r *CreateClientRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.Phone == "" {
		return errors.New("phone is required")
	}
	switch r.Gender {
	case GenderMale, GenderFemale, GenderOther:
	default:
		return errors.New("gender must be male, female or other")
	}
	switch r.ClientType {
	case "", ClientTypeVIP, ClientTypeInfluencer, ClientTypeStaff, ClientTypeStandard:
	default:
		return errors.New("client_type must be vip, influencer, staff or standard")
	}
	if r.GroupName == nil && r.GroupSize > 1 {
		return errors.New("group_size above 1 requires a group_name")
	}
	return nil
}

// IsAssigned reports whether the client currently occupies a bed
func (c *Client) IsAssigned() bool {
	return c.AssignedHotel != nil
}

// IsGrouped reports whether the client travels as part of a named group
func (c *Client) IsGrouped() bool {
	return c.GroupName != nil && *c.GroupName != ""
}

// HasPriority reports whether the client type jumps the assignment queue
func (c *Client) HasPriority() bool {
	switch c.ClientType {
	case ClientTypeVIP, ClientTypeInfluencer, ClientTypeStaff:
		return true
	}
	return false
}

// PriorityRank orders clients for automatic assignment. Lower is placed
// first. Grouped standard clients rank above solo standard clients.
func (c *Client) PriorityRank() int {
	switch c.ClientType {
	case ClientTypeVIP:
		return 1
	case ClientTypeInfluencer:
		return 2
	case ClientTypeStaff:
		return 3
	}
	if c.IsGrouped() {
		return 4
	}
	return 5
}
