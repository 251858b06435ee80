package models

import "errors"

// ManualAssignRequest places one client into one hotel
type ManualAssignRequest struct {
	EventID        string  `json:"event_id" binding:"required"`
	ClientID       string  `json:"client_id" binding:"required"`
	HotelID        string  `json:"hotel_id" binding:"required"`
	RoomPreference *string `json:"room_preference,omitempty"`
}

// BulkAssignRequest places a list of clients into one hotel as a unit
type BulkAssignRequest struct {
	EventID   string   `json:"event_id" binding:"required"`
	ClientIDs []string `json:"client_ids" binding:"required"`
	HotelID   string   `json:"hotel_id" binding:"required"`
}

// Validate validates the bulk assign request
func (r *BulkAssignRequest) Validate() error {
	if len(r.ClientIDs) == 0 {
		return errors.New("client_ids cannot be empty")
	}
	seen := make(map[string]bool, len(r.ClientIDs))
	for _, id := range r.ClientIDs {
		if seen[id] {
			return errors.New("client_ids contains duplicates")
		}
		seen[id] = true
	}
	return nil
}

// AutoAssignRequest runs the automatic packing algorithm over an event
type AutoAssignRequest struct {
	EventID               string `json:"event_id" binding:"required"`
	PrioritizeVIP         bool   `json:"prioritize_vip"`
	RespectGroupIntegrity bool   `json:"respect_group_integrity"`
	AllowMixedGroups      bool   `json:"allow_mixed_groups"`
}

// MoveRequest relocates an assigned client between two hotels
type MoveRequest struct {
	EventID     string `json:"event_id" binding:"required"`
	ClientID    string `json:"client_id" binding:"required"`
	FromHotelID string `json:"from_hotel_id" binding:"required"`
	ToHotelID   string `json:"to_hotel_id" binding:"required"`
}

// SwapRequest exchanges the hotel assignments of two clients
type SwapRequest struct {
	EventID   string `json:"event_id" binding:"required"`
	Client1ID string `json:"client1_id" binding:"required"`
	Client2ID string `json:"client2_id" binding:"required"`
}

// AssignmentRecord summarizes one committed placement
type AssignmentRecord struct {
	ClientID   string `json:"client_id"`
	ClientName string `json:"client_name"`
	HotelID    string `json:"hotel_id"`
	HotelName  string `json:"hotel_name"`
	GroupName  string `json:"group_name,omitempty"`
}

// ManualAssignResult is the outcome of a committed manual assignment
type ManualAssignResult struct {
	Client     *Client          `json:"client"`
	Hotel      *Hotel           `json:"hotel"`
	Assignment *HotelAssignment `json:"assignment"`
}

// BulkAssignResult is the outcome of a committed bulk assignment
type BulkAssignResult struct {
	AssignedCount int                `json:"assigned_count"`
	Hotel         *Hotel             `json:"hotel"`
	Assignments   []AssignmentRecord `json:"assignments"`
}

// GroupPlacement summarizes one group placed by the automatic algorithm
type GroupPlacement struct {
	GroupName   string `json:"group_name"`
	MemberCount int    `json:"member_count"`
	HotelID     string `json:"hotel_id"`
	HotelName   string `json:"hotel_name"`
	IsMixed     bool   `json:"is_mixed"`
}

// PlacementError records a client or group left unassigned by the
// automatic algorithm. It never aborts the run.
type PlacementError struct {
	ClientID   string `json:"client_id,omitempty"`
	ClientName string `json:"client_name,omitempty"`
	GroupName  string `json:"group_name,omitempty"`
	Reason     string `json:"reason"`
}

// AutoAssignResult is the outcome of an automatic assignment run
type AutoAssignResult struct {
	AssignedCount int                `json:"assigned_count"`
	TotalClients  int                `json:"total_clients"`
	Assignments   []AssignmentRecord `json:"assignments"`
	Groups        []GroupPlacement   `json:"groups"`
	Errors        []PlacementError   `json:"errors"`
}

// MoveResult is the outcome of a committed move
type MoveResult struct {
	Client    *Client  `json:"client"`
	FromHotel *Hotel   `json:"from_hotel"`
	ToHotel   *Hotel   `json:"to_hotel"`
	Warnings  []string `json:"warnings,omitempty"`
}

// SwappedClient is one side of a swap result
type SwappedClient struct {
	Name     string `json:"name"`
	NewHotel string `json:"new_hotel"`
}

// SwapResult is the outcome of a committed swap
type SwapResult struct {
	Client1  SwappedClient `json:"client1"`
	Client2  SwappedClient `json:"client2"`
	Warnings []string      `json:"warnings,omitempty"`
}

// UnassignResult is the outcome of a committed unassignment
type UnassignResult struct {
	Client *Client `json:"client"`
	Hotel  *Hotel  `json:"hotel"`
}

// ClearAllResult is the outcome of a destructive event-wide reset
type ClearAllResult struct {
	ClearedClients int `json:"cleared_clients"`
	ClearedHotels  int `json:"cleared_hotels"`
}

// Validation issue type tags
const (
	ValidationErrorOvercapacity     = "OVERCAPACITY"
	ValidationWarnMixedGroupNotVIP  = "MIXED_GROUP_NOT_VIP"
	ValidationWarnGroupSeparated    = "GROUP_SEPARATED"
	ValidationWarnUnassignedClients = "UNASSIGNED_CLIENTS"
)

// ValidationIssue is one error or warning from the read-only audit
type ValidationIssue struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	HotelID string `json:"hotel_id,omitempty"`
	Group   string `json:"group,omitempty"`
}

// ValidationReport is the result of the read-only assignment audit.
// IsValid flips false only on errors; warnings never invalidate.
type ValidationReport struct {
	IsValid  bool              `json:"is_valid"`
	Errors   []ValidationIssue `json:"errors"`
	Warnings []ValidationIssue `json:"warnings"`
	Stats    *EventStats       `json:"stats,omitempty"`
}
