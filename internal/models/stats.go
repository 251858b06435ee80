package models

// HotelOccupancy is the read-side occupancy projection for one hotel
type HotelOccupancy struct {
	HotelID       string        `json:"hotel_id"`
	HotelName     string        `json:"hotel_name"`
	Category      HotelCategory `json:"category"`
	TotalCapacity int           `json:"total_capacity"`
	AssignedCount int           `json:"assigned_count"`
	OccupancyRate float64       `json:"occupancy_rate"`
}

// EventStats is the per-event read-side summary
type EventStats struct {
	EventID          string                `json:"event_id"`
	TotalClients     int                   `json:"total_clients"`
	AssignedClients  int                   `json:"assigned_clients"`
	ClientsByType    map[ClientType]int    `json:"clients_by_type"`
	ClientsByGender  map[Gender]int        `json:"clients_by_gender"`
	ClientsByStatus  map[ClientStatus]int  `json:"clients_by_status"`
	HotelsByCategory map[HotelCategory]int `json:"hotels_by_category"`
	Hotels           []HotelOccupancy      `json:"hotels"`
	OverallOccupancy float64               `json:"overall_occupancy_rate"`
}

// GroupDetail is one group's projection joined with its member list
type GroupDetail struct {
	GroupReport
	Members []Client `json:"members"`
}

// GroupReport is the read-side projection of one named group
type GroupReport struct {
	GroupName   string         `json:"group_name"`
	MemberCount int            `json:"member_count"`
	Genders     map[Gender]int `json:"genders"`
	IsMixed     bool           `json:"is_mixed"`
	HasPriority bool           `json:"has_priority"`
	Hotels      []string       `json:"hotels"`
	Separated   bool           `json:"separated"`
}
