package services

import (
	"github.com/eventlodge/room-assignment-backend/internal/database"
	"github.com/eventlodge/room-assignment-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// StatsService serves the read-side projections: event statistics,
// per-hotel occupancy and group reports.
type StatsService struct {
	clientRepo *database.ClientRepository
	hotelRepo  *database.HotelRepository
	eventRepo  *database.EventRepository
	logger     *logrus.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(
	clientRepo *database.ClientRepository,
	hotelRepo *database.HotelRepository,
	eventRepo *database.EventRepository,
	logger *logrus.Logger,
) *StatsService {
	return &StatsService{
		clientRepo: clientRepo,
		hotelRepo:  hotelRepo,
		eventRepo:  eventRepo,
		logger:     logger,
	}
}

// EventStats computes the statistics summary for one event
func (s *StatsService) EventStats(eventID string) (*models.EventStats, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	hotels, err := s.hotelRepo.ListByEvent(event.ID)
	if err != nil {
		return nil, err
	}
	clients, err := s.clientRepo.ListByEvent(event.ID)
	if err != nil {
		return nil, err
	}

	stats := BuildEventStats(event.ID, hotels, clients)
	return &stats, nil
}

// GroupReports lists every named group of the event with membership,
// gender breakdown and placement spread.
func (s *StatsService) GroupReports(eventID string) ([]models.GroupReport, error) {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		return nil, err
	}
	clients, err := s.clientRepo.ListByEvent(eventID)
	if err != nil {
		return nil, err
	}
	return GroupSummaries(clients), nil
}

// GroupDetail resolves one named group of the event with its member list
func (s *StatsService) GroupDetail(eventID, groupName string) (*models.GroupDetail, error) {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		return nil, err
	}
	members, err := s.clientRepo.GroupMembers(eventID, groupName)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, models.NewNotFoundError("group", groupName)
	}
	summary := GroupSummaries(members)
	return &models.GroupDetail{GroupReport: summary[0], Members: members}, nil
}

// BuildEventStats aggregates clients and hotels into the event summary.
// Occupancy rates on zero-capacity hotels report 0, never NaN.
func BuildEventStats(eventID string, hotels []models.Hotel, clients []models.Client) models.EventStats {
	stats := models.EventStats{
		EventID:          eventID,
		TotalClients:     len(clients),
		ClientsByType:    make(map[models.ClientType]int),
		ClientsByGender:  make(map[models.Gender]int),
		ClientsByStatus:  make(map[models.ClientStatus]int),
		HotelsByCategory: make(map[models.HotelCategory]int),
		Hotels:           make([]models.HotelOccupancy, 0, len(hotels)),
	}

	for _, client := range clients {
		stats.ClientsByType[client.ClientType]++
		stats.ClientsByGender[client.Gender]++
		stats.ClientsByStatus[client.Status]++
		if client.IsAssigned() {
			stats.AssignedClients++
		}
	}

	totalCapacity := 0
	totalAssigned := 0
	for _, hotel := range hotels {
		stats.HotelsByCategory[hotel.Category]++
		totalCapacity += hotel.TotalCapacity
		totalAssigned += hotel.AssignedCount

		rate := 0.0
		if hotel.TotalCapacity > 0 {
			rate = float64(hotel.AssignedCount) / float64(hotel.TotalCapacity) * 100
		}
		stats.Hotels = append(stats.Hotels, models.HotelOccupancy{
			HotelID:       hotel.ID,
			HotelName:     hotel.Name,
			Category:      hotel.Category,
			TotalCapacity: hotel.TotalCapacity,
			AssignedCount: hotel.AssignedCount,
			OccupancyRate: rate,
		})
	}

	if totalCapacity > 0 {
		stats.OverallOccupancy = float64(totalAssigned) / float64(totalCapacity) * 100
	}

	return stats
}
