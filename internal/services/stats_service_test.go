package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventlodge/room-assignment-backend/internal/models"
)

func TestBuildEventStats(t *testing.T) {
	t.Run("Aggregates Clients And Hotels", func(t *testing.T) {
		h1 := "h1"
		clients := []models.Client{
			testClient("c1", "Ann", models.GenderFemale, models.ClientTypeVIP, ""),
			testClient("c2", "Bob", models.GenderMale, models.ClientTypeStandard, ""),
			testClient("c3", "Cat", models.GenderFemale, models.ClientTypeStandard, ""),
		}
		clients[0].AssignedHotel = &h1
		clients[0].Status = models.ClientStatusAssigned
		hotels := []models.Hotel{
			testHotel("h1", "Plaza", models.HotelCategoryVIP, 10, 1),
			testHotel("h2", "Inn", models.HotelCategoryStandard, 10, 0),
		}

		stats := BuildEventStats("event-1", hotels, clients)

		assert.Equal(t, "event-1", stats.EventID)
		assert.Equal(t, 3, stats.TotalClients)
		assert.Equal(t, 1, stats.AssignedClients)
		assert.Equal(t, 1, stats.ClientsByType[models.ClientTypeVIP])
		assert.Equal(t, 2, stats.ClientsByType[models.ClientTypeStandard])
		assert.Equal(t, 2, stats.ClientsByGender[models.GenderFemale])
		assert.Equal(t, 1, stats.ClientsByStatus[models.ClientStatusAssigned])
		assert.Equal(t, 1, stats.HotelsByCategory[models.HotelCategoryVIP])

		require.Len(t, stats.Hotels, 2)
		assert.InDelta(t, 10.0, stats.Hotels[0].OccupancyRate, 0.001)
		assert.InDelta(t, 0.0, stats.Hotels[1].OccupancyRate, 0.001)
		assert.InDelta(t, 5.0, stats.OverallOccupancy, 0.001)
	})

	t.Run("Zero Capacity Never Divides", func(t *testing.T) {
		hotels := []models.Hotel{
			testHotel("h1", "Ghost", models.HotelCategoryStandard, 0, 0),
		}

		stats := BuildEventStats("event-1", hotels, nil)

		require.Len(t, stats.Hotels, 1)
		assert.Equal(t, 0.0, stats.Hotels[0].OccupancyRate)
		assert.Equal(t, 0.0, stats.OverallOccupancy)
	})

	t.Run("Empty Event", func(t *testing.T) {
		stats := BuildEventStats("event-1", nil, nil)

		assert.Equal(t, 0, stats.TotalClients)
		assert.Empty(t, stats.Hotels)
		assert.Equal(t, 0.0, stats.OverallOccupancy)
	})
}
