package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventlodge/room-assignment-backend/internal/models"
)

func testClient(id, name string, gender models.Gender, clientType models.ClientType, group string) models.Client {
	client := models.Client{
		ID:         id,
		EventID:    "event-1",
		Name:       name,
		Gender:     gender,
		ClientType: clientType,
		GroupSize:  1,
		Status:     models.ClientStatusConfirmed,
	}
	if group != "" {
		client.GroupName = &group
	}
	return client
}

func testHotel(id, name string, category models.HotelCategory, capacity, assigned int) models.Hotel {
	return models.Hotel{
		ID:            id,
		EventID:       "event-1",
		Name:          name,
		Category:      category,
		TotalCapacity: capacity,
		AssignedCount: assigned,
	}
}

func defaultOptions() AutoAssignOptions {
	return AutoAssignOptions{
		PrioritizeVIP:         true,
		RespectGroupIntegrity: true,
	}
}

func TestPlanAutoAssign(t *testing.T) {
	t.Run("VIP Placed Before Standard", func(t *testing.T) {
		// One free bed; the VIP registered later must still win it
		clients := []models.Client{
			testClient("c1", "Alice", models.GenderFemale, models.ClientTypeStandard, ""),
			testClient("c2", "Bob", models.GenderMale, models.ClientTypeVIP, ""),
		}
		hotels := []models.Hotel{
			testHotel("h1", "Plaza", models.HotelCategoryStandard, 1, 0),
		}

		plan := PlanAutoAssign(clients, hotels, defaultOptions())

		require.Len(t, plan.Batches, 1)
		assert.Equal(t, "c2", plan.Batches[0].Clients[0].ID)
		require.Len(t, plan.Errors, 1)
		assert.Equal(t, "c1", plan.Errors[0].ClientID)
		assert.Equal(t, "Alice", plan.Errors[0].ClientName)
	})

	t.Run("Group Placed Together", func(t *testing.T) {
		clients := []models.Client{
			testClient("c1", "Ann", models.GenderFemale, models.ClientTypeStandard, "choir"),
			testClient("c2", "Bea", models.GenderFemale, models.ClientTypeStandard, "choir"),
			testClient("c3", "Cat", models.GenderFemale, models.ClientTypeStandard, "choir"),
		}
		hotels := []models.Hotel{
			testHotel("h1", "Small", models.HotelCategoryStandard, 2, 0),
			testHotel("h2", "Big", models.HotelCategoryStandard, 5, 0),
		}

		plan := PlanAutoAssign(clients, hotels, defaultOptions())

		require.Len(t, plan.Batches, 1)
		assert.Equal(t, "h2", plan.Batches[0].HotelID)
		assert.Equal(t, "choir", plan.Batches[0].GroupName)
		assert.Len(t, plan.Batches[0].Clients, 3)
		assert.Empty(t, plan.Errors)
	})

	t.Run("Mixed Group Requires VIP Hotel", func(t *testing.T) {
		clients := []models.Client{
			testClient("c1", "Ann", models.GenderFemale, models.ClientTypeStandard, "family"),
			testClient("c2", "Bob", models.GenderMale, models.ClientTypeStandard, "family"),
		}
		hotels := []models.Hotel{
			testHotel("h1", "Standard Inn", models.HotelCategoryStandard, 10, 0),
			testHotel("h2", "Royal", models.HotelCategoryVIP, 10, 0),
		}

		plan := PlanAutoAssign(clients, hotels, defaultOptions())

		require.Len(t, plan.Batches, 1)
		assert.Equal(t, "h2", plan.Batches[0].HotelID)
		assert.True(t, plan.Batches[0].IsMixed)
	})

	t.Run("Mixed Group Without VIP Hotel Fails", func(t *testing.T) {
		clients := []models.Client{
			testClient("c1", "Ann", models.GenderFemale, models.ClientTypeStandard, "family"),
			testClient("c2", "Bob", models.GenderMale, models.ClientTypeStandard, "family"),
		}
		hotels := []models.Hotel{
			testHotel("h1", "Standard Inn", models.HotelCategoryStandard, 10, 0),
		}

		plan := PlanAutoAssign(clients, hotels, defaultOptions())

		assert.Empty(t, plan.Batches)
		require.Len(t, plan.Errors, 1)
		assert.Equal(t, "family", plan.Errors[0].GroupName)
		assert.Contains(t, plan.Errors[0].Reason, "VIP hotel")
	})

	t.Run("Mixed Group Allowed Everywhere With Override", func(t *testing.T) {
		clients := []models.Client{
			testClient("c1", "Ann", models.GenderFemale, models.ClientTypeStandard, "family"),
			testClient("c2", "Bob", models.GenderMale, models.ClientTypeStandard, "family"),
		}
		hotels := []models.Hotel{
			testHotel("h1", "Standard Inn", models.HotelCategoryStandard, 10, 0),
		}

		opts := defaultOptions()
		opts.AllowMixedGroups = true
		plan := PlanAutoAssign(clients, hotels, opts)

		require.Len(t, plan.Batches, 1)
		assert.Equal(t, "h1", plan.Batches[0].HotelID)
	})

	t.Run("Standard Hotel Flagged For Mixed Groups Is Eligible", func(t *testing.T) {
		clients := []models.Client{
			testClient("c1", "Ann", models.GenderFemale, models.ClientTypeStandard, "family"),
			testClient("c2", "Bob", models.GenderMale, models.ClientTypeStandard, "family"),
		}
		hotel := testHotel("h1", "Flexible Inn", models.HotelCategoryStandard, 10, 0)
		hotel.AllowMixedGroups = true

		plan := PlanAutoAssign(clients, []models.Hotel{hotel}, defaultOptions())

		require.Len(t, plan.Batches, 1)
		assert.Equal(t, "h1", plan.Batches[0].HotelID)
	})

	t.Run("First Fit Respects Existing Occupancy", func(t *testing.T) {
		clients := []models.Client{
			testClient("c1", "Ann", models.GenderFemale, models.ClientTypeStandard, ""),
			testClient("c2", "Bea", models.GenderFemale, models.ClientTypeStandard, ""),
		}
		hotels := []models.Hotel{
			testHotel("h1", "Nearly Full", models.HotelCategoryStandard, 5, 4),
			testHotel("h2", "Empty", models.HotelCategoryStandard, 5, 0),
		}

		plan := PlanAutoAssign(clients, hotels, defaultOptions())

		require.Len(t, plan.Batches, 2)
		assert.Equal(t, "h1", plan.Batches[0].HotelID)
		assert.Equal(t, "h2", plan.Batches[1].HotelID)
	})

	t.Run("Groups Processed Before Solos", func(t *testing.T) {
		// The solo VIP outranks the standard group, but group batches are
		// planned first so the pair still gets the only 2-bed block.
		clients := []models.Client{
			testClient("c1", "Vic", models.GenderMale, models.ClientTypeVIP, ""),
			testClient("c2", "Ann", models.GenderFemale, models.ClientTypeStandard, "pair"),
			testClient("c3", "Bea", models.GenderFemale, models.ClientTypeStandard, "pair"),
		}
		hotels := []models.Hotel{
			testHotel("h1", "Plaza", models.HotelCategoryStandard, 3, 0),
		}

		plan := PlanAutoAssign(clients, hotels, defaultOptions())

		require.Len(t, plan.Batches, 2)
		assert.Equal(t, "pair", plan.Batches[0].GroupName)
		assert.Equal(t, "c1", plan.Batches[1].Clients[0].ID)
		assert.Empty(t, plan.Errors)
	})

	t.Run("Group Integrity Disabled Splits Members", func(t *testing.T) {
		clients := []models.Client{
			testClient("c1", "Ann", models.GenderFemale, models.ClientTypeStandard, "choir"),
			testClient("c2", "Bea", models.GenderFemale, models.ClientTypeStandard, "choir"),
		}
		hotels := []models.Hotel{
			testHotel("h1", "One Bed", models.HotelCategoryStandard, 1, 0),
			testHotel("h2", "Other Bed", models.HotelCategoryStandard, 1, 0),
		}

		opts := defaultOptions()
		opts.RespectGroupIntegrity = false
		plan := PlanAutoAssign(clients, hotels, opts)

		require.Len(t, plan.Batches, 2)
		assert.Equal(t, "h1", plan.Batches[0].HotelID)
		assert.Equal(t, "h2", plan.Batches[1].HotelID)
		assert.Empty(t, plan.Errors)
	})

	t.Run("No Capacity At All", func(t *testing.T) {
		clients := []models.Client{
			testClient("c1", "Ann", models.GenderFemale, models.ClientTypeStandard, ""),
		}

		plan := PlanAutoAssign(clients, nil, defaultOptions())

		assert.Empty(t, plan.Batches)
		require.Len(t, plan.Errors, 1)
	})
}

func TestBuildValidationReport(t *testing.T) {
	t.Run("Clean State Is Valid", func(t *testing.T) {
		hotelID := "h1"
		client := testClient("c1", "Ann", models.GenderFemale, models.ClientTypeStandard, "")
		client.AssignedHotel = &hotelID
		hotels := []models.Hotel{
			testHotel("h1", "Plaza", models.HotelCategoryStandard, 5, 1),
		}

		report := BuildValidationReport(hotels, []models.Client{client})

		assert.True(t, report.IsValid)
		assert.Empty(t, report.Errors)
		assert.Empty(t, report.Warnings)
	})

	t.Run("Overcapacity Is An Error", func(t *testing.T) {
		hotels := []models.Hotel{
			testHotel("h1", "Plaza", models.HotelCategoryStandard, 2, 3),
		}

		report := BuildValidationReport(hotels, nil)

		assert.False(t, report.IsValid)
		require.Len(t, report.Errors, 1)
		assert.Equal(t, models.ValidationErrorOvercapacity, report.Errors[0].Type)
		assert.Equal(t, "h1", report.Errors[0].HotelID)
	})

	t.Run("Separated Group Is A Warning", func(t *testing.T) {
		h1, h2 := "h1", "h2"
		clients := []models.Client{
			testClient("c1", "Ann", models.GenderFemale, models.ClientTypeStandard, "choir"),
			testClient("c2", "Bea", models.GenderFemale, models.ClientTypeStandard, "choir"),
		}
		clients[0].AssignedHotel = &h1
		clients[1].AssignedHotel = &h2
		hotels := []models.Hotel{
			testHotel("h1", "Plaza", models.HotelCategoryStandard, 5, 1),
			testHotel("h2", "Inn", models.HotelCategoryStandard, 5, 1),
		}

		report := BuildValidationReport(hotels, clients)

		assert.True(t, report.IsValid)
		require.Len(t, report.Warnings, 1)
		assert.Equal(t, models.ValidationWarnGroupSeparated, report.Warnings[0].Type)
		assert.Equal(t, "choir", report.Warnings[0].Group)
	})

	t.Run("Mixed Group In Standard Hotel Is A Warning", func(t *testing.T) {
		h1 := "h1"
		clients := []models.Client{
			testClient("c1", "Ann", models.GenderFemale, models.ClientTypeStandard, "family"),
			testClient("c2", "Bob", models.GenderMale, models.ClientTypeStandard, "family"),
		}
		clients[0].AssignedHotel = &h1
		clients[1].AssignedHotel = &h1
		hotels := []models.Hotel{
			testHotel("h1", "Plaza", models.HotelCategoryStandard, 5, 2),
		}

		report := BuildValidationReport(hotels, clients)

		assert.True(t, report.IsValid)
		require.Len(t, report.Warnings, 1)
		assert.Equal(t, models.ValidationWarnMixedGroupNotVIP, report.Warnings[0].Type)
	})

	t.Run("Unassigned Clients Are A Warning", func(t *testing.T) {
		clients := []models.Client{
			testClient("c1", "Ann", models.GenderFemale, models.ClientTypeStandard, ""),
		}
		hotels := []models.Hotel{
			testHotel("h1", "Plaza", models.HotelCategoryStandard, 5, 0),
		}

		report := BuildValidationReport(hotels, clients)

		assert.True(t, report.IsValid)
		require.Len(t, report.Warnings, 1)
		assert.Equal(t, models.ValidationWarnUnassignedClients, report.Warnings[0].Type)
		assert.Contains(t, report.Warnings[0].Message, "Ann")
	})
}

func TestGroupSummaries(t *testing.T) {
	t.Run("Builds Per-Group Projection", func(t *testing.T) {
		h1, h2 := "h1", "h2"
		clients := []models.Client{
			testClient("c1", "Ann", models.GenderFemale, models.ClientTypeVIP, "family"),
			testClient("c2", "Bob", models.GenderMale, models.ClientTypeStandard, "family"),
			testClient("c3", "Solo", models.GenderMale, models.ClientTypeStandard, ""),
		}
		clients[0].AssignedHotel = &h1
		clients[1].AssignedHotel = &h2

		reports := GroupSummaries(clients)

		require.Len(t, reports, 1)
		report := reports[0]
		assert.Equal(t, "family", report.GroupName)
		assert.Equal(t, 2, report.MemberCount)
		assert.True(t, report.IsMixed)
		assert.True(t, report.HasPriority)
		assert.True(t, report.Separated)
		assert.ElementsMatch(t, []string{"h1", "h2"}, report.Hotels)
		assert.Equal(t, 1, report.Genders[models.GenderFemale])
		assert.Equal(t, 1, report.Genders[models.GenderMale])
	})

	t.Run("No Groups", func(t *testing.T) {
		clients := []models.Client{
			testClient("c1", "Solo", models.GenderMale, models.ClientTypeStandard, ""),
		}

		reports := GroupSummaries(clients)
		assert.Empty(t, reports)
	})
}
