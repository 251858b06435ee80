package services

import (
	"fmt"
	"sort"

	"github.com/eventlodge/room-assignment-backend/internal/models"
)

// AutoAssignOptions controls the automatic packing algorithm
type AutoAssignOptions struct {
	PrioritizeVIP         bool
	RespectGroupIntegrity bool
	AllowMixedGroups      bool
}

// PlacementBatch is one unit of the assignment plan: a whole group placed
// together, or a single solo client. Group batches commit all-or-nothing;
// solo batches commit independently.
type PlacementBatch struct {
	Clients   []models.Client
	HotelID   string
	HotelName string
	GroupName string
	IsMixed   bool
}

// AssignmentPlan is the output of the packing algorithm before any commit
type AssignmentPlan struct {
	Batches []PlacementBatch
	Errors  []models.PlacementError
}

// groupInfo is a partitioned group with derived attributes
type groupInfo struct {
	name    string
	members []models.Client
	genders map[models.Gender]bool
}

func (g *groupInfo) isMixed() bool {
	return len(g.genders) > 1
}

// sortByPriority orders clients by priority rank, ties keeping their
// relative order.
func sortByPriority(clients []models.Client) []models.Client {
	sorted := make([]models.Client, len(clients))
	copy(sorted, clients)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PriorityRank() < sorted[j].PriorityRank()
	})
	return sorted
}

// partitionGroups splits clients into named groups (in order of first
// appearance) and solo clients.
func partitionGroups(clients []models.Client) ([]groupInfo, []models.Client) {
	groups := []groupInfo{}
	index := map[string]int{}
	solos := []models.Client{}

	for _, client := range clients {
		if !client.IsGrouped() {
			solos = append(solos, client)
			continue
		}
		name := *client.GroupName
		i, ok := index[name]
		if !ok {
			index[name] = len(groups)
			groups = append(groups, groupInfo{
				name:    name,
				genders: map[models.Gender]bool{},
			})
			i = index[name]
		}
		groups[i].members = append(groups[i].members, client)
		groups[i].genders[client.Gender] = true
	}

	return groups, solos
}

// capacityTracker carries remaining capacity per hotel through planning
type capacityTracker struct {
	hotels    []models.Hotel
	remaining map[string]int
}

func newCapacityTracker(hotels []models.Hotel) *capacityTracker {
	remaining := make(map[string]int, len(hotels))
	for _, hotel := range hotels {
		remaining[hotel.ID] = hotel.AvailableCapacity()
	}
	return &capacityTracker{hotels: hotels, remaining: remaining}
}

// firstFit returns the first hotel (in the supplied stable order) whose
// remaining capacity fits count and that passes the eligibility check.
// No attempt is made to minimize fragmentation.
func (t *capacityTracker) firstFit(count int, eligible func(*models.Hotel) bool) *models.Hotel {
	for i := range t.hotels {
		hotel := &t.hotels[i]
		if eligible != nil && !eligible(hotel) {
			continue
		}
		if t.remaining[hotel.ID] >= count {
			return hotel
		}
	}
	return nil
}

func (t *capacityTracker) take(hotelID string, count int) {
	t.remaining[hotelID] -= count
}

// PlanAutoAssign computes placements for all unassigned clients of an
// event without touching storage. Groups are processed before solo
// clients; every placement failure becomes an error entry, never an abort.
func PlanAutoAssign(clients []models.Client, hotels []models.Hotel, opts AutoAssignOptions) AssignmentPlan {
	plan := AssignmentPlan{}
	tracker := newCapacityTracker(hotels)

	ordered := clients
	if opts.PrioritizeVIP {
		ordered = sortByPriority(clients)
	}

	var groups []groupInfo
	var solos []models.Client
	if opts.RespectGroupIntegrity {
		groups, solos = partitionGroups(ordered)
	} else {
		solos = ordered
	}

	for _, group := range groups {
		size := len(group.members)
		mixed := group.isMixed()

		var eligible func(*models.Hotel) bool
		if mixed && !opts.AllowMixedGroups {
			eligible = func(h *models.Hotel) bool { return h.AcceptsMixedGroups() }
		}

		hotel := tracker.firstFit(size, eligible)
		if hotel == nil {
			reason := fmt.Sprintf("no hotel has %d free beds for group %q", size, group.name)
			if mixed && !opts.AllowMixedGroups {
				reason = fmt.Sprintf("mixed group %q needs a VIP hotel with %d free beds and none is available", group.name, size)
			}
			plan.Errors = append(plan.Errors, models.PlacementError{
				GroupName: group.name,
				Reason:    reason,
			})
			continue
		}

		tracker.take(hotel.ID, size)
		plan.Batches = append(plan.Batches, PlacementBatch{
			Clients:   group.members,
			HotelID:   hotel.ID,
			HotelName: hotel.Name,
			GroupName: group.name,
			IsMixed:   mixed,
		})
	}

	for _, client := range solos {
		hotel := tracker.firstFit(1, nil)
		if hotel == nil {
			plan.Errors = append(plan.Errors, models.PlacementError{
				ClientID:   client.ID,
				ClientName: client.Name,
				Reason:     "no hotel has a free bed",
			})
			continue
		}

		tracker.take(hotel.ID, 1)
		plan.Batches = append(plan.Batches, PlacementBatch{
			Clients:   []models.Client{client},
			HotelID:   hotel.ID,
			HotelName: hotel.Name,
		})
	}

	return plan
}

// BuildValidationReport runs the read-only audit over loaded state.
// Overcapacity is the only condition that invalidates; everything else is
// a warning.
func BuildValidationReport(hotels []models.Hotel, clients []models.Client) models.ValidationReport {
	report := models.ValidationReport{
		Errors:   []models.ValidationIssue{},
		Warnings: []models.ValidationIssue{},
	}

	hotelByID := make(map[string]*models.Hotel, len(hotels))
	for i := range hotels {
		hotelByID[hotels[i].ID] = &hotels[i]
	}

	for _, hotel := range hotels {
		if hotel.AssignedCount > hotel.TotalCapacity {
			report.Errors = append(report.Errors, models.ValidationIssue{
				Type: models.ValidationErrorOvercapacity,
				Message: fmt.Sprintf("hotel %q holds %d clients but has capacity %d",
					hotel.Name, hotel.AssignedCount, hotel.TotalCapacity),
				HotelID: hotel.ID,
			})
		}
	}

	groups, _ := partitionGroups(clients)
	for _, group := range groups {
		hotelsUsed := map[string]bool{}
		nonVIPAssigned := false
		for _, member := range group.members {
			if member.AssignedHotel == nil {
				continue
			}
			hotelsUsed[*member.AssignedHotel] = true
			if hotel, ok := hotelByID[*member.AssignedHotel]; ok && hotel.Category != models.HotelCategoryVIP {
				nonVIPAssigned = true
			}
		}

		if group.isMixed() && nonVIPAssigned {
			report.Warnings = append(report.Warnings, models.ValidationIssue{
				Type:    models.ValidationWarnMixedGroupNotVIP,
				Message: fmt.Sprintf("mixed group %q has members in a non-VIP hotel", group.name),
				Group:   group.name,
			})
		}
		if len(hotelsUsed) > 1 {
			report.Warnings = append(report.Warnings, models.ValidationIssue{
				Type:    models.ValidationWarnGroupSeparated,
				Message: fmt.Sprintf("group %q is split across %d hotels", group.name, len(hotelsUsed)),
				Group:   group.name,
			})
		}
	}

	unassignedNames := []string{}
	for _, client := range clients {
		if !client.IsAssigned() {
			unassignedNames = append(unassignedNames, client.Name)
		}
	}
	if len(unassignedNames) > 0 {
		report.Warnings = append(report.Warnings, models.ValidationIssue{
			Type:    models.ValidationWarnUnassignedClients,
			Message: fmt.Sprintf("%d clients are not assigned: %v", len(unassignedNames), unassignedNames),
		})
	}

	report.IsValid = len(report.Errors) == 0
	return report
}

// GroupSummaries builds the per-group projection used by the stats
// endpoints and the group registry lookups.
func GroupSummaries(clients []models.Client) []models.GroupReport {
	groups, _ := partitionGroups(clients)

	reports := make([]models.GroupReport, 0, len(groups))
	for _, group := range groups {
		report := models.GroupReport{
			GroupName:   group.name,
			MemberCount: len(group.members),
			Genders:     map[models.Gender]int{},
			IsMixed:     group.isMixed(),
		}

		hotelsUsed := map[string]bool{}
		for _, member := range group.members {
			report.Genders[member.Gender]++
			if member.HasPriority() {
				report.HasPriority = true
			}
			if member.AssignedHotel != nil {
				if !hotelsUsed[*member.AssignedHotel] {
					hotelsUsed[*member.AssignedHotel] = true
					report.Hotels = append(report.Hotels, *member.AssignedHotel)
				}
			}
		}
		report.Separated = len(hotelsUsed) > 1

		reports = append(reports, report)
	}
	return reports
}
