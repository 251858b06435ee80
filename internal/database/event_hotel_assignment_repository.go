package database

import (
	"database/sql"
	"fmt"

	"github.com/eventlodge/room-assignment-backend/internal/models"
	"github.com/google/uuid"
)

// EventHotelAssignmentRepository handles database operations for the
// event_hotel_assignments and room_tiers tables.
type EventHotelAssignmentRepository struct {
	db DB
}

// NewEventHotelAssignmentRepository creates a new EventHotelAssignmentRepository
func NewEventHotelAssignmentRepository(db DB) *EventHotelAssignmentRepository {
	return &EventHotelAssignmentRepository{db: db}
}

// Create declares a hotel's room supply for an event. The (event, hotel)
// pair is unique.
func (r *EventHotelAssignmentRepository) Create(assignment *models.EventHotelAssignment) error {
	query := `
		INSERT INTO event_hotel_assignments (id, event_id, hotel_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	if assignment.ID == "" {
		assignment.ID = uuid.New().String()
	}
	if assignment.Status == "" {
		assignment.Status = models.EventHotelStatusActive
	}

	err := r.db.QueryRow(
		query,
		assignment.ID, assignment.EventID, assignment.HotelID, assignment.Status,
	).Scan(&assignment.CreatedAt, &assignment.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return models.NewDuplicateError(fmt.Sprintf(
				"hotel %s is already assigned to event %s", assignment.HotelID, assignment.EventID))
		}
		return fmt.Errorf("failed to create event hotel assignment: %w", err)
	}

	for i := range assignment.AvailableRooms {
		tier := &assignment.AvailableRooms[i]
		tier.AssignmentID = assignment.ID
		if err := r.insertTier(tier); err != nil {
			return err
		}
	}

	assignment.RecomputeTotals()
	return nil
}

func (r *EventHotelAssignmentRepository) insertTier(tier *models.RoomTier) error {
	query := `
		INSERT INTO room_tiers (id, assignment_id, bed_count, quantity, price_per_night, assigned_rooms)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if tier.ID == "" {
		tier.ID = uuid.New().String()
	}

	_, err := r.db.Exec(
		query,
		tier.ID, tier.AssignmentID, tier.BedCount, tier.Quantity,
		tier.PricePerNight, tier.AssignedRooms,
	)
	if err != nil {
		return fmt.Errorf("failed to create room tier: %w", err)
	}
	return nil
}

// GetByID retrieves an assignment with its room tiers and derived totals
func (r *EventHotelAssignmentRepository) GetByID(assignmentID string) (*models.EventHotelAssignment, error) {
	query := `
		SELECT id, event_id, hotel_id, status, created_at, updated_at
		FROM event_hotel_assignments
		WHERE id = $1
	`

	assignment := &models.EventHotelAssignment{}
	err := r.db.QueryRow(query, assignmentID).Scan(
		&assignment.ID, &assignment.EventID, &assignment.HotelID,
		&assignment.Status, &assignment.CreatedAt, &assignment.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("event hotel assignment", assignmentID)
		}
		return nil, fmt.Errorf("failed to fetch event hotel assignment: %w", err)
	}

	if err := r.loadTiers(assignment); err != nil {
		return nil, err
	}
	assignment.RecomputeTotals()
	return assignment, nil
}

// GetByEventAndHotel retrieves the assignment for one (event, hotel) pair
func (r *EventHotelAssignmentRepository) GetByEventAndHotel(eventID, hotelID string) (*models.EventHotelAssignment, error) {
	query := `
		SELECT id, event_id, hotel_id, status, created_at, updated_at
		FROM event_hotel_assignments
		WHERE event_id = $1 AND hotel_id = $2
	`

	assignment := &models.EventHotelAssignment{}
	err := r.db.QueryRow(query, eventID, hotelID).Scan(
		&assignment.ID, &assignment.EventID, &assignment.HotelID,
		&assignment.Status, &assignment.CreatedAt, &assignment.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("event hotel assignment", eventID+"/"+hotelID)
		}
		return nil, fmt.Errorf("failed to fetch event hotel assignment: %w", err)
	}

	if err := r.loadTiers(assignment); err != nil {
		return nil, err
	}
	assignment.RecomputeTotals()
	return assignment, nil
}

// ListByEvent retrieves all hotel assignments of an event
func (r *EventHotelAssignmentRepository) ListByEvent(eventID string) ([]models.EventHotelAssignment, error) {
	query := `
		SELECT id, event_id, hotel_id, status, created_at, updated_at
		FROM event_hotel_assignments
		WHERE event_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list event hotel assignments: %w", err)
	}
	defer rows.Close()

	assignments := []models.EventHotelAssignment{}
	for rows.Next() {
		var assignment models.EventHotelAssignment
		err := rows.Scan(
			&assignment.ID, &assignment.EventID, &assignment.HotelID,
			&assignment.Status, &assignment.CreatedAt, &assignment.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range assignments {
		if err := r.loadTiers(&assignments[i]); err != nil {
			return nil, err
		}
		assignments[i].RecomputeTotals()
	}
	return assignments, nil
}

// ReserveRooms reserves rooms from one bed-count tier with a conditional
// update so two racing reservations cannot oversubscribe the tier.
func (r *EventHotelAssignmentRepository) ReserveRooms(assignmentID string, bedCount, roomsNeeded int) error {
	query := `
		UPDATE room_tiers
		SET assigned_rooms = assigned_rooms + $3
		WHERE assignment_id = $1
		  AND bed_count = $2
		  AND assigned_rooms + $3 <= quantity
	`

	result, err := r.db.Exec(query, assignmentID, bedCount, roomsNeeded)
	if err != nil {
		return fmt.Errorf("failed to reserve rooms: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		// Distinguish a missing tier from an exhausted one
		var exists bool
		err := r.db.QueryRow(
			`SELECT EXISTS(SELECT 1 FROM room_tiers WHERE assignment_id = $1 AND bed_count = $2)`,
			assignmentID, bedCount,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check room tier: %w", err)
		}
		if !exists {
			return models.NewNotFoundError("room tier", fmt.Sprintf("%d-bed", bedCount))
		}
		return models.NewCapacityError(fmt.Sprintf(
			"insufficient room supply for %d-bed tier", bedCount))
	}

	return r.refreshStatus(assignmentID)
}

// refreshStatus re-derives the assignment status from tier occupancy
func (r *EventHotelAssignmentRepository) refreshStatus(assignmentID string) error {
	query := `
		UPDATE event_hotel_assignments
		SET status = CASE
				WHEN status = 'suspended' THEN status
				WHEN (SELECT COALESCE(SUM(quantity * bed_count), 0) FROM room_tiers WHERE assignment_id = $1) > 0
				 AND (SELECT COALESCE(SUM(assigned_rooms * bed_count), 0) FROM room_tiers WHERE assignment_id = $1)
					>= (SELECT COALESCE(SUM(quantity * bed_count), 0) FROM room_tiers WHERE assignment_id = $1)
				THEN 'full'
				ELSE 'active'
			END,
			updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.Exec(query, assignmentID)
	if err != nil {
		return fmt.Errorf("failed to refresh assignment status: %w", err)
	}
	return nil
}

// UpdateStatus suspends or reactivates an assignment
func (r *EventHotelAssignmentRepository) UpdateStatus(assignmentID string, status models.EventHotelAssignmentStatus) error {
	result, err := r.db.Exec(
		`UPDATE event_hotel_assignments SET status = $2, updated_at = NOW() WHERE id = $1`,
		assignmentID, status,
	)
	if err != nil {
		return fmt.Errorf("failed to update assignment status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.NewNotFoundError("event hotel assignment", assignmentID)
	}
	return nil
}

func (r *EventHotelAssignmentRepository) loadTiers(assignment *models.EventHotelAssignment) error {
	query := `
		SELECT id, assignment_id, bed_count, quantity, price_per_night, assigned_rooms
		FROM room_tiers
		WHERE assignment_id = $1
		ORDER BY bed_count
	`

	rows, err := r.db.Query(query, assignment.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch room tiers: %w", err)
	}
	defer rows.Close()

	tiers := []models.RoomTier{}
	for rows.Next() {
		var tier models.RoomTier
		err := rows.Scan(
			&tier.ID, &tier.AssignmentID, &tier.BedCount, &tier.Quantity,
			&tier.PricePerNight, &tier.AssignedRooms,
		)
		if err != nil {
			return err
		}
		tiers = append(tiers, tier)
	}
	assignment.AvailableRooms = tiers
	return rows.Err()
}
