package database

import (
	"database/sql"
	"fmt"

	"github.com/eventlodge/room-assignment-backend/internal/models"
	"github.com/google/uuid"
)

// HotelRepository handles database operations for hotels and their
// assignment rosters.
type HotelRepository struct {
	db DB
}

// NewHotelRepository creates a new HotelRepository
func NewHotelRepository(db DB) *HotelRepository {
	return &HotelRepository{db: db}
}

// Create registers a hotel for an event
func (r *HotelRepository) Create(hotel *models.Hotel) error {
	query := `
		INSERT INTO hotels (id, event_id, name, category, allow_mixed_groups, total_capacity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	if hotel.ID == "" {
		hotel.ID = uuid.New().String()
	}
	if hotel.Category == "" {
		hotel.Category = models.HotelCategoryStandard
	}

	err := r.db.QueryRow(
		query,
		hotel.ID, hotel.EventID, hotel.Name, hotel.Category,
		hotel.AllowMixedGroups, hotel.TotalCapacity,
	).Scan(&hotel.CreatedAt, &hotel.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create hotel: %w", err)
	}
	return nil
}

// GetByID retrieves a hotel with its current roster count
func (r *HotelRepository) GetByID(hotelID string) (*models.Hotel, error) {
	query := `
		SELECT h.id, h.event_id, h.name, h.category, h.allow_mixed_groups,
			   h.total_capacity,
			   (SELECT COUNT(*) FROM hotel_assignments a WHERE a.hotel_id = h.id) AS assigned_count,
			   h.created_at, h.updated_at
		FROM hotels h
		WHERE h.id = $1
	`

	hotel := &models.Hotel{}
	err := r.db.QueryRow(query, hotelID).Scan(
		&hotel.ID, &hotel.EventID, &hotel.Name, &hotel.Category,
		&hotel.AllowMixedGroups, &hotel.TotalCapacity, &hotel.AssignedCount,
		&hotel.CreatedAt, &hotel.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("hotel", hotelID)
		}
		return nil, fmt.Errorf("failed to fetch hotel: %w", err)
	}
	return hotel, nil
}

// ListByEvent retrieves all hotels of an event with roster counts, in
// insertion order. The order is stable so first-fit packing is
// deterministic.
func (r *HotelRepository) ListByEvent(eventID string) ([]models.Hotel, error) {
	query := `
		SELECT h.id, h.event_id, h.name, h.category, h.allow_mixed_groups,
			   h.total_capacity,
			   (SELECT COUNT(*) FROM hotel_assignments a WHERE a.hotel_id = h.id) AS assigned_count,
			   h.created_at, h.updated_at
		FROM hotels h
		WHERE h.event_id = $1
		ORDER BY h.created_at
	`

	rows, err := r.db.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	defer rows.Close()

	hotels := []models.Hotel{}
	for rows.Next() {
		var hotel models.Hotel
		err := rows.Scan(
			&hotel.ID, &hotel.EventID, &hotel.Name, &hotel.Category,
			&hotel.AllowMixedGroups, &hotel.TotalCapacity, &hotel.AssignedCount,
			&hotel.CreatedAt, &hotel.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, hotel)
	}
	return hotels, rows.Err()
}

// CountAssigned returns the current roster size of a hotel
func (r *HotelRepository) CountAssigned(hotelID string) (int, error) {
	var count int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM hotel_assignments WHERE hotel_id = $1`, hotelID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}
	return count, nil
}

// AddAssignment appends one roster record. The INSERT re-checks the
// capacity invariant inside the statement so a racing writer that slipped
// past the engine's pre-check still cannot overfill the hotel.
func (r *HotelRepository) AddAssignment(assignment *models.HotelAssignment) error {
	query := `
		INSERT INTO hotel_assignments (id, hotel_id, client_id, assigned_by, assignment_type)
		SELECT $1, $2, $3, $4, $5
		WHERE (SELECT COUNT(*) FROM hotel_assignments WHERE hotel_id = $2)
			< (SELECT total_capacity FROM hotels WHERE id = $2)
		RETURNING assigned_at
	`

	if assignment.ID == "" {
		assignment.ID = uuid.New().String()
	}

	err := r.db.QueryRow(
		query,
		assignment.ID, assignment.HotelID, assignment.ClientID,
		assignment.AssignedBy, assignment.AssignmentType,
	).Scan(&assignment.AssignedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.NewCapacityError(
				fmt.Sprintf("hotel %s is at full capacity", assignment.HotelID))
		}
		if isUniqueViolation(err) {
			return models.NewAlreadyAssignedError(assignment.ClientID)
		}
		return fmt.Errorf("failed to add assignment: %w", err)
	}
	return nil
}

// RemoveAssignment removes a client's roster record from a hotel
func (r *HotelRepository) RemoveAssignment(hotelID, clientID string) error {
	result, err := r.db.Exec(
		`DELETE FROM hotel_assignments WHERE hotel_id = $1 AND client_id = $2`,
		hotelID, clientID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove assignment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.NewNotAssignedError(clientID)
	}
	return nil
}

// RemoveAssignmentByClient removes a client's roster record wherever it is
func (r *HotelRepository) RemoveAssignmentByClient(clientID string) error {
	_, err := r.db.Exec(`DELETE FROM hotel_assignments WHERE client_id = $1`, clientID)
	if err != nil {
		return fmt.Errorf("failed to remove assignment: %w", err)
	}
	return nil
}

// GetRoster retrieves the assignment records of a hotel in placement order
func (r *HotelRepository) GetRoster(hotelID string) ([]models.HotelAssignment, error) {
	query := `
		SELECT id, hotel_id, client_id, assigned_at, assigned_by, assignment_type
		FROM hotel_assignments
		WHERE hotel_id = $1
		ORDER BY assigned_at
	`

	rows, err := r.db.Query(query, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}
	defer rows.Close()

	roster := []models.HotelAssignment{}
	for rows.Next() {
		var record models.HotelAssignment
		err := rows.Scan(
			&record.ID, &record.HotelID, &record.ClientID,
			&record.AssignedAt, &record.AssignedBy, &record.AssignmentType,
		)
		if err != nil {
			return nil, err
		}
		roster = append(roster, record)
	}
	return roster, rows.Err()
}

// ClearRostersByEvent empties the rosters of every hotel in the event.
// Returns the number of hotels that had at least one record.
func (r *HotelRepository) ClearRostersByEvent(eventID string) (int, error) {
	var hotelCount int
	err := r.db.QueryRow(`
		SELECT COUNT(DISTINCT a.hotel_id)
		FROM hotel_assignments a
		JOIN hotels h ON h.id = a.hotel_id
		WHERE h.event_id = $1
	`, eventID).Scan(&hotelCount)
	if err != nil {
		return 0, fmt.Errorf("failed to count hotels with assignments: %w", err)
	}

	_, err = r.db.Exec(`
		DELETE FROM hotel_assignments
		WHERE hotel_id IN (SELECT id FROM hotels WHERE event_id = $1)
	`, eventID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear rosters: %w", err)
	}

	return hotelCount, nil
}
