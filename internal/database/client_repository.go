package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/eventlodge/room-assignment-backend/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ClientRepository handles database operations for the clients table
type ClientRepository struct {
	db DB
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db DB) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `id, event_id, name, phone, gender, client_type,
	   group_name, group_size, group_relation, notes, status,
	   assigned_hotel_id, logical_room_id, real_room_number, bed_assignment,
	   assignment_type, assignment_date, assigned_by, created_at, updated_at`

// Create registers a new client for an event. Phone numbers are unique
// within an event.
func (r *ClientRepository) Create(client *models.Client) error {
	query := `
		INSERT INTO clients (
			id, event_id, name, phone, gender, client_type,
			group_name, group_size, group_relation, notes, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		RETURNING created_at, updated_at
	`

	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	if client.Status == "" {
		client.Status = models.ClientStatusPending
	}
	if client.GroupSize < 1 {
		client.GroupSize = 1
	}

	err := r.db.QueryRow(
		query,
		client.ID, client.EventID, client.Name, client.Phone, client.Gender,
		client.ClientType, client.GroupName, client.GroupSize, client.GroupRelation,
		client.Notes, client.Status,
	).Scan(&client.CreatedAt, &client.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return models.NewDuplicateError(
				fmt.Sprintf("phone %s is already registered for this event", client.Phone))
		}
		return fmt.Errorf("failed to create client: %w", err)
	}

	return nil
}

// GetByID retrieves a client by ID
func (r *ClientRepository) GetByID(clientID string) (*models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	client, err := r.scanClient(r.db.QueryRow(query, clientID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("client", clientID)
		}
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}
	return client, nil
}

// GetByIDs retrieves multiple clients by ID. Missing ids are simply absent
// from the result; the caller decides whether that is an error.
func (r *ClientRepository) GetByIDs(clientIDs []string) ([]models.Client, error) {
	if len(clientIDs) == 0 {
		return []models.Client{}, nil
	}

	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = ANY($1) ORDER BY created_at`

	rows, err := r.db.Query(query, pq.Array(clientIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clients: %w", err)
	}
	defer rows.Close()

	return r.scanClients(rows)
}

// ListByEvent retrieves all clients for an event in insertion order
func (r *ClientRepository) ListByEvent(eventID string) ([]models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE event_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	return r.scanClients(rows)
}

// ListUnassigned retrieves all clients in the event not yet assigned,
// ordered by insertion.
func (r *ClientRepository) ListUnassigned(eventID string) ([]models.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE event_id = $1
		  AND status != 'assigned'
		ORDER BY created_at
	`

	rows, err := r.db.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unassigned clients: %w", err)
	}
	defer rows.Close()

	return r.scanClients(rows)
}

// GroupMembers retrieves all clients of an event sharing a group name
func (r *ClientRepository) GroupMembers(eventID, groupName string) ([]models.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE event_id = $1
		  AND group_name = $2
		ORDER BY created_at
	`

	rows, err := r.db.Query(query, eventID, groupName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch group members: %w", err)
	}
	defer rows.Close()

	return r.scanClients(rows)
}

// SetAssignment sets the assignment fields and moves the client to
// assigned status. The WHERE clause rejects clients that already hold an
// assignment so two racing writers cannot both claim the same client.
func (r *ClientRepository) SetAssignment(clientID, hotelID string, roomID *string, assignedBy string, assignmentType models.AssignmentType) error {
	query := `
		UPDATE clients
		SET assigned_hotel_id = $2, logical_room_id = $3,
			assignment_type = $4, assignment_date = $5, assigned_by = $6,
			status = 'assigned', updated_at = NOW()
		WHERE id = $1
		  AND assigned_hotel_id IS NULL
	`

	result, err := r.db.Exec(query, clientID, hotelID, roomID, assignmentType, time.Now(), assignedBy)
	if err != nil {
		return fmt.Errorf("failed to set assignment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		// Either the client does not exist or it is already assigned
		existing, getErr := r.GetByID(clientID)
		if getErr != nil {
			return getErr
		}
		if existing.IsAssigned() {
			return models.NewAlreadyAssignedError(clientID)
		}
		return fmt.Errorf("failed to set assignment for client %s", clientID)
	}

	return nil
}

// UpdateAssignedHotel repoints an already-assigned client to a different
// hotel. Used by move and swap; the roster records are adjusted separately.
func (r *ClientRepository) UpdateAssignedHotel(clientID, hotelID string) error {
	query := `
		UPDATE clients
		SET assigned_hotel_id = $2, updated_at = NOW()
		WHERE id = $1
		  AND assigned_hotel_id IS NOT NULL
	`

	result, err := r.db.Exec(query, clientID, hotelID)
	if err != nil {
		return fmt.Errorf("failed to update assigned hotel: %w", err)
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

// ClearAssignment clears all assignment fields atomically and reverts the
// client to confirmed status. A client with a cleared hotel pointer cannot
// stay in the assigned, arrived or departed states, so all three revert;
// pending clients keep pending. Clearing an unassigned client is a no-op.
func (r *ClientRepository) ClearAssignment(clientID string) error {
	query := `
		UPDATE clients
		SET assigned_hotel_id = NULL, logical_room_id = NULL,
			real_room_number = NULL, bed_assignment = NULL,
			assignment_type = NULL, assignment_date = NULL, assigned_by = NULL,
			status = CASE WHEN status IN ('assigned', 'arrived', 'departed') THEN 'confirmed' ELSE status END,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(query, clientID)
	if err != nil {
		return fmt.Errorf("failed to clear assignment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.NewNotFoundError("client", clientID)
	}

	return nil
}

// ClearAllByEvent resets every client of the event holding a hotel
// pointer, reverting assigned, arrived and departed statuses alike.
// Returns the number of clients that actually changed.
func (r *ClientRepository) ClearAllByEvent(eventID string) (int, error) {
	query := `
		UPDATE clients
		SET assigned_hotel_id = NULL, logical_room_id = NULL,
			real_room_number = NULL, bed_assignment = NULL,
			assignment_type = NULL, assignment_date = NULL, assigned_by = NULL,
			status = CASE WHEN status IN ('assigned', 'arrived', 'departed') THEN 'confirmed' ELSE status END,
			updated_at = NOW()
		WHERE event_id = $1
		  AND assigned_hotel_id IS NOT NULL
	`

	result, err := r.db.Exec(query, eventID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear assignments: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(rows), nil
}

// UpdateStatus updates the lifecycle status of a client
func (r *ClientRepository) UpdateStatus(clientID string, status models.ClientStatus) error {
	query := `UPDATE clients SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(query, clientID, status)
	if err != nil {
		return fmt.Errorf("failed to update client status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.NewNotFoundError("client", clientID)
	}
	return nil
}

// Delete removes a client
func (r *ClientRepository) Delete(clientID string) error {
	result, err := r.db.Exec(`DELETE FROM clients WHERE id = $1`, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.NewNotFoundError("client", clientID)
	}
	return nil
}

// CountByEvent counts the clients registered for an event
func (r *ClientRepository) CountByEvent(eventID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM clients WHERE event_id = $1`, eventID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return count, nil
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}

// scanClient scans a single client
func (r *ClientRepository) scanClient(row scanner) (*models.Client, error) {
	client := &models.Client{}
	var groupName, groupRelation, notes sql.NullString
	var assignedHotel, logicalRoomID, realRoomNumber, bedAssignment sql.NullString
	var assignmentType, assignedBy sql.NullString
	var assignmentDate sql.NullTime

	err := row.Scan(
		&client.ID, &client.EventID, &client.Name, &client.Phone, &client.Gender,
		&client.ClientType, &groupName, &client.GroupSize, &groupRelation,
		&notes, &client.Status,
		&assignedHotel, &logicalRoomID, &realRoomNumber, &bedAssignment,
		&assignmentType, &assignmentDate, &assignedBy,
		&client.CreatedAt, &client.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	applyClientNulls(client, groupName, groupRelation, notes, assignedHotel,
		logicalRoomID, realRoomNumber, bedAssignment, assignmentType, assignedBy, assignmentDate)

	return client, nil
}

// scanClients scans multiple clients from rows
func (r *ClientRepository) scanClients(rows *sql.Rows) ([]models.Client, error) {
	clients := []models.Client{}

	for rows.Next() {
		var client models.Client
		var groupName, groupRelation, notes sql.NullString
		var assignedHotel, logicalRoomID, realRoomNumber, bedAssignment sql.NullString
		var assignmentType, assignedBy sql.NullString
		var assignmentDate sql.NullTime

		err := rows.Scan(
			&client.ID, &client.EventID, &client.Name, &client.Phone, &client.Gender,
			&client.ClientType, &groupName, &client.GroupSize, &groupRelation,
			&notes, &client.Status,
			&assignedHotel, &logicalRoomID, &realRoomNumber, &bedAssignment,
			&assignmentType, &assignmentDate, &assignedBy,
			&client.CreatedAt, &client.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		applyClientNulls(&client, groupName, groupRelation, notes, assignedHotel,
			logicalRoomID, realRoomNumber, bedAssignment, assignmentType, assignedBy, assignmentDate)

		clients = append(clients, client)
	}

	return clients, rows.Err()
}

func applyClientNulls(
	client *models.Client,
	groupName, groupRelation, notes sql.NullString,
	assignedHotel, logicalRoomID, realRoomNumber, bedAssignment sql.NullString,
	assignmentType, assignedBy sql.NullString,
	assignmentDate sql.NullTime,
) {
	if groupName.Valid {
		client.GroupName = &groupName.String
	}
	if groupRelation.Valid {
		client.GroupRelation = &groupRelation.String
	}
	if notes.Valid {
		client.Notes = &notes.String
	}
	if assignedHotel.Valid {
		client.AssignedHotel = &assignedHotel.String
	}
	if logicalRoomID.Valid {
		client.LogicalRoomID = &logicalRoomID.String
	}
	if realRoomNumber.Valid {
		client.RealRoomNumber = &realRoomNumber.String
	}
	if bedAssignment.Valid {
		client.BedAssignment = &bedAssignment.String
	}
	if assignmentType.Valid {
		at := models.AssignmentType(assignmentType.String)
		client.AssignmentType = &at
	}
	if assignedBy.Valid {
		client.AssignedBy = &assignedBy.String
	}
	if assignmentDate.Valid {
		client.AssignmentDate = &assignmentDate.Time
	}
}
