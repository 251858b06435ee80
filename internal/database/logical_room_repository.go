package database

import (
	"database/sql"
	"fmt"

	"github.com/eventlodge/room-assignment-backend/internal/models"
	"github.com/google/uuid"
)

// LogicalRoomRepository handles database operations for logical rooms
type LogicalRoomRepository struct {
	db DB
}

// NewLogicalRoomRepository creates a new LogicalRoomRepository
func NewLogicalRoomRepository(db DB) *LogicalRoomRepository {
	return &LogicalRoomRepository{db: db}
}

// Create declares a logical room inside a hotel for an event
func (r *LogicalRoomRepository) Create(room *models.LogicalRoom) error {
	query := `
		INSERT INTO logical_rooms (id, event_id, hotel_id, room_type, bed_count, max_capacity, assigned_clients)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	if room.ID == "" {
		room.ID = uuid.New().String()
	}
	if room.MaxCapacity == 0 {
		room.MaxCapacity = room.BedCount
	}
	if room.AssignedClients == nil {
		room.AssignedClients = models.UUIDArray{}
	}

	err := r.db.QueryRow(
		query,
		room.ID, room.EventID, room.HotelID, room.RoomType,
		room.BedCount, room.MaxCapacity, room.AssignedClients,
	).Scan(&room.CreatedAt, &room.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create logical room: %w", err)
	}
	return nil
}

// GetByID retrieves a logical room
func (r *LogicalRoomRepository) GetByID(roomID string) (*models.LogicalRoom, error) {
	query := `
		SELECT id, event_id, hotel_id, room_type, bed_count, max_capacity,
			   real_room_number, assigned_clients, created_at, updated_at
		FROM logical_rooms
		WHERE id = $1
	`

	return r.scanRoom(r.db.QueryRow(query, roomID), roomID)
}

// ListByHotel retrieves the logical rooms declared inside a hotel
func (r *LogicalRoomRepository) ListByHotel(hotelID string) ([]models.LogicalRoom, error) {
	query := `
		SELECT id, event_id, hotel_id, room_type, bed_count, max_capacity,
			   real_room_number, assigned_clients, created_at, updated_at
		FROM logical_rooms
		WHERE hotel_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(query, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list logical rooms: %w", err)
	}
	defer rows.Close()

	rooms := []models.LogicalRoom{}
	for rows.Next() {
		var room models.LogicalRoom
		var realRoomNumber sql.NullString
		err := rows.Scan(
			&room.ID, &room.EventID, &room.HotelID, &room.RoomType,
			&room.BedCount, &room.MaxCapacity, &realRoomNumber,
			&room.AssignedClients, &room.CreatedAt, &room.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if realRoomNumber.Valid {
			room.RealRoomNumber = &realRoomNumber.String
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

// UpdateRoster replaces the room's client list. The conditional WHERE
// keeps occupancy within max_capacity even under racing writers.
func (r *LogicalRoomRepository) UpdateRoster(roomID string, clients models.UUIDArray) error {
	query := `
		UPDATE logical_rooms
		SET assigned_clients = $2, updated_at = NOW()
		WHERE id = $1
		  AND $3 <= max_capacity
	`

	result, err := r.db.Exec(query, roomID, clients, len(clients))
	if err != nil {
		return fmt.Errorf("failed to update room roster: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.NewCapacityError(fmt.Sprintf("room %s cannot hold %d clients", roomID, len(clients)))
	}
	return nil
}

// BindRealRoomNumber attaches the physical room number for on-site check-in
func (r *LogicalRoomRepository) BindRealRoomNumber(roomID, realRoomNumber string) error {
	result, err := r.db.Exec(
		`UPDATE logical_rooms SET real_room_number = $2, updated_at = NOW() WHERE id = $1`,
		roomID, realRoomNumber,
	)
	if err != nil {
		return fmt.Errorf("failed to bind room number: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.NewNotFoundError("logical room", roomID)
	}
	return nil
}

func (r *LogicalRoomRepository) scanRoom(row scanner, roomID string) (*models.LogicalRoom, error) {
	room := &models.LogicalRoom{}
	var realRoomNumber sql.NullString

	err := row.Scan(
		&room.ID, &room.EventID, &room.HotelID, &room.RoomType,
		&room.BedCount, &room.MaxCapacity, &realRoomNumber,
		&room.AssignedClients, &room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("logical room", roomID)
		}
		return nil, fmt.Errorf("failed to fetch logical room: %w", err)
	}

	if realRoomNumber.Valid {
		room.RealRoomNumber = &realRoomNumber.String
	}
	return room, nil
}
