package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventlodge/room-assignment-backend/internal/models"
)

func TestReserveRooms(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mockDB := &mockDatabase{db: db}
	repo := NewEventHotelAssignmentRepository(mockDB)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE room_tiers`).
			WithArgs("assignment-1", 2, 3).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE event_hotel_assignments`).
			WithArgs("assignment-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.ReserveRooms("assignment-1", 2, 3)
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Tier Exhausted", func(t *testing.T) {
		// Conditional update touches no rows but the tier exists
		mock.ExpectExec(`UPDATE room_tiers`).
			WithArgs("assignment-1", 2, 50).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("assignment-1", 2).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		err := repo.ReserveRooms("assignment-1", 2, 50)
		require.Error(t, err)

		var assignErr *models.AssignmentError
		require.True(t, errors.As(err, &assignErr))
		assert.Equal(t, models.ErrorTypeCapacityExceeded, assignErr.Type)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Tier", func(t *testing.T) {
		mock.ExpectExec(`UPDATE room_tiers`).
			WithArgs("assignment-1", 9, 1).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("assignment-1", 9).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		err := repo.ReserveRooms("assignment-1", 9, 1)
		require.Error(t, err)

		var assignErr *models.AssignmentError
		require.True(t, errors.As(err, &assignErr))
		assert.Equal(t, models.ErrorTypeNotFound, assignErr.Type)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRecomputeTotals(t *testing.T) {
	t.Run("Derives Capacity And Status", func(t *testing.T) {
		assignment := models.EventHotelAssignment{
			Status: models.EventHotelStatusActive,
			AvailableRooms: []models.RoomTier{
				{BedCount: 2, Quantity: 5, AssignedRooms: 5},
				{BedCount: 4, Quantity: 3, AssignedRooms: 3},
			},
		}
		assignment.RecomputeTotals()

		assert.Equal(t, 22, assignment.TotalCapacity)
		assert.Equal(t, 22, assignment.TotalAssigned)
		assert.Equal(t, models.EventHotelStatusFull, assignment.Status)
	})

	t.Run("Suspended Status Is Preserved", func(t *testing.T) {
		assignment := models.EventHotelAssignment{
			Status: models.EventHotelStatusSuspended,
			AvailableRooms: []models.RoomTier{
				{BedCount: 2, Quantity: 5, AssignedRooms: 0},
			},
		}
		assignment.RecomputeTotals()

		assert.Equal(t, models.EventHotelStatusSuspended, assignment.Status)
	})
}
