package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventlodge/room-assignment-backend/internal/models"
)

func TestGetHotelByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mockDB := &mockDatabase{db: db}
	repo := NewHotelRepository(mockDB)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM hotels h`).
			WithArgs("hotel-1").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "event_id", "name", "category", "allow_mixed_groups",
				"total_capacity", "assigned_count", "created_at", "updated_at",
			}).AddRow("hotel-1", "event-1", "Grand Plaza", "vip", false, 20, 8, now, now))

		hotel, err := repo.GetByID("hotel-1")
		require.NoError(t, err)
		assert.Equal(t, "Grand Plaza", hotel.Name)
		assert.Equal(t, models.HotelCategoryVIP, hotel.Category)
		assert.Equal(t, 12, hotel.AvailableCapacity())
		assert.True(t, hotel.AcceptsMixedGroups())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM hotels h`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		hotel, err := repo.GetByID("missing")
		require.Error(t, err)
		assert.Nil(t, hotel)

		var assignErr *models.AssignmentError
		require.True(t, errors.As(err, &assignErr))
		assert.Equal(t, models.ErrorTypeNotFound, assignErr.Type)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAddAssignment(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mockDB := &mockDatabase{db: db}
	repo := NewHotelRepository(mockDB)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`INSERT INTO hotel_assignments`).
			WithArgs(sqlmock.AnyArg(), "hotel-1", "client-1", "operator", "manual").
			WillReturnRows(sqlmock.NewRows([]string{"assigned_at"}).AddRow(now))

		record := &models.HotelAssignment{
			HotelID:        "hotel-1",
			ClientID:       "client-1",
			AssignedBy:     "operator",
			AssignmentType: models.AssignmentTypeManual,
		}
		err := repo.AddAssignment(record)
		require.NoError(t, err)
		assert.NotEmpty(t, record.ID)
		assert.WithinDuration(t, now, record.AssignedAt, time.Second)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Capacity Exceeded", func(t *testing.T) {
		// The conditional insert touches no rows when the hotel is full
		mock.ExpectQuery(`INSERT INTO hotel_assignments`).
			WithArgs(sqlmock.AnyArg(), "hotel-1", "client-2", "operator", "manual").
			WillReturnError(sql.ErrNoRows)

		record := &models.HotelAssignment{
			HotelID:        "hotel-1",
			ClientID:       "client-2",
			AssignedBy:     "operator",
			AssignmentType: models.AssignmentTypeManual,
		}
		err := repo.AddAssignment(record)
		require.Error(t, err)

		var assignErr *models.AssignmentError
		require.True(t, errors.As(err, &assignErr))
		assert.Equal(t, models.ErrorTypeCapacityExceeded, assignErr.Type)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Client Already On A Roster", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO hotel_assignments`).
			WillReturnError(fmt.Errorf("duplicate key value violates unique constraint"))

		record := &models.HotelAssignment{
			HotelID:        "hotel-1",
			ClientID:       "client-1",
			AssignedBy:     "operator",
			AssignmentType: models.AssignmentTypeManual,
		}
		err := repo.AddAssignment(record)
		require.Error(t, err)

		var assignErr *models.AssignmentError
		require.True(t, errors.As(err, &assignErr))
		assert.Equal(t, models.ErrorTypeAlreadyAssigned, assignErr.Type)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRemoveAssignment(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mockDB := &mockDatabase{db: db}
	repo := NewHotelRepository(mockDB)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM hotel_assignments`).
			WithArgs("hotel-1", "client-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.RemoveAssignment("hotel-1", "client-1")
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Assigned", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM hotel_assignments`).
			WithArgs("hotel-1", "client-9").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.RemoveAssignment("hotel-1", "client-9")
		require.Error(t, err)

		var assignErr *models.AssignmentError
		require.True(t, errors.As(err, &assignErr))
		assert.Equal(t, models.ErrorTypeNotAssigned, assignErr.Type)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestClearRostersByEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mockDB := &mockDatabase{db: db}
	repo := NewHotelRepository(mockDB)

	t.Run("Counts Hotels Then Deletes", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(DISTINCT a.hotel_id\)`).
			WithArgs("event-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectExec(`DELETE FROM hotel_assignments`).
			WithArgs("event-1").
			WillReturnResult(sqlmock.NewResult(0, 14))

		count, err := repo.ClearRostersByEvent("event-1")
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
