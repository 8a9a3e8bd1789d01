package repository

import (
	"context"
	"errors"
	"testing"

	"hotels-api/models"
	"hotels-api/services"

	"github.com/DATA-DOG/go-sqlmock"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return gormDB, mock
}

func TestInTransaction_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `hotels`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Grand Plaza"))
	mock.ExpectCommit()

	err := repo.InTransaction(context.Background(), func(tx services.BookingTx) error {
		hotel, err := tx.HotelByName("Grand Plaza")
		require.NoError(t, err)
		require.NotNil(t, hotel)
		assert.Equal(t, "Grand Plaza", hotel.Name)
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTransaction_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := repo.InTransaction(context.Background(), func(tx services.BookingTx) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHotelByName_MissingHotelIsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `hotels`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
	mock.ExpectCommit()

	err := repo.InTransaction(context.Background(), func(tx services.BookingTx) error {
		hotel, err := tx.HotelByName("Nowhere Inn")
		require.NoError(t, err)
		assert.Nil(t, hotel)
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomsForUpdate_LocksRowsAndLoadsReservations(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `rooms` (.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "hotel_id", "room_number", "price_per_night", "capacity"}).
			AddRow(2, 1, "2", 155.0, 2))
	mock.ExpectQuery("SELECT (.+) FROM `room_bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "room_id"}).
			AddRow(10, 1, 2))
	mock.ExpectCommit()

	err := repo.InTransaction(context.Background(), func(tx services.BookingTx) error {
		rooms, err := tx.RoomsForUpdate(1, []uint{2})
		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.Equal(t, "2", rooms[0].RoomNumber)
		require.Len(t, rooms[0].Bookings, 1)
		assert.Equal(t, uint(2), rooms[0].Bookings[0].RoomID)
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomsForUpdate_NoMatchingRooms(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `rooms` (.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	err := repo.InTransaction(context.Background(), func(tx services.BookingTx) error {
		rooms, err := tx.RoomsForUpdate(1, []uint{77})
		require.NoError(t, err)
		assert.Empty(t, rooms)
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_DuplicateReferenceIsRecognizable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `bookings`").
		WillReturnError(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	err := repo.InTransaction(context.Background(), func(tx services.BookingTx) error {
		return tx.CreateBooking(&models.Booking{BookingReference: "PrhEjxxuk1Bnp"})
	})

	assert.ErrorIs(t, err, services.ErrDuplicateReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_FailurePropagates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `bookings`").
		WillReturnError(errors.New("duplicate entry"))
	mock.ExpectRollback()

	err := repo.InTransaction(context.Background(), func(tx services.BookingTx) error {
		return tx.CreateBooking(&models.Booking{BookingReference: "PrhEjxxuk1Bnp"})
	})

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
