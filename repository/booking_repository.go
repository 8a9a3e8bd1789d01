package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotels-api/models"
	"hotels-api/services"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingRepository implements services.BookingStore on gorm. The whole
// booking commit runs inside one database transaction; room rows are locked
// FOR UPDATE before re-validation so two racing requests for the same room
// serialize here instead of both committing.
type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

func (r *BookingRepository) InTransaction(ctx context.Context, fn func(tx services.BookingTx) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&bookingTx{db: tx})
	})
}

type bookingTx struct {
	db *gorm.DB
}

func (t *bookingTx) HotelByID(id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	err := t.db.First(&hotel, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (t *bookingTx) HotelByName(name string) (*models.Hotel, error) {
	var hotel models.Hotel
	err := t.db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&hotel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (t *bookingTx) CustomerByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := t.db.First(&customer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (t *bookingTx) CustomerByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	err := t.db.Where("email = ?", email).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (t *bookingTx) CreateCustomer(c *models.Customer) error {
	return t.db.Create(c).Error
}

// RoomsForUpdate locks the requested rooms of the hotel and reloads their
// reservation history inside the transaction. Rooms belonging to another
// hotel simply come back missing.
func (t *bookingTx) RoomsForUpdate(hotelID uint, roomIDs []uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := t.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("hotel_id = ? AND id IN ?", hotelID, roomIDs).
		Find(&rooms).Error; err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return rooms, nil
	}

	ids := make([]uint, 0, len(rooms))
	for _, room := range rooms {
		ids = append(ids, room.ID)
	}
	var reservations []models.RoomBooking
	if err := t.db.Where("room_id IN ?", ids).Find(&reservations).Error; err != nil {
		return nil, err
	}
	byRoom := make(map[uint][]models.RoomBooking, len(rooms))
	for _, rb := range reservations {
		byRoom[rb.RoomID] = append(byRoom[rb.RoomID], rb)
	}
	for i := range rooms {
		rooms[i].Bookings = byRoom[rooms[i].ID]
	}
	return rooms, nil
}

// CreateBooking inserts the booking row. A unique-index violation on the
// reference column (the table's only unique index) comes back as
// services.ErrDuplicateReference so the caller can retry with a new one.
func (t *bookingTx) CreateBooking(b *models.Booking) error {
	err := t.db.Create(b).Error
	var mysqlErr *gomysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return fmt.Errorf("%w: %s", services.ErrDuplicateReference, b.BookingReference)
	}
	return err
}

func (t *bookingTx) CreateRoomBookings(rbs []models.RoomBooking) error {
	return t.db.Create(&rbs).Error
}

func (t *bookingTx) CreateGuestBookings(gbs []models.GuestBooking) error {
	return t.db.Create(&gbs).Error
}
