package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomBooking reserves one room for an inclusive date window. It is the
// unit conflict detection runs against.
type RoomBooking struct {
	gorm.Model

	BookingID uint `gorm:"index;column:booking_id" json:"booking_id"`
	RoomID    uint `gorm:"index;column:room_id" json:"room_id"`

	StartDate time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date" json:"end_date"`

	Booking *Booking `gorm:"foreignKey:BookingID" json:"-"`
	Room    *Room    `gorm:"foreignKey:RoomID" json:"-"`

	GuestBookings []GuestBooking `gorm:"foreignKey:RoomBookingID" json:"guest_bookings,omitempty"`
}
