package models

import "time"

// GuestBooking assigns a customer as an occupant of one room reservation.
type GuestBooking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`

	RoomBookingID uint `gorm:"index;column:room_booking_id" json:"room_booking_id"`
	GuestID       uint `gorm:"index;column:guest_id" json:"guest_id"`

	RoomBooking *RoomBooking `gorm:"foreignKey:RoomBookingID" json:"-"`
	Guest       Customer     `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
}
