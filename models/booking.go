package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CustomerID       uint    `gorm:"index;column:customer_id" json:"customer_id"`
	BookingReference string  `gorm:"column:booking_reference;size:64;uniqueIndex" json:"booking_reference"`
	TotalPrice       float64 `gorm:"column:total_price" json:"total_price"`
	Cancelled        bool    `gorm:"column:cancelled;default:false" json:"cancelled"`

	// Display names of all assigned guests, denormalized at commit time.
	GuestSummary datatypes.JSON `gorm:"column:guest_summary" json:"guestSummary,omitempty"`

	Customer     Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	RoomBookings []RoomBooking `gorm:"foreignKey:BookingID" json:"room_bookings"`
}
