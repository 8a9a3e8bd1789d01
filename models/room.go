package models

import (
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	HotelID    uint `gorm:"index;column:hotel_id" json:"hotel_id"`
	RoomTypeID uint `gorm:"column:room_type_id" json:"room_type_id"`

	RoomNumber    string  `gorm:"column:room_number;type:varchar(50)" json:"roomNumber"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"pricePerNight"`
	Capacity      int     `gorm:"column:capacity;default:0" json:"capacity"`

	Hotel    *Hotel   `gorm:"foreignKey:HotelID" json:"-"`
	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`

	// Reservation history; the conflict detector runs against this.
	Bookings []RoomBooking `gorm:"foreignKey:RoomID" json:"bookings,omitempty"`
}
