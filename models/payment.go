package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment is carried for schema parity; the booking engine never writes it.
type Payment struct {
	gorm.Model

	BookingID uint       `gorm:"index;column:booking_id" json:"booking_id"`
	Amount    float64    `gorm:"column:amount" json:"amount"`
	Method    string     `gorm:"size:64" json:"method"`
	Status    string     `gorm:"size:64" json:"status"`
	PaidAt    *time.Time `gorm:"column:paid_at" json:"paid_at,omitempty"`
}
