package models

import (
	"strings"

	"gorm.io/gorm"
)

// Customer is both a booking owner and, through GuestBooking, a room occupant.
type Customer struct {
	gorm.Model

	FirstName string `gorm:"size:100" json:"firstName"`
	LastName  string `gorm:"size:100" json:"lastName"`
	Address   string `gorm:"type:text" json:"address"`
	Email     string `gorm:"size:150;index" json:"email"`
	Phone     string `gorm:"size:50" json:"phone"`
}

func (c Customer) DisplayName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
