package services

import (
	"time"

	"hotels-api/models"
)

// RoomBookingService decides whether a room is already reserved for a
// requested stay window. Dates are compared day-granular and inclusive on
// both ends: a reservation ending on day D conflicts with one starting on
// day D.
type RoomBookingService struct{}

func NewRoomBookingService() *RoomBookingService {
	return &RoomBookingService{}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RoomBooked reports whether the proposed window intersects any existing
// reservation of the room. Callers guarantee start <= end; ordering is not
// validated here. A room with no reservation history never conflicts.
func (s *RoomBookingService) RoomBooked(room models.Room, startDate, endDate time.Time) bool {
	start := dateOnly(startDate)
	end := dateOnly(endDate)

	for _, b := range room.Bookings {
		bs := dateOnly(b.StartDate)
		be := dateOnly(b.EndDate)
		if !start.After(be) && !bs.After(end) {
			return true
		}
	}
	return false
}
