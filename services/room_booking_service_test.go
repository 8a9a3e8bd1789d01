package services

import (
	"testing"
	"time"

	"hotels-api/models"

	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func roomWithBookings(windows ...[2]time.Time) models.Room {
	room := models.Room{}
	for _, w := range windows {
		room.Bookings = append(room.Bookings, models.RoomBooking{StartDate: w[0], EndDate: w[1]})
	}
	return room
}

func TestRoomBooked(t *testing.T) {
	svc := NewRoomBookingService()
	existing := [2]time.Time{day(2026, 7, 1), day(2026, 7, 5)}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"disjoint before", day(2026, 6, 20), day(2026, 6, 30), false},
		{"disjoint after", day(2026, 7, 6), day(2026, 7, 10), false},
		{"identical window", day(2026, 7, 1), day(2026, 7, 5), true},
		{"nested window", day(2026, 7, 3), day(2026, 7, 4), true},
		{"overlaps tail", day(2026, 7, 4), day(2026, 7, 10), true},
		{"overlaps head", day(2026, 6, 28), day(2026, 7, 1), true},
		{"proposed contains existing", day(2026, 6, 1), day(2026, 8, 1), true},
		{"starts on existing end day", day(2026, 7, 5), day(2026, 7, 9), true},
		{"ends on existing start day", day(2026, 6, 28), day(2026, 7, 1), true},
		{"single shared day", day(2026, 7, 5), day(2026, 7, 5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := roomWithBookings(existing)
			assert.Equal(t, tt.want, svc.RoomBooked(room, tt.start, tt.end))
		})
	}
}

func TestRoomBooked_NoReservations(t *testing.T) {
	svc := NewRoomBookingService()
	assert.False(t, svc.RoomBooked(models.Room{}, day(2026, 7, 1), day(2026, 7, 5)))
	assert.False(t, svc.RoomBooked(models.Room{Bookings: []models.RoomBooking{}}, day(2026, 7, 1), day(2026, 7, 5)))
}

func TestRoomBooked_IgnoresTimeOfDay(t *testing.T) {
	svc := NewRoomBookingService()
	room := roomWithBookings([2]time.Time{
		time.Date(2026, 7, 1, 14, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 5, 10, 0, 0, 0, time.UTC),
	})

	// Late arrival on the reservation's last day still conflicts.
	assert.True(t, svc.RoomBooked(room, time.Date(2026, 7, 5, 23, 30, 0, 0, time.UTC), day(2026, 7, 9)))
	assert.False(t, svc.RoomBooked(room, day(2026, 7, 6), day(2026, 7, 9)))
}

func TestRoomBooked_ChecksAllReservations(t *testing.T) {
	svc := NewRoomBookingService()
	room := roomWithBookings(
		[2]time.Time{day(2026, 7, 1), day(2026, 7, 5)},
		[2]time.Time{day(2026, 8, 10), day(2026, 8, 15)},
	)

	assert.True(t, svc.RoomBooked(room, day(2026, 8, 12), day(2026, 8, 13)))
	assert.False(t, svc.RoomBooked(room, day(2026, 7, 20), day(2026, 7, 25)))
}
