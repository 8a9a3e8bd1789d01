package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotels-api/models"
)

// HotelCatalog supplies hotels with their rooms and each room's reservation
// history.
type HotelCatalog interface {
	// All returns the full catalog with rooms and reservations preloaded.
	All(ctx context.Context) ([]models.Hotel, error)
	// ByName returns hotels whose name matches exactly, case-insensitively,
	// with rooms preloaded. No match yields an empty slice.
	ByName(ctx context.Context, name string) ([]models.Hotel, error)
}

type HotelService struct {
	Catalog HotelCatalog
	Rooms   *RoomBookingService
}

func NewHotelService(catalog HotelCatalog, rooms *RoomBookingService) *HotelService {
	return &HotelService{Catalog: catalog, Rooms: rooms}
}

// GetHotelByName looks hotels up by case-insensitive exact name match.
// Names under 3 characters are rejected with ErrInvalidArgument.
func (s *HotelService) GetHotelByName(ctx context.Context, name string) ([]models.Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: hotel name cannot be empty", ErrInvalidArgument)
	}
	if len(name) < 3 {
		return nil, fmt.Errorf("%w: hotel name must be at least 3 characters long", ErrInvalidArgument)
	}
	return s.Catalog.ByName(ctx, name)
}

// GetAvailableHotelRooms returns, in catalog order, the hotels that can seat
// numberOfGuests using only rooms free for the whole window. Each returned
// hotel is a fresh value carrying just its free rooms; catalog entities are
// never mutated.
func (s *HotelService) GetAvailableHotelRooms(ctx context.Context, startDate, endDate time.Time, numberOfGuests int) ([]models.Hotel, error) {
	hotels, err := s.Catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]models.Hotel, 0, len(hotels))
	for _, hotel := range hotels {
		freeRooms := make([]models.Room, 0, len(hotel.Rooms))
		capacity := 0
		for _, room := range hotel.Rooms {
			if s.Rooms.RoomBooked(room, startDate, endDate) {
				continue
			}
			freeRooms = append(freeRooms, room)
			capacity += room.Capacity
		}
		if len(freeRooms) == 0 || capacity < numberOfGuests {
			continue
		}
		view := hotel
		view.Rooms = freeRooms
		available = append(available, view)
	}
	return available, nil
}
