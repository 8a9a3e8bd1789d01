package controllers

import "hotels-api/models"

// Explicit per-pair mapping between entities and response shapes.

type RoomViewModel struct {
	RoomType      string  `json:"roomType"`
	RoomNumber    string  `json:"roomNumber"`
	PricePerNight float64 `json:"pricePerNight"`
	Capacity      int     `json:"capacity"`
	HotelName     string  `json:"hotelName"`
}

type HotelViewModel struct {
	Name    string          `json:"name"`
	Address string          `json:"address"`
	Phone   string          `json:"phone"`
	Rooms   []RoomViewModel `json:"rooms"`
}

func ToRoomViewModel(hotelName string, r models.Room) RoomViewModel {
	return RoomViewModel{
		RoomType:      r.RoomType.TypeName,
		RoomNumber:    r.RoomNumber,
		PricePerNight: r.PricePerNight,
		Capacity:      r.Capacity,
		HotelName:     hotelName,
	}
}

func ToHotelViewModel(h models.Hotel) HotelViewModel {
	rooms := make([]RoomViewModel, 0, len(h.Rooms))
	for _, r := range h.Rooms {
		rooms = append(rooms, ToRoomViewModel(h.Name, r))
	}
	return HotelViewModel{
		Name:    h.Name,
		Address: h.Address,
		Phone:   h.Phone,
		Rooms:   rooms,
	}
}

func ToHotelViewModels(hotels []models.Hotel) []HotelViewModel {
	out := make([]HotelViewModel, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, ToHotelViewModel(h))
	}
	return out
}
