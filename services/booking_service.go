package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"hotels-api/models"
	"hotels-api/utils"

	"gorm.io/datatypes"
)

const (
	MsgBookingComplete  = "Booking Complete"
	MsgRoomNotAvailable = "Room not available"
)

// BookingStore opens the atomic unit of work a booking commit runs in.
// Either everything inside the callback is persisted or nothing is.
type BookingStore interface {
	InTransaction(ctx context.Context, fn func(tx BookingTx) error) error
}

// BookingTx is the transactional view of the store. Lookups return
// (nil, nil) when the record does not exist. RoomsForUpdate must serialize
// against concurrent bookings of the same rooms (row locks), so that the
// re-validation run on its result cannot go stale before commit.
type BookingTx interface {
	HotelByID(id uint) (*models.Hotel, error)
	HotelByName(name string) (*models.Hotel, error)
	CustomerByID(id uint) (*models.Customer, error)
	CustomerByEmail(email string) (*models.Customer, error)
	CreateCustomer(c *models.Customer) error
	RoomsForUpdate(hotelID uint, roomIDs []uint) ([]models.Room, error)
	CreateBooking(b *models.Booking) error
	CreateRoomBookings(rbs []models.RoomBooking) error
	CreateGuestBookings(gbs []models.GuestBooking) error
}

type CustomerRequest struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type HotelRequest struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// RoomSelection picks one room, optionally for a sub-window of the stay and
// with the customer ids of its occupants.
type RoomSelection struct {
	RoomID    uint      `json:"room_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	GuestIDs  []uint    `json:"guest_ids"`
}

type BookingRequest struct {
	Customer  CustomerRequest `json:"customer"`
	Hotel     HotelRequest    `json:"hotel"`
	Rooms     []RoomSelection `json:"rooms"`
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
}

type RoomBookingSummary struct {
	HotelName  string    `json:"hotel_name"`
	RoomNumber string    `json:"room_number"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Guests     []string  `json:"guests"`
}

type BookingResponse struct {
	BookingReference string               `json:"booking_reference"`
	CustomerName     string               `json:"customer_name"`
	TotalPrice       float64              `json:"total_price"`
	RoomBookings     []RoomBookingSummary `json:"room_bookings"`
}

// rejectionError aborts the transaction with a caller-facing message.
type rejectionError struct{ msg string }

func (e rejectionError) Error() string { return e.msg }

func reject(format string, args ...any) error {
	return rejectionError{msg: fmt.Sprintf(format, args...)}
}

type BookingService struct {
	Store BookingStore
	Rooms *RoomBookingService

	// NewReference supplies booking reference strings; overridable in tests.
	NewReference func() (string, error)
}

func NewBookingService(store BookingStore, rooms *RoomBookingService) *BookingService {
	return &BookingService{
		Store: store,
		Rooms: rooms,
		NewReference: func() (string, error) {
			return utils.GenerateBookingReference(utils.BookingReferenceLength)
		},
	}
}

func nightsBetween(start, end time.Time) int {
	n := int(dateOnly(end).Sub(dateOnly(start)).Hours() / 24)
	if n <= 0 {
		n = 1
	}
	return n
}

// CreateBooking validates the request against current reservation state and,
// if every selected room is free, commits the booking, its room reservations
// and its guest assignments as one unit. Validation failures come back as a
// zero response plus a message and no persisted state; only storage failures
// surface as errors.
func (s *BookingService) CreateBooking(ctx context.Context, req BookingRequest) (BookingResponse, string, error) {
	var resp BookingResponse

	err := s.Store.InTransaction(ctx, func(tx BookingTx) error {
		hotel, err := s.resolveHotel(tx, req.Hotel)
		if err != nil {
			return err
		}

		customer, err := s.resolveCustomer(tx, req.Customer)
		if err != nil {
			return err
		}

		if len(req.Rooms) == 0 {
			return reject(MsgRoomNotAvailable)
		}

		roomIDs := make([]uint, 0, len(req.Rooms))
		for _, sel := range req.Rooms {
			roomIDs = append(roomIDs, sel.RoomID)
		}
		rooms, err := tx.RoomsForUpdate(hotel.ID, roomIDs)
		if err != nil {
			return err
		}
		byID := make(map[uint]*models.Room, len(rooms))
		for i := range rooms {
			byID[rooms[i].ID] = &rooms[i]
		}

		// All-or-nothing: any missing or conflicted room rejects the whole
		// request. Later selections are also checked against earlier ones so
		// a single request cannot double-book a room against itself.
		totalPrice := 0.0
		for _, sel := range req.Rooms {
			room, ok := byID[sel.RoomID]
			if !ok {
				return reject(MsgRoomNotAvailable)
			}
			start, end := sel.window(req)
			if s.Rooms.RoomBooked(*room, start, end) {
				return reject(MsgRoomNotAvailable)
			}
			room.Bookings = append(room.Bookings, models.RoomBooking{StartDate: start, EndDate: end})
			totalPrice += float64(nightsBetween(start, end)) * room.PricePerNight
		}

		guestNames, err := s.resolveGuests(tx, req.Rooms)
		if err != nil {
			return err
		}

		summary := make([]string, 0)
		seen := map[uint]bool{}
		for _, sel := range req.Rooms {
			for _, gid := range sel.GuestIDs {
				if !seen[gid] {
					seen[gid] = true
					summary = append(summary, guestNames[gid])
				}
			}
		}
		summaryJSON, err := json.Marshal(summary)
		if err != nil {
			return err
		}

		booking := models.Booking{
			CustomerID:   customer.ID,
			TotalPrice:   totalPrice,
			Cancelled:    false,
			GuestSummary: datatypes.JSON(summaryJSON),
		}
		// References are random; a collision with an existing booking gets a
		// fresh one, up to three attempts.
		for attempt := 0; ; attempt++ {
			reference, err := s.NewReference()
			if err != nil {
				return err
			}
			booking.BookingReference = reference
			err = tx.CreateBooking(&booking)
			if err == nil {
				break
			}
			if !errors.Is(err, ErrDuplicateReference) || attempt >= 2 {
				return err
			}
		}

		roomBookings := make([]models.RoomBooking, 0, len(req.Rooms))
		for _, sel := range req.Rooms {
			start, end := sel.window(req)
			roomBookings = append(roomBookings, models.RoomBooking{
				BookingID: booking.ID,
				RoomID:    sel.RoomID,
				StartDate: dateOnly(start),
				EndDate:   dateOnly(end),
			})
		}
		if err := tx.CreateRoomBookings(roomBookings); err != nil {
			return err
		}

		guestBookings := make([]models.GuestBooking, 0)
		for i, sel := range req.Rooms {
			for _, gid := range sel.GuestIDs {
				guestBookings = append(guestBookings, models.GuestBooking{
					RoomBookingID: roomBookings[i].ID,
					GuestID:       gid,
				})
			}
		}
		if len(guestBookings) > 0 {
			if err := tx.CreateGuestBookings(guestBookings); err != nil {
				return err
			}
		}

		resp = buildBookingResponse(hotel, customer, &booking, req.Rooms, roomBookings, byID, guestNames)
		return nil
	})

	if err != nil {
		var rej rejectionError
		if errors.As(err, &rej) {
			return BookingResponse{}, rej.msg, nil
		}
		return BookingResponse{}, "", err
	}
	return resp, MsgBookingComplete, nil
}

func (sel RoomSelection) window(req BookingRequest) (time.Time, time.Time) {
	start, end := sel.StartDate, sel.EndDate
	if start.IsZero() {
		start = req.StartDate
	}
	if end.IsZero() {
		end = req.EndDate
	}
	return start, end
}

func (s *BookingService) resolveHotel(tx BookingTx, ref HotelRequest) (*models.Hotel, error) {
	if ref.ID != 0 {
		hotel, err := tx.HotelByID(ref.ID)
		if err != nil {
			return nil, err
		}
		if hotel == nil {
			return nil, reject("Hotel not found: %s", strconv.FormatUint(uint64(ref.ID), 10))
		}
		return hotel, nil
	}
	hotel, err := tx.HotelByName(ref.Name)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, reject("Hotel not found: %s", ref.Name)
	}
	return hotel, nil
}

// resolveCustomer finds the booking owner by id, then by email. A descriptor
// that matches nothing but carries contact details becomes a new customer
// inside the same transaction, so a failed commit leaves no trace of it.
func (s *BookingService) resolveCustomer(tx BookingTx, ref CustomerRequest) (*models.Customer, error) {
	if ref.ID != 0 {
		customer, err := tx.CustomerByID(ref.ID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, reject("Customer not found: %d", ref.ID)
		}
		return customer, nil
	}
	if ref.Email == "" {
		return nil, reject("Customer not found")
	}
	customer, err := tx.CustomerByEmail(ref.Email)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		return customer, nil
	}
	created := models.Customer{
		FirstName: ref.FirstName,
		LastName:  ref.LastName,
		Address:   ref.Address,
		Email:     ref.Email,
		Phone:     ref.Phone,
	}
	if err := tx.CreateCustomer(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *BookingService) resolveGuests(tx BookingTx, selections []RoomSelection) (map[uint]string, error) {
	names := map[uint]string{}
	for _, sel := range selections {
		for _, gid := range sel.GuestIDs {
			if _, ok := names[gid]; ok {
				continue
			}
			guest, err := tx.CustomerByID(gid)
			if err != nil {
				return nil, err
			}
			if guest == nil {
				return nil, reject("Guest not found: %d", gid)
			}
			names[gid] = guest.DisplayName()
		}
	}
	return names, nil
}

func buildBookingResponse(
	hotel *models.Hotel,
	customer *models.Customer,
	booking *models.Booking,
	selections []RoomSelection,
	roomBookings []models.RoomBooking,
	rooms map[uint]*models.Room,
	guestNames map[uint]string,
) BookingResponse {
	summaries := make([]RoomBookingSummary, 0, len(roomBookings))
	for i, rb := range roomBookings {
		guests := make([]string, 0, len(selections[i].GuestIDs))
		for _, gid := range selections[i].GuestIDs {
			guests = append(guests, guestNames[gid])
		}
		summaries = append(summaries, RoomBookingSummary{
			HotelName:  hotel.Name,
			RoomNumber: rooms[rb.RoomID].RoomNumber,
			StartDate:  rb.StartDate,
			EndDate:    rb.EndDate,
			Guests:     guests,
		})
	}

	return BookingResponse{
		BookingReference: booking.BookingReference,
		CustomerName:     customer.DisplayName(),
		TotalPrice:       booking.TotalPrice,
		RoomBookings:     summaries,
	}
}
