// controllers/booking_controller.go
package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hotels-api/services"
	"hotels-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CustomerPayload struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"omitempty,e164"`
}

type HotelPayload struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// RoomSelectionPayload picks one room; dates default to the stay window.
type RoomSelectionPayload struct {
	RoomID    uint   `json:"room_id" binding:"required"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	GuestIDs  []uint `json:"guest_ids"`
}

type BookRoomRequest struct {
	Customer  CustomerPayload        `json:"customer"`
	Hotel     HotelPayload           `json:"hotel"`
	Rooms     []RoomSelectionPayload `json:"rooms"`
	StartDate string                 `json:"start_date" binding:"required"`
	EndDate   string                 `json:"end_date" binding:"required"`
}

// BookingCreator is the write side of the engine consumed by the HTTP layer.
type BookingCreator interface {
	CreateBooking(ctx context.Context, req services.BookingRequest) (services.BookingResponse, string, error)
}

type BookingController struct {
	Bookings BookingCreator
	Hotels   HotelFinder
}

func NewBookingController(bookings BookingCreator, hotels HotelFinder) *BookingController {
	return &BookingController{Bookings: bookings, Hotels: hotels}
}

// parseStayDate accepts "2006-01-02" or RFC3339.
func parseStayDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", raw)
}

func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
		}
		return strings.Join(parts, "; ")
	}
	return err.Error()
}

// GetAvailableHotelRooms handles
// GET /api/bookings/available?startDate=&endDate=&numberOfGuests=
func (bc *BookingController) GetAvailableHotelRooms(c *gin.Context) {
	start, err := parseStayDate(c.Query("startDate"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	end, err := parseStayDate(c.Query("endDate"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if start.After(end) {
		utils.JSONError(c, http.StatusBadRequest, "startDate must not be after endDate")
		return
	}
	guests, err := strconv.Atoi(c.DefaultQuery("numberOfGuests", "1"))
	if err != nil || guests < 1 {
		utils.JSONError(c, http.StatusBadRequest, "numberOfGuests must be a positive integer")
		return
	}

	hotels, err := bc.Hotels.GetAvailableHotelRooms(c.Request.Context(), start, end, guests)
	if err != nil {
		log.Printf("GetAvailableHotelRooms failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to load availability")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, ToHotelViewModels(hotels))
}

// BookRoom handles POST /api/bookings/book. Rejections reported by the
// engine come back as 404 with the rejection message; storage failures as
// 500.
func (bc *BookingController) BookRoom(c *gin.Context) {
	var payload BookRoomRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	req, err := toBookingRequest(payload)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, message, err := bc.Bookings.CreateBooking(c.Request.Context(), req)
	if err != nil {
		log.Printf("CreateBooking failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking")
		return
	}
	if message != services.MsgBookingComplete {
		utils.JSONError(c, http.StatusNotFound, message)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "data": resp})
}

// toBookingRequest maps the transport payload onto the engine request,
// parsing dates and validating window ordering (caller-side concern).
func toBookingRequest(p BookRoomRequest) (services.BookingRequest, error) {
	var req services.BookingRequest

	start, err := parseStayDate(p.StartDate)
	if err != nil {
		return req, err
	}
	end, err := parseStayDate(p.EndDate)
	if err != nil {
		return req, err
	}
	if start.After(end) {
		return req, errors.New("start_date must not be after end_date")
	}

	rooms := make([]services.RoomSelection, 0, len(p.Rooms))
	for _, sel := range p.Rooms {
		room := services.RoomSelection{RoomID: sel.RoomID, GuestIDs: sel.GuestIDs}
		if sel.StartDate != "" {
			if room.StartDate, err = parseStayDate(sel.StartDate); err != nil {
				return req, err
			}
		}
		if sel.EndDate != "" {
			if room.EndDate, err = parseStayDate(sel.EndDate); err != nil {
				return req, err
			}
		}
		if !room.StartDate.IsZero() && !room.EndDate.IsZero() && room.StartDate.After(room.EndDate) {
			return req, fmt.Errorf("room %d: start_date must not be after end_date", sel.RoomID)
		}
		rooms = append(rooms, room)
	}

	req = services.BookingRequest{
		Customer: services.CustomerRequest{
			ID:        p.Customer.ID,
			FirstName: p.Customer.FirstName,
			LastName:  p.Customer.LastName,
			Address:   p.Customer.Address,
			Email:     p.Customer.Email,
			Phone:     p.Customer.Phone,
		},
		Hotel:     services.HotelRequest{ID: p.Hotel.ID, Name: p.Hotel.Name},
		Rooms:     rooms,
		StartDate: start,
		EndDate:   end,
	}
	return req, nil
}
