package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"hotels-api/models"
	"hotels-api/services"
	"hotels-api/utils"

	"github.com/gin-gonic/gin"
)

// HotelFinder is the read side of the engine consumed by the HTTP layer.
type HotelFinder interface {
	GetHotelByName(ctx context.Context, name string) ([]models.Hotel, error)
	GetAvailableHotelRooms(ctx context.Context, startDate, endDate time.Time, numberOfGuests int) ([]models.Hotel, error)
}

type HotelsController struct {
	Hotels HotelFinder
}

func NewHotelsController(hotels HotelFinder) *HotelsController {
	return &HotelsController{Hotels: hotels}
}

// GetByName handles GET /api/hotels/getbyname?name=
func (hc *HotelsController) GetByName(c *gin.Context) {
	name := c.Query("name")

	hotels, err := hc.Hotels.GetHotelByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, services.ErrInvalidArgument) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("GetByName failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to search hotels")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, ToHotelViewModels(hotels))
}
