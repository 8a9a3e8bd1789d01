package repository

import (
	"context"
	"strings"

	"hotels-api/models"

	"gorm.io/gorm"
)

// HotelRepository implements services.HotelCatalog on gorm.
type HotelRepository struct {
	DB *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{DB: db}
}

func (r *HotelRepository) All(ctx context.Context) ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := r.DB.WithContext(ctx).
		Preload("Rooms").
		Preload("Rooms.RoomType").
		Preload("Rooms.Bookings").
		Order("id").
		Find(&hotels).Error
	return hotels, err
}

func (r *HotelRepository) ByName(ctx context.Context, name string) ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := r.DB.WithContext(ctx).
		Preload("Rooms").
		Preload("Rooms.RoomType").
		Where("LOWER(name) = ?", strings.ToLower(name)).
		Order("id").
		Find(&hotels).Error
	return hotels, err
}
