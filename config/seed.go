package config

import (
	"log"
	"time"

	"hotels-api/models"

	"gorm.io/gorm"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedDatabase loads the demo catalog when the corresponding tables are
// empty. Each block is guarded by a count so restarts never duplicate rows.
func SeedDatabase(db *gorm.DB) error {
	var rtCount int64
	db.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{TypeName: "Single", Description: "Single Room", MaxGuests: 1},
			{TypeName: "Double", Description: "Double Room", MaxGuests: 2},
			{TypeName: "Deluxe", Description: "Deluxe Room", MaxGuests: 2},
		}
		if err := db.Create(&roomTypes).Error; err != nil {
			return err
		}
		log.Println("RoomTypes seeded")
	}

	var hotelCount int64
	db.Model(&models.Hotel{}).Count(&hotelCount)
	if hotelCount == 0 {
		hotels := []models.Hotel{
			{Name: "Grand Plaza", Address: "123 Main St, Cityville", Phone: "+44 1234 56789123"},
			{Name: "Mardon Villa", Address: "28 High St, Redtown", Phone: "+44 1417 9258465"},
			{Name: "Hilton Heights", Address: "425 Main Rd, Bluefield", Phone: "+44 1187 62549785"},
		}
		if err := db.Create(&hotels).Error; err != nil {
			return err
		}

		rooms := []models.Room{
			{HotelID: hotels[0].ID, RoomTypeID: 1, RoomNumber: "1", PricePerNight: 75.00, Capacity: 1},
			{HotelID: hotels[0].ID, RoomTypeID: 2, RoomNumber: "2", PricePerNight: 155.00, Capacity: 2},
			{HotelID: hotels[0].ID, RoomTypeID: 2, RoomNumber: "3", PricePerNight: 150.00, Capacity: 2},
			{HotelID: hotels[0].ID, RoomTypeID: 3, RoomNumber: "4", PricePerNight: 175.00, Capacity: 2},
			{HotelID: hotels[0].ID, RoomTypeID: 2, RoomNumber: "5", PricePerNight: 150.00, Capacity: 2},
			{HotelID: hotels[0].ID, RoomTypeID: 3, RoomNumber: "6", PricePerNight: 175.00, Capacity: 2},
			{HotelID: hotels[1].ID, RoomTypeID: 1, RoomNumber: "1", PricePerNight: 75.00, Capacity: 1},
			{HotelID: hotels[1].ID, RoomTypeID: 1, RoomNumber: "2", PricePerNight: 75.00, Capacity: 1},
			{HotelID: hotels[1].ID, RoomTypeID: 2, RoomNumber: "3", PricePerNight: 250.00, Capacity: 2},
			{HotelID: hotels[1].ID, RoomTypeID: 1, RoomNumber: "4", PricePerNight: 75.00, Capacity: 1},
			{HotelID: hotels[1].ID, RoomTypeID: 2, RoomNumber: "5", PricePerNight: 250.00, Capacity: 2},
			{HotelID: hotels[1].ID, RoomTypeID: 2, RoomNumber: "6", PricePerNight: 250.00, Capacity: 2},
			{HotelID: hotels[2].ID, RoomTypeID: 3, RoomNumber: "1", PricePerNight: 250.00, Capacity: 2},
			{HotelID: hotels[2].ID, RoomTypeID: 1, RoomNumber: "2", PricePerNight: 175.00, Capacity: 1},
			{HotelID: hotels[2].ID, RoomTypeID: 3, RoomNumber: "3", PricePerNight: 275.00, Capacity: 2},
			{HotelID: hotels[2].ID, RoomTypeID: 3, RoomNumber: "4", PricePerNight: 275.00, Capacity: 2},
			{HotelID: hotels[2].ID, RoomTypeID: 3, RoomNumber: "5", PricePerNight: 275.00, Capacity: 2},
			{HotelID: hotels[2].ID, RoomTypeID: 3, RoomNumber: "6", PricePerNight: 275.00, Capacity: 2},
		}
		if err := db.Create(&rooms).Error; err != nil {
			return err
		}

		customers := []models.Customer{
			{FirstName: "John", LastName: "Doe", Address: "456 Elm St, Townsville", Email: "jdoe@highdon.com", Phone: "+44 1294 567890"},
			{FirstName: "Hayley", LastName: "Tilsley", Address: "9 random Way, Middlebridge", Email: "htilsley@outlook.co.uk", Phone: "+44 1934 3451915"},
			{FirstName: "Rachel", LastName: "Piemaker", Address: "45 Least Road, Kettleborough", Email: "rpiemaker@gmail.com", Phone: "+44 1454 9427584"},
			{FirstName: "Paul", LastName: "Pope", Address: "91 Rude Avenue, Greatley", Email: "ppope@futuremail.co.uk", Phone: "+44 1917 2365548"},
			{FirstName: "Jane", LastName: "Carter", Address: "75 Bell View, Hartlingshine", Email: "jcarter@gmail.com", Phone: "+44 1652 354584"},
		}
		if err := db.Create(&customers).Error; err != nil {
			return err
		}

		bookings := []models.Booking{
			{CustomerID: customers[0].ID, BookingReference: "PrhEjxxuk1Bnp", TotalPrice: 475, Cancelled: false},
			{CustomerID: customers[1].ID, BookingReference: "Z26UtejKnmWtA", TotalPrice: 280, Cancelled: false},
			{CustomerID: customers[2].ID, BookingReference: "XR1NHc5U9Fl74", TotalPrice: 1450, Cancelled: false},
		}
		if err := db.Create(&bookings).Error; err != nil {
			return err
		}

		roomBookings := []models.RoomBooking{
			{BookingID: bookings[0].ID, RoomID: rooms[1].ID, StartDate: date(2026, 7, 1), EndDate: date(2026, 7, 5)},
			{BookingID: bookings[1].ID, RoomID: rooms[2].ID, StartDate: date(2026, 8, 10), EndDate: date(2026, 8, 15)},
			{BookingID: bookings[2].ID, RoomID: rooms[3].ID, StartDate: date(2026, 9, 20), EndDate: date(2026, 9, 25)},
			{BookingID: bookings[0].ID, RoomID: rooms[2].ID, StartDate: date(2026, 7, 1), EndDate: date(2026, 7, 5)},
			{BookingID: bookings[1].ID, RoomID: rooms[3].ID, StartDate: date(2026, 8, 10), EndDate: date(2026, 8, 15)},
			{BookingID: bookings[2].ID, RoomID: rooms[4].ID, StartDate: date(2026, 9, 20), EndDate: date(2026, 9, 25)},
		}
		if err := db.Create(&roomBookings).Error; err != nil {
			return err
		}

		guestBookings := []models.GuestBooking{
			{RoomBookingID: roomBookings[0].ID, GuestID: customers[0].ID},
			{RoomBookingID: roomBookings[1].ID, GuestID: customers[1].ID},
			{RoomBookingID: roomBookings[2].ID, GuestID: customers[2].ID},
			{RoomBookingID: roomBookings[3].ID, GuestID: customers[3].ID},
			{RoomBookingID: roomBookings[4].ID, GuestID: customers[4].ID},
			{RoomBookingID: roomBookings[5].ID, GuestID: customers[0].ID},
		}
		if err := db.Create(&guestBookings).Error; err != nil {
			return err
		}

		log.Println("Demo catalog seeded")
	}

	return nil
}
