package services

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"hotel-management-backend/models"
	"hotel-management-backend/schemas"
)

// HotelService holds the room-state transition logic. A room is FREE, BOOKED
// or RENTED; bookings and rentals are the only operations that move it
// between these states, each gated by the current status. Every operation
// runs inside one transaction so the read-check-write sequence is not
// interleaved with other calls at the store level.
type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

func (s *HotelService) CreateRoom(req schemas.RoomCreate) (schemas.RoomResponse, error) {
	var room models.Room
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Room
		err := tx.Where("number = ?", req.Number).First(&existing).Error
		if err == nil {
			return conflictf("Room number %d already exists", req.Number)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check room number: %w", err)
		}

		room = models.Room{
			Number:   req.Number,
			Category: req.Category,
			Status:   models.StatusFree,
		}
		if err := tx.Create(&room).Error; err != nil {
			return fmt.Errorf("failed to create room: %w", err)
		}
		return nil
	})
	if err != nil {
		return schemas.RoomResponse{}, err
	}
	return roomToResponse(room), nil
}

// GetRoomByNumber returns the room or nil when no room has that number.
func (s *HotelService) GetRoomByNumber(number int) (*models.Room, error) {
	var room models.Room
	err := s.DB.Where("number = ?", number).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up room %d: %w", number, err)
	}
	return &room, nil
}

// GetAllRooms lists rooms, optionally narrowed by category and/or status.
// Filters compose with AND; nil filters return everything.
func (s *HotelService) GetAllRooms(category *models.RoomCategory, status *models.RoomStatus) ([]schemas.RoomResponse, error) {
	query := s.DB.Model(&models.Room{})
	if category != nil {
		query = query.Where("category = ?", *category)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var rooms []models.Room
	if err := query.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return roomsToResponses(rooms), nil
}

// GetFreeRooms lists FREE rooms, optionally narrowed by category.
func (s *HotelService) GetFreeRooms(category *models.RoomCategory) ([]schemas.RoomResponse, error) {
	free := models.StatusFree
	return s.GetAllRooms(category, &free)
}

func (s *HotelService) CreateBooking(req schemas.BookingCreate) (schemas.BookingResponse, error) {
	var resp schemas.BookingResponse
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := findRoomByNumber(tx, req.RoomNumber)
		if err != nil {
			return err
		}
		if room.Status != models.StatusFree {
			return conflictf("Room %d is not available (status: %s)", req.RoomNumber, room.Status)
		}

		booking := models.Booking{
			RoomID:    room.ID,
			GuestName: req.GuestName,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		if err := tx.Model(room).Update("status", models.StatusBooked).Error; err != nil {
			return fmt.Errorf("failed to update room status: %w", err)
		}

		resp = bookingToResponse(booking, *room)
		return nil
	})
	if err != nil {
		return schemas.BookingResponse{}, err
	}
	return resp, nil
}

func (s *HotelService) CancelBooking(bookingID uint) (schemas.BookingCancelResponse, error) {
	var resp schemas.BookingCancelResponse
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("Booking %d not found", bookingID)
			}
			return fmt.Errorf("failed to find booking %d: %w", bookingID, err)
		}

		var room models.Room
		if err := tx.First(&room, booking.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("Room not found")
			}
			return fmt.Errorf("failed to find room %d: %w", booking.RoomID, err)
		}

		if err := tx.Model(&room).Update("status", models.StatusFree).Error; err != nil {
			return fmt.Errorf("failed to free room: %w", err)
		}
		if err := tx.Delete(&booking).Error; err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}

		resp = schemas.BookingCancelResponse{
			Message:    fmt.Sprintf("Booking %d cancelled successfully", bookingID),
			RoomNumber: room.Number,
		}
		return nil
	})
	if err != nil {
		return schemas.BookingCancelResponse{}, err
	}
	return resp, nil
}

// GetAllBookings lists bookings joined with their rooms. A booking whose room
// has vanished is skipped, not reported; that mirrors the behavior the
// frontend depends on, even though a dangling row would mean the cascade
// delete failed.
func (s *HotelService) GetAllBookings() ([]schemas.BookingResponse, error) {
	var bookings []models.Booking
	if err := s.DB.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	result := make([]schemas.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		var room models.Room
		err := s.DB.First(&room, booking.RoomID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to find room %d: %w", booking.RoomID, err)
		}
		result = append(result, bookingToResponse(booking, room))
	}
	return result, nil
}

func (s *HotelService) CreateRental(req schemas.RentalCreate) (schemas.RentalResponse, error) {
	var resp schemas.RentalResponse
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := findRoomByNumber(tx, req.RoomNumber)
		if err != nil {
			return err
		}
		if room.Status != models.StatusFree {
			return conflictf("Room %d is not available (status: %s)", req.RoomNumber, room.Status)
		}

		rental := models.Rental{
			RoomID:    room.ID,
			GuestName: req.GuestName,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		}
		if err := tx.Create(&rental).Error; err != nil {
			return fmt.Errorf("failed to create rental: %w", err)
		}
		if err := tx.Model(room).Update("status", models.StatusRented).Error; err != nil {
			return fmt.Errorf("failed to update room status: %w", err)
		}

		resp = rentalToResponse(rental, *room)
		return nil
	})
	if err != nil {
		return schemas.RentalResponse{}, err
	}
	return resp, nil
}

// CompleteRental frees the room and returns the final cost. The cost uses
// the room's price at completion time, not at creation time.
func (s *HotelService) CompleteRental(rentalID uint) (schemas.RentalCompleteResponse, error) {
	var resp schemas.RentalCompleteResponse
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var rental models.Rental
		if err := tx.First(&rental, rentalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("Rental %d not found", rentalID)
			}
			return fmt.Errorf("failed to find rental %d: %w", rentalID, err)
		}

		var room models.Room
		if err := tx.First(&room, rental.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("Room not found")
			}
			return fmt.Errorf("failed to find room %d: %w", rental.RoomID, err)
		}

		totalCost := float64(rental.DurationDays()) * room.Price()

		if err := tx.Model(&room).Update("status", models.StatusFree).Error; err != nil {
			return fmt.Errorf("failed to free room: %w", err)
		}
		if err := tx.Delete(&rental).Error; err != nil {
			return fmt.Errorf("failed to delete rental: %w", err)
		}

		resp = schemas.RentalCompleteResponse{
			Message:    fmt.Sprintf("Rental %d completed successfully", rentalID),
			RentalID:   rentalID,
			RoomNumber: room.Number,
			TotalCost:  totalCost,
		}
		return nil
	})
	if err != nil {
		return schemas.RentalCompleteResponse{}, err
	}
	return resp, nil
}

// GetAllRentals lists rentals joined with their rooms, skipping dangling
// rows the same way GetAllBookings does.
func (s *HotelService) GetAllRentals() ([]schemas.RentalResponse, error) {
	var rentals []models.Rental
	if err := s.DB.Find(&rentals).Error; err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}

	result := make([]schemas.RentalResponse, 0, len(rentals))
	for _, rental := range rentals {
		var room models.Room
		err := s.DB.First(&room, rental.RoomID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to find room %d: %w", rental.RoomID, err)
		}
		result = append(result, rentalToResponse(rental, room))
	}
	return result, nil
}

// GetStatistics counts rooms by status. Zero rooms yields a zero occupancy
// rate, not a division error.
func (s *HotelService) GetStatistics() (schemas.StatisticsResponse, error) {
	counts := map[models.RoomStatus]int64{}
	var total int64
	if err := s.DB.Model(&models.Room{}).Count(&total).Error; err != nil {
		return schemas.StatisticsResponse{}, fmt.Errorf("failed to count rooms: %w", err)
	}
	for _, status := range []models.RoomStatus{models.StatusFree, models.StatusBooked, models.StatusRented} {
		var n int64
		if err := s.DB.Model(&models.Room{}).Where("status = ?", status).Count(&n).Error; err != nil {
			return schemas.StatisticsResponse{}, fmt.Errorf("failed to count %s rooms: %w", status, err)
		}
		counts[status] = n
	}

	occupancyRate := 0.0
	if total > 0 {
		occupied := counts[models.StatusBooked] + counts[models.StatusRented]
		occupancyRate = math.Round(float64(occupied)/float64(total)*100*100) / 100
	}

	return schemas.StatisticsResponse{
		TotalRooms:    int(total),
		FreeRooms:     int(counts[models.StatusFree]),
		BookedRooms:   int(counts[models.StatusBooked]),
		RentedRooms:   int(counts[models.StatusRented]),
		OccupancyRate: occupancyRate,
	}, nil
}

// RoomToResponse projects a room the same way list operations do; the room
// lookup handlers use it for single results.
func RoomToResponse(room models.Room) schemas.RoomResponse {
	return roomToResponse(room)
}

func findRoomByNumber(tx *gorm.DB, number int) (*models.Room, error) {
	var room models.Room
	if err := tx.Where("number = ?", number).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("Room number %d not found", number)
		}
		return nil, fmt.Errorf("failed to look up room %d: %w", number, err)
	}
	return &room, nil
}

func roomToResponse(room models.Room) schemas.RoomResponse {
	return schemas.RoomResponse{
		ID:       room.ID,
		Number:   room.Number,
		Category: room.Category,
		Status:   room.Status,
		Price:    room.Price(),
	}
}

func roomsToResponses(rooms []models.Room) []schemas.RoomResponse {
	result := make([]schemas.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		result = append(result, roomToResponse(room))
	}
	return result
}

func bookingToResponse(booking models.Booking, room models.Room) schemas.BookingResponse {
	days := booking.DurationDays()
	return schemas.BookingResponse{
		ID:            booking.ID,
		RoomID:        room.ID,
		RoomNumber:    room.Number,
		GuestName:     booking.GuestName,
		StartDate:     booking.StartDate,
		EndDate:       booking.EndDate,
		DurationDays:  days,
		EstimatedCost: float64(days) * room.Price(),
	}
}

func rentalToResponse(rental models.Rental, room models.Room) schemas.RentalResponse {
	days := rental.DurationDays()
	return schemas.RentalResponse{
		ID:           rental.ID,
		RoomID:       room.ID,
		RoomNumber:   room.Number,
		GuestName:    rental.GuestName,
		StartDate:    rental.StartDate,
		EndDate:      rental.EndDate,
		DurationDays: days,
		TotalCost:    float64(days) * room.Price(),
	}
}
