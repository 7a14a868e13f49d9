package schemas

import (
	"fmt"
	"strings"

	"hotel-management-backend/models"
)

// ValidationError marks a request that failed precondition checks. Handlers
// map it to HTTP 422 before the service layer runs.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

type RoomCreate struct {
	Number   int                 `json:"number"`
	Category models.RoomCategory `json:"category"`
}

func (r *RoomCreate) Validate() error {
	if r.Number <= 0 {
		return validationErrorf("Room number must be a positive integer")
	}
	if !r.Category.Valid() {
		return validationErrorf("invalid room category: %q", string(r.Category))
	}
	return nil
}

// StayCreate is the shared request shape of bookings and rentals.
type StayCreate struct {
	RoomNumber int         `json:"room_number"`
	GuestName  string      `json:"guest_name"`
	StartDate  models.Date `json:"start_date"`
	EndDate    models.Date `json:"end_date"`
}

type BookingCreate = StayCreate
type RentalCreate = StayCreate

// Validate runs the precondition checks and trims the guest name in place.
// The service layer trusts requests that passed here.
func (s *StayCreate) Validate() error {
	if s.RoomNumber <= 0 {
		return validationErrorf("Room number must be a positive integer")
	}
	s.GuestName = strings.TrimSpace(s.GuestName)
	if s.GuestName == "" {
		return validationErrorf("Guest name cannot be empty")
	}
	if len(s.GuestName) > 255 {
		return validationErrorf("Guest name must be at most 255 characters")
	}
	if s.StartDate.IsZero() || s.EndDate.IsZero() {
		return validationErrorf("start_date and end_date are required")
	}
	if !s.EndDate.After(s.StartDate.Time) {
		return validationErrorf("End date must be after start date")
	}
	if s.StartDate.Before(models.Today().Time) {
		return validationErrorf("Start date cannot be in the past")
	}
	return nil
}

type RoomResponse struct {
	ID       uint                `json:"id"`
	Number   int                 `json:"number"`
	Category models.RoomCategory `json:"category"`
	Status   models.RoomStatus   `json:"status"`
	Price    float64             `json:"price"`
}

type BookingResponse struct {
	ID            uint        `json:"id"`
	RoomID        uint        `json:"room_id"`
	RoomNumber    int         `json:"room_number"`
	GuestName     string      `json:"guest_name"`
	StartDate     models.Date `json:"start_date"`
	EndDate       models.Date `json:"end_date"`
	DurationDays  int         `json:"duration_days"`
	EstimatedCost float64     `json:"estimated_cost"`
}

type RentalResponse struct {
	ID           uint        `json:"id"`
	RoomID       uint        `json:"room_id"`
	RoomNumber   int         `json:"room_number"`
	GuestName    string      `json:"guest_name"`
	StartDate    models.Date `json:"start_date"`
	EndDate      models.Date `json:"end_date"`
	DurationDays int         `json:"duration_days"`
	TotalCost    float64     `json:"total_cost"`
}

type BookingCancelResponse struct {
	Message    string `json:"message"`
	RoomNumber int    `json:"room_number"`
}

type RentalCompleteResponse struct {
	Message    string  `json:"message"`
	RentalID   uint    `json:"rental_id"`
	RoomNumber int     `json:"room_number"`
	TotalCost  float64 `json:"total_cost"`
}

type StatisticsResponse struct {
	TotalRooms    int     `json:"total_rooms"`
	FreeRooms     int     `json:"free_rooms"`
	BookedRooms   int     `json:"booked_rooms"`
	RentedRooms   int     `json:"rented_rooms"`
	OccupancyRate float64 `json:"occupancy_rate"`
}
