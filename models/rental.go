package models

import "time"

// Rental is an active occupancy. Same shape as Booking; the referenced room
// is in status RENTED while the rental exists.
type Rental struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    uint      `gorm:"column:room_id;index;not null" json:"room_id"`
	GuestName string    `gorm:"column:guest_name;size:255;not null" json:"guest_name"`
	StartDate Date      `gorm:"column:start_date;not null" json:"start_date"`
	EndDate   Date      `gorm:"column:end_date;not null" json:"end_date"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"-"`
}

func (r Rental) DurationDays() int {
	return r.StartDate.DaysUntil(r.EndDate)
}
