package models

import "time"

// Booking is a reserved future stay. It exists only while the referenced
// room is in status BOOKED.
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    uint      `gorm:"column:room_id;index;not null" json:"room_id"`
	GuestName string    `gorm:"column:guest_name;size:255;not null" json:"guest_name"`
	StartDate Date      `gorm:"column:start_date;not null" json:"start_date"`
	EndDate   Date      `gorm:"column:end_date;not null" json:"end_date"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"-"`
}

// DurationDays is the stay length in whole days.
func (b Booking) DurationDays() int {
	return b.StartDate.DaysUntil(b.EndDate)
}
