package models

import "time"

type Room struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	Number    int          `gorm:"column:number;uniqueIndex;not null" json:"number"`
	Category  RoomCategory `gorm:"column:category;type:varchar(32);not null" json:"category"`
	Status    RoomStatus   `gorm:"column:status;type:varchar(32);not null" json:"status"`
	CreatedAt time.Time    `json:"-"`
	UpdatedAt time.Time    `json:"-"`

	Bookings []Booking `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"-"`
	Rentals  []Rental  `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"-"`
}

// Price is derived from the category; it is never stored.
func (r Room) Price() float64 {
	return r.Category.Price()
}
