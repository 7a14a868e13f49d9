package models

import (
	"encoding/json"
	"fmt"
)

// RoomStatus is the occupancy state of a room. The values are the localized
// labels used on the wire and in the database; they must round-trip exactly.
type RoomStatus string

const (
	StatusFree   RoomStatus = "вільний"
	StatusBooked RoomStatus = "заброньований"
	StatusRented RoomStatus = "зданий"
)

// RoomCategory determines the nightly price of a room.
type RoomCategory string

const (
	CategoryStandard  RoomCategory = "стандарт"
	CategoryComfort   RoomCategory = "комфорт"
	CategoryLux       RoomCategory = "люкс"
	CategoryPresident RoomCategory = "президентський"
)

var categoryPrices = map[RoomCategory]float64{
	CategoryStandard:  500.0,
	CategoryComfort:   800.0,
	CategoryLux:       1200.0,
	CategoryPresident: 2000.0,
}

// Price returns the nightly price for the category. Every category has a
// price; an unknown category returns 0 but never occurs for validated input.
func (c RoomCategory) Price() float64 {
	return categoryPrices[c]
}

func (c RoomCategory) Valid() bool {
	_, ok := categoryPrices[c]
	return ok
}

func (s RoomStatus) Valid() bool {
	switch s {
	case StatusFree, StatusBooked, StatusRented:
		return true
	}
	return false
}

// ParseRoomCategory maps a wire label to its category.
func ParseRoomCategory(v string) (RoomCategory, error) {
	c := RoomCategory(v)
	if !c.Valid() {
		return "", fmt.Errorf("invalid room category: %q", v)
	}
	return c, nil
}

// ParseRoomStatus maps a wire label to its status.
func ParseRoomStatus(v string) (RoomStatus, error) {
	s := RoomStatus(v)
	if !s.Valid() {
		return "", fmt.Errorf("invalid room status: %q", v)
	}
	return s, nil
}

// UnmarshalJSON rejects labels outside the closed category set, so malformed
// payloads fail at binding time.
func (c *RoomCategory) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	parsed, err := ParseRoomCategory(v)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (s *RoomStatus) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	parsed, err := ParseRoomStatus(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
