package models

import "fmt"

// RoomLocation is one row of the room location workbook.
type RoomLocation struct {
	RoomID   string
	Building string
	Floor    string
}

// Label renders the location the way the room lookup table stores it.
func (l RoomLocation) Label() string {
	return fmt.Sprintf("%s (%s)", l.Building, l.Floor)
}
