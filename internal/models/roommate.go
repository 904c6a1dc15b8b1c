package models

import (
	"strings"
	"time"
)

// RoommateSearch is a published claim of occupying a specific room, used
// to find the other people assigned to the same physical room.
type RoommateSearch struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	ContactInfo string    `db:"contact_info" json:"contactInfo"`
	Campus      Campus    `db:"campus" json:"campus"`
	Building    string    `db:"building" json:"building"`
	RoomNumber  string    `db:"room_number" json:"roomNumber"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// Normalize canonicalises the free-text room key parts at write time so
// that "a blok " and "A BLOK" land in the same room group.
func (s *RoommateSearch) Normalize() {
	s.Building = strings.ToUpper(strings.TrimSpace(s.Building))
	s.RoomNumber = strings.TrimSpace(s.RoomNumber)
}
