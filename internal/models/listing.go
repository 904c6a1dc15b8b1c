package models

import "time"

// Listing is a published swap request: the room its owner occupies today
// and the criteria a replacement room has to meet. At most one listing is
// owned by a local user at a time; that ownership is tracked by id on the
// client, not by the record itself.
type Listing struct {
	ID                  string           `json:"id"`
	ContactInfo         string           `json:"contactInfo"`
	CurrentDorm         SpecificDormInfo `json:"currentDorm"`
	CurrentDormDetails  string           `json:"currentDormDetails,omitempty"`
	DesiredDorm         DesiredDormInfo  `json:"desiredDorm"`
	OptionalRoomDetails *RoomDetails     `json:"optionalRoomDetails,omitempty"`
	CreatedAt           time.Time        `json:"createdAt"`
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
