package dto

import "github.com/yurtswap/yurtswap-api/internal/models"

// ListingPayload carries the client-supplied fields of a listing. It is
// shared by create and full-replace update.
type ListingPayload struct {
	ContactInfo         string                  `json:"contactInfo" validate:"required"`
	CurrentDorm         models.SpecificDormInfo `json:"currentDorm"`
	CurrentDormDetails  string                  `json:"currentDormDetails"`
	DesiredDorm         models.DesiredDormInfo  `json:"desiredDorm"`
	OptionalRoomDetails *models.RoomDetails     `json:"optionalRoomDetails"`
}

// ListingCreated is returned from listing creation: the stored record
// plus the owner token that authorizes later mutation of it.
type ListingCreated struct {
	Listing    models.Listing `json:"listing"`
	OwnerToken string         `json:"ownerToken"`
}
