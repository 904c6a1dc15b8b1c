package dto

import "github.com/yurtswap/yurtswap-api/internal/models"

// RoommateSearchPayload carries the client-supplied fields of a roommate
// search. Building and room number are normalized before storage.
type RoommateSearchPayload struct {
	Name        string        `json:"name" validate:"required"`
	ContactInfo string        `json:"contactInfo" validate:"required"`
	Campus      models.Campus `json:"campus" validate:"required"`
	Building    string        `json:"building" validate:"required"`
	RoomNumber  string        `json:"roomNumber" validate:"required"`
}

// RoommateSearchCreated is returned from search creation together with
// the owner token that authorizes later mutation.
type RoommateSearchCreated struct {
	Search     models.RoommateSearch `json:"search"`
	OwnerToken string                `json:"ownerToken"`
}
