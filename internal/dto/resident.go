package dto

import "github.com/yurtswap/yurtswap-api/internal/models"

// ResidentPayload is a merge-upsert body: absent fields leave the stored
// value untouched.
type ResidentPayload struct {
	Name        string                      `json:"name"`
	Email       string                      `json:"email" validate:"omitempty,email"`
	Phone       string                      `json:"phone"`
	Preferences *models.ResidentPreferences `json:"preferences"`
}
