package models

import "time"

// ResidentPreferences stores per-resident UI preferences.
type ResidentPreferences struct {
	Notifications bool   `json:"notifications"`
	Theme         string `json:"theme"`
}

// Resident is a lightweight profile record for a dorm resident. There are
// no credentials: a resident is whoever presents the id the client minted.
type Resident struct {
	ID          string              `db:"id" json:"id"`
	Name        string              `db:"name" json:"name"`
	Email       string              `db:"email" json:"email,omitempty"`
	Phone       string              `db:"phone" json:"phone,omitempty"`
	Preferences ResidentPreferences `json:"preferences"`
	CreatedAt   time.Time           `db:"created_at" json:"createdAt"`
	LastActive  time.Time           `db:"last_active" json:"lastActive"`
}
