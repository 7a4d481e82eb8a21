package users

import (
	"strings"
	"time"
)

type User struct {
	ID           string    `json:"id,omitempty"`         // Unique identifier for the user
	Name         string    `json:"name,omitempty"`       // Display name
	Email        string    `json:"email,omitempty"`      // User's email address, unique case-insensitively
	PasswordHash string    `json:"-"`                    // Hashed version of the user's password - never serialize
	CreatedAt    time.Time `json:"created_at,omitempty"` // Date and time when the user registered
	UpdatedAt    time.Time `json:"updated_at,omitempty"` // Last modification time
}

// Sanitized returns a copy of the user with the password hash stripped.
// This is the only representation that may leave the service.
func (u *User) Sanitized() *User {
	sanitized := *u
	sanitized.PasswordHash = ""
	return &sanitized
}

// NormalizeEmail lowercases and trims an email address. All store
// lookups and inserts go through this so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
