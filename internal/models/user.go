package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
type UserDB struct {
	UserID       uuid.UUID  `json:"user_id" db:"user_id"`           // Primary key
	Email        string     `json:"email" db:"email"`               // Unique email
	Name         string     `json:"name" db:"name"`                 // Display name
	PasswordHash string     `json:"-" db:"password_hash"`           // bcrypt hash
	Attempt      int        `json:"attempt" db:"attempt"`           // Consecutive failed logins since last reset
	UpdatedOn    *time.Time `json:"updated_on" db:"updated_on"`     // Set exactly when Attempt mutates, nil until first failure
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`     // Last record update
}

// User is the public view of a user returned by the listing endpoint.
type User struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
}
