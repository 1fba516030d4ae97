package models

import "github.com/google/uuid"

// LoginResult is the authenticated session descriptor returned on a
// successful login. A nil LoginResult with a nil error means the
// credentials were wrong; that is not an error condition.
type LoginResult struct {
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	UserID uuid.UUID `json:"user_id"`
	Token  string    `json:"token"`
}
