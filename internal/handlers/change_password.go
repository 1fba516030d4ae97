package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/JSN05/user-accounts/internal/logger"
	"github.com/JSN05/user-accounts/internal/services"
)

// PasswordChanger defines the interface that the change-password service must implement.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword, confirmPassword string) error
}

// ChangePasswordRequest represents the JSON body for changing a password
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Current password
	// required: true
	// default: secret123
	OldPassword string `json:"old_password"`

	// New password
	// required: true
	// default: newsecret456
	NewPassword string `json:"new_password"`

	// New password confirmation, must match new_password
	// required: true
	// default: newsecret456
	ConfirmPassword string `json:"confirm_password"`
}

// ChangePasswordResponse represents a successful password change response
// swagger:model ChangePasswordResponse
type ChangePasswordResponse struct {
	// Success message
	// default: Password changed successfully
	Message string `json:"message"`
}

// ChangePasswordErrorResponse represents an error response for password change
// swagger:model ChangePasswordErrorResponse
type ChangePasswordErrorResponse struct {
	// Error message
	// default: Invalid credentials
	Error string `json:"error"`
}

// NewChangePasswordHandler returns an HTTP handler for changing a user's password.
// @Summary Change password
// @Description Replaces a user's password after verifying the old one and the confirmation.
// @Tags users
// @Accept json
// @Produce json
// @Param userID path string true "User id"
// @Param changePasswordRequest body handlers.ChangePasswordRequest true "Password change request"
// @Success 200 {object} handlers.ChangePasswordResponse "Password changed"
// @Failure 400 {object} handlers.ChangePasswordErrorResponse "Invalid request / confirmation mismatch"
// @Failure 401 {object} handlers.ChangePasswordErrorResponse "Wrong old password"
// @Failure 404 {object} handlers.ChangePasswordErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{userID}/password [patch]
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ChangePasswordErrorResponse{
				Error: "Invalid user id",
			})
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ChangePasswordErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if err := svc.ChangePassword(r.Context(), id, req.OldPassword, req.NewPassword, req.ConfirmPassword); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidPassword):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ChangePasswordErrorResponse{
					Error: "Password confirmation does not match",
				})
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ChangePasswordErrorResponse{
					Error: "Invalid credentials",
				})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ChangePasswordErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ChangePasswordErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ChangePasswordResponse{
			Message: "Password changed successfully",
		})
	}
}
