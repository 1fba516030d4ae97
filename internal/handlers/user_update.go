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

// UserUpdater defines the interface that the update service must implement.
type UserUpdater interface {
	Update(ctx context.Context, id uuid.UUID, email, name string) error
}

// UpdateUserRequest represents the JSON body for updating a user
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// New email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// New display name
	// required: true
	// default: John Doe
	Name string `json:"name"`
}

// UpdateUserResponse represents a successful update response
// swagger:model UpdateUserResponse
type UpdateUserResponse struct {
	// Success message
	// default: User updated successfully
	Message string `json:"message"`
}

// UpdateUserErrorResponse represents an error response for user update
// swagger:model UpdateUserErrorResponse
type UpdateUserErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewUpdateUserHandler returns an HTTP handler for updating a user.
// @Summary Update a user
// @Description Changes a user's email and name. The new email must not belong to another user.
// @Tags users
// @Accept json
// @Produce json
// @Param userID path string true "User id"
// @Param updateUserRequest body handlers.UpdateUserRequest true "User update request"
// @Success 200 {object} handlers.UpdateUserResponse "User updated"
// @Failure 400 {object} handlers.UpdateUserErrorResponse "Invalid request"
// @Failure 404 {object} handlers.UpdateUserErrorResponse "User not found"
// @Failure 409 {object} handlers.UpdateUserErrorResponse "Email already taken"
// @Security BearerAuth
// @Router /users/{userID} [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateUserErrorResponse{
				Error: "Invalid user id",
			})
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateUserErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if err := svc.Update(r.Context(), id, req.Email, req.Name); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UpdateUserErrorResponse{
					Error: "User not found",
				})
			case errors.Is(err, services.ErrEmailAlreadyTaken):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(UpdateUserErrorResponse{
					Error: "Email already taken",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UpdateUserErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateUserResponse{
			Message: "User updated successfully",
		})
	}
}
