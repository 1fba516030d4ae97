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

// UserDeleter defines the interface that the delete service must implement.
type UserDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// DeleteUserResponse represents a successful delete response
// swagger:model DeleteUserResponse
type DeleteUserResponse struct {
	// Success message
	// default: User deleted successfully
	Message string `json:"message"`
}

// DeleteUserErrorResponse represents an error response for user deletion
// swagger:model DeleteUserErrorResponse
type DeleteUserErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewDeleteUserHandler returns an HTTP handler for deleting a user.
// @Summary Delete a user
// @Description Removes a user record by id.
// @Tags users
// @Produce json
// @Param userID path string true "User id"
// @Success 200 {object} handlers.DeleteUserResponse "User deleted"
// @Failure 400 {object} handlers.DeleteUserErrorResponse "Invalid user id"
// @Failure 404 {object} handlers.DeleteUserErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{userID} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DeleteUserErrorResponse{
				Error: "Invalid user id",
			})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DeleteUserErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DeleteUserErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteUserResponse{
			Message: "User deleted successfully",
		})
	}
}
