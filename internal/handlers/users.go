package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/JSN05/user-accounts/internal/logger"
	"github.com/JSN05/user-accounts/internal/models"
	"github.com/JSN05/user-accounts/internal/services"
)

// UserListProvider defines the interface that the listing service must implement.
type UserListProvider interface {
	List(ctx context.Context, q models.UserListQuery) (*models.UserListResult, error)
}

// UsersErrorResponse represents an error response for the users listing
// swagger:model UsersErrorResponse
type UsersErrorResponse struct {
	// Error message
	// default: Invalid query parameter
	Error string `json:"error"`
}

// NewUsersHandler returns an HTTP handler for listing users.
// @Summary List users
// @Description Returns a paginated, optionally filtered and sorted list of users. search is "field:value" and sort is "field:order", both restricted to the email and name fields.
// @Tags users
// @Produce json
// @Param page_number query int false "Page number, 1-based"
// @Param page_size query int false "Page size"
// @Param search query string false "Search filter, field:value"
// @Param sort query string false "Sort order, field:asc or field:desc"
// @Success 200 {object} models.UserListResult "Page of users"
// @Failure 400 {object} handlers.UsersErrorResponse "Invalid query parameter"
// @Failure 401 {object} handlers.UsersErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /users [get]
func NewUsersHandler(svc UserListProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			query models.UserListQuery
			err   error
		)

		if raw := r.URL.Query().Get("page_number"); raw != "" {
			if query.PageNumber, err = strconv.Atoi(raw); err != nil || query.PageNumber < 1 {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UsersErrorResponse{
					Error: "Invalid page_number",
				})
				return
			}
		}
		if raw := r.URL.Query().Get("page_size"); raw != "" {
			if query.PageSize, err = strconv.Atoi(raw); err != nil || query.PageSize < 1 {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UsersErrorResponse{
					Error: "Invalid page_size",
				})
				return
			}
		}
		query.Search = r.URL.Query().Get("search")
		query.Sort = r.URL.Query().Get("sort")

		result, err := svc.List(r.Context(), query)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidSearchField):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UsersErrorResponse{
					Error: "Search field is not allowed",
				})
			case errors.Is(err, services.ErrInvalidSortField):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UsersErrorResponse{
					Error: "Sort field is not allowed",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UsersErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(result)
	}
}
