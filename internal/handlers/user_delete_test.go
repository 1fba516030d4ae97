package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/JSN05/user-accounts/internal/handlers"
	"github.com/JSN05/user-accounts/internal/services"
)

func TestDeleteUserHandler(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		target     string
		setup      func(svc *handlers.MockUserDeleter)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "success",
			target: "/users/" + userID.String(),
			setup: func(svc *handlers.MockUserDeleter) {
				svc.EXPECT().
					Delete(gomock.Any(), userID).
					Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"User deleted successfully"}`,
		},
		{
			name:       "invalid user id",
			target:     "/users/not-a-uuid",
			setup:      func(svc *handlers.MockUserDeleter) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid user id"}`,
		},
		{
			name:   "user not found",
			target: "/users/" + userID.String(),
			setup: func(svc *handlers.MockUserDeleter) {
				svc.EXPECT().
					Delete(gomock.Any(), userID).
					Return(services.ErrUserNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"User not found"}`,
		},
		{
			name:   "internal error",
			target: "/users/" + userID.String(),
			setup: func(svc *handlers.MockUserDeleter) {
				svc.EXPECT().
					Delete(gomock.Any(), userID).
					Return(errors.New("db error"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := handlers.NewMockUserDeleter(ctrl)
			tt.setup(svc)

			router := chi.NewRouter()
			router.Delete("/users/{userID}", handlers.NewDeleteUserHandler(svc))

			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
