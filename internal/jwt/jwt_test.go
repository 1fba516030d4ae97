package jwt_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JSN05/user-accounts/internal/jwt"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := jwt.New(jwt.WithSecretKey("test-secret"), jwt.WithExpiration(time.Hour))

	token, err := j.Generate(context.Background(), uuid.New(), "john@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, j.Validate(context.Background(), token))
}

func TestJWT_GetClaims(t *testing.T) {
	j := jwt.New(jwt.WithSecretKey("test-secret"), jwt.WithExpiration(time.Hour))

	userID := uuid.New()
	token, err := j.Generate(context.Background(), userID, "john@example.com")
	require.NoError(t, err)

	claims, err := j.GetClaims(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "john@example.com", claims.Email)
}

func TestJWT_ValidateWrongSecret(t *testing.T) {
	j := jwt.New(jwt.WithSecretKey("test-secret"))
	other := jwt.New(jwt.WithSecretKey("other-secret"))

	token, err := j.Generate(context.Background(), uuid.New(), "john@example.com")
	require.NoError(t, err)

	assert.Error(t, other.Validate(context.Background(), token))
}

func TestJWT_ValidateExpired(t *testing.T) {
	j := jwt.New(jwt.WithSecretKey("test-secret"), jwt.WithExpiration(-time.Minute))

	token, err := j.Generate(context.Background(), uuid.New(), "john@example.com")
	require.NoError(t, err)

	assert.Error(t, j.Validate(context.Background(), token))
}

func TestJWT_ValidateGarbage(t *testing.T) {
	j := jwt.New(jwt.WithSecretKey("test-secret"))

	assert.Error(t, j.Validate(context.Background(), "not.a.token"))
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := jwt.New(jwt.WithSecretKey("test-secret"))

	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   bool
	}{
		{
			name:      "bearer token",
			header:    "Bearer abc.def.ghi",
			wantToken: "abc.def.ghi",
		},
		{
			name:      "lowercase scheme",
			header:    "bearer abc.def.ghi",
			wantToken: "abc.def.ghi",
		},
		{
			name:    "missing header",
			header:  "",
			wantErr: true,
		},
		{
			name:    "wrong scheme",
			header:  "Basic abc",
			wantErr: true,
		},
		{
			name:    "no token after scheme",
			header:  "Bearer",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(context.Background(), r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
