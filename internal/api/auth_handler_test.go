package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/febdev/catalog-api/internal/api/shared"
	"github.com/febdev/catalog-api/internal/domain"
	"github.com/febdev/catalog-api/internal/mocks"
)

func postJSON(t *testing.T, target string, payload any) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()

	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	return resp
}

func TestRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid registration",
			payload: map[string]interface{}{
				"name":     "Test User",
				"email":    "test@example.com",
				"password": "secret123",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "name is optional",
			payload: map[string]interface{}{
				"email":    "noname@example.com",
				"password": "secret123",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "invalid email",
			payload: map[string]interface{}{
				"email":    "not-an-email",
				"password": "secret123",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing email",
			payload: map[string]interface{}{
				"password": "secret123",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"email": "test@example.com",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := NewAuthHandler(
				mocks.NewMockUserService(),
				&mocks.MockJWTService{Token: "test-token"},
				&mocks.MockPasswordVerifier{ShouldSucceed: true},
			)

			recorder := httptest.NewRecorder()
			handler.Register(recorder, postJSON(t, "/auth/register", tt.payload))

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp UserResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.NotZero(t, resp.ID)
				assert.Equal(t, tt.payload["email"], resp.Email)
				assert.False(t, resp.IsAdmin)
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	userService := mocks.NewMockUserService()
	handler := NewAuthHandler(
		userService,
		&mocks.MockJWTService{Token: "test-token"},
		&mocks.MockPasswordVerifier{ShouldSucceed: true},
	)

	payload := map[string]interface{}{
		"name":     "Test User",
		"email":    "taken@example.com",
		"password": "secret123",
	}

	recorder := httptest.NewRecorder()
	handler.Register(recorder, postJSON(t, "/auth/register", payload))
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = httptest.NewRecorder()
	handler.Register(recorder, postJSON(t, "/auth/register", payload))
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, "Email address already exists", decodeError(t, recorder).Error)
}

func TestRegister_NeverExposesPassword(t *testing.T) {
	t.Parallel()

	handler := NewAuthHandler(
		mocks.NewMockUserService(),
		&mocks.MockJWTService{Token: "test-token"},
		&mocks.MockPasswordVerifier{ShouldSucceed: true},
	)

	recorder := httptest.NewRecorder()
	handler.Register(recorder, postJSON(t, "/auth/register", map[string]interface{}{
		"email":    "test@example.com",
		"password": "supersecret",
	}))

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "supersecret")
	assert.NotContains(t, recorder.Body.String(), "password")
}

func TestLogin(t *testing.T) {
	t.Parallel()

	newHandler := func(verifierSucceeds bool) *AuthHandler {
		userService := mocks.NewMockUserService()
		userService.Users["user1@email.com"] = &domain.User{
			ID:             1,
			Email:          "user1@email.com",
			HashedPassword: "$2a$10$storedhash",
		}
		return NewAuthHandler(
			userService,
			&mocks.MockJWTService{Token: "test-token"},
			&mocks.MockPasswordVerifier{ShouldSucceed: verifierSucceeds},
		)
	}

	t.Run("successful login", func(t *testing.T) {
		t.Parallel()

		handler := newHandler(true)

		recorder := httptest.NewRecorder()
		handler.Login(recorder, postJSON(t, "/auth/login", map[string]interface{}{
			"email":    "user1@email.com",
			"password": "123456",
		}))

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp LoginResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "test-token", resp.Token)
		assert.Equal(t, "user1@email.com", resp.Email)
		assert.False(t, resp.IsAdmin)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()

		unknownRecorder := httptest.NewRecorder()
		newHandler(true).Login(unknownRecorder, postJSON(t, "/auth/login", map[string]interface{}{
			"email":    "nobody@email.com",
			"password": "123456",
		}))

		wrongPassRecorder := httptest.NewRecorder()
		newHandler(false).Login(wrongPassRecorder, postJSON(t, "/auth/login", map[string]interface{}{
			"email":    "user1@email.com",
			"password": "wrong",
		}))

		assert.Equal(t, http.StatusUnauthorized, unknownRecorder.Code)
		assert.Equal(t, http.StatusUnauthorized, wrongPassRecorder.Code)
		assert.Equal(t, "Invalid email or password", decodeError(t, unknownRecorder).Error)
		assert.Equal(t, "Invalid email or password", decodeError(t, wrongPassRecorder).Error)
	})

	t.Run("missing credentials", func(t *testing.T) {
		t.Parallel()

		recorder := httptest.NewRecorder()
		newHandler(true).Login(recorder, postJSON(t, "/auth/login", map[string]interface{}{
			"email": "user1@email.com",
		}))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
