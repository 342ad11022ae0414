package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)

	RespondWithJSON(recorder, req, http.StatusCreated, map[string]string{"name": "Product 1"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"name": "Product 1"}`, recorder.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	t.Run("renders the error envelope", func(t *testing.T) {
		t.Parallel()

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/products/42", nil)

		RespondWithError(recorder, req, http.StatusNotFound, "Product with id 42 doesn't exist")

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var resp map[string]interface{}
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "Product with id 42 doesn't exist", resp["error"])
		// The internal status code is never part of the body.
		assert.NotContains(t, resp, "code")
	})

	t.Run("includes the trace id when the context carries one", func(t *testing.T) {
		t.Parallel()

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		req = req.WithContext(SetTraceID(req.Context()))

		RespondWithError(recorder, req, http.StatusBadRequest, "Invalid product id")

		var resp ErrorResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, GetTraceID(req.Context()), resp.TraceID)
		assert.NotEmpty(t, resp.TraceID)
	})
}

func TestRespondWithErrorAndLog_HidesInternalError(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products", nil)

	internal := errors.New("pq: connection to 10.0.0.5 refused")
	RespondWithErrorAndLog(recorder, req, http.StatusInternalServerError, "Failed to create product", internal)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Failed to create product")
	assert.NotContains(t, recorder.Body.String(), "10.0.0.5")
}

func TestSetAndGetTraceID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Empty(t, GetTraceID(req.Context()))

	ctx := SetTraceID(req.Context())
	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, 2*TraceIDLength)

	// Each call produces a fresh ID.
	other := GetTraceID(SetTraceID(req.Context()))
	assert.NotEqual(t, traceID, other)
}

func TestUserIDFromContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := UserIDFromContext(req.Context())
	assert.False(t, ok)
}
