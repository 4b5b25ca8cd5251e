package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return resp
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()

	Success(rec, http.StatusCreated, "Created", map[string]string{"id": "123"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Created", resp.Message)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(http.ResponseWriter, string)
		code     int
		fallback string
	}{
		{"bad request", BadRequest, http.StatusBadRequest, "Bad request"},
		{"unauthorized", Unauthorized, http.StatusUnauthorized, "Unauthorized"},
		{"forbidden", Forbidden, http.StatusForbidden, "Forbidden"},
		{"not found", NotFound, http.StatusNotFound, "Resource not found"},
		{"conflict", Conflict, http.StatusConflict, "Conflict"},
		{"internal", InternalServerError, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.fn(rec, "custom message")

			assert.Equal(t, tt.code, rec.Code)
			resp := decode(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, "custom message", resp.Message)

			// Empty message falls back to the default
			rec = httptest.NewRecorder()
			tt.fn(rec, "")
			resp = decode(t, rec)
			assert.Equal(t, tt.fallback, resp.Message)
		})
	}
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()

	ValidationError(rec, map[string]string{"email": "Invalid email format"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Validation failed", resp.Message)
	assert.NotNil(t, resp.Error)
}
