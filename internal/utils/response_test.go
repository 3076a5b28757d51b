package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rohits-web03/lessonplanner/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONResponseFlattensPayload(t *testing.T) {
	type loginResponse struct {
		Envelope
		UserID uint `json:"userId"`
	}
	rec := httptest.NewRecorder()
	JSONResponse(rec, http.StatusCreated, loginResponse{Envelope: OK("done"), UserID: 4})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"message":"done","userId":4}`, rec.Body.String())
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{apperrors.Validation("bad"), http.StatusBadRequest},
		{apperrors.Auth("bad"), http.StatusUnauthorized},
		{apperrors.Forbidden("bad"), http.StatusForbidden},
		{apperrors.NotFound("bad"), http.StatusNotFound},
		{apperrors.Conflict("bad"), http.StatusConflict},
		{apperrors.Upstream("bad", nil), http.StatusInternalServerError},
		{apperrors.Unavailable("bad"), http.StatusServiceUnavailable},
		{errors.New("sql: connection refused"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		status := WriteError(rec, tt.err)
		assert.Equal(t, tt.status, status)
		assert.Equal(t, tt.status, rec.Code)

		var body Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.NotContains(t, body.Message, "sql:")
	}
}

func TestGenerateSecureToken(t *testing.T) {
	a, err := GenerateSecureToken(16)
	require.NoError(t, err)
	b, err := GenerateSecureToken(16)
	require.NoError(t, err)

	assert.Len(t, a, 22)
	assert.NotEqual(t, a, b)
}
