package utils

import (
	"encoding/json"
	"net/http"

	"github.com/rohits-web03/lessonplanner/internal/apperrors"
)

// Envelope is the common head of every response body. Success payloads embed
// it so their fields sit next to success and message; failures are a bare
// Envelope with Success false.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func OK(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

func Failure(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

// JSONResponse sends payload as JSON with the given status.
func JSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindAuth:
		return http.StatusUnauthorized
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusConflict
	case apperrors.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteError sends the failure envelope for err. Only the public message
// leaves the process.
func WriteError(w http.ResponseWriter, err error) int {
	status := StatusFor(apperrors.KindOf(err))
	JSONResponse(w, status, Failure(apperrors.PublicMessage(err)))
	return status
}
