package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/rohits-web03/lessonplanner/internal/api/middleware"
	"github.com/rohits-web03/lessonplanner/internal/api/services"
	"github.com/rohits-web03/lessonplanner/internal/apperrors"
	"github.com/rohits-web03/lessonplanner/internal/utils"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20 // 1 MB

// Handler serves every API endpoint. Handlers keep no state between
// requests.
type Handler struct {
	auth          *services.AuthService
	plans         *services.PlanService
	tokens        *services.TokenIssuer
	ping          func(ctx context.Context) error
	log           *zap.Logger
	secureCookies bool
}

type Deps struct {
	Auth   *services.AuthService
	Plans  *services.PlanService
	Tokens *services.TokenIssuer
	// Ping checks the database for /api/test-db.
	Ping          func(ctx context.Context) error
	Log           *zap.Logger
	SecureCookies bool
}

func New(d Deps) *Handler {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		auth:          d.Auth,
		plans:         d.Plans,
		tokens:        d.Tokens,
		ping:          d.Ping,
		log:           log,
		secureCookies: d.SecureCookies,
	}
}

// decodeJSON reads a single JSON object with no unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperrors.Validation("Invalid input")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apperrors.Validation("Invalid input")
	}
	return nil
}

// fail logs err with its cause and writes the client-safe envelope.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperrors.KindOf(err)
	fields := []zap.Field{
		zap.String("request_id", middleware.RequestID(r.Context())),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Stringer("kind", kind),
		zap.Error(err),
	}
	switch kind {
	case apperrors.KindInternal, apperrors.KindUpstream, apperrors.KindUnavailable:
		h.log.Error("request failed", fields...)
	default:
		h.log.Info("request rejected", fields...)
	}
	utils.WriteError(w, err)
}

// sessionUser resolves the acting user. A userId supplied by the client must
// match the session.
func sessionUser(r *http.Request, supplied uint) (uint, error) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		return 0, apperrors.Auth("Unauthorized")
	}
	if supplied != 0 && supplied != userID {
		return 0, apperrors.Forbidden("User ID does not match the session.")
	}
	return userID, nil
}

func parseID(s string) (uint, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
