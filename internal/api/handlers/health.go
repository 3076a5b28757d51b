package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rohits-web03/lessonplanner/internal/apperrors"
	"github.com/rohits-web03/lessonplanner/internal/utils"
)

// GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "Lesson Plan Generator Backend is running!")
}

// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}

// GET /api/test-db
// TestDB godoc
// @Summary Check the database connection
// @Tags Health
// @Produce json
// @Success 200 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Router /api/test-db [get]
func (h *Handler) TestDB(w http.ResponseWriter, r *http.Request) {
	if h.ping == nil {
		h.fail(w, r, apperrors.Unavailable("Database check is not configured."))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()
	if err := h.ping(ctx); err != nil {
		h.fail(w, r, apperrors.Internal("Database connection failed.", err))
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.OK("Database connection successful!"))
}
