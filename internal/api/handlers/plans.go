package handlers

import (
	"net/http"

	"github.com/rohits-web03/lessonplanner/internal/api/dto"
	"github.com/rohits-web03/lessonplanner/internal/apperrors"
	"github.com/rohits-web03/lessonplanner/internal/utils"
	"go.uber.org/zap"
)

// POST /api/generate-plan
// GeneratePlan godoc
// @Summary Generate a lesson plan
// @Description Sends the grade, subject and topic to the text-generation provider and stores the returned plan verbatim.
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.GeneratePlanRequest true "Plan parameters"
// @Success 200 {object} dto.GeneratePlanResponse
// @Failure 400 {object} utils.Envelope "Missing required fields for plan generation."
// @Failure 401 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope "Failed to generate lesson plan."
// @Router /api/generate-plan [post]
func (h *Handler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var input dto.GeneratePlanRequest
	if err := decodeJSON(w, r, &input); err != nil {
		h.fail(w, r, err)
		return
	}

	userID, err := sessionUser(r, uint(input.UserID))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	plan, err := h.plans.GeneratePlan(r.Context(), userID, input.Grade, input.Subject, input.Topic)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.log.Info("lesson plan generated", zap.Uint("user_id", userID), zap.Uint("plan_id", plan.ID))
	utils.JSONResponse(w, http.StatusOK, dto.GeneratePlanResponse{
		Envelope:  utils.OK("Lesson plan generated."),
		Plan:      plan.PlanContent,
		PlanID:    plan.ID,
		CreatedAt: plan.CreatedAt,
	})
}

// GET /api/plans/history
// ListHistory godoc
// @Summary List the session user's plans
// @Description Newest first, without plan content. An optional userId must match the session.
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Param userId query int false "User ID (must match the session)"
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} utils.Envelope
// @Failure 401 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Router /api/plans/history [get]
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	var supplied uint
	if raw := r.URL.Query().Get("userId"); raw != "" {
		id, ok := parseID(raw)
		if !ok {
			h.fail(w, r, apperrors.Validation("Invalid user ID."))
			return
		}
		supplied = id
	}

	userID, err := sessionUser(r, supplied)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	history, err := h.plans.ListHistory(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, dto.HistoryResponse{
		Envelope: utils.OK(""),
		History:  history,
	})
}

// GET /api/plans/{planId}
// GetPlan godoc
// @Summary Fetch a single plan
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Param planId path int true "Plan ID"
// @Success 200 {object} dto.PlanResponse
// @Failure 401 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope "Lesson plan not found."
// @Failure 500 {object} utils.Envelope
// @Router /api/plans/{planId} [get]
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	planID, ok := parseID(r.PathValue("planId"))
	if !ok {
		h.fail(w, r, apperrors.NotFound("Lesson plan not found."))
		return
	}

	userID, err := sessionUser(r, 0)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	plan, err := h.plans.GetOwnedPlan(r.Context(), planID, userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, dto.PlanResponse{
		Envelope: utils.OK(""),
		Plan:     plan,
	})
}

// POST /api/plans/{planId}/export
// ExportPlan godoc
// @Summary Export a plan as a text document
// @Description Archives the plan in object storage and returns a download link valid for 15 minutes.
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Param planId path int true "Plan ID"
// @Success 200 {object} dto.ExportResponse
// @Failure 401 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Failure 503 {object} utils.Envelope "Plan export is not configured."
// @Router /api/plans/{planId}/export [post]
func (h *Handler) ExportPlan(w http.ResponseWriter, r *http.Request) {
	planID, ok := parseID(r.PathValue("planId"))
	if !ok {
		h.fail(w, r, apperrors.NotFound("Lesson plan not found."))
		return
	}

	userID, err := sessionUser(r, 0)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	export, err := h.plans.ExportPlan(r.Context(), planID, userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, dto.ExportResponse{
		Envelope:  utils.OK("Lesson plan exported."),
		URL:       export.URL,
		ExpiresAt: export.ExpiresAt,
	})
}

// GET /api/templates
// ListTemplates godoc
// @Summary List plan templates
// @Description Fixed catalog of example grade, subject and topic combinations. No session needed.
// @Tags Templates
// @Produce json
// @Success 200 {object} dto.TemplatesResponse
// @Router /api/templates [get]
func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	utils.JSONResponse(w, http.StatusOK, dto.TemplatesResponse{
		Envelope:  utils.OK(""),
		Templates: h.plans.ListTemplates(),
	})
}
