package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rohits-web03/lessonplanner/internal/apperrors"
	"github.com/rohits-web03/lessonplanner/internal/models"
	"github.com/rohits-web03/lessonplanner/internal/repositories"
)

// PlanStore is the lesson plan store.
type PlanStore interface {
	Create(ctx context.Context, plan *models.LessonPlan) error
	ListByUser(ctx context.Context, userID uint) ([]models.PlanSummary, error)
	FindByID(ctx context.Context, id uint) (*models.LessonPlan, error)
}

// PlanArchive keeps exported plan documents.
type PlanArchive interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
}

const exportTTL = 15 * time.Minute

type PlanService struct {
	plans    PlanStore
	users    UserStore
	provider Provider
	archive  PlanArchive
	now      func() time.Time
}

// NewPlanService wires the plan lifecycle. archive may be nil, which turns
// exports off.
func NewPlanService(plans PlanStore, users UserStore, provider Provider, archive PlanArchive) *PlanService {
	return &PlanService{plans: plans, users: users, provider: provider, archive: archive, now: time.Now}
}

// GeneratePlan asks the provider for a plan and stores its text verbatim.
// Input is fully validated before anything is read, written or sent.
func (s *PlanService) GeneratePlan(ctx context.Context, userID uint, grade, subject, topic string) (*models.LessonPlan, error) {
	if userID == 0 || blank(grade) || blank(subject) || blank(topic) {
		return nil, apperrors.Validation("Missing required fields for plan generation.")
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.Validation("Unknown user.")
		}
		return nil, apperrors.Internal("Failed to generate lesson plan.", err)
	}

	content, err := s.provider.Generate(ctx, BuildPrompt(grade, subject, topic))
	if err != nil {
		return nil, apperrors.Upstream("Failed to generate lesson plan.", err)
	}

	plan := &models.LessonPlan{
		UserID:      userID,
		Grade:       grade,
		Subject:     subject,
		Topic:       topic,
		PlanContent: content,
	}
	if err := s.plans.Create(ctx, plan); err != nil {
		if errors.Is(err, repositories.ErrUnknownUser) {
			return nil, apperrors.Validation("Unknown user.")
		}
		return nil, apperrors.Internal("Failed to save lesson plan.", err)
	}
	return plan, nil
}

// ListHistory returns the user's plans, newest first.
func (s *PlanService) ListHistory(ctx context.Context, userID uint) ([]models.PlanSummary, error) {
	if userID == 0 {
		return nil, apperrors.Validation("User ID is required.")
	}
	history, err := s.plans.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch lesson plan history.", err)
	}
	if history == nil {
		history = []models.PlanSummary{}
	}
	return history, nil
}

// GetPlan fetches a plan by id regardless of its owner.
func (s *PlanService) GetPlan(ctx context.Context, planID uint) (*models.LessonPlan, error) {
	if planID == 0 {
		return nil, apperrors.Validation("Plan ID is required.")
	}
	plan, err := s.plans.FindByID(ctx, planID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NotFound("Lesson plan not found.")
	}
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch lesson plan.", err)
	}
	return plan, nil
}

// GetOwnedPlan is GetPlan for a session user: someone else's plan is
// reported as missing.
func (s *PlanService) GetOwnedPlan(ctx context.Context, planID, ownerID uint) (*models.LessonPlan, error) {
	plan, err := s.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != ownerID {
		return nil, apperrors.NotFound("Lesson plan not found.")
	}
	return plan, nil
}

// ExportPlan uploads the plan document once and hands out a short-lived
// download link.
func (s *PlanService) ExportPlan(ctx context.Context, planID, ownerID uint) (*models.PlanExport, error) {
	if s.archive == nil {
		return nil, apperrors.Unavailable("Plan export is not configured.")
	}
	plan, err := s.GetOwnedPlan(ctx, planID, ownerID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("plans/%d/%d.txt", plan.UserID, plan.ID)
	exists, err := s.archive.Exists(ctx, key)
	if err != nil {
		return nil, apperrors.Upstream("Failed to export lesson plan.", err)
	}
	// plans are immutable, so an existing object is always current
	if !exists {
		doc := RenderPlanDocument(plan)
		if err := s.archive.Put(ctx, key, []byte(doc), "text/plain; charset=utf-8"); err != nil {
			return nil, apperrors.Upstream("Failed to export lesson plan.", err)
		}
	}

	url, err := s.archive.PresignGet(ctx, key, exportTTL)
	if err != nil {
		return nil, apperrors.Upstream("Failed to export lesson plan.", err)
	}
	return &models.PlanExport{Key: key, URL: url, ExpiresAt: s.now().Add(exportTTL)}, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
