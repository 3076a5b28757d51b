package repositories

import (
	"context"
	"errors"

	"github.com/rohits-web03/lessonplanner/internal/models"
	"gorm.io/gorm"
)

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// Create stores plan and fills in its ID and CreatedAt. The owning user must
// exist, otherwise ErrUnknownUser.
func (r *PlanRepository) Create(ctx context.Context, plan *models.LessonPlan) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("id = ?", plan.UserID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrUnknownUser
		}
		return tx.Create(plan).Error
	})
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrUnknownUser
	}
	return err
}

// ListByUser returns the user's plans newest first.
func (r *PlanRepository) ListByUser(ctx context.Context, userID uint) ([]models.PlanSummary, error) {
	history := make([]models.PlanSummary, 0)
	err := r.db.WithContext(ctx).
		Model(&models.LessonPlan{}).
		Select("id", "grade", "subject", "topic", "created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Scan(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}

func (r *PlanRepository) FindByID(ctx context.Context, id uint) (*models.LessonPlan, error) {
	var plan models.LessonPlan
	err := r.db.WithContext(ctx).First(&plan, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}
