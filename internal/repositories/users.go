package repositories

import (
	"context"
	"errors"

	"github.com/rohits-web03/lessonplanner/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user. An existing email yields ErrDuplicate and leaves the
// table untouched.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {
	user := models.User{Email: email, PasswordHash: passwordHash}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicate
		}
		return tx.Create(&user).Error
	})
	switch {
	case err == nil:
		return &user, nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		// lost a race with a concurrent registration
		return nil, ErrDuplicate
	default:
		return nil, err
	}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
