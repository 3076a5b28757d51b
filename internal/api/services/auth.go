// Package services holds the business logic behind the HTTP handlers: user
// registration and login, session tokens, and the lesson plan lifecycle.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rohits-web03/lessonplanner/internal/apperrors"
	"github.com/rohits-web03/lessonplanner/internal/models"
	"github.com/rohits-web03/lessonplanner/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the credential store.
type UserStore interface {
	Create(ctx context.Context, email, passwordHash string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

const invalidCredentials = "Invalid credentials."

type AuthService struct {
	users UserStore
	cost  int
	// compared against when the email is unknown so both failure paths pay
	// for one bcrypt comparison
	dummyHash []byte
}

func NewAuthService(users UserStore, cost int) *AuthService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("no-such-user"), cost)
	return &AuthService{users: users, cost: cost, dummyHash: dummy}
}

// Register creates a user and returns its id.
func (s *AuthService) Register(ctx context.Context, email, password string) (uint, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return 0, apperrors.Validation("Email and password are required.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return 0, apperrors.Validation("Password must be at most 72 bytes.")
	}
	if err != nil {
		return 0, apperrors.Internal("Registration failed.", err)
	}

	user, err := s.users.Create(ctx, email, string(hash))
	if errors.Is(err, repositories.ErrDuplicate) {
		return 0, apperrors.Conflict("Email already in use.")
	}
	if err != nil {
		return 0, apperrors.Internal("Registration failed.", err)
	}
	return user.ID, nil
}

// Login checks the credentials and returns the user id. Unknown email and
// wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (uint, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return 0, apperrors.Validation("Email and password are required.")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return 0, apperrors.Auth(invalidCredentials)
	}
	if err != nil {
		return 0, apperrors.Internal("Login failed.", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return 0, apperrors.Auth(invalidCredentials)
	}
	return user.ID, nil
}
