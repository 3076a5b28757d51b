package repositories

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/lessonplanner/internal/config"
	"github.com/rohits-web03/lessonplanner/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Connect(config.DBConfig{
		Driver: "sqlite",
		Name:   fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestUserRepositoryCreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user, err := repo.Create(ctx, "a@x.com", "hash")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	byEmail, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.PasswordHash)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)

	_, err = repo.FindByEmail(ctx, "A@X.COM")
	assert.ErrorIs(t, err, ErrNotFound, "emails are matched as stored")

	_, err = repo.FindByID(ctx, user.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.Create(ctx, "a@x.com", "first")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "a@x.com", "second")
	assert.ErrorIs(t, err, ErrDuplicate)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	stored, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "first", stored.PasswordHash)
}

func TestPlanRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	plans := NewPlanRepository(db)

	owner, err := users.Create(ctx, "owner@x.com", "hash")
	require.NoError(t, err)
	other, err := users.Create(ctx, "other@x.com", "hash")
	require.NoError(t, err)

	first := &models.LessonPlan{UserID: owner.ID, Grade: "3", Subject: "Math", Topic: "Addition", PlanContent: "first plan"}
	require.NoError(t, plans.Create(ctx, first))
	assert.NotZero(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second := &models.LessonPlan{UserID: owner.ID, Grade: "3", Subject: "Math", Topic: "Subtraction", PlanContent: "second plan"}
	require.NoError(t, plans.Create(ctx, second))

	history, err := plans.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID, "newest first")
	assert.Equal(t, first.ID, history[1].ID)
	assert.Equal(t, "Subtraction", history[0].Topic)

	empty, err := plans.ListByUser(ctx, other.ID)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	fetched, err := plans.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "first plan", fetched.PlanContent)
	assert.Equal(t, owner.ID, fetched.UserID)
	assert.WithinDuration(t, first.CreatedAt, fetched.CreatedAt, time.Second)

	_, err = plans.FindByID(ctx, second.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlanRepositoryUnknownUser(t *testing.T) {
	plans := NewPlanRepository(newTestDB(t))

	err := plans.Create(context.Background(), &models.LessonPlan{UserID: 42, Grade: "1", Subject: "Art", Topic: "Color", PlanContent: "x"})
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestDeletingUserCascadesToPlans(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	plans := NewPlanRepository(db)

	owner, err := users.Create(ctx, "owner@x.com", "hash")
	require.NoError(t, err)
	plan := &models.LessonPlan{UserID: owner.ID, Grade: "7", Subject: "Science", Topic: "Matter", PlanContent: "x"}
	require.NoError(t, plans.Create(ctx, plan))

	require.NoError(t, db.Delete(&models.User{}, owner.ID).Error)

	_, err = plans.FindByID(ctx, plan.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

// A database configured only by driver and name, as DB_DRIVER/DB_NAME do,
// must still cascade plan deletes.
func TestFileDatabaseCascadesToPlans(t *testing.T) {
	ctx := context.Background()
	db, err := Connect(config.DBConfig{
		Driver: "sqlite",
		Name:   filepath.Join(t.TempDir(), "lesson_planner_db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	owner, err := NewUserRepository(db).Create(ctx, "owner@x.com", "hash")
	require.NoError(t, err)
	plans := NewPlanRepository(db)
	plan := &models.LessonPlan{UserID: owner.ID, Grade: "3", Subject: "Math", Topic: "Addition", PlanContent: "x"}
	require.NoError(t, plans.Create(ctx, plan))

	require.NoError(t, db.Delete(&models.User{}, owner.ID).Error)

	_, err = plans.FindByID(ctx, plan.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPing(t *testing.T) {
	assert.NoError(t, Ping(context.Background(), newTestDB(t)))
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	_, err := Connect(config.DBConfig{Driver: "mysql"})
	assert.Error(t, err)
}
