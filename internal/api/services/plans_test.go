package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rohits-web03/lessonplanner/internal/apperrors"
	"github.com/rohits-web03/lessonplanner/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type planFixture struct {
	users    *fakeUsers
	plans    *fakePlans
	provider *fakeProvider
	archive  *fakeArchive
	svc      *PlanService
	userID   uint
}

func newPlanFixture(t *testing.T) *planFixture {
	t.Helper()
	f := &planFixture{
		users:    newFakeUsers(),
		plans:    &fakePlans{},
		provider: &fakeProvider{reply: "I. Objectives\n- add whole numbers"},
		archive:  newFakeArchive(),
	}
	u, err := f.users.Create(context.Background(), "teacher@x.com", "hash")
	require.NoError(t, err)
	f.userID = u.ID
	f.users.calls = 0
	f.svc = NewPlanService(f.plans, f.users, f.provider, f.archive)
	return f
}

func TestGeneratePlanStoresProviderTextVerbatim(t *testing.T) {
	f := newPlanFixture(t)
	f.provider.reply = "  {\"objectives\": \"raw text, not parsed\"}  "

	plan, err := f.svc.GeneratePlan(context.Background(), f.userID, "3", "Math", "Addition")
	require.NoError(t, err)
	assert.NotZero(t, plan.ID)
	assert.Equal(t, f.provider.reply, plan.PlanContent)

	stored, err := f.svc.GetPlan(context.Background(), plan.ID)
	require.NoError(t, err)
	assert.Equal(t, f.provider.reply, stored.PlanContent)
	assert.Equal(t, "Math", stored.Subject)

	require.Len(t, f.provider.prompts, 1)
	assert.Contains(t, f.provider.prompts[0], "3 grade")
	assert.Contains(t, f.provider.prompts[0], "Math")
	assert.Contains(t, f.provider.prompts[0], `"Addition"`)
}

func TestGeneratePlanValidatesBeforeSideEffects(t *testing.T) {
	cases := []struct {
		name                  string
		userID                uint
		grade, subject, topic string
	}{
		{"no user", 0, "3", "Math", "Addition"},
		{"no grade", 1, "", "Math", "Addition"},
		{"no subject", 1, "3", " ", "Addition"},
		{"no topic", 1, "3", "Math", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newPlanFixture(t)
			_, err := f.svc.GeneratePlan(context.Background(), tc.userID, tc.grade, tc.subject, tc.topic)
			assert.True(t, apperrors.Is(err, apperrors.KindValidation), "got %v", err)
			assert.Empty(t, f.provider.prompts, "provider not called")
			assert.Zero(t, f.plans.writes, "store not written")
			assert.Zero(t, f.users.calls, "store not read")
		})
	}
}

func TestGeneratePlanUnknownUser(t *testing.T) {
	f := newPlanFixture(t)

	_, err := f.svc.GeneratePlan(context.Background(), f.userID+1, "3", "Math", "Addition")
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
	assert.Empty(t, f.provider.prompts)
}

func TestGeneratePlanProviderFailure(t *testing.T) {
	f := newPlanFixture(t)
	f.provider.err = errors.New("429 rate limited")

	_, err := f.svc.GeneratePlan(context.Background(), f.userID, "3", "Math", "Addition")
	assert.True(t, apperrors.Is(err, apperrors.KindUpstream))
	assert.Equal(t, "Failed to generate lesson plan.", apperrors.PublicMessage(err))
	assert.Zero(t, f.plans.writes)
	assert.Len(t, f.provider.prompts, 1, "no retry")
}

func TestGeneratePlanStoreFailure(t *testing.T) {
	f := newPlanFixture(t)
	f.plans.err = errors.New("disk full")

	_, err := f.svc.GeneratePlan(context.Background(), f.userID, "3", "Math", "Addition")
	assert.True(t, apperrors.Is(err, apperrors.KindInternal))
}

func TestListHistoryNewestFirst(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()

	older, err := f.svc.GeneratePlan(ctx, f.userID, "3", "Math", "Addition")
	require.NoError(t, err)
	newer, err := f.svc.GeneratePlan(ctx, f.userID, "7", "Science", "Matter")
	require.NoError(t, err)

	history, err := f.svc.ListHistory(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, newer.ID, history[0].ID)
	assert.Equal(t, older.ID, history[1].ID)
}

func TestListHistoryEmptyAndInvalid(t *testing.T) {
	f := newPlanFixture(t)

	history, err := f.svc.ListHistory(context.Background(), f.userID)
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)

	_, err = f.svc.ListHistory(context.Background(), 0)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestGetPlanNotFound(t *testing.T) {
	f := newPlanFixture(t)

	_, err := f.svc.GetPlan(context.Background(), 99)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	_, err = f.svc.GetPlan(context.Background(), 0)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestGetOwnedPlanHidesOtherUsersPlans(t *testing.T) {
	f := newPlanFixture(t)
	plan, err := f.svc.GeneratePlan(context.Background(), f.userID, "3", "Math", "Addition")
	require.NoError(t, err)

	_, err = f.svc.GetOwnedPlan(context.Background(), plan.ID, f.userID+1)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	owned, err := f.svc.GetOwnedPlan(context.Background(), plan.ID, f.userID)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, owned.ID)
}

func TestListTemplates(t *testing.T) {
	f := newPlanFixture(t)

	templates := f.svc.ListTemplates()
	require.NotEmpty(t, templates)
	assert.Equal(t, "Mathematics", templates[0].Subject)

	templates[0].Subject = "changed"
	assert.Equal(t, "Mathematics", f.svc.ListTemplates()[0].Subject, "catalog is not mutable through the result")
}

func TestExportPlanUploadsOnce(t *testing.T) {
	f := newPlanFixture(t)
	fixed := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return fixed }

	plan, err := f.svc.GeneratePlan(context.Background(), f.userID, "3", "Math", "Addition")
	require.NoError(t, err)

	export, err := f.svc.ExportPlan(context.Background(), plan.ID, f.userID)
	require.NoError(t, err)
	assert.Equal(t, "plans/1/1.txt", export.Key)
	assert.Contains(t, export.URL, export.Key)
	assert.Equal(t, fixed.Add(15*time.Minute), export.ExpiresAt)
	assert.Contains(t, string(f.archive.objects[export.Key]), plan.PlanContent)

	_, err = f.svc.ExportPlan(context.Background(), plan.ID, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 1, f.archive.puts)
}

func TestExportPlanErrors(t *testing.T) {
	f := newPlanFixture(t)
	plan, err := f.svc.GeneratePlan(context.Background(), f.userID, "3", "Math", "Addition")
	require.NoError(t, err)

	_, err = f.svc.ExportPlan(context.Background(), plan.ID, f.userID+1)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	f.archive.putErr = errors.New("bucket gone")
	_, err = f.svc.ExportPlan(context.Background(), plan.ID, f.userID)
	assert.True(t, apperrors.Is(err, apperrors.KindUpstream))

	noArchive := NewPlanService(f.plans, f.users, f.provider, nil)
	_, err = noArchive.ExportPlan(context.Background(), plan.ID, f.userID)
	assert.True(t, apperrors.Is(err, apperrors.KindUnavailable))
}

func TestRenderPlanDocument(t *testing.T) {
	doc := RenderPlanDocument(&models.LessonPlan{Grade: "10", Topic: "Poetry", PlanContent: "body"})
	assert.Contains(t, doc, "Grade Level: 10")
	assert.Contains(t, doc, "Subject: N/A")
	assert.Contains(t, doc, "Topic / Lesson Title: Poetry")
	assert.Contains(t, doc, "\nbody\n")
}
