package services

import (
	"context"
	"sync"
	"time"

	"github.com/rohits-web03/lessonplanner/internal/models"
	"github.com/rohits-web03/lessonplanner/internal/repositories"
)

type fakeUsers struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]*models.User
	err    error
	calls  int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[uint]*models.User{}}
}

func (f *fakeUsers) Create(_ context.Context, email, hash string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			return nil, repositories.ErrDuplicate
		}
	}
	f.nextID++
	u := &models.User{ID: f.nextID, Email: email, PasswordHash: hash, CreatedAt: time.Now()}
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUsers) FindByID(_ context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrNotFound
}

type fakePlans struct {
	mu     sync.Mutex
	nextID uint
	plans  []*models.LessonPlan
	err    error
	writes int
}

func (f *fakePlans) Create(_ context.Context, plan *models.LessonPlan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if f.err != nil {
		return f.err
	}
	f.nextID++
	plan.ID = f.nextID
	plan.CreatedAt = time.Now()
	cp := *plan
	f.plans = append(f.plans, &cp)
	return nil
}

func (f *fakePlans) ListByUser(_ context.Context, userID uint) ([]models.PlanSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []models.PlanSummary
	for i := len(f.plans) - 1; i >= 0; i-- {
		p := f.plans[i]
		if p.UserID == userID {
			out = append(out, models.PlanSummary{ID: p.ID, Grade: p.Grade, Subject: p.Subject, Topic: p.Topic, CreatedAt: p.CreatedAt})
		}
	}
	return out, nil
}

func (f *fakePlans) FindByID(_ context.Context, id uint) (*models.LessonPlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.plans {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type fakeProvider struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (f *fakeProvider) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeArchive struct {
	mu       sync.Mutex
	objects  map[string][]byte
	puts     int
	putErr   error
	existErr error
}

func newFakeArchive() *fakeArchive {
	return &fakeArchive{objects: map[string][]byte{}}
}

func (f *fakeArchive) Put(_ context.Context, key string, body []byte, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++
	if f.putErr != nil {
		return f.putErr
	}
	f.objects[key] = body
	return nil
}

func (f *fakeArchive) PresignGet(_ context.Context, key string, expires time.Duration) (string, error) {
	return "https://archive.test/" + key + "?expires=" + expires.String(), nil
}

func (f *fakeArchive) Exists(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.existErr != nil {
		return false, f.existErr
	}
	_, ok := f.objects[key]
	return ok, nil
}
