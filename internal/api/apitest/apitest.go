// Package apitest runs the full HTTP API against an in-memory database for
// tests in other packages.
package apitest

import (
	"context"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/rohits-web03/lessonplanner/internal/api"
	"github.com/rohits-web03/lessonplanner/internal/api/handlers"
	"github.com/rohits-web03/lessonplanner/internal/api/services"
	"github.com/rohits-web03/lessonplanner/internal/config"
	"github.com/rohits-web03/lessonplanner/internal/repositories"
)

const Secret = "test-secret"

// StubProvider answers every prompt with Text, or fails with Err.
type StubProvider struct {
	mu      sync.Mutex
	Text    string
	Err     error
	Prompts []string
}

func (p *StubProvider) Generate(ctx context.Context, prompt string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Prompts = append(p.Prompts, prompt)
	if p.Err != nil {
		return "", p.Err
	}
	return p.Text, nil
}

func (p *StubProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Prompts)
}

// MemoryArchive is a PlanArchive backed by a map.
type MemoryArchive struct {
	mu      sync.Mutex
	Objects map[string][]byte
}

func NewMemoryArchive() *MemoryArchive {
	return &MemoryArchive{Objects: map[string][]byte{}}
}

func (a *MemoryArchive) Put(_ context.Context, key string, body []byte, _ string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Objects[key] = body
	return nil
}

func (a *MemoryArchive) PresignGet(_ context.Context, key string, expires time.Duration) (string, error) {
	return fmt.Sprintf("https://archive.test/%s?expires=%d", key, int(expires.Seconds())), nil
}

func (a *MemoryArchive) Exists(_ context.Context, key string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.Objects[key]
	return ok, nil
}

type Server struct {
	*httptest.Server
	DB       *gorm.DB
	Provider *StubProvider
	Tokens   *services.TokenIssuer
}

type Option func(*options)

type options struct {
	archive services.PlanArchive
	log     *zap.Logger
}

// WithArchive turns plan export on.
func WithArchive(a services.PlanArchive) Option {
	return func(o *options) { o.archive = a }
}

// NewServer starts the API on a fresh sqlite database. The server and the
// database are closed when the test ends.
func NewServer(t testing.TB, opts ...Option) *Server {
	t.Helper()
	o := options{log: zaptest.NewLogger(t)}
	for _, opt := range opts {
		opt(&o)
	}

	db, err := repositories.Connect(config.DBConfig{
		Driver: "sqlite",
		Name:   fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	require.NoError(t, err)

	users := repositories.NewUserRepository(db)
	plans := repositories.NewPlanRepository(db)
	provider := &StubProvider{Text: "I. OBJECTIVES\nGenerated plan"}
	tokens := services.NewTokenIssuer(Secret, time.Hour)

	h := handlers.New(handlers.Deps{
		Auth:   services.NewAuthService(users, 4),
		Plans:  services.NewPlanService(plans, users, provider, o.archive),
		Tokens: tokens,
		Ping: func(ctx context.Context) error {
			return repositories.Ping(ctx, db)
		},
		Log: o.log,
	})

	srv := httptest.NewServer(api.SetupRouter(h, tokens, config.CorsConfig([]string{"*"}), o.log))
	t.Cleanup(func() {
		srv.Close()
		_ = repositories.Close(db)
	})
	return &Server{Server: srv, DB: db, Provider: provider, Tokens: tokens}
}
