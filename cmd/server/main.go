package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rohits-web03/lessonplanner/internal/api"
	"github.com/rohits-web03/lessonplanner/internal/api/handlers"
	"github.com/rohits-web03/lessonplanner/internal/api/services"
	"github.com/rohits-web03/lessonplanner/internal/config"
	"github.com/rohits-web03/lessonplanner/internal/logging"
	"github.com/rohits-web03/lessonplanner/internal/repositories"
)

// @title Lesson Plan Generator API
// @version 1.0
// @description Generates DepEd-style daily lesson logs for teachers and keeps each teacher's plan history.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.Environment)
	if err != nil {
		log.Fatalf("Could not build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", zap.Error(err))
		logger.Sync() //nolint:errcheck
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Connect to database
	db, err := repositories.Connect(cfg.DB)
	if err != nil {
		return err
	}
	defer func() {
		if err := repositories.Close(db); err != nil {
			logger.Warn("closing database", zap.Error(err))
		}
	}()
	logger.Info("Connected to database",
		zap.String("driver", cfg.DB.Driver),
		zap.String("dsn", cfg.DB.Redacted()),
	)

	users := repositories.NewUserRepository(db)
	plans := repositories.NewPlanRepository(db)

	var archive services.PlanArchive
	if cfg.R2.Enabled() {
		archive = repositories.NewR2Archive(cfg.R2)
		logger.Info("Plan export enabled", zap.String("bucket", cfg.R2.BucketName))
	} else {
		logger.Info("R2 not configured, plan export disabled")
	}
	if cfg.Provider.APIKey == "" {
		logger.Warn("OPENAI_API_KEY not set, plan generation will fail")
	}

	tokens := services.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	h := handlers.New(handlers.Deps{
		Auth:   services.NewAuthService(users, cfg.BcryptCost),
		Plans:  services.NewPlanService(plans, users, services.NewOpenAIProvider(cfg.Provider), archive),
		Tokens: tokens,
		Ping: func(ctx context.Context) error {
			return repositories.Ping(ctx, db)
		},
		Log:           logger,
		SecureCookies: cfg.IsProduction(),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.SetupRouter(h, tokens, cfg.CorsConfig, logger),
		// Timeouts prevent resource exhaustion from slow clients. Writes
		// must outlast a provider call.
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.Provider.Timeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return serve(server, logger)
}

// serve runs the server until SIGINT or SIGTERM, then drains in-flight
// requests.
func serve(server *http.Server, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting lesson plan server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", server.Addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("Server stopped")
	return nil
}
