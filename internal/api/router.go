package api

import (
	"net/http"

	_ "github.com/rohits-web03/lessonplanner/docs"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/rohits-web03/lessonplanner/internal/api/handlers"
	"github.com/rohits-web03/lessonplanner/internal/api/middleware"
	"github.com/rohits-web03/lessonplanner/internal/apperrors"
	"github.com/rohits-web03/lessonplanner/internal/utils"
	"github.com/rs/cors"
)

// SetupRouter wires every route. Protected routes need a session token.
func SetupRouter(h *handlers.Handler, tokens middleware.TokenParser, corsOpts cors.Options, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	mainMux := http.NewServeMux()
	c := cors.New(corsOpts)
	protect := middleware.AuthMiddleware(tokens)

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("GET /{$}", h.Root)
	mainMux.HandleFunc("GET /health", h.Health)
	mainMux.HandleFunc("GET /api/test-db", h.TestDB)
	mainMux.HandleFunc("GET /docs/", httpSwagger.WrapHandler)

	mainMux.HandleFunc("POST /api/register", h.RegisterUser)
	mainMux.HandleFunc("POST /api/login", h.LoginUser)
	mainMux.HandleFunc("POST /api/logout", h.Logout)
	mainMux.HandleFunc("GET /api/templates", h.ListTemplates)

	// ---------- PROTECTED ROUTES ----------
	mainMux.Handle("POST /api/generate-plan", protect(http.HandlerFunc(h.GeneratePlan)))
	mainMux.Handle("GET /api/plans/history", protect(http.HandlerFunc(h.ListHistory)))
	mainMux.Handle("GET /api/plans/{planId}", protect(http.HandlerFunc(h.GetPlan)))
	mainMux.Handle("POST /api/plans/{planId}/export", protect(http.HandlerFunc(h.ExportPlan)))

	mainMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, apperrors.NotFound("Not found"))
	})

	log.Info("Router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Recover(log)(handler)
	handler = middleware.Logger(log)(handler)
	return handler
}
