package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/lessonplanner/internal/utils"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

const requestIDKey contextKey = "requestID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// RequestID returns the id assigned to the request by Logger.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// Logger tags each request with an id (kept from the client when sent) and
// logs method, path, status and latency once it completes.
func Logger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)

			rec := &statusRecorder{
				ResponseWriter: w,
				status:         http.StatusOK,
			}

			next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))

			log.Info("request",
				zap.String("request_id", id),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("latency", time.Since(start)),
			)
		})
	}
}

// Recover turns a panic into a logged 500 with the standard envelope.
func Recover(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					if p == http.ErrAbortHandler {
						panic(p)
					}
					log.Error("panic while serving request",
						zap.String("request_id", RequestID(r.Context())),
						zap.String("path", r.URL.Path),
						zap.Any("panic", p),
						zap.Stack("stack"),
					)
					utils.JSONResponse(w, http.StatusInternalServerError, utils.Failure("Internal server error"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
