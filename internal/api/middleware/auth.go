package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rohits-web03/lessonplanner/internal/apperrors"
	"github.com/rohits-web03/lessonplanner/internal/utils"
)

type contextKey string

const UserIDKey contextKey = "userID"

// CookieName is the session cookie set on login.
const CookieName = "token"

// TokenParser verifies a session token.
type TokenParser interface {
	Parse(token string) (uint, error)
}

// UserID returns the session user stored by AuthMiddleware.
func UserID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(UserIDKey).(uint)
	return id, ok && id != 0
}

// WithUserID is the context AuthMiddleware hands to the next handler.
func WithUserID(ctx context.Context, id uint) context.Context {
	return context.WithValue(ctx, UserIDKey, id)
}

// AuthMiddleware accepts a bearer token or the session cookie.
func AuthMiddleware(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			tokenStr := bearerToken(r)
			if tokenStr == "" {
				if c, err := r.Cookie(CookieName); err == nil {
					tokenStr = c.Value
				}
			}
			if tokenStr == "" {
				utils.WriteError(w, apperrors.Auth("Unauthorized"))
				return
			}

			userID, err := tokens.Parse(tokenStr)
			if err != nil {
				utils.WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
