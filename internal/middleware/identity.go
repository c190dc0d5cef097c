package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/google/uuid"
)

// HeaderUserID carries the authenticated user's id, installed by the
// fronting auth provider. The service never validates credentials itself.
const HeaderUserID = "X-User-ID"

type ctxKey string

const userIDKey ctxKey = "user_id"

// Identity requires a valid actor identity on the request and stores it in
// the context. Missing or malformed identity is Unauthenticated.
func Identity(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(HeaderUserID)
			if raw == "" {
				unauthenticated(w)
				return
			}
			id, err := uuid.Parse(raw)
			if err != nil || id == uuid.Nil {
				logger.Warn("malformed identity header", slog.String("value", raw))
				unauthenticated(w)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, id)))
		})
	}
}

// UserID returns the authenticated actor installed by Identity.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// WithUserID is a test helper for building authenticated contexts.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

func unauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthenticated"})
}
