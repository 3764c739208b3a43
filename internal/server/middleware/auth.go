// Package middleware provides HTTP middleware for authentication.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// userIDKey is the context key for the authenticated user ID.
const userIDKey ContextKey = "userID"

// TokenValidator validates JWT token strings.
type TokenValidator interface {
	ValidateToken(tokenString string) (UserIDGetter, error)
}

// UserIDGetter extracts the user ID from token claims.
type UserIDGetter interface {
	GetUserID() uuid.UUID
}

// Auth returns middleware that requires a valid bearer token and stores the
// user ID in the request context.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := bearerUserID(r, validator)
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// OptionalAuth returns middleware that attaches the user ID when a valid
// bearer token is present but lets anonymous requests through untouched.
func OptionalAuth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID, ok := bearerUserID(r, validator); ok {
				r = r.WithContext(WithUserID(r.Context(), userID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerUserID(r *http.Request, validator TokenValidator) (uuid.UUID, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return uuid.Nil, false
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return uuid.Nil, false
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return uuid.Nil, false
	}

	claims, err := validator.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, false
	}
	return claims.GetUserID(), true
}

// WithUserID stores a user ID in the context.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext retrieves the authenticated user ID, if any.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}
