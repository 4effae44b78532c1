// Package middleware provides HTTP middleware for authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// emailKey is the context key for the authenticated account email.
const emailKey ContextKey = "email"

// TokenValidator validates a bearer token and yields the claims.
// The indirection keeps this package free of a JWT dependency.
type TokenValidator interface {
	ValidateToken(tokenString string) (EmailGetter, error)
}

// EmailGetter extracts the account email from token claims.
type EmailGetter interface {
	GetEmail() string
}

// RequireAuth rejects requests without a valid bearer token and stores the
// authenticated email in the request context.
func RequireAuth(jwtService TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := authenticate(jwtService, r)
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(withEmail(r.Context(), email)))
		})
	}
}

// OptionalAuth stores the authenticated email in the request context when a
// valid bearer token is present and passes anonymous requests through
// untouched. An invalid token is treated as anonymous, not rejected.
func OptionalAuth(jwtService TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if email, ok := authenticate(jwtService, r); ok {
				r = r.WithContext(withEmail(r.Context(), email))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func authenticate(jwtService TokenValidator, r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	// "Bearer" is matched case-insensitively
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	claims, err := jwtService.ValidateToken(parts[1])
	if err != nil {
		return "", false
	}

	email := claims.GetEmail()
	if email == "" {
		return "", false
	}
	return email, true
}

func withEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// GetEmail extracts the authenticated email from the request context.
func GetEmail(r *http.Request) (string, error) {
	email, ok := r.Context().Value(emailKey).(string)
	if !ok || email == "" {
		return "", fmt.Errorf("email not found in request context")
	}
	return email, nil
}

// EmailFromContext is the non-erroring variant used on routes where
// authentication is optional.
func EmailFromContext(r *http.Request) (string, bool) {
	email, ok := r.Context().Value(emailKey).(string)
	return email, ok && email != ""
}
