package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeValidator struct {
	email string
}

type fakeClaims struct {
	email string
}

func (c *fakeClaims) GetEmail() string { return c.email }

func (v *fakeValidator) ValidateToken(tokenString string) (EmailGetter, error) {
	if tokenString != "good-token" {
		return nil, fmt.Errorf("invalid token")
	}
	return &fakeClaims{email: v.email}, nil
}

func echoEmail() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if email, ok := EmailFromContext(r); ok {
			fmt.Fprint(w, email)
			return
		}
		fmt.Fprint(w, "anonymous")
	})
}

func TestRequireAuth(t *testing.T) {
	handler := RequireAuth(&fakeValidator{email: "jordan@example.com"})(echoEmail())

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", authHeader: "Bearer good-token", wantStatus: http.StatusOK, wantBody: "jordan@example.com"},
		{name: "case-insensitive scheme", authHeader: "bearer good-token", wantStatus: http.StatusOK, wantBody: "jordan@example.com"},
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", authHeader: "Basic good-token", wantStatus: http.StatusUnauthorized},
		{name: "bad token", authHeader: "Bearer bad-token", wantStatus: http.StatusUnauthorized},
		{name: "no token", authHeader: "Bearer", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	handler := OptionalAuth(&fakeValidator{email: "jordan@example.com"})(echoEmail())

	tests := []struct {
		name       string
		authHeader string
		wantBody   string
	}{
		{name: "valid token", authHeader: "Bearer good-token", wantBody: "jordan@example.com"},
		{name: "no header", authHeader: "", wantBody: "anonymous"},
		{name: "invalid token treated as anonymous", authHeader: "Bearer bad-token", wantBody: "anonymous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestGetEmail_MissingContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	_, err := GetEmail(req)
	assert.Error(t, err)
}
