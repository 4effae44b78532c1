package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// User is a registered account with its remaining AI-call credits.
// The password hash is stored at signup but never verified at login; the
// demo-grade login flow looks users up by email only.
type User struct {
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Credits      int       `json:"credits"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterRequest represents the request to create a new account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty"`
}

// LoginRequest represents the login request. No password field is verified;
// lookup is by email only.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// SessionResponse is the register/login response with user data and a
// bearer token identifying the session.
type SessionResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
