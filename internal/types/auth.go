package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateUserRequest represents the request to register a new user.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone,omitempty"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// User represents a user profile for API responses (password hash excluded).
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse represents the register/login response with an auth token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Validate validates the CreateUserRequest using the validator.
func (r *CreateUserRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	return validator.New().Struct(r)
}
