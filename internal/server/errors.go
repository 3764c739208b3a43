// Package server provides the HTTP REST API for the ats-refinery service.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/nexuscv/ats-refinery/internal/fetch"
	"github.com/nexuscv/ats-refinery/internal/types"
)

// ErrEmailAlreadyExists indicates email is already registered.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates the user was not found.
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		emailExists   *ErrEmailAlreadyExists
		invalidCreds  *ErrInvalidCredentials
		userNotFound  *ErrUserNotFound
		resumeInvalid *types.ValidationError
		fetchErr      *fetch.Error
	)
	switch {
	case errors.As(err, &emailExists):
		return http.StatusConflict
	case errors.As(err, &invalidCreds):
		return http.StatusUnauthorized
	case errors.As(err, &userNotFound):
		return http.StatusNotFound
	case errors.As(err, &resumeInvalid):
		return http.StatusBadRequest
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
