package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nexuscv/ats-refinery/internal/server/middleware"
	"github.com/nexuscv/ats-refinery/internal/types"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	userService *UserService
	jwtService  *JWTService
	validator   *validator.Validate
}

// NewAuthHandler creates an AuthHandler with the given dependencies.
func NewAuthHandler(userService *UserService, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		validator:   validator.New(),
	}
}

// Register handles user registration requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		errorResponse(w, http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	jsonResponse(w, http.StatusCreated, types.LoginResponse{User: user, Token: token})
}

// Login handles user login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		errorResponse(w, http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	jsonResponse(w, http.StatusOK, types.LoginResponse{User: user, Token: token})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.userService.Get(r.Context(), userID)
	if err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	jsonResponse(w, http.StatusOK, user)
}

// formatValidationErrors flattens validator errors into one readable line.
func formatValidationErrors(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Field()+" failed "+fe.Tag()+" validation")
	}
	return strings.Join(msgs, "; ")
}
