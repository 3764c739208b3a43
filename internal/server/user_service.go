package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nexuscv/ats-refinery/internal/config"
	"github.com/nexuscv/ats-refinery/internal/db"
	"github.com/nexuscv/ats-refinery/internal/types"
)

// UserStore is the subset of database operations the user service needs.
type UserStore interface {
	CreateUser(ctx context.Context, name, email, phone, passwordHash string) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
}

// UserService provides business logic for user account operations.
type UserService struct {
	store          UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a UserService with the given dependencies.
func NewUserService(store UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{store: store, passwordConfig: passwordConfig}
}

func toAPIUser(u *db.User) *types.User {
	if u == nil {
		return nil
	}
	return &types.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Register creates a new user account with a hashed password.
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	exists, err := s.store.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.store.CreateUser(ctx, req.Name, req.Email, req.Phone, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("created user not found: %s", userID)
	}
	return toAPIUser(user), nil
}

// Login authenticates a user by email and password.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || user.PasswordHash == "" {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}
	return toAPIUser(user), nil
}

// Get retrieves a user profile by ID.
func (s *UserService) Get(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}
	return toAPIUser(user), nil
}
