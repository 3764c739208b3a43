package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// PasswordConfig holds configuration for password hashing and verification.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string // optional global secret mixed into every password
}

// NewPasswordConfig creates a password configuration from environment
// variables: BCRYPT_COST (default 12) and optionally PASSWORD_PEPPER.
func NewPasswordConfig() (*PasswordConfig, error) {
	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12"
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}
	if cost < 10 || cost > 14 {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", cost)
	}

	return &PasswordConfig{
		BcryptCost: cost,
		Pepper:     os.Getenv("PASSWORD_PEPPER"),
	}, nil
}

// HashPassword hashes a password using bcrypt (with optional pepper).
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	if c.Pepper != "" {
		pw += c.Pepper
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against a stored hash.
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	if c.Pepper != "" {
		pw += c.Pepper
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(pw)) == nil
}
