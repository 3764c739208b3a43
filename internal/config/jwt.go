package config

import (
	"fmt"
	"os"
	"strconv"
)

// JWTConfig holds configuration for JWT token generation and validation.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig creates a JWT configuration from environment variables:
// JWT_SECRET (required) and JWT_EXPIRATION_HOURS (default 24).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	expirationStr := os.Getenv("JWT_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "24"
	}
	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
	}
	if expirationHours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", expirationHours)
	}

	return &JWTConfig{Secret: secret, ExpirationHours: expirationHours}, nil
}
