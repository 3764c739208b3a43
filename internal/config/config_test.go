package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"port": 9090,
		"use_browser": true,
		"debug": true
	}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.UseBrowser)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.JSONLog)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9090}`), 0o644))

	t.Setenv("PORT", "7070")
	t.Setenv("DATABASE_URL", "postgres://localhost/refinery")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "postgres://localhost/refinery", cfg.DatabaseURL)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{port:}`), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{Port: 70000}
	assert.Error(t, cfg.Validate())

	cfg.Port = 8080
	assert.NoError(t, cfg.Validate())
}

func TestValidate_CatalogFilesMustExist(t *testing.T) {
	cfg := &Config{JobRoles: "/nonexistent/job_roles.json"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job_roles")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PORT", "6060")
	t.Setenv("DATABASE_URL", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestNewPasswordConfig_Defaults(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("PASSWORD_PEPPER", "")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Empty(t, cfg.Pepper)
}

func TestNewPasswordConfig_RejectsOutOfRangeCost(t *testing.T) {
	t.Setenv("BCRYPT_COST", "4")
	_, err := NewPasswordConfig()
	assert.Error(t, err)

	t.Setenv("BCRYPT_COST", "20")
	_, err = NewPasswordConfig()
	assert.Error(t, err)
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, cfg.VerifyPassword("s3cret", hash))
	assert.False(t, cfg.VerifyPassword("wrong", hash))
}

func TestPasswordConfig_PepperChangesVerification(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: 10, Pepper: "house-secret"}
	plain := &PasswordConfig{BcryptCost: 10}

	hash, err := peppered.HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("s3cret", hash))
	assert.False(t, plain.VerifyPassword("s3cret", hash))
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := NewJWTConfig()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")
	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "super-secret", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours)

	t.Setenv("JWT_EXPIRATION_HOURS", "0")
	_, err = NewJWTConfig()
	assert.Error(t, err)
}
