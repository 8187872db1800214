package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// AuthConfig holds configuration for the optional login endpoint: the
// bcrypt hash of the shared API password and the JWT signing parameters.
type AuthConfig struct {
	PasswordHash    string // bcrypt hash of the API password
	JWTSecret       string
	ExpirationHours int
	BcryptCost      int
}

// NewAuthConfig creates an auth configuration from environment variables.
// It reads API_PASSWORD_HASH and JWT_SECRET (both required when auth is
// enabled), JWT_EXPIRATION_HOURS (default: 24) and BCRYPT_COST (default: 12).
func NewAuthConfig() (*AuthConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}
	hash := os.Getenv("API_PASSWORD_HASH")
	if hash == "" {
		return nil, fmt.Errorf("API_PASSWORD_HASH is required but not set")
	}

	expirationStr := os.Getenv("JWT_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "24" // default
	}
	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
	}

	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12" // default
	}
	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}

	cfg := &AuthConfig{
		PasswordHash:    hash,
		JWTSecret:       secret,
		ExpirationHours: expirationHours,
		BcryptCost:      cost,
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *AuthConfig) normalize() error {
	if c.ExpirationHours < 1 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	return nil
}

// HashPassword hashes a password using bcrypt. Used by the hash-password
// helper command when provisioning API_PASSWORD_HASH.
func (c *AuthConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against the configured hash.
func (c *AuthConfig) VerifyPassword(pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(pw)) == nil
}
