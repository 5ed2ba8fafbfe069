// internal/pkg/auth/gate.go
package auth

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/allithy/storefront-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// Gate is the flat pass/fail admin gate: a single shared secret, no
// lockout, no rate limiting beyond the global middleware.
type Gate struct {
	config *config.Config
}

// NewGate creates a new admin gate
func NewGate(cfg *config.Config) *Gate {
	return &Gate{
		config: cfg,
	}
}

// Verify compares the submitted secret against the configured one.
// A configured bcrypt hash is compared with bcrypt; anything else is a
// plain shared secret compared in constant time.
func (g *Gate) Verify(secret string) bool {
	configured := g.config.Admin.Secret
	if configured == "" || secret == "" {
		return false
	}

	if isBcryptHash(configured) {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(secret)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(configured), []byte(secret)) == 1
}

// HashSecret produces a bcrypt hash suitable for ADMIN_SECRET.
func HashSecret(secret string, cost int) (string, error) {
	if len(secret) < 8 {
		return "", fmt.Errorf("secret must be at least 8 characters long")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hashed), nil
}

func isBcryptHash(value string) bool {
	return strings.HasPrefix(value, "$2a$") ||
		strings.HasPrefix(value, "$2b$") ||
		strings.HasPrefix(value, "$2y$")
}
