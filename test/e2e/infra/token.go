package infra

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer signs HS256 tokens with a random secret stored in a file the
// scanner can read.
type TokenIssuer struct {
	secret     []byte
	secretFile string
}

func NewTokenIssuer(dir string) (*TokenIssuer, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("generating secret: %w", err)
	}
	secret := []byte(hex.EncodeToString(raw))

	path := filepath.Join(dir, "jwt-secret")
	if err := os.WriteFile(path, secret, 0o600); err != nil {
		return nil, fmt.Errorf("writing secret: %w", err)
	}

	return &TokenIssuer{secret: secret, secretFile: path}, nil
}

func (t *TokenIssuer) SecretFile() string {
	return t.secretFile
}

// GenerateToken returns a token for subject valid for ttl. A negative ttl
// yields an expired token.
func (t *TokenIssuer) GenerateToken(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}
