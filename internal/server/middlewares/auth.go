package middlewares

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	srvErrors "github.com/tupyy/audiobook-scanner/pkg/errors"
)

const minSecretLength = 32

// ReadSecret reads the HS256 signing secret from path. Surrounding
// whitespace is ignored.
func ReadSecret(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jwt secret: %w", err)
	}
	secret := bytes.TrimSpace(data)
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d bytes", minSecretLength)
	}
	return secret, nil
}

// Authenticator rejects requests that do not carry a valid HS256 bearer token.
func Authenticator(secret []byte) gin.HandlerFunc {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
	)

	return func(c *gin.Context) {
		claims, err := authenticate(parser, secret, c.GetHeader("Authorization"))
		if err != nil {
			zap.S().Named("auth").Debugw("request rejected", "path", c.Request.URL.Path, "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		if sub, err := claims.GetSubject(); err == nil && sub != "" {
			c.Set("subject", sub)
		}
		c.Next()
	}
}

func authenticate(parser *jwt.Parser, secret []byte, header string) (jwt.MapClaims, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return nil, srvErrors.NewUnauthorizedError("missing bearer token")
	}

	claims := jwt.MapClaims{}
	_, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	})
	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, srvErrors.NewUnauthorizedError("token expired")
	default:
		return nil, srvErrors.NewUnauthorizedError("invalid token")
	}
}
