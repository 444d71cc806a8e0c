package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenService is responsible for creating and validating JWTs.
type TokenService struct {
	secretKey []byte
	ttl       time.Duration
}

// NewTokenService creates a new TokenService. The service cannot function
// without a secret, so it panics on startup if one is missing.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if secret == "" {
		panic("JWT_SECRET environment variable not set")
	}
	return &TokenService{secretKey: []byte(secret), ttl: ttl}
}

// Generate creates a signed access token bound to the given user ID.
func (s *TokenService) Generate(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"typ": "access",
		"exp": now.Add(s.ttl).Unix(),
		"iat": now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Validate parses a token string and returns its claims. Signature, expiry
// and token type are all checked; verification never touches the store.
func (s *TokenService) Validate(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	if typ, ok := claims["typ"].(string); !ok || typ != "access" {
		return nil, fmt.Errorf("invalid token type")
	}
	return claims, nil
}
