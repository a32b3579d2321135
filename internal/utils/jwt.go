package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-cloud-editor/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidTokenParams = errors.New("invalid params for generating API key")
	ErrInvalidAuthHeader  = errors.New("invalid authorization header")
	ErrEmptyRole          = errors.New("empty role claim")
)

// GenerateAPIKey signs an HS256 API key for role. The key id (jti) is a
// fresh UUID so that issued keys can be told apart in logs.
func GenerateAPIKey(issuer, role string, duration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || role == "" || duration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := models.APIKeyClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        NewUUIDGenerator().Generate(),
			Issuer:    issuer,
			Subject:   role,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing API key: %w", err)
	}

	return models.Token{SignedString: signed, Claims: claims}, nil
}

// ValidateAPIKey verifies the signature, issuer and expiry of tokenString
// and returns its claims.
func ValidateAPIKey(tokenString, signKey, issuer string) (models.Token, error) {
	var claims models.APIKeyClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating API key: %w", err)
	}

	if claims.Role == "" {
		return models.Token{}, ErrEmptyRole
	}

	return models.Token{SignedString: tokenString, Claims: claims}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer x"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthHeader
	}
	return parts[1], nil
}
