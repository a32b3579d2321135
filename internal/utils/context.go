// Package utils holds small helpers shared by the server and the client:
// context keys, HMAC body signing, JSON responses, the resty client
// wrapper, API key tokens and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-cloud-editor/models"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey stores the verified API key claims of a request.
var ClaimsCtxKey = contextKey("apiKeyClaims")

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims models.APIKeyClaims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext returns the API key claims stored by the auth
// middleware.
func GetClaimsFromContext(ctx context.Context) (models.APIKeyClaims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.APIKeyClaims)
	return claims, ok
}
