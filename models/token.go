package models

import "github.com/golang-jwt/jwt/v5"

// API key roles. An anon key may read and write the workspace; a service key
// additionally bypasses nothing today but is kept distinct for auditing.
const (
	RoleAnon    = "anon"
	RoleService = "service"
)

// APIKeyClaims are the claims carried by an API key.
type APIKeyClaims struct {
	jwt.RegisteredClaims

	Role string `json:"role"`
}

// Token is a parsed or freshly signed API key.
type Token struct {
	SignedString string
	Claims       APIKeyClaims
}
