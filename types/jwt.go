package types

import "github.com/golang-jwt/jwt/v5"

// Token types. Access tokens authenticate requests; refresh tokens are only
// accepted by the refresh endpoint.
const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
)

// Claims is the JWT payload shared by the auth utilities and middleware.
type Claims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}
