package auth

import (
	"net/http"

	"teamdocs/internal/domain/models"
)

// JWTVerifier defines the interface for JWT token verification.
type JWTVerifier interface {
	// VerifyToken validates a JWT token string and returns the parsed claims.
	// Returns an error if the token is invalid, expired, or has an invalid signature.
	VerifyToken(tokenString string) (*models.SupabaseClaims, error)

	// Close releases any resources held by the verifier.
	Close() error
}

// SessionResolver resolves the caller of a request.
//
// Resolve returns (nil, nil) when the request carries no usable credentials.
// An error is returned only when the session could not be evaluated at all.
type SessionResolver interface {
	Resolve(r *http.Request) (*models.Session, error)
}
