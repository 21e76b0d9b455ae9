package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"teamdocs/internal/domain/models"
)

// TokenSessionResolver resolves sessions from a bearer token or, failing
// that, from the session cookie.
type TokenSessionResolver struct {
	verifier   JWTVerifier
	cookieName string
	logger     *slog.Logger
}

// NewTokenSessionResolver creates a resolver. An empty cookieName disables
// cookie lookup.
func NewTokenSessionResolver(verifier JWTVerifier, cookieName string, logger *slog.Logger) *TokenSessionResolver {
	return &TokenSessionResolver{
		verifier:   verifier,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Resolve implements SessionResolver
func (s *TokenSessionResolver) Resolve(r *http.Request) (*models.Session, error) {
	token := s.extractToken(r)
	if token == "" {
		return nil, nil
	}

	claims, err := s.verifier.VerifyToken(token)
	if err != nil {
		s.logger.Debug("session rejected", "path", r.URL.Path, "error", err)
		return nil, nil
	}

	return models.NewSession(claims), nil
}

func (s *TokenSessionResolver) extractToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}

	if s.cookieName == "" {
		return ""
	}
	cookie, err := r.Cookie(s.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
