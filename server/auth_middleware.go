package server

import (
	"context"
	"net/http"
	"strings"

	apperrors "github.com/jrsteele09/go-identity-service/internal/errors"
	"github.com/jrsteele09/go-identity-service/users"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeyUser stores the authenticated user (hash stripped)
const ContextKeyUser ContextKey = "user"

// UserFromContext returns the authenticated user attached by RequireAuth.
func UserFromContext(ctx context.Context) (*users.User, bool) {
	user, ok := ctx.Value(ContextKeyUser).(*users.User)
	return user, ok
}

// RequireAuth is middleware that validates a Bearer session token and
// resolves it to an identity. A missing header, a bad token and a
// vanished account all produce the same unauthorized response.
func (s *Server) RequireAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			rawToken, err := bearerToken(r)
			if err != nil {
				s.writeError(w, err)
				return
			}

			user, err := s.auth.Authenticate(r.Context(), rawToken)
			if err != nil {
				s.writeError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, user)
			next(w, r.WithContext(ctx))
		}
	}
}

func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", apperrors.ErrMissingCredentials
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", apperrors.ErrMissingCredentials
	}

	rawToken := strings.TrimSpace(parts[1])
	if rawToken == "" {
		return "", apperrors.ErrMissingCredentials
	}
	return rawToken, nil
}
