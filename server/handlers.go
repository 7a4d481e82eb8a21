package server

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/jrsteele09/go-identity-service/auth"
	apperrors "github.com/jrsteele09/go-identity-service/internal/errors"
)

// maxBodyBytes caps auth payloads. Credentials are tiny; anything
// larger is rejected before it reaches the JSON decoder.
const maxBodyBytes = 1 << 20

// SignupHandler registers a new account and returns a session token
// along with the sanitized user.
func (s *Server) SignupHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auth.SignupRequest
		if !s.decodeJSON(w, r, &req) {
			return
		}

		result, err := s.auth.Signup(r.Context(), req)
		if err != nil {
			s.writeError(w, err)
			return
		}

		s.writeJSON(w, http.StatusCreated, Response{
			Success: true,
			Token:   result.Token,
			User:    result.User,
		})
	}
}

// LoginHandler verifies credentials and returns a session token.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auth.LoginRequest
		if !s.decodeJSON(w, r, &req) {
			return
		}

		result, err := s.auth.Login(r.Context(), req)
		if err != nil {
			s.writeError(w, err)
			return
		}

		s.writeJSON(w, http.StatusOK, Response{
			Success: true,
			Token:   result.Token,
			User:    result.User,
		})
	}
}

// MeHandler returns the authenticated identity. RequireAuth has already
// attached the sanitized user to the request context.
func (s *Server) MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			s.writeError(w, apperrors.ErrMissingCredentials)
			return
		}

		s.writeJSON(w, http.StatusOK, Response{
			Success: true,
			User:    user,
		})
	}
}

// PreflightHandler terminates OPTIONS requests without an Origin header.
// Cross-origin preflights never reach it; CorsMiddleware answers those.
func (s *Server) PreflightHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
}

// HealthHandler is a trivial liveness check.
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, Response{Success: true, Message: "ok"})
	}
}

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		s.writeJSON(w, http.StatusUnsupportedMediaType, Response{Message: "Content-Type must be application/json"})
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		validationErr := apperrors.NewValidationError()
		validationErr.Add("body", "Request body must be valid JSON")
		s.writeError(w, validationErr)
		return false
	}
	return true
}
