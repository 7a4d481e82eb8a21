package server

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/jrsteele09/go-identity-service/internal/errors"
	"github.com/jrsteele09/go-identity-service/users"
	"github.com/rs/zerolog/log"
)

const contentTypeJSON = "application/json; charset=utf-8"

// Response is the wire shape shared by every endpoint.
type Response struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Token   string              `json:"token,omitempty"`
	User    *users.User         `json:"user,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Err(err).Msg("failed to encode response")
	}
}

// writeError is the single translation boundary from the internal error
// taxonomy to the external response shape. Errors within one class get
// an identical body and status so the cause cannot be inferred from the
// response. Internal detail only leaks outside production mode.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var validationErr *apperrors.ValidationError
	switch {
	case apperrors.As(err, &validationErr):
		s.writeJSON(w, http.StatusBadRequest, Response{
			Message: "Validation failed",
			Errors:  validationErr.Fields,
		})
	case apperrors.Is(err, apperrors.ErrDuplicateEmail):
		s.writeJSON(w, http.StatusConflict, Response{Message: "Email already exists"})
	case apperrors.Is(err, apperrors.ErrInvalidCredentials):
		s.writeJSON(w, http.StatusUnauthorized, Response{Message: "Invalid credentials"})
	case apperrors.Is(err, apperrors.ErrMissingCredentials),
		apperrors.Is(err, apperrors.ErrInvalidToken),
		apperrors.Is(err, apperrors.ErrUnknownSubject):
		s.writeJSON(w, http.StatusUnauthorized, Response{Message: "Unauthorized"})
	case apperrors.Is(err, apperrors.ErrInternal):
		s.writeInternal(w, err)
	default:
		log.Err(err).Msg("unclassified error")
		s.writeInternal(w, err)
	}
}

func (s *Server) writeInternal(w http.ResponseWriter, err error) {
	message := "Internal server error"
	if !s.config.IsProduction() {
		message = err.Error()
	}
	s.writeJSON(w, http.StatusInternalServerError, Response{Message: message})
}
