package auth

import (
	"net/mail"
	"strings"
	"unicode"

	apperrors "github.com/jrsteele09/go-identity-service/internal/errors"
	"github.com/jrsteele09/go-identity-service/users"
)

// SignupRequest is the transient signup payload. It is validated, hashed
// and discarded; the plaintext password is never stored or logged.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the transient login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

const (
	nameMinLength     = 2
	nameMaxLength     = 50
	passwordMinLength = 8
)

// Validator provides centralized validation of signup and login input.
// All rules for a field are evaluated; violations accumulate per field
// instead of short-circuiting on the first failure.
type Validator struct{}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSignup checks a signup payload and returns the normalized
// request (trimmed name, lowercased email) on success.
func (v *Validator) ValidateSignup(req SignupRequest) (SignupRequest, error) {
	violations := apperrors.NewValidationError()

	name := strings.TrimSpace(req.Name)
	if len(name) < nameMinLength {
		violations.Add("name", "Name must be at least 2 characters")
	}
	if len(name) > nameMaxLength {
		violations.Add("name", "Name must be less than 50 characters")
	}

	email := users.NormalizeEmail(req.Email)
	if !validEmail(email) {
		violations.Add("email", "Invalid email address")
	}

	if len(req.Password) < passwordMinLength {
		violations.Add("password", "Password must be at least 8 characters")
	}
	if !passwordHasRequiredClasses(req.Password) {
		violations.Add("password", "Password must contain at least one lowercase letter, one uppercase letter, and one number")
	}

	if violations.HasErrors() {
		return SignupRequest{}, violations
	}

	return SignupRequest{Name: name, Email: email, Password: req.Password}, nil
}

// ValidateLogin checks a login payload. Password strength is deliberately
// not checked so accounts created under older rules can still sign in.
func (v *Validator) ValidateLogin(req LoginRequest) (LoginRequest, error) {
	violations := apperrors.NewValidationError()

	email := users.NormalizeEmail(req.Email)
	if !validEmail(email) {
		violations.Add("email", "Invalid email address")
	}

	if req.Password == "" {
		violations.Add("password", "Password is required")
	}

	if violations.HasErrors() {
		return LoginRequest{}, violations
	}

	return LoginRequest{Email: email, Password: req.Password}, nil
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// Reject addresses with a display name ("Bob <b@x.com>") and require
	// a dot in the domain, matching the strictness of the public API.
	if addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return at > 0 && strings.Contains(email[at+1:], ".")
}

func passwordHasRequiredClasses(password string) bool {
	var hasUpper, hasLower, hasNumber bool
	for _, char := range password {
		if unicode.IsUpper(char) {
			hasUpper = true
		} else if unicode.IsLower(char) {
			hasLower = true
		} else if unicode.IsDigit(char) {
			hasNumber = true
		}
	}
	return hasUpper && hasLower && hasNumber
}
