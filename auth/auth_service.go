package auth

import (
	"context"

	apperrors "github.com/jrsteele09/go-identity-service/internal/errors"
	"github.com/jrsteele09/go-identity-service/token"
	"github.com/jrsteele09/go-identity-service/users"
	"github.com/pkg/errors"
)

// Result is returned by Signup and Login: a fresh session token plus the
// sanitized account it belongs to.
type Result struct {
	Token string
	User  *users.User
}

// Service implements the credential authentication flows: registration,
// login and bearer-token authentication. It holds no mutable state of
// its own; all account state lives behind the users.Repo.
type Service struct {
	userRepo  users.Repo
	hasher    *Hasher
	issuer    *token.Issuer
	validator *Validator
}

// ServiceOption defines a function type to modify the Service instance.
type ServiceOption func(*Service)

// WithValidator replaces the default validator (primarily for testing).
func WithValidator(v *Validator) ServiceOption {
	return func(s *Service) {
		s.validator = v
	}
}

// NewService initializes a Service with required dependencies.
func NewService(userRepo users.Repo, hasher *Hasher, issuer *token.Issuer, options ...ServiceOption) (*Service, error) {
	if userRepo == nil {
		return nil, errors.New("[NewService] user repo is required")
	}
	if hasher == nil {
		return nil, errors.New("[NewService] hasher is required")
	}
	if issuer == nil {
		return nil, errors.New("[NewService] token issuer is required")
	}

	service := &Service{
		userRepo:  userRepo,
		hasher:    hasher,
		issuer:    issuer,
		validator: NewValidator(),
	}

	for _, opt := range options {
		opt(service)
	}

	return service, nil
}

// Signup validates the payload, hashes the password and creates the
// account. Duplicate detection is delegated entirely to the store's
// atomic insert; there is no look-before-insert race window here.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*Result, error) {
	req, err := s.validator.ValidateSignup(req)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Signup] hasher.Hash")
	}

	user, err := s.userRepo.Create(ctx, &users.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if apperrors.Is(err, apperrors.ErrDuplicateEmail) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, errors.Wrap(err, "[Service.Signup] userRepo.Create")
	}

	signed, err := s.issuer.Issue(user)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Signup] issuer.Issue")
	}

	return &Result{Token: signed, User: user.Sanitized()}, nil
}

// Login verifies the credentials and issues a session token. Unknown
// email and wrong password both return ErrInvalidCredentials so the
// response cannot be used for account enumeration.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*Result, error) {
	req, err := s.validator.ValidateLogin(req)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, "[Service.Login] userRepo.GetByEmail")
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	signed, err := s.issuer.Issue(user)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Login] issuer.Issue")
	}

	return &Result{Token: signed, User: user.Sanitized()}, nil
}

// Authenticate verifies a raw bearer token and resolves its subject to a
// sanitized user. A token whose subject no longer exists yields
// ErrUnknownSubject, which the classification boundary collapses into
// the same unauthorized response as an invalid token.
func (s *Service) Authenticate(ctx context.Context, rawToken string) (*users.User, error) {
	claims, err := s.issuer.Verify(rawToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUnknownSubject
		}
		return nil, errors.Wrap(err, "[Service.Authenticate] userRepo.GetByID")
	}

	return user.Sanitized(), nil
}
