package token

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	apperrors "github.com/jrsteele09/go-identity-service/internal/errors"
	"github.com/jrsteele09/go-identity-service/users"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Claims is the session token payload: the subject's user ID plus the
// standard time claims.
type Claims struct {
	jwtlib.RegisteredClaims
}

// Issuer creates and verifies HMAC-SHA256 session tokens. Verification
// is stateless: it is a pure function of the token, the secret and the
// current time, so instances can be scaled horizontally with no shared
// token registry.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an Issuer with the process-wide signing secret and
// token lifetime.
func NewIssuer(secret []byte, ttl time.Duration) (*Issuer, error) {
	if len(secret) == 0 {
		return nil, errors.New("[NewIssuer] signing secret is required")
	}
	if ttl <= 0 {
		return nil, errors.New("[NewIssuer] token TTL must be positive")
	}
	return &Issuer{secret: secret, ttl: ttl}, nil
}

// Issue creates a signed token for the user, valid for the configured TTL.
func (i *Issuer) Issue(user *users.User) (string, error) {
	now := NowTimeFunc()
	claims := Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(i.ttl)),
			ID:        uuid.New().String(),
		},
	}

	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", errors.Wrap(err, "[Issuer.Issue] failed to sign token")
	}
	return signed, nil
}

// Verify checks the signature, expiry and structure of a raw token and
// returns its claims. Every failure collapses to ErrInvalidToken so a
// caller cannot distinguish an expired token from a forged or malformed
// one; the concrete cause is only logged.
func (i *Issuer) Verify(rawToken string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwtlib.ParseWithClaims(rawToken, claims,
		func(t *jwtlib.Token) (interface{}, error) {
			if t.Method.Alg() != jwtlib.SigningMethodHS256.Alg() {
				return nil, errors.Errorf("unexpected signing method: %s", t.Method.Alg())
			}
			return i.secret, nil
		},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(func() time.Time { return NowTimeFunc() }),
	)
	if err != nil {
		log.Debug().Err(err).Msg("token verification failed")
		return nil, apperrors.ErrInvalidToken
	}
	if !parsed.Valid || claims.Subject == "" {
		log.Debug().Msg("token structurally invalid: missing subject")
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
