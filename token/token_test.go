package token_test

import (
	"testing"
	"time"

	apperrors "github.com/jrsteele09/go-identity-service/internal/errors"
	"github.com/jrsteele09/go-identity-service/token"
	"github.com/jrsteele09/go-identity-service/users"
	"github.com/stretchr/testify/require"
)

const testTTL = 7 * 24 * time.Hour

func newIssuer(t *testing.T, secret string) *token.Issuer {
	t.Helper()
	issuer, err := token.NewIssuer([]byte(secret), testTTL)
	require.NoError(t, err)
	return issuer
}

func withNow(t *testing.T, now time.Time) {
	t.Helper()
	token.NowTimeFunc = func() time.Time { return now }
	t.Cleanup(func() { token.NowTimeFunc = time.Now })
}

func TestNewIssuer(t *testing.T) {
	t.Run("requires secret", func(t *testing.T) {
		_, err := token.NewIssuer(nil, testTTL)
		require.Error(t, err)
	})

	t.Run("requires positive TTL", func(t *testing.T) {
		_, err := token.NewIssuer([]byte("secret"), 0)
		require.Error(t, err)
	})
}

func TestIssuer_IssueAndVerify(t *testing.T) {
	issuer := newIssuer(t, "test-secret")
	user := &users.User{ID: "user-1", Email: "a@x.com"}

	t.Run("round trip", func(t *testing.T) {
		signed, err := issuer.Issue(user)
		require.NoError(t, err)

		claims, err := issuer.Verify(signed)
		require.NoError(t, err)
		require.Equal(t, "user-1", claims.Subject)
	})

	t.Run("valid just before expiry", func(t *testing.T) {
		issuedAt := time.Now()
		withNow(t, issuedAt)
		signed, err := issuer.Issue(user)
		require.NoError(t, err)

		withNow(t, issuedAt.Add(testTTL-time.Minute))
		_, err = issuer.Verify(signed)
		require.NoError(t, err)
	})

	t.Run("expired just after expiry", func(t *testing.T) {
		issuedAt := time.Now()
		withNow(t, issuedAt)
		signed, err := issuer.Issue(user)
		require.NoError(t, err)

		withNow(t, issuedAt.Add(testTTL+time.Minute))
		_, err = issuer.Verify(signed)
		require.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		signed, err := issuer.Issue(user)
		require.NoError(t, err)

		other := newIssuer(t, "different-secret")
		_, err = other.Verify(signed)
		require.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := issuer.Verify("not-a-jwt")
		require.ErrorIs(t, err, apperrors.ErrInvalidToken)

		_, err = issuer.Verify("")
		require.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("tampered token", func(t *testing.T) {
		signed, err := issuer.Issue(user)
		require.NoError(t, err)

		tampered := signed[:len(signed)-2] + "xx"
		_, err = issuer.Verify(tampered)
		require.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("expired and forged yield the same error", func(t *testing.T) {
		issuedAt := time.Now()
		withNow(t, issuedAt)
		signed, err := issuer.Issue(user)
		require.NoError(t, err)

		withNow(t, issuedAt.Add(testTTL+time.Minute))
		_, expiredErr := issuer.Verify(signed)

		other := newIssuer(t, "different-secret")
		_, forgedErr := other.Verify(signed)

		require.Equal(t, expiredErr, forgedErr)
	})
}
