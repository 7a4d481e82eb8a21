package auth_test

import (
	"strings"
	"testing"

	"github.com/jrsteele09/go-identity-service/auth"
	apperrors "github.com/jrsteele09/go-identity-service/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestValidator_ValidateSignup(t *testing.T) {
	v := auth.NewValidator()

	t.Run("valid signup", func(t *testing.T) {
		normalized, err := v.ValidateSignup(auth.SignupRequest{
			Name:     "Al",
			Email:    "a@x.com",
			Password: "Abcdefg1",
		})
		require.NoError(t, err)
		require.Equal(t, "Al", normalized.Name)
		require.Equal(t, "a@x.com", normalized.Email)
	})

	t.Run("normalizes name and email", func(t *testing.T) {
		normalized, err := v.ValidateSignup(auth.SignupRequest{
			Name:     "  Alice  ",
			Email:    "  Alice@Example.COM ",
			Password: "Abcdefg1",
		})
		require.NoError(t, err)
		require.Equal(t, "Alice", normalized.Name)
		require.Equal(t, "alice@example.com", normalized.Email)
	})

	t.Run("name too short", func(t *testing.T) {
		_, err := v.ValidateSignup(auth.SignupRequest{
			Name:     "A",
			Email:    "a@x.com",
			Password: "Abcdefg1",
		})
		requireFieldMessages(t, err, "name", "Name must be at least 2 characters")
	})

	t.Run("name too long", func(t *testing.T) {
		_, err := v.ValidateSignup(auth.SignupRequest{
			Name:     strings.Repeat("a", 51),
			Email:    "a@x.com",
			Password: "Abcdefg1",
		})
		requireFieldMessages(t, err, "name", "Name must be less than 50 characters")
	})

	t.Run("invalid email", func(t *testing.T) {
		for _, email := range []string{"", "bad", "no-at.com", "a@nodot", "a b@x.com"} {
			_, err := v.ValidateSignup(auth.SignupRequest{
				Name:     "Al",
				Email:    email,
				Password: "Abcdefg1",
			})
			requireFieldMessages(t, err, "email", "Invalid email address")
		}
	})

	t.Run("password too short collects both messages", func(t *testing.T) {
		_, err := v.ValidateSignup(auth.SignupRequest{
			Name:     "Al",
			Email:    "a@x.com",
			Password: "short",
		})
		requireFieldMessages(t, err, "password",
			"Password must be at least 8 characters",
			"Password must contain at least one lowercase letter, one uppercase letter, and one number",
		)
	})

	t.Run("missing character classes", func(t *testing.T) {
		for _, password := range []string{"abcdefg1", "ABCDEFG1", "Abcdefgh"} {
			_, err := v.ValidateSignup(auth.SignupRequest{
				Name:     "Al",
				Email:    "a@x.com",
				Password: password,
			})
			requireFieldMessages(t, err, "password",
				"Password must contain at least one lowercase letter, one uppercase letter, and one number")
		}
	})

	t.Run("all fields invalid reported together", func(t *testing.T) {
		_, err := v.ValidateSignup(auth.SignupRequest{
			Name:     "A",
			Email:    "bad",
			Password: "short",
		})
		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Len(t, validationErr.Fields, 3)
		require.NotEmpty(t, validationErr.Fields["name"])
		require.NotEmpty(t, validationErr.Fields["email"])
		require.NotEmpty(t, validationErr.Fields["password"])
	})
}

func TestValidator_ValidateLogin(t *testing.T) {
	v := auth.NewValidator()

	t.Run("valid login", func(t *testing.T) {
		normalized, err := v.ValidateLogin(auth.LoginRequest{
			Email:    "User@Example.com",
			Password: "anything",
		})
		require.NoError(t, err)
		require.Equal(t, "user@example.com", normalized.Email)
	})

	t.Run("weak historical password still accepted", func(t *testing.T) {
		_, err := v.ValidateLogin(auth.LoginRequest{
			Email:    "a@x.com",
			Password: "x",
		})
		require.NoError(t, err)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := v.ValidateLogin(auth.LoginRequest{
			Email:    "bad",
			Password: "anything",
		})
		requireFieldMessages(t, err, "email", "Invalid email address")
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := v.ValidateLogin(auth.LoginRequest{
			Email:    "a@x.com",
			Password: "",
		})
		requireFieldMessages(t, err, "password", "Password is required")
	})
}

func requireFieldMessages(t *testing.T, err error, field string, messages ...string) {
	t.Helper()
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, messages, validationErr.Fields[field])
}
