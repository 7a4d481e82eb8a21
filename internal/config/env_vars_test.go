package config_test

import (
	"testing"

	"github.com/jrsteele09/go-identity-service/internal/config"
	"github.com/stretchr/testify/require"
)

func TestEnvVarsGetPort(t *testing.T) {
	t.Run("defaults to 8080", func(t *testing.T) {
		t.Setenv("PORT", "")
		require.Equal(t, ":8080", config.EnvVars{}.GetPort())
	})

	t.Run("bare port is prefixed with a colon", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		require.Equal(t, ":9090", config.EnvVars{}.GetPort())
	})

	t.Run("already prefixed port is left alone", func(t *testing.T) {
		t.Setenv("PORT", ":9090")
		require.Equal(t, ":9090", config.EnvVars{}.GetPort())
	})
}
