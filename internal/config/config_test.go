package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("USERAPI_AUTH_JWTSECRET", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("USERAPI_AUTH_JWTSECRET", "unit-test-secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:8080", cfg.Server.Addr)
	require.Equal(t, "data/users.db", cfg.Database.Path)
	require.Equal(t, "unit-test-secret", cfg.Auth.JWTSecret)
	require.Equal(t, 24*60, cfg.Auth.TokenTTLMinutes)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("USERAPI_AUTH_JWTSECRET", "unit-test-secret")
	t.Setenv("USERAPI_SERVER_ADDR", "127.0.0.1:9090")
	t.Setenv("USERAPI_AUTH_TOKENTTLMINUTES", "60")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	require.Equal(t, 60, cfg.Auth.TokenTTLMinutes)
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("USERAPI_AUTH_JWTSECRET", "unit-test-secret")
	t.Setenv("USERAPI_AUTH_TOKENTTLMINUTES", "0")

	_, err := Load()
	require.Error(t, err)
}
