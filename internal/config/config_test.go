package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "168h", cfg.JWT.AccessTokenExpiration)
	assert.Equal(t, "720h", cfg.JWT.RefreshTokenExpiration)
	assert.Equal(t, "degreetrack.app", cfg.JWT.Issuer)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
  mode: "production"
jwt:
  secret: "file-secret"
  access_token_expiration: "24h"
logging:
  level: "debug"
  format: "text"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, "24h", cfg.JWT.AccessTokenExpiration)
	// Untouched keys keep their defaults
	assert.Equal(t, "720h", cfg.JWT.RefreshTokenExpiration)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
jwt:
  secret: "file-secret"
`)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestLoadConfig_MissingSecretFails(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret is required")
}

func TestLoadConfig_InvalidExpirationFails(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: "s"
  access_token_expiration: "one week"
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access token expiration")
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("DEGREETRACK_TEST_STR", "value")
	assert.Equal(t, "value", GetEnv("DEGREETRACK_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("DEGREETRACK_TEST_UNSET", "fallback"))

	t.Setenv("DEGREETRACK_TEST_INT", "42")
	assert.Equal(t, 42, GetEnvAsInt("DEGREETRACK_TEST_INT", 7))
	assert.Equal(t, 7, GetEnvAsInt("DEGREETRACK_TEST_UNSET", 7))

	t.Setenv("DEGREETRACK_TEST_BOOL", "yes")
	assert.True(t, GetEnvAsBool("DEGREETRACK_TEST_BOOL", false))
	assert.False(t, GetEnvAsBool("DEGREETRACK_TEST_UNSET", false))
}
