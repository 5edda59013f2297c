package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := writeConfig(t, `
database:
  driver: sqlite
jwt:
  secret: test-secret
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, 5*time.Minute, cfg.Progress.SummaryCacheTTL)
	assert.Equal(t, 600, cfg.RateLimit.MaxRequests)

	loc, err := cfg.Progress.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoadConfigRejectsShortSecretInRelease(t *testing.T) {
	dir := writeConfig(t, `
server:
  mode: release
database:
  driver: sqlite
jwt:
  secret: short
`)

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Driver: "mongodb"},
		JWT:      JWTConfig{Secret: "s"},
	}
	assert.Error(t, cfg.Validate())

	cfg.Database.Driver = "postgres"
	cfg.Progress.Timezone = "Mars/Olympus_Mons"
	assert.Error(t, cfg.Validate())

	cfg.Progress.Timezone = "Europe/Berlin"
	assert.NoError(t, cfg.Validate())

	cfg.Server.Mode = "production"
	assert.Error(t, cfg.Validate())
}
