package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"APP_ADDR", "DB_DSN", "DB_TIMEOUT", "JWT_SECRET", "FINE_SWEEP_INTERVAL", "TIMEZONE", "CORS_ORIGINS", "OPENLIBRARY_URL", "OPENLIBRARY_RPS", "TRUST_PROXY"} {
		t.Setenv(k, "")
	}

	cfg, err := Load(false)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, defaultDSN, cfg.DSN)
	assert.Equal(t, 3*time.Second, cfg.DBTimeout)
	assert.Equal(t, time.Duration(0), cfg.FineSweepInterval)
	assert.Equal(t, "db/migrations", cfg.MigrationsDir)
	assert.Nil(t, cfg.CORSOrigins)
	assert.Equal(t, "https://openlibrary.org", cfg.OpenLibraryURL)
	assert.Equal(t, 1.0, cfg.OpenLibraryRPS)
	assert.False(t, cfg.TrustProxy)
}

func TestLoad_RequiresSecretForAPI(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "")

	_, err := Load(true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_ParsesOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("FINE_SWEEP_INTERVAL", "1h")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("RATE_LIMIT_BURST", "7")
	t.Setenv("TRUST_PROXY", "true")

	cfg, err := Load(true)
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.FineSweepInterval)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 7, cfg.RateLimitBurst)
	assert.True(t, cfg.TrustProxy)
}

func TestLoad_RejectsBadDuration(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_TIMEOUT", "soon")

	_, err := Load(false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_TIMEOUT")
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".env"), []byte("DB_DSN=from_file\n"), 0o644))

	t.Setenv("DB_DSN", "from_env")
	t.Chdir(tmp)

	LoadEnvFiles()

	assert.Equal(t, "from_env", os.Getenv("DB_DSN"))
}

func TestRedactDSN(t *testing.T) {
	assert.Equal(t, "postgres://***@db:5432/x", RedactDSN("postgres://u:p@db:5432/x"))
	assert.Equal(t, "not-a-url", RedactDSN("not-a-url"))
}
