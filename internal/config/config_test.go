package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDBConfig_Defaults(t *testing.T) {
	cfg, err := LoadDBConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Driver)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, 10, cfg.MaxOpenConns)
	assert.Contains(t, cfg.DSN(), "dbname=regular_dicers_backend")
}

func TestLoadDBConfig_DatabaseURLOverridesDSN(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db/dicers")

	cfg, err := LoadDBConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db/dicers", cfg.DSN())
}

func TestLoadDBConfig_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")

	cfg, err := LoadDBConfig()
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.Port)
}

func TestLoadDBConfig_UnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	_, err := LoadDBConfig()
	require.Error(t, err)
}

func TestLoadAppConfig(t *testing.T) {
	t.Setenv("SEED_COUNT", "25")
	t.Setenv("SEED_VALUE", "42")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadAppConfig()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.SeedCount)
	assert.Equal(t, int64(42), cfg.SeedValue)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, ":50051", cfg.GRPCAddr)
}

func TestLoadAppConfig_RejectsBadLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	_, err := LoadAppConfig()
	require.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	ok, err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.False(t, ok)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DICERS_TEST_KEY=from-file\n"), 0o600))
	t.Setenv("DICERS_TEST_KEY", "")
	require.NoError(t, os.Unsetenv("DICERS_TEST_KEY"))

	ok, err = LoadEnvFile(path)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "from-file", os.Getenv("DICERS_TEST_KEY"))
}
