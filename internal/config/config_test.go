package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_DATABASE", "listings")
	t.Setenv("DB_USER", "app")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "mysql", cfg.DBType)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 5, cfg.DBConnectionLimit)
	assert.Equal(t, 24, cfg.TokenTTLHours)
	assert.False(t, cfg.DBSeed)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("DB_CONNECTION_LIMIT", "20")
	t.Setenv("TOKEN_TTL_HOURS", "1")
	t.Setenv("DB_SEED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, 20, cfg.DBConnectionLimit)
	assert.Equal(t, 1, cfg.TokenTTLHours)
	assert.True(t, cfg.DBSeed)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("DB_DATABASE", "")
	t.Setenv("DB_USER", "app")
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_DATABASE", "listings")
	t.Setenv("JWT_SECRET", "")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadSqliteNeedsNoUser(t *testing.T) {
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_DATABASE", "listings.db")
	t.Setenv("DB_USER", "")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBType)
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_CONNECTION_LIMIT", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.DBConnectionLimit)
}
