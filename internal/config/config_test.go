package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "POSTGRES_URL", "SEED_CATEGORIES", "REDIS_URL", "CATEGORY_CACHE_TTL", "DB_NAME"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Contains(t, cfg.PostgresURL, "dbname=trivia")
	assert.True(t, cfg.SeedCategories)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 5*time.Minute, cfg.CategoryCacheTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", DriverSqlite)
	t.Setenv("SEED_CATEGORIES", "false")
	t.Setenv("CATEGORY_CACHE_TTL", "30s")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, DriverSqlite, cfg.DBDriver)
	assert.False(t, cfg.SeedCategories)
	assert.Equal(t, 30*time.Second, cfg.CategoryCacheTTL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestLoadIgnoresBadValues(t *testing.T) {
	t.Setenv("SEED_CATEGORIES", "maybe")
	t.Setenv("CATEGORY_CACHE_TTL", "-1m")

	cfg := Load()

	assert.True(t, cfg.SeedCategories)
	assert.Equal(t, 5*time.Minute, cfg.CategoryCacheTTL)
}
