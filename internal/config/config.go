package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

type Config struct {
	Port string

	DBDriver    string
	PostgresURL string
	SqlitePath  string

	SeedCategories bool

	RedisURL         string
	CategoryCacheTTL time.Duration

	GinMode       string
	EnableSwagger bool
	LogLevel      string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	// a missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DBDriver:         getEnv("DB_DRIVER", DriverPostgres),
		PostgresURL:      getEnv("POSTGRES_URL", postgresDSN()),
		SqlitePath:       getEnv("SQLITE_PATH", "trivia.db"),
		SeedCategories:   getBool("SEED_CATEGORIES", true),
		RedisURL:         getEnv("REDIS_URL", ""),
		CategoryCacheTTL: getDuration("CATEGORY_CACHE_TTL", 5*time.Minute),
		GinMode:          getEnv("GIN_MODE", "debug"),
		EnableSwagger:    getBool("ENABLE_SWAGGER", false),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

func postgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "trivia"),
	)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	val, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return val
}

func getDuration(key string, fallback time.Duration) time.Duration {
	val, err := time.ParseDuration(os.Getenv(key))
	if err != nil || val <= 0 {
		return fallback
	}
	return val
}
