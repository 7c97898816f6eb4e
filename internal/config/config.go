package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by the server and tools. Values come
// from the process environment, optionally primed from a .env file.
type Config struct {
	Port        string
	DBPath      string // sqlite file used when DatabaseURL is empty
	DatabaseURL string // postgres DSN
	SeedPath    string
	RedisAddr   string
	RedisPass   string
	RouteTTL    time.Duration
	ORSAPIKey   string
	ORSBaseURL  string
	ORSCountry  string
	ORSAttempts int // tries per ORS request, including the first
	LogLevel    string
	LogFormat   string // "console" or "json"
}

// Load reads .env when present and returns the resolved configuration.
// A missing .env is not an error.
func Load() (Config, error) {
	envLoaded := godotenv.Load() == nil

	ttl, err := GetDuration("ROUTE_CACHE_TTL", 24*time.Hour)
	if err != nil {
		return Config{}, err
	}

	attempts, err := GetInt("ORS_MAX_ATTEMPTS", 4)
	if err != nil {
		return Config{}, err
	}
	if attempts < 1 {
		return Config{}, fmt.Errorf("config: ORS_MAX_ATTEMPTS must be >= 1, got %d", attempts)
	}

	cfg := Config{
		Port:        Get("PORT", "8080"),
		DBPath:      Get("DB_PATH", "data/app.db"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SeedPath:    Get("SEED_PATH", "data/seeds/catalog.yaml"),
		RedisAddr:   strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		RouteTTL:    ttl,
		ORSAPIKey:   strings.TrimSpace(os.Getenv("ORS_API_KEY")),
		ORSBaseURL:  Get("ORS_BASE_URL", "https://api.openrouteservice.org"),
		ORSCountry:  os.Getenv("ORS_COUNTRY"),
		ORSAttempts: attempts,
		LogLevel:    Get("LOG_LEVEL", "info"),
		LogFormat:   Get("LOG_FORMAT", "console"),
	}

	if !envLoaded {
		Logger().Debug().Msg("no .env file found (using environment variables)")
	}

	return cfg, nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not an integer: %w", key, v, err)
	}
	return n, nil
}

func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not a duration: %w", key, v, err)
	}
	return d, nil
}
