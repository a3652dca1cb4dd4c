package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultSecret = "your-secret-key-change-this-in-production"

type Config struct {
	Port             string
	GinMode          string
	SecretKey        []byte
	FlashTTL         time.Duration
	RecentPostsLimit int
	Database         DatabaseConfig
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Path     string
	LogLevel string
}

// Load reads the optional env files and then the process environment.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Println("No .env file found")
	}

	limit, err := intEnv("RECENT_POSTS_LIMIT", 5)
	if err != nil {
		return Config{}, err
	}
	if limit < 1 {
		return Config{}, fmt.Errorf("RECENT_POSTS_LIMIT must be positive, got %d", limit)
	}

	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		GinMode:          getEnv("GIN_MODE", "debug"),
		SecretKey:        []byte(getEnv("SECRET_KEY", defaultSecret)),
		FlashTTL:         5 * time.Minute,
		RecentPostsLimit: limit,
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", DriverPostgres),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "blogly"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Path:     getEnv("DB_PATH", "blogly.db"),
			LogLevel: getEnv("DB_LOG_LEVEL", "warn"),
		},
	}

	switch cfg.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
