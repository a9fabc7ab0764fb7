package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// CasdoorConfig holds connection settings for the Casdoor identity provider.
type CasdoorConfig struct {
	Endpoint     string
	ClientID     string
	ClientSecret string
	Cert         string
	Organization string
	Application  string
}

// SpacesConfig holds credentials for the S3-compatible blob store that
// receives content uploads.
type SpacesConfig struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	// Public base URL that retrieval links are built from. Defaults to
	// the endpoint when empty.
	CDNBaseURL string
}

type Config struct {
	Environment string
	Port        string
	LogLevel    slog.Level

	DatabaseURL string
	RedisURL    string

	// Kafka brokers for the catalog change-event feed. When empty the
	// service falls back to the in-process event bus.
	KafkaBrokers []string

	Casdoor CasdoorConfig
	Spaces  SpacesConfig

	// SuperAdminEmail always resolves to the admin role, regardless of
	// what the profile record says.
	SuperAdminEmail string

	// LockEnforced controls whether locked content withholds file URLs
	// from anonymous viewers.
	LockEnforced bool
}

// LoadConfig reads configuration from the environment, loading a local
// .env file first when one exists.
func LoadConfig() (*Config, error) {
	// Missing .env is fine in production; env vars are already set.
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8080"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		Casdoor: CasdoorConfig{
			Endpoint:     os.Getenv("CASDOOR_ENDPOINT"),
			ClientID:     os.Getenv("CASDOOR_CLIENT_ID"),
			ClientSecret: os.Getenv("CASDOOR_CLIENT_SECRET"),
			Cert:         os.Getenv("CASDOOR_CERT"),
			Organization: getEnv("CASDOOR_ORGANIZATION", "boldscholars"),
			Application:  getEnv("CASDOOR_APPLICATION", "platform"),
		},
		Spaces: SpacesConfig{
			Endpoint:   os.Getenv("SPACES_ENDPOINT"),
			Region:     getEnv("SPACES_REGION", "us-east-1"),
			Bucket:     getEnv("SPACES_BUCKET", "boldscholars-content"),
			AccessKey:  os.Getenv("SPACES_ACCESS_KEY"),
			SecretKey:  os.Getenv("SPACES_SECRET_KEY"),
			CDNBaseURL: os.Getenv("SPACES_CDN_BASE_URL"),
		},
		SuperAdminEmail: getEnv("SUPER_ADMIN_EMAIL", "boldscholars@gmail.com"),
		LockEnforced:    getBoolEnv("CONTENT_LOCK_ENFORCED", true),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
