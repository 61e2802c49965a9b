package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// DevelopmentAPIBase is the recommender address used outside production builds.
	DevelopmentAPIBase = "http://localhost:5000"
)

var ErrMissingAPIBase = errors.New("RECOMMENDER_API_URL is required in production")

type Config struct {
	Env         string
	Server      ServerConfig
	Recommender RecommenderConfig
	Session     SessionConfig
	Catalog     CatalogConfig
	Logger      LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type RecommenderConfig struct {
	APIBase             string
	Timeout             time.Duration
	HealthCheckInterval time.Duration
}

// SessionConfig controls how long idle wizard sessions are kept.
type SessionConfig struct {
	IdleTimeout     time.Duration
	CleanupInterval time.Duration
}

// CatalogConfig configures the reference catalog backend served by `arbotique catalog`.
type CatalogConfig struct {
	Port string
	TopK int
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work too (Docker/K8s)
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	env := strings.ToLower(getEnv("APP_ENV", EnvDevelopment))
	apiBase, err := resolveAPIBase(env, os.Getenv("RECOMMENDER_API_URL"))
	if err != nil {
		return nil, err
	}

	readTimeout := getEnvInt("SERVER_READ_TIMEOUT", 30)
	writeTimeout := getEnvInt("SERVER_WRITE_TIMEOUT", 30)
	recTimeout := getEnvInt("RECOMMENDER_TIMEOUT_SECONDS", 15)
	healthInterval := getEnvInt("HEALTH_CHECK_INTERVAL_SECONDS", 30)
	sessionIdle := getEnvInt("SESSION_IDLE_TIMEOUT_MINUTES", 30)
	sessionCleanup := getEnvInt("SESSION_CLEANUP_INTERVAL_SECONDS", 60)
	topK := getEnvInt("CATALOG_TOP_K", 8)

	return &Config{
		Env: env,
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Recommender: RecommenderConfig{
			APIBase:             apiBase,
			Timeout:             time.Duration(recTimeout) * time.Second,
			HealthCheckInterval: time.Duration(healthInterval) * time.Second,
		},
		Session: SessionConfig{
			IdleTimeout:     time.Duration(sessionIdle) * time.Minute,
			CleanupInterval: time.Duration(sessionCleanup) * time.Second,
		},
		Catalog: CatalogConfig{
			Port: getEnv("CATALOG_PORT", "5000"),
			TopK: topK,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

// resolveAPIBase picks the development literal unless running in production,
// where the value must come from the build environment.
func resolveAPIBase(env, fromEnv string) (string, error) {
	fromEnv = strings.TrimRight(strings.TrimSpace(fromEnv), "/")
	if env != EnvProduction {
		if fromEnv != "" {
			return fromEnv, nil
		}
		return DevelopmentAPIBase, nil
	}
	if fromEnv == "" {
		return "", ErrMissingAPIBase
	}
	return fromEnv, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt parses a positive integer, falling back to defaultValue when the
// variable is unset, malformed or not positive.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
