package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultServerPort       = "8080"
	defaultGeminiModel      = "gemini-2.5-flash"
	defaultGeminiPlanModel  = "gemini-2.5-pro"
	defaultGenAITimeout     = 20 * time.Second
	defaultStoreDriver      = StoreMemory
	defaultSQLitePath       = "fitgenius.db"
	defaultRateLimitPerHour = 30
)

// Store drivers accepted in STORE_DRIVER
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost  string
	ServerPort  string
	CORSOrigins []string

	// Generative model configuration
	GeminiAPIKey    string
	GeminiModel     string
	GeminiPlanModel string
	GenAIBaseURL    string
	GenAITimeout    time.Duration

	// Persistence
	StoreDriver string
	DatabaseURL string

	// Rate limiting; an empty RedisURL or a zero limit disables it
	RedisURL         string
	RateLimitPerHour int
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.ServerHost, c.ServerPort)
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	if env == Development {
		if err := loadDotEnv(".env"); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}

	if cfg.GeminiAPIKey == "" {
		key, err := geminiKeyFromFile(env)
		if err != nil {
			return nil, err
		}
		cfg.GeminiAPIKey = key
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// loadDotEnv reads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func fromEnv() (*Config, error) {
	cfg := &Config{
		ServerHost:      os.Getenv("SERVER_HOST"),
		ServerPort:      getEnv("SERVER_PORT", defaultServerPort),
		CORSOrigins:     splitList(os.Getenv("CORS_ORIGINS")),
		GeminiAPIKey:    strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:     getEnv("GEMINI_MODEL", defaultGeminiModel),
		GeminiPlanModel: getEnv("GEMINI_PLAN_MODEL", defaultGeminiPlanModel),
		GenAIBaseURL:    os.Getenv("GENAI_BASE_URL"),
		GenAITimeout:    defaultGenAITimeout,
		StoreDriver:     strings.ToLower(getEnv("STORE_DRIVER", defaultStoreDriver)),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
	}

	if raw := os.Getenv("GENAI_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, ValidationError{Field: "GENAI_TIMEOUT", Message: err.Error()}
		}
		cfg.GenAITimeout = d
	}

	cfg.RateLimitPerHour = defaultRateLimitPerHour
	if raw := os.Getenv("RATE_LIMIT_PER_HOUR"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, ValidationError{Field: "RATE_LIMIT_PER_HOUR", Message: "must be an integer"}
		}
		cfg.RateLimitPerHour = n
	}

	if cfg.StoreDriver == StoreSQLite && cfg.DatabaseURL == "" {
		cfg.DatabaseURL = defaultSQLitePath
	}
	return cfg, nil
}

// geminiKeyFromFile resolves the API key from GEMINI_API_KEY_FILE, or from
// the gemini_api_key Docker secret in production
func geminiKeyFromFile(env Environment) (string, error) {
	if path := os.Getenv("GEMINI_API_KEY_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read GEMINI_API_KEY_FILE: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	if env == Production {
		return readSecret("gemini_api_key"), nil
	}
	return "", nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
