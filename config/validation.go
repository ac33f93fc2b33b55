package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	lines := make([]string, len(e))
	for i, v := range e {
		lines[i] = v.Error()
	}
	return strings.Join(lines, "\n")
}

var storeDrivers = map[string]bool{
	StoreMemory:   true,
	StorePostgres: true,
	StoreSQLite:   true,
}

// ValidateConfig checks the configuration and reports every invalid field.
// A missing Gemini key is allowed; the providers answer from their fallbacks.
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: "must be a port number between 1 and 65535"})
	}

	if !storeDrivers[cfg.StoreDriver] {
		errs = append(errs, ValidationError{
			Field:   "STORE_DRIVER",
			Message: fmt.Sprintf("unknown driver %q, expected memory, postgres or sqlite", cfg.StoreDriver),
		})
	}
	if cfg.StoreDriver == StorePostgres && cfg.DatabaseURL == "" {
		errs = append(errs, ValidationError{Field: "DATABASE_URL", Message: "required when STORE_DRIVER is postgres"})
	}

	if cfg.GenAITimeout <= 0 {
		errs = append(errs, ValidationError{Field: "GENAI_TIMEOUT", Message: "must be positive"})
	}
	if cfg.RateLimitPerHour < 0 {
		errs = append(errs, ValidationError{Field: "RATE_LIMIT_PER_HOUR", Message: "must not be negative"})
	}

	if GetEnvironment() == Production && cfg.GeminiAPIKey == "" {
		log.Printf("[Config] GEMINI_API_KEY is not set; AI features will use fallback content")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
