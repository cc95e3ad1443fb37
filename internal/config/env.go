package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	apierrors "groq-scribe/internal/api/errors"
)

// Default limits. Groq caps whisper uploads at 25 MiB; transcribing a long
// recording can take tens of seconds, so the call timeout stays generous.
const (
	DefaultMaxUploadBytes = 25 << 20
	DefaultCallTimeout    = 60 * time.Second
)

// Config holds everything the server reads from the environment. The Groq key
// is required for transcription, the Gemini key only gates the translation
// action.
type Config struct {
	GroqAPIKey   string
	GeminiAPIKey string

	Host        string
	Port        string
	Environment string

	MaxUploadBytes int64
	CallTimeout    time.Duration

	// MaxRetries is an extension point for transient-failure policy. It is
	// read from the environment but the default of zero (no retry) is the
	// only supported behavior today.
	MaxRetries int
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error; keys may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// Load reads the configuration from the environment. It never fails on a
// missing credential; feature availability is checked lazily per call so the
// user sees a clear configuration error instead of a startup crash.
func Load() *Config {
	cfg := &Config{
		GroqAPIKey:     strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		GeminiAPIKey:   strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		Host:           envOrDefault("SCRIBE_HOST", "0.0.0.0"),
		Port:           envOrDefault("SCRIBE_PORT", "8080"),
		Environment:    envOrDefault("SCRIBE_ENV", "development"),
		MaxUploadBytes: DefaultMaxUploadBytes,
		CallTimeout:    DefaultCallTimeout,
	}

	if v := os.Getenv("SCRIBE_MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxUploadBytes = n
		}
	}
	if v := os.Getenv("SCRIBE_CALL_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CallTimeout = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("SCRIBE_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}

// RequireGroqKey re-validates the transcription credential before a call.
func (c *Config) RequireGroqKey() error {
	if c.GroqAPIKey == "" {
		return apierrors.NewConfigurationError(
			"GROQ_API_KEY environment variable not found. Please set your API key.")
	}
	return nil
}

// TranslationEnabled reports whether the optional translation credential is present.
func (c *Config) TranslationEnabled() bool {
	return c.GeminiAPIKey != ""
}

// Addr returns the host:port the server binds to.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
