package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config is the process configuration, built once at startup and passed to the components that need it
type Config struct {
	// Provider selects the analysis backend: openai, gemini or ollama
	Provider string        `env:"ANALYSIS_PROVIDER" envDefault:"openai"`
	Model    string        `env:"ANALYSIS_MODEL"`
	Timeout  time.Duration `env:"ANALYSIS_TIMEOUT" envDefault:"30s"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	OllamaURL     string `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`

	Port           string `env:"PORT" envDefault:"8888"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the process environment into a validated Config
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment
func LoadFrom(environment map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the selected provider can be reached with the given settings.
// A missing credential is fatal at startup.
func (c *Config) Validate() error {
	switch c.Provider {
	case "openai":
		if c.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY environment variable not set")
		}
	case "gemini":
		if c.GeminiAPIKey == "" {
			return errors.New("GEMINI_API_KEY environment variable not set")
		}
	case "ollama":
		if c.OllamaURL == "" {
			return errors.New("OLLAMA_URL environment variable not set")
		}
	default:
		return fmt.Errorf("unsupported provider: %s", c.Provider)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("ANALYSIS_TIMEOUT must be positive, got %s", c.Timeout)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog level
func (c *Config) SlogLevel() slog.Level {
	return ParseLevel(c.LogLevel)
}

// ParseLevel accepts debug, info, warn or error, defaulting to info
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
