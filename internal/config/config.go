package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Provider names accepted in COACH_PROVIDER.
const (
	ProviderOpenAI = "openai"
	ProviderQwen   = "qwen"
)

// Config holds all environment backed configuration for the coaching service.
type Config struct {
	// HTTP Server
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"9091"`
	DatabaseURL string `env:"DATABASE_URL,notEmpty"`

	// Completion provider. A missing API key is not fatal: the coach runs in
	// degraded mode and answers from the fallback responder.
	CoachProvider     string        `env:"COACH_PROVIDER" envDefault:"openai"`
	OpenAIBaseURL     string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	OpenAIAPIKey      string        `env:"OPENAI_API_KEY"`
	OpenAIModel       string        `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	QwenBaseURL       string        `env:"QWEN_BASE_URL" envDefault:"https://dashscope.aliyuncs.com/api/v1"`
	QwenAPIKey        string        `env:"QWEN_API_KEY"`
	QwenModel         string        `env:"QWEN_MODEL" envDefault:"qwen2.5-72b-instruct"`
	CompletionTimeout time.Duration `env:"COMPLETION_TIMEOUT" envDefault:"60s"`

	// Coaching behaviour
	HistoryWindow int `env:"HISTORY_WINDOW" envDefault:"10"`
	TopStrengths  int `env:"TOP_STRENGTHS" envDefault:"5"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// Features
	AutoMigrate bool `env:"AUTO_MIGRATE" envDefault:"true"`
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.CoachProvider = strings.ToLower(strings.TrimSpace(cfg.CoachProvider))
	switch cfg.CoachProvider {
	case ProviderOpenAI, ProviderQwen:
	default:
		return nil, fmt.Errorf("unsupported COACH_PROVIDER %q", cfg.CoachProvider)
	}

	if _, err := url.ParseRequestURI(cfg.OpenAIBaseURL); err != nil {
		return nil, fmt.Errorf("invalid OPENAI_BASE_URL: %w", err)
	}
	if _, err := url.ParseRequestURI(cfg.QwenBaseURL); err != nil {
		return nil, fmt.Errorf("invalid QWEN_BASE_URL: %w", err)
	}

	if cfg.HistoryWindow < 1 {
		return nil, fmt.Errorf("HISTORY_WINDOW must be positive, got %d", cfg.HistoryWindow)
	}
	if cfg.TopStrengths < 1 {
		return nil, fmt.Errorf("TOP_STRENGTHS must be positive, got %d", cfg.TopStrengths)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	return cfg, nil
}

// ProviderAPIKey returns the API key for the configured provider.
func (c *Config) ProviderAPIKey() string {
	if c.CoachProvider == ProviderQwen {
		return c.QwenAPIKey
	}
	return c.OpenAIAPIKey
}
