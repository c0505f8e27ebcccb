// Package config resolves settings from the environment, with an optional
// .env file loaded first so local runs need no exported variables.
package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	BaseURL string
	APIKey  string

	Workers    int
	Timeout    time.Duration
	MaxTokens  int
	NPrompts   int
	MaxRetries int
	RetryDelay time.Duration
}

// Load reads .env if present, then the process environment. Generation
// credentials are validated by ValidateRun, not here, so scoring-only
// commands work without an endpoint configured.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	for _, key := range []string{"BASE_URL", "API_KEY", "WORKERS", "TIMEOUT_SECONDS", "MAX_TOKENS", "N_PROMPTS", "MAX_RETRIES", "RETRY_DELAY_SECONDS"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	v.SetDefault("WORKERS", 8)
	v.SetDefault("TIMEOUT_SECONDS", 480)
	v.SetDefault("MAX_TOKENS", 8096)
	v.SetDefault("N_PROMPTS", 300)
	v.SetDefault("MAX_RETRIES", 5)
	v.SetDefault("RETRY_DELAY_SECONDS", 5)

	return &Config{
		BaseURL:    v.GetString("BASE_URL"),
		APIKey:     v.GetString("API_KEY"),
		Workers:    v.GetInt("WORKERS"),
		Timeout:    time.Duration(v.GetInt("TIMEOUT_SECONDS")) * time.Second,
		MaxTokens:  v.GetInt("MAX_TOKENS"),
		NPrompts:   v.GetInt("N_PROMPTS"),
		MaxRetries: v.GetInt("MAX_RETRIES"),
		RetryDelay: time.Duration(v.GetInt("RETRY_DELAY_SECONDS")) * time.Second,
	}, nil
}

// ValidateRun checks the fields only generation runs need.
func (c *Config) ValidateRun() error {
	if c.BaseURL == "" {
		return errors.New("config: BASE_URL is required")
	}
	if c.APIKey == "" {
		return errors.New("config: API_KEY is required")
	}
	return nil
}
