package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration, read from the environment.
type Config struct {
	Env        string   `envconfig:"APP_ENV" default:"development"`
	Port       int      `envconfig:"PORT" default:"3000"`
	StaticDir  string   `envconfig:"STATIC_DIR" default:"."`
	SampleSize int      `envconfig:"SAMPLE_SIZE" default:"5"`
	Origins    []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	ReadTimeout     time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"1m"`
	ShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"10s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.SampleSize < 1 {
		return fmt.Errorf("SAMPLE_SIZE must be at least 1")
	}
	if len(c.CORSOrigins()) == 0 {
		return fmt.Errorf("at least one CORS origin must be specified")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) ServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// CORSOrigins returns the configured origins with blanks removed.
func (c *Config) CORSOrigins() []string {
	origins := make([]string, 0, len(c.Origins))
	for _, origin := range c.Origins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
