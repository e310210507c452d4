package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/emergentai/formdocs/internal/components"
)

// Config holds all website configuration
type Config struct {
	// Server settings
	Port            string        `env:"WEBSITE_PORT" envDefault:"4002"`
	Address         string        `env:"WEBSITE_ADDRESS" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	Site SiteConfig

	// Number of feature cards per grid row; must divide the 12-unit grid
	FeatureColumns int `env:"FEATURE_COLUMNS" envDefault:"3"`

	// How long a rendered landing page is reused; 0 disables caching
	PageCacheTTL time.Duration `env:"PAGE_CACHE_TTL" envDefault:"5m"`
}

// SiteConfig holds the text shown around the page sections
type SiteConfig struct {
	Title     string `env:"SITE_TITLE" envDefault:"Formdocs"`
	Tagline   string `env:"SITE_TAGLINE" envDefault:"Controlled forms for React and React Native"`
	DocsPath  string `env:"SITE_DOCS_PATH" envDefault:"/docs/intro"`
	RepoURL   string `env:"SITE_REPO_URL"`
	Copyright string `env:"SITE_COPYRIGHT" envDefault:"Copyright © Formdocs contributors"`
}

// Addr returns the listen address, e.g. ":4002" or "127.0.0.1:4002".
func (c *Config) Addr() string {
	return c.Address + c.Port
}

// Validate checks values that struct tags cannot express
func (c *Config) Validate() error {
	var errs []error
	if c.FeatureColumns < 1 {
		errs = append(errs, fmt.Errorf("FEATURE_COLUMNS must be at least 1, got %d", c.FeatureColumns))
	} else if components.GridUnits%c.FeatureColumns != 0 {
		errs = append(errs, fmt.Errorf("FEATURE_COLUMNS must divide %d (1, 2, 3, 4, 6 or 12), got %d",
			components.GridUnits, c.FeatureColumns))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout))
	}
	if c.PageCacheTTL < 0 {
		errs = append(errs, fmt.Errorf("PAGE_CACHE_TTL must not be negative, got %s", c.PageCacheTTL))
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.LogFormat))
	}
	if strings.TrimSpace(c.Site.Title) == "" {
		errs = append(errs, errors.New("SITE_TITLE must not be empty"))
	}
	return errors.Join(errs...)
}

// LoadDotEnv loads .env files if present. Missing files are reported through
// warn and otherwise ignored; .env.local overrides .env.
func LoadDotEnv(warn func(path string, err error), paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env.local", ".env"}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if warn != nil {
				warn(path, err)
			}
			continue
		}
		// godotenv.Load never overrides variables that are already set, so
		// the first file listed wins.
		if err := godotenv.Load(path); err != nil && warn != nil {
			warn(path, err)
		}
	}
}

// Parse reads configuration from the environment
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Port != "" && cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
