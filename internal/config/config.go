// Package config loads the server configuration from the environment. A
// local .env file is honored when present so development setups need no
// exported variables.
package config

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries everything the server and CLI need. Backend credentials
// may be left empty; the tool then runs entirely on the built-in sample
// order.
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	AppSheetBaseURL   string `env:"APPSHEET_BASE_URL" envDefault:"https://api.appsheet.com/api/v2"`
	AppSheetAppID     string `env:"APPSHEET_APP_ID"`
	AppSheetAccessKey string `env:"APPSHEET_ACCESS_KEY"`
	AppSheetTable     string `env:"APPSHEET_TABLE" envDefault:"Orders"`

	TemplatePath string `env:"TEMPLATE_PATH" envDefault:"data/ticket-template.html"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

var loadEnvOnce sync.Once

// Load reads the .env file once, then parses environment variables.
func Load() (Config, error) {
	loadEnvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}

// HasBackend reports whether backend credentials are configured.
func (c Config) HasBackend() bool {
	return c.AppSheetAppID != "" && c.AppSheetAccessKey != ""
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
