package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/alfredjeanlab/diadi/internal/lifecycle"
	"github.com/alfredjeanlab/diadi/internal/model"
)

// Config is read from an optional TOML file, then overridden by environment
// variables.
type Config struct {
	Routes  lifecycle.Routes `toml:"routes"`  // DIADI_LIVE_ROUTE, DIADI_DETAIL_ROUTE
	Display DisplayConfig    `toml:"display"` // DIADI_LABEL_VARIANT
	Server  ServerConfig     `toml:"server"`  // DIADI_HTTP_ADDR, DIADI_AUTH_TOKEN
}

// DisplayConfig controls how statuses are worded.
type DisplayConfig struct {
	Variant model.LabelVariant `toml:"variant"`
}

// ServerConfig configures `diadi serve`.
type ServerConfig struct {
	HTTPAddr  string `toml:"http_addr"`
	AuthToken string `toml:"auth_token"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Routes:  lifecycle.DefaultRoutes(),
		Display: DisplayConfig{Variant: model.VariantProminent},
		Server:  ServerConfig{HTTPAddr: ":8080"},
	}
}

// DefaultPath returns ~/.config/diadi/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "diadi", "config.toml"), nil
}

// Load reads the config file at path (a missing file is not an error), applies
// environment overrides and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, c); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	c.Routes.Live = envOrDefault("DIADI_LIVE_ROUTE", c.Routes.Live)
	c.Routes.Detail = envOrDefault("DIADI_DETAIL_ROUTE", c.Routes.Detail)
	c.Display.Variant = model.LabelVariant(envOrDefault("DIADI_LABEL_VARIANT", string(c.Display.Variant)))
	c.Server.HTTPAddr = envOrDefault("DIADI_HTTP_ADDR", c.Server.HTTPAddr)
	c.Server.AuthToken = envOrDefault("DIADI_AUTH_TOKEN", c.Server.AuthToken)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks routes and the label variant.
func (c *Config) Validate() error {
	if err := c.Routes.Validate(); err != nil {
		return fmt.Errorf("routes: %w", err)
	}
	if !c.Display.Variant.IsValid() {
		return fmt.Errorf("display.variant: invalid value %q", c.Display.Variant)
	}
	if c.Server.HTTPAddr == "" {
		return fmt.Errorf("server.http_addr is required")
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
