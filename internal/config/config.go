// Package config provides the typed configuration for dnswatch and its
// startup validation. Configuration lives in a single JSON file;
// anything missing or malformed is fatal before the monitor loop
// starts.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "DNSWATCH_CONFIG"

	defaultConfigPath    = "config.json"
	defaultCheckInterval = 10
)

// ResolveConfigPath picks the config file path: flag value first, then
// the environment variable, then ./config.json.
func ResolveConfigPath(flagValue string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv(EnvConfigPath)); v != "" {
		return v
	}
	return defaultConfigPath
}

// Load reads, parses and validates the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate normalizes defaults and checks every required field,
// returning all violations as one joined error.
func (c *Config) Validate() error {
	var errs []error

	if c.Domain == "" {
		errs = append(errs, errors.New("domain is required"))
	}
	if c.Token == "" {
		errs = append(errs, errors.New("token is required"))
	}
	if len(c.Names) == 0 {
		errs = append(errs, errors.New("names must list at least one subdomain"))
	}
	for _, n := range c.Names {
		if strings.TrimSpace(n) == "" {
			errs = append(errs, errors.New("names must not contain empty entries"))
			break
		}
	}

	if c.CheckIntervalSeconds == 0 {
		c.CheckIntervalSeconds = defaultCheckInterval
	}
	if c.CheckIntervalSeconds < 0 {
		errs = append(errs, errors.New("check_interval_seconds must be positive"))
	}

	if c.Telegram.BotToken == "" {
		errs = append(errs, errors.New("telegram.bot_token is required"))
	}
	if c.Telegram.ChatID == "" {
		errs = append(errs, errors.New("telegram.chat_id is required"))
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "INFO"
	}
	c.Logging.Level = strings.ToUpper(c.Logging.Level)

	if c.API.Enabled {
		if c.API.Host == "" {
			c.API.Host = "127.0.0.1"
		}
		if c.API.Port <= 0 || c.API.Port > 65535 {
			errs = append(errs, errors.New("api.port must be 1..65535"))
		}
	}

	return errors.Join(errs...)
}
