package config

import "time"

// TelegramConfig identifies the bot and chat used for notifications.
type TelegramConfig struct {
	BotToken string `json:"bot_token"`
	ChatID   string `json:"chat_id"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string `json:"level"`
	JSON       bool   `json:"json"`
	IncludePID bool   `json:"include_pid"`
}

// APIConfig contains management API settings.
//
// Note: APIKey is a secret and is never returned by API endpoints.
type APIConfig struct {
	Enabled bool   `json:"enabled"`
	Host    string `json:"host"`
	Port    int    `json:"port"`
	APIKey  string `json:"api_key,omitempty"`
}

// JournalConfig controls the change-event audit database. An empty path
// disables journaling.
type JournalConfig struct {
	Path string `json:"path"`
}

// Config is the root configuration structure, loaded from a JSON file.
type Config struct {
	// Domain is the root domain whose records are listed.
	Domain string `json:"domain"`
	// Token is the DNSPod login_token ("id,key").
	Token string `json:"token"`
	// Names are the subdomain labels to monitor (e.g. "www").
	Names []string `json:"names"`
	// CheckIntervalSeconds is the sleep between check cycles.
	CheckIntervalSeconds int `json:"check_interval_seconds"`

	Telegram TelegramConfig `json:"telegram"`
	Logging  LoggingConfig  `json:"logging"`
	API      APIConfig      `json:"api"`
	Journal  JournalConfig  `json:"journal"`
}

// Interval returns the check interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.CheckIntervalSeconds) * time.Second
}
