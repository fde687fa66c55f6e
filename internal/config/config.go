// Package config provides configuration types, defaults, and persistence
// for fox.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/stormyhs/fox/log"
)

// Config holds all configuration options for fox.
type Config struct {
	// LogLevel names the most verbose level that still prints.
	// Valid values: "critical", "error", "warn", "info", "debug"
	LogLevel string `mapstructure:"log_level"`

	Discord DiscordConfig `mapstructure:"discord"`
}

// DiscordConfig holds the webhook settings used by `fox notify`.
type DiscordConfig struct {
	WebhookURL string `mapstructure:"webhook_url"`
	Username   string `mapstructure:"username"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		LogLevel: "debug",
		Discord: DiscordConfig{
			Username: "fox",
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with
// comments.
func DefaultConfigTemplate() string {
	return `# Fox Configuration

# Most verbose log level that still prints.
# One of: critical, error, warn, info, debug
log_level: debug

# Discord webhook used by 'fox notify'
discord:
  # webhook_url: https://discord.com/api/webhooks/...
  username: fox
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug("Writing default config to %s", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info("Created default config at %s", configPath)
	return nil
}
