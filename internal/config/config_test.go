package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/stormyhs/fox/log"
)

func quietLogs(t *testing.T) {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stdout) })
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "fox", cfg.Discord.Username)
	require.Empty(t, cfg.Discord.WebhookURL)
}

func TestDefaultConfigTemplate_ParsesAndMatchesDefaults(t *testing.T) {
	var parsed struct {
		LogLevel string `yaml:"log_level"`
		Discord  struct {
			Username string `yaml:"username"`
		} `yaml:"discord"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(DefaultConfigTemplate()), &parsed))
	require.Equal(t, Defaults().LogLevel, parsed.LogLevel)
	require.Equal(t, Defaults().Discord.Username, parsed.Discord.Username)
}

func TestWriteDefaultConfig(t *testing.T) {
	quietLogs(t)
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))
}
