package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stormyhs/fox/internal/config"
	"github.com/stormyhs/fox/log"
	"github.com/stormyhs/fox/snips"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "fox",
	Short:   "Pretty terminal logging and small CLI utilities",
	Long: `Fox prints leveled, color-highlighted log lines and ships a few
terminal utilities around them: a token highlighter, spinners and
progress bars, and a Discord webhook notifier.

Running fox with no arguments prints one sample line per log level in
both the full and shortened forms.`,
	Version: version,
	RunE:    runDemo,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/fox/config.yaml)")
	rootCmd.Flags().Bool("widgets", false,
		"also run the spinner and progress bar demos")
}

func initConfig() {
	// Best-effort: load .env from the current directory.
	_ = godotenv.Load()

	defaults := config.Defaults()
	viper.SetDefault("log_level", defaults.LogLevel)
	// webhook_url defaults empty but must be registered so AutomaticEnv
	// can satisfy it during Unmarshal.
	viper.SetDefault("discord.webhook_url", defaults.Discord.WebhookURL)
	viper.SetDefault("discord.username", defaults.Discord.Username)

	viper.SetEnvPrefix("FOX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .fox/config.yaml (current directory)
		// 2. ~/.config/fox/config.yaml (user config)
		if _, err := os.Stat(".fox/config.yaml"); err == nil {
			viper.SetConfigFile(".fox/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "fox"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .fox/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".fox/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
	applyLogLevel(cfg.LogLevel)
}

// applyLogLevel sets the process log level from a config value. Unknown
// names are reported and the current level stands.
func applyLogLevel(name string) {
	level, err := log.ParseLevel(name)
	if err != nil {
		log.SWarn("Ignoring unknown log level `%s` from config.", name)
		return
	}
	log.SetLevel(level)
}

// configFilePath reports where level changes should be persisted: the
// loaded config file, or the local default when none was loaded.
func configFilePath() string {
	if path := viper.ConfigFileUsed(); path != "" {
		return path
	}
	return ".fox/config.yaml"
}

func runDemo(cmd *cobra.Command, args []string) error {
	showcase()

	if widgets, _ := cmd.Flags().GetBool("widgets"); widgets {
		demoWidgets()
	}
	return nil
}

// showcase prints one sample line per level in both forms.
func showcase() {
	msg := "message"

	log.Debug("This is a debug %s", msg)
	log.Info("This is an info %s", msg)
	log.Warn("This is a warning %s", msg)
	log.Error("This is an error %s", msg)
	log.Critical("This is a critical %s", msg)

	fmt.Println()

	log.SDebug("This is a shortened debug %s", msg)
	log.SInfo("This is a shortened info %s", msg)
	log.SWarn("This is a shortened warning %s", msg)
	log.SError("This is a shortened error %s", msg)
	log.SCritical("This is a shortened critical %s", msg)
}

func demoWidgets() {
	spinner := snips.NewSpinner()
	spinner.Start("Pretending to do something useful")
	time.Sleep(2 * time.Second)
	spinner.Stop()
	log.SInfo("Spinner done.")

	loader := snips.NewLoader()
	for amount := 0; amount <= 100; amount += 5 {
		loader.SetAmount(amount)
		time.Sleep(40 * time.Millisecond)
	}
	loader.Clear()
	log.SInfo("Loader done.")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
