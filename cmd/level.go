package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stormyhs/fox/internal/config"
	"github.com/stormyhs/fox/log"
)

var levelCmd = &cobra.Command{
	Use:   "level [name]",
	Short: "Show or persist the log level",
	Long: `With no arguments, print the current log level. With a level name
(debug, info, warn, error, critical), apply it and persist it to the
config file so later runs pick it up.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLevel(cmd.OutOrStdout(), configFilePath(), args)
	},
}

func init() {
	rootCmd.AddCommand(levelCmd)
}

func runLevel(out io.Writer, configPath string, args []string) error {
	if len(args) == 0 {
		_, err := fmt.Fprintln(out, strings.ToLower(log.GetLevel().String()))
		return err
	}

	level, err := log.ParseLevel(args[0])
	if err != nil {
		return err
	}
	log.SetLevel(level)

	name := strings.ToLower(level.String())
	if err := config.SaveLogLevel(configPath, name); err != nil {
		return fmt.Errorf("saving log level: %w", err)
	}
	_, err = fmt.Fprintf(out, "log level set to %s\n", name)
	return err
}
