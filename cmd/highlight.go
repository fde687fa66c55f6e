package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stormyhs/fox/highlight"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [text]",
	Short: "Colorize recognizable tokens in text",
	Long: `Colorize strings, numbers, booleans, key labels and brackets in the
given text. With no arguments, reads lines from stdin and highlights
each one, which makes it usable as a filter:

  tail -f app.log | fox highlight

Text that already carries escape sequences passes through unchanged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHighlight(cmd.OutOrStdout(), cmd.InOrStdin(), args)
	},
}

func init() {
	rootCmd.AddCommand(highlightCmd)
}

func runHighlight(out io.Writer, in io.Reader, args []string) error {
	if len(args) > 0 {
		_, err := fmt.Fprintln(out, highlight.Highlight(strings.Join(args, " ")))
		return err
	}

	scanner := bufio.NewScanner(in)
	// Over-long lines pass through unhighlighted rather than aborting the
	// filter, so carry them past bufio's default 64KB token cap.
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(out, highlight.Highlight(scanner.Text())); err != nil {
			return err
		}
	}
	return scanner.Err()
}
