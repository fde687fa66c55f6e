package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stormyhs/fox/discord"
)

var (
	notifyWebhook string
	notifyTitle   string
)

var notifyCmd = &cobra.Command{
	Use:   "notify <message>",
	Short: "Send a message to a Discord webhook",
	Long: `Send a message to a Discord webhook. The webhook URL comes from
--webhook, the FOX_DISCORD_WEBHOOK_URL environment variable, or the
discord.webhook_url config key, in that order.

Examples:
  fox notify "deploy finished"
  fox notify --title "CI" "build 1234 passed"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		webhook := notifyWebhook
		if webhook == "" {
			webhook = cfg.Discord.WebhookURL
		}
		return runNotify(webhook, notifyTitle, cfg.Discord.Username, strings.Join(args, " "))
	},
}

func init() {
	notifyCmd.Flags().StringVar(&notifyWebhook, "webhook", "", "Discord webhook URL")
	notifyCmd.Flags().StringVar(&notifyTitle, "title", "", "embed title to attach to the message")
	rootCmd.AddCommand(notifyCmd)
}

func runNotify(webhook, title, username, message string) error {
	if webhook == "" {
		return fmt.Errorf("no webhook URL configured; pass --webhook, set FOX_DISCORD_WEBHOOK_URL, or set discord.webhook_url")
	}

	embed := discord.New().Username(username).Content(message)
	if title != "" {
		embed.Title(title)
	}
	return embed.Send(webhook)
}
