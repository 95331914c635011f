package commands

// Root command for Cobra CLI
// Registers the bot subcommand

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "advisoor-bot",
	Short: "Advisoor Info Bot - Telegram bot for on-demand Solana token reports",
	Long: `Advisoor Info Bot is a Go-based Telegram bot that answers /search commands
with a token metadata and top-holders report built from the Solscan API.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(botCmd)
}
