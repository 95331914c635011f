package commands

// Command to run the bot
// Loads configuration, authorizes the Telegram bot and starts the command handler
// Implements graceful shutdown for proper termination

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"advisoor-bot/bots_monitor"
	"advisoor-bot/internal/infra/config"
	logging "advisoor-bot/internal/infra/log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram bot answering /search commands",
	Long:  `Run the bot: long-poll Telegram for /search commands and answer each with a token report built from the Solscan market-data and holders endpoints.`,
	RunE:  runBot,
}

func runBot(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.LogError("Failed to load config", zap.Error(err))
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.Solscan.APIKey == "" {
		logging.LogWarn("SOLSCAN_API_KEY not provided, upstream requests will likely be rejected")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		logging.LogError("Failed to initialize bot", zap.Error(err))
		return fmt.Errorf("failed to initialize bot: %w", err)
	}
	logging.LogSuccess("Bot authorized", zap.String("username", bot.Self.UserName))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		bots_monitor.RunCommandHandler(bot, cfg)
	}()

	logging.LogSuccess("Bot is running", zap.Int64("targetChatID", cfg.Telegram.TargetChatID))

	<-ctx.Done()
	logging.LogInfo("Shutdown signal received, stopping command handler...")

	bot.StopReceivingUpdates()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logging.LogSuccess("Command handler stopped gracefully")
	case <-time.After(10 * time.Second):
		logging.LogWarn("Timeout waiting for command handler to stop, forcing shutdown")
	}

	return nil
}
