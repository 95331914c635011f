package bots_monitor

// Package bots_monitor contains the Telegram command handling loop

import (
	"context"
	"strings"

	"advisoor-bot/internal/clients_api/solscan"
	"advisoor-bot/internal/features/tg_charts"
	"advisoor-bot/internal/features/token_report"
	"advisoor-bot/internal/infra/config"
	log "advisoor-bot/internal/infra/log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// RunCommandHandler runs the long-poll update loop until the updates channel closes
// Every report is sent to the configured target chat, not the chat the command came from
func RunCommandHandler(bot *tgbotapi.BotAPI, cfg *config.Config) {
	if bot == nil {
		log.LogWarn("Bot is nil, command handler not started")
		return
	}

	log.LogInfo("Starting command handler", zap.Int64("targetChatID", cfg.Telegram.TargetChatID))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}

		if !update.Message.IsCommand() {
			continue
		}

		command := update.Message.Command()
		args := update.Message.CommandArguments()

		log.LogDebug("Received command",
			zap.String("command", command),
			zap.String("args", args),
			zap.Int64("chatID", update.Message.Chat.ID),
			zap.String("username", update.Message.From.UserName))

		// /search {token_address}
		// /search 7xKX... or /search@botname 7xKX...
		if command == "search" {
			handleSearchCommand(bot, cfg, update.Message)
		}

		// /helps or /helps@botname
		if command == "helps" {
			handleHelpCommand(bot, update.Message)
		}
	}
}

// handleSearchCommand runs one stateless lookup pipeline: metadata, holders, report, send
func handleSearchCommand(bot *tgbotapi.BotAPI, cfg *config.Config, message *tgbotapi.Message) {
	args := strings.Fields(message.CommandArguments())
	if len(args) != 1 {
		// the original sent nothing back on a bad invocation; keep that, just don't crash the loop
		log.LogWarn("Invalid /search invocation, expected exactly one token address",
			zap.Int("args", len(args)),
			zap.String("username", message.From.UserName))
		return
	}
	address := args[0]

	ctx := context.Background()

	session := solscan.NewSession(&cfg.Solscan)
	defer session.Close()

	metadata := session.FetchTokenMetadata(ctx, address)
	holders := session.FetchTopHolders(ctx, address)

	report := token_report.BuildReport(metadata, holders, address)

	msg := tgbotapi.NewMessage(cfg.Telegram.TargetChatID, report.Body)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if len(report.Links) > 0 {
		msg.ReplyMarkup = linkKeyboard(report.Links)
	}

	if _, err := bot.Send(msg); err != nil {
		log.LogError("Failed to send token report",
			zap.String("address", address),
			zap.Error(err))
		return
	}

	log.LogInfo("Token report sent",
		zap.String("address", address),
		zap.Bool("hasMetadata", metadata != nil),
		zap.Int("holders", len(holders)),
		zap.String("username", message.From.UserName))

	// chart is a follow-up; its failure never affects the report above
	if metadata != nil && len(holders) > 0 {
		sendHoldersChart(bot, cfg, metadata.Symbol, holders)
	}
}

// sendHoldersChart renders and sends the top-holders chart photo
func sendHoldersChart(bot *tgbotapi.BotAPI, cfg *config.Config, symbol string, holders []solscan.HolderEntry) {
	chartPath, err := tg_charts.GenerateHoldersChart(cfg.App.ChartsDir, symbol, holders)
	if err != nil {
		log.LogWarn("Failed to generate holders chart", zap.String("symbol", symbol), zap.Error(err))
		return
	}

	photo := tgbotapi.NewPhoto(cfg.Telegram.TargetChatID, tgbotapi.FilePath(chartPath))
	photo.Caption = symbol + " top holders"

	if _, err := bot.Send(photo); err != nil {
		log.LogError("Failed to send holders chart",
			zap.String("chartPath", chartPath),
			zap.Error(err))
	}
}

// linkKeyboard lays the buttons out two per row
func linkKeyboard(links []token_report.Link) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(links); i += 2 {
		row := []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonURL(links[i].Label, links[i].URL),
		}
		if i+1 < len(links) {
			row = append(row, tgbotapi.NewInlineKeyboardButtonURL(links[i+1].Label, links[i+1].URL))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// handleHelpCommand answers /helps
func handleHelpCommand(bot *tgbotapi.BotAPI, message *tgbotapi.Message) {
	helpText := "" +
		"Commands:\n" +
		"• <code>/search {token_address}</code> - token metadata and top holders report\n" +
		"\n" +
		"Example: <code>/search 7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU</code>"

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyToMessageID = message.MessageID
	if _, err := bot.Send(msg); err != nil {
		log.LogError("Failed to send /helps message", zap.Error(err))
	}
}
