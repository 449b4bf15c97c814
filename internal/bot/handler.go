package bot

import (
	"bytes"
	"context"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"roomprice/internal/export"
	"roomprice/internal/pricing"
)

const (
	startText = "Witaj! To kalkulator cen pokoi.\n\nWprowadź cenę bazową:"
	helpText  = `Dostępne komendy:
/start - Rozpocznij
/help - Pokaż tę pomoc

Wyślij cenę bazową (np. 150 lub 150,50), a otrzymasz ceny wszystkich pokoi.`
)

func (b *Bot) processMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	b.logger.Debug("Processing message",
		zap.Int64("chat_id", chatID),
		zap.String("text", msg.Text))

	if msg.IsCommand() {
		b.handleCommand(ctx, chatID, msg.Command())
		return
	}

	b.handleBasePrice(ctx, chatID, msg.Text)
}

func (b *Bot) handleCommand(ctx context.Context, chatID int64, command string) {
	switch command {
	case "start":
		b.sendMessage(tgbotapi.NewMessage(chatID, startText))
	case "help":
		b.sendMessage(tgbotapi.NewMessage(chatID, helpText))
	default:
		b.sendError(chatID, "Nieznana komenda. Użyj /start, aby rozpocząć.")
	}
}

func (b *Bot) handleBasePrice(ctx context.Context, chatID int64, text string) {
	if !b.allow(ctx, chatID) {
		return
	}

	base, err := pricing.ParseBasePrice(text)
	if err != nil {
		b.sendError(chatID, pricing.UserMessage(err))
		return
	}

	table := b.deriver.Derive(base)

	msg := tgbotapi.NewMessage(chatID, FormatPriceTable(table)+"\n"+FormatSummary(pricing.Summarize(table)))
	msg.ParseMode = tgbotapi.ModeHTML
	if keyboard, ok := createExportKeyboard(base.String()); ok {
		msg.ReplyMarkup = keyboard
	} else {
		b.logger.Warn("Export keyboard skipped, base price too long for callback data",
			zap.Int64("chat_id", chatID),
			zap.String("base", base.String()))
	}
	b.sendMessage(msg)
}

func (b *Bot) processCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		return
	}
	chatID := callback.Message.Chat.ID

	b.logger.Debug("Processing callback",
		zap.Int64("chat_id", chatID),
		zap.String("data", callback.Data))

	if _, err := b.sender.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		b.logger.Warn("Failed to answer callback",
			zap.String("callback_id", callback.ID),
			zap.Error(err))
	}

	format, rawBase, ok := parseExportData(callback.Data)
	if !ok {
		b.sendError(chatID, "Nieznana akcja")
		return
	}
	if !b.allow(ctx, chatID) {
		return
	}

	base, err := pricing.ParseBasePrice(rawBase)
	if err != nil {
		b.sendError(chatID, pricing.UserMessage(err))
		return
	}

	b.sendExport(chatID, format, b.deriver.Derive(base))
}

func (b *Bot) sendExport(chatID int64, format string, table pricing.PriceTable) {
	var (
		buf      bytes.Buffer
		err      error
		filename string
	)
	switch format {
	case exportXLSX:
		filename = export.XLSXFilename
		err = export.WriteXLSX(&buf, table)
	default:
		filename = export.CSVFilename
		err = export.WriteCSV(&buf, table)
	}
	if err != nil {
		b.logger.Error("Failed to export prices",
			zap.Int64("chat_id", chatID),
			zap.String("file", filename),
			zap.Error(err))
		b.sendError(chatID, "Nie udało się przygotować pliku")
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: filename, Bytes: buf.Bytes()})
	doc.Caption = "Cena bazowa: " + table.Base.String()
	b.sendMessage(doc)
}

func (b *Bot) allow(ctx context.Context, chatID int64) bool {
	allowed, err := b.limiter.Allow(ctx, strconv.FormatInt(chatID, 10))
	if err != nil {
		b.logger.Warn("Rate limit check failed",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
	if !allowed {
		b.sendError(chatID, "Zbyt wiele zapytań, spróbuj ponownie za chwilę")
	}
	return allowed
}
