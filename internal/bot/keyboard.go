package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BOT KEYBOARDS

const (
	exportCSV  = "csv"
	exportXLSX = "xlsx"

	// Telegram rejects the whole message when callback data exceeds this.
	maxCallbackData = 64
)

// The base price travels in the callback data, so exports need no chat state.
// ok is false when base does not fit in the callback data.
func createExportKeyboard(base string) (keyboard tgbotapi.InlineKeyboardMarkup, ok bool) {
	if len(exportData(exportXLSX, base)) > maxCallbackData {
		return keyboard, false
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📄 Pobierz CSV", exportData(exportCSV, base)),
			tgbotapi.NewInlineKeyboardButtonData("📊 Pobierz XLSX", exportData(exportXLSX, base)),
		),
	), true
}

func exportData(format, base string) string {
	return format + ":" + base
}

func parseExportData(data string) (format, base string, ok bool) {
	format, base, ok = strings.Cut(data, ":")
	if !ok || base == "" {
		return "", "", false
	}
	if format != exportCSV && format != exportXLSX {
		return "", "", false
	}
	return format, base, true
}
