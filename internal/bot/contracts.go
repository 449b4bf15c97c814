package bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// sender is the part of the Telegram API the handlers talk to.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

var _ sender = (*tgbotapi.BotAPI)(nil)
