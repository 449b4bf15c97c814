package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"roomprice/internal/pricing"
	"roomprice/internal/ratelimit"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	sender  sender
	deriver pricing.Deriver
	limiter *ratelimit.Limiter
	logger  *zap.Logger
}

// New authorizes against the Telegram API, retrying transient failures.
// limiter may be nil.
func New(
	ctx context.Context,
	token string,
	debug bool,
	deriver pricing.Deriver,
	limiter *ratelimit.Limiter,
	logger *zap.Logger,
) (*Bot, error) {
	const operation = "bot.New"

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 2 * time.Minute
	retryPolicy.MaxInterval = 15 * time.Second

	var botAPI *tgbotapi.BotAPI
	err := backoff.RetryNotify(
		func() error {
			api, err := tgbotapi.NewBotAPI(token)
			if err != nil {
				var apiErr *tgbotapi.Error
				if errors.As(err, &apiErr) {
					// Telegram answered; a bad token will not fix itself
					return backoff.Permanent(err)
				}
				return err
			}
			botAPI = api
			return nil
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, duration time.Duration) {
			logger.Warn("Telegram authorization failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", duration))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create bot API: %w", operation, err)
	}

	botAPI.Debug = debug

	logger.Info("Bot authorized",
		zap.String("username", botAPI.Self.UserName),
		zap.Int64("id", botAPI.Self.ID))

	return &Bot{
		api:     botAPI,
		sender:  botAPI,
		deriver: deriver,
		limiter: limiter,
		logger:  logger,
	}, nil
}

func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("Starting bot")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Shutting down bot")
			b.api.StopReceivingUpdates()
			return nil

		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		b.processMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.processCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) sendMessage(msg tgbotapi.Chattable) {
	if _, err := b.sender.Send(msg); err != nil {
		b.logger.Error("Failed to send message", zap.Error(err))
	}
}

func (b *Bot) sendError(chatID int64, text string) {
	b.sendMessage(tgbotapi.NewMessage(chatID, "❌ "+text))
}
