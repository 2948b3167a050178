package notifications

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/checkout"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/logger"
)

// TelegramSink posts each order to a fixed chat, usually the box office group
type TelegramSink struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    *logger.Logger
}

// NewTelegramSink connects the bot. An empty token yields a disabled sink
// that refuses every order.
func NewTelegramSink(token string, chatID int64, log *logger.Logger) (*TelegramSink, error) {
	if log == nil {
		log = logger.GetDefault()
	}
	if token == "" {
		log.Warn("telegram bot token is empty, order notifications disabled")
		return &TelegramSink{chatID: chatID, log: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	if chatID == 0 {
		log.Warn("TELEGRAM_CHAT_ID is not set, orders cannot be delivered")
	}

	return NewTelegramSinkWithBot(bot, chatID, log), nil
}

func NewTelegramSinkWithBot(bot *tgbotapi.BotAPI, chatID int64, log *logger.Logger) *TelegramSink {
	if log == nil {
		log = logger.GetDefault()
	}
	return &TelegramSink{bot: bot, chatID: chatID, log: log}
}

// Enabled reports whether orders can actually be delivered
func (t *TelegramSink) Enabled() bool {
	return t.bot != nil && t.chatID != 0
}

func (t *TelegramSink) SendOrder(ctx context.Context, order *checkout.OrderPayload) error {
	if t.bot == nil {
		t.log.Debug("order notification skipped (bot disabled)", slog.String("booking_id", order.BookingID))
		return ErrSinkDisabled
	}
	if t.chatID == 0 {
		t.log.Debug("order notification skipped (no chat_id)", slog.String("booking_id", order.BookingID))
		return ErrSinkDisabled
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(t.chatID, FormatOrderMessage(order))
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := t.bot.Send(msg); err != nil {
		t.log.Error("failed to send telegram notification",
			slog.Int64("chat_id", t.chatID),
			slog.String("booking_id", order.BookingID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

func (t *TelegramSink) Close() error {
	return nil
}
