package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier шлёт служебные уведомления в админский чат.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyPaymentReceived(ctx context.Context, reservationID string, amount decimal.Decimal, currency string) {
	text := fmt.Sprintf(
		"*Бронь оплачена*\n\n"+"Бронь: %s\n"+"Сумма: %s %s",
		reservationID, amount.StringFixed(2), currency,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyReservationsReleased(ctx context.Context, count int) {
	text := fmt.Sprintf(
		"*Просроченные брони сняты*\n\n"+"Возвращено в продажу: %d",
		count,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.String("error", err.Error()),
		)
	}
}
