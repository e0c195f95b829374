package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts reservation events to the venue's operations
// chat. With an empty token notifications are disabled and every send
// becomes a no-op.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReservationConfirmed(ctx context.Context, reservations []*domain.Reservation) {
	if len(reservations) == 0 {
		return
	}

	lines := make([]string, 0, len(reservations))
	for _, r := range reservations {
		lines = append(lines, describeReservation(r))
	}

	text := fmt.Sprintf(
		"*Новая бронь*\n\nДата: %s\nКлиент: %s\n%s",
		reservations[0].Date, reservations[0].CustomerRef, strings.Join(lines, "\n"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyReservationCancelled(ctx context.Context, reservation *domain.Reservation) {
	text := fmt.Sprintf(
		"*Бронь отменена*\n\nДата: %s\nКлиент: %s\n%s",
		reservation.Date, reservation.CustomerRef, describeReservation(reservation),
	)
	n.send(ctx, text)
}

func describeReservation(r *domain.Reservation) string {
	if r.Kind == domain.ReservationKindParty {
		return fmt.Sprintf("Party: весь зал, %s-%s",
			domain.FormatClock(r.StartMin), domain.FormatClock(r.EndMin()))
	}
	return fmt.Sprintf("%s #%d: %s-%s",
		r.DeviceType, r.UnitNumber,
		domain.FormatClock(r.StartMin), domain.FormatClock(r.EndMin()))
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
