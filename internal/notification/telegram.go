package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stellarops/gsbooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pushes approval workflow events to the operations chat.
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

func (n *TelegramNotifier) NotifyBookingRequested(ctx context.Context, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Contact booking requested*\n\n"+
			"Booking: #%d\n"+
			"Satellite: %s\n"+
			"Provider: %s\n"+
			"Start (UTC): %s\n"+
			"Duration: %d min\n"+
			"Requested by: %s",
		booking.ID,
		booking.SatelliteID,
		booking.Provider,
		booking.StartTime.Format("02.01.2006 15:04"),
		booking.DurationMinutes,
		booking.RequestedBy,
	)
	if booking.Status == domain.BookingStatusApproved {
		text += "\nStatus: approved (provider reservation)"
	}
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingApproved(ctx context.Context, bookingID int, approver string) {
	text := fmt.Sprintf(
		"*Contact booking approved*\n\n"+"Booking: #%d\n"+"Approved by: %s",
		bookingID, approver,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingRejected(ctx context.Context, bookingID int, approver, reason string) {
	text := fmt.Sprintf(
		"*Contact booking rejected*\n\n"+"Booking: #%d\n"+"Rejected by: %s\n"+"Reason: %s",
		bookingID, approver, reason,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
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
