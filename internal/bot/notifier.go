package bot

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"coffee-order-bot/internal/render"
)

// StaffNotifier posts finalized orders to the staff group chat.
type StaffNotifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
	logger *log.Logger
}

func NewStaffNotifier(api *tgbotapi.BotAPI, chatID int64, logger *log.Logger) *StaffNotifier {
	return &StaffNotifier{api: api, chatID: chatID, logger: logger}
}

// NotifyStaff sends the order card to the staff chat. The Telegram client
// has no context support, so ctx is only checked before sending.
func (n *StaffNotifier) NotifyStaff(ctx context.Context, text string, keyboard [][]render.Button) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if kb := inlineKeyboard(keyboard); kb != nil {
		msg.ReplyMarkup = kb
	}
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("send staff notification: %w", err)
	}
	return nil
}
