// Package bot adapts Telegram updates to the order engine: it owns the
// per-chat draft sessions, parses callbacks into actions and keeps each
// draft rendered into its single chat message.
package bot

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"coffee-order-bot/internal/domain"
	"coffee-order-bot/internal/engine"
	"coffee-order-bot/internal/render"
	"coffee-order-bot/internal/repository/settings"
)

const (
	noticeShopClosed = "Бот сейчас не принимает заказы 😴 Загляните позже!"
	noticeGeneric    = "Что-то пошло не так. Попробуйте ещё раз."
	welcomeText      = "Привет! 🙌 Это бот кофейни.\nНажмите /order, чтобы сделать заказ."
)

// Bot runs the long-poll loop and drives the engine.
type Bot struct {
	api      *tgbotapi.BotAPI
	engine   *engine.Engine
	catalog  *domain.Catalog
	settings settings.Repository
	logger   *log.Logger

	mu       sync.Mutex
	sessions map[int64]*domain.OrderDraft
}

// New wires the transport adapter around an authorized API client.
func New(api *tgbotapi.BotAPI, eng *engine.Engine, catalog *domain.Catalog, repo settings.Repository, logger *log.Logger) *Bot {
	return &Bot{
		api:      api,
		engine:   eng,
		catalog:  catalog,
		settings: repo,
		logger:   logger,
		sessions: make(map[int64]*domain.OrderDraft),
	}
}

// Run consumes updates until the context is cancelled. Telegram delivers
// updates of one chat in order, so handling them sequentially keeps each
// conversation single-threaded.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 60
	updates := b.api.GetUpdatesChan(cfg)

	b.logger.Printf("authorized as @%s", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
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
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.Chat == nil || !msg.Chat.IsPrivate() {
		return
	}
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.send(chatID, welcomeText, nil)
		case "order":
			b.startOrder(ctx, chatID)
		}
		return
	}

	// Plain text while an order is in progress becomes a comment.
	draft := b.session(chatID)
	if draft == nil || msg.Text == "" {
		b.send(chatID, welcomeText, nil)
		return
	}

	res, err := b.engine.Apply(ctx, draft, requesterOf(msg.From), engine.Action{Kind: engine.ActionComment, Text: msg.Text})
	if err != nil {
		return
	}
	if res.Changed {
		b.redraw(ctx, chatID, draft)
	}
}

func (b *Bot) startOrder(ctx context.Context, chatID int64) {
	s, err := b.settings.GetSettings(ctx)
	if err != nil {
		b.logger.Printf("read settings: %v", err)
		b.send(chatID, noticeGeneric, nil)
		return
	}
	if !s.BotActive {
		b.send(chatID, noticeShopClosed, nil)
		return
	}

	// Starting over abandons any previous draft in place.
	draft := domain.NewOrderDraft()
	view := render.Render(draft, b.catalog, render.Options{OnlinePayment: s.OnlinePaymentActive})
	sent, err := b.send(chatID, view.Text, view.Keyboard)
	if err != nil {
		b.logger.Printf("send order message to %d: %v", chatID, err)
		return
	}
	draft.MessageID = sent.MessageID
	b.putSession(chatID, draft)
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil || cb.Message.Chat == nil {
		b.answer(cb.ID, "")
		return
	}
	chatID := cb.Message.Chat.ID

	draft := b.session(chatID)
	if draft == nil {
		b.answer(cb.ID, "")
		return
	}

	s, err := b.settings.GetSettings(ctx)
	if err != nil {
		b.logger.Printf("read settings: %v", err)
		b.answer(cb.ID, noticeGeneric)
		return
	}
	if !s.BotActive {
		b.answer(cb.ID, noticeShopClosed)
		return
	}

	action, ok := parseAction(cb.Data)
	if !ok {
		b.answer(cb.ID, "")
		return
	}

	res, err := b.engine.Apply(ctx, draft, requesterOf(cb.From), action)
	switch {
	case errors.Is(err, domain.ErrIllegalAction):
		b.answer(cb.ID, "")
		return
	case errors.Is(err, domain.ErrNotFound):
		b.answer(cb.ID, noticeGeneric)
		return
	case err != nil:
		b.logger.Printf("apply action %q: %v", cb.Data, err)
		b.answer(cb.ID, noticeGeneric)
		return
	}

	b.answer(cb.ID, res.Notice)
	if res.Changed {
		b.redraw(ctx, chatID, draft)
	}
	if res.Finalized {
		b.dropSession(chatID)
	}
}

// redraw re-renders the draft into its message. Edit failures ("message is
// not modified", message deleted by the user) are swallowed: the next
// successful render resynchronizes the visible state.
func (b *Bot) redraw(ctx context.Context, chatID int64, draft *domain.OrderDraft) {
	s, err := b.settings.GetSettings(ctx)
	if err != nil {
		b.logger.Printf("read settings: %v", err)
		s = settings.Settings{BotActive: true}
	}

	view := render.Render(draft, b.catalog, render.Options{OnlinePayment: s.OnlinePaymentActive})
	edit := tgbotapi.NewEditMessageText(chatID, draft.MessageID, view.Text)
	edit.ParseMode = tgbotapi.ModeMarkdown
	if kb := inlineKeyboard(view.Keyboard); kb != nil {
		edit.ReplyMarkup = kb
	}

	if _, err := b.api.Request(edit); err != nil {
		if !strings.Contains(err.Error(), "message is not modified") {
			b.logger.Printf("edit message %d in chat %d: %v", draft.MessageID, chatID, err)
		}
	}
}

func (b *Bot) send(chatID int64, text string, keyboard [][]render.Button) (tgbotapi.Message, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if kb := inlineKeyboard(keyboard); kb != nil {
		msg.ReplyMarkup = kb
	}
	return b.api.Send(msg)
}

func (b *Bot) answer(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		b.logger.Printf("answer callback: %v", err)
	}
}

func (b *Bot) session(chatID int64) *domain.OrderDraft {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sessions[chatID]
}

func (b *Bot) putSession(chatID int64, d *domain.OrderDraft) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sessions[chatID] = d
}

func (b *Bot) dropSession(chatID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.sessions, chatID)
}

func requesterOf(user *tgbotapi.User) domain.Requester {
	if user == nil {
		return domain.Requester{}
	}
	return domain.Requester{ID: user.ID, Username: user.UserName, FirstName: user.FirstName}
}

func inlineKeyboard(rows [][]render.Button) *tgbotapi.InlineKeyboardMarkup {
	if len(rows) == 0 {
		return nil
	}
	markup := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(btn.Label, btn.Data))
		}
		markup = append(markup, buttons)
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(markup...)
	return &kb
}
