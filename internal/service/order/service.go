// Package order coordinates order finalization: daily order numbers and
// the staff-channel notification.
package order

import (
	"context"
	"fmt"
	"log"

	"coffee-order-bot/internal/domain"
	"coffee-order-bot/internal/render"
)

// CounterStore hands out daily-reset sequential order numbers.
type CounterStore interface {
	NextOrderNumber(ctx context.Context) (int, error)
}

// Notifier delivers the finished order to the staff channel.
type Notifier interface {
	NotifyStaff(ctx context.Context, text string, keyboard [][]render.Button) error
}

// Service implements the engine's Coordinator.
type Service struct {
	catalog  *domain.Catalog
	counter  CounterStore
	notifier Notifier
	logger   *log.Logger
}

// New wires the coordinator.
func New(catalog *domain.Catalog, counter CounterStore, notifier Notifier, logger *log.Logger) *Service {
	return &Service{catalog: catalog, counter: counter, notifier: notifier, logger: logger}
}

// NextOrderNumber proxies to the counter store; the store serializes the
// read-modify-write so concurrent finalizations never share a number.
func (s *Service) NextOrderNumber(ctx context.Context) (int, error) {
	return s.counter.NextOrderNumber(ctx)
}

// Finalize composes the staff notification and sends it. The caller treats
// delivery failures as non-fatal: the order is already placed.
func (s *Service) Finalize(ctx context.Context, d *domain.OrderDraft, r domain.Requester) error {
	text := fmt.Sprintf(
		"🔔 Новый заказ #%d!\n\n%s\n\n%s\n🔢 Номер заказа: #%d\n👤 Пользователь: %s",
		d.OrderNumber,
		render.Summary(d, s.catalog),
		paymentLabel(d.PaymentMethod),
		d.OrderNumber,
		r.Name(),
	)

	keyboard := [][]render.Button{{
		{Label: "⚠️ Высокая загрузка", Data: fmt.Sprintf("high_load_%d", r.ID)},
	}}

	if err := s.notifier.NotifyStaff(ctx, text, keyboard); err != nil {
		s.logger.Printf("notify staff about order #%d: %v", d.OrderNumber, err)
		return err
	}
	s.logger.Printf("order #%d sent to staff (payment: %s)", d.OrderNumber, d.PaymentMethod)
	return nil
}

func paymentLabel(method domain.PaymentMethod) string {
	switch method {
	case domain.PaymentOnline:
		return "💳 Оплачено онлайн"
	case domain.PaymentCash:
		return "💵 Оплата на кассе"
	}
	return "❓ Способ оплаты не указан"
}
