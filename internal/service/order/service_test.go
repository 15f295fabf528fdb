package order

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"coffee-order-bot/internal/domain"
	"coffee-order-bot/internal/render"
)

type stubCounter struct {
	next int
	err  error
}

func (s *stubCounter) NextOrderNumber(_ context.Context) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.next++
	return s.next, nil
}

type stubNotifier struct {
	err      error
	calls    int
	lastText string
	lastKb   [][]render.Button
}

func (s *stubNotifier) NotifyStaff(_ context.Context, text string, kb [][]render.Button) error {
	s.calls++
	s.lastText = text
	s.lastKb = kb
	return s.err
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func placedDraft() *domain.OrderDraft {
	return &domain.OrderDraft{
		Step:          domain.StepDone,
		OrderNumber:   7,
		PaymentMethod: domain.PaymentCash,
		Lines: []domain.LineItem{
			{ItemID: "americano", Volume: "0.3", Price: 200},
		},
	}
}

func TestFinalizeComposesNotification(t *testing.T) {
	notifier := &stubNotifier{}
	svc := New(domain.DefaultCatalog(), &stubCounter{}, notifier, testLogger())

	r := domain.Requester{ID: 42, Username: "ivan"}
	if err := svc.Finalize(context.Background(), placedDraft(), r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if notifier.calls != 1 {
		t.Fatalf("expected one notification, got %d", notifier.calls)
	}
	for _, want := range []string{"Новый заказ #7", "Американо", "Оплата на кассе", "@ivan"} {
		if !strings.Contains(notifier.lastText, want) {
			t.Fatalf("notification missing %q:\n%s", want, notifier.lastText)
		}
	}
	if len(notifier.lastKb) != 1 || notifier.lastKb[0][0].Data != "high_load_42" {
		t.Fatalf("unexpected staff keyboard: %+v", notifier.lastKb)
	}
}

func TestFinalizeReportsDeliveryFailure(t *testing.T) {
	notifier := &stubNotifier{err: errors.New("channel unreachable")}
	svc := New(domain.DefaultCatalog(), &stubCounter{}, notifier, testLogger())

	err := svc.Finalize(context.Background(), placedDraft(), domain.Requester{FirstName: "Аня"})
	if err == nil {
		t.Fatalf("expected delivery error to surface for logging")
	}
}

func TestNextOrderNumberProxiesStore(t *testing.T) {
	svc := New(domain.DefaultCatalog(), &stubCounter{next: 4}, &stubNotifier{}, testLogger())
	n, err := svc.NextOrderNumber(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 {
		t.Fatalf("expected 5, got %d", n)
	}
}
