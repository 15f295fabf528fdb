package settings

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCounterIncrementsWithinDay(t *testing.T) {
	loc := time.UTC
	m := NewMemory(loc)
	m.Now = func() time.Time { return time.Date(2024, 3, 10, 9, 0, 0, 0, loc) }

	first, err := m.NextOrderNumber(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != 1 {
		t.Fatalf("expected first number 1, got %d", first)
	}

	second, _ := m.NextOrderNumber(context.Background())
	if second != first+1 {
		t.Fatalf("expected strictly increasing sequence, got %d after %d", second, first)
	}
}

func TestMemoryCounterResetsAfterMidnight(t *testing.T) {
	loc := time.UTC
	m := NewMemory(loc)

	day := time.Date(2024, 3, 10, 23, 50, 0, 0, loc)
	m.Now = func() time.Time { return day }
	if n, _ := m.NextOrderNumber(context.Background()); n != 1 {
		t.Fatalf("expected 1, got %d", n)
	}
	if n, _ := m.NextOrderNumber(context.Background()); n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}

	m.Now = func() time.Time { return day.Add(20 * time.Minute) } // past midnight
	if n, _ := m.NextOrderNumber(context.Background()); n != 1 {
		t.Fatalf("expected reset to 1 after midnight, got %d", n)
	}
}

func TestMemoryUpdateSettingsPartial(t *testing.T) {
	m := NewMemory(time.UTC)

	off := false
	got, err := m.UpdateSettings(context.Background(), UpdateInput{OnlinePaymentActive: &off})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.BotActive {
		t.Fatalf("bot_active should be untouched")
	}
	if got.OnlinePaymentActive {
		t.Fatalf("online payment should be disabled")
	}
}
