package settings

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process Repository for tests and local runs without a
// database.
type Memory struct {
	mu        sync.Mutex
	settings  Settings
	lastReset string
	current   int
	loc       *time.Location

	// Now is overridable in tests to exercise the midnight reset.
	Now func() time.Time
}

// NewMemory returns a memory store with both toggles enabled.
func NewMemory(loc *time.Location) *Memory {
	return &Memory{
		settings: Settings{BotActive: true, OnlinePaymentActive: true},
		loc:      loc,
		Now:      time.Now,
	}
}

func (m *Memory) GetSettings(_ context.Context) (Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings, nil
}

func (m *Memory) UpdateSettings(_ context.Context, in UpdateInput) (Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if in.BotActive != nil {
		m.settings.BotActive = *in.BotActive
	}
	if in.OnlinePaymentActive != nil {
		m.settings.OnlinePaymentActive = *in.OnlinePaymentActive
	}
	return m.settings, nil
}

func (m *Memory) NextOrderNumber(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	today := m.Now().In(m.loc).Format("2006-01-02")
	if m.lastReset != today {
		m.lastReset = today
		m.current = 1
	} else {
		m.current++
	}
	return m.current, nil
}
