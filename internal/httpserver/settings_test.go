package httpserver

import (
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"coffee-order-bot/internal/repository/settings"
)

func newTestRouter() (*settings.Memory, http.Handler) {
	repo := settings.NewMemory(time.UTC)
	logger := log.New(os.Stderr, "[test] ", log.LstdFlags)
	return repo, buildRouter(logger, nil, repo)
}

func TestGetSettings(t *testing.T) {
	_, router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var got settings.Settings
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !got.BotActive || !got.OnlinePaymentActive {
		t.Fatalf("expected default toggles on, got %+v", got)
	}
}

func TestUpdateSettings(t *testing.T) {
	repo, router := newTestRouter()

	body := strings.NewReader(`{"botActive": false}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/settings", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got settings.Settings
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.BotActive {
		t.Fatalf("botActive must be off after update: %+v", got)
	}
	if !got.OnlinePaymentActive {
		t.Fatalf("untouched field must keep its value: %+v", got)
	}

	stored, err := repo.GetSettings(req.Context())
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if stored.BotActive {
		t.Fatalf("update must persist, got %+v", stored)
	}
}

func TestUpdateSettingsRejectsEmptyBody(t *testing.T) {
	_, router := newTestRouter()

	req := httptest.NewRequest(http.MethodPatch, "/api/settings", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestUpdateSettingsRejectsMalformedJSON(t *testing.T) {
	_, router := newTestRouter()

	req := httptest.NewRequest(http.MethodPatch, "/api/settings", strings.NewReader(`{"botActive":`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
