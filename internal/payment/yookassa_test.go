package payment

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestCreatePayment(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/payments" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Idempotence-Key") == "" {
			t.Fatalf("missing idempotence key")
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "shop" || pass != "secret" {
			t.Fatalf("missing basic auth")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pay-1","status":"pending","confirmation":{"type":"redirect","confirmation_url":"https://pay.example/p1"}}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL, "shop", "secret", "https://t.me/bot", testLogger())
	p, err := c.CreatePayment(context.Background(), 300, "order")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "pay-1" || p.ConfirmationURL != "https://pay.example/p1" {
		t.Fatalf("unexpected payment: %+v", p)
	}

	amount := gotBody["amount"].(map[string]interface{})
	if amount["value"] != "300.00" || amount["currency"] != "RUB" {
		t.Fatalf("unexpected amount: %+v", amount)
	}
}

func TestCreatePaymentServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL, "shop", "secret", "", testLogger())
	if _, err := c.CreatePayment(context.Background(), 100, "order"); err == nil {
		t.Fatalf("expected error on 502")
	}
}

func TestPaymentStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want Status
	}{
		{"succeeded", StatusSucceeded},
		{"pending", StatusPending},
		{"canceled", StatusCanceled},
		{"waiting_for_capture", StatusUnknown},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/payments/pay-1" {
				t.Fatalf("unexpected path: %s", r.URL.Path)
			}
			_, _ = w.Write([]byte(`{"id":"pay-1","status":"` + tc.raw + `"}`))
		}))
		c := NewWithBaseURL(srv.URL, "shop", "secret", "", testLogger())
		got, err := c.PaymentStatus(context.Background(), "pay-1")
		srv.Close()
		if err != nil {
			t.Fatalf("status %s: unexpected error: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("status %s: expected %s, got %s", tc.raw, tc.want, got)
		}
	}
}
