package payment

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.yookassa.ru/v3"

// Status is the payment lifecycle state reported by the gateway.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusCanceled  Status = "canceled"
	StatusUnknown   Status = "unknown"
)

// Payment is a created payment with the URL the customer pays at.
type Payment struct {
	ID              string
	ConfirmationURL string
}

// Client talks to the YooKassa payments API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	shopID     string
	secretKey  string
	returnURL  string
	logger     *log.Logger
}

// New builds a Client. returnURL is where the customer lands after paying,
// normally the bot's t.me link.
func New(shopID, secretKey, returnURL string, logger *log.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		shopID:     shopID,
		secretKey:  secretKey,
		returnURL:  returnURL,
		logger:     logger,
	}
}

// NewWithBaseURL is New with an overridden API endpoint, used in tests.
func NewWithBaseURL(baseURL, shopID, secretKey, returnURL string, logger *log.Logger) *Client {
	c := New(shopID, secretKey, returnURL, logger)
	c.baseURL = baseURL
	return c
}

type amountBody struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type confirmationBody struct {
	Type            string `json:"type"`
	ReturnURL       string `json:"return_url,omitempty"`
	ConfirmationURL string `json:"confirmation_url,omitempty"`
}

type paymentBody struct {
	ID           string            `json:"id"`
	Status       string            `json:"status"`
	Amount       amountBody        `json:"amount"`
	Confirmation *confirmationBody `json:"confirmation,omitempty"`
}

// CreatePayment registers a redirect payment for the given amount in rubles.
func (c *Client) CreatePayment(ctx context.Context, amount int64, description string) (*Payment, error) {
	reqBody := struct {
		Amount       amountBody       `json:"amount"`
		Capture      bool             `json:"capture"`
		Confirmation confirmationBody `json:"confirmation"`
		Description  string           `json:"description"`
	}{
		Amount:       amountBody{Value: fmt.Sprintf("%d.00", amount), Currency: "RUB"},
		Capture:      true,
		Confirmation: confirmationBody{Type: "redirect", ReturnURL: c.returnURL},
		Description:  description,
	}

	raw, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal payment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotence-Key", idempotenceKey())
	req.SetBasicAuth(c.shopID, c.secretKey)

	var body paymentBody
	if err := c.do(req, &body); err != nil {
		return nil, err
	}
	if body.Confirmation == nil || body.Confirmation.ConfirmationURL == "" {
		return nil, fmt.Errorf("payment %s: no confirmation url in response", body.ID)
	}
	return &Payment{ID: body.ID, ConfirmationURL: body.Confirmation.ConfirmationURL}, nil
}

// PaymentStatus fetches the current status of a payment.
func (c *Client) PaymentStatus(ctx context.Context, id string) (Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/payments/"+id, nil)
	if err != nil {
		return StatusUnknown, err
	}
	req.SetBasicAuth(c.shopID, c.secretKey)

	var body paymentBody
	if err := c.do(req, &body); err != nil {
		return StatusUnknown, err
	}

	switch Status(body.Status) {
	case StatusPending, StatusSucceeded, StatusCanceled:
		return Status(body.Status), nil
	default:
		return StatusUnknown, nil
	}
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("yookassa request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Printf("yookassa %s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, snippet)
		return fmt.Errorf("yookassa: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode yookassa response: %w", err)
	}
	return nil
}

func idempotenceKey() string {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf[:])
}
