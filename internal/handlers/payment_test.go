package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"gowallet/internal/services/payment"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPaymentService returns a canned receipt or error.
type stubPaymentService struct {
	receipt *payment.Receipt
	err     error
	lastReq payment.Request
}

func (s *stubPaymentService) Pay(ctx context.Context, req payment.Request) (*payment.Receipt, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.receipt, nil
}

func paymentApp(svc payment.Service) *fiber.App {
	app := fiber.New()
	app.Post("/api/payments", NewPaymentHandler(svc).MakePayment)
	return app
}

func postPayment(t *testing.T, app *fiber.App, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/payments", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	return resp.StatusCode, payload
}

func TestMakePayment_Success(t *testing.T) {
	when := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc := &stubPaymentService{receipt: &payment.Receipt{
		TransactionID: 11,
		Reference:     "b2f1c9c0-0d2e-4a8d-9f3b-1f6f1a2b3c4d",
		NewBalance:    400000,
		Amount:        100000,
		Company:       "Acme Utilities",
		Timestamp:     when,
	}}
	app := paymentApp(svc)

	status, payload := postPayment(t, app, `{"card_id":1,"company_id":"5899438","amount":100000}`)
	require.Equal(t, fiber.StatusOK, status)

	assert.Equal(t, "success", payload["status"])
	assert.Equal(t, float64(11), payload["transaction_id"])
	assert.Equal(t, float64(400000), payload["new_balance"])

	details := payload["transaction_details"].(map[string]interface{})
	assert.Equal(t, float64(100000), details["amount"])
	assert.Equal(t, "Acme Utilities", details["company"])

	assert.Equal(t, uint(1), svc.lastReq.CardID)
	assert.Equal(t, "5899438", svc.lastReq.AccountNumber)
}

func TestMakePayment_InsufficientFunds(t *testing.T) {
	svc := &stubPaymentService{err: &payment.InsufficientFundsError{Available: 50}}
	app := paymentApp(svc)

	status, payload := postPayment(t, app, `{"card_id":1,"company_id":"5899438","amount":100}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Insufficient funds on card", payload["error"])
	assert.Equal(t, float64(50), payload["available_balance"])
}

func TestMakePayment_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid amount", payment.ErrInvalidAmount, fiber.StatusBadRequest},
		{"unknown card", payment.ErrCardNotFound, fiber.StatusNotFound},
		{"unknown company", payment.ErrCompanyNotFound, fiber.StatusNotFound},
		{"transaction failure", payment.ErrTransactionFailed, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := paymentApp(&stubPaymentService{err: tt.err})

			status, _ := postPayment(t, app, `{"card_id":1,"company_id":"5899438","amount":100}`)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestMakePayment_MissingFields(t *testing.T) {
	app := paymentApp(&stubPaymentService{})

	tests := []struct {
		name string
		body string
	}{
		{"no card id", `{"company_id":"5899438","amount":100}`},
		{"no account number", `{"card_id":1,"amount":100}`},
		{"malformed json", `{"card_id":"one"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := postPayment(t, app, tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
		})
	}
}
