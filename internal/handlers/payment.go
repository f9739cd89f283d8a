package handlers

import (
	"errors"

	"gowallet/internal/services/payment"
	"gowallet/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	paymentService payment.Service
}

func NewPaymentHandler(paymentService payment.Service) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// MakePayment debits a card in favor of a company identified by its
// account number. The response mirrors the executor's receipt; an
// insufficient-funds rejection reports the available balance.
func (h *PaymentHandler) MakePayment(c *fiber.Ctx) error {
	var req payment.Request
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid amount or ID format")
	}
	if req.CardID == 0 || req.AccountNumber == "" {
		return response.BadRequest(c, "Missing required field")
	}

	receipt, err := h.paymentService.Pay(c.Context(), req)
	if err != nil {
		var insufficient *payment.InsufficientFundsError
		switch {
		case errors.Is(err, payment.ErrInvalidAmount):
			return response.BadRequest(c, "Payment amount must be positive")
		case errors.Is(err, payment.ErrCardNotFound):
			return response.NotFound(c, "Card not found")
		case errors.Is(err, payment.ErrCompanyNotFound):
			return response.NotFound(c, "Company with the specified account number not found")
		case errors.As(err, &insufficient):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":             "Insufficient funds on card",
				"available_balance": insufficient.Available,
			})
		default:
			return response.ServerError(c, "Error processing payment")
		}
	}

	return c.JSON(fiber.Map{
		"status":         "success",
		"message":        "Payment successfully completed",
		"transaction_id": receipt.TransactionID,
		"new_balance":    receipt.NewBalance,
		"transaction_details": fiber.Map{
			"amount":    receipt.Amount,
			"company":   receipt.Company,
			"timestamp": receipt.Timestamp,
		},
	})
}
