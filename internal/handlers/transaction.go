package handlers

import (
	"gowallet/internal/services/transaction"
	"gowallet/internal/utils/pagination"
	"gowallet/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	txnService transaction.Service
}

func NewTransactionHandler(txnService transaction.Service) *TransactionHandler {
	return &TransactionHandler{txnService: txnService}
}

// CompanyTransactions returns a page of payments received by a company,
// newest first, with the page total amount.
func (h *TransactionHandler) CompanyTransactions(c *fiber.Ctx) error {
	companyID, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid company ID")
	}

	p := pagination.ParseFromRequest(c, transaction.CompanyPageSize)

	history, err := h.txnService.HistoryForCompany(uint(companyID), p.Offset, p.Limit)
	if err != nil {
		return response.ServerError(c, "Failed to fetch transactions")
	}
	p.Total = history.Total

	resp := pagination.Response(p, history.Rows)
	resp["total_amount"] = history.TotalAmount
	return c.JSON(resp)
}
