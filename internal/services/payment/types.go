package payment

import "time"

// Request identifies the company by its merchant-chosen account number,
// not its internal ID; the mobile client reads it off the QR deep link.
type Request struct {
	CardID        uint    `json:"card_id"`
	AccountNumber string  `json:"company_id"`
	Amount        float64 `json:"amount"`
}

// Receipt describes one committed payment.
type Receipt struct {
	TransactionID uint      `json:"transaction_id"`
	Reference     string    `json:"reference"`
	NewBalance    float64   `json:"new_balance"`
	Amount        float64   `json:"amount"`
	Company       string    `json:"company"`
	Timestamp     time.Time `json:"timestamp"`
}
