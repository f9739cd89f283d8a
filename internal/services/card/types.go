package card

import (
	"time"

	"gowallet/internal/models"
)

// Initial balance range for newly issued cards. The random seeding is a
// stand-in for a funding mechanism, not a domain rule.
const (
	MinInitialBalance = 100_000
	MaxInitialBalance = 5_000_000
)

// RecentTransactionLimit caps the transaction list on the card detail view.
const RecentTransactionLimit = 5

// CreateCardInput is the registration-collaborator boundary: the owner
// is addressed by phone number, not internal ID.
type CreateCardInput struct {
	Phone          string `json:"phone"`
	CardNumber     string `json:"card_number"`
	ExpiryMonth    string `json:"expiry_month"`
	ExpiryYear     string `json:"expiry_year"`
	CardholderName string `json:"cardholder_name"`
}

// CardInfo is the public view of a newly issued card.
type CardInfo struct {
	MaskedNumber string  `json:"masked_number"`
	Balance      float64 `json:"balance"`
}

// TransactionView is one history row on the card detail view, enriched
// with the receiving company.
type TransactionView struct {
	ID          uint      `json:"id"`
	CompanyID   uint      `json:"company_id"`
	CompanyName string    `json:"company_name"`
	CompanyLogo string    `json:"company_logo,omitempty"`
	Amount      float64   `json:"amount"`
	Timestamp   time.Time `json:"timestamp"`
}

// Detail is the full card view with recent activity.
type Detail struct {
	Card               *models.Card      `json:"card"`
	RecentTransactions []TransactionView `json:"recent_transactions"`
}
