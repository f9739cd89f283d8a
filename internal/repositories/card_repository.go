package repositories

import (
	"errors"

	"gowallet/internal/models"
)

var (
	ErrCardNotFound = errors.New("card not found")
)

// CardRepository defines the interface for card-related database
// operations. It also carries the transaction-append operation so the
// payment executor can debit a card and record the payment against one
// transactional handle via ExecuteInTransaction.
type CardRepository interface {
	// Core operations
	Create(card *models.Card) error
	GetByID(id uint) (*models.Card, error)
	GetByUserID(userID uint) ([]*models.Card, error)
	Update(card *models.Card) error

	// GetByIDForUpdate locks the card row for the duration of the
	// surrounding transaction. Only meaningful inside ExecuteInTransaction.
	GetByIDForUpdate(id uint) (*models.Card, error)

	// DeleteOwned removes a card only if it belongs to the given user.
	// A foreign card and a missing card are both ErrCardNotFound.
	DeleteOwned(cardID, userID uint) error

	// CreateTransaction appends a payment record.
	CreateTransaction(txn *models.Transaction) error

	// ExecuteInTransaction runs fn inside a database transaction. All
	// repository calls made through the handle passed to fn commit or
	// roll back together.
	ExecuteInTransaction(fn func(CardRepository) error) error
}
