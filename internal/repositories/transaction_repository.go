package repositories

import (
	"gowallet/internal/models"
)

// TransactionRepository reads the append-only payment log. It is
// strictly read-side: rows are written through
// CardRepository.CreateTransaction so the append shares the atomic
// unit with the balance debit.
type TransactionRepository interface {
	// RecentByCard returns the newest transactions for a card, newest first.
	RecentByCard(cardID uint, limit int) ([]*models.Transaction, error)

	// ByCompanyPaginated returns one page of a company's transactions,
	// newest first, along with the total row count.
	ByCompanyPaginated(companyID uint, offset, limit int) ([]*models.Transaction, int64, error)
}

// Implementation is in transaction_repository_impl.go
