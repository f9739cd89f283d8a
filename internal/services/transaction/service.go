// Package transaction reads the append-only payment log. It never
// writes: transaction rows are created exclusively by the payment
// executor inside its atomic unit.
package transaction

import (
	"time"

	"gowallet/internal/models"
	"gowallet/internal/repositories"
)

// CompanyPageSize is the page size of the company history view.
const CompanyPageSize = 20

// CompanyHistoryRow is one payment received by a company, enriched with
// the paying card and user. Payments from deleted cards stay in the log
// and render with placeholder card and payer fields.
type CompanyHistoryRow struct {
	ID         uint      `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	CardNumber string    `json:"card_number"`
	UserName   string    `json:"user_name"`
	Amount     float64   `json:"amount"`
}

// CompanyHistory is one page of a company's received payments.
type CompanyHistory struct {
	Rows        []CompanyHistoryRow `json:"rows"`
	TotalAmount float64             `json:"total_amount"`
	Total       int64               `json:"total"`
}

type Service interface {
	RecentByCard(cardID uint, limit int) ([]*models.Transaction, error)
	HistoryForCompany(companyID uint, offset, limit int) (*CompanyHistory, error)
}

type service struct {
	txns  repositories.TransactionRepository
	cards repositories.CardRepository
	users repositories.UserRepository
}

func NewService(
	txns repositories.TransactionRepository,
	cards repositories.CardRepository,
	users repositories.UserRepository,
) Service {
	return &service{
		txns:  txns,
		cards: cards,
		users: users,
	}
}

func (s *service) RecentByCard(cardID uint, limit int) ([]*models.Transaction, error) {
	return s.txns.RecentByCard(cardID, limit)
}

func (s *service) HistoryForCompany(companyID uint, offset, limit int) (*CompanyHistory, error) {
	txns, total, err := s.txns.ByCompanyPaginated(companyID, offset, limit)
	if err != nil {
		return nil, err
	}

	history := &CompanyHistory{
		Rows:  make([]CompanyHistoryRow, 0, len(txns)),
		Total: total,
	}
	for _, txn := range txns {
		row := CompanyHistoryRow{
			ID:         txn.ID,
			Timestamp:  txn.Timestamp,
			CardNumber: "Unknown card",
			UserName:   "Unknown user",
			Amount:     txn.Amount,
		}
		if cardRecord, err := s.cards.GetByID(txn.CardID); err == nil {
			row.CardNumber = models.MaskCardNumber(cardRecord.CardNumber)
			if user, err := s.users.GetByID(cardRecord.UserID); err == nil {
				row.UserName = user.Name
			}
		}
		history.TotalAmount += txn.Amount
		history.Rows = append(history.Rows, row)
	}
	return history, nil
}
