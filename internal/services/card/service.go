// Package card manages the card ledger: issuing virtual cards, listing
// and deleting them, and the card detail view with recent activity.
// Balance mutation is the payment executor's job, not this package's.
package card

import (
	"errors"
	"math"
	"math/rand"

	"gowallet/internal/models"
	"gowallet/internal/repositories"
)

type Service interface {
	// Create issues a card for the user registered under phone, with a
	// masked number and a randomly seeded initial balance.
	Create(input CreateCardInput) (*models.Card, error)

	// ListForUser returns all cards owned by a user.
	ListForUser(userID uint) ([]*models.Card, error)

	// Get returns a card with its most recent transactions.
	Get(cardID uint) (*Detail, error)

	// Delete removes a card only if it belongs to the requesting user.
	Delete(cardID, requestingUserID uint) error
}

type service struct {
	cards     repositories.CardRepository
	users     repositories.UserRepository
	txns      repositories.TransactionRepository
	companies repositories.CompanyRepository
}

func NewService(
	cards repositories.CardRepository,
	users repositories.UserRepository,
	txns repositories.TransactionRepository,
	companies repositories.CompanyRepository,
) Service {
	return &service{
		cards:     cards,
		users:     users,
		txns:      txns,
		companies: companies,
	}
}

func (s *service) Create(input CreateCardInput) (*models.Card, error) {
	if input.Phone == "" || input.CardNumber == "" || input.ExpiryMonth == "" ||
		input.ExpiryYear == "" || input.CardholderName == "" {
		return nil, ErrMissingFields
	}

	user, err := s.users.GetByPhone(input.Phone)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	card := &models.Card{
		UserID:         user.ID,
		CardNumber:     input.CardNumber,
		MaskedNumber:   models.MaskCardNumber(input.CardNumber),
		ExpiryMonth:    input.ExpiryMonth,
		ExpiryYear:     input.ExpiryYear,
		CardholderName: input.CardholderName,
		Balance:        randomInitialBalance(),
	}
	if err := s.cards.Create(card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *service) ListForUser(userID uint) ([]*models.Card, error) {
	return s.cards.GetByUserID(userID)
}

func (s *service) Get(cardID uint) (*Detail, error) {
	cardRecord, err := s.cards.GetByID(cardID)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	txns, err := s.txns.RecentByCard(cardID, RecentTransactionLimit)
	if err != nil {
		return nil, err
	}

	views := make([]TransactionView, 0, len(txns))
	for _, txn := range txns {
		view := TransactionView{
			ID:          txn.ID,
			CompanyID:   txn.CompanyID,
			CompanyName: "Unknown company",
			Amount:      txn.Amount,
			Timestamp:   txn.Timestamp,
		}
		if company, err := s.companies.GetByID(txn.CompanyID); err == nil {
			view.CompanyName = company.Name
			view.CompanyLogo = company.Logo
		}
		views = append(views, view)
	}

	return &Detail{Card: cardRecord, RecentTransactions: views}, nil
}

func (s *service) Delete(cardID, requestingUserID uint) error {
	err := s.cards.DeleteOwned(cardID, requestingUserID)
	if errors.Is(err, repositories.ErrCardNotFound) {
		// Foreign and missing cards are indistinguishable to the caller.
		return ErrCardNotFound
	}
	return err
}

func randomInitialBalance() float64 {
	balance := MinInitialBalance + rand.Float64()*(MaxInitialBalance-MinInitialBalance)
	return math.Round(balance*100) / 100
}
