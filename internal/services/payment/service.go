// Package payment implements the payment executor: it resolves a card
// and a company, validates the amount against the balance, and commits
// the debit together with the transaction record as one atomic unit.
package payment

import (
	"context"
	"errors"
	"log"
	"time"

	"gowallet/internal/models"
	"gowallet/internal/repositories"

	"github.com/google/uuid"
)

type Service interface {
	// Pay executes one payment. Each validation step short-circuits
	// with its own error kind; the debit and the transaction append
	// either commit together or not at all.
	Pay(ctx context.Context, req Request) (*Receipt, error)
}

type service struct {
	cards     repositories.CardRepository
	companies repositories.CompanyRepository
	now       func() time.Time
}

func NewService(cards repositories.CardRepository, companies repositories.CompanyRepository) Service {
	return &service{
		cards:     cards,
		companies: companies,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Pay(ctx context.Context, req Request) (*Receipt, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	card, err := s.cards.GetByID(req.CardID)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	company, err := s.companies.GetByAccountNumber(req.AccountNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	// Advisory pre-check so an obviously underfunded request never
	// opens a transaction. The authoritative check happens below,
	// under the row lock.
	if card.Balance < req.Amount {
		return nil, &InsufficientFundsError{Available: card.Balance}
	}

	var receipt *Receipt
	err = s.cards.ExecuteInTransaction(func(tx repositories.CardRepository) error {
		locked, err := tx.GetByIDForUpdate(req.CardID)
		if err != nil {
			return err
		}

		if locked.Balance < req.Amount {
			return &InsufficientFundsError{Available: locked.Balance}
		}

		locked.Balance -= req.Amount
		if err := tx.Update(locked); err != nil {
			return err
		}

		txn := &models.Transaction{
			Reference: uuid.NewString(),
			CardID:    locked.ID,
			CompanyID: company.ID,
			Amount:    req.Amount,
			Timestamp: s.now(),
		}
		if err := tx.CreateTransaction(txn); err != nil {
			return err
		}

		receipt = &Receipt{
			TransactionID: txn.ID,
			Reference:     txn.Reference,
			NewBalance:    locked.Balance,
			Amount:        req.Amount,
			Company:       company.Name,
			Timestamp:     txn.Timestamp,
		}
		return nil
	})
	if err != nil {
		var insufficient *InsufficientFundsError
		if errors.As(err, &insufficient) {
			return nil, insufficient
		}
		log.Printf("payment failed for card %d: %v", req.CardID, err)
		return nil, ErrTransactionFailed
	}

	return receipt, nil
}
