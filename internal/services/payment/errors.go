package payment

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount     = errors.New("payment amount must be positive")
	ErrCardNotFound      = errors.New("card not found")
	ErrCompanyNotFound   = errors.New("company with the specified account number not found")
	ErrInsufficientFunds = errors.New("insufficient funds on card")
	ErrTransactionFailed = errors.New("transaction failed")
)

// InsufficientFundsError reports the balance available at the time the
// payment was rejected. It unwraps to ErrInsufficientFunds.
type InsufficientFundsError struct {
	Available float64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds on card: available %.2f", e.Available)
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}
