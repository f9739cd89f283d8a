package repositories

import (
	"fmt"

	"gowallet/internal/models"

	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) RecentByCard(cardID uint, limit int) ([]*models.Transaction, error) {
	var txns []*models.Transaction
	err := r.db.
		Where("card_id = ?", cardID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return txns, nil
}

func (r *transactionRepository) ByCompanyPaginated(companyID uint, offset, limit int) ([]*models.Transaction, int64, error) {
	var total int64
	if err := r.db.Model(&models.Transaction{}).Where("company_id = ?", companyID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count company transactions: %w", err)
	}

	var txns []*models.Transaction
	err := r.db.
		Where("company_id = ?", companyID).
		Order("timestamp DESC").
		Offset(offset).
		Limit(limit).
		Find(&txns).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get company transactions: %w", err)
	}
	return txns, total, nil
}
