package models

import (
	"time"
)

// Transaction is an immutable record of one completed payment. Rows are
// created by the payment executor in a terminal completed state and are
// never updated or deleted; failed payments leave no record.
type Transaction struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Reference string    `gorm:"size:36;uniqueIndex" json:"reference"`
	CardID    uint      `gorm:"index;not null" json:"card_id"`
	CompanyID uint      `gorm:"index;not null" json:"company_id"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
	CreatedAt time.Time `json:"-"`
}
