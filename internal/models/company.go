package models

import (
	"gorm.io/gorm"
)

// Company is a payment recipient managed by administrators. It is
// identified externally by its merchant-chosen account number and
// internally by its database ID; transactions reference the latter.
type Company struct {
	gorm.Model
	Name          string `gorm:"size:255;not null"`
	Comments      string `gorm:"size:200"`
	Address       string `gorm:"type:text"`
	AccountNumber string `gorm:"size:50;uniqueIndex;not null"`
	QRCode        string `gorm:"type:text;not null"`
	Logo          string `gorm:"size:255"`
}
