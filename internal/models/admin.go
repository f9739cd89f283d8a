package models

import (
	"gorm.io/gorm"
)

// Admin is an operator identity for the company management surface.
// It is distinct from User and takes no part in the payment flow.
type Admin struct {
	gorm.Model
	Username     string `gorm:"size:50;uniqueIndex;not null"`
	Email        string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
}
