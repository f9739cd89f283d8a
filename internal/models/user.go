package models

import (
	"gorm.io/gorm"
)

// User is a wallet holder registered from the mobile client.
// Users are identified by their phone number and own zero or more cards.
type User struct {
	gorm.Model
	Name         string `gorm:"size:255;not null"`
	Phone        string `gorm:"size:20;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Cards        []Card `gorm:"foreignKey:UserID"`
}
