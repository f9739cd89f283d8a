package models

import (
	"gorm.io/gorm"
)

// Card is a virtual payment instrument owned by exactly one user.
// Its balance is only ever mutated by the payment executor.
type Card struct {
	gorm.Model
	UserID         uint    `gorm:"index;not null"`
	CardNumber     string  `gorm:"size:16;not null" json:"-"`
	MaskedNumber   string  `gorm:"size:19"`
	ExpiryMonth    string  `gorm:"size:2"`
	ExpiryYear     string  `gorm:"size:2"`
	CardholderName string  `gorm:"size:100"`
	Balance        float64 `gorm:"not null;default:0"`
}

// MaskCardNumber returns the display form of a card number: the last
// four digits stay visible, the rest is replaced. Every masked number
// shown anywhere in the system is derived through this function.
func MaskCardNumber(number string) string {
	if len(number) < 4 {
		return "**** **** **** ****"
	}
	return "**** **** **** " + number[len(number)-4:]
}

// LastFour returns the visible tail of the card number.
func (c *Card) LastFour() string {
	if len(c.CardNumber) < 4 {
		return c.CardNumber
	}
	return c.CardNumber[len(c.CardNumber)-4:]
}
