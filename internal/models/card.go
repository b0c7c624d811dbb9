package models

import (
	"strings"

	"gorm.io/gorm"
)

// Card represents a payment method that can be tagged on a
// transaction. Transactions without a card count as cash.
type Card struct {
	DefaultModel
	Name     string `json:"name" gorm:"uniqueIndex" example:"Visa Gold"` // Name of the card, unique
	IsActive bool   `json:"isActive" example:"true" default:"true"`      // Inactive cards are not offered for new transactions
}

// BeforeSave validates the card.
func (c *Card) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrCardNameEmpty
	}

	return nil
}

// Cards returns all cards ordered by name.
func Cards(db *gorm.DB) ([]Card, error) {
	var cards []Card
	err := db.Order("name ASC").Find(&cards).Error
	return cards, err
}

// ActiveCards returns all active cards ordered by name.
func ActiveCards(db *gorm.DB) ([]Card, error) {
	var cards []Card
	err := db.Where(&Card{IsActive: true}).Order("name ASC").Find(&cards).Error
	return cards, err
}
