package controllers

import (
	"github.com/hauskasse/backend/internal/models"
)

// CardEditable are the fields a card update can set.
type CardEditable struct {
	Name     string `json:"name" binding:"required" example:"Visa Gold"`
	IsActive bool   `json:"isActive" example:"true"`
}

// ManageCardsPage is the view model for the card management page.
type ManageCardsPage struct {
	Cards []models.Card
}
