package controllers

import (
	"github.com/google/uuid"
	"github.com/hauskasse/backend/internal/models"
	"github.com/shopspring/decimal"
)

// CategoryEditable are the fields a category update can set.
type CategoryEditable struct {
	Name     string `json:"name" binding:"required" example:"Groceries"`
	Color    string `json:"color" example:"#BAFFC9"`
	IsIncome bool   `json:"isIncome" example:"false"`
	IsActive bool   `json:"isActive" example:"true"`
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:     editable.Name,
		Color:    editable.Color,
		IsIncome: editable.IsIncome,
		IsActive: editable.IsActive,
	}
}

// LimitEditable is the request body for setting a monthly limit.
type LimitEditable struct {
	CategoryID uuid.UUID       `json:"categoryId" binding:"required" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	Month      string          `json:"month" binding:"required" example:"2026-01"`
	Limit      decimal.Decimal `json:"limit" example:"100.00"` // Decimal limit amount, never negative
}

// ManageCategoriesPage is the view model for the category management page.
type ManageCategoriesPage struct {
	Categories   []models.Category
	PastelColors []string
}
