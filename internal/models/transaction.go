package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/hauskasse/backend/internal/types"
	"gorm.io/gorm"
)

// Transaction represents a single booking against a category.
//
// The sign of Amount is derived from the category at the time the
// transaction is written: income categories store positive amounts,
// expense categories negative ones. Editing the category afterwards
// does not rewrite existing transactions.
type Transaction struct {
	DefaultModel
	CategoryID uuid.UUID   `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category the transaction belongs to
	Category   Category    `json:"-"`
	CardID     *uuid.UUID  `json:"cardId" example:"10b9705d-3356-459e-9d5a-28d42a6c4547"` // ID of the card used, nil for cash
	Card       *Card       `json:"-"`
	Date       time.Time   `json:"date" example:"2026-01-05T00:00:00Z"` // Day the transaction happened
	Amount     types.Cents `json:"amount" example:"-2500"`              // Amount in cents, negative for expenses
	Notes      string      `json:"notes" example:"Weekly groceries" default:""`
}

// BeforeSave sets the timezone for the Date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) (err error) {
	t.Date = t.Date.In(time.UTC)
	return nil
}

// Normalize looks up the transaction's category and adjusts the sign
// of the amount to the category's direction. It must run before the
// transaction is written.
func (t *Transaction) Normalize(db *gorm.DB) error {
	var category Category
	err := db.First(&category, "id = ?", t.CategoryID).Error
	if err != nil {
		return err
	}

	t.Amount = t.Amount.Normalized(category.IsIncome)
	return nil
}

// TransactionsForMonth returns the month's transactions, newest first.
func TransactionsForMonth(db *gorm.DB, month types.Month) ([]Transaction, error) {
	from, _ := month.Value()
	to, _ := month.AddDate(0, 1).Value()

	var transactions []Transaction
	err := db.
		Where("date >= ? AND date < ?", from, to).
		Order("date DESC").
		Find(&transactions).Error

	return transactions, err
}

// MonthlySummary sums up a month's transactions.
type MonthlySummary struct {
	Month         types.Month `json:"month" example:"2026-01"`
	TotalIncome   types.Cents `json:"totalIncome" example:"231734"`   // Sum of all positive amounts
	TotalExpenses types.Cents `json:"totalExpenses" example:"133700"` // Sum of the absolute values of all negative amounts
	Net           types.Cents `json:"net" example:"98034"`            // Income minus expenses
}

// Summarize computes the monthly totals over a month's transactions.
func Summarize(month types.Month, transactions []Transaction) MonthlySummary {
	summary := MonthlySummary{Month: month}

	for _, t := range transactions {
		if t.Amount > 0 {
			summary.TotalIncome += t.Amount
		} else {
			summary.TotalExpenses += t.Amount.Abs()
		}
	}

	summary.Net = summary.TotalIncome - summary.TotalExpenses
	return summary
}
