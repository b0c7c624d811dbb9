package controllers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hauskasse/backend/internal/models"
	"github.com/hauskasse/backend/internal/types"
)

// MonthView is the full month view. It backs both the rendered HTML
// page and the JSON variant of the endpoint.
//
// All amounts are display strings. The cent values they come from never
// leave the model layer.
type MonthView struct {
	Month        string            `json:"month" example:"2026-01"`
	MonthDisplay string            `json:"monthDisplay" example:"January 2026"`
	Previous     string            `json:"previous" example:"2025-12"` // Month key of the previous month
	Next         string            `json:"next" example:"2026-02"`     // Month key of the next month
	Overview     Overview          `json:"overview"`
	BudgetRows   []BudgetRow       `json:"budgetRows"`
	VirtualRows  []VirtualRow      `json:"virtualRows"`
	Transactions []TransactionRow  `json:"transactions"`
	Categories   []models.Category `json:"categories"` // For the add-transaction form
	Cards        []models.Card     `json:"cards"`      // For the add-transaction form
}

// Overview is the financial summary shown at the top of the month view.
type Overview struct {
	TotalIncome   string `json:"totalIncome" example:"2317.34"`
	TotalExpenses string `json:"totalExpenses" example:"1337.00"`
	NetBalance    string `json:"netBalance" example:"980.34"`
	NetIsPositive bool   `json:"netIsPositive" example:"true"`
}

// BudgetRow is one category's budget line in the month view.
type BudgetRow struct {
	CategoryID       uuid.UUID `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	Name             string    `json:"name" example:"Groceries"`
	Color            string    `json:"color" example:"#BAFFC9"`
	Limit            string    `json:"limit" example:"100.00"`
	Spent            string    `json:"spent" example:"25.00"`
	Remaining        string    `json:"remaining" example:"75.00"`
	PercentSpent     string    `json:"percentSpent" example:"25"`
	PercentRemaining string    `json:"percentRemaining" example:"75"`
	IsOverBudget     bool      `json:"isOverBudget" example:"false"`
	IsIncome         bool      `json:"isIncome" example:"false"`
	IsActive         bool      `json:"isActive" example:"true"`
}

// VirtualRow is a synthetic budget line in the month view.
type VirtualRow struct {
	Name     string `json:"name" example:"Total Income"`
	Amount   string `json:"amount" example:"2317.34"`
	IsIncome bool   `json:"isIncome" example:"true"`
}

// TransactionRow is one transaction line in the month view.
type TransactionRow struct {
	ID            uuid.UUID  `json:"id" example:"d1b4a4a4-37b6-4350-bb7a-794c6fcef668"`
	CategoryID    uuid.UUID  `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	CardID        *uuid.UUID `json:"cardId" example:"10b9705d-3356-459e-9d5a-28d42a6c4547"`
	CategoryName  string     `json:"categoryName" example:"Groceries"`
	CategoryColor string     `json:"categoryColor" example:"#BAFFC9"`
	CardName      string     `json:"cardName" example:"Visa Gold"`
	Date          string     `json:"date" example:"2026-01-05"`
	DateDisplay   string     `json:"dateDisplay" example:"5 Jan 2026"`
	Amount        string     `json:"amount" example:"45.50"`
	IsIncome      bool       `json:"isIncome" example:"false"`
	Notes         string     `json:"notes" example:"Weekly groceries"`
}

// newBudgetRow builds the display row for an enriched budget view.
func newBudgetRow(view models.CategoryBudgetView) BudgetRow {
	return BudgetRow{
		CategoryID:       view.Category.ID,
		Name:             view.Category.Name,
		Color:            view.Category.Color,
		Limit:            view.Limit().String(),
		Spent:            view.Spent.String(),
		Remaining:        view.Remaining.String(),
		PercentSpent:     fmt.Sprintf("%.0f", view.PercentSpent()),
		PercentRemaining: fmt.Sprintf("%.0f", view.PercentRemaining()),
		IsOverBudget:     view.OverBudget(),
		IsIncome:         view.Category.IsIncome,
		IsActive:         view.Category.IsActive,
	}
}

// newTransactionRow builds the display row for a transaction.
//
// Transactions can reference categories and cards that no longer exist,
// those render with fallback values instead of failing the whole view.
func newTransactionRow(t models.Transaction, categories []models.Category, cards []models.Card) TransactionRow {
	name := "Unknown"
	color := "#ffffff"
	for _, category := range categories {
		if category.ID == t.CategoryID {
			name = category.Name
			color = category.Color
			break
		}
	}

	cardName := "Cash"
	if t.CardID != nil {
		for _, card := range cards {
			if card.ID == *t.CardID {
				cardName = card.Name
				break
			}
		}
	}

	return TransactionRow{
		ID:            t.ID,
		CategoryID:    t.CategoryID,
		CardID:        t.CardID,
		CategoryName:  name,
		CategoryColor: color,
		CardName:      cardName,
		Date:          t.Date.Format("2006-01-02"),
		DateDisplay:   t.Date.Format("2 Jan 2006"),
		Amount:        t.Amount.Abs().String(),
		IsIncome:      t.Amount > 0,
		Notes:         t.Notes,
	}
}

// newOverview builds the display summary for a month.
func newOverview(summary models.MonthlySummary) Overview {
	return Overview{
		TotalIncome:   summary.TotalIncome.String(),
		TotalExpenses: summary.TotalExpenses.String(),
		NetBalance:    summary.Net.String(),
		NetIsPositive: summary.Net >= 0,
	}
}

// newMonthView assembles the full view model for a month.
func newMonthView(month types.Month, summary models.MonthlySummary, views []models.CategoryBudgetView, virtual []models.VirtualCategory, transactions []models.Transaction, categories []models.Category, cards []models.Card) MonthView {
	budgetRows := make([]BudgetRow, 0, len(views))
	for _, view := range views {
		budgetRows = append(budgetRows, newBudgetRow(view))
	}

	virtualRows := make([]VirtualRow, 0, len(virtual))
	for _, v := range virtual {
		virtualRows = append(virtualRows, VirtualRow{
			Name:     v.Name,
			Amount:   v.Amount.String(),
			IsIncome: v.IsIncome,
		})
	}

	transactionRows := make([]TransactionRow, 0, len(transactions))
	for _, t := range transactions {
		transactionRows = append(transactionRows, newTransactionRow(t, categories, cards))
	}

	return MonthView{
		Month:        month.String(),
		MonthDisplay: month.Display(),
		Previous:     month.AddDate(0, -1).String(),
		Next:         month.AddDate(0, 1).String(),
		Overview:     newOverview(summary),
		BudgetRows:   budgetRows,
		VirtualRows:  virtualRows,
		Transactions: transactionRows,
		Categories:   categories,
		Cards:        cards,
	}
}
