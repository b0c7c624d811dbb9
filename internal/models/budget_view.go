package models

import (
	"github.com/hauskasse/backend/internal/types"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// CategoryBudgetView is the merged snapshot of one category's limit
// and actual spend for one month. It is computed fresh per request
// and never persisted.
type CategoryBudgetView struct {
	Category  Category       `json:"category"`
	Budget    *MonthlyBudget `json:"budget"`    // nil if no limit is set for the month
	Spent     types.Cents    `json:"spent"`     // Actual spend (or income) in the month
	Remaining types.Cents    `json:"remaining"` // Good-direction distance from the limit
}

// BudgetViews merges all categories with the month's limits.
//
// A category is part of the result if it is active or has a limit for
// the month; inactive categories without a limit are dropped. Spent
// and Remaining are left at zero, they are filled in by Enrich once
// the month's transactions are known.
func BudgetViews(db *gorm.DB, month types.Month) ([]CategoryBudgetView, error) {
	categories, err := Categories(db)
	if err != nil {
		return nil, err
	}

	budgets, err := BudgetsForMonth(db, month)
	if err != nil {
		return nil, err
	}

	views := make([]CategoryBudgetView, 0, len(categories))
	for _, category := range categories {
		var budget *MonthlyBudget
		if i := slices.IndexFunc(budgets, func(b MonthlyBudget) bool { return b.CategoryID == category.ID }); i != -1 {
			budget = &budgets[i]
		}

		if !category.IsActive && budget == nil {
			continue
		}

		views = append(views, CategoryBudgetView{
			Category: category,
			Budget:   budget,
		})
	}

	return views, nil
}

// Limit returns the month's limit, or zero if none is set.
func (v CategoryBudgetView) Limit() types.Cents {
	if v.Budget == nil {
		return 0
	}
	return v.Budget.LimitAmount
}

// Enrich computes Spent and Remaining from the month's transactions.
//
// For income categories Spent is the sum of the positive amounts and
// Remaining is spent − limit, so being ahead of the target is
// positive. For expense categories Spent is the sum of the absolute
// negative amounts and Remaining is limit − spent, so staying under
// budget is positive.
func (v *CategoryBudgetView) Enrich(transactions []Transaction) {
	var spent types.Cents
	for _, t := range transactions {
		if t.CategoryID != v.Category.ID {
			continue
		}

		if v.Category.IsIncome && t.Amount > 0 {
			spent += t.Amount
		} else if !v.Category.IsIncome && t.Amount < 0 {
			spent += t.Amount.Abs()
		}
	}

	v.Spent = spent

	if v.Category.IsIncome {
		v.Remaining = spent - v.Limit()
	} else {
		v.Remaining = v.Limit() - spent
	}
}

// PercentSpent returns the spend as a percentage of the limit.
// A limit of zero always yields zero.
func (v CategoryBudgetView) PercentSpent() float64 {
	if v.Limit() == 0 {
		return 0
	}
	return float64(v.Spent) / float64(v.Limit()) * 100
}

// PercentRemaining returns the remaining amount as a percentage of the
// limit. A limit of zero always yields zero.
func (v CategoryBudgetView) PercentRemaining() float64 {
	if v.Limit() == 0 {
		return 0
	}
	return float64(v.Remaining) / float64(v.Limit()) * 100
}

// OverBudget reports whether the category is behind its target. This
// holds for both directions: expenses above the limit and income below
// it.
func (v CategoryBudgetView) OverBudget() bool {
	return v.Remaining < 0
}
