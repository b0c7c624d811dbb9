package models

import (
	"github.com/google/uuid"
	"github.com/hauskasse/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MonthlyBudget is the spending limit for one category in one month.
type MonthlyBudget struct {
	DefaultModel
	CategoryID  uuid.UUID   `json:"categoryId" gorm:"uniqueIndex:budget_category_month" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category the limit applies to
	Category    Category    `json:"-"`
	Month       types.Month `json:"month" gorm:"uniqueIndex:budget_category_month" example:"2026-01"` // The month the limit applies to
	LimitAmount types.Cents `json:"limitAmount" example:"10000"`                                      // The limit in cents, never negative
}

// BeforeSave validates the limit.
func (b *MonthlyBudget) BeforeSave(_ *gorm.DB) error {
	if b.LimitAmount < 0 {
		return ErrLimitNegative
	}

	return nil
}

// UpsertMonthlyBudget inserts the limit or, if the category already has
// a limit for the month, replaces it.
func UpsertMonthlyBudget(db *gorm.DB, budget *MonthlyBudget) error {
	if budget.LimitAmount < 0 {
		return ErrLimitNegative
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"limit_amount", "updated_at"}),
	}).Create(budget).Error
}

// BudgetsForMonth returns all limits set for the month.
func BudgetsForMonth(db *gorm.DB, month types.Month) ([]MonthlyBudget, error) {
	var budgets []MonthlyBudget
	err := db.Where(&MonthlyBudget{Month: month}).Find(&budgets).Error
	return budgets, err
}

// CopyBudgets copies all limits from the source month to the target
// month and returns the number of limits created.
//
// If the target month already has at least one limit, nothing is
// copied. The existence check and the copy run in one database
// transaction so that concurrent requests for the same month cannot
// copy twice.
func CopyBudgets(db *gorm.DB, source, target types.Month) (int64, error) {
	var copied int64

	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&MonthlyBudget{}).Where(&MonthlyBudget{Month: target}).Count(&count).Error
		if err != nil {
			return err
		}

		// The target month is already budgeted, don't overwrite
		if count > 0 {
			return nil
		}

		budgets, err := BudgetsForMonth(tx, source)
		if err != nil {
			return err
		}

		for _, budget := range budgets {
			clone := MonthlyBudget{
				CategoryID:  budget.CategoryID,
				Month:       target,
				LimitAmount: budget.LimitAmount,
			}

			err = tx.Create(&clone).Error
			if err != nil {
				return err
			}

			copied++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return copied, nil
}
