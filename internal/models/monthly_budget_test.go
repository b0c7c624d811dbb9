package models_test

import (
	"github.com/hauskasse/backend/internal/models"
	"github.com/hauskasse/backend/internal/types"
)

func (suite *TestSuiteStandard) TestMonthlyBudgetNegativeLimit() {
	category := suite.createTestCategory(models.Category{IsActive: true})

	budget := models.MonthlyBudget{
		CategoryID:  category.ID,
		Month:       types.NewMonth(2026, 1),
		LimitAmount: -1,
	}

	err := models.DB.Create(&budget).Error
	suite.Assert().ErrorIs(err, models.ErrLimitNegative)
}

func (suite *TestSuiteStandard) TestUpsertMonthlyBudget() {
	category := suite.createTestCategory(models.Category{IsActive: true})
	month := types.NewMonth(2026, 1)

	first := models.MonthlyBudget{CategoryID: category.ID, Month: month, LimitAmount: 10000}
	err := models.UpsertMonthlyBudget(models.DB, &first)
	suite.Require().NoError(err)

	second := models.MonthlyBudget{CategoryID: category.ID, Month: month, LimitAmount: 12500}
	err = models.UpsertMonthlyBudget(models.DB, &second)
	suite.Require().NoError(err)

	budgets, err := models.BudgetsForMonth(models.DB, month)
	suite.Require().NoError(err)
	suite.Require().Len(budgets, 1, "upserting twice must not create a second limit")
	suite.Assert().Equal(types.Cents(12500), budgets[0].LimitAmount, "the later limit must win")
}

func (suite *TestSuiteStandard) TestUpsertMonthlyBudgetNegativeLimit() {
	category := suite.createTestCategory(models.Category{IsActive: true})

	budget := models.MonthlyBudget{
		CategoryID:  category.ID,
		Month:       types.NewMonth(2026, 1),
		LimitAmount: -500,
	}

	err := models.UpsertMonthlyBudget(models.DB, &budget)
	suite.Assert().ErrorIs(err, models.ErrLimitNegative)
}

func (suite *TestSuiteStandard) TestCopyBudgets() {
	groceries := suite.createTestCategory(models.Category{IsActive: true})
	rent := suite.createTestCategory(models.Category{IsActive: true})

	source := types.NewMonth(2026, 1)
	target := types.NewMonth(2026, 2)

	suite.createTestMonthlyBudget(models.MonthlyBudget{CategoryID: groceries.ID, Month: source, LimitAmount: 40000})
	suite.createTestMonthlyBudget(models.MonthlyBudget{CategoryID: rent.ID, Month: source, LimitAmount: 95000})

	copied, err := models.CopyBudgets(models.DB, source, target)
	suite.Require().NoError(err)
	suite.Assert().Equal(int64(2), copied)

	budgets, err := models.BudgetsForMonth(models.DB, target)
	suite.Require().NoError(err)
	suite.Require().Len(budgets, 2)

	for _, budget := range budgets {
		switch budget.CategoryID {
		case groceries.ID:
			suite.Assert().Equal(types.Cents(40000), budget.LimitAmount)
		case rent.ID:
			suite.Assert().Equal(types.Cents(95000), budget.LimitAmount)
		default:
			suite.Assert().Fail("copied budget references an unexpected category", "Budget: %#v", budget)
		}
	}

	// The source month is untouched
	sourceBudgets, err := models.BudgetsForMonth(models.DB, source)
	suite.Require().NoError(err)
	suite.Assert().Len(sourceBudgets, 2)
}

func (suite *TestSuiteStandard) TestCopyBudgetsIdempotent() {
	category := suite.createTestCategory(models.Category{IsActive: true})

	source := types.NewMonth(2026, 1)
	target := types.NewMonth(2026, 2)

	suite.createTestMonthlyBudget(models.MonthlyBudget{CategoryID: category.ID, Month: source, LimitAmount: 10000})

	copied, err := models.CopyBudgets(models.DB, source, target)
	suite.Require().NoError(err)
	suite.Assert().Equal(int64(1), copied)

	copied, err = models.CopyBudgets(models.DB, source, target)
	suite.Require().NoError(err)
	suite.Assert().Equal(int64(0), copied, "a second copy must not create anything")

	budgets, err := models.BudgetsForMonth(models.DB, target)
	suite.Require().NoError(err)
	suite.Assert().Len(budgets, 1)
}

func (suite *TestSuiteStandard) TestCopyBudgetsTargetNotEmpty() {
	groceries := suite.createTestCategory(models.Category{IsActive: true})
	rent := suite.createTestCategory(models.Category{IsActive: true})

	source := types.NewMonth(2026, 1)
	target := types.NewMonth(2026, 2)

	suite.createTestMonthlyBudget(models.MonthlyBudget{CategoryID: groceries.ID, Month: source, LimitAmount: 40000})
	suite.createTestMonthlyBudget(models.MonthlyBudget{CategoryID: rent.ID, Month: source, LimitAmount: 95000})

	// The target month already has a limit, even if only one
	suite.createTestMonthlyBudget(models.MonthlyBudget{CategoryID: rent.ID, Month: target, LimitAmount: 100000})

	copied, err := models.CopyBudgets(models.DB, source, target)
	suite.Require().NoError(err)
	suite.Assert().Equal(int64(0), copied)

	budgets, err := models.BudgetsForMonth(models.DB, target)
	suite.Require().NoError(err)
	suite.Require().Len(budgets, 1, "a partially budgeted month must not be filled up")
	suite.Assert().Equal(types.Cents(100000), budgets[0].LimitAmount)
}

func (suite *TestSuiteStandard) TestCopyBudgetsEmptySource() {
	copied, err := models.CopyBudgets(models.DB, types.NewMonth(2026, 1), types.NewMonth(2026, 2))
	suite.Require().NoError(err)
	suite.Assert().Equal(int64(0), copied)
}

func (suite *TestSuiteStandard) TestCopyBudgetsDBError() {
	suite.CloseDB()

	_, err := models.CopyBudgets(models.DB, types.NewMonth(2026, 1), types.NewMonth(2026, 2))
	suite.Assert().Error(err)
}
