package models_test

import (
	"time"

	"github.com/hauskasse/backend/internal/models"
	"github.com/hauskasse/backend/internal/types"
)

func (suite *TestSuiteStandard) TestBudgetViewsFilter() {
	month := types.NewMonth(2026, 1)

	active := suite.createTestCategory(models.Category{Name: "Active", IsActive: true})
	_ = suite.createTestCategory(models.Category{Name: "Dormant", IsActive: false})
	budgeted := suite.createTestCategory(models.Category{Name: "Retired but budgeted", IsActive: false})

	suite.createTestMonthlyBudget(models.MonthlyBudget{CategoryID: budgeted.ID, Month: month, LimitAmount: 5000})

	views, err := models.BudgetViews(models.DB, month)
	suite.Require().NoError(err)
	suite.Require().Len(views, 2, "inactive categories without a limit must be dropped")

	// Categories come back ordered by name
	suite.Assert().Equal(active.ID, views[0].Category.ID)
	suite.Assert().Nil(views[0].Budget)
	suite.Assert().Equal(budgeted.ID, views[1].Category.ID)
	suite.Require().NotNil(views[1].Budget)
	suite.Assert().Equal(types.Cents(5000), views[1].Budget.LimitAmount)
}

func (suite *TestSuiteStandard) TestBudgetViewsOtherMonth() {
	category := suite.createTestCategory(models.Category{IsActive: false})
	suite.createTestMonthlyBudget(models.MonthlyBudget{CategoryID: category.ID, Month: types.NewMonth(2026, 1), LimitAmount: 5000})

	views, err := models.BudgetViews(models.DB, types.NewMonth(2026, 2))
	suite.Require().NoError(err)
	suite.Assert().Empty(views, "a limit in another month must not resurrect an inactive category")
}

func (suite *TestSuiteStandard) TestEnrichExpense() {
	category := suite.createTestCategory(models.Category{IsActive: true})
	month := types.NewMonth(2026, 1)
	budget := suite.createTestMonthlyBudget(models.MonthlyBudget{CategoryID: category.ID, Month: month, LimitAmount: 10000})

	view := models.CategoryBudgetView{Category: category, Budget: &budget}
	view.Enrich([]models.Transaction{
		{CategoryID: category.ID, Amount: -1500},
		{CategoryID: category.ID, Amount: -1000},
		// Positive amounts do not count towards an expense category
		{CategoryID: category.ID, Amount: 300},
	})

	suite.Assert().Equal(types.Cents(2500), view.Spent)
	suite.Assert().Equal(types.Cents(7500), view.Remaining)
	suite.Assert().InDelta(25.0, view.PercentSpent(), 0.0001)
	suite.Assert().InDelta(75.0, view.PercentRemaining(), 0.0001)
	suite.Assert().False(view.OverBudget())
}

func (suite *TestSuiteStandard) TestEnrichOverBudget() {
	category := suite.createTestCategory(models.Category{IsActive: true})
	budget := suite.createTestMonthlyBudget(models.MonthlyBudget{CategoryID: category.ID, Month: types.NewMonth(2026, 1), LimitAmount: 1000})

	view := models.CategoryBudgetView{Category: category, Budget: &budget}
	view.Enrich([]models.Transaction{
		{CategoryID: category.ID, Amount: -1500},
	})

	suite.Assert().Equal(types.Cents(-500), view.Remaining)
	suite.Assert().True(view.OverBudget())
}

func (suite *TestSuiteStandard) TestEnrichIncome() {
	salary := suite.createTestCategory(models.Category{IsIncome: true, IsActive: true})
	budget := suite.createTestMonthlyBudget(models.MonthlyBudget{CategoryID: salary.ID, Month: types.NewMonth(2026, 1), LimitAmount: 300000})

	view := models.CategoryBudgetView{Category: salary, Budget: &budget}
	view.Enrich([]models.Transaction{
		{CategoryID: salary.ID, Amount: 250000},
		// Negative amounts do not count towards an income category
		{CategoryID: salary.ID, Amount: -100},
	})

	suite.Assert().Equal(types.Cents(250000), view.Spent)
	suite.Assert().Equal(types.Cents(-50000), view.Remaining, "income below target is behind, not ahead")
	suite.Assert().True(view.OverBudget())
}

func (suite *TestSuiteStandard) TestEnrichIgnoresOtherCategories() {
	category := suite.createTestCategory(models.Category{IsActive: true})
	other := suite.createTestCategory(models.Category{IsActive: true})

	view := models.CategoryBudgetView{Category: category}
	view.Enrich([]models.Transaction{
		{CategoryID: other.ID, Amount: -1000, Date: time.Now()},
	})

	suite.Assert().Equal(types.Cents(0), view.Spent)
}

func (suite *TestSuiteStandard) TestPercentWithoutLimit() {
	category := suite.createTestCategory(models.Category{IsActive: true})

	view := models.CategoryBudgetView{Category: category}
	view.Enrich([]models.Transaction{
		{CategoryID: category.ID, Amount: -1500},
	})

	suite.Assert().Equal(types.Cents(0), view.Limit())
	suite.Assert().Zero(view.PercentSpent(), "percentages without a limit are zero, not NaN")
	suite.Assert().Zero(view.PercentRemaining())
	suite.Assert().True(view.OverBudget(), "spending without a limit is over budget")
}
