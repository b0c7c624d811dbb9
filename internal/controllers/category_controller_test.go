package controllers_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hauskasse/backend/internal/models"
	"github.com/hauskasse/backend/internal/types"
	"github.com/hauskasse/backend/test"
)

func (suite *TestSuiteStandard) TestCreateCategoryForm() {
	r := test.Form(suite.T(), http.MethodPost, "http://example.com/categories", url.Values{
		"name":          {"Groceries"},
		"monthly_limit": {"100.00"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusSeeOther)
	suite.Assert().Equal("/categories", r.Header().Get("Location"))

	var category models.Category
	suite.Require().NoError(models.DB.First(&category, "name = ?", "Groceries").Error)
	suite.Assert().False(category.IsIncome)
	suite.Assert().True(category.IsActive)
	suite.Assert().Contains(models.PastelColors, category.Color)

	// The limit is set for the current month
	budgets, err := models.BudgetsForMonth(models.DB, types.MonthOf(time.Now()))
	suite.Require().NoError(err)
	suite.Require().Len(budgets, 1)
	suite.Assert().Equal(types.Cents(10000), budgets[0].LimitAmount)
}

func (suite *TestSuiteStandard) TestCreateCategoryIncome() {
	r := test.Form(suite.T(), http.MethodPost, "http://example.com/categories", url.Values{
		"name":      {"Salary"},
		"is_income": {"on"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusSeeOther)

	var category models.Category
	suite.Require().NoError(models.DB.First(&category, "name = ?", "Salary").Error)
	suite.Assert().True(category.IsIncome)

	// No limit field, no limit row
	budgets, err := models.BudgetsForMonth(models.DB, types.MonthOf(time.Now()))
	suite.Require().NoError(err)
	suite.Assert().Empty(budgets)
}

func (suite *TestSuiteStandard) TestCreateCategoryDuplicate() {
	suite.createTestCategory(models.Category{Name: "Groceries"})

	r := test.Form(suite.T(), http.MethodPost, "http://example.com/categories", url.Values{
		"name": {"Groceries"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestCreateCategoryEmptyName() {
	r := test.Form(suite.T(), http.MethodPost, "http://example.com/categories", url.Values{
		"name": {"  "},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetCategoriesAPI() {
	suite.createTestCategory(models.Category{Name: "Rent"})
	suite.createTestCategory(models.Category{Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/categories/api", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var categories []models.Category
	test.DecodeResponse(suite.T(), &r, &categories)
	suite.Require().Len(categories, 2)
	suite.Assert().Equal("Groceries", categories[0].Name)
	suite.Assert().Equal("Rent", categories[1].Name)
}

func (suite *TestSuiteStandard) TestGetCategoriesPage() {
	suite.createTestCategory(models.Category{Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Contains(r.Body.String(), "Groceries")
}

func (suite *TestSuiteStandard) TestUpdateCategory() {
	category := suite.createTestCategory(models.Category{Name: "Groceries", IsActive: true})

	r := test.Request(suite.T(), http.MethodPut, "http://example.com/categories/"+category.ID.String(), map[string]any{
		"name":     "Food",
		"color":    "#123456",
		"isIncome": false,
		"isActive": false,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated models.Category
	suite.Require().NoError(models.DB.First(&updated, "id = ?", category.ID).Error)
	suite.Assert().Equal("Food", updated.Name)
	suite.Assert().Equal("#123456", updated.Color)
	suite.Assert().False(updated.IsActive)
}

func (suite *TestSuiteStandard) TestUpdateCategoryNotFound() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/categories/"+uuid.NewString(), map[string]any{
		"name": "Food",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteCategory() {
	category := suite.createTestCategory(models.Category{Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/categories/"+category.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/categories/api", "")
	var categories []models.Category
	test.DecodeResponse(suite.T(), &r, &categories)
	suite.Assert().Empty(categories)
}

func (suite *TestSuiteStandard) TestRecreateDeletedCategory() {
	category := suite.createTestCategory(models.Category{Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/categories/"+category.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The name is free again after the delete
	r = test.Form(suite.T(), http.MethodPost, "http://example.com/categories", url.Values{
		"name": {"Groceries"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusSeeOther)

	var recreated models.Category
	suite.Require().NoError(models.DB.First(&recreated, "name = ?", "Groceries").Error)
	suite.Assert().NotEqual(category.ID, recreated.ID)
}

func (suite *TestSuiteStandard) TestSetLimitUpsert() {
	category := suite.createTestCategory(models.Category{Name: "Groceries", IsActive: true})

	for _, limit := range []float64{100.00, 125.00} {
		r := test.Request(suite.T(), http.MethodPost, "http://example.com/categories/limit", map[string]any{
			"categoryId": category.ID,
			"month":      "2026-01",
			"limit":      limit,
		})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	}

	budgets, err := models.BudgetsForMonth(models.DB, types.NewMonth(2026, 1))
	suite.Require().NoError(err)
	suite.Require().Len(budgets, 1, "setting the limit twice must not create a second row")
	suite.Assert().Equal(types.Cents(12500), budgets[0].LimitAmount)
}

func (suite *TestSuiteStandard) TestSetLimitErrors() {
	category := suite.createTestCategory(models.Category{Name: "Groceries", IsActive: true})

	tests := []struct {
		name   string
		body   map[string]any
		status int
	}{
		{"Negative limit", map[string]any{"categoryId": category.ID, "month": "2026-01", "limit": -1.00}, http.StatusBadRequest},
		{"Invalid month", map[string]any{"categoryId": category.ID, "month": "January", "limit": 1.00}, http.StatusBadRequest},
		{"Unknown category", map[string]any{"categoryId": uuid.New(), "month": "2026-01", "limit": 1.00}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/categories/limit", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGetCategoryBudgets() {
	month := types.NewMonth(2026, 1)
	category := suite.createTestCategory(models.Category{Name: "Groceries", IsActive: true})
	suite.createTestMonthlyBudget(models.MonthlyBudget{CategoryID: category.ID, Month: month, LimitAmount: 10000})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/categories/budget?month=2026-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var views []models.CategoryBudgetView
	test.DecodeResponse(suite.T(), &r, &views)
	suite.Require().Len(views, 1)
	suite.Assert().Equal(category.ID, views[0].Category.ID)
	suite.Require().NotNil(views[0].Budget)
	suite.Assert().Equal(types.Cents(10000), views[0].Budget.LimitAmount)
}

func (suite *TestSuiteStandard) TestGetCategoryBudgetsNoMonth() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/categories/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
