package models_test

import (
	"github.com/hauskasse/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCategoryTrimmedName() {
	category := suite.createTestCategory(models.Category{Name: "  Groceries "})
	suite.Assert().Equal("Groceries", category.Name)
}

func (suite *TestSuiteStandard) TestCategoryEmptyName() {
	err := models.DB.Create(&models.Category{Name: "   "}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameEmpty)
}

func (suite *TestSuiteStandard) TestCategoryDuplicateName() {
	_ = suite.createTestCategory(models.Category{Name: "Groceries"})

	err := models.DB.Create(&models.Category{Name: "Groceries"}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)
}

func (suite *TestSuiteStandard) TestCategoryDefaultColor() {
	category := suite.createTestCategory(models.Category{})
	suite.Assert().Contains(models.PastelColors, category.Color, "a category without a color gets a pastel one")
}

func (suite *TestSuiteStandard) TestCategoryExplicitColor() {
	category := suite.createTestCategory(models.Category{Color: "#123456"})
	suite.Assert().Equal("#123456", category.Color)
}

func (suite *TestSuiteStandard) TestCategoriesOrdered() {
	_ = suite.createTestCategory(models.Category{Name: "Rent"})
	_ = suite.createTestCategory(models.Category{Name: "Groceries"})

	categories, err := models.Categories(models.DB)
	suite.Require().NoError(err)
	suite.Require().Len(categories, 2)
	suite.Assert().Equal("Groceries", categories[0].Name)
	suite.Assert().Equal("Rent", categories[1].Name)
}
