package models_test

import (
	"github.com/hauskasse/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCardEmptyName() {
	err := models.DB.Create(&models.Card{Name: " "}).Error
	suite.Assert().ErrorIs(err, models.ErrCardNameEmpty)
}

func (suite *TestSuiteStandard) TestCardDuplicateName() {
	_ = suite.createTestCard(models.Card{Name: "Visa Gold"})

	err := models.DB.Create(&models.Card{Name: "Visa Gold"}).Error
	suite.Assert().ErrorIs(err, models.ErrCardNameNotUnique)
}

func (suite *TestSuiteStandard) TestActiveCards() {
	visa := suite.createTestCard(models.Card{Name: "Visa Gold", IsActive: true})
	_ = suite.createTestCard(models.Card{Name: "Expired Amex", IsActive: false})

	cards, err := models.ActiveCards(models.DB)
	suite.Require().NoError(err)
	suite.Require().Len(cards, 1)
	suite.Assert().Equal(visa.ID, cards[0].ID)

	all, err := models.Cards(models.DB)
	suite.Require().NoError(err)
	suite.Assert().Len(all, 2)
}
