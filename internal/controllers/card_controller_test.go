package controllers_test

import (
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/hauskasse/backend/internal/models"
	"github.com/hauskasse/backend/test"
)

func (suite *TestSuiteStandard) TestCreateCardForm() {
	r := test.Form(suite.T(), http.MethodPost, "http://example.com/cards", url.Values{
		"name": {"Visa Gold"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusSeeOther)
	suite.Assert().Equal("/cards", r.Header().Get("Location"))

	var card models.Card
	suite.Require().NoError(models.DB.First(&card, "name = ?", "Visa Gold").Error)
	suite.Assert().True(card.IsActive)
}

func (suite *TestSuiteStandard) TestCreateCardDuplicate() {
	suite.createTestCard(models.Card{Name: "Visa Gold"})

	r := test.Form(suite.T(), http.MethodPost, "http://example.com/cards", url.Values{
		"name": {"Visa Gold"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestGetCardsAPI() {
	active := suite.createTestCard(models.Card{Name: "Visa Gold", IsActive: true})
	suite.createTestCard(models.Card{Name: "Expired Amex", IsActive: false})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/cards/api", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var cards []models.Card
	test.DecodeResponse(suite.T(), &r, &cards)
	suite.Require().Len(cards, 1, "only active cards are offered for new transactions")
	suite.Assert().Equal(active.ID, cards[0].ID)
}

func (suite *TestSuiteStandard) TestGetCardsPage() {
	suite.createTestCard(models.Card{Name: "Visa Gold", IsActive: true})
	suite.createTestCard(models.Card{Name: "Expired Amex", IsActive: false})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/cards", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// The management page shows inactive cards too
	suite.Assert().Contains(r.Body.String(), "Visa Gold")
	suite.Assert().Contains(r.Body.String(), "Expired Amex")
}

func (suite *TestSuiteStandard) TestUpdateCardDeactivate() {
	card := suite.createTestCard(models.Card{Name: "Visa Gold", IsActive: true})

	r := test.Request(suite.T(), http.MethodPut, "http://example.com/cards/"+card.ID.String(), map[string]any{
		"name":     "Visa Gold",
		"isActive": false,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated models.Card
	suite.Require().NoError(models.DB.First(&updated, "id = ?", card.ID).Error)
	suite.Assert().False(updated.IsActive)
}

func (suite *TestSuiteStandard) TestUpdateCardNotFound() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/cards/"+uuid.NewString(), map[string]any{
		"name": "Visa Gold",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
