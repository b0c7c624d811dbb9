package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hauskasse/backend/internal/httputil"
	"github.com/hauskasse/backend/internal/models"
)

// RegisterCardRoutes registers the routes for cards with the
// RouterGroup that is passed.
func RegisterCardRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetCardsPage)
		r.POST("", CreateCard)
	}

	r.GET("/api", GetCardsAPI)

	// Card with ID. Cards are never deleted, they are deactivated via
	// an update so that old transactions keep their card.
	r.PUT("/:id", UpdateCard)
}

// GetCardsPage renders the card management page.
//
//	@Summary		Manage cards
//	@Description	Renders the card management page
//	@Tags			Cards
//	@Produce		html
//	@Success		200
//	@Failure		500	{object}	httpError
//	@Router			/cards [get]
func GetCardsPage(c *gin.Context) {
	cards, err := models.Cards(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.HTML(http.StatusOK, "manage_cards.html", ManageCardsPage{Cards: cards})
}

// GetCardsAPI returns all active cards as JSON.
//
//	@Summary		Get cards
//	@Description	Returns a list of all active cards
//	@Tags			Cards
//	@Produce		json
//	@Success		200	{array}		models.Card
//	@Failure		500	{object}	httpError
//	@Router			/cards/api [get]
func GetCardsAPI(c *gin.Context) {
	cards, err := models.ActiveCards(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, cards)
}

// CreateCard creates a card from the management form.
//
//	@Summary		Create card
//	@Description	Creates a new card
//	@Tags			Cards
//	@Accept			x-www-form-urlencoded
//	@Success		303
//	@Failure		400	{object}	httpError
//	@Failure		409	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			name	formData	string	true	"Name of the card"
//	@Router			/cards [post]
func CreateCard(c *gin.Context) {
	card := models.Card{
		Name:     c.PostForm("name"),
		IsActive: true,
	}

	err := models.DB.Create(&card).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Redirect(http.StatusSeeOther, "/cards")
}

// UpdateCard updates a card.
//
//	@Summary		Update card
//	@Description	Updates a card, setting isActive to false hides it from the add form
//	@Tags			Cards
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	models.Card
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		409	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id		path	string			true	"ID of the card"
//	@Param			card	body	CardEditable	true	"Card"
//	@Router			/cards/{id} [put]
func UpdateCard(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var card models.Card
	err = models.DB.First(&card, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable CardEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Model(&card).Select("Name", "IsActive").Updates(models.Card{Name: editable.Name, IsActive: editable.IsActive}).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, card)
}
