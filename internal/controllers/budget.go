package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hauskasse/backend/internal/httputil"
	"github.com/hauskasse/backend/internal/models"
	"github.com/hauskasse/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// RegisterBudgetRoutes registers the routes for the month view and
// transactions with the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.GET("/:month", GetMonthView)
	r.GET("/:month/json", GetMonthViewJSON)
	r.POST("/add", CreateTransaction)

	// Transaction with ID
	{
		r.OPTIONS("/transaction/:id", OptionsTransactionDetail)
		r.PUT("/transaction/:id", UpdateTransaction)
		r.DELETE("/transaction/:id", DeleteTransaction)
	}
}

// monthView assembles the view model for a month.
//
// Opening a month for the first time copies the previous month's limits
// forward. A failing copy only logs, the view must render either way.
func monthView(month types.Month) (MonthView, error) {
	_, err := models.CopyBudgets(models.DB, month.AddDate(0, -1), month)
	if err != nil {
		log.Warn().Err(err).Str("month", month.String()).Msg("could not copy budgets from previous month")
	}

	transactions, err := models.TransactionsForMonth(models.DB, month)
	if err != nil {
		return MonthView{}, err
	}
	summary := models.Summarize(month, transactions)

	views, err := models.BudgetViews(models.DB, month)
	if err != nil {
		return MonthView{}, err
	}

	categories, err := models.Categories(models.DB)
	if err != nil {
		return MonthView{}, err
	}

	cards, err := models.Cards(models.DB)
	if err != nil {
		return MonthView{}, err
	}

	for i := range views {
		views[i].Enrich(transactions)
	}

	amounts := make([]models.CategoryAmount, 0, len(transactions))
	for _, t := range transactions {
		amounts = append(amounts, models.CategoryAmount{CategoryID: t.CategoryID, Amount: t.Amount})
	}
	virtual := models.VirtualRows(views, amounts, SplitRules)

	return newMonthView(month, summary, views, virtual, transactions, categories, cards), nil
}

// GetMonthView renders the month view page.
//
//	@Summary		Month view
//	@Description	Renders the budget and transactions of a month
//	@Tags			Budget
//	@Produce		html
//	@Success		200
//	@Failure		400	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			month	path	string	true	"The month as YYYY-MM"
//	@Router			/budget/{month} [get]
func GetMonthView(c *gin.Context) {
	month, err := types.ParseMonth(c.Param("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: errMonthInvalid.Error()})
		return
	}

	view, err := monthView(month)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.HTML(http.StatusOK, "month_view.html", view)
}

// GetMonthViewJSON returns the month view model as JSON.
//
//	@Summary		Month view data
//	@Description	Returns the month view model as JSON
//	@Tags			Budget
//	@Produce		json
//	@Success		200	{object}	MonthView
//	@Failure		400	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			month	path	string	true	"The month as YYYY-MM"
//	@Router			/budget/{month}/json [get]
func GetMonthViewJSON(c *gin.Context) {
	month, err := types.ParseMonth(c.Param("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: errMonthInvalid.Error()})
		return
	}

	view, err := monthView(month)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

// CreateTransaction creates a transaction from the add form and
// redirects back to the month the transaction falls into.
//
//	@Summary		Create transaction
//	@Description	Creates a transaction from the add form
//	@Tags			Budget
//	@Accept			x-www-form-urlencoded
//	@Success		303
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			date		formData	string	true	"Date as YYYY-MM-DD"
//	@Param			category_id	formData	string	true	"ID of the category"
//	@Param			card_id		formData	string	false	"ID of the card, empty for cash"
//	@Param			amount		formData	string	true	"Amount as a decimal string"
//	@Param			notes		formData	string	false	"Notes"
//	@Router			/budget/add [post]
func CreateTransaction(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.PostForm("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: errDateInvalid.Error()})
		return
	}

	categoryID, err := uuid.Parse(c.PostForm("category_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: errCategoryIDInvalid.Error()})
		return
	}

	var cardID *uuid.UUID
	if raw := c.PostForm("card_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: errCardIDInvalid.Error()})
			return
		}
		cardID = &id
	}

	amount, err := types.ParseCents(c.PostForm("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	transaction := models.Transaction{
		CategoryID: categoryID,
		CardID:     cardID,
		Date:       date,
		Amount:     amount,
		Notes:      c.PostForm("notes"),
	}

	// The sign of the amount follows the category
	err = transaction.Normalize(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Create(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Redirect(http.StatusSeeOther, "/budget/"+types.MonthOf(date).String())
}

// TransactionEditable are the fields a transaction update can set.
type TransactionEditable struct {
	CategoryID uuid.UUID       `json:"categoryId" binding:"required" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	CardID     *uuid.UUID      `json:"cardId" example:"10b9705d-3356-459e-9d5a-28d42a6c4547"`
	Date       string          `json:"date" binding:"required" example:"2026-01-05"`
	Amount     decimal.Decimal `json:"amount" example:"45.50"` // Decimal amount, the sign follows the category
	Notes      string          `json:"notes" example:"Weekly groceries"`
}

// OptionsTransactionDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budget
//	@Success		204
//	@Router			/budget/transaction/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsPutDelete(c)
}

// UpdateTransaction updates a transaction and responds with its
// rendered table row, ready to be swapped into the month view.
//
//	@Summary		Update transaction
//	@Description	Updates a transaction and returns its rendered table row
//	@Tags			Budget
//	@Accept			json
//	@Produce		html
//	@Success		200
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id			path	string				true	"ID of the transaction"
//	@Param			transaction	body	TransactionEditable	true	"Transaction"
//	@Router			/budget/transaction/{id} [put]
func UpdateTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable TransactionEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", editable.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: errDateInvalid.Error()})
		return
	}

	transaction.CategoryID = editable.CategoryID
	transaction.CardID = editable.CardID
	transaction.Date = date
	transaction.Amount = types.Cents(editable.Amount.Shift(2).Round(0).IntPart())
	transaction.Notes = editable.Notes

	err = transaction.Normalize(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Save(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	categories, err := models.Categories(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	cards, err := models.Cards(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.HTML(http.StatusOK, "row_snippet.html", newTransactionRow(transaction, categories, cards))
}

// DeleteTransaction deletes a transaction.
//
//	@Summary		Delete transaction
//	@Description	Deletes a transaction
//	@Tags			Budget
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path	string	true	"ID of the transaction"
//	@Router			/budget/transaction/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
