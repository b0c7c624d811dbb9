package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hauskasse/backend/internal/httputil"
	"github.com/hauskasse/backend/internal/models"
	"github.com/hauskasse/backend/internal/types"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetCategoriesPage)
		r.POST("", CreateCategory)
	}

	r.GET("/api", GetCategoriesAPI)
	r.GET("/budget", GetCategoryBudgets)
	r.POST("/limit", SetLimit)

	// Category with ID
	{
		r.OPTIONS("/:id", httputil.OptionsPutDelete)
		r.PUT("/:id", UpdateCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// GetCategoriesPage renders the category management page.
//
//	@Summary		Manage categories
//	@Description	Renders the category management page
//	@Tags			Categories
//	@Produce		html
//	@Success		200
//	@Failure		500	{object}	httpError
//	@Router			/categories [get]
func GetCategoriesPage(c *gin.Context) {
	categories, err := models.Categories(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.HTML(http.StatusOK, "manage_categories.html", ManageCategoriesPage{
		Categories:   categories,
		PastelColors: models.PastelColors,
	})
}

// GetCategoriesAPI returns all categories as JSON.
//
//	@Summary		Get categories
//	@Description	Returns a list of all categories
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{array}		models.Category
//	@Failure		500	{object}	httpError
//	@Router			/categories/api [get]
func GetCategoriesAPI(c *gin.Context) {
	categories, err := models.Categories(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory creates a category from the management form. A limit
// in the form is set for the current month right away.
//
//	@Summary		Create category
//	@Description	Creates a new category with an optional limit for the current month
//	@Tags			Categories
//	@Accept			x-www-form-urlencoded
//	@Success		303
//	@Failure		400	{object}	httpError
//	@Failure		409	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			name			formData	string	true	"Name of the category"
//	@Param			color			formData	string	false	"Hex color, random pastel when empty"
//	@Param			monthly_limit	formData	string	false	"Limit for the current month as a decimal string"
//	@Param			is_income		formData	string	false	"Set to 'on' for an income category"
//	@Router			/categories [post]
func CreateCategory(c *gin.Context) {
	category := models.Category{
		Name:     c.PostForm("name"),
		Color:    c.PostForm("color"),
		IsIncome: c.PostForm("is_income") == "on",
		IsActive: true,
	}

	err := models.DB.Create(&category).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if raw := c.PostForm("monthly_limit"); raw != "" {
		limit, err := types.ParseCents(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
			return
		}

		budget := models.MonthlyBudget{
			CategoryID:  category.ID,
			Month:       types.MonthOf(time.Now()),
			LimitAmount: limit,
		}
		err = models.UpsertMonthlyBudget(models.DB, &budget)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}
	}

	c.Redirect(http.StatusSeeOther, "/categories")
}

// UpdateCategory updates a category.
//
// Changing the direction of a category does not rewrite the sign of its
// existing transactions.
//
//	@Summary		Update category
//	@Description	Updates a category
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	models.Category
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		409	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id			path	string				true	"ID of the category"
//	@Param			category	body	CategoryEditable	true	"Category"
//	@Router			/categories/{id} [put]
func UpdateCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var category models.Category
	err = models.DB.First(&category, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable CategoryEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Model(&category).Select("Name", "Color", "IsIncome", "IsActive").Updates(editable.model()).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory deletes a category.
//
// The row is removed for good so the name can be used for a new
// category. The category's transactions and limits stay in place, the
// month view renders them with fallback values.
//
//	@Summary		Delete category
//	@Description	Deletes a category
//	@Tags			Categories
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path	string	true	"ID of the category"
//	@Router			/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var category models.Category
	err = models.DB.First(&category, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	// Unscoped, as a soft-deleted row would still hold the unique name
	err = models.DB.Unscoped().Delete(&category).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// GetCategoryBudgets returns the raw budget views for a month.
//
//	@Summary		Budget views
//	@Description	Returns the merged category and limit data for a month
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{array}		models.CategoryBudgetView
//	@Failure		400	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			month	query	string	true	"The month as YYYY-MM"
//	@Router			/categories/budget [get]
func GetCategoryBudgets(c *gin.Context) {
	raw, ok := c.GetQuery("month")
	if !ok {
		c.JSON(http.StatusBadRequest, httpError{Error: errMonthNotSetInQuery.Error()})
		return
	}

	month, err := types.ParseMonth(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: errMonthInvalid.Error()})
		return
	}

	views, err := models.BudgetViews(models.DB, month)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, views)
}

// SetLimit sets the limit for a category and month, replacing an
// existing one.
//
//	@Summary		Set limit
//	@Description	Sets the monthly limit for a category
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	models.MonthlyBudget
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			limit	body	LimitEditable	true	"Limit"
//	@Router			/categories/limit [post]
func SetLimit(c *gin.Context) {
	var editable LimitEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	month, err := types.ParseMonth(editable.Month)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: errMonthInvalid.Error()})
		return
	}

	// The category must exist
	var category models.Category
	err = models.DB.First(&category, "id = ?", editable.CategoryID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	budget := models.MonthlyBudget{
		CategoryID:  editable.CategoryID,
		Month:       month,
		LimitAmount: types.Cents(editable.Limit.Shift(2).Round(0).IntPart()),
	}

	err = models.UpsertMonthlyBudget(models.DB, &budget)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, budget)
}
