package controllers

import (
	"errors"
	"net/http"

	"github.com/hauskasse/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no category matching your query"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrCategoryNameNotUnique) ||
		errors.Is(err, models.ErrCardNameNotUnique) ||
		errors.Is(err, models.ErrBudgetMonthNotUnique) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var (
	errMonthInvalid       = errors.New("the month must be specified as YYYY-MM")
	errMonthNotSetInQuery = errors.New("the month query parameter must be set")
	errDateInvalid        = errors.New("the date must be specified as YYYY-MM-DD")
	errCategoryIDInvalid  = errors.New("the category_id field must be a valid category ID")
	errCardIDInvalid      = errors.New("the card_id field must be a valid card ID")
)
