package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Conflict errors. These are translated from unique constraint
// violations by the create/update callbacks.
var (
	ErrCategoryNameNotUnique = errors.New("the category name must be unique")
	ErrCardNameNotUnique     = errors.New("the card name must be unique")
	ErrBudgetMonthNotUnique  = errors.New("there can only be one limit per category and month")
)

// Validation errors.
var (
	ErrCategoryNameEmpty = errors.New("the category name must not be empty")
	ErrCardNameEmpty     = errors.New("the card name must not be empty")
	ErrLimitNegative     = errors.New("the limit must be zero or positive")
)
