package types

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a string cannot be parsed into an amount.
var ErrInvalidAmount = errors.New("the amount is not a valid decimal number")

// Cents is a monetary amount in integer cents.
//
// The sign encodes the direction: positive amounts are income,
// negative amounts are expenses. All arithmetic happens on cents,
// decimal strings only exist at the presentation boundary.
type Cents int64

// ParseCents parses a decimal string like "12.34" into cents.
// The third decimal place is rounded half up.
func ParseCents(s string) (Cents, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	return Cents(d.Shift(2).Round(0).IntPart()), nil
}

// Decimal returns the amount as a decimal number of whole currency units.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// String formats the amount with two decimal places for display.
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// Abs returns the absolute value of the amount.
func (c Cents) Abs() Cents {
	if c < 0 {
		return -c
	}
	return c
}

// Neg returns the amount with the sign inverted.
func (c Cents) Neg() Cents {
	return -c
}

// IsIncome reports whether the amount is positive.
func (c Cents) IsIncome() bool {
	return c > 0
}

// Normalized returns the amount with the sign matching the category
// direction: positive for income, negative for expenses. The sign the
// user entered is ignored.
func (c Cents) Normalized(isIncome bool) Cents {
	a := c.Abs()
	if !isIncome {
		return -a
	}
	return a
}

// Fraction returns the given fraction of the amount, truncated to
// whole cents.
func (c Cents) Fraction(f decimal.Decimal) Cents {
	return Cents(c.Decimal().Mul(f).Shift(2).Truncate(0).IntPart())
}
