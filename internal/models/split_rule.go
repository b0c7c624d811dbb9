package models

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/hauskasse/backend/internal/types"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// VirtualCategory is a synthetic budget row derived by rule from the
// real data of a month. It is never persisted.
type VirtualCategory struct {
	Name     string      `json:"name" example:"Auto (Mazda)"`
	Amount   types.Cents `json:"amount" example:"500"`
	IsIncome bool        `json:"isIncome" example:"false"`
}

// SplitPart is one output row of a split rule.
type SplitPart struct {
	Name     string          `json:"name" example:"Auto (Mazda)"` // Name of the synthetic row
	Fraction decimal.Decimal `json:"fraction" example:"0.5"`      // Fraction of the matched category's spend, truncated to cents
}

// SplitRule derives synthetic rows from the spend of matching
// categories. Match is a glob pattern tested against category names.
type SplitRule struct {
	Match string      `json:"match" example:"Car Insurance"`
	Parts []SplitPart `json:"parts"`
}

// DefaultSplitRules is the rule set used when no rule file is
// configured: the shared car insurance is split evenly over both cars.
var DefaultSplitRules = []SplitRule{
	{
		Match: "Car Insurance",
		Parts: []SplitPart{
			{Name: "Auto (Mazda)", Fraction: decimal.New(5, -1)},
			{Name: "Auto (Elantra)", Fraction: decimal.New(5, -1)},
		},
	},
}

// LoadSplitRules reads split rules from the JSON file at path. An
// empty path returns the default rule set.
func LoadSplitRules(path string) ([]SplitRule, error) {
	if path == "" {
		return DefaultSplitRules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read split rules: %w", err)
	}

	var rules []SplitRule
	err = json.Unmarshal(data, &rules)
	if err != nil {
		return nil, fmt.Errorf("could not parse split rules: %w", err)
	}

	return rules, nil
}

// CategoryAmount is the (category, amount) pair of one transaction,
// the only transaction data the virtual row derivation needs.
type CategoryAmount struct {
	CategoryID uuid.UUID
	Amount     types.Cents
}

// VirtualRows derives the synthetic budget rows for a month.
//
// The first row is always "Total Income", the sum of all positive
// amounts regardless of category. After that every rule is applied in
// order to every view whose category name matches, emitting one
// expense row per part with the part's fraction of the category's
// spend.
func VirtualRows(views []CategoryBudgetView, amounts []CategoryAmount, rules []SplitRule) []VirtualCategory {
	var totalIncome types.Cents
	for _, a := range amounts {
		if a.Amount > 0 {
			totalIncome += a.Amount
		}
	}

	rows := []VirtualCategory{
		{
			Name:     "Total Income",
			Amount:   totalIncome,
			IsIncome: true,
		},
	}

	for _, rule := range rules {
		for _, view := range views {
			if !glob.Glob(rule.Match, view.Category.Name) {
				continue
			}

			for _, part := range rule.Parts {
				rows = append(rows, VirtualCategory{
					Name:     part.Name,
					Amount:   view.Spent.Fraction(part.Fraction),
					IsIncome: false,
				})
			}
		}
	}

	return rows
}
