package models

import (
	"math/rand"
	"strings"

	"gorm.io/gorm"
)

// Category represents a spending or income bucket.
type Category struct {
	DefaultModel
	Name     string `json:"name" gorm:"uniqueIndex" example:"Groceries"`      // Name of the category, unique
	Color    string `json:"color" example:"#BAFFC9"`                          // Hex color used when rendering the category
	IsIncome bool   `json:"isIncome" example:"false" default:"false"`         // Does money in this category count as income?
	IsActive bool   `json:"isActive" example:"true" default:"true"`           // Inactive categories are hidden unless they have a budget
}

// PastelColors are the colors assigned to categories that are created
// without an explicit color.
var PastelColors = []string{
	"#FFB3BA", "#FFDFBA", "#FFFFBA", "#BAFFC9", "#BAE1FF",
	"#E2F0CB", "#FDFD96", "#FFC3A0", "#FFD1DC", "#D4F0F0",
	"#CCE2CB", "#B6CFB6", "#97C1A9", "#FCB7AF", "#FFDAC1",
	"#E7FFAC", "#FFABAB", "#D5AAFF", "#85E3FF", "#B9F6CA",
}

// BeforeSave validates the category and assigns a random pastel color
// if none is set.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	if c.Color == "" {
		c.Color = PastelColors[rand.Intn(len(PastelColors))]
	}

	return nil
}

// Categories returns all categories ordered by name, including
// inactive ones.
func Categories(db *gorm.DB) ([]Category, error) {
	var categories []Category
	err := db.Order("name ASC").Find(&categories).Error
	return categories, err
}
