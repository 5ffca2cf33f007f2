// internal/search/options.go
package search

import (
	"github.com/shopspring/decimal"

	"github.com/javajoker/cleantheory-backend/internal/catalog"
	"github.com/javajoker/cleantheory-backend/internal/models"
)

// Ingredients is the fixed list of key ingredients shoppers can filter by.
var Ingredients = []string{
	"Hyaluronic Acid",
	"Ceramides",
	"Niacinamide",
	"Salicylic Acid",
	"Vitamin E",
	"Aloe Vera",
	"Tea Tree Oil",
	"Glycerin",
	"Colloidal Oatmeal",
	"Lactic Acid",
}

// RatingChoices are the minimum-rating options, highest first. Zero means any.
var RatingChoices = []int{4, 3, 2, 1, 0}

type PriceSlider struct {
	Min  decimal.Decimal `json:"min"`
	Max  decimal.Decimal `json:"max"`
	Step decimal.Decimal `json:"step"`
}

// FilterOptions describes the vocabulary a search form is built from.
type FilterOptions struct {
	Categories     []catalog.CategoryCount `json:"categories"`
	SkinTypes      []models.SkinType       `json:"skin_types"`
	KeyIngredients []string                `json:"key_ingredients"`
	Ratings        []int                   `json:"ratings"`
	Price          PriceSlider             `json:"price"`
}

// Options builds the filter vocabulary for the given catalog. The slider keeps
// the default bounds unless the catalog has pricier products, in which case
// its maximum is raised to the next whole unit.
func Options(store *catalog.Store) FilterOptions {
	sliderMax := DefaultPriceMax
	if _, high := store.PriceBounds(); high.GreaterThan(sliderMax) {
		sliderMax = high.Ceil()
	}

	return FilterOptions{
		Categories:     store.Categories(),
		SkinTypes:      append([]models.SkinType(nil), SkinTypes...),
		KeyIngredients: append([]string(nil), Ingredients...),
		Ratings:        append([]int(nil), RatingChoices...),
		Price: PriceSlider{
			Min:  DefaultPriceMin,
			Max:  sliderMax,
			Step: decimal.NewFromInt(1),
		},
	}
}
