// internal/search/filter.go
package search

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/javajoker/cleantheory-backend/internal/models"
)

// PriceRange is an inclusive [Min, Max] bound on unit price.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

func (r PriceRange) Contains(price decimal.Decimal) bool {
	return price.GreaterThanOrEqual(r.Min) && price.LessThanOrEqual(r.Max)
}

// Criteria is the set of constraints a search applies. Empty slices, an empty
// query, a zero MinRating and false flags leave the matching predicate inactive.
// PriceRange is always applied.
type Criteria struct {
	Query          string            `json:"query"`
	Categories     []models.Category `json:"category"`
	PriceRange     PriceRange        `json:"price_range"`
	SkinTypes      []models.SkinType `json:"skin_type"`
	KeyIngredients []string          `json:"key_ingredients"`
	MinRating      int               `json:"rating"`
	OnSale         bool              `json:"on_sale"`
	Popular        bool              `json:"popular"`
}

var (
	DefaultPriceMin = decimal.Zero
	DefaultPriceMax = decimal.NewFromInt(50)
)

// DefaultCriteria matches every product priced within the default slider range.
func DefaultCriteria() Criteria {
	return Criteria{
		PriceRange: PriceRange{Min: DefaultPriceMin, Max: DefaultPriceMax},
	}
}

// Filter returns the products satisfying every active predicate in c. The
// result keeps input order; nothing is ranked or re-sorted.
func Filter(products []models.Product, c Criteria) []models.Product {
	query := strings.ToLower(c.Query)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if Matches(p, c, query) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether p passes all active predicates. foldedQuery is the
// lower-cased c.Query, passed in so Filter folds it once.
func Matches(p models.Product, c Criteria, foldedQuery string) bool {
	if foldedQuery != "" && !matchesQuery(p, foldedQuery) {
		return false
	}
	if len(c.Categories) > 0 && !slices.Contains(c.Categories, p.Category) {
		return false
	}
	if !c.PriceRange.Contains(p.Price) {
		return false
	}
	if len(c.SkinTypes) > 0 && !matchesAnySkinType(p, c.SkinTypes) {
		return false
	}
	if len(c.KeyIngredients) > 0 && !matchesAnyIngredient(p, c.KeyIngredients) {
		return false
	}
	if c.MinRating > 0 && p.Rating < c.MinRating {
		return false
	}
	if c.OnSale && !p.OnSale() {
		return false
	}
	if c.Popular && !p.IsPopular {
		return false
	}
	return true
}

func matchesQuery(p models.Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, ing := range p.KeyIngredients {
		if strings.Contains(strings.ToLower(ing), query) {
			return true
		}
	}
	return false
}

func matchesAnyIngredient(p models.Product, wanted []string) bool {
	raw := strings.ToLower(p.Ingredients)
	for _, w := range wanted {
		w = strings.ToLower(w)
		if strings.Contains(raw, w) {
			return true
		}
		for _, ing := range p.KeyIngredients {
			if strings.Contains(strings.ToLower(ing), w) {
				return true
			}
		}
	}
	return false
}
