// internal/catalog/store.go
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/javajoker/cleantheory-backend/internal/models"
)

var (
	ErrEmptyCatalog  = errors.New("catalog has no products")
	ErrDuplicateID   = errors.New("duplicate product id")
	ErrDuplicateSlug = errors.New("duplicate product slug")
	ErrInvalidRecord = errors.New("invalid product record")
)

// Store holds the product list loaded at startup. It has no mutators; every
// accessor returns a fresh slice so callers cannot reorder or drop entries.
type Store struct {
	products []models.Product
}

// CategoryCount is a category name with the number of products in it.
type CategoryCount struct {
	Name  models.Category `json:"name"`
	Count int             `json:"count"`
}

// New validates the records and wraps them in a Store. Input order becomes
// catalog order.
func New(products []models.Product) (*Store, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	ids := make(map[uint]struct{}, len(products))
	slugs := make(map[string]struct{}, len(products))
	for _, p := range products {
		if err := validateProduct(p); err != nil {
			return nil, err
		}
		if _, exists := ids[p.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		if _, exists := slugs[p.Slug]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSlug, p.Slug)
		}
		ids[p.ID] = struct{}{}
		slugs[p.Slug] = struct{}{}
	}

	return &Store{products: slices.Clone(products)}, nil
}

func validateProduct(p models.Product) error {
	switch {
	case p.ID == 0:
		return fmt.Errorf("%w: id must be positive (slug %q)", ErrInvalidRecord, p.Slug)
	case p.Slug == "":
		return fmt.Errorf("%w: product %d has no slug", ErrInvalidRecord, p.ID)
	case !p.Price.IsPositive():
		return fmt.Errorf("%w: product %d price must be positive", ErrInvalidRecord, p.ID)
	case p.OriginalPrice != nil && p.OriginalPrice.LessThan(p.Price):
		return fmt.Errorf("%w: product %d original price below price", ErrInvalidRecord, p.ID)
	case p.Rating < 0 || p.Rating > 5:
		return fmt.Errorf("%w: product %d rating %d out of range", ErrInvalidRecord, p.ID, p.Rating)
	}
	return nil
}

// All returns every product in catalog order.
func (s *Store) All() []models.Product {
	return slices.Clone(s.products)
}

// Len returns the number of products.
func (s *Store) Len() int {
	return len(s.products)
}

// FindBySlug returns the product with the given slug. The boolean is false
// when no product matches; that is an expected outcome, not an error.
func (s *Store) FindBySlug(slug string) (models.Product, bool) {
	for _, p := range s.products {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Store) FindByID(id uint) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// FindByCategory returns the products in a category, catalog order preserved.
// An unknown category yields an empty slice.
func (s *Store) FindByCategory(category models.Category) []models.Product {
	return s.where(func(p models.Product) bool { return p.Category == category })
}

// OnSale returns products carrying a discount annotation.
func (s *Store) OnSale() []models.Product {
	return s.where(models.Product.OnSale)
}

func (s *Store) Popular() []models.Product {
	return s.where(func(p models.Product) bool { return p.IsPopular })
}

// Categories lists categories in order of first appearance with their counts.
func (s *Store) Categories() []CategoryCount {
	var out []CategoryCount
	index := make(map[models.Category]int)
	for _, p := range s.products {
		i, seen := index[p.Category]
		if !seen {
			index[p.Category] = len(out)
			out = append(out, CategoryCount{Name: p.Category, Count: 1})
			continue
		}
		out[i].Count++
	}
	return out
}

// PriceBounds returns the lowest and highest unit price in the catalog.
func (s *Store) PriceBounds() (decimal.Decimal, decimal.Decimal) {
	low, high := s.products[0].Price, s.products[0].Price
	for _, p := range s.products[1:] {
		low = decimal.Min(low, p.Price)
		high = decimal.Max(high, p.Price)
	}
	return low, high
}

func (s *Store) where(keep func(models.Product) bool) []models.Product {
	out := make([]models.Product, 0)
	for _, p := range s.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
