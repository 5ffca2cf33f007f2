// internal/services/product_service.go
package services

import (
	"strings"

	"github.com/javajoker/cleantheory-backend/internal/catalog"
	"github.com/javajoker/cleantheory-backend/internal/models"
	"github.com/javajoker/cleantheory-backend/internal/search"
	"github.com/javajoker/cleantheory-backend/internal/utils"
)

type ProductService struct {
	catalog *catalog.Store
}

type ProductSearchParams struct {
	utils.PaginationParams
	Criteria search.Criteria
}

func NewProductService(store *catalog.Store) *ProductService {
	return &ProductService{catalog: store}
}

// SearchProducts filters the catalog and pages the result. Matches keep
// catalog order.
func (s *ProductService) SearchProducts(params ProductSearchParams) utils.PaginationResult {
	matches := search.Filter(s.catalog.All(), params.Criteria)
	return utils.Paginate(matches, params.PaginationParams)
}

func (s *ProductService) GetProductBySlug(slug string) (models.Product, bool) {
	return s.catalog.FindBySlug(slug)
}

func (s *ProductService) GetProductsByCategory(category models.Category) []models.Product {
	return s.catalog.FindByCategory(category)
}

// ResolveCategory maps a path segment such as "face-wash" or "Face Wash" to
// a catalog category. Unknown names come back unchanged so lookups return an
// empty list.
func (s *ProductService) ResolveCategory(name string) models.Category {
	for _, c := range s.catalog.Categories() {
		if strings.EqualFold(string(c.Name), name) || CategorySlug(c.Name) == strings.ToLower(name) {
			return c.Name
		}
	}
	return models.Category(name)
}

// CategorySlug lower-cases a category name and joins its words with hyphens.
func CategorySlug(c models.Category) string {
	return strings.Join(strings.Fields(strings.ToLower(string(c))), "-")
}

func (s *ProductService) GetPopularProducts() []models.Product {
	return s.catalog.Popular()
}

func (s *ProductService) GetSaleProducts() []models.Product {
	return s.catalog.OnSale()
}

func (s *ProductService) GetCategories() []catalog.CategoryCount {
	return s.catalog.Categories()
}

func (s *ProductService) GetSearchOptions() search.FilterOptions {
	return search.Options(s.catalog)
}
