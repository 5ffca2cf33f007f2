// internal/handlers/product.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/javajoker/cleantheory-backend/internal/models"
	"github.com/javajoker/cleantheory-backend/internal/search"
	"github.com/javajoker/cleantheory-backend/internal/services"
	"github.com/javajoker/cleantheory-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	criteria, validationErrors := ParseCriteria(c, h.productService.ResolveCategory)
	if len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	result := h.productService.SearchProducts(services.ProductSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
		Criteria:         criteria,
	})
	utils.PaginatedResponse(c, result)
}

// GET /products/popular
func (h *ProductHandler) GetPopularProducts(c *gin.Context) {
	utils.SuccessResponse(c, h.productService.GetPopularProducts())
}

// GET /products/sale
func (h *ProductHandler) GetSaleProducts(c *gin.Context) {
	utils.SuccessResponse(c, h.productService.GetSaleProducts())
}

// GET /products/:slug
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, ok := h.productService.GetProductBySlug(c.Param("slug"))
	if !ok {
		utils.NotFoundResponse(c, "Product")
		return
	}

	utils.SuccessResponse(c, product)
}

// GET /categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, h.productService.GetCategories())
}

// GET /categories/:category/products
func (h *ProductHandler) GetCategoryProducts(c *gin.Context) {
	category := h.productService.ResolveCategory(c.Param("category"))
	utils.SuccessResponseWithMeta(c, h.productService.GetProductsByCategory(category), gin.H{
		"category": category,
	})
}

// GET /search/options
func (h *ProductHandler) GetSearchOptions(c *gin.Context) {
	utils.SuccessResponse(c, h.productService.GetSearchOptions())
}

// ParseCriteria reads search filters from the query string. List parameters
// may be repeated or comma separated. Category names go through resolve.
func ParseCriteria(c *gin.Context, resolve func(string) models.Category) (search.Criteria, []utils.ValidationError) {
	criteria := search.DefaultCriteria()
	var validationErrors []utils.ValidationError

	invalid := func(field, tag, message string) {
		validationErrors = append(validationErrors, utils.ValidationError{Field: field, Tag: tag, Message: message})
	}

	criteria.Query = strings.TrimSpace(c.Query("q"))

	for _, name := range queryList(c, "category") {
		criteria.Categories = append(criteria.Categories, resolve(name))
	}

	for _, tag := range queryList(c, "skin_type") {
		// unknown tags are kept and match nothing
		skinType, _ := search.ParseSkinType(tag)
		criteria.SkinTypes = append(criteria.SkinTypes, skinType)
	}

	criteria.KeyIngredients = queryList(c, "ingredient")

	if raw := c.Query("price_min"); raw != "" {
		if v, err := decimal.NewFromString(raw); err != nil || v.IsNegative() {
			invalid("price_min", "decimal", "price_min must be a non-negative number")
		} else {
			criteria.PriceRange.Min = v
		}
	}

	if raw := c.Query("price_max"); raw != "" {
		if v, err := decimal.NewFromString(raw); err != nil || v.IsNegative() {
			invalid("price_max", "decimal", "price_max must be a non-negative number")
		} else {
			criteria.PriceRange.Max = v
		}
	}

	if criteria.PriceRange.Min.GreaterThan(criteria.PriceRange.Max) {
		invalid("price_min", "ltefield", "price_min must not exceed price_max")
	}

	if raw := c.Query("rating"); raw != "" {
		if v, err := strconv.Atoi(raw); err != nil || v < 0 || v > 5 {
			invalid("rating", "oneof", "rating must be an integer between 0 and 5")
		} else {
			criteria.MinRating = v
		}
	}

	if raw := c.Query("on_sale"); raw != "" {
		if v, err := strconv.ParseBool(raw); err != nil {
			invalid("on_sale", "boolean", "on_sale must be true or false")
		} else {
			criteria.OnSale = v
		}
	}

	if raw := c.Query("popular"); raw != "" {
		if v, err := strconv.ParseBool(raw); err != nil {
			invalid("popular", "boolean", "popular must be true or false")
		} else {
			criteria.Popular = v
		}
	}

	return criteria, validationErrors
}

func queryList(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
