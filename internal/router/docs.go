// internal/router/docs.go
package router

import (
	"net/http"

	"github.com/javajoker/cleantheory-backend/internal/cart"
	"github.com/javajoker/cleantheory-backend/internal/catalog"
	"github.com/javajoker/cleantheory-backend/internal/models"
	"github.com/javajoker/cleantheory-backend/internal/openapi"
	"github.com/javajoker/cleantheory-backend/internal/search"
	"github.com/javajoker/cleantheory-backend/internal/services"
)

var searchParams = []openapi.Param{
	{Name: "q", Type: "string", Description: "Matches name, description or key ingredients"},
	{Name: "category", Type: "string", Array: true},
	{Name: "skin_type", Type: "string", Array: true, Description: "Any of the listed skin types"},
	{Name: "ingredient", Type: "string", Array: true, Description: "Any of the listed ingredients"},
	{Name: "price_min", Type: "number"},
	{Name: "price_max", Type: "number"},
	{Name: "rating", Type: "integer", Description: "Minimum star rating, 0 to 5"},
	{Name: "on_sale", Type: "boolean"},
	{Name: "popular", Type: "boolean"},
	{Name: "page", Type: "integer"},
	{Name: "limit", Type: "integer"},
}

var apiDocs = map[string]openapi.Operation{
	openapi.Key(http.MethodGet, "/health"): {
		Summary:  "Liveness check",
		Tag:      "system",
		Response: map[string]string{},
	},
	openapi.Key(http.MethodGet, "/v1/products"): {
		Summary:  "Search and filter products",
		Tag:      "products",
		Query:    searchParams,
		Response: []models.Product{},
	},
	openapi.Key(http.MethodGet, "/v1/products/popular"): {
		Summary:  "Popular products",
		Tag:      "products",
		Response: []models.Product{},
	},
	openapi.Key(http.MethodGet, "/v1/products/sale"): {
		Summary:  "Discounted products",
		Tag:      "products",
		Response: []models.Product{},
	},
	openapi.Key(http.MethodGet, "/v1/products/:slug"): {
		Summary:  "Product by slug",
		Tag:      "products",
		Response: models.Product{},
	},
	openapi.Key(http.MethodGet, "/v1/categories"): {
		Summary:  "Categories with product counts",
		Tag:      "products",
		Response: []catalog.CategoryCount{},
	},
	openapi.Key(http.MethodGet, "/v1/categories/:category/products"): {
		Summary:  "Products in a category",
		Tag:      "products",
		Response: []models.Product{},
	},
	openapi.Key(http.MethodGet, "/v1/search/options"): {
		Summary:  "Filter vocabulary for the search page",
		Tag:      "products",
		Response: search.FilterOptions{},
	},
	openapi.Key(http.MethodPost, "/v1/sessions"): {
		Summary:  "Start an anonymous cart session",
		Tag:      "cart",
		Response: services.SessionResponse{},
		Status:   http.StatusCreated,
	},
	openapi.Key(http.MethodGet, "/v1/cart"): {
		Summary:  "Current cart",
		Tag:      "cart",
		Response: services.CartView{},
		Session:  true,
	},
	openapi.Key(http.MethodDelete, "/v1/cart"): {
		Summary:  "Remove every item",
		Tag:      "cart",
		Response: services.CartView{},
		Session:  true,
	},
	openapi.Key(http.MethodGet, "/v1/cart/summary"): {
		Summary:  "Subtotal, shipping, tax and total",
		Tag:      "cart",
		Response: cart.Summary{},
		Session:  true,
	},
	openapi.Key(http.MethodPost, "/v1/cart/items"): {
		Summary:  "Add a product",
		Tag:      "cart",
		Body:     services.AddItemRequest{},
		Response: services.CartView{},
		Session:  true,
	},
	openapi.Key(http.MethodPut, "/v1/cart/items/:product_id"): {
		Summary:  "Set a line quantity; zero removes the line",
		Tag:      "cart",
		Body:     services.UpdateItemRequest{},
		Response: services.CartView{},
		Session:  true,
	},
	openapi.Key(http.MethodDelete, "/v1/cart/items/:product_id"): {
		Summary:  "Remove a line",
		Tag:      "cart",
		Response: services.CartView{},
		Session:  true,
	},
	openapi.Key(http.MethodPost, "/v1/cart/open"): {
		Summary:  "Show the cart drawer",
		Tag:      "cart",
		Response: services.CartView{},
		Session:  true,
	},
	openapi.Key(http.MethodPost, "/v1/cart/close"): {
		Summary:  "Hide the cart drawer",
		Tag:      "cart",
		Response: services.CartView{},
		Session:  true,
	},
	openapi.Key(http.MethodPost, "/v1/cart/toggle"): {
		Summary:  "Toggle the cart drawer",
		Tag:      "cart",
		Response: services.CartView{},
		Session:  true,
	},
	openapi.Key(http.MethodPost, "/v1/checkout"): {
		Summary:  "Place an order for the current cart",
		Tag:      "checkout",
		Body:     services.CheckoutRequest{},
		Response: models.Order{},
		Status:   http.StatusCreated,
		Session:  true,
	},
	openapi.Key(http.MethodGet, "/v1/feedback/options"): {
		Summary:  "Choices for the feedback form",
		Tag:      "feedback",
		Response: map[string][]string{},
	},
	openapi.Key(http.MethodPost, "/v1/feedback"): {
		Summary:  "Submit site feedback",
		Tag:      "feedback",
		Body:     services.FeedbackRequest{},
		Response: map[string]string{},
		Status:   http.StatusCreated,
	},
}
