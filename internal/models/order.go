// internal/models/order.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the snapshot handed to the processing gateway at checkout. It is
// built from the cart and the checkout form and is never stored.
type Order struct {
	Number    string          `json:"number"`
	Status    OrderStatus     `json:"status"`
	Items     []OrderItem     `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	Customer  Customer        `json:"customer"`
	Payment   PaymentMethod   `json:"payment_method"`
	Notes     string          `json:"special_instructions,omitempty"`
	PlacedAt  time.Time       `json:"placed_at"`
	Processed *time.Time      `json:"processed_at,omitempty"`
}

type OrderItem struct {
	ProductID uint            `json:"product_id"`
	Slug      string          `json:"slug"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Customer carries contact and shipping details. Card details stay on the
// request and are never copied here.
type Customer struct {
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
	Phone      string `json:"phone,omitempty"`
	Newsletter bool   `json:"newsletter"`
}

// ItemCount returns the number of units across all order lines.
func (o *Order) ItemCount() int {
	var count int
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}
