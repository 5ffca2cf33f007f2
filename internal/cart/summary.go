// internal/cart/summary.go
package cart

import (
	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the flat sales tax applied at checkout.
var DefaultTaxRate = decimal.RequireFromString("0.08")

// Policy holds the checkout pricing knobs. Shipping is a flat amount.
type Policy struct {
	TaxRate  decimal.Decimal
	Shipping decimal.Decimal
}

func DefaultPolicy() Policy {
	return Policy{TaxRate: DefaultTaxRate, Shipping: decimal.Zero}
}

// Summary is the checkout breakdown for a cart.
type Summary struct {
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	FreeShip  bool            `json:"free_shipping"`
}

// Summarize composes subtotal, shipping and tax. Tax is rounded to cents;
// shipping is charged only when the cart has items.
func Summarize(s State, p Policy) Summary {
	subtotal := s.TotalPrice()
	shipping := decimal.Zero
	if !s.IsEmpty() {
		shipping = p.Shipping
	}
	tax := subtotal.Mul(p.TaxRate).Round(2)

	return Summary{
		ItemCount: s.TotalItems(),
		Subtotal:  subtotal,
		Shipping:  shipping,
		Tax:       tax,
		Total:     subtotal.Add(shipping).Add(tax),
		FreeShip:  shipping.IsZero(),
	}
}
