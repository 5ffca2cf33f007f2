// internal/cart/state.go
package cart

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/javajoker/cleantheory-backend/internal/models"
)

var (
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrQuantityOverflow = errors.New("quantity is too large")
)

// LineItem is one product and quantity pair. Quantity is always >= 1.
type LineItem struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// LineTotal is the unit price times quantity.
func (l LineItem) LineTotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// State is a cart snapshot. Items hold at most one line per product id.
type State struct {
	Items  []LineItem `json:"items"`
	IsOpen bool       `json:"is_open"`
}

// TotalItems sums the quantities of every line.
func (s State) TotalItems() int {
	n := 0
	for _, item := range s.Items {
		n += item.Quantity
	}
	return n
}

// TotalPrice sums unit price times quantity. Original prices and discount
// labels never enter the total.
func (s State) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (s State) IsEmpty() bool {
	return len(s.Items) == 0
}

// Quantity returns the quantity held for productID, zero when absent.
func (s State) Quantity(productID uint) int {
	if i := s.indexOf(productID); i >= 0 {
		return s.Items[i].Quantity
	}
	return 0
}

func (s State) indexOf(productID uint) int {
	return slices.IndexFunc(s.Items, func(item LineItem) bool {
		return item.Product.ID == productID
	})
}

// Operation is a cart transition. The set of variants is closed.
type Operation interface {
	isOperation()
}

type Add struct {
	Product  models.Product
	Quantity int
}

type Remove struct {
	ProductID uint
}

// SetQuantity replaces a line's quantity. Zero or less removes the line.
type SetQuantity struct {
	ProductID uint
	Quantity  int
}

type Clear struct{}
type Open struct{}
type Close struct{}
type Toggle struct{}

func (Add) isOperation()         {}
func (Remove) isOperation()      {}
func (SetQuantity) isOperation() {}
func (Clear) isOperation()       {}
func (Open) isOperation()        {}
func (Close) isOperation()       {}
func (Toggle) isOperation()      {}

// Reduce applies op to s and returns the next state. s is never modified.
// Operations that reference absent products are no-ops. Add fails with
// ErrInvalidQuantity below one and ErrQuantityOverflow when the line total
// would not fit in an int; s is returned as is in both cases.
func Reduce(s State, op Operation) (State, error) {
	switch op := op.(type) {
	case Add:
		if op.Quantity < 1 {
			return s, fmt.Errorf("add %q: %w", op.Product.Slug, ErrInvalidQuantity)
		}
		items := slices.Clone(s.Items)
		if i := s.indexOf(op.Product.ID); i >= 0 {
			if op.Quantity > math.MaxInt-items[i].Quantity {
				return s, fmt.Errorf("add %q: %w", op.Product.Slug, ErrQuantityOverflow)
			}
			items[i].Quantity += op.Quantity
		} else {
			items = append(items, LineItem{Product: op.Product, Quantity: op.Quantity})
		}
		return State{Items: items, IsOpen: s.IsOpen}, nil

	case Remove:
		return s.without(op.ProductID), nil

	case SetQuantity:
		if op.Quantity <= 0 {
			return s.without(op.ProductID), nil
		}
		i := s.indexOf(op.ProductID)
		if i < 0 {
			return s, nil
		}
		items := slices.Clone(s.Items)
		items[i].Quantity = op.Quantity
		return State{Items: items, IsOpen: s.IsOpen}, nil

	case Clear:
		return State{Items: []LineItem{}, IsOpen: s.IsOpen}, nil

	case Open:
		return State{Items: s.Items, IsOpen: true}, nil

	case Close:
		return State{Items: s.Items, IsOpen: false}, nil

	case Toggle:
		return State{Items: s.Items, IsOpen: !s.IsOpen}, nil

	default:
		panic(fmt.Sprintf("cart: unhandled operation %T", op))
	}
}

func (s State) without(productID uint) State {
	i := s.indexOf(productID)
	if i < 0 {
		return s
	}
	return State{Items: slices.Delete(slices.Clone(s.Items), i, i+1), IsOpen: s.IsOpen}
}
