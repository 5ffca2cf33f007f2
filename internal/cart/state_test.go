package cart

import (
	"fmt"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/cleantheory-backend/internal/models"
)

func product(id uint, price string) models.Product {
	return models.Product{
		ID:    id,
		Slug:  fmt.Sprintf("product-%d", id),
		Price: decimal.RequireFromString(price),
	}
}

func apply(t *testing.T, s State, ops ...Operation) State {
	t.Helper()
	for _, op := range ops {
		var err error
		s, err = Reduce(s, op)
		require.NoError(t, err)
	}
	return s
}

func TestAddIsAdditivePerProduct(t *testing.T) {
	p := product(1, "10.00")

	s := apply(t, State{}, Add{Product: p, Quantity: 2}, Add{Product: p, Quantity: 3})

	require.Len(t, s.Items, 1)
	assert.Equal(t, 5, s.Items[0].Quantity)
}

func TestAddAppendsNewLinesInOrder(t *testing.T) {
	s := apply(t, State{},
		Add{Product: product(3, "1.00"), Quantity: 1},
		Add{Product: product(1, "1.00"), Quantity: 1},
		Add{Product: product(3, "1.00"), Quantity: 1},
	)

	require.Len(t, s.Items, 2)
	assert.Equal(t, uint(3), s.Items[0].Product.ID)
	assert.Equal(t, uint(1), s.Items[1].Product.ID)
	assert.Equal(t, 2, s.Items[0].Quantity)
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	start := apply(t, State{}, Add{Product: product(1, "10.00"), Quantity: 1})

	for _, qty := range []int{0, -1} {
		next, err := Reduce(start, Add{Product: product(1, "10.00"), Quantity: qty})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.Equal(t, start, next)
	}
}

func TestAddRejectsQuantityOverflow(t *testing.T) {
	p := product(1, "10.00")
	start := apply(t, State{}, Add{Product: p, Quantity: math.MaxInt})

	next, err := Reduce(start, Add{Product: p, Quantity: 1})
	assert.ErrorIs(t, err, ErrQuantityOverflow)
	assert.Equal(t, start, next)
	assert.Equal(t, math.MaxInt, next.Quantity(p.ID))
	assert.True(t, next.TotalPrice().IsPositive())
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := apply(t, State{},
		Add{Product: product(1, "10.00"), Quantity: 1},
		Add{Product: product(2, "5.00"), Quantity: 1},
	)

	once := apply(t, s, Remove{ProductID: 1})
	twice := apply(t, once, Remove{ProductID: 1})

	assert.Equal(t, once, twice)
	assert.Equal(t, 0, once.Quantity(1))
	assert.Equal(t, 1, once.Quantity(2))
}

func TestSetQuantityIsAbsolute(t *testing.T) {
	p := product(1, "10.00")
	s := apply(t, State{}, Add{Product: p, Quantity: 5}, SetQuantity{ProductID: p.ID, Quantity: 3})

	assert.Equal(t, 3, s.Quantity(p.ID))
}

func TestSetQuantityZeroCollapsesLine(t *testing.T) {
	for _, qty := range []int{0, -4} {
		p := product(1, "10.00")
		s := apply(t, State{}, Add{Product: p, Quantity: 2}, SetQuantity{ProductID: p.ID, Quantity: qty})

		assert.Empty(t, s.Items)
		assert.Equal(t, 0, s.Quantity(p.ID))
	}
}

func TestSetQuantityAbsentProductIsNoop(t *testing.T) {
	s := apply(t, State{}, Add{Product: product(1, "10.00"), Quantity: 2})

	assert.Equal(t, s, apply(t, s, SetQuantity{ProductID: 9, Quantity: 4}))
}

func TestClearKeepsVisibility(t *testing.T) {
	s := apply(t, State{}, Open{}, Add{Product: product(1, "10.00"), Quantity: 2}, Clear{})

	assert.Empty(t, s.Items)
	assert.True(t, s.IsOpen)
}

func TestVisibilityOperations(t *testing.T) {
	s := apply(t, State{}, Add{Product: product(1, "10.00"), Quantity: 1})

	opened := apply(t, s, Open{})
	assert.True(t, opened.IsOpen)
	assert.Equal(t, s.Items, opened.Items)

	assert.False(t, apply(t, opened, Close{}).IsOpen)
	assert.False(t, apply(t, opened, Toggle{}).IsOpen)
	assert.True(t, apply(t, s, Toggle{}).IsOpen)
	assert.True(t, apply(t, opened, Open{}).IsOpen)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	p := product(1, "10.00")
	s := apply(t, State{}, Add{Product: p, Quantity: 2})

	_ = apply(t, s, Add{Product: p, Quantity: 3})
	_ = apply(t, s, SetQuantity{ProductID: p.ID, Quantity: 7})
	_ = apply(t, s, Remove{ProductID: p.ID})

	require.Len(t, s.Items, 1)
	assert.Equal(t, 2, s.Items[0].Quantity)
}

func TestUniquenessInvariant(t *testing.T) {
	products := []models.Product{product(1, "1.00"), product(2, "2.00"), product(3, "3.00")}
	ops := []Operation{
		Add{Product: products[0], Quantity: 1},
		Add{Product: products[1], Quantity: 2},
		Add{Product: products[0], Quantity: 3},
		SetQuantity{ProductID: 2, Quantity: 0},
		Add{Product: products[1], Quantity: 1},
		Add{Product: products[2], Quantity: 4},
		Remove{ProductID: 3},
		Add{Product: products[2], Quantity: 1},
		Toggle{},
		SetQuantity{ProductID: 1, Quantity: 9},
	}

	s := State{}
	for _, op := range ops {
		s = apply(t, s, op)

		seen := map[uint]bool{}
		for _, item := range s.Items {
			assert.False(t, seen[item.Product.ID], "duplicate line for %d", item.Product.ID)
			assert.GreaterOrEqual(t, item.Quantity, 1)
			seen[item.Product.ID] = true
		}
	}
}

func TestDerivedTotals(t *testing.T) {
	s := apply(t, State{},
		Add{Product: product(1, "10"), Quantity: 2},
		Add{Product: product(2, "5"), Quantity: 1},
	)

	assert.Equal(t, 3, s.TotalItems())
	assert.Equal(t, "25.00", s.TotalPrice().StringFixed(2))
}

func TestTotalPriceIgnoresOriginalPrice(t *testing.T) {
	original := decimal.RequireFromString("24.99")
	p := product(1, "16.99")
	p.OriginalPrice = &original
	p.Discount = "70% OFF"

	s := apply(t, State{}, Add{Product: p, Quantity: 2})
	assert.Equal(t, "33.98", s.TotalPrice().StringFixed(2))
}

func TestEmptyStateTotals(t *testing.T) {
	var s State
	assert.Equal(t, 0, s.TotalItems())
	assert.True(t, s.TotalPrice().IsZero())
	assert.True(t, s.IsEmpty())
}
