// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/javajoker/cleantheory-backend/internal/cart"
	"github.com/javajoker/cleantheory-backend/internal/catalog"
	"github.com/javajoker/cleantheory-backend/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

type CartService struct {
	store   *cart.Store
	catalog *catalog.Store
	policy  cart.Policy
}

// AddItemRequest adds quantity units of a product. An omitted quantity adds one.
type AddItemRequest struct {
	ProductID uint `json:"product_id" validate:"required,gt=0"`
	Quantity  *int `json:"quantity,omitempty" validate:"omitempty,gte=1,lte=999"`
}

// UpdateItemRequest sets a line's quantity. Zero or less removes the line.
type UpdateItemRequest struct {
	Quantity *int `json:"quantity" validate:"required,lte=999"`
}

type CartLine struct {
	Product   models.Product  `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type CartView struct {
	Items      []CartLine      `json:"items"`
	IsOpen     bool            `json:"is_open"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

func NewCartService(store *cart.Store, catalogStore *catalog.Store, policy cart.Policy) *CartService {
	return &CartService{
		store:   store,
		catalog: catalogStore,
		policy:  policy,
	}
}

func NewCartView(state cart.State) CartView {
	lines := make([]CartLine, len(state.Items))
	for i, item := range state.Items {
		lines[i] = CartLine{
			Product:   item.Product,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		}
	}

	return CartView{
		Items:      lines,
		IsOpen:     state.IsOpen,
		TotalItems: state.TotalItems(),
		TotalPrice: state.TotalPrice(),
	}
}

func (s *CartService) GetCart(sessionID string) CartView {
	return NewCartView(s.store.Get(sessionID))
}

func (s *CartService) AddItem(sessionID string, req *AddItemRequest) (CartView, error) {
	product, ok := s.catalog.FindByID(req.ProductID)
	if !ok {
		return CartView{}, fmt.Errorf("product %d: %w", req.ProductID, ErrProductNotFound)
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	return s.dispatch(sessionID, cart.Add{Product: product, Quantity: quantity})
}

// UpdateItemQuantity is a no-op for products not in the cart.
func (s *CartService) UpdateItemQuantity(sessionID string, productID uint, quantity int) (CartView, error) {
	return s.dispatch(sessionID, cart.SetQuantity{ProductID: productID, Quantity: quantity})
}

func (s *CartService) RemoveItem(sessionID string, productID uint) (CartView, error) {
	return s.dispatch(sessionID, cart.Remove{ProductID: productID})
}

func (s *CartService) ClearCart(sessionID string) (CartView, error) {
	return s.dispatch(sessionID, cart.Clear{})
}

func (s *CartService) OpenCart(sessionID string) (CartView, error) {
	return s.dispatch(sessionID, cart.Open{})
}

func (s *CartService) CloseCart(sessionID string) (CartView, error) {
	return s.dispatch(sessionID, cart.Close{})
}

func (s *CartService) ToggleCart(sessionID string) (CartView, error) {
	return s.dispatch(sessionID, cart.Toggle{})
}

func (s *CartService) GetSummary(sessionID string) cart.Summary {
	return cart.Summarize(s.store.Get(sessionID), s.policy)
}

func (s *CartService) dispatch(sessionID string, op cart.Operation) (CartView, error) {
	state, err := s.store.Dispatch(sessionID, op)
	return NewCartView(state), err
}
