// internal/services/checkout_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/cleantheory-backend/internal/cart"
	"github.com/javajoker/cleantheory-backend/internal/models"
)

var ErrEmptyCart = errors.New("cart is empty")

type CheckoutService struct {
	store         *cart.Store
	gateway       PaymentGateway
	policy        cart.Policy
	notifications *NotificationService
	now           func() time.Time
}

// CheckoutRequest is the checkout form. Card fields are validated and then
// dropped; they never reach the order or the logs.
type CheckoutRequest struct {
	Email      string `json:"email" validate:"required,email"`
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	Address    string `json:"address" validate:"required,max=255"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"required,max=50"`
	ZipCode    string `json:"zip_code" validate:"required,zipcode"`
	Phone      string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Newsletter bool   `json:"newsletter"`

	PaymentMethod models.PaymentMethod `json:"payment_method,omitempty" validate:"omitempty,oneof=credit"`
	CardNumber    string               `json:"card_number" validate:"required,credit_card"`
	ExpiryDate    string               `json:"expiry_date" validate:"required,expiry"`
	CVV           string               `json:"cvv" validate:"required,numeric,min=3,max=4"`
	NameOnCard    string               `json:"name_on_card" validate:"required,max=100"`

	SpecialInstructions string `json:"special_instructions,omitempty" validate:"omitempty,max=500"`
}

func NewCheckoutService(store *cart.Store, gateway PaymentGateway, policy cart.Policy, notifications *NotificationService) *CheckoutService {
	return &CheckoutService{
		store:         store,
		gateway:       gateway,
		policy:        policy,
		notifications: notifications,
		now:           time.Now,
	}
}

// PlaceOrder submits the session's cart to the gateway and clears it once the
// gateway approves. The session stays locked while the gateway runs, so the
// cart that is charged is the cart that is cleared.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID string, req *CheckoutRequest) (*models.Order, error) {
	var order *models.Order

	_, err := s.store.Update(sessionID, func(current cart.State) (cart.State, error) {
		if current.IsEmpty() {
			return current, ErrEmptyCart
		}

		order = s.buildOrder(current, req)
		if err := s.gateway.Submit(ctx, order); err != nil {
			order.Status = models.OrderStatusFailed
			return current, fmt.Errorf("%w: %w", ErrPaymentFailed, err)
		}

		processed := s.now()
		order.Status = models.OrderStatusConfirmed
		order.Processed = &processed
		return cart.Reduce(current, cart.Clear{})
	})
	if err != nil {
		return nil, err
	}

	if s.notifications != nil {
		if err := s.notifications.SendOrderConfirmation(order); err != nil {
			logrus.WithError(err).WithField("order_number", order.Number).Warn("Failed to send order confirmation")
		}
	}

	return order, nil
}

func (s *CheckoutService) buildOrder(state cart.State, req *CheckoutRequest) *models.Order {
	summary := cart.Summarize(state, s.policy)
	placedAt := s.now()

	items := make([]models.OrderItem, len(state.Items))
	for i, item := range state.Items {
		items[i] = models.OrderItem{
			ProductID: item.Product.ID,
			Slug:      item.Product.Slug,
			Name:      item.Product.Name,
			UnitPrice: item.Product.Price,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		}
	}

	payment := req.PaymentMethod
	if payment == "" {
		payment = models.PaymentMethodCredit
	}

	return &models.Order{
		Number:   OrderNumber(placedAt),
		Status:   models.OrderStatusPending,
		Items:    items,
		Subtotal: summary.Subtotal,
		Shipping: summary.Shipping,
		Tax:      summary.Tax,
		Total:    summary.Total,
		Customer: models.Customer{
			Email:      strings.TrimSpace(req.Email),
			FirstName:  strings.TrimSpace(req.FirstName),
			LastName:   strings.TrimSpace(req.LastName),
			Address:    strings.TrimSpace(req.Address),
			City:       strings.TrimSpace(req.City),
			State:      strings.TrimSpace(req.State),
			ZipCode:    strings.TrimSpace(req.ZipCode),
			Phone:      strings.TrimSpace(req.Phone),
			Newsletter: req.Newsletter,
		},
		Payment:  payment,
		Notes:    req.SpecialInstructions,
		PlacedAt: placedAt,
	}
}

// OrderNumber is "CT" followed by the last six digits of the Unix millisecond
// timestamp.
func OrderNumber(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "CT" + ms
}
