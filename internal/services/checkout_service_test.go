package services

import (
	"context"
	"errors"
	"net/smtp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/javajoker/cleantheory-backend/internal/cart"
	"github.com/javajoker/cleantheory-backend/internal/catalog"
	"github.com/javajoker/cleantheory-backend/internal/config"
	"github.com/javajoker/cleantheory-backend/internal/models"
)

type recordingGateway struct {
	err    error
	orders []*models.Order
}

func (g *recordingGateway) Submit(_ context.Context, order *models.Order) error {
	g.orders = append(g.orders, order)
	return g.err
}

func validCheckoutRequest() *CheckoutRequest {
	return &CheckoutRequest{
		Email:      "jane@example.com",
		FirstName:  "Jane",
		LastName:   "Doe",
		Address:    "1 Market St",
		City:       "San Francisco",
		State:      "CA",
		ZipCode:    "94103",
		CardNumber: "4242424242424242",
		ExpiryDate: "12/29",
		CVV:        "123",
		NameOnCard: "Jane Doe",
	}
}

type CheckoutServiceTestSuite struct {
	suite.Suite
	catalog  *catalog.Store
	store    *cart.Store
	carts    *CartService
	gateway  *recordingGateway
	checkout *CheckoutService
}

func (suite *CheckoutServiceTestSuite) SetupTest() {
	store, err := catalog.LoadEmbedded()
	require.NoError(suite.T(), err)

	suite.catalog = store
	suite.store = cart.NewStore(time.Hour)
	suite.carts = NewCartService(suite.store, store, cart.DefaultPolicy())
	suite.gateway = &recordingGateway{}
	suite.checkout = NewCheckoutService(suite.store, suite.gateway, cart.DefaultPolicy(), nil)
	suite.checkout.now = func() time.Time { return time.UnixMilli(1718000123456) }
}

func (suite *CheckoutServiceTestSuite) addItem(productID uint, quantity int) {
	_, err := suite.carts.AddItem("s1", &AddItemRequest{ProductID: productID, Quantity: &quantity})
	require.NoError(suite.T(), err)
}

func (suite *CheckoutServiceTestSuite) TestEmptyCartIsRejected() {
	_, err := suite.checkout.PlaceOrder(context.Background(), "s1", validCheckoutRequest())

	assert.ErrorIs(suite.T(), err, ErrEmptyCart)
	assert.Empty(suite.T(), suite.gateway.orders)
}

func (suite *CheckoutServiceTestSuite) TestSuccessfulCheckoutClearsCart() {
	suite.addItem(1, 2)
	suite.addItem(8, 1)
	_, err := suite.carts.OpenCart("s1")
	require.NoError(suite.T(), err)

	order, err := suite.checkout.PlaceOrder(context.Background(), "s1", validCheckoutRequest())
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "CT123456", order.Number)
	assert.Equal(suite.T(), models.OrderStatusConfirmed, order.Status)
	assert.Equal(suite.T(), 3, order.ItemCount())
	assert.Equal(suite.T(), "46.97", order.Subtotal.StringFixed(2))
	assert.Equal(suite.T(), "3.76", order.Tax.StringFixed(2))
	assert.Equal(suite.T(), "50.73", order.Total.StringFixed(2))
	assert.Equal(suite.T(), models.PaymentMethodCredit, order.Payment)
	assert.NotNil(suite.T(), order.Processed)
	require.Len(suite.T(), suite.gateway.orders, 1)

	view := suite.carts.GetCart("s1")
	assert.Empty(suite.T(), view.Items)
	assert.True(suite.T(), view.IsOpen)
}

func (suite *CheckoutServiceTestSuite) TestGatewayFailureKeepsCart() {
	suite.addItem(1, 2)
	suite.gateway.err = errors.New("card declined")

	_, err := suite.checkout.PlaceOrder(context.Background(), "s1", validCheckoutRequest())

	assert.ErrorIs(suite.T(), err, ErrPaymentFailed)
	assert.Equal(suite.T(), 2, suite.carts.GetCart("s1").TotalItems)
}

func TestCheckoutServiceSuite(t *testing.T) {
	suite.Run(t, new(CheckoutServiceTestSuite))
}

func TestSimulatedGatewayHonoursContext(t *testing.T) {
	gateway := NewSimulatedGateway(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := gateway.Submit(ctx, &models.Order{Number: "CT000001"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulatedGatewayApproves(t *testing.T) {
	gateway := NewSimulatedGateway(time.Millisecond)
	assert.NoError(t, gateway.Submit(context.Background(), &models.Order{Number: "CT000001"}))
}

func TestCancelledCheckoutKeepsCart(t *testing.T) {
	store, err := catalog.LoadEmbedded()
	require.NoError(t, err)
	carts := cart.NewStore(time.Hour)
	checkout := NewCheckoutService(carts, NewSimulatedGateway(time.Minute), cart.DefaultPolicy(), nil)

	product, ok := store.FindByID(1)
	require.True(t, ok)
	_, err = carts.Dispatch("s1", cart.Add{Product: product, Quantity: 1})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = checkout.PlaceOrder(ctx, "s1", validCheckoutRequest())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, carts.Get("s1").TotalItems())
}

func TestOrderNumber(t *testing.T) {
	assert.Equal(t, "CT123456", OrderNumber(time.UnixMilli(1718000123456)))
	assert.Equal(t, "CT000042", OrderNumber(time.UnixMilli(9000000042)))
}

func TestCartServiceAddUnknownProduct(t *testing.T) {
	store, err := catalog.LoadEmbedded()
	require.NoError(t, err)
	carts := NewCartService(cart.NewStore(time.Hour), store, cart.DefaultPolicy())

	_, err = carts.AddItem("s1", &AddItemRequest{ProductID: 99})
	assert.ErrorIs(t, err, ErrProductNotFound)

	view, err := carts.AddItem("s1", &AddItemRequest{ProductID: 12})
	require.NoError(t, err)
	assert.Equal(t, 1, view.TotalItems)
	assert.Equal(t, "24.99", view.Items[0].LineTotal.StringFixed(2))

	zero := 0
	_, err = carts.AddItem("s1", &AddItemRequest{ProductID: 12, Quantity: &zero})
	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
}

func TestFeedbackSubmission(t *testing.T) {
	var sent []string
	notifications := NewNotificationService(config.EmailConfig{SMTPHost: "smtp.test", SMTPPort: "25", FromName: "Clean Theory"})
	notifications.send = func(_ string, _ smtp.Auth, _ string, to []string, _ []byte) error {
		sent = append(sent, to...)
		return nil
	}
	svc := NewFeedbackService(0, notifications)

	feedback, err := svc.SubmitFeedback(context.Background(), &FeedbackRequest{
		VisitReason:         VisitReasons[0],
		OverallExperience:   5,
		WebsiteEase:         4,
		ProductSelection:    5,
		RecommendLikelihood: 9,
		Email:               " shopper@example.com ",
		AllowContact:        true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, feedback.Reference)
	assert.Equal(t, "shopper@example.com", feedback.Email)
	assert.Equal(t, []string{"shopper@example.com"}, sent)
}

func TestFeedbackCheckChoices(t *testing.T) {
	req := &FeedbackRequest{VisitReason: VisitReasons[2], MostUsefulFeature: UsefulFeatures[0]}
	assert.Empty(t, req.CheckChoices())

	req.MostUsefulFeature = ""
	assert.Empty(t, req.CheckChoices())

	req = &FeedbackRequest{VisitReason: "Bored", MostUsefulFeature: "Confetti"}
	errs := req.CheckChoices()
	require.Len(t, errs, 2)
	assert.Equal(t, "visit_reason", errs[0].Field)
	assert.Equal(t, "most_useful_feature", errs[1].Field)
}

func TestFeedbackSubmissionHonoursContext(t *testing.T) {
	svc := NewFeedbackService(time.Minute, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.SubmitFeedback(ctx, &FeedbackRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOrderConfirmationEmail(t *testing.T) {
	var body string
	notifications := NewNotificationService(config.EmailConfig{SMTPHost: "smtp.test", SMTPPort: "25", FromName: "Clean Theory"})
	notifications.send = func(_ string, _ smtp.Auth, _ string, _ []string, msg []byte) error {
		body = string(msg)
		return nil
	}

	store, err := catalog.LoadEmbedded()
	require.NoError(t, err)
	carts := cart.NewStore(time.Hour)
	checkout := NewCheckoutService(carts, &recordingGateway{}, cart.DefaultPolicy(), notifications)

	product, ok := store.FindBySlug("hydra-luxe")
	require.True(t, ok)
	_, err = carts.Dispatch("s1", cart.Add{Product: product, Quantity: 2})
	require.NoError(t, err)

	order, err := checkout.PlaceOrder(context.Background(), "s1", validCheckoutRequest())
	require.NoError(t, err)

	assert.Contains(t, body, "Subject: Your Clean Theory order "+order.Number)
	assert.Contains(t, body, "2 x Hydra Luxe")
	assert.Contains(t, body, "49.98")
}
