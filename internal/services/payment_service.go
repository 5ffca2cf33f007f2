// internal/services/payment_service.go
package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/cleantheory-backend/internal/models"
)

var ErrPaymentFailed = errors.New("payment processing failed")

// PaymentGateway accepts an order for processing. Implementations must honour
// ctx cancellation.
type PaymentGateway interface {
	Submit(ctx context.Context, order *models.Order) error
}

const DefaultProcessingDelay = 2 * time.Second

// SimulatedGateway approves every order after Delay. No money moves.
type SimulatedGateway struct {
	Delay time.Duration
}

func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	return &SimulatedGateway{Delay: delay}
}

func (g *SimulatedGateway) Submit(ctx context.Context, order *models.Order) error {
	logger := logrus.WithFields(logrus.Fields{
		"order_number": order.Number,
		"total":        order.Total.StringFixed(2),
		"items":        order.ItemCount(),
	})
	logger.Debug("Processing order")

	if err := sleep(ctx, g.Delay); err != nil {
		logger.WithError(err).Warn("Order processing interrupted")
		return err
	}

	logger.Info("Order approved")
	return nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
