// internal/handlers/checkout.go
package handlers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/cleantheory-backend/internal/services"
	"github.com/javajoker/cleantheory-backend/internal/utils"
)

type CheckoutHandler struct {
	checkoutService *services.CheckoutService
}

func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// POST /checkout
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	order, err := h.checkoutService.PlaceOrder(c.Request.Context(), sessionID, &req)
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		utils.ConflictResponse(c, "Your cart is empty")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		utils.InternalErrorResponse(c, "Order processing was interrupted")
	case errors.Is(err, services.ErrPaymentFailed):
		utils.BadGatewayResponse(c, "Payment could not be processed")
	case err != nil:
		utils.InternalErrorResponse(c, err.Error())
	default:
		utils.CreatedResponse(c, order)
	}
}
