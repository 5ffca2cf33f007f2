// internal/handlers/cart.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/cleantheory-backend/internal/cart"
	"github.com/javajoker/cleantheory-backend/internal/services"
	"github.com/javajoker/cleantheory-backend/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	utils.SuccessResponse(c, h.cartService.GetCart(sessionID))
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	var req services.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	view, err := h.cartService.AddItem(sessionID, &req)
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		utils.NotFoundResponse(c, "Product")
	case errors.Is(err, cart.ErrInvalidQuantity):
		utils.ValidationErrorResponse(c, []utils.ValidationError{{
			Field:   "quantity",
			Tag:     "min",
			Message: "quantity must be at least 1",
		}})
	case errors.Is(err, cart.ErrQuantityOverflow):
		utils.ValidationErrorResponse(c, []utils.ValidationError{{
			Field:   "quantity",
			Tag:     "max",
			Message: "quantity is too large",
		}})
	case err != nil:
		utils.InternalErrorResponse(c, err.Error())
	default:
		utils.SuccessResponse(c, view)
	}
}

// PUT /cart/items/:product_id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	h.respond(c, func() (services.CartView, error) {
		return h.cartService.UpdateItemQuantity(sessionID, productID, *req.Quantity)
	})
}

// DELETE /cart/items/:product_id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	h.respond(c, func() (services.CartView, error) {
		return h.cartService.RemoveItem(sessionID, productID)
	})
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.withSession(c, h.cartService.ClearCart)
}

// POST /cart/open
func (h *CartHandler) OpenCart(c *gin.Context) {
	h.withSession(c, h.cartService.OpenCart)
}

// POST /cart/close
func (h *CartHandler) CloseCart(c *gin.Context) {
	h.withSession(c, h.cartService.CloseCart)
}

// POST /cart/toggle
func (h *CartHandler) ToggleCart(c *gin.Context) {
	h.withSession(c, h.cartService.ToggleCart)
}

// GET /cart/summary
func (h *CartHandler) GetSummary(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	utils.SuccessResponse(c, h.cartService.GetSummary(sessionID))
}

func (h *CartHandler) withSession(c *gin.Context, fn func(sessionID string) (services.CartView, error)) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	h.respond(c, func() (services.CartView, error) {
		return fn(sessionID)
	})
}

func (h *CartHandler) respond(c *gin.Context, fn func() (services.CartView, error)) {
	view, err := fn()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, view)
}

func requireSession(c *gin.Context) (string, bool) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return "", false
	}
	return sessionID, true
}

func productIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil || id == 0 {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return 0, false
	}
	return uint(id), true
}
