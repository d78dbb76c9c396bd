package handler

import (
	"cubo-pix-gateway/internal/adapter/http/dto"
	"cubo-pix-gateway/internal/core/ports"
	"cubo-pix-gateway/pkg/apperror"
	"cubo-pix-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler turns carts into WhatsApp orders.
type CheckoutHandler struct {
	checkoutSvc ports.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkoutSvc ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutSvc: checkoutSvc}
}

// Checkout handles POST /api/checkout.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.TrimStrings(&req)

	result, err := h.checkoutSvc.Checkout(c.Request.Context(), req.ToPorts())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewCheckoutResponse(result))
}
