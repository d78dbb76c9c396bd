package handler

import (
	"errors"
	"io"

	"cubo-pix-gateway/internal/adapter/http/dto"
	"cubo-pix-gateway/internal/core/ports"
	"cubo-pix-gateway/pkg/apperror"
	"cubo-pix-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// PixHandler handles Pix charge endpoints.
type PixHandler struct {
	pixSvc ports.PixService
}

// NewPixHandler creates a new PixHandler.
func NewPixHandler(pixSvc ports.PixService) *PixHandler {
	return &PixHandler{pixSvc: pixSvc}
}

// Create handles POST /api/pix/create. An empty body asks for an
// amount-open charge with the default description.
func (h *PixHandler) Create(c *gin.Context) {
	var req dto.PixCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.TrimStrings(&req)

	charge, err := h.pixSvc.CreateCharge(c.Request.Context(), ports.PixChargeRequest{
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewPixCreateResponse(charge))
}

// Verify handles POST /api/pix/verify.
func (h *PixHandler) Verify(c *gin.Context) {
	var req dto.PixVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.pixSvc.VerifyPayload(c.Request.Context(), req.Payload)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewPixVerifyResponse(result))
}
