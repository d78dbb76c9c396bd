package handler

import (
	"cubo-pix-gateway/internal/adapter/http/dto"
	"cubo-pix-gateway/internal/adapter/http/middleware"
	"cubo-pix-gateway/internal/core/ports"
	"cubo-pix-gateway/pkg/apperror"
	"cubo-pix-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles administrator login and catalog writes.
type AdminHandler struct {
	authSvc    ports.AuthService
	catalogSvc ports.CatalogService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(authSvc ports.AuthService, catalogSvc ports.CatalogService) *AdminHandler {
	return &AdminHandler{authSvc: authSvc, catalogSvc: catalogSvc}
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.TrimStrings(&req)

	token, expiry, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Lets the audit middleware attribute the login.
	c.Set(middleware.CtxAdmin, req.Username)
	response.OK(c, dto.NewLoginResponse(token, expiry))
}

// UpsertProduct handles PUT /api/admin/products/:id.
func (h *AdminHandler) UpsertProduct(c *gin.Context) {
	id := c.Param("id")
	if !dto.ValidProductID(id) {
		response.Error(c, apperror.Validation("invalid product id"))
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.TrimStrings(&req)

	saved, err := h.catalogSvc.Upsert(c.Request.Context(), req.ToDomain(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ProductResponse{Envelope: response.Success, Product: saved})
}

// DeleteProduct handles DELETE /api/admin/products/:id.
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalogSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
