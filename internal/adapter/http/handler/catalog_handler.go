package handler

import (
	"cubo-pix-gateway/internal/adapter/http/dto"
	"cubo-pix-gateway/internal/core/ports"
	"cubo-pix-gateway/pkg/apperror"
	"cubo-pix-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public product catalog.
type CatalogHandler struct {
	catalogSvc ports.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogSvc ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// List handles GET /api/products.
func (h *CatalogHandler) List(c *gin.Context) {
	var q dto.ProductQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.TrimStrings(&q)

	products, err := h.catalogSvc.List(c.Request.Context(), q.Filter())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewProductListResponse(products))
}

// Get handles GET /api/products/:id.
func (h *CatalogHandler) Get(c *gin.Context) {
	product, err := h.catalogSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ProductResponse{Envelope: response.Success, Product: product})
}

// Tags handles GET /api/tags.
func (h *CatalogHandler) Tags(c *gin.Context) {
	tags, err := h.catalogSvc.Tags(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if tags == nil {
		tags = []string{}
	}

	response.OK(c, dto.TagsResponse{Envelope: response.Success, Tags: tags})
}
