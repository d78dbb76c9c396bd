package dto

import (
	"time"

	"cubo-pix-gateway/internal/core/domain"
	"cubo-pix-gateway/internal/core/ports"
	"cubo-pix-gateway/internal/pix"
	"cubo-pix-gateway/pkg/response"

	"github.com/shopspring/decimal"
)

// PingResponse is the liveness answer.
type PingResponse struct {
	response.Envelope
	Port int `json:"port"`
}

// DependencyStatus is the health of one backing service.
type DependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResponse is the deep health check body.
type HealthResponse struct {
	response.Envelope
	Status       string                      `json:"status"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}

// PixCreateRequest is the request body for a new Pix charge. Amount
// accepts a JSON number or a numeric string; leave it out for an
// amount-open code.
type PixCreateRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Description string           `json:"description" binding:"omitempty,max=140,pix_text"`
}

// PixCreateResponse is the flat success body of /api/pix/create.
type PixCreateResponse struct {
	response.Envelope
	TxID      string `json:"txid"`
	Payload   string `json:"payload"`
	QRDataURL string `json:"qrDataUrl"`
}

// NewPixCreateResponse maps a charge to its response body.
func NewPixCreateResponse(c *domain.PixCharge) PixCreateResponse {
	return PixCreateResponse{
		Envelope:  response.Success,
		TxID:      c.TxID,
		Payload:   c.Payload,
		QRDataURL: c.QRDataURL,
	}
}

// PixVerifyRequest carries a "copy and paste" payload to inspect.
type PixVerifyRequest struct {
	Payload string `json:"payload" binding:"required,max=512"`
}

// PixVerifyResponse is the decoded payload.
type PixVerifyResponse struct {
	response.Envelope
	Valid  bool              `json:"valid"`
	Reason string            `json:"reason,omitempty"`
	Fields []pix.ParsedField `json:"fields"`
}

// NewPixVerifyResponse maps a verification result.
func NewPixVerifyResponse(v *ports.PixVerification) PixVerifyResponse {
	fields := v.Fields
	if fields == nil {
		fields = []pix.ParsedField{}
	}
	return PixVerifyResponse{
		Envelope: response.Success,
		Valid:    v.Valid,
		Reason:   v.Reason,
		Fields:   fields,
	}
}

// ProductListResponse wraps a filtered catalog listing.
type ProductListResponse struct {
	response.Envelope
	Products []domain.Product `json:"products"`
	Count    int              `json:"count"`
}

// NewProductListResponse wraps products, never returning a null list.
func NewProductListResponse(products []domain.Product) ProductListResponse {
	if products == nil {
		products = []domain.Product{}
	}
	return ProductListResponse{Envelope: response.Success, Products: products, Count: len(products)}
}

// ProductResponse wraps a single product.
type ProductResponse struct {
	response.Envelope
	Product *domain.Product `json:"product"`
}

// TagsResponse lists the distinct catalog tags.
type TagsResponse struct {
	response.Envelope
	Tags []string `json:"tags"`
}

// ProductQuery is the query string of GET /api/products.
type ProductQuery struct {
	Tag    string `form:"tag" binding:"max=40"`
	Q      string `form:"q" binding:"max=80"`
	Status string `form:"status" binding:"omitempty,oneof=estoque catalogo"`
}

// Filter converts the query to a domain filter.
func (q ProductQuery) Filter() domain.ProductFilter {
	return domain.ProductFilter{Tag: q.Tag, Query: q.Q, Status: domain.ProductStatus(q.Status)}
}

// VariantRequest is one scale of a product being saved.
type VariantRequest struct {
	Label string          `json:"label" binding:"required,variant_label"`
	Price decimal.Decimal `json:"price"`
}

// ProductRequest is the body of PUT /api/admin/products/:id.
type ProductRequest struct {
	Name           string           `json:"name" binding:"required,max=120"`
	Images         []string         `json:"images" binding:"max=12,dive,required,max=512"`
	Model          string           `json:"model" binding:"max=512"`
	Status         string           `json:"status" binding:"omitempty,oneof=estoque catalogo"`
	Tags           []string         `json:"tags" binding:"max=12,dive,required,max=40"`
	DefaultVariant string           `json:"default_variant" binding:"max=32"`
	Variants       []VariantRequest `json:"variants" binding:"required,min=1,max=12,dive"`
}

// ToDomain builds the product stored under id.
func (r ProductRequest) ToDomain(id string) *domain.Product {
	variants := make([]domain.Variant, len(r.Variants))
	for i, v := range r.Variants {
		variants[i] = domain.Variant{Label: v.Label, Price: v.Price}
	}
	return &domain.Product{
		ID:             id,
		Name:           r.Name,
		Images:         r.Images,
		Model:          r.Model,
		Status:         domain.ProductStatus(r.Status),
		Tags:           r.Tags,
		DefaultVariant: r.DefaultVariant,
		Variants:       variants,
	}
}

// CartItem is one line of a checkout request.
type CartItem struct {
	ProductID string `json:"product_id" binding:"required,safe_id"`
	Variant   string `json:"variant" binding:"omitempty,variant_label"`
	Qty       int    `json:"qty" binding:"required,min=1,max=99"`
}

// CheckoutRequest is the cart sent to POST /api/checkout.
type CheckoutRequest struct {
	Items []CartItem `json:"items" binding:"max=50,dive"`
	Pix   bool       `json:"pix"`
}

// ToPorts converts the body to the service request.
func (r CheckoutRequest) ToPorts() ports.CheckoutRequest {
	lines := make([]domain.CartLine, len(r.Items))
	for i, it := range r.Items {
		lines[i] = domain.CartLine{ProductID: it.ProductID, Variant: it.Variant, Qty: it.Qty}
	}
	return ports.CheckoutRequest{Lines: lines, Pix: r.Pix}
}

// OrderLineResponse is a priced line.
type OrderLineResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Variant     string `json:"variant"`
	Qty         int    `json:"qty"`
	UnitPrice   string `json:"unit_price"`
	Total       string `json:"total"`
}

// CheckoutResponse carries the WhatsApp link and the optional Pix charge.
type CheckoutResponse struct {
	response.Envelope
	Lines       []OrderLineResponse `json:"lines"`
	ItemCount   int                 `json:"item_count"`
	Subtotal    string              `json:"subtotal"`
	Message     string              `json:"message"`
	WhatsAppURL string              `json:"whatsapp_url"`
	Pix         *PixCreateResponse  `json:"pix,omitempty"`
}

// NewCheckoutResponse maps a checkout result.
func NewCheckoutResponse(res *ports.CheckoutResult) CheckoutResponse {
	lines := make([]OrderLineResponse, len(res.Order.Lines))
	for i, l := range res.Order.Lines {
		lines[i] = OrderLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Variant:     l.Variant,
			Qty:         l.Qty,
			UnitPrice:   pix.FormatAmount(l.UnitPrice),
			Total:       pix.FormatAmount(l.Total()),
		}
	}
	out := CheckoutResponse{
		Envelope:    response.Success,
		Lines:       lines,
		ItemCount:   res.Order.ItemCount(),
		Subtotal:    pix.FormatAmount(res.Subtotal),
		Message:     res.Message,
		WhatsAppURL: res.WhatsAppURL,
	}
	if res.Pix != nil {
		p := NewPixCreateResponse(res.Pix)
		out.Pix = &p
	}
	return out
}

// LoginRequest is the request body for admin login.
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required,max=128"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	response.Envelope
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// NewLoginResponse builds the login body.
func NewLoginResponse(token string, expiry time.Time) LoginResponse {
	return LoginResponse{Envelope: response.Success, Token: token, Expiry: expiry.Unix()}
}
