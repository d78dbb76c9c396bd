package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cubo-pix-gateway/internal/adapter/http/middleware"
	"cubo-pix-gateway/internal/core/domain"
	"cubo-pix-gateway/internal/core/ports"
	"cubo-pix-gateway/internal/core/ports/mocks"
	"cubo-pix-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newJSONContext(method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- Pix Handler Tests ---

func TestPixCreate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPix := mocks.NewMockPixService(ctrl)
	h := NewPixHandler(mockPix)

	mockPix.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.PixChargeRequest) (*domain.PixCharge, error) {
			require.NotNil(t, req.Amount)
			assert.True(t, req.Amount.Equal(decimal.RequireFromString("12.5")))
			assert.Equal(t, "Pedido 42", req.Description)
			return &domain.PixCharge{TxID: "CUBO1", Payload: "000201", QRDataURL: "data:image/png;base64,AA"}, nil
		})

	c, w := newJSONContext(http.MethodPost, "/api/pix/create", `{"amount":12.5,"description":"  Pedido 42 "}`)
	h.Create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, "CUBO1", resp["txid"])
	assert.Equal(t, "000201", resp["payload"])
	assert.Equal(t, "data:image/png;base64,AA", resp["qrDataUrl"])
}

func TestPixCreate_EmptyBodyIsAmountOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPix := mocks.NewMockPixService(ctrl)
	h := NewPixHandler(mockPix)

	mockPix.EXPECT().CreateCharge(gomock.Any(), ports.PixChargeRequest{}).
		Return(&domain.PixCharge{TxID: "CUBO2", Payload: "p", QRDataURL: "q"}, nil)

	c, w := newJSONContext(http.MethodPost, "/api/pix/create", "")
	h.Create(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPixCreate_MissingKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPix := mocks.NewMockPixService(ctrl)
	h := NewPixHandler(mockPix)

	mockPix.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrPixKeyNotConfigured())

	c, w := newJSONContext(http.MethodPost, "/api/pix/create", `{"amount":10}`)
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, false, resp["ok"])
	assert.Equal(t, "PIX_001", resp["error_code"])
	assert.Equal(t, "PIX_KEY não configurada", resp["error"])
}

func TestPixCreate_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewPixHandler(mocks.NewMockPixService(ctrl))

	c, w := newJSONContext(http.MethodPost, "/api/pix/create", `{"amount":"muito"}`)
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", decodeBody(t, w)["error_code"])
}

func TestPixVerify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPix := mocks.NewMockPixService(ctrl)
	h := NewPixHandler(mockPix)

	mockPix.EXPECT().VerifyPayload(gomock.Any(), "000201").
		Return(&ports.PixVerification{Valid: false, Reason: "pix: checksum mismatch"}, nil)

	c, w := newJSONContext(http.MethodPost, "/api/pix/verify", `{"payload":"000201"}`)
	h.Verify(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, false, resp["valid"])
	assert.Equal(t, "pix: checksum mismatch", resp["reason"])
	assert.Equal(t, []interface{}{}, resp["fields"])
}

func TestPixVerify_MissingPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewPixHandler(mocks.NewMockPixService(ctrl))

	c, w := newJSONContext(http.MethodPost, "/api/pix/verify", `{}`)
	h.Verify(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Catalog Handler Tests ---

func TestCatalogList_PassesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mocks.NewMockCatalogService(ctrl)
	h := NewCatalogHandler(mockCatalog)

	mockCatalog.EXPECT().List(gomock.Any(), domain.ProductFilter{Tag: "Naruto", Query: "konan", Status: domain.ProductStatusCatalog}).
		Return([]domain.Product{{ID: "p3", Name: "Konan (Naruto)"}}, nil)

	c, w := newJSONContext(http.MethodGet, "/api/products?tag=Naruto&q=+konan+&status=catalogo", "")
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, float64(1), resp["count"])
	products := resp["products"].([]interface{})
	assert.Equal(t, "p3", products[0].(map[string]interface{})["id"])
}

func TestCatalogList_BadStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewCatalogHandler(mocks.NewMockCatalogService(ctrl))

	c, w := newJSONContext(http.MethodGet, "/api/products?status=vendido", "")
	h.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogGet_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mocks.NewMockCatalogService(ctrl)
	h := NewCatalogHandler(mockCatalog)

	mockCatalog.EXPECT().Get(gomock.Any(), "p99").Return(nil, apperror.ErrProductNotFound("p99"))

	c, w := newJSONContext(http.MethodGet, "/api/products/p99", "")
	c.Params = gin.Params{{Key: "id", Value: "p99"}}
	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CAT_001", decodeBody(t, w)["error_code"])
}

func TestCatalogTags_NeverNull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mocks.NewMockCatalogService(ctrl)
	h := NewCatalogHandler(mockCatalog)

	mockCatalog.EXPECT().Tags(gomock.Any()).Return(nil, nil)

	c, w := newJSONContext(http.MethodGet, "/api/tags", "")
	h.Tags(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"tags":[]}`, w.Body.String())
}

// --- Checkout Handler Tests ---

func TestCheckout_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCheckout := mocks.NewMockCheckoutService(ctrl)
	h := NewCheckoutHandler(mockCheckout)

	mockCheckout.EXPECT().Checkout(gomock.Any(), ports.CheckoutRequest{
		Lines: []domain.CartLine{{ProductID: "p3", Variant: "1/8", Qty: 2}},
		Pix:   true,
	}).Return(&ports.CheckoutResult{
		Order: domain.Order{Lines: []domain.OrderLine{
			{ProductID: "p3", ProductName: "Konan (Naruto)", Variant: "1/8", Qty: 2, UnitPrice: decimal.NewFromInt(140)},
		}},
		Subtotal:    decimal.NewFromInt(280),
		Message:     "Olá!",
		WhatsAppURL: "https://wa.me/5577998211169?text=Ol%C3%A1%21",
		Pix:         &domain.PixCharge{TxID: "CUBO3", Payload: "p", QRDataURL: "q"},
	}, nil)

	c, w := newJSONContext(http.MethodPost, "/api/checkout", `{"items":[{"product_id":"p3","variant":"1/8","qty":2}],"pix":true}`)
	h.Checkout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "280.00", resp["subtotal"])
	assert.Equal(t, float64(2), resp["item_count"])
	assert.Equal(t, "CUBO3", resp["pix"].(map[string]interface{})["txid"])
}

func TestCheckout_EmptyCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCheckout := mocks.NewMockCheckoutService(ctrl)
	h := NewCheckoutHandler(mockCheckout)

	mockCheckout.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrEmptyCart())

	c, w := newJSONContext(http.MethodPost, "/api/checkout", `{"items":[]}`)
	h.Checkout(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CHK_001", decodeBody(t, w)["error_code"])
}

// --- Admin Handler Tests ---

func TestAdminLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAdminHandler(mockAuth, mocks.NewMockCatalogService(ctrl))

	expiry := time.Unix(1760943200, 0)
	mockAuth.EXPECT().Login(gomock.Any(), "dono", "segredo123").Return("jwt-token", expiry, nil)

	body, _ := json.Marshal(map[string]string{"username": " dono ", "password": "segredo123"})
	c, w := newJSONContext(http.MethodPost, "/api/admin/login", string(body))
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "jwt-token", resp["token"])
	assert.Equal(t, float64(1760943200), resp["expiry"])
	assert.Equal(t, "dono", c.GetString(middleware.CtxAdmin))
}

func TestAdminLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAdminHandler(mockAuth, mocks.NewMockCatalogService(ctrl))

	mockAuth.EXPECT().Login(gomock.Any(), "dono", "errada").Return("", time.Time{}, apperror.ErrInvalidCredentials())

	c, w := newJSONContext(http.MethodPost, "/api/admin/login", `{"username":"dono","password":"errada"}`)
	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_001", decodeBody(t, w)["error_code"])
	assert.Empty(t, c.GetString(middleware.CtxAdmin))
}

func TestAdminUpsertProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mocks.NewMockCatalogService(ctrl)
	h := NewAdminHandler(mocks.NewMockAuthService(ctrl), mockCatalog)

	mockCatalog.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Product) (*domain.Product, error) {
			assert.Equal(t, "p17", p.ID)
			assert.Equal(t, "Itachi (Naruto)", p.Name)
			require.Len(t, p.Variants, 1)
			assert.True(t, p.Variants[0].Price.Equal(decimal.NewFromInt(300)))
			saved := *p
			saved.Status = domain.ProductStatusCatalog
			return &saved, nil
		})

	body := `{"name":"Itachi (Naruto)","tags":["Naruto"],"variants":[{"label":"1/7","price":300}]}`
	c, w := newJSONContext(http.MethodPut, "/api/admin/products/p17", body)
	c.Params = gin.Params{{Key: "id", Value: "p17"}}
	h.UpsertProduct(c)

	assert.Equal(t, http.StatusOK, w.Code)
	product := decodeBody(t, w)["product"].(map[string]interface{})
	assert.Equal(t, "catalogo", product["status"])
}

func TestAdminUpsertProduct_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAdminHandler(mocks.NewMockAuthService(ctrl), mocks.NewMockCatalogService(ctrl))

	c, w := newJSONContext(http.MethodPut, "/api/admin/products/a.b", `{}`)
	c.Params = gin.Params{{Key: "id", Value: "a.b"}}
	h.UpsertProduct(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminDeleteProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mocks.NewMockCatalogService(ctrl)
	h := NewAdminHandler(mocks.NewMockAuthService(ctrl), mockCatalog)

	gomock.InOrder(
		mockCatalog.EXPECT().Delete(gomock.Any(), "p7").Return(nil),
		mockCatalog.EXPECT().Delete(gomock.Any(), "p7").Return(apperror.ErrProductNotFound("p7")),
	)

	r := gin.New()
	r.DELETE("/api/admin/products/:id", h.DeleteProduct)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/admin/products/p7", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/admin/products/p7", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- System Handler Tests ---

func TestPing(t *testing.T) {
	c, w := newJSONContext(http.MethodGet, "/api/ping", "")
	Ping(5174)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"port":5174}`, w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pg := mocks.NewMockHealthChecker(ctrl)
	rd := mocks.NewMockHealthChecker(ctrl)
	pg.EXPECT().Name().Return("catalog_db").AnyTimes()
	rd.EXPECT().Name().Return("ratelimit_store").AnyTimes()

	pg.EXPECT().Ping(gomock.Any()).Return(nil).Times(2)
	rd.EXPECT().Ping(gomock.Any()).Return(nil)
	rd.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

	c, w := newJSONContext(http.MethodGet, "/health", "")
	HealthCheck(pg, rd)(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decodeBody(t, w)["status"])

	c, w = newJSONContext(http.MethodGet, "/health", "")
	HealthCheck(pg, rd)(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, false, resp["ok"])
	assert.Equal(t, "degraded", resp["status"])
	deps := resp["dependencies"].(map[string]interface{})
	assert.Equal(t, "connection refused", deps["ratelimit_store"].(map[string]interface{})["error"])
	assert.Equal(t, "healthy", deps["catalog_db"].(map[string]interface{})["status"])
}

func TestHealthCheck_NoDependencies(t *testing.T) {
	c, w := newJSONContext(http.MethodGet, "/health", "")
	HealthCheck()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"status":"healthy","dependencies":{}}`, w.Body.String())
}

func TestSwagger(t *testing.T) {
	c, w := newJSONContext(http.MethodGet, "/swagger/spec", "")
	SwaggerSpec(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("openapi: 3.0.3")))
	assert.Contains(t, w.Body.String(), "/api/pix/create:")

	c, w = newJSONContext(http.MethodGet, "/swagger", "")
	SwaggerUI(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/swagger/spec")
}
