package ports

import (
	"context"
	"time"

	"cubo-pix-gateway/internal/core/domain"
	"cubo-pix-gateway/internal/pix"

	"github.com/shopspring/decimal"
)

// --- Infrastructure Ports ---

// QRRenderer turns text into a PNG QR code data URL.
type QRRenderer interface {
	DataURL(content string) (string, error)
}

// TxIDGenerator produces transaction ids for new charges.
type TxIDGenerator interface {
	Next() string
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// --- Service Ports (Business Logic) ---

// PixService creates and inspects static Pix charges.
type PixService interface {
	CreateCharge(ctx context.Context, req PixChargeRequest) (*domain.PixCharge, error)
	VerifyPayload(ctx context.Context, payload string) (*PixVerification, error)
}

// PixChargeRequest holds validated input for a new charge. A nil Amount
// leaves the value for the payer to type.
type PixChargeRequest struct {
	Amount      *decimal.Decimal
	Description string
}

// PixVerification is the result of decoding a payload.
type PixVerification struct {
	Valid  bool
	Reason string
	Fields []pix.ParsedField
}

// CatalogService defines product catalog business logic.
type CatalogService interface {
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Tags(ctx context.Context) ([]string, error)
	Upsert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// CheckoutService turns a cart into a WhatsApp order message.
type CheckoutService interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
}

// CheckoutRequest holds the cart and whether a Pix charge is wanted.
type CheckoutRequest struct {
	Lines []domain.CartLine
	Pix   bool
}

// CheckoutResult is the priced order and the link that sends it.
type CheckoutResult struct {
	Order       domain.Order
	Subtotal    decimal.Decimal
	Message     string
	WhatsAppURL string
	Pix         *domain.PixCharge
}

// AuthService defines administrator authentication.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// AuditService records audited actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
