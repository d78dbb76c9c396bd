package ports

import (
	"context"
	"time"

	"cubo-pix-gateway/internal/core/domain"
)

// ProductRepository defines persistence operations for the catalog.
// GetByID returns (nil, nil) when the product does not exist.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Upsert(ctx context.Context, product *domain.Product) error
	// Delete reports whether a product was removed.
	Delete(ctx context.Context, id string) (bool, error)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// RateLimitStore counts requests per key in fixed windows.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}
