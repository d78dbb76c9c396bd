package postgres

import (
	"context"
	"fmt"
)

// HealthCheck reports whether the catalog database answers and the
// products table is readable.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping runs a one-row read against products, which also catches a schema
// that was dropped after startup.
func (h *HealthCheck) Ping(ctx context.Context) error {
	if _, err := h.pool.Exec(ctx, "SELECT 1 FROM products LIMIT 1"); err != nil {
		return fmt.Errorf("catalog db: %w", err)
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "catalog_db"
}
