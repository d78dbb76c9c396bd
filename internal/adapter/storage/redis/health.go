package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// HealthCheck reports whether the rate limit store is reachable. Requests
// are still served while it is down; see middleware.RateLimiter.
type HealthCheck struct {
	client *goredis.Client
}

func NewHealthCheck(client *goredis.Client) *HealthCheck {
	return &HealthCheck{client: client}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	if err := h.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("rate limit store: %w", err)
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "ratelimit_store"
}
