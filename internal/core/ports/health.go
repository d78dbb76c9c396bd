package ports

import "context"

// HealthChecker is a backing store reported by /health. The storefront keeps
// selling from memory when one is down, so a failure degrades the response
// rather than stopping the process.
type HealthChecker interface {
	Ping(ctx context.Context) error
	// Name is the key used in the dependencies map, e.g. "catalog_db".
	Name() string
}
