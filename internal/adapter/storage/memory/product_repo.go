package memory

import (
	"context"
	"sync"

	"cubo-pix-gateway/internal/core/domain"
)

// ProductRepo implements ports.ProductRepository in process memory. It is
// the default catalog backend when no database is configured.
type ProductRepo struct {
	mu       sync.RWMutex
	products map[string]domain.Product
}

// NewProductRepo creates a repository holding copies of seed.
func NewProductRepo(seed []domain.Product) *ProductRepo {
	r := &ProductRepo{products: make(map[string]domain.Product, len(seed))}
	for i := range seed {
		r.products[seed[i].ID] = clone(&seed[i])
	}
	return r
}

// List returns every product in no particular order.
func (r *ProductRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, clone(&p))
	}
	return out, nil
}

// GetByID returns nil, nil when id is unknown.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	c := clone(&p)
	return &c, nil
}

// Upsert stores a copy of p, replacing any product with the same id.
func (r *ProductRepo) Upsert(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[p.ID] = clone(p)
	return nil
}

// Delete removes id and reports whether it existed.
func (r *ProductRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

func clone(p *domain.Product) domain.Product {
	c := *p
	c.Images = append([]string(nil), p.Images...)
	c.Tags = append([]string(nil), p.Tags...)
	c.Variants = append([]domain.Variant(nil), p.Variants...)
	return c
}
