package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"cubo-pix-gateway/internal/core/domain"
	"cubo-pix-gateway/internal/core/ports"
	"cubo-pix-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CatalogServiceImpl implements ports.CatalogService.
type CatalogServiceImpl struct {
	repo ports.ProductRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewCatalogService creates a new CatalogServiceImpl.
func NewCatalogService(repo ports.ProductRepository, log zerolog.Logger) *CatalogServiceImpl {
	return &CatalogServiceImpl{repo: repo, log: log, now: time.Now}
}

// List returns the products matching filter in natural id order.
func (s *CatalogServiceImpl) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list products: %w", err))
	}

	out := make([]domain.Product, 0, len(all))
	for i := range all {
		if filter.Matches(&all[i]) {
			out = append(out, all[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return domain.NaturalLess(out[i].ID, out[j].ID)
	})
	return out, nil
}

// Get returns a single product.
func (s *CatalogServiceImpl) Get(ctx context.Context, id string) (*domain.Product, error) {
	id = strings.TrimSpace(id)
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get product: %w", err))
	}
	if p == nil {
		return nil, apperror.ErrProductNotFound(id)
	}
	return p, nil
}

// Tags returns every distinct tag, sorted the way a Brazilian reader
// expects (accents do not push a tag to the end).
func (s *CatalogServiceImpl) Tags(ctx context.Context) ([]string, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list products: %w", err))
	}

	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, p := range all {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	collate.New(language.BrazilianPortuguese).SortStrings(tags)
	return tags, nil
}

// Upsert validates and stores product.
func (s *CatalogServiceImpl) Upsert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if product.Status == "" {
		product.Status = domain.ProductStatusCatalog
	}
	if product.Image == "" && len(product.Images) > 0 {
		product.Image = product.Images[0]
	}
	product.ResolveDefaultVariant()
	product.UpdatedAt = s.now().UTC()

	if err := s.repo.Upsert(ctx, product); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("upsert product: %w", err))
	}

	s.log.Info().
		Str("product_id", product.ID).
		Int("variants", len(product.Variants)).
		Msg("product saved")

	return product, nil
}

// Delete removes a product.
func (s *CatalogServiceImpl) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("delete product: %w", err))
	}
	if !removed {
		return apperror.ErrProductNotFound(id)
	}

	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func validateProduct(p *domain.Product) error {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)

	if p.ID == "" {
		return apperror.Validation("product id is required")
	}
	if p.Name == "" {
		return apperror.Validation("product name is required")
	}
	if p.Status != "" && !p.Status.IsValid() {
		return apperror.Validation(fmt.Sprintf("unknown status %q", p.Status))
	}
	if len(p.Variants) == 0 {
		return apperror.Validation("product needs at least one variant")
	}

	labels := make(map[string]struct{}, len(p.Variants))
	for i := range p.Variants {
		v := &p.Variants[i]
		v.Label = strings.TrimSpace(v.Label)
		if v.Label == "" {
			return apperror.Validation("variant label is required")
		}
		if _, dup := labels[v.Label]; dup {
			return apperror.Validation(fmt.Sprintf("duplicate variant %q", v.Label))
		}
		labels[v.Label] = struct{}{}
		if !v.Price.IsPositive() {
			return apperror.Validation(fmt.Sprintf("variant %q needs a positive price", v.Label))
		}
	}
	return nil
}
