package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cubo-pix-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const productColumns = `id, name, image, images, model, status, tags, default_variant, variants, updated_at`

// ProductRepo implements ports.ProductRepository. Images, tags and
// variants are stored as JSONB.
type ProductRepo struct {
	pool Pool
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(pool Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// List returns every product ordered by id.
func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}
	return products, nil
}

// GetByID fetches a product; (nil, nil) when it does not exist.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// Upsert inserts or replaces a product.
func (r *ProductRepo) Upsert(ctx context.Context, p *domain.Product) error {
	args, err := productArgs(p)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO products (`+productColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
		   name = EXCLUDED.name, image = EXCLUDED.image, images = EXCLUDED.images,
		   model = EXCLUDED.model, status = EXCLUDED.status, tags = EXCLUDED.tags,
		   default_variant = EXCLUDED.default_variant, variants = EXCLUDED.variants,
		   updated_at = EXCLUDED.updated_at`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}

// Delete removes a product and reports whether it existed.
func (r *ProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SeedIfEmpty inserts products when the table has no rows. Existing rows
// are never overwritten. Returns the number of rows inserted.
func (r *ProductRepo) SeedIfEmpty(ctx context.Context, products []domain.Product) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for i := range products {
		args, err := productArgs(&products[i])
		if err != nil {
			return 0, err
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO products (`+productColumns+`)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 ON CONFLICT (id) DO NOTHING`,
			args...,
		); err != nil {
			return 0, fmt.Errorf("seed product %s: %w", products[i].ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit seed: %w", err)
	}
	return len(products), nil
}

func productArgs(p *domain.Product) ([]any, error) {
	images, err := marshalJSONB(p.Images)
	if err != nil {
		return nil, fmt.Errorf("encode images of %s: %w", p.ID, err)
	}
	tags, err := marshalJSONB(p.Tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags of %s: %w", p.ID, err)
	}
	variants, err := marshalJSONB(p.Variants)
	if err != nil {
		return nil, fmt.Errorf("encode variants of %s: %w", p.ID, err)
	}
	return []any{
		p.ID, p.Name, p.Image, images, p.Model, string(p.Status),
		tags, p.DefaultVariant, variants, p.UpdatedAt,
	}, nil
}

// marshalJSONB encodes v for a JSONB column; nil slices become "[]".
func marshalJSONB[T any](v []T) (string, error) {
	if v == nil {
		return "[]", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		p                      domain.Product
		status                 string
		images, tags, variants []byte
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Image, &images, &p.Model, &status,
		&tags, &p.DefaultVariant, &variants, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	p.Status = domain.ProductStatus(status)

	if err := json.Unmarshal(images, &p.Images); err != nil {
		return nil, fmt.Errorf("decode images of %s: %w", p.ID, err)
	}
	if err := json.Unmarshal(tags, &p.Tags); err != nil {
		return nil, fmt.Errorf("decode tags of %s: %w", p.ID, err)
	}
	if err := json.Unmarshal(variants, &p.Variants); err != nil {
		return nil, fmt.Errorf("decode variants of %s: %w", p.ID, err)
	}
	return &p, nil
}
