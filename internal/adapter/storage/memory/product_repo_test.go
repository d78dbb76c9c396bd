package memory

import (
	"context"
	"sync"
	"testing"

	"cubo-pix-gateway/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalog(t *testing.T) {
	products := SeedCatalog()
	require.Len(t, products, 16)

	ids := make(map[string]bool, len(products))
	for _, p := range products {
		assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
		ids[p.ID] = true

		assert.NotEmpty(t, p.Name)
		assert.True(t, p.Status.IsValid(), p.ID)
		assert.NotEmpty(t, p.Images, p.ID)
		assert.Equal(t, p.Image, p.Images[0], p.ID)
		_, ok := p.Variant(p.DefaultVariant)
		assert.True(t, ok, "%s default variant %s", p.ID, p.DefaultVariant)
		for _, v := range p.Variants {
			assert.True(t, v.Price.IsPositive(), "%s %s", p.ID, v.Label)
		}
	}

	minthara := products[0]
	assert.Equal(t, "p1", minthara.ID)
	assert.Equal(t, domain.ProductStatusInStock, minthara.Status)
	assert.Equal(t, "/models/mintharaviewer.glb", minthara.Model)
	v, _ := minthara.Variant("1/7")
	assert.True(t, v.Price.Equal(decimal.NewFromInt(500)))

	// Fresh values on every call.
	products[0].Variants[0].Label = "changed"
	assert.Equal(t, "1/9", SeedCatalog()[0].Variants[0].Label)
}

func TestProductRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepo(SeedCatalog())

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 16)

	p, err := repo.GetByID(ctx, "p3")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Konan (Naruto)", p.Name)

	missing, err := repo.GetByID(ctx, "p99")
	require.NoError(t, err)
	assert.Nil(t, missing)

	p.Name = "Konan Anjo"
	require.NoError(t, repo.Upsert(ctx, p))
	got, _ := repo.GetByID(ctx, "p3")
	assert.Equal(t, "Konan Anjo", got.Name)

	removed, err := repo.Delete(ctx, "p3")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, "p3")
	require.NoError(t, err)
	assert.False(t, removed)

	all, _ = repo.List(ctx)
	assert.Len(t, all, 15)
}

func TestProductRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	seed := SeedCatalog()[:1]
	repo := NewProductRepo(seed)

	seed[0].Tags[0] = "mutated seed"
	p, _ := repo.GetByID(ctx, "p1")
	assert.Equal(t, "Baldur's Gate", p.Tags[0])

	p.Variants[0].Price = decimal.NewFromInt(1)
	again, _ := repo.GetByID(ctx, "p1")
	assert.True(t, again.Variants[0].Price.Equal(decimal.NewFromInt(420)))

	list, _ := repo.List(ctx)
	list[0].Images[0] = "/x.png"
	again, _ = repo.GetByID(ctx, "p1")
	assert.Equal(t, "/images/prod1.jpg", again.Images[0])
}

func TestProductRepo_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepo(SeedCatalog())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = repo.List(ctx)
		}()
		go func() {
			defer wg.Done()
			p, _ := repo.GetByID(ctx, "p1")
			p.Name = "Minthara"
			_ = repo.Upsert(ctx, p)
		}()
	}
	wg.Wait()

	p, _ := repo.GetByID(ctx, "p1")
	assert.Equal(t, "Minthara", p.Name)
}
