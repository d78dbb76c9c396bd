package domain

import (
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func minthara() *Product {
	return &Product{
		ID:             "p1",
		Name:           "Minthara (Baldur's Gate)",
		Status:         ProductStatusInStock,
		Tags:           []string{"Baldur's Gate", "Games", "RPG"},
		DefaultVariant: "1/7",
		Variants: []Variant{
			{Label: "1/9", Price: decimal.NewFromInt(420)},
			{Label: "1/7", Price: decimal.NewFromInt(500)},
			{Label: "1/6", Price: decimal.NewFromInt(580)},
		},
	}
}

func TestProductStatus_IsValid(t *testing.T) {
	assert.True(t, ProductStatusInStock.IsValid())
	assert.True(t, ProductStatusCatalog.IsValid())
	assert.False(t, ProductStatus("").IsValid())
	assert.False(t, ProductStatus("ESTOQUE").IsValid())
}

func TestProduct_Variant(t *testing.T) {
	p := minthara()

	v, ok := p.Variant("1/6")
	assert.True(t, ok)
	assert.True(t, decimal.NewFromInt(580).Equal(v.Price))

	_, ok = p.Variant("1/4")
	assert.False(t, ok)
}

func TestProduct_HasTag(t *testing.T) {
	p := minthara()

	tests := []struct {
		tag  string
		want bool
	}{
		{"", true},
		{AllTags, true},
		{"RPG", true},
		{"rpg", false},
		{"Naruto", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, p.HasTag(tt.tag))
		})
	}
}

func TestProduct_MatchesQuery(t *testing.T) {
	p := minthara()

	assert.True(t, p.MatchesQuery(""))
	assert.True(t, p.MatchesQuery("  "))
	assert.True(t, p.MatchesQuery("MINTH"))
	assert.True(t, p.MatchesQuery(" baldur "))
	assert.False(t, p.MatchesQuery("konan"))
}

func TestProduct_ResolveDefaultVariant(t *testing.T) {
	p := minthara()
	p.ResolveDefaultVariant()
	assert.Equal(t, "1/7", p.DefaultVariant, "existing default is kept")

	p.DefaultVariant = "1/3"
	p.ResolveDefaultVariant()
	assert.Equal(t, "1/9", p.DefaultVariant, "unknown default falls back to the first variant")

	p.Variants = nil
	p.ResolveDefaultVariant()
	assert.Empty(t, p.DefaultVariant)
}

func TestProductFilter_Matches(t *testing.T) {
	p := minthara()

	tests := []struct {
		name   string
		filter ProductFilter
		want   bool
	}{
		{"zero filter", ProductFilter{}, true},
		{"tag and query", ProductFilter{Tag: "Games", Query: "minthara"}, true},
		{"status match", ProductFilter{Status: ProductStatusInStock}, true},
		{"status mismatch", ProductFilter{Status: ProductStatusCatalog}, false},
		{"tag mismatch", ProductFilter{Tag: "DBZ"}, false},
		{"query mismatch", ProductFilter{Tag: AllTags, Query: "goku"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(p))
		})
	}
}

func TestNaturalLess(t *testing.T) {
	ids := []string{"p10", "p2", "p1", "p16", "custom", "p3", "a1"}
	sort.Slice(ids, func(i, j int) bool { return NaturalLess(ids[i], ids[j]) })

	assert.Equal(t, []string{"a1", "custom", "p1", "p2", "p3", "p10", "p16"}, ids)
	assert.True(t, NaturalLess("p02", "p2"), "equal numbers fall back to text order")
	assert.False(t, NaturalLess("p2", "p2"))
}

func TestMergeCartLines(t *testing.T) {
	lines := []CartLine{
		{ProductID: "p3", Variant: "1/9", Qty: 1},
		{ProductID: "p1", Variant: "1/7", Qty: 2},
		{ProductID: "p3", Variant: "1/9", Qty: 3},
		{ProductID: "p3", Variant: "1/8", Qty: 1},
	}

	merged := MergeCartLines(lines)

	assert.Equal(t, []CartLine{
		{ProductID: "p3", Variant: "1/9", Qty: 4},
		{ProductID: "p1", Variant: "1/7", Qty: 2},
		{ProductID: "p3", Variant: "1/8", Qty: 1},
	}, merged)
	assert.Equal(t, 1, lines[0].Qty, "input is not modified")
}

func TestOrder_Totals(t *testing.T) {
	order := Order{Lines: []OrderLine{
		{ProductID: "p1", Variant: "1/7", Qty: 2, UnitPrice: decimal.NewFromInt(500)},
		{ProductID: "p3", Variant: "1/9", Qty: 1, UnitPrice: decimal.RequireFromString("120.50")},
	}}

	assert.Equal(t, "1000", order.Lines[0].Total().String())
	assert.Equal(t, "1120.50", order.Subtotal().StringFixed(2))
	assert.Equal(t, 3, order.ItemCount())

	empty := Order{}
	assert.True(t, empty.Subtotal().IsZero())
}
