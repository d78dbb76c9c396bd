package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus tells whether a piece is ready to ship or made to order.
type ProductStatus string

const (
	ProductStatusInStock ProductStatus = "estoque"
	ProductStatusCatalog ProductStatus = "catalogo"
)

// AllTags is the tag filter value that matches every product.
const AllTags = "Todos"

// IsValid reports whether s is a known status.
func (s ProductStatus) IsValid() bool {
	return s == ProductStatusInStock || s == ProductStatusCatalog
}

// Variant is a purchasable scale of a product.
type Variant struct {
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

// Product is a catalog entry.
type Product struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Image          string        `json:"image"`
	Images         []string      `json:"images,omitempty"`
	Model          string        `json:"model,omitempty"` // 3D viewer asset
	Status         ProductStatus `json:"status"`
	Tags           []string      `json:"tags"`
	DefaultVariant string        `json:"default_variant"`
	Variants       []Variant     `json:"variants"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Variant returns the variant with the given label.
func (p *Product) Variant(label string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.Label == label {
			return v, true
		}
	}
	return Variant{}, false
}

// HasTag reports whether p carries tag. The empty tag and AllTags match
// every product.
func (p *Product) HasTag(tag string) bool {
	if tag == "" || tag == AllTags {
		return true
	}
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// MatchesQuery reports whether the trimmed, case-folded query is a
// substring of the product name.
func (p *Product) MatchesQuery(q string) bool {
	q = strings.TrimSpace(q)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(q))
}

// ResolveDefaultVariant points DefaultVariant at an existing variant,
// falling back to the first one.
func (p *Product) ResolveDefaultVariant() {
	if _, ok := p.Variant(p.DefaultVariant); ok {
		return
	}
	if len(p.Variants) > 0 {
		p.DefaultVariant = p.Variants[0].Label
	} else {
		p.DefaultVariant = ""
	}
}

// ProductFilter narrows a catalog listing. Zero values match everything.
type ProductFilter struct {
	Tag    string
	Query  string
	Status ProductStatus
}

// Matches reports whether p passes every filter criterion.
func (f ProductFilter) Matches(p *Product) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	return p.HasTag(f.Tag) && p.MatchesQuery(f.Query)
}

// NaturalLess orders ids like "p2" before "p10": a shared alphabetic
// prefix is compared as text, the trailing digits as a number.
func NaturalLess(a, b string) bool {
	pa, na, okA := splitNumericSuffix(a)
	pb, nb, okB := splitNumericSuffix(b)
	if okA && okB && pa == pb {
		if na != nb {
			return na < nb
		}
		return a < b
	}
	return a < b
}

func splitNumericSuffix(s string) (string, uint64, bool) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) {
		return s, 0, false
	}
	n, err := strconv.ParseUint(s[i:], 10, 64)
	if err != nil {
		return s, 0, false
	}
	return s[:i], n, true
}
