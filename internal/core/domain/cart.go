package domain

import "github.com/shopspring/decimal"

// CartLine is what the client sends: a product, a scale and a quantity.
type CartLine struct {
	ProductID string `json:"product_id"`
	Variant   string `json:"variant"`
	Qty       int    `json:"qty"`
}

// MergeCartLines folds lines with the same product and variant into one,
// keeping the order in which each pair first appears.
func MergeCartLines(lines []CartLine) []CartLine {
	type key struct{ product, variant string }

	index := make(map[key]int, len(lines))
	merged := make([]CartLine, 0, len(lines))
	for _, l := range lines {
		k := key{l.ProductID, l.Variant}
		if i, ok := index[k]; ok {
			merged[i].Qty += l.Qty
			continue
		}
		index[k] = len(merged)
		merged = append(merged, l)
	}
	return merged
}

// OrderLine is a cart line priced from the catalog.
type OrderLine struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Variant     string          `json:"variant"`
	Qty         int             `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Total returns UnitPrice * Qty.
func (l OrderLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// Order is a priced cart.
type Order struct {
	Lines []OrderLine `json:"lines"`
}

// Subtotal sums every line total.
func (o *Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range o.Lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

// ItemCount is the number of pieces in the order.
func (o *Order) ItemCount() int {
	n := 0
	for _, l := range o.Lines {
		n += l.Qty
	}
	return n
}
