package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"cubo-pix-gateway/internal/core/domain"
	"cubo-pix-gateway/internal/core/ports"
	"cubo-pix-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// OrderPixDescription is the description of Pix charges created at checkout.
const OrderPixDescription = "Pedido Cubo Criativo"

const whatsAppBaseURL = "https://wa.me/"

// CheckoutServiceImpl implements ports.CheckoutService.
type CheckoutServiceImpl struct {
	catalog        ports.CatalogService
	pix            ports.PixService
	whatsAppNumber string
	log            zerolog.Logger
}

// NewCheckoutService creates a new CheckoutServiceImpl.
func NewCheckoutService(
	catalog ports.CatalogService,
	pix ports.PixService,
	whatsAppNumber string,
	log zerolog.Logger,
) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{
		catalog:        catalog,
		pix:            pix,
		whatsAppNumber: whatsAppNumber,
		log:            log,
	}
}

// Checkout prices the cart from the catalog and builds the WhatsApp
// message. Client-side prices are never trusted.
func (s *CheckoutServiceImpl) Checkout(ctx context.Context, req ports.CheckoutRequest) (*ports.CheckoutResult, error) {
	for _, l := range req.Lines {
		if l.Qty < 1 {
			return nil, apperror.Validation(fmt.Sprintf("quantity for %s must be at least 1", l.ProductID))
		}
	}

	lines := domain.MergeCartLines(req.Lines)
	if len(lines) == 0 {
		return nil, apperror.ErrEmptyCart()
	}

	order := domain.Order{Lines: make([]domain.OrderLine, 0, len(lines))}
	for _, l := range lines {
		p, err := s.catalog.Get(ctx, l.ProductID)
		if err != nil {
			return nil, err
		}

		label := l.Variant
		if label == "" {
			label = p.DefaultVariant
		}
		v, ok := p.Variant(label)
		if !ok {
			return nil, apperror.ErrUnknownVariant(p.ID, label)
		}

		order.Lines = append(order.Lines, domain.OrderLine{
			ProductID:   p.ID,
			ProductName: p.Name,
			Variant:     v.Label,
			Qty:         l.Qty,
			UnitPrice:   v.Price,
		})
	}

	result := &ports.CheckoutResult{
		Order:    order,
		Subtotal: order.Subtotal(),
	}

	if req.Pix {
		charge, err := s.pix.CreateCharge(ctx, ports.PixChargeRequest{
			Amount:      &result.Subtotal,
			Description: OrderPixDescription,
		})
		if err != nil {
			return nil, err
		}
		result.Pix = charge
	}

	result.Message = orderMessage(result)
	result.WhatsAppURL = whatsAppLink(s.whatsAppNumber, result.Message)

	s.log.Info().
		Int("lines", len(order.Lines)).
		Int("items", order.ItemCount()).
		Str("subtotal", result.Subtotal.StringFixed(2)).
		Bool("pix", result.Pix != nil).
		Msg("checkout built")

	return result, nil
}

func orderMessage(r *ports.CheckoutResult) string {
	var b strings.Builder
	b.WriteString("Olá! Quero finalizar meu pedido:\n")
	for _, l := range r.Order.Lines {
		b.WriteString("• ")
		b.WriteString(l.ProductName)
		if l.Variant != "" {
			fmt.Fprintf(&b, " (%s)", l.Variant)
		}
		fmt.Fprintf(&b, " x%d — %s\n", l.Qty, formatBRL(l.Total()))
	}
	fmt.Fprintf(&b, "Total: %s\n\n", formatBRL(r.Subtotal))
	if r.Pix != nil {
		fmt.Fprintf(&b, "Pagamento: Pix (txid %s).", r.Pix.TxID)
	} else {
		b.WriteString("Pagamento: combinar via WhatsApp.")
	}
	return b.String()
}

// whatsAppLink builds a click-to-chat link. Spaces are sent as %20, which
// the WhatsApp clients decode reliably, instead of "+".
func whatsAppLink(number, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return whatsAppBaseURL + number + "?text=" + text
}

// formatBRL renders d as Brazilian currency: "R$ 1.234,56".
func formatBRL(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	intPart, frac := fixed[:len(fixed)-3], fixed[len(fixed)-2:]

	var grouped strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(c)
	}
	return sign + "R$ " + grouped.String() + "," + frac
}
