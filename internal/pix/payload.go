// Package pix builds and checks static Pix "Copia e Cola" payloads in the
// EMV-QRCode (BR-Code) text format.
package pix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Top-level BR-Code tags.
const (
	TagPayloadFormat    = "00"
	TagInitiationMethod = "01"
	TagMerchantAccount  = "26"
	TagMerchantCategory = "52"
	TagCurrency         = "53"
	TagAmount           = "54"
	TagCountry          = "58"
	TagMerchantName     = "59"
	TagMerchantCity     = "60"
	TagAdditionalData   = "62"
	TagCRC              = "63"
)

// Sub-tags of the merchant account (26) and additional data (62) templates.
const (
	SubTagGUI            = "00"
	SubTagKey            = "01"
	SubTagDescription    = "02"
	SubTagReferenceLabel = "05"
)

// Fixed values of a static Pix payload.
const (
	PayloadFormatVersion = "01"
	InitiationStatic     = "12"
	GUI                  = "br.gov.bcb.pix"
	CategoryUnclassified = "0000"
	CurrencyBRL          = "986"
	CountryBR            = "BR"

	crcFieldPrefix       = TagCRC + "04"
	noReferenceLabel     = "***"
	amountFractionDigits = 2
)

// ErrMissingKey is returned when no receiver key is configured. A payload
// without a destination is never produced.
var ErrMissingKey = errors.New("pix: receiver key is not configured")

// Identity is the receiver side of every charge. It is loaded once per
// process and never changes.
type Identity struct {
	Key          string
	MerchantName string
	MerchantCity string
}

// Charge holds the per-request part of a payload.
type Charge struct {
	// Amount is optional; anything that rounds to zero or below leaves
	// the amount open.
	Amount      decimal.Decimal
	Description string
	TxID        string
}

// Encoder assembles payloads for a fixed Identity. It holds no mutable
// state and is safe for concurrent use.
type Encoder struct {
	key  string
	name string
	city string
}

// NewEncoder sanitizes the merchant name and city once and returns an
// Encoder for id. A missing key is not an error here; Encode reports it.
func NewEncoder(id Identity) *Encoder {
	return &Encoder{
		key:  strings.TrimSpace(id.Key),
		name: Sanitize(id.MerchantName, MaxMerchantName),
		city: Sanitize(id.MerchantCity, MaxMerchantCity),
	}
}

// Identity returns the sanitized identity used by the encoder.
func (e *Encoder) Identity() Identity {
	return Identity{Key: e.key, MerchantName: e.name, MerchantCity: e.city}
}

// Configured reports whether a receiver key is present.
func (e *Encoder) Configured() bool {
	return e.key != ""
}

// Encode returns the complete payload for c, CRC included.
func (e *Encoder) Encode(c Charge) (string, error) {
	if e.key == "" {
		return "", ErrMissingKey
	}

	description := SanitizeText(c.Description, e.descriptionBudget())
	txid := SanitizeText(c.TxID, MaxTxID)
	if txid == "" {
		txid = noReferenceLabel
	}

	w := &fieldWriter{}
	w.field(TagPayloadFormat, PayloadFormatVersion)
	w.field(TagInitiationMethod, InitiationStatic)
	w.template(TagMerchantAccount, func(mai *fieldWriter) {
		mai.field(SubTagGUI, GUI)
		mai.field(SubTagKey, e.key)
		if description != "" {
			mai.field(SubTagDescription, description)
		}
	})
	w.field(TagMerchantCategory, CategoryUnclassified)
	w.field(TagCurrency, CurrencyBRL)
	if amount := c.Amount.Round(amountFractionDigits); amount.IsPositive() {
		w.field(TagAmount, FormatAmount(amount))
	}
	w.field(TagCountry, CountryBR)
	w.field(TagMerchantName, e.name)
	w.field(TagMerchantCity, e.city)
	w.template(TagAdditionalData, func(add *fieldWriter) {
		add.field(SubTagReferenceLabel, txid)
	})
	w.raw(crcFieldPrefix)
	if w.err != nil {
		return "", fmt.Errorf("encoding payload: %w", w.err)
	}

	body := w.String()
	return body + CRC16(body), nil
}

// descriptionBudget is the room left for sub-tag 02 once the GUI and key
// sub-fields are in template 26, capped at MaxDescription. Zero or less
// drops the description.
func (e *Encoder) descriptionBudget() int {
	const subFieldHeader = 4
	used := subFieldHeader + len(GUI) + subFieldHeader + len(e.key) + subFieldHeader
	return min(MaxDescription, MaxFieldLength-used)
}

// FormatAmount renders an amount the way tag 54 expects it: a dot as
// decimal separator and exactly two fraction digits.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(amountFractionDigits)
}
