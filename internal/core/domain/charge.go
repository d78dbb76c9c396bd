package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PixCharge is a generated static Pix "copy and paste" charge.
type PixCharge struct {
	TxID        string           `json:"txid"`
	Payload     string           `json:"payload"`
	QRDataURL   string           `json:"qrDataUrl"`
	Amount      *decimal.Decimal `json:"amount,omitempty"` // nil: payer types the amount
	Description string           `json:"description,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}
