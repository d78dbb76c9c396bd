package pix

import (
	"strconv"
	"strings"
	"time"
)

// DefaultTxIDPrefix is the shop's txid prefix.
const DefaultTxIDPrefix = "CUBO"

// TxIDGenerator derives transaction ids from the wall clock as
// prefix + unix milliseconds, cut to 25 alphanumeric characters.
//
// Two calls within the same millisecond return the same id. That is
// acceptable for manual invoicing volumes and is not guarded against.
type TxIDGenerator struct {
	prefix string
	now    func() time.Time
}

// NewTxIDGenerator returns a generator using prefix and the system clock.
// Non-alphanumeric characters are removed from prefix.
func NewTxIDGenerator(prefix string) *TxIDGenerator {
	return &TxIDGenerator{prefix: alphanumeric(prefix), now: time.Now}
}

// WithClock replaces the clock. Intended for tests.
func (g *TxIDGenerator) WithClock(now func() time.Time) *TxIDGenerator {
	return &TxIDGenerator{prefix: g.prefix, now: now}
}

// Next returns a new txid.
func (g *TxIDGenerator) Next() string {
	return truncate(g.prefix+strconv.FormatInt(g.now().UnixMilli(), 10), MaxTxID)
}

func alphanumeric(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		}
		return -1
	}, s)
}
