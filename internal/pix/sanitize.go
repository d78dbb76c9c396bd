package pix

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Limits imposed by the BR-Code layout on free-text fields.
const (
	MaxMerchantName = 25
	MaxMerchantCity = 15
	MaxDescription  = 50
	MaxTxID         = 25
)

// Sanitize folds s into the restricted charset accepted by EMV-Pix merchant
// fields: diacritics are stripped, anything outside printable ASCII is
// dropped, the result is upper-cased and cut to max characters.
func Sanitize(s string, max int) string {
	return truncate(strings.ToUpper(asciiFold(s)), max)
}

// SanitizeText is Sanitize without the upper-casing. Used for the payer
// facing description so the payload stays ASCII.
func SanitizeText(s string, max int) string {
	return truncate(asciiFold(s), max)
}

func asciiFold(s string) string {
	// A transform.Transformer is stateful, so the chain is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), runes.Remove(runes.Predicate(notPrintableASCII)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return ""
	}
	return out
}

func notPrintableASCII(r rune) bool {
	return r < 0x20 || r > 0x7E
}

// truncate cuts s to at most max bytes. It is only called on the output of
// asciiFold or on alphanumeric ids, where bytes and characters coincide.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) > max {
		return s[:max]
	}
	return s
}
