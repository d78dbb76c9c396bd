package pix

import (
	"errors"
	"fmt"
	"strings"
)

// MaxFieldLength is the largest value a two-digit length prefix can describe.
const MaxFieldLength = 99

var (
	// ErrFieldOverflow is returned when a field value does not fit the
	// two-digit length prefix.
	ErrFieldOverflow = errors.New("pix: field value exceeds 99 characters")

	// ErrInvalidTag is returned for tags that are not exactly two digits.
	ErrInvalidTag = errors.New("pix: tag must be two decimal digits")
)

// Field is one tag-length-value element of a BR-Code payload. Template
// fields (26, 62) carry their sub-fields encoded in Value.
type Field struct {
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

// Length returns the value length as written in the payload.
func (f Field) Length() int {
	return len(f.Value)
}

// String renders the field as tag + zero-padded length + value. It does
// not validate; use EncodeField when the value may be too long.
func (f Field) String() string {
	return f.Tag + fmt.Sprintf("%02d", len(f.Value)) + f.Value
}

// EncodeField builds a single TLV field.
func EncodeField(tag, value string) (string, error) {
	if !validTag(tag) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTag, tag)
	}
	if len(value) > MaxFieldLength {
		return "", fmt.Errorf("%w: tag %s has %d characters", ErrFieldOverflow, tag, len(value))
	}
	return Field{Tag: tag, Value: value}.String(), nil
}

func validTag(tag string) bool {
	return len(tag) == 2 && isDigit(tag[0]) && isDigit(tag[1])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// fieldWriter accumulates encoded fields and keeps the first error, so the
// assembler can write the whole layout and check once.
type fieldWriter struct {
	b   strings.Builder
	err error
}

func (w *fieldWriter) field(tag, value string) {
	if w.err != nil {
		return
	}
	f, err := EncodeField(tag, value)
	if err != nil {
		w.err = err
		return
	}
	w.b.WriteString(f)
}

// template writes a field whose value is built by fn.
func (w *fieldWriter) template(tag string, fn func(*fieldWriter)) {
	if w.err != nil {
		return
	}
	inner := &fieldWriter{}
	fn(inner)
	if inner.err != nil {
		w.err = inner.err
		return
	}
	w.field(tag, inner.b.String())
}

func (w *fieldWriter) raw(s string) {
	if w.err == nil {
		w.b.WriteString(s)
	}
}

func (w *fieldWriter) String() string {
	return w.b.String()
}
