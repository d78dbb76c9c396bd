package pix

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedPayload is returned when a payload is not a valid TLV sequence.
	ErrMalformedPayload = errors.New("pix: malformed payload")

	// ErrChecksumMismatch is returned when the trailing CRC does not match.
	ErrChecksumMismatch = errors.New("pix: checksum mismatch")
)

// templateTags lists fields whose value is itself a TLV sequence.
var templateTags = map[string]bool{
	TagMerchantAccount: true,
	TagAdditionalData:  true,
}

// ParsedField is a decoded field; Children is set for template fields.
type ParsedField struct {
	Field
	Children []Field `json:"children,omitempty"`
}

// Parse splits s into its TLV fields without checking the CRC.
func Parse(s string) ([]Field, error) {
	var fields []Field
	for i := 0; i < len(s); {
		if len(s)-i < 4 {
			return nil, fmt.Errorf("%w: truncated header at offset %d", ErrMalformedPayload, i)
		}
		tag := s[i : i+2]
		if !validTag(tag) {
			return nil, fmt.Errorf("%w: bad tag %q at offset %d", ErrMalformedPayload, tag, i)
		}
		if !isDigit(s[i+2]) || !isDigit(s[i+3]) {
			return nil, fmt.Errorf("%w: bad length at offset %d", ErrMalformedPayload, i+2)
		}
		n := int(s[i+2]-'0')*10 + int(s[i+3]-'0')
		start := i + 4
		if start+n > len(s) {
			return nil, fmt.Errorf("%w: tag %s declares %d characters, %d left", ErrMalformedPayload, tag, n, len(s)-start)
		}
		fields = append(fields, Field{Tag: tag, Value: s[start : start+n]})
		i = start + n
	}
	return fields, nil
}

// ParseFields parses s and expands the merchant account and additional
// data templates.
func ParseFields(s string) ([]ParsedField, error) {
	top, err := Parse(s)
	if err != nil {
		return nil, err
	}
	out := make([]ParsedField, 0, len(top))
	for _, f := range top {
		pf := ParsedField{Field: f}
		if templateTags[f.Tag] {
			children, err := Parse(f.Value)
			if err != nil {
				return nil, fmt.Errorf("template %s: %w", f.Tag, err)
			}
			pf.Children = children
		}
		out = append(out, pf)
	}
	return out, nil
}

// Verify checks that s is well formed, ends with the CRC field, and that
// the CRC matches every preceding byte.
func Verify(s string) error {
	fields, err := ParseFields(s)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: empty payload", ErrMalformedPayload)
	}
	if fields[0].Tag != TagPayloadFormat {
		return fmt.Errorf("%w: payload must start with tag %s", ErrMalformedPayload, TagPayloadFormat)
	}
	last := fields[len(fields)-1]
	if last.Tag != TagCRC || last.Length() != 4 {
		return fmt.Errorf("%w: missing trailing CRC field", ErrMalformedPayload)
	}
	want := CRC16(s[:len(s)-4])
	if last.Value != want {
		return fmt.Errorf("%w: got %s, want %s", ErrChecksumMismatch, last.Value, want)
	}
	return nil
}

// Lookup returns the value of the first field with tag.
func Lookup(fields []Field, tag string) (string, bool) {
	for _, f := range fields {
		if f.Tag == tag {
			return f.Value, true
		}
	}
	return "", false
}
