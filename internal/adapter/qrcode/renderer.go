package qrcode

import (
	"encoding/base64"
	"fmt"
	"strings"

	qr "github.com/skip2/go-qrcode"
)

const dataURLPrefix = "data:image/png;base64,"

// Renderer rasterizes text into PNG QR codes and returns them as data URLs
// the storefront can drop straight into an <img> tag.
type Renderer struct {
	size  int
	level qr.RecoveryLevel
}

// NewRenderer creates a Renderer. size is the PNG edge in pixels; a
// negative size is the number of pixels per module instead. recovery is
// one of low, medium, high, highest.
func NewRenderer(size int, recovery string) (*Renderer, error) {
	if size == 0 {
		return nil, fmt.Errorf("qr size must not be zero")
	}
	level, err := parseRecovery(recovery)
	if err != nil {
		return nil, err
	}
	return &Renderer{size: size, level: level}, nil
}

// PNG returns the encoded image.
func (r *Renderer) PNG(content string) ([]byte, error) {
	code, err := qr.New(content, r.level)
	if err != nil {
		return nil, fmt.Errorf("encoding qr: %w", err)
	}
	png, err := code.PNG(r.size)
	if err != nil {
		return nil, fmt.Errorf("rendering png: %w", err)
	}
	return png, nil
}

// DataURL implements ports.QRRenderer.
func (r *Renderer) DataURL(content string) (string, error) {
	png, err := r.PNG(content)
	if err != nil {
		return "", err
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(png), nil
}

func parseRecovery(s string) (qr.RecoveryLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l":
		return qr.Low, nil
	case "", "medium", "m":
		return qr.Medium, nil
	case "high", "q":
		return qr.High, nil
	case "highest", "h":
		return qr.Highest, nil
	default:
		return qr.Medium, fmt.Errorf("unknown qr recovery level %q", s)
	}
}
