package qrcode

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	qr "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = "00020101021226330014br.gov.bcb.pix0111119999999995204000053039865404" +
	"1.005802BR5913CUBO CRIATIVO6009BARREIRAS62110507CUBO12363047378"

func TestRenderer_DataURL(t *testing.T) {
	r, err := NewRenderer(256, "medium")
	require.NoError(t, err)

	url, err := r.DataURL(payload)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, dataURLPrefix))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestRenderer_ModuleScale(t *testing.T) {
	r, err := NewRenderer(-6, "medium")
	require.NoError(t, err)

	raw, err := r.PNG(payload)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Zero(t, img.Bounds().Dx()%6, "edge is a whole number of 6px modules")
}

func TestRenderer_Deterministic(t *testing.T) {
	r, err := NewRenderer(128, "low")
	require.NoError(t, err)

	a, err := r.DataURL(payload)
	require.NoError(t, err)
	b, err := r.DataURL(payload)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRenderer_TooMuchData(t *testing.T) {
	r, err := NewRenderer(256, "highest")
	require.NoError(t, err)

	_, err = r.DataURL(strings.Repeat("9", 8000))
	assert.Error(t, err)
}

func TestNewRenderer_Validation(t *testing.T) {
	_, err := NewRenderer(0, "medium")
	assert.Error(t, err)

	_, err = NewRenderer(256, "ultra")
	assert.Error(t, err)
}

func TestParseRecovery(t *testing.T) {
	tests := []struct {
		in   string
		want qr.RecoveryLevel
	}{
		{"low", qr.Low},
		{"", qr.Medium},
		{"MEDIUM", qr.Medium},
		{"high", qr.High},
		{" highest ", qr.Highest},
		{"h", qr.Highest},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseRecovery(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
