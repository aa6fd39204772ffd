package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImageFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ImageFormat
	}{
		{"png", FormatPNG},
		{"ICO", FormatICO},
		{"jpeg", FormatJPEG},
		{"jpg", FormatJPEG},
		{" Tiff ", FormatTIFF},
		{"tif", FormatTIFF},
		{"icns", FormatICNS},
	}

	for _, tt := range tests {
		got, err := ParseImageFormat(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, got)
	}

	_, err := ParseImageFormat("webp")
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected ImageFormat
		ok       bool
	}{
		{"/a/b/logo.png", FormatPNG, true},
		{"/a/b/LOGO.PNG", FormatPNG, true},
		{"icon.ico", FormatICO, true},
		{"photo.JPEG", FormatJPEG, true},
		{"scan.tif", FormatTIFF, true},
		{"app.icns", FormatICNS, true},
		{"anim.gif", "", false},
		{"noext", "", false},
	}

	for _, tt := range tests {
		got, ok := FormatFromPath(tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
		assert.Equal(t, tt.expected, got, tt.path)
	}
}

func TestImageFormat_Properties(t *testing.T) {
	assert.Equal(t, ".png", FormatPNG.Extension())
	assert.Equal(t, ".ico", FormatICO.Extension())
	assert.Equal(t, ".jpg", FormatJPEG.Extension())
	assert.Equal(t, ".tiff", FormatTIFF.Extension())
	assert.Equal(t, ".icns", FormatICNS.Extension())

	assert.True(t, FormatICO.IsMultiSize())
	assert.True(t, FormatICNS.IsMultiSize())
	assert.False(t, FormatPNG.IsMultiSize())

	assert.False(t, FormatJPEG.SupportsAlpha())
	assert.True(t, FormatTIFF.SupportsAlpha())

	assert.Equal(t, SizeBounds{Min: 16, Max: 1024}, FormatICO.SizeBounds())
	assert.Equal(t, SizeBounds{Min: 16, Max: 2048}, FormatJPEG.SizeBounds())

	assert.False(t, ImageFormat("GIF").IsValid())
	for _, f := range AllFormats() {
		assert.True(t, f.IsValid(), f)
	}
}
