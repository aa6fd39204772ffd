package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ImageFormat identifies an image container format
type ImageFormat string

const (
	FormatPNG  ImageFormat = "PNG"
	FormatICO  ImageFormat = "ICO"
	FormatJPEG ImageFormat = "JPEG"
	FormatTIFF ImageFormat = "TIFF"
	FormatICNS ImageFormat = "ICNS"
)

// Size limits in pixels
const (
	MinFrameSize       = 16
	MaxMultiFrameSize  = 1024
	MaxSingleImageSize = 2048

	// MaxRecommendedICOSize is the largest ICO frame most consumers will render
	MaxRecommendedICOSize = 256
)

// SizeBounds is an inclusive range of accepted square sizes
type SizeBounds struct {
	Min int
	Max int
}

// Contains reports whether n lies within the bounds
func (b SizeBounds) Contains(n int) bool {
	return n >= b.Min && n <= b.Max
}

// String renders the bounds as "min–max"
func (b SizeBounds) String() string {
	return fmt.Sprintf("%d–%d", b.Min, b.Max)
}

var outputExtensions = map[ImageFormat]string{
	FormatPNG:  ".png",
	FormatICO:  ".ico",
	FormatJPEG: ".jpg",
	FormatTIFF: ".tiff",
	FormatICNS: ".icns",
}

var inputExtensions = map[string]ImageFormat{
	".png":  FormatPNG,
	".ico":  FormatICO,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
	".icns": FormatICNS,
}

// AllFormats returns the selectable output formats in display order
func AllFormats() []ImageFormat {
	return []ImageFormat{FormatPNG, FormatICO, FormatJPEG, FormatTIFF, FormatICNS}
}

// InputExtensions returns the accepted input file extensions, lower case with dot
func InputExtensions() []string {
	return []string{".png", ".ico", ".jpg", ".jpeg", ".tiff", ".tif", ".icns"}
}

// ParseImageFormat parses a format name case-insensitively; "JPG" and "TIF" are accepted
func ParseImageFormat(name string) (ImageFormat, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "PNG":
		return FormatPNG, nil
	case "ICO":
		return FormatICO, nil
	case "JPEG", "JPG":
		return FormatJPEG, nil
	case "TIFF", "TIF":
		return FormatTIFF, nil
	case "ICNS":
		return FormatICNS, nil
	default:
		return "", fmt.Errorf("unknown image format %q", name)
	}
}

// FormatFromPath derives the input format from the file extension
func FormatFromPath(path string) (ImageFormat, bool) {
	f, ok := inputExtensions[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// String returns the format name
func (f ImageFormat) String() string {
	return string(f)
}

// IsValid reports whether f is one of the known formats
func (f ImageFormat) IsValid() bool {
	_, ok := outputExtensions[f]
	return ok
}

// Extension returns the output file extension for the format
func (f ImageFormat) Extension() string {
	return outputExtensions[f]
}

// IsMultiSize reports whether the format is a container holding several frames
func (f ImageFormat) IsMultiSize() bool {
	return f == FormatICO || f == FormatICNS
}

// SupportsAlpha reports whether the format keeps a transparency channel
func (f ImageFormat) SupportsAlpha() bool {
	return f != FormatJPEG
}

// SizeBounds returns the accepted size range when the format is the target
func (f ImageFormat) SizeBounds() SizeBounds {
	if f.IsMultiSize() {
		return SizeBounds{Min: MinFrameSize, Max: MaxMultiFrameSize}
	}
	return SizeBounds{Min: MinFrameSize, Max: MaxSingleImageSize}
}
