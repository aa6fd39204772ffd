package convert

import "errors"

var (
	// ErrMissingInput is returned when no input file was chosen
	ErrMissingInput = errors.New("no input file selected")

	// ErrInvalidSizeSpec is returned when a multi-size target has no usable size
	ErrInvalidSizeSpec = errors.New("no valid sizes")

	// ErrUnsupportedFormat is returned for an unknown input extension or target format
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrConversionFailed wraps decode, encode and filesystem failures
	ErrConversionFailed = errors.New("conversion failed")
)

// IsValidationError reports whether err was raised before any file I/O
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingInput) ||
		errors.Is(err, ErrInvalidSizeSpec) ||
		errors.Is(err, ErrUnsupportedFormat)
}
