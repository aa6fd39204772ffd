package convert

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/tiff"

	"github.com/ytget/picshift/internal/codec/icns"
	"github.com/ytget/picshift/internal/codec/ico"
	"github.com/ytget/picshift/internal/model"
)

// Encoder settings
const (
	JPEGQuality     = 95
	TempFilePattern = ".picshift-*"
	OutputFileMode  = 0o644
)

// sizePlan is the outcome of size parsing for one request
type sizePlan struct {
	sizes      model.SizeSet // empty means the source's native size
	advisories []string
}

// planSizes parses the size list and applies the target format's rules
func planSizes(format model.ImageFormat, spec string) (sizePlan, error) {
	parsed := model.ParseSizeSet(spec, format.SizeBounds())

	switch format {
	case model.FormatICO:
		if parsed.IsEmpty() {
			return sizePlan{}, fmt.Errorf("%w: %q, expected %s", ErrInvalidSizeSpec, spec, format.SizeBounds())
		}
		plan := sizePlan{sizes: parsed}
		if large := parsed.Above(model.MaxRecommendedICOSize); !large.IsEmpty() {
			plan.advisories = append(plan.advisories, fmt.Sprintf(
				"ICO frames above %dpx (%s) are not shown by many consumers, for example Windows Explorer",
				model.MaxRecommendedICOSize, large))
		}
		return plan, nil

	case model.FormatICNS:
		kept, dropped := parsed.Filter(func(n int) bool {
			_, ok := icns.TypeForSize(n)
			return ok
		})
		if kept.IsEmpty() {
			return sizePlan{}, fmt.Errorf("%w: %q, ICNS accepts %s", ErrInvalidSizeSpec, spec, model.SizeSet(icns.SupportedSizes()))
		}
		plan := sizePlan{sizes: kept}
		if !dropped.IsEmpty() {
			plan.advisories = append(plan.advisories, fmt.Sprintf(
				"ICNS has no slot for %s; those sizes were skipped", dropped))
		}
		return plan, nil

	default:
		smallest, ok := parsed.Smallest()
		if !ok {
			return sizePlan{sizes: model.SizeSet{}}, nil
		}
		plan := sizePlan{sizes: model.SizeSet{smallest}}
		if len(parsed) > 1 {
			plan.advisories = append(plan.advisories, fmt.Sprintf(
				"%s holds a single image; only %dpx was written", format, smallest))
		}
		return plan, nil
	}
}

// resolveOutputDir returns the target directory and whether it is the input's own
func resolveOutputDir(req model.ConversionRequest) (string, bool) {
	if strings.TrimSpace(req.OutputDir) == "" {
		return filepath.Dir(req.InputPath), true
	}
	return req.OutputDir, false
}

// outputPath builds dir/<input stem><target extension>
func outputPath(dir, inputPath string, format model.ImageFormat) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+format.Extension())
}

// decodeSource loads the input into a non-premultiplied RGBA buffer
func decodeSource(path string, format model.ImageFormat) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var img image.Image
	switch format {
	case model.FormatICO:
		img, err = ico.Decode(f)
	case model.FormatICNS:
		img, err = icns.Decode(f)
	default:
		img, err = imaging.Decode(f, imaging.AutoOrientation(true))
	}
	if err != nil {
		return nil, err
	}
	return imaging.Clone(img), nil
}

// renderFrames resamples src to each size, or returns it unchanged for an empty set
func renderFrames(ctx context.Context, src *image.NRGBA, sizes model.SizeSet) ([]*image.NRGBA, error) {
	if sizes.IsEmpty() {
		return []*image.NRGBA{src}, nil
	}

	frames := make([]*image.NRGBA, 0, len(sizes))
	for _, n := range sizes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		frames = append(frames, imaging.Resize(src, n, n, imaging.Lanczos))
	}
	return frames, nil
}

// encodeFrames writes frames in the target format
func encodeFrames(w io.Writer, format model.ImageFormat, frames []*image.NRGBA) error {
	switch format {
	case model.FormatICO:
		return ico.Encode(w, asImages(frames))
	case model.FormatICNS:
		return icns.Encode(w, asImages(frames))
	case model.FormatJPEG:
		return imaging.Encode(w, flattenOnWhite(frames[0]), imaging.JPEG, imaging.JPEGQuality(JPEGQuality))
	case model.FormatPNG:
		return imaging.Encode(w, frames[0], imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	case model.FormatTIFF:
		return tiff.Encode(w, frames[0], &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// flattenOnWhite composites img over an opaque white background using its alpha
func flattenOnWhite(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}

func asImages(frames []*image.NRGBA) []image.Image {
	out := make([]image.Image, len(frames))
	for i, f := range frames {
		out[i] = f
	}
	return out
}

// writeFileAtomic writes through a temp file in the target directory and renames it
// into place; the temp file never outlives the call
func writeFileAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), TempFilePattern+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(OutputFileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}
