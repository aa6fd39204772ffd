// Package icns reads and writes Apple icon containers holding PNG payloads.
package icns

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"sort"
)

const (
	magic      = "icns"
	headerSize = 8
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

var (
	ErrNoFrames        = errors.New("icns: no frames")
	ErrNotICNS         = errors.New("icns: not an icns file")
	ErrUnsupportedSize = errors.New("icns: no slot for frame size")
	ErrNoPNGEntry      = errors.New("icns: no PNG-encoded entry")
)

// PNG-capable slots keyed by edge length
var sizeTypes = map[int]string{
	16:   "icp4",
	32:   "icp5",
	64:   "icp6",
	128:  "ic07",
	256:  "ic08",
	512:  "ic09",
	1024: "ic10",
}

// TypeForSize returns the OSType used for a square frame of edge n
func TypeForSize(n int) (string, bool) {
	t, ok := sizeTypes[n]
	return t, ok
}

// SupportedSizes returns the storable frame sizes in ascending order
func SupportedSizes() []int {
	sizes := make([]int, 0, len(sizeTypes))
	for n := range sizeTypes {
		sizes = append(sizes, n)
	}
	sort.Ints(sizes)
	return sizes
}

// Entry is one element of an icns file
type Entry struct {
	Type   string
	Width  int // zero unless the payload is PNG
	Height int
	Data   []byte
}

// IsPNG reports whether the payload is a PNG stream
func (e Entry) IsPNG() bool {
	return bytes.HasPrefix(e.Data, pngSignature)
}

// Encode writes square frames in the given order, each under the slot for its size
func Encode(w io.Writer, frames []image.Image) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}

	body := &bytes.Buffer{}
	for i, frame := range frames {
		b := frame.Bounds()
		osType, ok := sizeTypes[b.Dx()]
		if !ok || b.Dx() != b.Dy() {
			return fmt.Errorf("%w: %dx%d", ErrUnsupportedSize, b.Dx(), b.Dy())
		}

		var payload bytes.Buffer
		if err := png.Encode(&payload, frame); err != nil {
			return fmt.Errorf("icns: encode frame %d: %w", i, err)
		}

		body.WriteString(osType)
		binary.Write(body, binary.BigEndian, uint32(headerSize+payload.Len()))
		body.Write(payload.Bytes())
	}

	header := make([]byte, headerSize)
	copy(header, magic)
	binary.BigEndian.PutUint32(header[4:], uint32(headerSize+body.Len()))

	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err := w.Write(body.Bytes())
	return err
}

// ReadEntries lists every element of an icns file in file order
func ReadEntries(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < headerSize || string(data[:4]) != magic {
		return nil, ErrNotICNS
	}

	total := int(binary.BigEndian.Uint32(data[4:]))
	if total > len(data) || total < headerSize {
		return nil, fmt.Errorf("%w: bad length %d", ErrNotICNS, total)
	}

	var entries []Entry
	for off := headerSize; off < total; {
		if off+headerSize > total {
			return nil, fmt.Errorf("%w: truncated entry header", ErrNotICNS)
		}
		length := int(binary.BigEndian.Uint32(data[off+4:]))
		if length < headerSize || off+length > total {
			return nil, fmt.Errorf("%w: bad entry length %d", ErrNotICNS, length)
		}

		e := Entry{
			Type: string(data[off : off+4]),
			Data: data[off+headerSize : off+length],
		}
		if e.IsPNG() {
			if cfg, err := png.DecodeConfig(bytes.NewReader(e.Data)); err == nil {
				e.Width, e.Height = cfg.Width, cfg.Height
			}
		}
		entries = append(entries, e)
		off += length
	}
	return entries, nil
}

// Decode returns the largest PNG-encoded image of an icns file
func Decode(r io.Reader) (image.Image, error) {
	entries, err := ReadEntries(r)
	if err != nil {
		return nil, err
	}

	best := -1
	for i, e := range entries {
		if !e.IsPNG() {
			continue
		}
		if best < 0 || e.Width*e.Height > entries[best].Width*entries[best].Height {
			best = i
		}
	}
	if best < 0 {
		return nil, ErrNoPNGEntry
	}
	return png.Decode(bytes.NewReader(entries[best].Data))
}
