// Package ico reads and writes Windows icon containers.
//
// Frames are written PNG-compressed. Reading accepts both PNG and BMP payloads.
package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	goico "github.com/sergeymakinen/go-ico"
)

const (
	headerSize = 6
	entrySize  = 16

	typeIcon = 1

	// MaxDirectorySize is the largest edge the directory byte can tag; 0 stands for it
	MaxDirectorySize = 256
	maxFrameSize     = 65535
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

var (
	ErrNoFrames      = errors.New("ico: no frames")
	ErrNotIcon       = errors.New("ico: not an icon file")
	ErrFrameTooLarge = errors.New("ico: frame too large")
)

// Entry is one directory record with its payload
type Entry struct {
	Width    int // true pixel width
	Height   int // true pixel height
	BitCount int
	IsPNG    bool
	Data     []byte
}

// Encode writes frames into one icon container in the given order
func Encode(w io.Writer, frames []image.Image) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}

	payloads := make([][]byte, len(frames))
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	for i, frame := range frames {
		b := frame.Bounds()
		if b.Dx() > maxFrameSize || b.Dy() > maxFrameSize || b.Empty() {
			return fmt.Errorf("%w: %dx%d", ErrFrameTooLarge, b.Dx(), b.Dy())
		}
		var buf bytes.Buffer
		if err := enc.Encode(&buf, frame); err != nil {
			return fmt.Errorf("ico: encode frame %d: %w", i, err)
		}
		payloads[i] = buf.Bytes()
	}

	header := &bytes.Buffer{}
	binary.Write(header, binary.LittleEndian, uint16(0))
	binary.Write(header, binary.LittleEndian, uint16(typeIcon))
	binary.Write(header, binary.LittleEndian, uint16(len(frames)))

	offset := headerSize + entrySize*len(frames)
	for i, frame := range frames {
		b := frame.Bounds()
		header.WriteByte(directoryByte(b.Dx()))
		header.WriteByte(directoryByte(b.Dy()))
		header.WriteByte(0) // palette colors
		header.WriteByte(0) // reserved
		binary.Write(header, binary.LittleEndian, uint16(1))  // planes
		binary.Write(header, binary.LittleEndian, uint16(32)) // bits per pixel
		binary.Write(header, binary.LittleEndian, uint32(len(payloads[i])))
		binary.Write(header, binary.LittleEndian, uint32(offset))
		offset += len(payloads[i])
	}

	if _, err := w.Write(header.Bytes()); err != nil {
		return err
	}
	for _, p := range payloads {
		if _, err := w.Write(p); err != nil {
			return err
		}
	}
	return nil
}

func directoryByte(n int) byte {
	if n >= MaxDirectorySize {
		return 0
	}
	return byte(n)
}

// ReadDirectory returns every frame record of an icon container in file order
func ReadDirectory(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

func parse(data []byte) ([]Entry, error) {
	if len(data) < headerSize {
		return nil, ErrNotIcon
	}
	if binary.LittleEndian.Uint16(data[0:]) != 0 || binary.LittleEndian.Uint16(data[2:]) != typeIcon {
		return nil, ErrNotIcon
	}
	count := int(binary.LittleEndian.Uint16(data[4:]))
	if count == 0 {
		return nil, ErrNoFrames
	}
	if len(data) < headerSize+entrySize*count {
		return nil, fmt.Errorf("%w: truncated directory", ErrNotIcon)
	}

	entries := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		rec := data[headerSize+entrySize*i:]
		size := int(binary.LittleEndian.Uint32(rec[8:]))
		offset := int(binary.LittleEndian.Uint32(rec[12:]))
		if offset < 0 || size < 0 || offset+size > len(data) || offset+size < offset {
			return nil, fmt.Errorf("%w: frame %d out of range", ErrNotIcon, i)
		}

		e := Entry{
			Width:    undirectory(rec[0]),
			Height:   undirectory(rec[1]),
			BitCount: int(binary.LittleEndian.Uint16(rec[6:])),
			Data:     data[offset : offset+size],
		}
		if bytes.HasPrefix(e.Data, pngSignature) {
			e.IsPNG = true
			if cfg, err := png.DecodeConfig(bytes.NewReader(e.Data)); err == nil {
				e.Width, e.Height = cfg.Width, cfg.Height
			}
		} else if len(e.Data) >= 12 {
			// BITMAPINFOHEADER height covers the XOR and AND masks
			w := int(int32(binary.LittleEndian.Uint32(e.Data[4:])))
			h := int(int32(binary.LittleEndian.Uint32(e.Data[8:]))) / 2
			if w > 0 && h > 0 {
				e.Width, e.Height = w, h
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func undirectory(b byte) int {
	if b == 0 {
		return MaxDirectorySize
	}
	return int(b)
}

// Decode returns the primary (first) frame of an icon container
func Decode(r io.Reader) (image.Image, error) {
	entries, err := ReadDirectory(r)
	if err != nil {
		return nil, err
	}
	return decodeEntry(entries[0])
}

func decodeEntry(e Entry) (image.Image, error) {
	if e.IsPNG {
		return png.Decode(bytes.NewReader(e.Data))
	}
	// BMP payloads carry an AND mask and a doubled height; let go-ico handle them
	// by wrapping the single frame in its own container.
	single, err := wrapSingle(e)
	if err != nil {
		return nil, err
	}
	img, err := goico.Decode(bytes.NewReader(single))
	if err != nil {
		return nil, fmt.Errorf("ico: decode bitmap frame: %w", err)
	}
	return img, nil
}

func wrapSingle(e Entry) ([]byte, error) {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, uint16(0))
	binary.Write(buf, binary.LittleEndian, uint16(typeIcon))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	buf.WriteByte(directoryByte(e.Width))
	buf.WriteByte(directoryByte(e.Height))
	buf.WriteByte(0)
	buf.WriteByte(0)
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint16(e.BitCount))
	binary.Write(buf, binary.LittleEndian, uint32(len(e.Data)))
	binary.Write(buf, binary.LittleEndian, uint32(headerSize+entrySize))
	if _, err := buf.Write(e.Data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
