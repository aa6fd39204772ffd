package ico

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestEncode_FramesInOrder(t *testing.T) {
	frames := []image.Image{
		square(16, color.NRGBA{R: 255, A: 255}),
		square(32, color.NRGBA{G: 255, A: 128}),
		square(64, color.NRGBA{B: 255, A: 0}),
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, frames))

	data := buf.Bytes()
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(data[0:]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[2:]))
	assert.Equal(t, uint16(3), binary.LittleEndian.Uint16(data[4:]))

	entries, err := ReadDirectory(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for i, size := range []int{16, 32, 64} {
		assert.Equal(t, size, entries[i].Width)
		assert.Equal(t, size, entries[i].Height)
		assert.True(t, entries[i].IsPNG)
		assert.Equal(t, 32, entries[i].BitCount)
	}
}

func TestEncode_LargeFramesUseZeroByte(t *testing.T) {
	frames := []image.Image{
		square(256, color.NRGBA{A: 255}),
		square(512, color.NRGBA{A: 255}),
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, frames))

	data := buf.Bytes()
	// width and height bytes of both directory entries
	assert.Equal(t, byte(0), data[headerSize])
	assert.Equal(t, byte(0), data[headerSize+1])
	assert.Equal(t, byte(0), data[headerSize+entrySize])

	entries, err := ReadDirectory(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 256, entries[0].Width)
	assert.Equal(t, 512, entries[1].Width)
	assert.Equal(t, 512, entries[1].Height)
}

func TestEncode_NoFrames(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Encode(&buf, nil), ErrNoFrames)
	assert.Zero(t, buf.Len())
}

func TestDecode_PrimaryFrame(t *testing.T) {
	frames := []image.Image{
		square(24, color.NRGBA{R: 10, G: 20, B: 30, A: 255}),
		square(48, color.NRGBA{R: 200, A: 255}),
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, frames))

	img, err := Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 24, img.Bounds().Dx())
	assert.Equal(t, 24, img.Bounds().Dy())

	r, g, b, a := img.At(3, 3).RGBA()
	assert.Equal(t, uint32(10), r>>8)
	assert.Equal(t, uint32(20), g>>8)
	assert.Equal(t, uint32(30), b>>8)
	assert.Equal(t, uint32(255), a>>8)
}

func TestReadDirectory_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"too short", []byte{0, 0, 1}},
		{"cursor type", []byte{0, 0, 2, 0, 1, 0}},
		{"truncated directory", []byte{0, 0, 1, 0, 2, 0, 16, 16}},
		{"png signature", []byte("\x89PNG\r\n\x1a\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadDirectory(bytes.NewReader(tt.data))
			assert.ErrorIs(t, err, ErrNotIcon)
		})
	}

	_, err := ReadDirectory(bytes.NewReader([]byte{0, 0, 1, 0, 0, 0}))
	assert.ErrorIs(t, err, ErrNoFrames)
}

func TestReadDirectory_PayloadOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, []image.Image{square(16, color.NRGBA{A: 255})}))

	data := buf.Bytes()
	binary.LittleEndian.PutUint32(data[headerSize+8:], uint32(len(data)*2))

	_, err := ReadDirectory(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrNotIcon)
}
