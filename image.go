package mandelpool

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// Compile-time interface checks.
var (
	_ image.Image = (*Buffer)(nil)
	_ draw.Image  = (*Buffer)(nil)
)

// Buffer is the RGBA pixel buffer a Session owns. It implements both
// image.Image (read-only) and draw.Image (read-write), so it interoperates
// with image/png, image/draw, and any golang.org/x/image codec a caller
// registers, without this package importing an image-format dependency
// itself.
//
// The byte layout matches spec.md §6: a linear W*H*4 buffer, row-major,
// top-left origin, R/G/B/A bytes per pixel (alpha 255 on every pixel the
// kernel has painted, 0 on a pixel never written).
type Buffer struct {
	width, height int
	pix           []uint8
}

// NewBuffer allocates a zero-filled width×height RGBA buffer.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Pix returns the raw RGBA bytes backing the buffer, row-major with a
// stride of Width()*4. Callers must not resize the slice; in-place
// mutation through it is the same as through SetWord.
func (b *Buffer) Pix() []uint8 { return b.pix }

// Words returns a copy of the buffer as 32-bit little-endian RGBA words,
// one per pixel, matching spec.md §3's "owned image buffer of exactly
// W×H 32-bit RGBA words" data model. It allocates; prefer Pix for hot
// paths.
func (b *Buffer) Words() []uint32 {
	out := make([]uint32, b.width*b.height)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(b.pix[i*4:])
	}
	return out
}

// SetWord writes a packed little-endian RGBA word (as produced by
// Palette.Sample / Blend) at pixel (x, y). Out-of-bounds coordinates are
// ignored, matching the boundary guard spec.md §4.D's tile render loop
// already applies before calling this.
func (b *Buffer) SetWord(x, y int, word uint32) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	binary.LittleEndian.PutUint32(b.pix[(y*b.width+x)*4:], word)
}

// WordAt reads the packed RGBA word at pixel (x, y). Out-of-bounds
// coordinates return 0.
func (b *Buffer) WordAt(x, y int) uint32 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return binary.LittleEndian.Uint32(b.pix[(y*b.width+x)*4:])
}

// At implements image.Image.
func (b *Buffer) At(x, y int) color.Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.RGBA{}
	}
	i := (y*b.width + x) * 4
	return color.RGBA{R: b.pix[i], G: b.pix[i+1], B: b.pix[i+2], A: b.pix[i+3]}
}

// Set implements draw.Image. It is provided for interoperability with the
// standard image ecosystem (e.g. drawing a legend over a rendered buffer);
// the kernel itself always writes through SetWord.
func (b *Buffer) Set(x, y int, c color.Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	i := (y*b.width + x) * 4
	b.pix[i], b.pix[i+1], b.pix[i+2], b.pix[i+3] = rgba.R, rgba.G, rgba.B, rgba.A
}

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model {
	return color.RGBAModel
}

// SavePNG encodes the buffer as a PNG file. It is a convenience wrapper
// around image/png for callers that do not need the PPM adapter.
func (b *Buffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, b)
}
