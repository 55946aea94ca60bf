package mandelpool

import "math"

// Named colors corresponding to mandelbrot.c's module-level COLOR_BLACK,
// COLOR_WHITE, and COLOR_GREEN constants. Unlike the source, these are
// plain typed constants rather than mutable package variables.
const (
	ColorBlack = uint32(0xFF000000)
	ColorWhite = uint32(0xFFFFFFFF)
	ColorGreen = uint32(0xFF00FF00)
)

// rgb is one installed palette slot.
type rgb struct {
	r, g, b byte
}

// Palette is a cyclic RGB gradient, sampled by a scalar escape value and
// wrapped by WrapFactor full cycles per unit of input. It is grounded on
// colorpalette.c's color_sample / color_blend.
type Palette struct {
	slots      []rgb
	WrapFactor float64
}

// NewPalette allocates a palette of n uninitialized (black) slots with the
// default wrap factor of 15. n must be >= 2; NewSession validates this, so
// NewPalette itself does not return an error — it is a plain constructor,
// matched to the source's create(N) which has no failure path of its own.
func NewPalette(n int) *Palette {
	return &Palette{
		slots:      make([]rgb, n),
		WrapFactor: 15,
	}
}

// Len returns the number of slots in the palette.
func (p *Palette) Len() int { return len(p.slots) }

// Set installs slot i with the given color. i must be in [0, Len()).
func (p *Palette) Set(i int, r, g, b byte) {
	p.slots[i] = rgb{r, g, b}
}

// Sample maps a scalar escape value to a packed little-endian RGBA word,
// alpha fixed at 255. The mapping:
//
//  1. scale v by WrapFactor,
//  2. wrap into [0, 1) via a true mathematical modulo (negative v wraps
//     forward, not toward zero),
//  3. position that fraction across the N-1 gaps between slots,
//  4. linearly interpolate the two bracketing slots, rounding each channel
//     to the nearest byte.
//
// Rounding (rather than truncating) the interpolated channel is a
// deliberate point of departure from colorpalette.c, which truncates via
// an implicit double-to-unsigned-char cast.
func (p *Palette) Sample(v float64) uint32 {
	n := len(p.slots)
	wrapped := v * p.WrapFactor
	u := math.Mod(wrapped, 1.0)
	if u < 0 {
		u += 1.0
	}
	if u >= 1.0 {
		u = 0
	}

	pos := float64(n-1) * u
	if pos < 0 {
		pos = 0
	}
	if pos > float64(n-1) {
		pos = float64(n - 1)
	}

	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	f := pos - float64(lo)

	a, b := p.slots[lo], p.slots[hi]
	r := byte(math.Round(float64(a.r)*(1-f) + float64(b.r)*f))
	g := byte(math.Round(float64(a.g)*(1-f) + float64(b.g)*f))
	bl := byte(math.Round(float64(a.b)*(1-f) + float64(b.b)*f))

	return packRGBA(r, g, bl, 255)
}

// Blend computes the arithmetic mean of the R, G, and B channels across
// colors (truncated, not rounded, matching color_blend), forcing alpha to
// 255. colors must be non-empty.
func Blend(colors []uint32) uint32 {
	var rSum, gSum, bSum int
	for _, c := range colors {
		r, g, b, _ := unpackRGBA(c)
		rSum += int(r)
		gSum += int(g)
		bSum += int(b)
	}
	n := len(colors)
	return packRGBA(byte(rSum/n), byte(gSum/n), byte(bSum/n), 255)
}

// packRGBA packs four byte channels into a little-endian RGBA word:
// R | (G << 8) | (B << 16) | (A << 24).
func packRGBA(r, g, b, a byte) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}

// unpackRGBA is packRGBA's inverse.
func unpackRGBA(word uint32) (r, g, b, a byte) {
	return byte(word), byte(word >> 8), byte(word >> 16), byte(word >> 24)
}
