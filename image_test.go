package mandelpool

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

var (
	_ image.Image = (*Buffer)(nil)
	_ draw.Image  = (*Buffer)(nil)
)

func TestNewBuffer_ZeroFilled(t *testing.T) {
	b := NewBuffer(4, 3)
	if b.Width() != 4 || b.Height() != 3 {
		t.Fatalf("dimensions = (%d, %d), want (4, 3)", b.Width(), b.Height())
	}
	if len(b.Pix()) != 4*3*4 {
		t.Fatalf("len(Pix()) = %d, want %d", len(b.Pix()), 4*3*4)
	}
	for _, v := range b.Pix() {
		if v != 0 {
			t.Fatalf("new buffer is not zero-filled")
		}
	}
}

func TestBuffer_SetWordWordAt(t *testing.T) {
	b := NewBuffer(10, 10)
	word := uint32(0x12) | uint32(0x34)<<8 | uint32(0x56)<<16 | uint32(255)<<24

	b.SetWord(3, 4, word)

	if got := b.WordAt(3, 4); got != word {
		t.Errorf("WordAt(3,4) = %#x, want %#x", got, word)
	}
	if got := b.WordAt(0, 0); got != 0 {
		t.Errorf("WordAt(0,0) = %#x, want 0 (untouched)", got)
	}
}

func TestBuffer_SetWordOutOfBoundsIgnored(t *testing.T) {
	b := NewBuffer(2, 2)
	b.SetWord(-1, 0, 0xFFFFFFFF)
	b.SetWord(0, -1, 0xFFFFFFFF)
	b.SetWord(2, 0, 0xFFFFFFFF)
	b.SetWord(0, 2, 0xFFFFFFFF)
	for _, v := range b.Pix() {
		if v != 0 {
			t.Fatalf("out-of-bounds SetWord mutated the buffer")
		}
	}
}

func TestBuffer_AtMatchesSetWord(t *testing.T) {
	b := NewBuffer(5, 5)
	word := uint32(10) | uint32(20)<<8 | uint32(30)<<16 | uint32(255)<<24
	b.SetWord(1, 1, word)

	c, ok := b.At(1, 1).(color.RGBA)
	if !ok {
		t.Fatalf("At() returned %T, want color.RGBA", b.At(1, 1))
	}
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 255 {
		t.Errorf("At(1,1) = %+v, want {10 20 30 255}", c)
	}
}

func TestBuffer_SetViaDrawImage(t *testing.T) {
	b := NewBuffer(3, 3)
	var dst draw.Image = b
	dst.Set(2, 2, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	if got := b.WordAt(2, 2); got != 0xFF030201 {
		t.Errorf("WordAt(2,2) = %#x, want %#x", got, 0xFF030201)
	}
}

func TestBuffer_Words(t *testing.T) {
	b := NewBuffer(2, 1)
	b.SetWord(0, 0, 0x11223344)
	b.SetWord(1, 0, 0x55667788)

	words := b.Words()
	if len(words) != 2 {
		t.Fatalf("len(Words()) = %d, want 2", len(words))
	}
	if words[0] != 0x11223344 || words[1] != 0x55667788 {
		t.Errorf("Words() = %#x, want [0x11223344 0x55667788]", words)
	}
}

func TestBuffer_BoundsAndColorModel(t *testing.T) {
	b := NewBuffer(7, 9)
	if got := b.Bounds(); got != image.Rect(0, 0, 7, 9) {
		t.Errorf("Bounds() = %v, want (0,0,7,9)", got)
	}
	if b.ColorModel() != color.RGBAModel {
		t.Error("ColorModel() != color.RGBAModel")
	}
}
