package mandelpool

import (
	"bytes"
	"testing"
)

func singlePixelPalette() *Palette {
	p := NewPalette(7)
	p.Set(0, 0, 0, 0)
	p.Set(1, 0, 0, 139)
	p.Set(2, 65, 105, 225)
	p.Set(3, 255, 255, 0)
	p.Set(4, 65, 105, 225)
	p.Set(5, 0, 0, 139)
	p.Set(6, 0, 0, 0)
	return p
}

func TestRender_SinglePixelInsideSet(t *testing.T) {
	sess, err := NewSession(Config{
		Iterations: 1000,
		X: -2, Y: -1.5, W: 3, H: 3,
		Width: 1, Height: 1,
		Palette: singlePixelPalette(),
	})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	buf, err := Render(sess, 1, 1)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	r, g, b, a := rgbaChannels(buf.WordAt(0, 0))
	if a != 255 || r != 0 || g != 0 || b != 0 {
		t.Errorf("single pixel = (%d,%d,%d,%d), want opaque black (origin is inside the set)", r, g, b, a)
	}
}

func TestRender_DeterministicAcrossTiling(t *testing.T) {
	newSession := func() *Session {
		sess, err := NewSession(Config{
			Iterations: 256,
			X: -2.5, Y: -1.25, W: 3.5, H: 2.5,
			Width: 64, Height: 64,
			Palette: singlePixelPalette(),
		})
		if err != nil {
			t.Fatalf("NewSession() error = %v", err)
		}
		return sess
	}

	a, err := Render(newSession(), 1, 1)
	if err != nil {
		t.Fatalf("Render(workers=1, s=1) error = %v", err)
	}
	b, err := Render(newSession(), 8, 8)
	if err != nil {
		t.Fatalf("Render(workers=8, s=8) error = %v", err)
	}

	if !bytes.Equal(a.Pix(), b.Pix()) {
		t.Error("Render() with different worker/split counts produced different buffers")
	}
}

func TestRender_InvalidArgs(t *testing.T) {
	sess, err := NewSession(Config{
		Iterations: 10,
		X: -2, Y: -1.5, W: 3, H: 3,
		Width: 4, Height: 4,
		Palette: singlePixelPalette(),
	})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	if _, err := Render(sess, 0, 1); err == nil {
		t.Error("Render(workers=0) returned nil error, want ErrConfigInvalid")
	}
	if _, err := Render(sess, 1, 0); err == nil {
		t.Error("Render(s=0) returned nil error, want ErrConfigInvalid")
	}
}

func TestRenderAsync_CompletionMatchesSync(t *testing.T) {
	cfgFor := func() Config {
		return Config{
			Iterations: 200,
			X: -2, Y: -1.5, W: 3, H: 3,
			Width: 128, Height: 128,
			Palette: singlePixelPalette(),
		}
	}

	asyncSess, err := NewSession(cfgFor())
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	h, err := RenderAsync(asyncSess, 4, 4)
	if err != nil {
		t.Fatalf("RenderAsync() error = %v", err)
	}

	// Reading before Join is permitted, even if it observes a partial
	// render.
	_, w, ht := h.Image()
	if w != 128 || ht != 128 {
		t.Errorf("Image() dims = (%d,%d), want (128,128)", w, ht)
	}

	if err := h.Join(); err != nil {
		t.Fatalf("Join() error = %v", err)
	}

	gotBuf, _, _ := h.Image()

	syncSess, err := NewSession(cfgFor())
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	wantBuf, err := Render(syncSess, 4, 4)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !bytes.Equal(gotBuf.Pix(), wantBuf.Pix()) {
		t.Error("async render buffer does not match a synchronous render of the same config")
	}
}

func TestHandle_JoinTwiceIsSafe(t *testing.T) {
	sess, err := NewSession(Config{
		Iterations: 50,
		X: -2, Y: -1.5, W: 3, H: 3,
		Width: 16, Height: 16,
		Palette: singlePixelPalette(),
	})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	h, err := RenderAsync(sess, 2, 2)
	if err != nil {
		t.Fatalf("RenderAsync() error = %v", err)
	}

	if err := h.Join(); err != nil {
		t.Fatalf("first Join() error = %v", err)
	}
	if err := h.Join(); err != nil {
		t.Fatalf("second Join() error = %v", err)
	}
}
