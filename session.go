package mandelpool

import "fmt"

// Config describes a render: the complex-plane rectangle to sample, the
// output pixel dimensions, an iteration cap, and the palette used to color
// escape values. It is grounded on mandelData / mandel_createMandelData's
// constructor arguments.
type Config struct {
	// Iterations is the escape-time cap passed to Iterate. Must be >= 1.
	Iterations int

	// X, Y, W, H describe the complex-plane rectangle sampled by the
	// render: origin (X, Y), width W, height H. Must have W > 0 and H > 0.
	X, Y, W, H float64

	// Width, Height are the output image dimensions in pixels. Must both
	// be > 0.
	Width, Height int

	// Palette is borrowed, not owned: the session only reads from it
	// during a render. Must have at least two slots.
	Palette *Palette
}

// Session is an immutable render configuration plus the image buffer it
// owns. Sessions are read-only once constructed; the buffer is the only
// part mutated after construction, and only by tile jobs writing disjoint
// pixel ranges.
type Session struct {
	Iterations    int
	Location      Rect
	Width, Height int
	Palette       *Palette
	Buffer        *Buffer
}

// NewSession validates cfg and allocates a zero-filled Width×Height image
// buffer. It returns ErrConfigInvalid (wrapped with the failing field) if
// any dimension, the iteration cap, or the palette size is out of range.
func NewSession(cfg Config) (*Session, error) {
	switch {
	case cfg.Width <= 0 || cfg.Height <= 0:
		return nil, fmt.Errorf("mandelpool: image dimensions must be positive, got %dx%d: %w", cfg.Width, cfg.Height, ErrConfigInvalid)
	case cfg.W <= 0 || cfg.H <= 0:
		return nil, fmt.Errorf("mandelpool: rectangle dimensions must be positive, got %gx%g: %w", cfg.W, cfg.H, ErrConfigInvalid)
	case cfg.Iterations < 1:
		return nil, fmt.Errorf("mandelpool: iterations must be >= 1, got %d: %w", cfg.Iterations, ErrConfigInvalid)
	case cfg.Palette == nil || cfg.Palette.Len() < 2:
		return nil, fmt.Errorf("mandelpool: palette must have at least 2 slots: %w", ErrConfigInvalid)
	}

	return &Session{
		Iterations: cfg.Iterations,
		Location:   Rect{X: cfg.X, Y: cfg.Y, W: cfg.W, H: cfg.H},
		Width:      cfg.Width,
		Height:     cfg.Height,
		Palette:    cfg.Palette,
		Buffer:     NewBuffer(cfg.Width, cfg.Height),
	}, nil
}
