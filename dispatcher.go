package mandelpool

import (
	"fmt"
	"sync/atomic"

	"github.com/otriggad/mandelpool/internal/pool"
)

// tileJob is the argument carried through the pool queue for one tile: a
// sub-rectangle of the session's location plus a back-reference to the
// session whose buffer it writes into.
type tileJob struct {
	rect Rect
	sess *Session
}

// divideRect splits rect into an s×s grid of equal-area sub-rectangles, in
// row-major order. It is grounded on mandelbrot.c's divideRectangle.
func divideRect(rect Rect, s int) []Rect {
	out := make([]Rect, 0, s*s)
	tw := rect.W / float64(s)
	th := rect.H / float64(s)
	for row := 0; row < s; row++ {
		for col := 0; col < s; col++ {
			out = append(out, Rect{
				X: rect.X + float64(col)*tw,
				Y: rect.Y + float64(row)*th,
				W: tw,
				H: th,
			})
		}
	}
	return out
}

// Render partitions sess's location into an s×s grid, seeds a pool of
// nWorkers goroutines with one tile job per cell in row-major order, and
// blocks until every tile has been rendered into sess's buffer. It returns
// the same buffer sess already owns.
func Render(sess *Session, nWorkers, s int) (*Buffer, error) {
	if nWorkers < 1 || s < 1 {
		return nil, fmt.Errorf("mandelpool: nWorkers and s must both be >= 1, got %d and %d: %w", nWorkers, s, ErrConfigInvalid)
	}

	p, err := pool.New[tileJob](nWorkers)
	if err != nil {
		return nil, fmt.Errorf("mandelpool: creating render pool: %w", mapPoolErr(err))
	}

	Logger().Debug("render starting", "workers", nWorkers, "split", s, "width", sess.Width, "height", sess.Height)

	for _, rect := range divideRect(sess.Location, s) {
		p.Enqueue(func(j tileJob) {
			RenderTile(j.rect, j.sess, j.sess.Buffer)
		}, tileJob{rect: rect, sess: sess})
	}

	p.Destroy()
	Logger().Debug("render complete", "workers", nWorkers, "split", s)

	return sess.Buffer, nil
}

// mapPoolErr translates internal/pool's sentinel errors to mandelpool's
// own, so callers never need to import the internal package to recognize
// them.
func mapPoolErr(err error) error {
	if err == pool.ErrInvalidSize {
		return ErrConfigInvalid
	}
	return ErrResourceUnavailable
}

// Handle is a non-blocking render completion token: the render runs on an
// internal driver goroutine, and the image buffer may be read while it is
// in flight. Pixels are written with plain, unsynchronized 4-byte stores,
// so such a read is not ordered with the workers' writes and may observe
// pixels that are not yet rendered. Join blocks until the driver
// goroutine — and the pool it owns — has fully torn down.
type Handle struct {
	buf           *Buffer
	width, height int
	done          chan struct{}
	err           error
	joined        atomic.Bool
}

// RenderAsync starts Render on a driver goroutine and returns immediately
// with a Handle borrowing sess's buffer. Callers that need the finished
// image must call Join before reading it.
func RenderAsync(sess *Session, nWorkers, s int) (*Handle, error) {
	if nWorkers < 1 || s < 1 {
		return nil, fmt.Errorf("mandelpool: nWorkers and s must both be >= 1, got %d and %d: %w", nWorkers, s, ErrConfigInvalid)
	}

	h := &Handle{
		buf:    sess.Buffer,
		width:  sess.Width,
		height: sess.Height,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(h.done)
		if _, err := Render(sess, nWorkers, s); err != nil {
			h.err = err
		}
	}()

	return h, nil
}

// Join blocks until the render started by RenderAsync has finished, and
// returns any error the render encountered. Join may be called more than
// once; calls after the first return immediately with the same error, and
// log a warning, since a single handle is expected to be joined exactly
// once by its owner.
func (h *Handle) Join() error {
	if !h.joined.CompareAndSwap(false, true) {
		Logger().Warn("handle joined more than once")
	}
	<-h.done
	return h.err
}

// Image returns the handle's image buffer and its dimensions. It may be
// called before Join, in which case the buffer may still be partially
// rendered.
func (h *Handle) Image() (*Buffer, int, int) {
	return h.buf, h.width, h.height
}
