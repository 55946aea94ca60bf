// Package mandelpool renders the Mandelbrot set into an RGBA image buffer
// using a fixed-size worker pool to parallelize per-tile work.
//
// # Overview
//
// A [Session] describes a rectangular region of the complex plane, an
// output image size, an iteration cap, and a [Palette]. [Render] and
// [RenderAsync] partition the session's region into an s×s grid of tiles
// and hand them to a worker pool (internal/pool) that drains them
// concurrently, writing disjoint pixel ranges into the session's [Buffer].
//
// # Quick start
//
//	p := mandelpool.NewPalette(7)
//	p.Set(0, 0, 0, 0)
//	p.Set(1, 0, 33, 109)
//	// ...
//	sess, err := mandelpool.NewSession(mandelpool.Config{
//		Iterations: 1000,
//		X: -2.5, Y: -1.25, W: 3.5, H: 2.5,
//		Width: 800, Height: 600,
//		Palette: p,
//	})
//	img, err := mandelpool.Render(sess, 8, 8)
//
// # Architecture
//
//   - internal/pool: the generic FIFO queue + fixed-size worker pool
//     (concurrency engine), independent of the rendering domain.
//   - palette.go, kernel.go: the numeric contract — escape-time iteration,
//     distance-estimate antialiasing selection, and color lookup.
//   - session.go, dispatcher.go, image.go: scheduling and the result model —
//     region partitioning, job submission, and the non-blocking completion
//     handle.
//   - ppm.go: an external adapter over the image buffer contract.
//
// # Non-goals
//
// Dynamic pool resizing, job priorities, per-job cancellation, work
// stealing, result persistence, bit-for-bit reproducibility across
// platforms with different floating-point rounding, and GPU acceleration
// are all out of scope.
package mandelpool
