package mandelpool

import "math"

// Rect is a rectangle in complex-plane coordinates: origin (X, Y), width W,
// height H. It is the unit the tile dispatcher partitions and the pixel
// kernel maps to screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// Iterate runs the escape-time recurrence zₙ₊₁ = zₙ² + c from z₀ = 0, where
// c = x0 + i·y0, stopping when |zₙ|² reaches 100 or the iteration count
// reaches nMax. It returns the iteration count and the final z components.
//
// The bit-exact short-circuit (zₙ₊₁ == zₙ in both components) detects a
// fixed point of the recurrence and reports the point as inside the set by
// jumping straight to n = nMax; it is deliberately exact equality, not an
// epsilon tolerance — a true fixed point recurs forever, so only bit
// equality can safely shortcut the remaining iterations.
func Iterate(x0, y0 float64, nMax int) (n int, zx, zy float64) {
	x, y := 0.0, 0.0
	for n = 0; n < nMax; n++ {
		xTemp := x*x - y*y + x0
		yTemp := 2*x*y + y0
		if xTemp == x && yTemp == y {
			return nMax, x, y
		}
		x, y = xTemp, yTemp
		if x*x+y*y >= 100 {
			return n + 1, x, y
		}
	}
	return n, x, y
}

// DistanceEstimate runs the escape-time recurrence alongside its Jacobian
// (dx, dy), starting dz₀ = 1, with escape radius |z|² ≥ 10 and a hard cap
// of 300 iterations. It returns the estimated distance to the set boundary,
// or -1 if the cap was reached (treated as "inside the set, no usable
// estimate").
func DistanceEstimate(x0, y0 float64) float64 {
	const maxIterations = 300
	x, y := 0.0, 0.0
	dx, dy := 1.0, 0.0

	for n := 0; n < maxIterations; n++ {
		// +1 is the derivative of z²+c with respect to c; dropping it
		// collapses dz to (0,0) on the first iteration from z₀=0.
		dxTemp := 2*(x*dx-y*dy) + 1
		dyTemp := 2 * (x*dy + y*dx)
		xTemp := x*x - y*y + x0
		yTemp := 2*x*y + y0

		x, y = xTemp, yTemp
		dx, dy = dxTemp, dyTemp

		if x*x+y*y >= 10 {
			modZ := math.Sqrt(x*x + y*y)
			modDz := math.Sqrt(dx*dx + dy*dy)
			return 2 * modZ * math.Log(modZ) / modDz
		}
	}
	return -1
}

// ColorAt computes the color of a single complex-plane sample (fx, fy)
// against an iteration cap and palette: run Iterate, and if it reached the
// cap, return opaque black (the point is inside the set); otherwise form
// the smooth escape parameter and sample the palette with it.
func ColorAt(fx, fy float64, nMax int, palette *Palette) uint32 {
	n, zx, zy := Iterate(fx, fy, nMax)
	if n >= nMax {
		return ColorBlack
	}

	modZ := math.Sqrt(zx*zx + zy*zy)
	mu := math.Log2(math.Log10(modZ))
	if math.IsNaN(mu) {
		mu = 0
	}
	v := (float64(n) - mu) / 1000
	return palette.Sample(v)
}

// opaqueBlack is the sentinel ColorAt returns for points inside the set;
// Shade's early-exit optimization checks samples against it.
const opaqueBlack = ColorBlack

// Shade antialiases one output pixel centered at (fx, fy) by sampling a
// (2k+1)×(2k+1) sub-grid spanning the pixel (sub-pixel spacing
// pixelSize/(2k+1)) and blending the results. Once any sample comes back
// opaque black (inside the set), every remaining sample is treated as zero
// before blending rather than actually computed — colorPixel's early-exit,
// carried over because the inside-the-set region is exactly where
// supersampling adds the least value and costs the most.
func Shade(fx, fy, pixelSize float64, k, nMax int, palette *Palette) uint32 {
	side := 2*k + 1
	if side == 1 {
		return ColorAt(fx, fy, nMax, palette)
	}

	step := pixelSize / float64(side)
	offset := -pixelSize/2 + step/2

	// Outer loop over the x-offset, inner over the y-offset, matching
	// colorPixel's iteration order — which real samples get short-circuited
	// to zero once one sample lands inside the set depends on this order.
	samples := make([]uint32, side*side)
	hitInside := false
	idx := 0
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			if hitInside {
				samples[idx] = 0
				idx++
				continue
			}
			sx := fx + offset + float64(i)*step
			sy := fy + offset + float64(j)*step
			c := ColorAt(sx, sy, nMax, palette)
			if c == opaqueBlack {
				hitInside = true
			}
			samples[idx] = c
			idx++
		}
	}
	return Blend(samples)
}

// antialiasLevel picks the supersampling level k for one output pixel: 0
// (a single sample) far from the boundary, 1 (nine samples) near it.
// zoomEst is 2 divided by the session rectangle's width (a zoom factor
// relative to a view two units wide), so the 0.05 threshold shrinks as
// the render zooms in.
func antialiasLevel(fx, fy, zoomEst float64) int {
	d := DistanceEstimate(fx, fy)
	if d > 0.05/zoomEst {
		return 0
	}
	return 1
}

// RenderTile renders every pixel of rect into buf, given the full render
// session's location rectangle and pixel dimensions. rect must lie within
// session bounds; tiles are chosen by the dispatcher to be pairwise
// disjoint in pixel space, so concurrent calls on different tiles never
// write the same pixel.
func RenderTile(rect Rect, sess *Session, buf *Buffer) {
	// Truncating (not rounding) screen coordinates matches
	// calculateRectangle's implicit double-to-int casts; unlike the
	// palette's rounding, spec.md does not call this out as a deviation,
	// so the source's behavior is followed as-is.
	loc := sess.Location
	x0 := int((rect.X - loc.X) / loc.W * float64(sess.Width))
	y0 := int((rect.Y - loc.Y) / loc.H * float64(sess.Height))
	tw := int(rect.W / loc.W * float64(sess.Width))
	th := int(rect.H / loc.H * float64(sess.Height))

	// A tile collapsed by rounding to zero width or height still owns the
	// single row/column at its origin; guard the divisions below so that
	// row/column still renders instead of dividing by zero.
	twDiv, thDiv := tw, th
	if twDiv == 0 {
		twDiv = 1
	}
	if thDiv == 0 {
		thDiv = 1
	}

	pixelSize := rect.W / float64(twDiv)
	zoomEst := 2 / loc.W

	for y := y0; y <= y0+th; y++ {
		if y >= sess.Height {
			continue
		}
		for x := x0; x <= x0+tw; x++ {
			if x >= sess.Width {
				continue
			}
			fx := rect.X + (float64(x-x0)/float64(twDiv))*rect.W
			fy := rect.Y + (float64(y-y0)/float64(thDiv))*rect.H

			k := antialiasLevel(fx, fy, zoomEst)
			buf.SetWord(x, y, Shade(fx, fy, pixelSize, k, sess.Iterations, sess.Palette))
		}
	}
}
