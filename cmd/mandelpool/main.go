// Command mandelpool renders the Mandelbrot set to a PPM, PNG, or BMP file.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/otriggad/mandelpool"
)

func main() {
	var (
		width      = flag.Int("width", 800, "image width")
		height     = flag.Int("height", 600, "image height")
		x          = flag.Float64("x", -2.5, "real-axis origin of the sampled rectangle")
		y          = flag.Float64("y", -1.25, "imaginary-axis origin of the sampled rectangle")
		w          = flag.Float64("w", 3.5, "rectangle width in the complex plane")
		h          = flag.Float64("h", 2.5, "rectangle height in the complex plane")
		iterations = flag.Int("iterations", 1000, "escape-time iteration cap")
		workers    = flag.Int("workers", 8, "worker pool size")
		split      = flag.Int("split", 8, "tile grid split factor (split*split tiles)")
		output     = flag.String("output", "mandelbrot.png", "output file (.ppm, .png, or .bmp)")
		verbose    = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		mandelpool.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	palette := defaultPalette()

	sess, err := mandelpool.NewSession(mandelpool.Config{
		Iterations: *iterations,
		X:          *x,
		Y:          *y,
		W:          *w,
		H:          *h,
		Width:      *width,
		Height:     *height,
		Palette:    palette,
	})
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	buf, err := mandelpool.Render(sess, *workers, *split)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if err := save(buf, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Rendered to %s (%dx%d)\n", *output, *width, *height)
}

// defaultPalette is a seven-stop black-blue-yellow gradient, matching the
// kind of palette the original CLI's sample renders used.
func defaultPalette() *mandelpool.Palette {
	p := mandelpool.NewPalette(7)
	p.Set(0, 0, 0, 0)
	p.Set(1, 0, 7, 100)
	p.Set(2, 32, 107, 203)
	p.Set(3, 237, 255, 255)
	p.Set(4, 255, 170, 0)
	p.Set(5, 0, 2, 0)
	p.Set(6, 0, 0, 0)
	return p
}

// save writes buf to path, choosing the encoder by file extension.
func save(buf *mandelpool.Buffer, path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return mandelpool.WritePPM(f, buf)
	case ".bmp":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return bmp.Encode(f, buf)
	default:
		return buf.SavePNG(path)
	}
}

