// Command mandelpool-bench sweeps render time over a matrix of
// (workers, split) configurations, plus a no-pool baseline, and writes the
// results as a CSV. It is an external collaborator: it calls mandelpool's
// public Render function and, for the no-pool baseline, the exported
// RenderTile; it never touches the internal pool package.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/otriggad/mandelpool"
)

func main() {
	var (
		width      = flag.Int("width", 512, "image width")
		height     = flag.Int("height", 512, "image height")
		iterations = flag.Int("iterations", 1000, "escape-time iteration cap")
		output     = flag.String("output", "times_pool.csv", "CSV output path")
	)
	flag.Parse()

	palette := mandelpool.NewPalette(7)
	palette.Set(0, 0, 0, 0)
	palette.Set(1, 0, 33, 109)
	palette.Set(2, 255, 192, 0)
	palette.Set(3, 255, 255, 255)
	palette.Set(4, 255, 192, 0)
	palette.Set(5, 96, 0, 16)
	palette.Set(6, 0, 0, 0)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"mode", "workers", "split", "elapsed_ms"}); err != nil {
		log.Fatalf("Failed to write CSV header: %v", err)
	}

	cfg := mandelpool.Config{
		Iterations: *iterations,
		X:          -2.5, Y: -1.25, W: 3.5, H: 2.5,
		Width:  *width,
		Height: *height,
	}

	splits := []int{1, 2, 4, 8, 16}
	workerCounts := []int{1, 2, 4, 8, 16, 32}

	for _, s := range splits {
		runCfg := cfg
		runCfg.Palette = palette
		sess, err := mandelpool.NewSession(runCfg)
		if err != nil {
			log.Fatalf("Failed to create session: %v", err)
		}
		elapsed := timeNoPool(sess, s)
		writeRow(w, "nopool", 0, s, elapsed)
	}

	for _, workers := range workerCounts {
		for _, s := range splits {
			runCfg := cfg
			runCfg.Palette = palette
			sess, err := mandelpool.NewSession(runCfg)
			if err != nil {
				log.Fatalf("Failed to create session: %v", err)
			}
			start := time.Now()
			if _, err := mandelpool.Render(sess, workers, s); err != nil {
				log.Fatalf("Render(workers=%d, split=%d) error: %v", workers, s, err)
			}
			writeRow(w, "pool", workers, s, time.Since(start))
		}
	}

	log.Printf("Benchmark results written to %s\n", *output)
}

// timeNoPool times RenderNoPool for one split factor and returns the
// elapsed wall-clock duration.
func timeNoPool(sess *mandelpool.Session, split int) time.Duration {
	start := time.Now()
	RenderNoPool(sess, split)
	return time.Since(start)
}

// RenderNoPool partitions sess's location into a split×split grid and
// renders every tile on its own goroutine directly, with no queue and no
// worker pool — a baseline used only for benchmark comparison, grounded on
// mandelbrot_nopool.c's translation unit. It is intentionally excluded
// from the core: the core always goes through a pool.
func RenderNoPool(sess *mandelpool.Session, split int) *mandelpool.Buffer {
	loc := sess.Location
	tw := loc.W / float64(split)
	th := loc.H / float64(split)

	var wg sync.WaitGroup
	for row := 0; row < split; row++ {
		for col := 0; col < split; col++ {
			rect := mandelpool.Rect{
				X: loc.X + float64(col)*tw,
				Y: loc.Y + float64(row)*th,
				W: tw,
				H: th,
			}
			wg.Add(1)
			go func(r mandelpool.Rect) {
				defer wg.Done()
				mandelpool.RenderTile(r, sess, sess.Buffer)
			}(rect)
		}
	}
	wg.Wait()
	return sess.Buffer
}

func writeRow(w *csv.Writer, mode string, workers, split int, elapsed time.Duration) {
	record := []string{
		mode,
		fmt.Sprintf("%d", workers),
		fmt.Sprintf("%d", split),
		fmt.Sprintf("%.3f", float64(elapsed.Microseconds())/1000.0),
	}
	if err := w.Write(record); err != nil {
		log.Fatalf("Failed to write CSV row: %v", err)
	}
}
