package mandelpool

import (
	"bufio"
	"fmt"
	"io"
)

// WritePPM writes buf to w in binary PPM "P6" format: an ASCII header
// "P6\n<W> <H>\n255\n" followed by W*H consecutive 3-byte RGB triples (the
// R, G, B bytes of each image word; alpha is discarded). This is the
// external file-writer collaborator described in spec.md §6 — it reads
// only Buffer's public contract, never anything pool- or kernel-internal.
func WritePPM(w io.Writer, buf *Buffer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", buf.Width(), buf.Height()); err != nil {
		return fmt.Errorf("mandelpool: writing PPM header: %w", err)
	}

	pix := buf.Pix()
	triple := make([]byte, 3)
	for i := 0; i < len(pix); i += 4 {
		triple[0], triple[1], triple[2] = pix[i], pix[i+1], pix[i+2]
		if _, err := bw.Write(triple); err != nil {
			return fmt.Errorf("mandelpool: writing PPM pixel data: %w", err)
		}
	}

	return bw.Flush()
}
