package export

import (
	"fmt"
	"io"
	"log"

	"MandelbrotViewer/internal/state"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageW  = 210.0
	pageH  = 297.0
	margin = 10.0
)

// PDF draws the drawable polylines on a single A4 page and writes it to w.
func PDF(w io.Writer, lines []state.Polyline, stroke state.Stroke) error {
	f, err := newFit(lines, pageW, pageH, margin)
	if err != nil {
		return err
	}

	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()
	p.SetDrawColor(int(stroke.Color.R), int(stroke.Color.G), int(stroke.Color.B))
	p.SetLineWidth(float64(stroke.Width) * 0.35)
	p.SetLineCapStyle("round")

	for _, l := range lines {
		for i := 1; i < len(l.Points); i++ {
			x1, y1 := f.apply(l.Points[i-1])
			x2, y2 := f.apply(l.Points[i])
			p.Line(x1, y1, x2, y2)
		}
	}
	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	log.Printf("[EXPORT] Wrote %d polylines as pdf", len(lines))
	return nil
}
