package export

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"MandelbrotViewer/internal/state"

	"github.com/fogleman/gg"
)

// PNG rasterizes the drawable polylines into a width×height image written to w.
func PNG(w io.Writer, lines []state.Polyline, stroke state.Stroke, width, height int) error {
	f, err := newFit(lines, float64(width), float64(height), 16)
	if err != nil {
		return err
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(stroke.Color)
	dc.SetLineWidth(float64(stroke.Width))
	dc.SetLineCapRound()
	dc.SetLineJoinRound()

	for _, l := range lines {
		if len(l.Points) < 2 {
			continue
		}
		x, y := f.apply(l.Points[0])
		dc.MoveTo(x, y)
		for _, pt := range l.Points[1:] {
			x, y = f.apply(pt)
			dc.LineTo(x, y)
		}
		dc.Stroke()
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	log.Printf("[EXPORT] Rendered %d polylines as png", len(lines))
	return nil
}
