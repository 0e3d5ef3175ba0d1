// Package export writes the painting to PDF and PNG files.
package export

import (
	"errors"

	"MandelbrotViewer/internal/state"
)

var ErrNothingToExport = errors.New("nothing to export")

// fit maps canvas-space points into a w×h target, keeping the aspect ratio.
type fit struct {
	area  state.Area
	scale float64
	offX  float64
	offY  float64
}

func newFit(lines []state.Polyline, w, h, margin float64) (fit, error) {
	area, ok := state.Bounds(lines, 0.02)
	if !ok || len(lines) == 0 {
		return fit{}, ErrNothingToExport
	}
	availW, availH := w-2*margin, h-2*margin
	sx := availW / float64(max(area.Width, 1e-6))
	sy := availH / float64(max(area.Height, 1e-6))
	scale := min(sx, sy)
	return fit{
		area:  area,
		scale: scale,
		offX:  margin + (availW-float64(area.Width)*scale)/2,
		offY:  margin + (availH-float64(area.Height)*scale)/2,
	}, nil
}

func (f fit) apply(pt state.Point) (float64, float64) {
	return f.offX + float64(pt.X-f.area.X)*f.scale,
		f.offY + float64(pt.Y-f.area.Y)*f.scale
}
