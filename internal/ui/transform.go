package ui

import (
	"MandelbrotViewer/internal/state"

	"fyne.io/fyne/v2"
)

// Transform maps between canvas space and the canvas widget's pixels.
// The shorter side of the widget spans 1.0 in canvas space.
type Transform struct {
	unit float32
}

func NewTransform(size fyne.Size) Transform {
	unit := size.Width
	if size.Height < unit {
		unit = size.Height
	}
	if unit < 0 {
		unit = 0
	}
	return Transform{unit: unit}
}

func (t Transform) ToScreen(p state.Point) fyne.Position {
	return fyne.NewPos(p.X*t.unit, p.Y*t.unit)
}

func (t Transform) ToCanvas(pos fyne.Position) state.Point {
	if t.unit == 0 {
		return state.Point{}
	}
	return state.Point{X: pos.X / t.unit, Y: pos.Y / t.unit}
}
