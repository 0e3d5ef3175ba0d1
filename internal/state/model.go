package state

import (
	"image/color"

	"github.com/google/uuid"
)

// Point is a position in canvas space.
type Point struct{ X, Y float32 }

// Polyline is an ordered run of points drawn as connected segments.
type Polyline struct {
	ID     string  `json:"id"`
	Points []Point `json:"points"`
}

func newPolyline() Polyline {
	return Polyline{ID: uuid.NewString()}
}

// Stroke is the line style used for every polyline.
type Stroke struct {
	Width float32     `json:"width"`
	Color color.NRGBA `json:"color"`
}

func DefaultStroke() Stroke {
	return Stroke{Width: 1.0, Color: color.NRGBA{R: 25, G: 200, B: 100, A: 255}}
}

// Viewer holds the placeholders for the fractal viewport. Nothing reads them yet.
type Viewer struct {
	X    uint8 `json:"x"`
	Y    uint8 `json:"y"`
	Zoom uint8 `json:"zoom"`
}

func DefaultViewer() Viewer {
	return Viewer{X: 0, Y: 0, Zoom: 1}
}

// AppState is everything the application owns between frames.
type AppState struct {
	Viewer   Viewer
	Painting *Painting

	// Last pointer position in screen and canvas space. Not persisted.
	Pointer       Point
	CanvasPointer Point
}

func NewAppState() *AppState {
	return &AppState{
		Viewer:   DefaultViewer(),
		Painting: NewPainting(DefaultStroke()),
	}
}
