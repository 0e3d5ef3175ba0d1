package ui

import (
	"image/color"

	"MandelbrotViewer/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const defaultMarkerSize = 6

var (
	backgroundColor = color.NRGBA{R: 27, G: 27, B: 27, A: 255}
	decorColor      = color.NRGBA{R: 90, G: 90, B: 90, A: 255}
	markerColor     = color.White
)

// PaintCanvas records hover motion into the painting and draws it.
type PaintCanvas struct {
	widget.BaseWidget
	state      *state.AppState
	markerSize float32
	hovering   bool
	pointer    fyne.Position

	// OnPointer is called with the screen and canvas position on every hover.
	OnPointer func(screen fyne.Position, at state.Point)
}

var _ fyne.Widget = (*PaintCanvas)(nil)
var _ desktop.Hoverable = (*PaintCanvas)(nil)

func NewPaintCanvas(s *state.AppState, markerSize float32) *PaintCanvas {
	if markerSize <= 0 {
		markerSize = defaultMarkerSize
	}
	c := &PaintCanvas{state: s, markerSize: markerSize}
	c.ExtendBaseWidget(c)
	return c
}

func (c *PaintCanvas) Transform() Transform {
	return NewTransform(c.Size())
}

func (c *PaintCanvas) Hovering() bool {
	return c.hovering
}

func (c *PaintCanvas) MouseIn(e *desktop.MouseEvent) {
	c.hover(e.Position)
}

func (c *PaintCanvas) MouseMoved(e *desktop.MouseEvent) {
	c.hover(e.Position)
}

func (c *PaintCanvas) MouseOut() {
	c.hovering = false
	c.state.Painting.Leave()
	c.Refresh()
}

func (c *PaintCanvas) hover(pos fyne.Position) {
	at := c.Transform().ToCanvas(pos)
	c.hovering = true
	c.pointer = pos
	c.state.Pointer = state.Point{X: pos.X, Y: pos.Y}
	c.state.CanvasPointer = at
	c.state.Painting.Hover(at)
	if c.OnPointer != nil {
		c.OnPointer(pos, at)
	}
	c.Refresh()
}

func (c *PaintCanvas) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (c *PaintCanvas) CreateRenderer() fyne.WidgetRenderer {
	r := &paintCanvasRenderer{
		canvas:     c,
		background: canvas.NewRectangle(backgroundColor),
		marker:     canvas.NewRectangle(markerColor),
	}
	r.decor = []*canvas.Rectangle{
		newDecorRect(fyne.NewPos(20, 20), fyne.NewSize(60, 40)),
		newDecorRect(fyne.NewPos(100, 20), fyne.NewSize(40, 60)),
	}
	r.marker.Resize(fyne.NewSize(c.markerSize, c.markerSize))
	r.rebuild()
	return r
}

func newDecorRect(pos fyne.Position, size fyne.Size) *canvas.Rectangle {
	rect := canvas.NewRectangle(color.Transparent)
	rect.StrokeColor = decorColor
	rect.StrokeWidth = 1
	rect.Move(pos)
	rect.Resize(size)
	return rect
}

type paintCanvasRenderer struct {
	canvas     *PaintCanvas
	background *canvas.Rectangle
	decor      []*canvas.Rectangle
	marker     *canvas.Rectangle
	segments   []fyne.CanvasObject
}

func (r *paintCanvasRenderer) Objects() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.background}
	for _, d := range r.decor {
		objects = append(objects, d)
	}
	objects = append(objects, r.segments...)
	if r.canvas.hovering {
		objects = append(objects, r.marker)
	}
	return objects
}

func (r *paintCanvasRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.canvas)
}

// rebuild recreates the segments from the painting on every refresh.
func (r *paintCanvasRenderer) rebuild() {
	tr := r.canvas.Transform()
	stroke := r.canvas.state.Painting.Stroke

	r.segments = make([]fyne.CanvasObject, 0, len(r.segments))
	for _, l := range r.canvas.state.Painting.Drawable() {
		for i := 1; i < len(l.Points); i++ {
			seg := canvas.NewLine(stroke.Color)
			seg.StrokeWidth = stroke.Width
			seg.Position1 = tr.ToScreen(l.Points[i-1])
			seg.Position2 = tr.ToScreen(l.Points[i])
			r.segments = append(r.segments, seg)
		}
	}

	half := r.canvas.markerSize / 2
	r.marker.Move(fyne.NewPos(r.canvas.pointer.X-half, r.canvas.pointer.Y-half))
}

func (r *paintCanvasRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.rebuild()
}

func (r *paintCanvasRenderer) MinSize() fyne.Size {
	return r.canvas.MinSize()
}

func (r *paintCanvasRenderer) Destroy() {}
