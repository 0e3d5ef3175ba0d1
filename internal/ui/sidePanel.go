package ui

import (
	"fmt"
	"image/color"

	"MandelbrotViewer/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type exportFormat int

const (
	formatPDF exportFormat = iota
	formatPNG
)

func (f exportFormat) String() string {
	if f == formatPNG {
		return "png"
	}
	return "pdf"
}

// --- Color swatch ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

var swatchColors = []color.NRGBA{
	{R: 25, G: 200, B: 100, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
	{R: 255, A: 255},
	{R: 60, G: 120, B: 255, A: 255},
	{R: 255, G: 200, A: 255},
}

// SidePanel is the left panel: pointer readout, stroke controls, clear and export.
type SidePanel struct {
	state  *state.AppState
	canvas *PaintCanvas

	pointerLabel *widget.Label
	canvasLabel  *widget.Label
	statusLabel  *widget.Label
	clearButton  *widget.Button
	widthSlider  *widget.Slider
	swatches     []*colorSwatch

	content fyne.CanvasObject
}

func NewSidePanel(s *state.AppState, pc *PaintCanvas, width float32, onExport func(exportFormat)) *SidePanel {
	p := &SidePanel{
		state:        s,
		canvas:       pc,
		pointerLabel: widget.NewLabel(""),
		canvasLabel:  widget.NewLabel(""),
		statusLabel:  widget.NewLabel("Ready"),
	}
	p.ShowPointer(fyne.NewPos(s.Pointer.X, s.Pointer.Y), s.CanvasPointer)
	pc.OnPointer = p.ShowPointer

	p.clearButton = widget.NewButtonWithIcon("Clear Painting", theme.DeleteIcon(), p.Clear)

	p.widthSlider = widget.NewSlider(0.5, 10)
	p.widthSlider.Step = 0.5
	p.widthSlider.SetValue(float64(s.Painting.Stroke.Width))
	p.widthSlider.OnChanged = func(v float64) {
		p.state.Painting.Stroke.Width = float32(v)
		p.canvas.Refresh()
	}

	onColor := func(c color.NRGBA) {
		p.state.Painting.Stroke.Color = c
		p.canvas.Refresh()
	}
	colorBox := container.NewHBox()
	for _, c := range swatchColors {
		sw := newColorSwatch(c, onColor)
		p.swatches = append(p.swatches, sw)
		colorBox.Add(sw)
	}

	exportPDF := widget.NewButtonWithIcon("Export PDF", theme.DocumentSaveIcon(), func() {
		if onExport != nil {
			onExport(formatPDF)
		}
	})
	exportPNG := widget.NewButtonWithIcon("Export PNG", theme.FileImageIcon(), func() {
		if onExport != nil {
			onExport(formatPNG)
		}
	})

	heading := widget.NewLabelWithStyle("Mandelbrot Viewer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	p.statusLabel.Wrapping = fyne.TextWrapWord

	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(width, 0))

	p.content = container.NewStack(spacer, container.NewVBox(
		heading,
		p.pointerLabel,
		p.canvasLabel,
		p.clearButton,
		widget.NewSeparator(),
		widget.NewLabel("Stroke:"),
		p.widthSlider,
		colorBox,
		widget.NewSeparator(),
		exportPDF,
		exportPNG,
		layout.NewSpacer(),
		p.statusLabel,
	))
	return p
}

func (p *SidePanel) Content() fyne.CanvasObject {
	return p.content
}

func (p *SidePanel) ShowPointer(screen fyne.Position, at state.Point) {
	p.pointerLabel.SetText(fmt.Sprintf("Pointer: (%.1f, %.1f)", screen.X, screen.Y))
	p.canvasLabel.SetText(fmt.Sprintf("Canvas: (%.3f, %.3f)", at.X, at.Y))
}

// Clear empties the painting and redraws the canvas.
func (p *SidePanel) Clear() {
	p.state.Painting.Clear()
	p.canvas.Refresh()
	p.SetStatus("Painting cleared")
}

func (p *SidePanel) SetStatus(text string) {
	p.statusLabel.SetText(text)
}
