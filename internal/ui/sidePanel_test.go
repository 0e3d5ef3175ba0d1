package ui

import (
	"testing"

	"MandelbrotViewer/internal/config"
	"MandelbrotViewer/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSidePanelShowsPointer(t *testing.T) {
	test.NewTempApp(t)
	v := NewViewer(state.NewAppState(), config.Default(), nil)
	v.Canvas.Resize(fyne.NewSize(200, 100))

	moveTo(v.Canvas, 50, 25)
	assert.Equal(t, "Pointer: (50.0, 25.0)", v.Panel.pointerLabel.Text)
	assert.Equal(t, "Canvas: (0.500, 0.250)", v.Panel.canvasLabel.Text)
}

func TestSidePanelClearButton(t *testing.T) {
	test.NewTempApp(t)
	s := state.NewAppState()
	v := NewViewer(s, config.Default(), nil)
	v.Canvas.Resize(fyne.NewSize(200, 100))

	moveTo(v.Canvas, 10, 10)
	moveTo(v.Canvas, 20, 20)
	v.Canvas.MouseOut()
	require.NotZero(t, s.Painting.Len())

	test.Tap(v.Panel.clearButton)
	assert.Zero(t, s.Painting.Len())
	assert.Equal(t, 0, countLines(test.WidgetRenderer(v.Canvas).Objects()))
	assert.Equal(t, "Painting cleared", v.Panel.statusLabel.Text)
}

func TestSidePanelStrokeControls(t *testing.T) {
	test.NewTempApp(t)
	s := state.NewAppState()
	v := NewViewer(s, config.Default(), nil)

	v.Panel.widthSlider.OnChanged(3)
	assert.Equal(t, float32(3), s.Painting.Stroke.Width)

	sw := v.Panel.swatches[2]
	test.Tap(sw)
	assert.Equal(t, sw.Color, s.Painting.Stroke.Color)
}

func TestExportButtonsCallBack(t *testing.T) {
	test.NewTempApp(t)
	s := state.NewAppState()
	pc := NewPaintCanvas(s, 0)
	var got []exportFormat
	p := NewSidePanel(s, pc, 200, func(f exportFormat) { got = append(got, f) })
	require.NotNil(t, p.Content())

	test.Tap(findButton(t, p, "Export PDF"))
	test.Tap(findButton(t, p, "Export PNG"))
	assert.Equal(t, []exportFormat{formatPDF, formatPNG}, got)
}

func TestLoadStateSeedsStrokeFromConfig(t *testing.T) {
	a := test.NewTempApp(t)
	cfg := config.Default()
	cfg.StrokeWidth = 2.5

	s := loadState(a.Preferences(), cfg)
	assert.Equal(t, float32(2.5), s.Painting.Stroke.Width)
	assert.Equal(t, state.DefaultViewer(), s.Viewer)

	s.Viewer.Zoom = 9
	s.Painting.Stroke.Width = 7
	require.NoError(t, state.Save(a.Preferences(), s))

	restored := loadState(a.Preferences(), cfg)
	assert.Equal(t, uint8(9), restored.Viewer.Zoom)
	assert.Equal(t, float32(7), restored.Painting.Stroke.Width)
}

func TestLoadStateCorruptRecordUsesConfigStroke(t *testing.T) {
	a := test.NewTempApp(t)
	cfg := config.Default()
	cfg.StrokeWidth = 4
	a.Preferences().SetString(state.AppKey, "{broken")

	s := loadState(a.Preferences(), cfg)
	assert.Equal(t, float32(4), s.Painting.Stroke.Width)
	assert.Equal(t, state.DefaultViewer(), s.Viewer)
	assert.Zero(t, s.Painting.Len())
}

func findButton(t *testing.T, p *SidePanel, text string) *widget.Button {
	t.Helper()
	var walk func(o fyne.CanvasObject) *widget.Button
	walk = func(o fyne.CanvasObject) *widget.Button {
		switch v := o.(type) {
		case *widget.Button:
			if v.Text == text {
				return v
			}
		case *fyne.Container:
			for _, child := range v.Objects {
				if b := walk(child); b != nil {
					return b
				}
			}
		}
		return nil
	}
	b := walk(p.Content())
	require.NotNil(t, b, "button %q", text)
	return b
}
