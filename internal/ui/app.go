package ui

import (
	"log"

	"MandelbrotViewer/internal/config"
	"MandelbrotViewer/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

// Viewer wires the painting canvas and side panel to one application state.
type Viewer struct {
	State  *state.AppState
	Canvas *PaintCanvas
	Panel  *SidePanel
}

// NewViewer builds the window content. win may be nil when no export dialogs are needed.
func NewViewer(s *state.AppState, cfg *config.Config, win fyne.Window) *Viewer {
	v := &Viewer{State: s}
	v.Canvas = NewPaintCanvas(s, cfg.MarkerSize)
	v.Panel = NewSidePanel(s, v.Canvas, cfg.PanelWidth, func(f exportFormat) {
		if win == nil {
			return
		}
		showExportDialog(win, cfg, s, v.Canvas, v.Panel, f)
	})
	return v
}

func (v *Viewer) Content() fyne.CanvasObject {
	return container.NewBorder(nil, nil, v.Panel.Content(), nil, v.Canvas)
}

// loadState restores the previous session. When nothing could be restored
// the fresh session takes its stroke width from cfg.
func loadState(store state.Store, cfg *config.Config) *state.AppState {
	s, restored := state.Load(store)
	if !restored {
		s.Painting.Stroke.Width = cfg.StrokeWidth
	}
	return s
}

func RunApp(cfg *config.Config) {
	myApp := app.NewWithID(cfg.AppID)
	prefs := myApp.Preferences()
	s := loadState(prefs, cfg)

	myWindow := myApp.NewWindow(cfg.Title)
	myWindow.Resize(fyne.NewSize(cfg.Width, cfg.Height))

	viewer := NewViewer(s, cfg, myWindow)

	myApp.Lifecycle().SetOnStopped(func() {
		if err := state.Save(prefs, s); err != nil {
			log.Printf("[STATE] Failed to save state: %v", err)
			return
		}
		log.Println("[STATE] Saved state")
	})

	myWindow.SetContent(viewer.Content())
	myWindow.ShowAndRun()
}
