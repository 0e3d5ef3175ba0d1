package ui

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"MandelbrotViewer/internal/config"
	"MandelbrotViewer/internal/export"
	"MandelbrotViewer/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

const (
	fallbackPNGWidth  = 800
	fallbackPNGHeight = 600
)

// exportPainting writes the drawable polylines to out in the given format.
// size is the on-screen canvas size, used for PNG dimensions.
func exportPainting(s *state.AppState, format exportFormat, out io.Writer, size fyne.Size) error {
	lines := s.Painting.Drawable()
	switch format {
	case formatPNG:
		w, h := int(size.Width), int(size.Height)
		if w <= 0 || h <= 0 {
			w, h = fallbackPNGWidth, fallbackPNGHeight
		}
		return export.PNG(out, lines, s.Painting.Stroke, w, h)
	default:
		return export.PDF(out, lines, s.Painting.Stroke)
	}
}

func defaultExportName(format exportFormat, now time.Time) string {
	return fmt.Sprintf("painting-%s.%s", now.Format("20060102-150405"), format)
}

// showExportDialog asks for a destination and exports the painting there.
func showExportDialog(win fyne.Window, cfg *config.Config, s *state.AppState, pc *PaintCanvas, panel *SidePanel, format exportFormat) {
	if len(s.Painting.Drawable()) == 0 {
		panel.SetStatus("Nothing to export")
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			log.Printf("[EXPORT] Dialog error: %v", err)
			panel.SetStatus("Export failed")
			return
		}
		if writer == nil {
			return // cancelled
		}
		defer func() {
			if err := writer.Close(); err != nil {
				log.Printf("[EXPORT] Error closing writer: %v", err)
			}
		}()
		dest := writer.URI().Name()

		if err := exportPainting(s, format, writer, pc.Size()); err != nil {
			log.Printf("[EXPORT] %s export to %s failed: %v", format, writer.URI(), err)
			if errors.Is(err, export.ErrNothingToExport) {
				panel.SetStatus("Nothing to export")
			} else {
				panel.SetStatus("Export failed")
			}
			return
		}
		panel.SetStatus("Exported " + dest)
	}, win)

	name := defaultExportName(format, time.Now())
	d.SetFileName(name)
	if cfg.ExportDir != "" {
		dir := storage.NewFileURI(cfg.ExportPath(""))
		if loc, err := storage.ListerForURI(dir); err == nil {
			d.SetLocation(loc)
		} else {
			log.Printf("[EXPORT] Export dir unavailable: %v", err)
		}
	}
	d.Show()
}
