package ui

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"MandelbrotViewer/internal/export"
	"MandelbrotViewer/internal/state"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultExportName(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)
	assert.Equal(t, "painting-20240309-140506.pdf", defaultExportName(formatPDF, now))
	assert.Equal(t, "painting-20240309-140506.png", defaultExportName(formatPNG, now))
}

func TestExportPaintingStreamsToWriter(t *testing.T) {
	s := state.NewAppState()

	var empty bytes.Buffer
	err := exportPainting(s, formatPDF, &empty, fyne.NewSize(100, 100))
	assert.ErrorIs(t, err, export.ErrNothingToExport)
	assert.Zero(t, empty.Len())

	s.Painting.Hover(state.Point{X: 0.1, Y: 0.1})
	s.Painting.Hover(state.Point{X: 0.4, Y: 0.3})

	var pdf bytes.Buffer
	require.NoError(t, exportPainting(s, formatPDF, &pdf, fyne.NewSize(0, 0)))
	assert.True(t, bytes.HasPrefix(pdf.Bytes(), []byte("%PDF")))

	var img bytes.Buffer
	require.NoError(t, exportPainting(s, formatPNG, &img, fyne.NewSize(0, 0)))
	decoded, err := png.Decode(&img)
	require.NoError(t, err)
	assert.Equal(t, fallbackPNGWidth, decoded.Bounds().Dx())
	assert.Equal(t, fallbackPNGHeight, decoded.Bounds().Dy())
}
