package state

import (
	"encoding/json"
	"fmt"
	"log"
)

// AppKey is the preference key the application record lives under.
const AppKey = "app"

// Store is the host key-value store. fyne.Preferences satisfies it.
type Store interface {
	String(key string) string
	SetString(key, value string)
}

// record is the persisted form of AppState. Painting keeps its lines
// unexported, so encode through record rather than the Painting itself.
type record struct {
	X      uint8      `json:"x"`
	Y      uint8      `json:"y"`
	Zoom   uint8      `json:"zoom"`
	Stroke Stroke     `json:"stroke"`
	Lines  []Polyline `json:"lines"`
}

func defaultRecord() record {
	v := DefaultViewer()
	return record{X: v.X, Y: v.Y, Zoom: v.Zoom, Stroke: DefaultStroke()}
}

// Load reads the saved state from store. A missing or unreadable record
// yields the defaults and restored is false; fields absent from an older
// record keep their defaults.
func Load(store Store) (s *AppState, restored bool) {
	s = NewAppState()
	if store == nil {
		return s, false
	}
	raw := store.String(AppKey)
	if raw == "" {
		return s, false
	}

	rec := defaultRecord()
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		log.Printf("[STATE] Ignoring saved state: %v", err)
		return s, false
	}

	s.Viewer = Viewer{X: rec.X, Y: rec.Y, Zoom: rec.Zoom}
	s.Painting = NewPainting(rec.Stroke)
	s.Painting.Restore(rec.Lines)
	log.Printf("[STATE] Restored %d polylines", s.Painting.Len())
	return s, true
}

// Save writes s to store under AppKey.
func Save(store Store, s *AppState) error {
	rec := record{
		X:      s.Viewer.X,
		Y:      s.Viewer.Y,
		Zoom:   s.Viewer.Zoom,
		Stroke: s.Painting.Stroke,
		Lines:  s.Painting.Lines(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode app state: %w", err)
	}
	store.SetString(AppKey, string(data))
	return nil
}
