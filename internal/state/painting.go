package state

// Painting is the ordered list of polylines. The last one is always the
// polyline currently being drawn.
type Painting struct {
	lines  []Polyline
	Stroke Stroke
}

func NewPainting(stroke Stroke) *Painting {
	return &Painting{Stroke: stroke}
}

// Hover records p on the in-progress polyline unless it repeats the last point.
func (p *Painting) Hover(pt Point) {
	if len(p.lines) == 0 {
		p.lines = append(p.lines, newPolyline())
	}
	current := &p.lines[len(p.lines)-1]
	if n := len(current.Points); n > 0 && current.Points[n-1] == pt {
		return
	}
	current.Points = append(current.Points, pt)
}

// Leave starts a fresh polyline once the pointer has left the canvas.
func (p *Painting) Leave() {
	if len(p.lines) == 0 {
		return
	}
	if len(p.lines[len(p.lines)-1].Points) > 0 {
		p.lines = append(p.lines, newPolyline())
	}
}

func (p *Painting) Clear() {
	p.lines = nil
}

func (p *Painting) Len() int {
	return len(p.lines)
}

// Lines returns a copy of every polyline, including the in-progress one.
func (p *Painting) Lines() []Polyline {
	out := make([]Polyline, len(p.lines))
	for i, l := range p.lines {
		out[i] = Polyline{ID: l.ID, Points: append([]Point(nil), l.Points...)}
	}
	return out
}

// Drawable returns the polylines long enough to render as segments.
func (p *Painting) Drawable() []Polyline {
	var out []Polyline
	for _, l := range p.lines {
		if len(l.Points) >= 2 {
			out = append(out, l)
		}
	}
	return out
}

// Restore replaces the polylines, e.g. after loading a saved session.
func (p *Painting) Restore(lines []Polyline) {
	p.lines = make([]Polyline, 0, len(lines))
	for _, l := range lines {
		if l.ID == "" {
			l.ID = newPolyline().ID
		}
		p.lines = append(p.lines, l)
	}
}
