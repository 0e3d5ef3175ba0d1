package state

// Area is an axis-aligned rectangle in canvas space.
type Area struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Bounds returns the box around every point of lines, grown by padding on each side.
// ok is false when lines holds no points.
func Bounds(lines []Polyline, padding float32) (area Area, ok bool) {
	var minX, minY, maxX, maxY float32
	for _, l := range lines {
		for _, pt := range l.Points {
			if !ok {
				minX, minY, maxX, maxY = pt.X, pt.Y, pt.X, pt.Y
				ok = true
				continue
			}
			if pt.X < minX {
				minX = pt.X
			}
			if pt.X > maxX {
				maxX = pt.X
			}
			if pt.Y < minY {
				minY = pt.Y
			}
			if pt.Y > maxY {
				maxY = pt.Y
			}
		}
	}
	if !ok {
		return Area{}, false
	}
	return Area{
		X:      minX - padding,
		Y:      minY - padding,
		Width:  maxX - minX + 2*padding,
		Height: maxY - minY + 2*padding,
	}, true
}
