package entity

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (px, py) is inside r, edges included.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// Hit is the click test: the whole bounding box counts, transparent art
// margins included.
func Hit(px, py float64, r Rect) bool {
	return r.Contains(px, py)
}
