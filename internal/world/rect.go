package world

// Rect is an axis-aligned box in screen pixels. X and Y are the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rect from a top-left corner and integer dimensions.
func NewRect(x, y float64, w, h int) Rect {
	return Rect{X: x, Y: y, W: float64(w), H: float64(h)}
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Intersects reports whether the two boxes overlap. Boxes that only share an
// edge do not intersect, and neither does a box with no area.
func (r Rect) Intersects(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether (x, y) lies inside the box (right and bottom edges excluded).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w x h rect centered on (cx, cy).
func Centered(cx, cy float64, w, h int) Rect {
	return NewRect(cx-float64(w)/2, cy-float64(h)/2, w, h)
}
