package entity

// Rect is an axis-aligned rectangle in screen pixels.
// X, Y is the top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// Left returns the x coordinate of the left edge
func (r Rect) Left() int { return r.X }

// Right returns the x coordinate just past the right edge
func (r Rect) Right() int { return r.X + r.W }

// Top returns the y coordinate of the top edge
func (r Rect) Top() int { return r.Y }

// Bottom returns the y coordinate just past the bottom edge
func (r Rect) Bottom() int { return r.Y + r.H }

// CenterX returns the horizontal center (integer division)
func (r Rect) CenterX() int { return r.X + r.W/2 }

// CenterY returns the vertical center (integer division)
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// SetCenterX moves the rect so its horizontal center is cx
func (r *Rect) SetCenterX(cx int) { r.X = cx - r.W/2 }

// SetCenterY moves the rect so its vertical center is cy
func (r *Rect) SetCenterY(cy int) { r.Y = cy - r.H/2 }

// Intersects reports whether a and b overlap.
// Rects that only share an edge do not overlap.
func Intersects(a, b Rect) bool {
	return a.Left() < b.Right() &&
		a.Right() > b.Left() &&
		a.Top() < b.Bottom() &&
		a.Bottom() > b.Top()
}
