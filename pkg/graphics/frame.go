package graphics

// Frame shorthand. Getters project a single coordinate out of the rect;
// With* setters return a rect with that coordinate replaced while the
// other dimension is held fixed. Setting an edge moves the rect rather than
// resizing it, so WithRight keeps the width and shifts Left.

// X returns the left edge.
func (r Rect) X() float64 { return r.Left }

// Y returns the top edge.
func (r Rect) Y() float64 { return r.Top }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) * 0.5 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) * 0.5 }

// Origin returns the top-left corner.
func (r Rect) Origin() Offset { return Offset{X: r.Left, Y: r.Top} }

// WithX returns a copy moved so its left edge is x.
func (r Rect) WithX(x float64) Rect {
	return RectFromLTWH(x, r.Top, r.Width(), r.Height())
}

// WithLeft is an alias for [Rect.WithX].
func (r Rect) WithLeft(left float64) Rect { return r.WithX(left) }

// WithY returns a copy moved so its top edge is y.
func (r Rect) WithY(y float64) Rect {
	return RectFromLTWH(r.Left, y, r.Width(), r.Height())
}

// WithTop is an alias for [Rect.WithY].
func (r Rect) WithTop(top float64) Rect { return r.WithY(top) }

// WithRight returns a copy moved so its right edge is right.
func (r Rect) WithRight(right float64) Rect {
	return r.WithX(right - r.Width())
}

// WithBottom returns a copy moved so its bottom edge is bottom.
func (r Rect) WithBottom(bottom float64) Rect {
	return r.WithY(bottom - r.Height())
}

// WithCenterX returns a copy moved so its horizontal center is cx.
func (r Rect) WithCenterX(cx float64) Rect {
	return r.WithX(cx - r.Width()*0.5)
}

// WithCenterY returns a copy moved so its vertical center is cy.
func (r Rect) WithCenterY(cy float64) Rect {
	return r.WithY(cy - r.Height()*0.5)
}

// WithWidth returns a copy with the given width and the same origin.
func (r Rect) WithWidth(width float64) Rect {
	return RectFromLTWH(r.Left, r.Top, width, r.Height())
}

// WithHeight returns a copy with the given height and the same origin.
func (r Rect) WithHeight(height float64) Rect {
	return RectFromLTWH(r.Left, r.Top, r.Width(), height)
}

// WithOrigin returns a copy moved to origin with the same size.
func (r Rect) WithOrigin(origin Offset) Rect {
	return RectFromOriginSize(origin, r.Size())
}

// WithSize returns a copy with the given size and the same origin.
func (r Rect) WithSize(size Size) Rect {
	return RectFromOriginSize(r.Origin(), size)
}

// Framer is implemented by anything positioned by a frame rect.
type Framer interface {
	Frame() Rect
	SetFrame(Rect)
}

// SetX moves v horizontally so its left edge is x.
func SetX(v Framer, x float64) { v.SetFrame(v.Frame().WithX(x)) }

// SetLeft is an alias for [SetX].
func SetLeft(v Framer, left float64) { v.SetFrame(v.Frame().WithLeft(left)) }

// SetY moves v vertically so its top edge is y.
func SetY(v Framer, y float64) { v.SetFrame(v.Frame().WithY(y)) }

// SetTop is an alias for [SetY].
func SetTop(v Framer, top float64) { v.SetFrame(v.Frame().WithTop(top)) }

// SetRight moves v so its right edge is right.
func SetRight(v Framer, right float64) { v.SetFrame(v.Frame().WithRight(right)) }

// SetBottom moves v so its bottom edge is bottom.
func SetBottom(v Framer, bottom float64) { v.SetFrame(v.Frame().WithBottom(bottom)) }

// SetCenterX moves v so its horizontal center is cx.
func SetCenterX(v Framer, cx float64) { v.SetFrame(v.Frame().WithCenterX(cx)) }

// SetCenterY moves v so its vertical center is cy.
func SetCenterY(v Framer, cy float64) { v.SetFrame(v.Frame().WithCenterY(cy)) }

// SetWidth resizes v horizontally, keeping its origin.
func SetWidth(v Framer, width float64) { v.SetFrame(v.Frame().WithWidth(width)) }

// SetHeight resizes v vertically, keeping its origin.
func SetHeight(v Framer, height float64) { v.SetFrame(v.Frame().WithHeight(height)) }

// SetOrigin moves v to origin, keeping its size.
func SetOrigin(v Framer, origin Offset) { v.SetFrame(v.Frame().WithOrigin(origin)) }

// SetSize resizes v, keeping its origin.
func SetSize(v Framer, size Size) { v.SetFrame(v.Frame().WithSize(size)) }
