package chart

// Rect is an axis-aligned bounding box. The same type is used for physical
// and data coordinates; which space a Rect lives in is determined by where it
// came from.
type Rect struct {
	Left, Right float64
	Bottom, Top float64
}

// Width returns the horizontal span of the rect.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of the rect.
func (r Rect) Height() float64 { return r.Top - r.Bottom }

// CenterX returns the horizontal center point of the rect.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical center point of the rect.
func (r Rect) CenterY() float64 { return (r.Bottom + r.Top) / 2 }

// Translate returns the rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
		Top:    r.Top + dy,
	}
}

// AlongSpan returns the rect's extent along the axis direction of a side:
// the horizontal span for bottom/top, the vertical span for left/right.
func (r Rect) AlongSpan(s Side) (lo, hi float64) {
	if s.Horizontal() {
		return r.Left, r.Right
	}
	return r.Bottom, r.Top
}

// AcrossSpan returns the rect's extent perpendicular to the axis direction
// of a side.
func (r Rect) AcrossSpan(s Side) (lo, hi float64) {
	if s.Horizontal() {
		return r.Bottom, r.Top
	}
	return r.Left, r.Right
}

// AlongCenter returns the midpoint of AlongSpan.
func (r Rect) AlongCenter(s Side) float64 {
	lo, hi := r.AlongSpan(s)
	return (lo + hi) / 2
}

// AcrossCenter returns the midpoint of AcrossSpan.
func (r Rect) AcrossCenter(s Side) float64 {
	lo, hi := r.AcrossSpan(s)
	return (lo + hi) / 2
}
