// Package geometry resolves the drawing area of the ring from the widget size
// and its stroke widths.
package geometry

// Rect is an axis-aligned rectangle in device pixels.
type Rect struct {
	Left, Top, Right, Bottom float64
}

func (r Rect) Width() float64   { return r.Right - r.Left }
func (r Rect) Height() float64  { return r.Bottom - r.Top }
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Bounds is the rectangle the ring is drawn in and the ring's radius.
type Bounds struct {
	Rect   Rect
	Radius float64
}

// ComputeBounds insets a width x height area by half the thickest stroke on
// every side so no stroke is clipped at the widget edge. Width and height are
// expected to be equal; the radius is taken from the inset width.
func ComputeBounds(width, height, maxStroke float64) Bounds {
	half := maxStroke / 2
	r := Rect{
		Left:   half,
		Top:    half,
		Right:  width - half,
		Bottom: height - half,
	}
	return Bounds{Rect: r, Radius: r.Width() / 2}
}

// MaxStroke returns the thickest of the configured strokes. The dot width only
// counts when the dot is drawn.
func MaxStroke(progress, background, dot float64, dotEnabled bool) float64 {
	m := max(progress, background)
	if dotEnabled {
		m = max(m, dot)
	}
	return m
}
