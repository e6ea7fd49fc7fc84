package widget

import (
	"github.com/olivier-w/ringbar/internal/geometry"
	"github.com/olivier-w/ringbar/internal/render"
)

// Measure returns the side of the square the widget wants under the given
// constraints.
func (w *Widget) Measure(width, height geometry.Constraint, pad geometry.Padding) int {
	base := w.density.Px(geometry.BaseSizeDp)
	return geometry.Measure(width, height, int(w.style.MaxStroke()), base, pad)
}

// OnSizeChanged recomputes the ring bounds for the size the host assigned.
func (w *Widget) OnSizeChanged() {
	w.updateBounds()
	w.host.RequestRedraw()
}

// Bounds is the cached ring rectangle and radius.
func (w *Widget) Bounds() geometry.Bounds { return w.bounds }

func (w *Widget) updateBounds() {
	width, height := w.host.CurrentSize()
	w.bounds = geometry.ComputeBounds(float64(width), float64(height), w.style.MaxStroke())
	w.log.Debug("bounds", "width", width, "height", height, "radius", w.bounds.Radius)
}

// Frame captures what Draw would render now.
func (w *Widget) Frame() render.Frame {
	return render.Frame{
		Bounds:     w.bounds,
		StartAngle: float64(w.model.StartAngle()),
		Sweep:      w.sweep,
		Background: w.style.backgroundPaint(),
		Progress:   w.style.progressPaint(),
		Dot:        w.style.dotPaint(),
		DrawDot:    w.style.DrawDot,
	}
}

// Draw renders the current frame onto s.
func (w *Widget) Draw(s render.Surface) error {
	return render.Render(s, w.Frame())
}
