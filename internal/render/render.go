// Package render issues the draw calls for one frame of the ring: the
// background circle, the progress arc and the dot at its leading edge.
package render

import (
	"fmt"
	"math"

	"github.com/olivier-w/ringbar/internal/geometry"
)

// Surface is the drawing API a frame is rendered onto. Angles are in degrees,
// 0 at three o'clock, growing clockwise on screen. A negative sweep draws
// counter-clockwise from start.
type Surface interface {
	DrawArc(rect geometry.Rect, start, sweep float64, p Paint) error
	DrawPoint(x, y float64, p Paint) error
}

// Frame is everything needed to draw the ring once.
type Frame struct {
	Bounds     geometry.Bounds
	StartAngle float64
	Sweep      float64
	Background Paint
	Progress   Paint
	Dot        Paint
	DrawDot    bool
}

// Render draws f onto s.
func Render(s Surface, f Frame) error {
	r := f.Bounds.Rect
	if err := s.DrawArc(r, 0, 360, f.Background); err != nil {
		return fmt.Errorf("draw background: %w", err)
	}
	if err := s.DrawArc(r, f.StartAngle, f.Sweep, f.Progress); err != nil {
		return fmt.Errorf("draw progress: %w", err)
	}
	if !f.DrawDot {
		return nil
	}
	x, y := DotPosition(f.Bounds, f.StartAngle, f.Sweep)
	if err := s.DrawPoint(x, y, f.Dot); err != nil {
		return fmt.Errorf("draw dot: %w", err)
	}
	return nil
}

// DotPosition is the point on the ring at the arc's leading edge. The angle
// is turned half a circle and subtracted from the centre, which lands on the
// same point as adding it at the unturned angle.
func DotPosition(b geometry.Bounds, start, sweep float64) (x, y float64) {
	rad := (start + sweep + 180) * math.Pi / 180
	x = b.Rect.CenterX() - b.Radius*math.Cos(rad)
	y = b.Rect.CenterY() - b.Radius*math.Sin(rad)
	return x, y
}

// Scaled returns f with every length multiplied by k, for drawing the same
// frame on a larger surface.
func (f Frame) Scaled(k float64) Frame {
	r := f.Bounds.Rect
	f.Bounds = geometry.Bounds{
		Rect: geometry.Rect{
			Left:   r.Left * k,
			Top:    r.Top * k,
			Right:  r.Right * k,
			Bottom: r.Bottom * k,
		},
		Radius: f.Bounds.Radius * k,
	}
	f.Background.Width *= k
	f.Progress.Width *= k
	f.Dot.Width *= k
	return f
}
