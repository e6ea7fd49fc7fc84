package widget

import (
	"image/color"

	"github.com/olivier-w/ringbar/internal/anim"
	"github.com/olivier-w/ringbar/internal/geometry"
	"github.com/olivier-w/ringbar/internal/render"
)

const (
	DefaultProgressColor   = "#28b51b"
	DefaultBackgroundColor = "#e0e0e0"
	DefaultStrokeWidthDp   = 8
)

// Style is how the ring looks. Widths are device pixels. A Style is a value:
// the widget swaps in a new copy on every change and never mutates one that
// has been handed out.
type Style struct {
	ProgressColor   color.Color
	BackgroundColor color.Color
	DotColor        color.Color

	ProgressWidth   float64
	BackgroundWidth float64
	DotWidth        float64

	DrawDot        bool
	FillBackground bool
	Cap            render.Cap
	Curve          anim.Curve
}

// DefaultStyle is the look of a widget built without attributes.
func DefaultStyle(d geometry.Density) Style {
	width := float64(d.Px(DefaultStrokeWidthDp))
	progress := render.MustColor(DefaultProgressColor)
	return Style{
		ProgressColor:   progress,
		BackgroundColor: render.MustColor(DefaultBackgroundColor),
		DotColor:        progress,
		ProgressWidth:   width,
		BackgroundWidth: width,
		DotWidth:        width,
		DrawDot:         true,
		Cap:             render.CapRound,
		Curve:           anim.AccelerateDecelerate,
	}
}

// MaxStroke is the thickest stroke that reaches the widget edge.
func (s Style) MaxStroke() float64 {
	return geometry.MaxStroke(s.ProgressWidth, s.BackgroundWidth, s.DotWidth, s.DrawDot)
}

func (s Style) backgroundPaint() render.Paint {
	p := render.Paint{Color: s.BackgroundColor, Width: s.BackgroundWidth}
	if s.FillBackground {
		p.Style = render.FillAndStroke
	}
	return p
}

func (s Style) progressPaint() render.Paint {
	return render.Paint{Color: s.ProgressColor, Width: s.ProgressWidth, Cap: s.Cap}
}

func (s Style) dotPaint() render.Paint {
	return render.Paint{Color: s.DotColor, Width: s.DotWidth, Cap: render.CapRound, Style: render.FillAndStroke}
}
