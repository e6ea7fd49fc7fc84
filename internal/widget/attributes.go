package widget

import (
	"fmt"
	"time"

	"github.com/olivier-w/ringbar/internal/anim"
	"github.com/olivier-w/ringbar/internal/geometry"
	"github.com/olivier-w/ringbar/internal/progress"
	"github.com/olivier-w/ringbar/internal/render"
)

// Attributes is the widget's declarative configuration. Unset fields keep
// their defaults. Stroke widths are density-independent.
type Attributes struct {
	ProgressColor           string `yaml:"progressColor"`
	ProgressBackgroundColor string `yaml:"progressBackgroundColor"`
	DotColor                string `yaml:"dotColor"`

	ProgressStrokeWidth           *float64 `yaml:"progressStrokeWidth"`
	ProgressBackgroundStrokeWidth *float64 `yaml:"progressBackgroundStrokeWidth"`
	DotWidth                      *float64 `yaml:"dotWidth"`

	DrawDot                 *bool         `yaml:"drawDot"`
	StartAngle              *int          `yaml:"startAngle"`
	Direction               string        `yaml:"direction"`
	EnableProgressAnimation *bool         `yaml:"enableProgressAnimation"`
	FillBackground          *bool         `yaml:"fillBackground"`
	ProgressCap             string        `yaml:"progressCap"`
	Interpolator            string        `yaml:"interpolator"`
	AnimationDuration       time.Duration `yaml:"animationDuration"`
}

// resolved is Attributes turned into widget settings.
type resolved struct {
	style      Style
	startAngle int
	direction  progress.Direction
	animate    bool
	duration   time.Duration
}

// resolve applies a on top of the defaults. The background and dot follow
// the progress stroke width, and the dot follows the progress color, unless
// set explicitly.
func (a Attributes) resolve(d geometry.Density) (resolved, error) {
	r := resolved{
		style:      DefaultStyle(d),
		startAngle: progress.DefaultStartAngle,
		direction:  progress.CounterClockwise,
		animate:    true,
		duration:   anim.DefaultDuration,
	}
	s := &r.style

	if a.ProgressColor != "" {
		c, err := render.ParseColor(a.ProgressColor)
		if err != nil {
			return r, fmt.Errorf("progressColor: %w", err)
		}
		s.ProgressColor = c
		s.DotColor = c
	}
	if a.ProgressBackgroundColor != "" {
		c, err := render.ParseColor(a.ProgressBackgroundColor)
		if err != nil {
			return r, fmt.Errorf("progressBackgroundColor: %w", err)
		}
		s.BackgroundColor = c
	}
	if a.DotColor != "" {
		c, err := render.ParseColor(a.DotColor)
		if err != nil {
			return r, fmt.Errorf("dotColor: %w", err)
		}
		s.DotColor = c
	}

	if a.ProgressStrokeWidth != nil {
		s.ProgressWidth = px(d, *a.ProgressStrokeWidth)
		s.BackgroundWidth = s.ProgressWidth
		s.DotWidth = s.ProgressWidth
	}
	if a.ProgressBackgroundStrokeWidth != nil {
		s.BackgroundWidth = px(d, *a.ProgressBackgroundStrokeWidth)
	}
	if a.DotWidth != nil {
		s.DotWidth = px(d, *a.DotWidth)
	}

	if a.DrawDot != nil {
		s.DrawDot = *a.DrawDot
	}
	if a.FillBackground != nil {
		s.FillBackground = *a.FillBackground
	}
	if a.ProgressCap != "" {
		c, err := render.ParseCap(a.ProgressCap)
		if err != nil {
			return r, fmt.Errorf("progressCap: %w", err)
		}
		s.Cap = c
	}
	if a.Interpolator != "" {
		c, err := anim.ParseCurve(a.Interpolator)
		if err != nil {
			return r, fmt.Errorf("interpolator: %w", err)
		}
		s.Curve = c
	}

	if a.StartAngle != nil {
		r.startAngle = *a.StartAngle
		if r.startAngle < 0 || r.startAngle > 360 {
			r.startAngle = progress.DefaultStartAngle
		}
	}
	if a.Direction != "" {
		dir, err := progress.ParseDirection(a.Direction)
		if err != nil {
			return r, fmt.Errorf("direction: %w", err)
		}
		r.direction = dir
	}
	if a.EnableProgressAnimation != nil {
		r.animate = *a.EnableProgressAnimation
	}
	if a.AnimationDuration > 0 {
		r.duration = a.AnimationDuration
	}
	return r, nil
}

func px(d geometry.Density, dp float64) float64 {
	if dp < 0 {
		dp = 0
	}
	return float64(d.Px(dp))
}
