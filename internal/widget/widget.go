// Package widget is the circular progress indicator: it owns the progress
// state, the rendered sweep angle, the cached ring bounds and the animation,
// and reaches its host only through the Host interface.
package widget

import (
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/olivier-w/ringbar/internal/anim"
	"github.com/olivier-w/ringbar/internal/geometry"
	"github.com/olivier-w/ringbar/internal/progress"
	"github.com/olivier-w/ringbar/internal/render"
)

// Widget is a circular progress bar. It is not safe for concurrent use; all
// calls belong on the host's render loop.
type Widget struct {
	host     Host
	log      *log.Logger
	density  geometry.Density
	model    *progress.Model
	animator *anim.Animator

	style    Style
	animate  bool
	duration time.Duration

	sweep  float64
	bounds geometry.Bounds
}

// Option configures a Widget at construction.
type Option func(*Widget)

// WithLogger routes the widget's debug output to l.
func WithLogger(l *log.Logger) Option {
	return func(w *Widget) { w.log = l }
}

// WithDensity sets the dp to pixel factor. The default is 1.
func WithDensity(d geometry.Density) Option {
	return func(w *Widget) { w.density = d }
}

// WithClock replaces the clock animations are timed against.
func WithClock(now func() time.Time) Option {
	return func(w *Widget) { w.animator.SetClock(now) }
}

// New builds a widget from attrs. Bounds are computed from the host's
// current size.
func New(host Host, attrs Attributes, opts ...Option) (*Widget, error) {
	w := &Widget{
		host:    host,
		log:     log.New(io.Discard),
		density: 1,
		model:   progress.New(),
	}
	w.animator = anim.New(host, w.setSweep)
	w.animator.OnFinish(func(o anim.Outcome) {
		w.log.Debug("animation finished", "outcome", o, "sweep", w.sweep)
	})
	for _, opt := range opts {
		opt(w)
	}

	r, err := attrs.resolve(w.density)
	if err != nil {
		return nil, err
	}
	w.style = r.style
	w.animate = r.animate
	w.duration = r.duration
	w.model.SetStartAngle(r.startAngle)
	w.model.SetDirection(r.direction)
	w.updateBounds()
	return w, nil
}

// SetProgress stores current of max and moves the arc to match, animated
// when animation is enabled. max grows to current when current exceeds it.
// A max that is not positive is ignored.
func (w *Widget) SetProgress(current, max float64) {
	c, ok := w.model.SetProgress(current, max)
	if !ok {
		w.log.Debug("progress rejected", "current", current, "max", max)
		return
	}
	w.retarget(c.TargetSweep)
}

// SetCurrentProgress sets the current value against the stored max, growing
// max when value exceeds it.
func (w *Widget) SetCurrentProgress(value float64) {
	w.SetProgress(value, w.model.Max())
}

// SetMaxProgress replaces max, pulling the current value down when it no
// longer fits.
func (w *Widget) SetMaxProgress(max float64) {
	c, ok := w.model.SetMaxProgress(max)
	if !ok {
		w.log.Debug("max progress rejected", "max", max)
		return
	}
	w.retarget(c.TargetSweep)
}

func (w *Widget) Progress() float64    { return w.model.Current() }
func (w *Widget) MaxProgress() float64 { return w.model.Max() }

// SweepAngle is the angle currently drawn, mid-animation included.
func (w *Widget) SweepAngle() float64 { return w.sweep }

// Animating reports whether a transition is in flight.
func (w *Widget) Animating() bool { return w.animator.State() == anim.Running }

// SetOnProgressChange registers the single progress listener. nil removes it.
func (w *Widget) SetOnProgressChange(fn progress.Listener) { w.model.SetListener(fn) }

// retarget moves the arc to target. A transition in flight is cancelled
// first and snaps to its own target, so the new one starts from there.
func (w *Widget) retarget(target float64) {
	w.animator.Cancel()
	if !w.animate || target == w.sweep {
		w.setSweep(target)
		return
	}
	w.log.Debug("animating", "from", w.sweep, "to", target, "duration", w.duration)
	w.animator.Start(w.sweep, target, w.duration, w.style.Curve)
}

func (w *Widget) setSweep(angle float64) {
	w.sweep = min(max(angle, -360), 360)
	w.host.RequestRedraw()
}

// Detach cancels any transition. Call it when the widget leaves the screen.
func (w *Widget) Detach() {
	w.animator.Cancel()
}

func (w *Widget) StartAngle() int { return w.model.StartAngle() }

// SetStartAngle moves the arc origin. Values outside [0, 360] reset it to
// 270.
func (w *Widget) SetStartAngle(angle int) {
	w.model.SetStartAngle(angle)
	w.host.RequestRedraw()
}

func (w *Widget) Direction() progress.Direction { return w.model.Direction() }

// SetDirection flips the sweep. A transition in flight is finished at once
// and the arc is redrawn on the new side.
func (w *Widget) SetDirection(d progress.Direction) {
	w.animator.Cancel()
	w.model.SetDirection(d)
	w.setSweep(w.model.Sweep())
}

func (w *Widget) AnimationEnabled() bool { return w.animate }

// SetAnimationEnabled turns transitions on or off. Turning them off finishes
// one in flight.
func (w *Widget) SetAnimationEnabled(enabled bool) {
	w.animate = enabled
	if !enabled {
		w.animator.Cancel()
	}
}

func (w *Widget) AnimationDuration() time.Duration { return w.duration }

func (w *Widget) SetAnimationDuration(d time.Duration) { w.duration = d }

// Style returns the current style value.
func (w *Widget) Style() Style { return w.style }

// SetStyle replaces the whole style.
func (w *Widget) SetStyle(s Style) {
	relayout := s.MaxStroke() != w.style.MaxStroke()
	w.style = s
	if relayout {
		w.invalidateLayout()
		return
	}
	w.host.RequestRedraw()
}

func (w *Widget) ProgressColor() color.Color { return w.style.ProgressColor }

func (w *Widget) SetProgressColor(c color.Color) {
	s := w.style
	s.ProgressColor = c
	w.SetStyle(s)
}

func (w *Widget) ProgressBackgroundColor() color.Color { return w.style.BackgroundColor }

func (w *Widget) SetProgressBackgroundColor(c color.Color) {
	s := w.style
	s.BackgroundColor = c
	w.SetStyle(s)
}

func (w *Widget) DotColor() color.Color { return w.style.DotColor }

func (w *Widget) SetDotColor(c color.Color) {
	s := w.style
	s.DotColor = c
	w.SetStyle(s)
}

func (w *Widget) ProgressStrokeWidth() float64 { return w.style.ProgressWidth }

func (w *Widget) SetProgressStrokeWidthPx(px float64) {
	s := w.style
	s.ProgressWidth = max(px, 0)
	w.setStyleAndLayout(s)
}

func (w *Widget) SetProgressStrokeWidthDp(dp float64) {
	w.SetProgressStrokeWidthPx(px(w.density, dp))
}

func (w *Widget) ProgressBackgroundStrokeWidth() float64 { return w.style.BackgroundWidth }

func (w *Widget) SetProgressBackgroundStrokeWidthPx(px float64) {
	s := w.style
	s.BackgroundWidth = max(px, 0)
	w.setStyleAndLayout(s)
}

func (w *Widget) SetProgressBackgroundStrokeWidthDp(dp float64) {
	w.SetProgressBackgroundStrokeWidthPx(px(w.density, dp))
}

func (w *Widget) DotWidth() float64 { return w.style.DotWidth }

func (w *Widget) SetDotWidthPx(px float64) {
	s := w.style
	s.DotWidth = max(px, 0)
	w.setStyleAndLayout(s)
}

func (w *Widget) SetDotWidthDp(dp float64) {
	w.SetDotWidthPx(px(w.density, dp))
}

func (w *Widget) DotEnabled() bool { return w.style.DrawDot }

func (w *Widget) SetDrawDot(enabled bool) {
	s := w.style
	s.DrawDot = enabled
	w.SetStyle(s)
}

func (w *Widget) FillBackgroundEnabled() bool { return w.style.FillBackground }

func (w *Widget) SetFillBackgroundEnabled(enabled bool) {
	if enabled == w.style.FillBackground {
		return
	}
	s := w.style
	s.FillBackground = enabled
	w.SetStyle(s)
}

func (w *Widget) ProgressCap() render.Cap { return w.style.Cap }

func (w *Widget) SetProgressCap(c render.Cap) {
	if c == w.style.Cap {
		return
	}
	s := w.style
	s.Cap = c
	w.SetStyle(s)
}

func (w *Widget) Interpolator() anim.Curve { return w.style.Curve }

// SetInterpolator changes the curve of the next transition. nil restores
// the default.
func (w *Widget) SetInterpolator(c anim.Curve) {
	if c == nil {
		c = anim.AccelerateDecelerate
	}
	s := w.style
	s.Curve = c
	w.style = s
}

// setStyleAndLayout is SetStyle for changes to stroke widths, which always
// recompute bounds even when the thickest stroke is unchanged.
func (w *Widget) setStyleAndLayout(s Style) {
	w.style = s
	w.invalidateLayout()
}

func (w *Widget) invalidateLayout() {
	w.updateBounds()
	w.host.RequestRelayout()
	w.host.RequestRedraw()
}
