package widget

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivier-w/ringbar/internal/anim"
	"github.com/olivier-w/ringbar/internal/geometry"
	"github.com/olivier-w/ringbar/internal/progress"
	"github.com/olivier-w/ringbar/internal/render"
)

type tick struct {
	fn        func(time.Time)
	cancelled bool
}

func (t *tick) Cancel() { t.cancelled = true }

type fakeHost struct {
	width, height int
	redraws       int
	relayouts     int
	ticks         []*tick
}

func (h *fakeHost) ScheduleTick(fn func(time.Time), _ time.Duration) anim.Handle {
	t := &tick{fn: fn}
	h.ticks = append(h.ticks, t)
	return t
}

func (h *fakeHost) RequestRedraw()          { h.redraws++ }
func (h *fakeHost) RequestRelayout()        { h.relayouts++ }
func (h *fakeHost) CurrentSize() (int, int) { return h.width, h.height }

// advance fires the pending frame at now.
func (h *fakeHost) advance(now time.Time) bool {
	for i := len(h.ticks) - 1; i >= 0; i-- {
		if t := h.ticks[i]; !t.cancelled {
			t.cancelled = true
			t.fn(now)
			return true
		}
	}
	return false
}

func (h *fakeHost) pending() int {
	n := 0
	for _, t := range h.ticks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

var epoch = time.Unix(5000, 0)

func newWidget(t *testing.T, attrs Attributes) (*Widget, *fakeHost) {
	t.Helper()
	h := &fakeHost{width: 200, height: 200}
	w, err := New(h, attrs, WithClock(func() time.Time { return epoch }))
	require.NoError(t, err)
	return w, h
}

func boolp(b bool) *bool        { return &b }
func intp(i int) *int           { return &i }
func floatp(f float64) *float64 { return &f }
func noAnimation() Attributes   { return Attributes{EnableProgressAnimation: boolp(false)} }

func clockwise(a Attributes) Attributes {
	a.Direction = "clockwise"
	return a
}

func TestDefaults(t *testing.T) {
	w, _ := newWidget(t, Attributes{})

	assert.Equal(t, 270, w.StartAngle())
	assert.Equal(t, progress.CounterClockwise, w.Direction())
	assert.Equal(t, 0.0, w.SweepAngle())
	assert.Equal(t, 0.0, w.Progress())
	assert.Equal(t, 100.0, w.MaxProgress())
	assert.True(t, w.AnimationEnabled())
	assert.True(t, w.DotEnabled())
	assert.False(t, w.FillBackgroundEnabled())
	assert.Equal(t, render.CapRound, w.ProgressCap())
	assert.Equal(t, 8.0, w.ProgressStrokeWidth())
	assert.Equal(t, 8.0, w.ProgressBackgroundStrokeWidth())
	assert.Equal(t, 8.0, w.DotWidth())
	assert.Equal(t, "#28b51b", render.HexColor(w.ProgressColor()))
	assert.Equal(t, "#28b51b", render.HexColor(w.DotColor()))
	assert.Equal(t, "#e0e0e0", render.HexColor(w.ProgressBackgroundColor()))
	assert.Equal(t, anim.DefaultDuration, w.AnimationDuration())
}

func TestSetProgressWithoutAnimation(t *testing.T) {
	w, h := newWidget(t, noAnimation())
	w.SetProgress(50, 100)
	assert.Equal(t, -180.0, w.SweepAngle())
	assert.Empty(t, h.ticks)

	cw, _ := newWidget(t, clockwise(noAnimation()))
	cw.SetProgress(50, 100)
	assert.Equal(t, 180.0, cw.SweepAngle())
}

func TestSetProgressSweepMatchesFraction(t *testing.T) {
	for _, dir := range []string{"clockwise", "counterclockwise"} {
		a := noAnimation()
		a.Direction = dir
		w, _ := newWidget(t, a)
		for _, tc := range [][2]float64{{0, 10}, {1, 3}, {7.5, 10}, {42, 42}, {0.001, 1000}} {
			w.SetProgress(tc[0], tc[1])
			want := tc[0] / tc[1] * 360
			assert.InDelta(t, want, math.Abs(w.SweepAngle()), 1e-9)
			if want > 0 {
				assert.Equal(t, dir == "clockwise", w.SweepAngle() > 0)
			}
		}
	}
}

func TestSetProgressAnimatesToTarget(t *testing.T) {
	w, h := newWidget(t, Attributes{Interpolator: "linear"})
	w.SetProgress(25, 100)

	require.True(t, w.Animating())
	assert.Equal(t, 0.0, w.SweepAngle())

	h.advance(epoch.Add(500 * time.Millisecond))
	assert.InDelta(t, -45.0, w.SweepAngle(), 1e-9)

	h.advance(epoch.Add(time.Second))
	assert.Equal(t, -90.0, w.SweepAngle())
	assert.False(t, w.Animating())
	assert.Equal(t, 0, h.pending())
}

func TestSetCurrentProgressAboveMaxFillsRing(t *testing.T) {
	w, _ := newWidget(t, clockwise(noAnimation()))
	w.SetCurrentProgress(130)

	assert.Equal(t, 130.0, w.MaxProgress())
	assert.Equal(t, 130.0, w.Progress())
	assert.Equal(t, 360.0, w.SweepAngle())
}

func TestSetProgressIdempotent(t *testing.T) {
	w, h := newWidget(t, Attributes{})
	var calls [][2]float64
	w.SetOnProgressChange(func(current, max float64) {
		calls = append(calls, [2]float64{current, max})
	})

	w.SetProgress(40, 80)
	h.advance(epoch.Add(2 * time.Second))
	settled := w.SweepAngle()
	require.Equal(t, -180.0, settled)

	w.SetProgress(40, 80)
	assert.Equal(t, settled, w.SweepAngle())
	h.advance(epoch.Add(300 * time.Millisecond))
	assert.InDelta(t, settled, w.SweepAngle(), 1e-9)
	h.advance(epoch.Add(2 * time.Second))
	assert.Equal(t, settled, w.SweepAngle())

	assert.Equal(t, [][2]float64{{40, 80}, {40, 80}}, calls)
}

func TestSettledTargetSchedulesNothing(t *testing.T) {
	w, h := newWidget(t, Attributes{})
	w.SetMaxProgress(50)

	assert.False(t, w.Animating())
	assert.Empty(t, h.ticks)
	assert.Equal(t, 0.0, w.SweepAngle())
}

func TestListenerRunsBeforeAnimation(t *testing.T) {
	w, _ := newWidget(t, Attributes{})
	var animatingAtCall bool
	w.SetOnProgressChange(func(float64, float64) { animatingAtCall = w.Animating() })

	w.SetProgress(10, 100)
	assert.False(t, animatingAtCall)
	assert.True(t, w.Animating())
}

func TestDetachSnapsToTarget(t *testing.T) {
	w, h := newWidget(t, Attributes{Interpolator: "linear"})
	w.SetProgress(100, 100)
	h.advance(epoch.Add(250 * time.Millisecond))
	require.InDelta(t, -90.0, w.SweepAngle(), 1e-9)

	w.Detach()

	assert.Equal(t, -360.0, w.SweepAngle())
	assert.False(t, w.Animating())
	assert.Equal(t, 0, h.pending())
}

func TestNewProgressReplacesRunningAnimation(t *testing.T) {
	w, h := newWidget(t, Attributes{Interpolator: "linear"})
	w.SetProgress(50, 100)
	h.advance(epoch.Add(100 * time.Millisecond))
	require.InDelta(t, -18.0, w.SweepAngle(), 1e-9)

	w.SetProgress(75, 100)

	// The first run snapped to -180 and the second starts from there.
	assert.Equal(t, -180.0, w.SweepAngle())
	assert.Equal(t, 1, h.pending())

	h.advance(epoch.Add(500 * time.Millisecond))
	assert.InDelta(t, -225.0, w.SweepAngle(), 1e-9)
	h.advance(epoch.Add(time.Second))
	assert.Equal(t, -270.0, w.SweepAngle())
}

func TestDisablingAnimationFinishesRun(t *testing.T) {
	w, h := newWidget(t, Attributes{})
	w.SetProgress(30, 60)
	w.SetAnimationEnabled(false)

	assert.Equal(t, -180.0, w.SweepAngle())
	assert.Equal(t, 0, h.pending())

	w.SetProgress(15, 60)
	assert.Equal(t, -90.0, w.SweepAngle())
}

func TestSetProgressRejectsNonPositiveMax(t *testing.T) {
	w, h := newWidget(t, noAnimation())
	w.SetProgress(10, 20)
	redraws := h.redraws

	w.SetProgress(10, 0)
	w.SetProgress(10, -5)
	w.SetMaxProgress(0)

	assert.Equal(t, -180.0, w.SweepAngle())
	assert.Equal(t, 20.0, w.MaxProgress())
	assert.Equal(t, redraws, h.redraws)
}

func TestSetMaxProgressRetargets(t *testing.T) {
	w, _ := newWidget(t, clockwise(noAnimation()))
	w.SetProgress(50, 100)
	w.SetMaxProgress(200)
	assert.Equal(t, 90.0, w.SweepAngle())

	w.SetMaxProgress(25)
	assert.Equal(t, 25.0, w.Progress())
	assert.Equal(t, 360.0, w.SweepAngle())
}

func TestSetDirectionFlipsSweep(t *testing.T) {
	w, h := newWidget(t, Attributes{})
	w.SetProgress(25, 100)
	w.SetDirection(progress.Clockwise)

	assert.Equal(t, 90.0, w.SweepAngle())
	assert.False(t, w.Animating())
	assert.Equal(t, 0, h.pending())
}

func TestStartAngleAttributeOutOfRange(t *testing.T) {
	w, _ := newWidget(t, Attributes{StartAngle: intp(400)})
	assert.Equal(t, 270, w.StartAngle())

	w, _ = newWidget(t, Attributes{StartAngle: intp(90)})
	assert.Equal(t, 90, w.StartAngle())

	w.SetStartAngle(-10)
	assert.Equal(t, 270, w.StartAngle())
}

func TestBoundsInsetByThickestStroke(t *testing.T) {
	w, _ := newWidget(t, Attributes{
		ProgressStrokeWidth:           floatp(5),
		ProgressBackgroundStrokeWidth: floatp(8),
		DotWidth:                      floatp(12),
	})

	b := w.Bounds()
	assert.Equal(t, geometry.Rect{Left: 6, Top: 6, Right: 194, Bottom: 194}, b.Rect)
	assert.Equal(t, 94.0, b.Radius)

	w.SetDrawDot(false)
	assert.Equal(t, 4.0, w.Bounds().Rect.Left)
}

func TestStrokeChangeRelayouts(t *testing.T) {
	w, h := newWidget(t, Attributes{})
	relayouts := h.relayouts

	w.SetProgressStrokeWidthDp(20)
	assert.Equal(t, relayouts+1, h.relayouts)
	assert.Equal(t, 10.0, w.Bounds().Rect.Left)

	w.SetProgressColor(render.MustColor("#ff0000"))
	assert.Equal(t, relayouts+1, h.relayouts)
	assert.Equal(t, "#ff0000", render.HexColor(w.Frame().Progress.Color))
}

func TestOnSizeChangedRecomputesBounds(t *testing.T) {
	w, h := newWidget(t, Attributes{})
	h.width, h.height = 60, 60
	assert.Equal(t, 196.0, w.Bounds().Rect.Right)

	w.OnSizeChanged()
	assert.Equal(t, 56.0, w.Bounds().Rect.Right)
	assert.Equal(t, 26.0, w.Bounds().Radius)
}

func TestMeasureUsesDensity(t *testing.T) {
	h := &fakeHost{}
	w, err := New(h, Attributes{}, WithDensity(2))
	require.NoError(t, err)

	assert.Equal(t, 16.0, w.ProgressStrokeWidth())
	side := w.Measure(geometry.Constraint{}, geometry.Constraint{}, geometry.Padding{})
	assert.Equal(t, 316, side)

	side = w.Measure(
		geometry.Constraint{Mode: geometry.AtMost, Size: 500},
		geometry.Constraint{Mode: geometry.Exactly, Size: 120},
		geometry.Padding{},
	)
	assert.Equal(t, 120, side)
}

func TestDrawRendersCurrentSweep(t *testing.T) {
	w, _ := newWidget(t, Attributes{
		EnableProgressAnimation: boolp(false),
		FillBackground:          boolp(true),
		ProgressCap:             "straight",
		DotColor:                "#ff8800",
	})
	w.SetProgress(1, 4)

	var rec render.Recorder
	require.NoError(t, w.Draw(&rec))
	require.Len(t, rec.Ops, 3)

	assert.Equal(t, render.FillAndStroke, rec.Ops[0].Paint.Style)
	assert.Equal(t, 270.0, rec.Ops[1].Start)
	assert.Equal(t, -90.0, rec.Ops[1].Sweep)
	assert.Equal(t, render.CapStraight, rec.Ops[1].Paint.Cap)
	assert.Equal(t, "#ff8800", render.HexColor(rec.Ops[2].Paint.Color))

	x, y := render.DotPosition(w.Bounds(), 270, -90)
	assert.Equal(t, x, rec.Ops[2].X)
	assert.Equal(t, y, rec.Ops[2].Y)
}

func TestInvalidAttributes(t *testing.T) {
	h := &fakeHost{}
	for _, a := range []Attributes{
		{ProgressColor: "nope"},
		{ProgressBackgroundColor: "#12"},
		{DotColor: "#zzzzzz"},
		{Direction: "up"},
		{ProgressCap: "square"},
		{Interpolator: "bounce"},
	} {
		_, err := New(h, a)
		assert.Error(t, err, "%+v", a)
	}
}
