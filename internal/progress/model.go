// Package progress holds the current/max progress values and the angle
// configuration, and derives the sweep angle of the progress arc from them.
package progress

import (
	"fmt"
	"strings"
)

const (
	DefaultStartAngle = 270
	DefaultMax        = 100.0
)

// Direction is the way the arc sweeps from its start angle.
type Direction uint8

const (
	Clockwise Direction = iota
	CounterClockwise
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// ParseDirection accepts "clockwise"/"cw" and "counterclockwise"/"ccw".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clockwise", "cw":
		return Clockwise, nil
	case "counterclockwise", "counter-clockwise", "ccw":
		return CounterClockwise, nil
	}
	return CounterClockwise, fmt.Errorf("unknown direction %q", s)
}

// Listener is notified with the stored (current, max) on every accepted update.
type Listener func(current, max float64)

// Change describes one accepted progress update.
type Change struct {
	Current     float64
	Max         float64
	OldSweep    float64
	TargetSweep float64
}

// Model is the progress state of one widget. The zero value is not usable;
// call New.
type Model struct {
	current    float64
	max        float64
	startAngle int
	direction  Direction
	listener   Listener
}

// New returns a model at 0 of 100, starting at 270 degrees and sweeping
// counter-clockwise.
func New() *Model {
	return &Model{
		max:        DefaultMax,
		startAngle: DefaultStartAngle,
		direction:  CounterClockwise,
	}
}

func (m *Model) Current() float64     { return m.current }
func (m *Model) Max() float64         { return m.max }
func (m *Model) StartAngle() int      { return m.startAngle }
func (m *Model) Direction() Direction { return m.direction }

// SetListener replaces the progress listener. nil removes it.
func (m *Model) SetListener(l Listener) { m.listener = l }

// SetProgress stores current and max. A current above max raises max to
// current; a negative current is stored as 0. A max that is not positive is
// rejected and leaves the model untouched.
func (m *Model) SetProgress(current, max float64) (Change, bool) {
	if !(max > 0) {
		return Change{}, false
	}
	if current > max {
		max = current
	}
	if !(current > 0) {
		current = 0
	}

	old := m.Sweep()
	m.current = current
	m.max = max

	if m.listener != nil {
		m.listener(m.current, m.max)
	}
	return Change{
		Current:     m.current,
		Max:         m.max,
		OldSweep:    old,
		TargetSweep: m.Sweep(),
	}, true
}

// SetCurrentProgress updates current against the stored max, growing max
// when value exceeds it.
func (m *Model) SetCurrentProgress(value float64) (Change, bool) {
	return m.SetProgress(value, m.max)
}

// SetMaxProgress replaces max, pulling current down when it no longer fits.
func (m *Model) SetMaxProgress(max float64) (Change, bool) {
	return m.SetProgress(min(m.current, max), max)
}

// SetStartAngle sets the arc origin in degrees. Values outside [0, 360] fall
// back to DefaultStartAngle.
func (m *Model) SetStartAngle(angle int) {
	if angle < 0 || angle > 360 {
		angle = DefaultStartAngle
	}
	m.startAngle = angle
}

// SetDirection sets the sweep direction. Unknown values fall back to
// CounterClockwise.
func (m *Model) SetDirection(d Direction) {
	if d != Clockwise {
		d = CounterClockwise
	}
	m.direction = d
}

// Sweep is the signed sweep angle for the stored progress.
func (m *Model) Sweep() float64 {
	return SweepAngle(m.current, m.max, m.direction)
}

// SweepAngle maps current/max onto [0, 360] degrees, negated for
// counter-clockwise sweeps. current is clamped to [0, max]; a non-positive
// max yields 0.
func SweepAngle(current, limit float64, dir Direction) float64 {
	if !(limit > 0) {
		return 0
	}
	if current < 0 {
		current = 0
	}
	current = min(current, limit)
	degrees := current / limit * 360
	if dir == CounterClockwise {
		return -degrees
	}
	return degrees
}
