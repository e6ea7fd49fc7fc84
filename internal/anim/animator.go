// Package anim interpolates the sweep angle of the progress arc over time.
//
// The Animator never owns a timer. Every frame is requested from a Scheduler
// supplied by the host render loop, and at most one frame is outstanding.
package anim

import "time"

const (
	// FrameInterval is the delay requested between animation frames.
	FrameInterval = 16 * time.Millisecond

	// DefaultDuration is the length of a progress transition.
	DefaultDuration = time.Second
)

// Handle is a scheduled frame that has not fired yet.
type Handle interface {
	Cancel()
}

// Scheduler runs fn once after delay on the host's render loop.
type Scheduler interface {
	ScheduleTick(fn func(now time.Time), delay time.Duration) Handle
}

// State is the animator's lifecycle state.
type State uint8

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Outcome is how a run ended.
type Outcome uint8

const (
	Completed Outcome = iota
	Cancelled
)

func (o Outcome) String() string {
	if o == Cancelled {
		return "cancelled"
	}
	return "completed"
}

type run struct {
	id       uint64
	from     float64
	to       float64
	duration time.Duration
	curve    Curve
	started  time.Time
	handle   Handle
}

// Animator drives one angle from a start value to a target. Starting a new
// run or cancelling the current one writes the current run's target before
// anything else happens.
type Animator struct {
	sched  Scheduler
	apply  func(angle float64)
	finish func(Outcome)
	now    func() time.Time
	run    *run
	seq    uint64
}

// New returns an idle animator that writes every interpolated angle to apply.
func New(s Scheduler, apply func(angle float64)) *Animator {
	return &Animator{sched: s, apply: apply, now: time.Now}
}

// SetClock replaces the clock used to stamp the start of a run.
func (a *Animator) SetClock(now func() time.Time) { a.now = now }

// OnFinish registers a callback invoked when a run completes or is cancelled.
func (a *Animator) OnFinish(fn func(Outcome)) { a.finish = fn }

// State reports whether a run is in flight.
func (a *Animator) State() State {
	if a.run != nil {
		return Running
	}
	return Idle
}

// Target returns the target of the run in flight.
func (a *Animator) Target() (float64, bool) {
	if a.run == nil {
		return 0, false
	}
	return a.run.to, true
}

// Start interpolates from -> to over d using curve. A run already in flight
// is cancelled first. A non-positive duration writes to immediately.
func (a *Animator) Start(from, to float64, d time.Duration, curve Curve) {
	a.Cancel()
	if curve == nil {
		curve = AccelerateDecelerate
	}
	if d <= 0 {
		a.apply(to)
		a.done(Completed)
		return
	}

	a.seq++
	r := &run{
		id:       a.seq,
		from:     from,
		to:       to,
		duration: d,
		curve:    curve,
		started:  a.now(),
	}
	a.run = r
	a.apply(from)
	a.schedule(r)
}

// Step writes the angle for elapsed fraction f of the run in flight. f >= 1
// writes the exact target and completes the run.
func (a *Animator) Step(f float64) {
	r := a.run
	if r == nil {
		return
	}
	if f >= 1 {
		a.run = nil
		if r.handle != nil {
			r.handle.Cancel()
		}
		a.apply(r.to)
		a.done(Completed)
		return
	}
	if f < 0 {
		f = 0
	}
	a.apply(r.from + (r.to-r.from)*r.curve(f))
}

// Cancel stops the run in flight and snaps to its target. It is a no-op
// when idle.
func (a *Animator) Cancel() {
	r := a.run
	if r == nil {
		return
	}
	a.run = nil
	if r.handle != nil {
		r.handle.Cancel()
	}
	a.apply(r.to)
	a.done(Cancelled)
}

func (a *Animator) schedule(r *run) {
	id := r.id
	r.handle = a.sched.ScheduleTick(func(now time.Time) {
		a.tick(id, now)
	}, FrameInterval)
}

func (a *Animator) tick(id uint64, now time.Time) {
	r := a.run
	if r == nil || r.id != id {
		return
	}
	r.handle = nil
	a.Step(float64(now.Sub(r.started)) / float64(r.duration))
	if a.run == r {
		a.schedule(r)
	}
}

func (a *Animator) done(o Outcome) {
	if a.finish != nil {
		a.finish(o)
	}
}
