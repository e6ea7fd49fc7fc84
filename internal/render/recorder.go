package render

import "github.com/olivier-w/ringbar/internal/geometry"

// OpKind names a recorded draw call.
type OpKind uint8

const (
	OpArc OpKind = iota
	OpPoint
)

// Op is one draw call captured by a Recorder.
type Op struct {
	Kind  OpKind
	Rect  geometry.Rect
	Start float64
	Sweep float64
	X, Y  float64
	Paint Paint
}

// Recorder is a Surface that keeps the calls made on it.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) DrawArc(rect geometry.Rect, start, sweep float64, p Paint) error {
	r.Ops = append(r.Ops, Op{Kind: OpArc, Rect: rect, Start: start, Sweep: sweep, Paint: p})
	return nil
}

func (r *Recorder) DrawPoint(x, y float64, p Paint) error {
	r.Ops = append(r.Ops, Op{Kind: OpPoint, X: x, Y: y, Paint: p})
	return nil
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
