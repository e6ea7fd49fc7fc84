package widget

import "github.com/olivier-w/ringbar/internal/anim"

// Host is what the widget needs from the view system it lives in. Every
// method is called from the host's render loop.
type Host interface {
	anim.Scheduler

	// RequestRedraw asks for Draw to be called on the next frame.
	RequestRedraw()
	// RequestRelayout asks the host to measure the widget again.
	RequestRelayout()
	// CurrentSize is the size last assigned to the widget.
	CurrentSize() (width, height int)
}
