package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/ringbar/internal/anim"
)

// frameTickMsg delivers a scheduled widget frame back to the update loop.
type frameTickMsg struct {
	id uint64
	at time.Time
}

// teaHost gives the widget a home inside a bubbletea program. Frames are
// scheduled as tea.Tick commands; a cancelled frame is forgotten, so its
// message is dropped when it arrives.
type teaHost struct {
	width, height int

	nextID  uint64
	frames  map[uint64]func(time.Time)
	pending []tea.Cmd

	dirty    bool
	relayout bool
}

func newTeaHost() *teaHost {
	return &teaHost{frames: make(map[uint64]func(time.Time)), dirty: true}
}

type frameHandle struct {
	host *teaHost
	id   uint64
}

func (h frameHandle) Cancel() { delete(h.host.frames, h.id) }

func (h *teaHost) ScheduleTick(fn func(time.Time), delay time.Duration) anim.Handle {
	h.nextID++
	id := h.nextID
	h.frames[id] = fn
	h.pending = append(h.pending, tea.Tick(delay, func(t time.Time) tea.Msg {
		return frameTickMsg{id: id, at: t}
	}))
	return frameHandle{host: h, id: id}
}

func (h *teaHost) RequestRedraw()          { h.dirty = true }
func (h *teaHost) RequestRelayout()        { h.relayout = true }
func (h *teaHost) CurrentSize() (int, int) { return h.width, h.height }

// fire runs the frame msg was scheduled for. Frames cancelled in the
// meantime are ignored.
func (h *teaHost) fire(msg frameTickMsg) bool {
	fn, ok := h.frames[msg.id]
	if !ok {
		return false
	}
	delete(h.frames, msg.id)
	fn(msg.at)
	return true
}

// drain returns the commands for frames scheduled since the last call.
func (h *teaHost) drain() tea.Cmd {
	if len(h.pending) == 0 {
		return nil
	}
	cmds := h.pending
	h.pending = nil
	return tea.Batch(cmds...)
}

// outstanding is the number of frames still waiting to fire.
func (h *teaHost) outstanding() int { return len(h.frames) }
