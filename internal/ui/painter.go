package ui

import (
	"github.com/charmbracelet/log"

	"github.com/olivier-w/ringbar/internal/render"
	"github.com/olivier-w/ringbar/internal/term"
	"github.com/olivier-w/ringbar/internal/widget"
)

// painter owns the pixel buffer the ring is rasterized into and the last
// braille frame made from it. It is shared by every copy of Model.
type painter struct {
	canvas  *render.Canvas
	present *term.Presenter
	last    string
}

func newPainter() *painter {
	return &painter{canvas: render.NewCanvas(1, 1), present: term.NewPresenter()}
}

func (p *painter) resize(side int) error { return p.canvas.Resize(side, side) }

// paint redraws the ring. On failure the previous frame is kept.
func (p *painter) paint(ring *widget.Widget, logger *log.Logger) string {
	p.canvas.Clear()
	if err := ring.Draw(p.canvas); err != nil {
		logger.Warn("draw ring", "err", err)
		return p.last
	}
	p.last = p.present.Render(p.canvas.Image())
	return p.last
}

func (p *painter) close() { _ = p.canvas.Close() }
