package ui

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/ringbar/internal/render"
)

// exportPNG rasterizes f at exportScale times its on-screen size and writes
// it to the working directory.
func exportPNG(f render.Frame, side int, now time.Time) tea.Cmd {
	return func() tea.Msg {
		if side <= 0 {
			return fileSavedMsg{err: errors.New("nothing to save yet")}
		}
		name := fmt.Sprintf("ringbar-%s.png", now.Format("20060102-150405"))
		if _, err := os.Stat(name); err == nil {
			return fileSavedMsg{destName: name, err: fmt.Errorf("file %q already exists", name)}
		}
		c := render.NewCanvas(side*exportScale, side*exportScale)
		defer c.Close()
		if err := render.Render(c, f.Scaled(exportScale)); err != nil {
			return fileSavedMsg{destName: name, err: err}
		}
		if err := c.SavePNG(name); err != nil {
			return fileSavedMsg{destName: name, err: err}
		}
		return fileSavedMsg{destName: name}
	}
}
