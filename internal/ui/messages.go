package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type statusExpiredMsg struct {
	seq int
}

type fileSavedMsg struct {
	destName string
	err      error
}

const statusTTL = 5 * time.Second

func expireStatus(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}
