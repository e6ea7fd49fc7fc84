package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "esc", "ctrl+c":
		return true
	}
	return false
}

func helpText() string {
	return "enter set  ↑/↓ step  tab direction  ^a animate  ^d dot  ^f fill  ^r cap  ^t curve  ^s save  esc quit"
}
