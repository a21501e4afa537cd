package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg carries the tick timestamp and the tick chain it belongs to.
// Pausing ends a chain; resuming starts a new one, so a tick still in flight
// from before the pause is dropped.
type frameMsg struct {
	at  time.Time
	seq int
}

type fileSavedMsg struct {
	destName string
	err      error
}

func frameCmd(fps, seq int) tea.Cmd {
	return tea.Tick(frameInterval(fps), func(t time.Time) tea.Msg {
		return frameMsg{at: t, seq: seq}
	})
}

func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}
