// Package tui provides the Bubble Tea integration for the flood fill game.
// It handles the terminal UI loop, input mapping, and the game clock.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// NoticeDuration is how long a game notice stays on screen.
const NoticeDuration = 2 * time.Second

// ClockMsg is sent from the game clock goroutine after every tick.
type ClockMsg struct{}

// noticeExpiredMsg clears the notice with the matching sequence number.
type noticeExpiredMsg struct {
	seq int
}

// noticeCmd returns a command that expires notice seq after NoticeDuration.
func noticeCmd(seq int) tea.Cmd {
	return tea.Tick(NoticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}
