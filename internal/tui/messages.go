package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Message types for Bubble Tea update loop.

// tickMsg asks for one search step. Ticks from an older generation are
// dropped, so pausing and resuming never leaves two timers running.
type tickMsg struct{ gen int }

// tickAfter schedules the next search step.
func tickAfter(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// gaugeFrameMsg steps the gauge spring once.
type gaugeFrameMsg struct{}

// gaugeFrame schedules the next gauge frame at the spring's frame rate.
func gaugeFrame() tea.Cmd {
	return tea.Tick(time.Second/gaugeFPS, func(time.Time) tea.Msg {
		return gaugeFrameMsg{}
	})
}
