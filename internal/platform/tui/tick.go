// Package tui provides the Bubble Tea integration for the runner.
// It owns the display refresh chain, maps input and draws frames.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/siggyrun/internal/loop"
)

// RefreshMsg is one display refresh for the callback chain Gen.
type RefreshMsg struct {
	Gen loop.Generation
	At  time.Time
}

// CooldownMsg is sent when the retry cooldown expires so the hint can be redrawn.
type CooldownMsg struct{}

// refreshCmd schedules the next refresh of chain gen at the specified rate.
func refreshCmd(gen loop.Generation, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return RefreshMsg{Gen: gen, At: t}
	})
}

// cooldownCmd fires a CooldownMsg after d.
func cooldownCmd(d time.Duration) tea.Cmd {
	if d < 0 {
		d = 0
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return CooldownMsg{}
	})
}
