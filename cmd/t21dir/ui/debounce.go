// Package ui provides debouncing utilities for event handling
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultSearchDebounce is the quiet period after the last keystroke before
// search results are recomputed.
const DefaultSearchDebounce = 300 * time.Millisecond

// DebounceMsg is delivered when a debounce timer fires. Only the message
// carrying the latest sequence number is live; earlier ones were superseded.
type DebounceMsg struct {
	ID  string
	Seq uint64
}

// Debouncer implements last-write-wins debouncing on top of tea.Tick, so the
// event loop stays the only place state changes. Each Trigger supersedes
// every earlier one.
type Debouncer struct {
	id       string
	seq      uint64
	duration time.Duration
}

// NewDebouncer creates a new debouncer with the specified duration. id
// tells several debouncers in one program apart.
func NewDebouncer(id string, duration time.Duration) *Debouncer {
	if duration <= 0 {
		duration = DefaultSearchDebounce
	}
	return &Debouncer{id: id, duration: duration}
}

// Trigger restarts the quiet period and returns the timer command.
func (d *Debouncer) Trigger() tea.Cmd {
	d.seq++
	msg := DebounceMsg{ID: d.id, Seq: d.seq}
	return tea.Tick(d.duration, func(time.Time) tea.Msg {
		return msg
	})
}

// Settled reports whether msg is the surviving timer of this debouncer.
func (d *Debouncer) Settled(msg DebounceMsg) bool {
	return msg.ID == d.id && msg.Seq == d.seq
}

// Cancel invalidates any pending timer.
func (d *Debouncer) Cancel() {
	d.seq++
}

// Duration returns the quiet period.
func (d *Debouncer) Duration() time.Duration {
	return d.duration
}
