package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchChangedMsg carries a search query that survived the debounce.
type SearchChangedMsg struct {
	Query string
}

// SearchBox is the search field. It is created once and lives outside the
// re-rendered page, so its text, caret and focus survive every redraw. It
// talks to its parent only through SearchChangedMsg.
type SearchBox struct {
	input     textinput.Model
	debounce  *Debouncer
	committed string
}

// NewSearchBox creates an unfocused search box.
func NewSearchBox(placeholder string, quiet time.Duration) SearchBox {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "/ "
	in.CharLimit = 120
	return SearchBox{
		input:    in,
		debounce: NewDebouncer("search", quiet),
	}
}

// Update handles keys while focused and the box's own debounce ticks.
func (s SearchBox) Update(msg tea.Msg) (SearchBox, tea.Cmd) {
	switch msg := msg.(type) {
	case DebounceMsg:
		if !s.debounce.Settled(msg) {
			return s, nil
		}
		return s.commit()

	case tea.KeyMsg:
		if !s.input.Focused() {
			return s, nil
		}
		before := s.input.Value()
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		if s.input.Value() == before {
			return s, cmd
		}
		return s, tea.Batch(cmd, s.debounce.Trigger())
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s SearchBox) commit() (SearchBox, tea.Cmd) {
	q := s.input.Value()
	if q == s.committed {
		return s, nil
	}
	s.committed = q
	return s, func() tea.Msg { return SearchChangedMsg{Query: q} }
}

// Clear empties the box and publishes the empty query without waiting.
func (s SearchBox) Clear() (SearchBox, tea.Cmd) {
	s.debounce.Cancel()
	s.input.SetValue("")
	return s.commit()
}

// Focus gives the box keyboard focus.
func (s *SearchBox) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur releases keyboard focus. Pending debounce timers still apply.
func (s *SearchBox) Blur() {
	s.input.Blur()
}

// Focused reports whether the box has keyboard focus.
func (s SearchBox) Focused() bool {
	return s.input.Focused()
}

// Value is the text currently typed, committed or not.
func (s SearchBox) Value() string {
	return s.input.Value()
}

// Committed is the last query published.
func (s SearchBox) Committed() string {
	return s.committed
}

// Position returns the caret index.
func (s SearchBox) Position() int {
	return s.input.Position()
}

// View renders the box at the given width.
func (s SearchBox) View(styles Styles, width int) string {
	s.input.Width = max(width-6, 10)
	return styles.Search.Width(max(width-2, 12)).Render(s.input.View())
}
