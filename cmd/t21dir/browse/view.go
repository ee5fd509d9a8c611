package browse

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"t21dir/cmd/t21dir/ui"
	"t21dir/cmd/t21dir/views"
	"t21dir/internal/state"
)

func (m Model) viewContext() views.Context {
	ctx := views.Context{
		Styles:         m.styles,
		Width:          m.width,
		SidebarCursor:  m.sidebarCursor,
		SidebarFocused: m.sidebarFocused,
		Markdown:       m.markdown,
		Cache:          m.cache,
	}
	if m.store != nil {
		if l, ok := views.ActiveList(m.store.Snapshot()); ok {
			ctx.Cursor = m.cursors[l]
		}
	}
	return ctx
}

// refresh rebuilds the viewport content from the current snapshot and
// keeps the highlighted card on screen.
func (m *Model) refresh() {
	if m.store == nil || !m.ready {
		return
	}
	snap := m.store.Snapshot()
	page := views.Render(snap, m.viewContext())

	layout := ui.NewLayoutConfig(m.width, m.height)
	height := layout.ViewportHeight(snap.State.Page == state.PageResources)
	if m.showHelp {
		height -= strings.Count(m.help.View(m.keys), "\n")
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(height, 1)
	m.viewport.SetContent(page.Body)

	if snap.State.Page != m.lastPage {
		m.lastPage = snap.State.Page
		m.viewport.GotoTop()
		return
	}
	if _, onList := views.ActiveList(snap); !onList || m.sidebarFocused {
		return
	}
	top := m.viewport.YOffset
	switch {
	case page.FocusLine < top:
		m.viewport.SetYOffset(page.FocusLine)
	case page.FocusLine >= top+m.viewport.Height-2:
		m.viewport.SetYOffset(page.FocusLine - m.viewport.Height/3)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	ctx := m.viewContext()

	if m.loading {
		return "\n  " + m.spinner.View() + " Loading directory..."
	}
	if m.err != nil {
		return views.LoadError(m.err, ctx)
	}

	snap := m.store.Snapshot()
	parts := []string{views.Header(snap.State.Page, ctx)}
	if snap.State.Page == state.PageResources {
		parts = append(parts, m.search.View(m.styles, m.width))
	}
	parts = append(parts, m.viewport.View(), m.renderFooter(snap))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderFooter(snap state.Snapshot) string {
	if m.showHelp {
		return m.help.View(m.keys)
	}
	hint := m.help.View(m.keys)
	if q := snap.State.Search; q != "" && snap.State.Page != state.PageResources {
		hint = m.styles.Muted.Render("search: "+q+"  ") + hint
	}
	return m.styles.Footer.Render(hint)
}
