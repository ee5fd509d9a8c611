package browse

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"t21dir/cmd/t21dir/ui"
	"t21dir/cmd/t21dir/views"
	"t21dir/internal/state"
)

// Update routes messages. Store actions are dispatched synchronously and
// the page is rebuilt from the resulting snapshot.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.ready = true
		if !m.cfg.DisableMarkdown {
			md, err := views.NewMarkdown(msg.Width)
			if err != nil {
				m.log.Warn("markdown renderer unavailable", zap.Error(err))
			}
			m.markdown = md
			m.cache.Clear()
		}
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		m.loading = false
		m.store = state.NewStore(msg.data, m.cfg.PageSizes, m.cfg.StoreLog)
		m.log.Info("browser ready",
			zap.Int("financial", len(msg.data.Financial)),
			zap.Int("therapy", len(msg.data.Therapy)),
			zap.Int("inspiration", len(msg.data.Inspiration)),
			zap.Duration("elapsed", msg.elapsed),
		)
		m.refresh()
		return m, nil

	case loadFailedMsg:
		m.loading = false
		m.err = msg.err
		m.log.Error("load failed", zap.Error(msg.err))
		return m, nil

	case ui.DebounceMsg:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd

	case ui.SearchChangedMsg:
		if m.store == nil {
			return m, nil
		}
		if m.store.Dispatch(state.SetSearch{Query: msg.Query}) {
			m.cursors[state.ListFinancial] = 0
			m.cursors[state.ListTherapy] = 0
			m.refresh()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.search.Focused() {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	if m.store == nil {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	snap := m.store.Snapshot()
	list, onList := views.ActiveList(snap)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, m.keys.Home):
		m.navigate(state.PageHome)
	case key.Matches(msg, m.keys.Resources):
		m.navigate(state.PageResources)
	case key.Matches(msg, m.keys.Inspiration):
		m.navigate(state.PageInspiration)
	case key.Matches(msg, m.keys.About):
		m.navigate(state.PageAbout)

	case key.Matches(msg, m.keys.Search):
		m.navigate(state.PageResources)
		m.sidebarFocused = false
		cmd := m.search.Focus()
		m.refresh()
		return m, cmd

	case key.Matches(msg, m.keys.Tab):
		if snap.State.Page != state.PageResources {
			break
		}
		next := state.ListTherapy
		if snap.State.Tab == state.ListTherapy {
			next = state.ListFinancial
		}
		m.store.Dispatch(state.SwitchTab{Tab: next})
		m.sidebarCursor = 0

	case key.Matches(msg, m.keys.Back):
		switch {
		case snap.State.Page == state.PageDetail:
			m.back(snap.State.Detail)
		case m.sidebarFocused:
			m.sidebarFocused = false
		case m.search.Committed() != "" && snap.State.Page == state.PageResources:
			var cmd tea.Cmd
			m.search, cmd = m.search.Clear()
			return m, cmd
		}

	case key.Matches(msg, m.keys.FocusLeft):
		if onList {
			m.store.Dispatch(state.ExpandSidebar{})
			m.sidebarFocused = true
		}
	case key.Matches(msg, m.keys.FocusRight):
		m.sidebarFocused = false

	case key.Matches(msg, m.keys.Up):
		if !onList {
			m.viewport.LineUp(1)
			return m, nil
		}
		m.moveCursor(snap, list, -1)
	case key.Matches(msg, m.keys.Down):
		if !onList {
			m.viewport.LineDown(1)
			return m, nil
		}
		m.moveCursor(snap, list, 1)

	case key.Matches(msg, m.keys.Open):
		if !onList {
			break
		}
		if m.sidebarFocused {
			m.toggleFacet(list)
			break
		}
		if id, ok := selectedID(snap, list, m.cursors[list]); ok {
			m.store.Dispatch(state.ShowDetail{List: list, ID: id})
		}

	case key.Matches(msg, m.keys.Toggle):
		if onList && m.sidebarFocused {
			m.toggleFacet(list)
		}

	case key.Matches(msg, m.keys.Reset):
		if onList && m.store.Dispatch(state.ResetFacets{List: list}) {
			m.cursors[list] = 0
		}

	case key.Matches(msg, m.keys.More):
		if onList {
			m.store.Dispatch(state.LoadMore{List: list})
		}

	case key.Matches(msg, m.keys.Sidebar):
		if onList {
			m.store.Dispatch(state.ToggleSidebar{})
			if m.store.State().SidebarCollapsed {
				m.sidebarFocused = false
			}
		}

	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	m.refresh()
	return m, nil
}

func (m *Model) navigate(p state.Page) {
	if m.store.Dispatch(state.Navigate{Page: p}) {
		m.sidebarFocused = false
		m.sidebarCursor = 0
		m.log.Debug("navigate", zap.Stringer("page", p))
	}
}

// back returns from a detail page to the list it was opened from.
func (m *Model) back(d state.Detail) {
	switch d.List {
	case state.ListInspiration:
		m.navigate(state.PageInspiration)
	default:
		m.store.Dispatch(state.SwitchTab{Tab: d.List})
		m.navigate(state.PageResources)
	}
}

func (m *Model) moveCursor(snap state.Snapshot, l state.List, delta int) {
	if m.sidebarFocused {
		n := len(views.FacetItems(l))
		m.sidebarCursor = min(max(m.sidebarCursor+delta, 0), max(n-1, 0))
		return
	}
	if l == state.ListInspiration {
		delta *= ui.GridColumns(ui.NewLayoutConfig(m.width, m.height).MainWidth(snap.State.SidebarCollapsed))
	}
	n := visibleCount(snap, l)
	m.cursors[l] = min(max(m.cursors[l]+delta, 0), max(n-1, 0))
}

func (m *Model) toggleFacet(l state.List) {
	items := views.FacetItems(l)
	if m.sidebarCursor < 0 || m.sidebarCursor >= len(items) {
		return
	}
	it := items[m.sidebarCursor]
	if m.store.Dispatch(state.ToggleFacet{List: l, Facet: it.Facet, Value: it.Option.Value}) {
		m.cursors[l] = 0
	}
}

func visibleCount(snap state.Snapshot, l state.List) int {
	switch l {
	case state.ListFinancial:
		return snap.FinancialPage().Visible
	case state.ListTherapy:
		return snap.TherapyPage().Visible
	case state.ListInspiration:
		return snap.InspirationPage().Visible
	}
	return 0
}

func selectedID(snap state.Snapshot, l state.List, cursor int) (string, bool) {
	switch l {
	case state.ListFinancial:
		if p := snap.FinancialPage(); cursor >= 0 && cursor < len(p.Items) {
			return p.Items[cursor].ID, true
		}
	case state.ListTherapy:
		if p := snap.TherapyPage(); cursor >= 0 && cursor < len(p.Items) {
			return p.Items[cursor].ID, true
		}
	case state.ListInspiration:
		if p := snap.InspirationPage(); cursor >= 0 && cursor < len(p.Items) {
			return p.Items[cursor].ID, true
		}
	}
	return "", false
}
