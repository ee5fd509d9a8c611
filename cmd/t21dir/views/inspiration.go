package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"t21dir/cmd/t21dir/ui"
	"t21dir/internal/directory"
	"t21dir/internal/state"
)

// Inspiration is the profile grid with its own sidebar.
func Inspiration(snap state.Snapshot, ctx Context) Page {
	s := ctx.Styles
	layout := ui.NewLayoutConfig(ctx.Width, 0)
	sideW := layout.SidebarWidth(snap.State.SidebarCollapsed)
	mainW := layout.MainWidth(snap.State.SidebarCollapsed)

	p := snap.InspirationPage()
	var head strings.Builder
	head.WriteString(s.Title.Render("Inspiring Individuals"))
	head.WriteString("\n")
	head.WriteString(s.Subtitle.Render("Athletes, artists, entrepreneurs and advocates showing what's possible."))
	head.WriteString("\n\n")
	head.WriteString(showing(ctx, p.Visible, p.Total, "individuals"))

	cols := ui.GridColumns(mainW)
	cardW := mainW / cols
	cursor := clampCursor(ctx.Cursor, len(p.Items))

	// Cards are laid out in rows of cols; the focused card's row is the
	// one reported to the caller.
	var rows []string
	focusedRow := -1
	for start := 0; start < len(p.Items); start += cols {
		end := min(start+cols, len(p.Items))
		cells := make([]string, 0, cols)
		for i := start; i < end; i++ {
			selected := !ctx.SidebarFocused && i == cursor
			cells = append(cells, ProfileCard(p.Items[i], s, cardW, selected))
			if selected {
				focusedRow = len(rows)
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	main, focus := stack(head.String(), rows, focusedRow, emptyResults(ctx, len(rows)), loadMore(ctx, p))
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		Sidebar(snap, state.ListInspiration, ctx, sideW),
		" ",
		lipgloss.NewStyle().Width(mainW).Render(main),
	)
	return Page{Body: body, FocusLine: focus}
}

// ProfileCard is the grid entry of an inspiration profile.
func ProfileCard(p directory.InspirationProfile, s ui.Styles, width int, selected bool) string {
	inner := max(width-4, 16)
	lines := []string{
		s.Stat.Render(directory.Initials(p.FullName)),
		s.Bold.Render(ui.Truncate(p.DisplayName(), inner)),
	}
	if loc := p.Location(false); loc != "" {
		lines = append(lines, s.Muted.Render(ui.Truncate(loc, inner)))
	}
	if p.PrimaryField != "" {
		lines = append(lines, s.FieldBadge(p.PrimaryField))
	}
	if p.ShortBio != "" {
		lines = append(lines, s.Body.Width(inner).Render(excerpt(p.ShortBio, ui.CardExcerptLength/2)))
	}
	return card(s, width, selected, lines)
}

