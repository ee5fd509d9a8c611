package views

import (
	"fmt"
	"strings"

	"t21dir/internal/filter"
	"t21dir/internal/state"
)

// FacetItem is one selectable row of a sidebar.
type FacetItem struct {
	Facet  filter.Facet
	Option filter.Option
}

// FacetItems flattens a list's facet catalog in display order. The sidebar
// cursor indexes this slice.
func FacetItems(l state.List) []FacetItem {
	var out []FacetItem
	for _, g := range l.Facets() {
		for _, o := range g.Options {
			out = append(out, FacetItem{Facet: g.Facet, Option: o})
		}
	}
	return out
}

// Sidebar draws the facet groups of a list with check marks for selected
// values. A collapsed sidebar is a rail showing the active filter count.
func Sidebar(snap state.Snapshot, l state.List, ctx Context, width int) string {
	s := ctx.Styles
	sel := snap.State.Selection(l)

	if snap.State.SidebarCollapsed {
		rail := "»"
		if n := sel.Active(); n > 0 {
			rail += "\n" + s.SidebarHot.Render(fmt.Sprint(n))
		}
		return s.Sidebar.Width(width).Render(rail)
	}

	var sb strings.Builder
	title := "Filters"
	if n := sel.Active(); n > 0 {
		title = fmt.Sprintf("Filters (%d)", n)
	}
	sb.WriteString(s.Bold.Render(title))
	sb.WriteString("\n")

	idx := 0
	for _, g := range l.Facets() {
		sb.WriteString("\n")
		sb.WriteString(s.Muted.Render(strings.ToUpper(g.Title)))
		sb.WriteString("\n")
		for _, o := range g.Options {
			box := "[ ]"
			if sel.Has(g.Facet, o.Value) {
				box = "[x]"
			}
			line := box + " " + o.Label
			switch {
			case ctx.SidebarFocused && idx == ctx.SidebarCursor:
				line = s.SidebarHot.Render("> " + line)
			default:
				line = s.Body.Render("  " + line)
			}
			sb.WriteString(line)
			sb.WriteString("\n")
			idx++
		}
	}
	if sel.Active() > 0 {
		sb.WriteString("\n")
		sb.WriteString(s.Link.Render("r  reset filters"))
	}
	return s.Sidebar.Width(width).Render(strings.TrimRight(sb.String(), "\n"))
}
