package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"t21dir/cmd/t21dir/ui"
	"t21dir/internal/classify"
	"t21dir/internal/directory"
	"t21dir/internal/filter"
	"t21dir/internal/state"
)

// Resources is the financial/therapy page: sidebar on the left, the active
// tab's results on the right.
func Resources(snap state.Snapshot, ctx Context) Page {
	s := ctx.Styles
	layout := ui.NewLayoutConfig(ctx.Width, 0)
	sideW := layout.SidebarWidth(snap.State.SidebarCollapsed)
	mainW := layout.MainWidth(snap.State.SidebarCollapsed)

	var head strings.Builder
	head.WriteString(s.Title.Render("Resources Directory"))
	head.WriteString("\n")
	head.WriteString(tabs(snap, ctx))
	head.WriteString("\n\n")

	var cards []string
	var footer string
	if snap.State.Tab == state.ListTherapy {
		p := snap.TherapyPage()
		head.WriteString(showing(ctx, p.Visible, p.Total, "services"))
		cursor := clampCursor(ctx.Cursor, len(p.Items))
		for i, r := range p.Items {
			cards = append(cards, TherapyCard(r, s, mainW, !ctx.SidebarFocused && i == cursor))
		}
		footer = loadMore(ctx, p)
	} else {
		p := snap.FinancialPage()
		head.WriteString(showing(ctx, p.Visible, p.Total, "resources"))
		cursor := clampCursor(ctx.Cursor, len(p.Items))
		for i, r := range p.Items {
			cards = append(cards, FinancialCard(r, s, mainW, !ctx.SidebarFocused && i == cursor))
		}
		footer = loadMore(ctx, p)
	}
	head.WriteString(s.Muted.Render("   Sort by: " + filter.SortOptions[0]))

	main, focus := stack(head.String(), cards, clampCursor(ctx.Cursor, len(cards)), emptyResults(ctx, len(cards)), footer)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		Sidebar(snap, snap.State.Tab, ctx, sideW),
		" ",
		lipgloss.NewStyle().Width(mainW).Render(main),
	)
	return Page{Body: body, FocusLine: focus}
}

func tabs(snap state.Snapshot, ctx Context) string {
	s := ctx.Styles
	tab := func(l state.List, label string, n int) string {
		text := fmt.Sprintf("%s (%d)", label, n)
		if snap.State.Tab == l {
			return s.NavActive.Render(text)
		}
		return s.NavItem.Render(text)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		tab(state.ListFinancial, "Financial & Benefits", len(snap.Data.Financial)),
		tab(state.ListTherapy, "Healthcare & Therapy", len(snap.Data.Therapy)),
		s.Muted.Render("  tab to switch"),
	)
}

func emptyResults(ctx Context, n int) string {
	if n > 0 {
		return ""
	}
	return ctx.Styles.Muted.Render("No matches. Try removing a filter or clearing the search.")
}

// stack joins a header, cards and a footer vertically and reports the line
// the focused card starts on.
func stack(head string, cards []string, focused int, empty, footer string) (string, int) {
	var sb strings.Builder
	sb.WriteString(head)
	sb.WriteString("\n\n")
	line := lineCount(head) + 1
	focus := 0
	for i, c := range cards {
		if i == focused {
			focus = line
		}
		sb.WriteString(c)
		sb.WriteString("\n")
		line += lineCount(c)
	}
	if empty != "" {
		sb.WriteString(empty)
		sb.WriteString("\n")
	}
	if footer != "" {
		sb.WriteString("\n")
		sb.WriteString(footer)
	}
	return strings.TrimRight(sb.String(), "\n"), focus
}

// FinancialCard is the list entry of a financial resource.
func FinancialCard(r directory.FinancialResource, s ui.Styles, width int, selected bool) string {
	badge := classify.ValueBadge(r.Category, r.AwardMin, r.AwardMax)
	inner := max(width-4, 20)

	title := s.Muted.Render("Financial") + "  " + s.Bold.Render(r.Name)
	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", s.Badge(badge)),
	}
	if r.OrganizationType != "" {
		lines = append(lines, s.Muted.Render(r.OrganizationType))
	}
	if r.Description != "" {
		lines = append(lines, s.Body.Width(inner).Render(excerpt(r.Description, ui.CardExcerptLength)))
	}
	var tags []string
	for _, t := range []string{r.Category, r.GeographicCoverage} {
		if t != "" {
			tags = append(tags, s.Tag.Render(t))
		}
	}
	if classify.NoIncomeLimit(r.IncomeLimit) {
		tags = append(tags, s.TagHighlight.Render("No Income Limits"))
	}
	if len(tags) > 0 {
		lines = append(lines, strings.Join(tags, ""))
	}
	return card(s, width, selected, lines)
}

// TherapyCard is the list entry of a therapy service.
func TherapyCard(r directory.TherapyService, s ui.Styles, width int, selected bool) string {
	inner := max(width-4, 20)

	lines := []string{s.Muted.Render("Healthcare") + "  " + s.Bold.Render(r.Name)}
	org := strings.Join(nonEmpty(r.OrganizationName, r.OrganizationType), " · ")
	if org != "" {
		lines = append(lines, s.Muted.Render(org))
	}
	if r.ShortDescription != "" {
		lines = append(lines, s.Body.Width(inner).Render(r.ShortDescription))
	}

	var tags []string
	services := r.Services()
	if len(services) > 2 {
		services = services[:2]
	}
	for _, svc := range services {
		tags = append(tags, s.Tag.Render(svc))
	}
	tags = append(tags, s.Tag.Render(orDefault(r.JurisdictionLevel, "National")))
	lines = append(lines, strings.Join(tags, ""))

	var badges []string
	if classify.OffersTelehealth(r.Telehealth) {
		badges = append(badges, s.TagHighlight.Render("Telehealth"))
	}
	if classify.IsFree(r.CostType) {
		badges = append(badges, s.TagHighlight.Render("✓ Free"))
	}
	if classify.IsExpert(r.ExperienceLevel) {
		badges = append(badges, s.TagHighlight.Render("★ DS Expert"))
	}
	if len(badges) > 0 {
		lines = append(lines, strings.Join(badges, ""))
	}
	return card(s, width, selected, lines)
}

func card(s ui.Styles, width int, selected bool, lines []string) string {
	st := s.Card
	if selected {
		st = s.CardSelected
	}
	return st.Width(max(width-2, 20)).Render(strings.Join(lines, "\n"))
}

func nonEmpty(vals ...string) []string {
	var out []string
	for _, v := range vals {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
