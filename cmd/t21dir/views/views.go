// Package views turns a state snapshot into terminal text. Every function
// here is stateless: the same snapshot and context always render the same
// page.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"t21dir/cmd/t21dir/ui"
	"t21dir/internal/state"
)

// Context carries what rendering needs besides the snapshot.
type Context struct {
	Styles ui.Styles
	Width  int

	// Cursor is the highlighted result on list pages.
	Cursor int
	// SidebarCursor indexes FacetItems of the active list.
	SidebarCursor  int
	SidebarFocused bool

	// Markdown renders long free text. Nil falls back to wrapped plain text.
	Markdown *glamour.TermRenderer
	// Cache memoizes Markdown output; may be nil.
	Cache *ui.RenderCache
}

// Page is a rendered page plus the line the highlighted item starts on, so
// the caller can keep it scrolled into view.
type Page struct {
	Body      string
	FocusLine int
}

// Render draws the current page of snap.
func Render(snap state.Snapshot, ctx Context) Page {
	switch snap.State.Page {
	case state.PageResources:
		return Resources(snap, ctx)
	case state.PageInspiration:
		return Inspiration(snap, ctx)
	case state.PageAbout:
		return Page{Body: About(ctx)}
	case state.PageDetail:
		return Page{Body: Detail(snap, ctx)}
	default:
		return Page{Body: Home(snap, ctx)}
	}
}

// ActiveList is the list the current page shows, if any.
func ActiveList(snap state.Snapshot) (state.List, bool) {
	switch snap.State.Page {
	case state.PageResources:
		return snap.State.Tab, true
	case state.PageInspiration:
		return state.ListInspiration, true
	}
	return 0, false
}

var navPages = []struct {
	page  state.Page
	label string
}{
	{state.PageHome, "1 Home"},
	{state.PageResources, "2 Resources"},
	{state.PageInspiration, "3 Inspiration"},
	{state.PageAbout, "4 About"},
}

// Header is the brand bar with page navigation.
func Header(page state.Page, ctx Context) string {
	s := ctx.Styles
	items := []string{s.Header.Render("T21")}
	for _, n := range navPages {
		if n.page == page {
			items = append(items, s.NavActive.Render(n.label))
			continue
		}
		items = append(items, s.NavItem.Render(n.label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, items...)
}

// LoadError replaces the whole shell when the startup load fails.
func LoadError(err error, ctx Context) string {
	s := ctx.Styles
	var sb strings.Builder
	sb.WriteString(s.Error.Render("failed to load, please retry"))
	sb.WriteString("\n\n")
	if err != nil {
		sb.WriteString(s.Muted.Width(max(ctx.Width-4, 20)).Render(err.Error()))
		sb.WriteString("\n\n")
	}
	sb.WriteString(s.Muted.Render("press q to quit"))
	return sb.String()
}

// longText renders free text through glamour, falling back to wrapped plain
// text when no renderer is set or rendering fails.
func longText(ctx Context, text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	plain := ctx.Styles.Body.Width(max(ctx.Width-2, 20)).Render(text)
	if ctx.Markdown == nil {
		return plain
	}
	return ctx.Cache.GetOrCompute(ui.ComputeKey(ctx.Width, text), func() (out string) {
		defer func() {
			if r := recover(); r != nil {
				out = plain
			}
		}()
		rendered, err := ctx.Markdown.Render(text)
		if err != nil {
			return plain
		}
		return strings.Trim(rendered, "\n")
	})
}

// NewMarkdown builds the detail-page renderer for a terminal width.
func NewMarkdown(width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(max(width-4, 20)),
	)
}

// showing is the results header of every list.
func showing(ctx Context, visible, total int, noun string) string {
	return ctx.Styles.Muted.Render(fmt.Sprintf("Showing %d of %d %s", visible, total, noun))
}

// loadMore is the load-more hint; empty when everything is visible.
func loadMore[T any](ctx Context, p state.PageView[T]) string {
	if !p.HasMore() {
		return ""
	}
	return ctx.Styles.Link.Render(fmt.Sprintf("Load More (%d remaining)", p.Remaining())) +
		ctx.Styles.Muted.Render("  press m")
}

// lineCount is the number of lines s occupies.
func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// clampCursor keeps a cursor within n items.
func clampCursor(cursor, n int) int {
	if n == 0 {
		return -1
	}
	return min(max(cursor, 0), n-1)
}

// excerpt cuts s to n runes and marks the cut.
func excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimRight(string(r[:n]), " ") + "..."
}
