package views

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/glamour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"t21dir/cmd/t21dir/ui"
	"t21dir/internal/directory"
	"t21dir/internal/filter"
	"t21dir/internal/state"
)

func testData(t *testing.T) *directory.Collections {
	t.Helper()
	var financial []directory.Row
	for i := 1; i <= 12; i++ {
		financial = append(financial, directory.Row{
			"program_id":          fmt.Sprintf("F%d", i),
			"program_name":        fmt.Sprintf("Program %d", i),
			"program_category":    "Grant",
			"program_description": "Helps families.\n\nSecond paragraph.",
			"award_amount_min":    500.0,
			"award_amount_max":    2500.0,
			"website":             "example.org",
			"phone":               "(555) 123-4567",
		})
	}
	financial[0]["program_category"] = "Government Benefits"
	financial[0]["award_amount_max"] = 943.0
	financial[0]["real-world_context"] = "Apply early."

	therapy := []directory.Row{{
		"resource_id":          "T1",
		"resource_name":        "Speech Clinic",
		"organization_name":    "Kids Health",
		"organization_type":    "Hospital",
		"subcategories":        "Speech Therapy; Feeding; Occupational Therapy",
		"telehealth_available": "Yes",
		"cost_type":            "Free",
		"ds_experience_level":  "Expert",
	}}
	inspiration := []directory.Row{
		{"profile_id": "P1", "full_name": "chris nikic", "primary_field": "Athletics / Sports", "location_city": "Maitland", "location_state": "FL", "notable_quotes": "1% better", "speaking_available": "Yes"},
		{"profile_id": "P2", "full_name": "Madeline Stuart", "primary_field": "Modeling"},
	}
	c, dups := directory.Build(financial, therapy, inspiration)
	require.Empty(t, dups)
	return c
}

func newCtx() Context {
	return Context{Styles: ui.NewStyles(ui.LightTheme()), Width: 120}
}

func TestRender_Home(t *testing.T) {
	store := state.NewStore(testData(t), state.DefaultPageSizes, nil)
	out := Render(store.Snapshot(), newCtx()).Body

	assert.Contains(t, out, "Resources for the Down Syndrome Community")
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "Inspiring Individuals")
}

func TestResources_PaginationFooter(t *testing.T) {
	store := state.NewStore(testData(t), state.DefaultPageSizes, nil)
	store.Dispatch(state.Navigate{Page: state.PageResources})

	page := Render(store.Snapshot(), newCtx())
	assert.Contains(t, page.Body, "Showing 10 of 12 resources")
	assert.Contains(t, page.Body, "Load More (2 remaining)")
	assert.Contains(t, page.Body, "Financial & Benefits (12)")
	assert.Contains(t, page.Body, "Benefit $943/mo")

	store.Dispatch(state.LoadMore{List: state.ListFinancial})
	page = Render(store.Snapshot(), newCtx())
	assert.Contains(t, page.Body, "Showing 12 of 12 resources")
	assert.NotContains(t, page.Body, "Load More")
}

func TestResources_FocusLineFollowsCursor(t *testing.T) {
	store := state.NewStore(testData(t), state.DefaultPageSizes, nil)
	store.Dispatch(state.Navigate{Page: state.PageResources})
	snap := store.Snapshot()

	ctx := newCtx()
	first := Resources(snap, ctx).FocusLine
	ctx.Cursor = 3
	later := Resources(snap, ctx).FocusLine
	if later <= first {
		t.Errorf("focus line should move down with the cursor: %d -> %d", first, later)
	}
}

func TestResources_TherapyTab(t *testing.T) {
	store := state.NewStore(testData(t), state.DefaultPageSizes, nil)
	store.Dispatch(state.Navigate{Page: state.PageResources})
	store.Dispatch(state.SwitchTab{Tab: state.ListTherapy})

	out := Render(store.Snapshot(), newCtx()).Body
	assert.Contains(t, out, "Showing 1 of 1 services")
	assert.Contains(t, out, "Kids Health · Hospital")
	assert.Contains(t, out, "Speech Therapy")
	assert.Contains(t, out, "DS Expert")

	r, _ := store.Data().FindTherapy("T1")
	card := TherapyCard(r, newCtx().Styles, 80, false)
	assert.Contains(t, card, "Feeding")
	assert.NotContains(t, card, "Occupational Therapy", "cards show only the first two services")
	assert.Contains(t, card, "✓ Free")
}

func TestResources_EmptyResults(t *testing.T) {
	store := state.NewStore(testData(t), state.DefaultPageSizes, nil)
	store.Dispatch(state.Navigate{Page: state.PageResources})
	store.Dispatch(state.SetSearch{Query: "nothing matches this"})

	page := Render(store.Snapshot(), newCtx())
	assert.Contains(t, page.Body, "Showing 0 of 12 resources")
	assert.Contains(t, page.Body, "No matches")
	assert.Zero(t, page.FocusLine)
}

func TestSidebar(t *testing.T) {
	store := state.NewStore(testData(t), state.DefaultPageSizes, nil)
	store.Dispatch(state.ToggleFacet{List: state.ListFinancial, Facet: filter.FacetCategory, Value: "Grant"})
	snap := store.Snapshot()

	ctx := newCtx()
	ctx.SidebarFocused = true
	out := Sidebar(snap, state.ListFinancial, ctx, 30)
	assert.Contains(t, out, "Filters (1)")
	assert.Contains(t, out, "[x] Grants")
	assert.Contains(t, out, "> [")
	assert.Contains(t, out, "reset filters")

	store.Dispatch(state.ToggleSidebar{})
	rail := Sidebar(store.Snapshot(), state.ListFinancial, ctx, 3)
	assert.Contains(t, rail, "»")
	assert.NotContains(t, rail, "Filters")
}

func TestFacetItems(t *testing.T) {
	items := FacetItems(state.ListTherapy)
	require.NotEmpty(t, items)

	var n int
	for _, g := range state.ListTherapy.Facets() {
		n += len(g.Options)
	}
	assert.Len(t, items, n)
	assert.Equal(t, state.ListTherapy.Facets()[0].Facet, items[0].Facet)
}

func TestInspiration_Grid(t *testing.T) {
	store := state.NewStore(testData(t), state.DefaultPageSizes, nil)
	store.Dispatch(state.Navigate{Page: state.PageInspiration})

	out := Render(store.Snapshot(), newCtx()).Body
	assert.Contains(t, out, "Showing 2 of 2 individuals")
	assert.Contains(t, out, "CN")
	assert.Contains(t, out, "Athlete")
	assert.Contains(t, out, "Maitland, FL")
}

func TestDetail_NotFound(t *testing.T) {
	store := state.NewStore(testData(t), state.DefaultPageSizes, nil)

	store.Dispatch(state.ShowDetail{List: state.ListFinancial, ID: "missing"})
	assert.Contains(t, Render(store.Snapshot(), newCtx()).Body, "Resource not found")

	store.Dispatch(state.ShowDetail{List: state.ListInspiration, ID: "missing"})
	assert.Contains(t, Render(store.Snapshot(), newCtx()).Body, "Profile not found")
}

func TestFinancialDetail(t *testing.T) {
	data := testData(t)
	r, ok := data.FindFinancial("F1")
	require.True(t, ok)

	out := FinancialDetail(r, newCtx())
	for _, want := range []string{
		"Program 1",
		"Overview",
		"Second paragraph.",
		"Important Notes",
		"Apply early.",
		"Quick Info",
		"$943/mo",
		"All ages",
		"National",
		"https://example.org",
		"tel:5551234567",
		"No Income Limits",
	} {
		assert.Contains(t, out, want)
	}
}

func TestTherapyDetail(t *testing.T) {
	r, ok := testData(t).FindTherapy("T1")
	require.True(t, ok)

	out := TherapyDetail(r, newCtx())
	assert.Contains(t, out, "Services Offered")
	assert.Contains(t, out, "Occupational Therapy")
	assert.Contains(t, out, "Contact provider", "medicaid falls back")
	assert.Contains(t, out, "back to Healthcare & Therapy")
}

func TestInspirationDetail(t *testing.T) {
	p, ok := testData(t).FindInspiration("P1")
	require.True(t, ok)

	out := InspirationDetail(p, newCtx())
	assert.Contains(t, out, "Maitland, FL")
	assert.Contains(t, out, "“1% better”")
	assert.Contains(t, out, "— chris nikic")
	assert.Contains(t, out, "Speaking")
}

func TestLongText_Markdown(t *testing.T) {
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle("notty"), glamour.WithWordWrap(80))
	require.NoError(t, err)

	ctx := newCtx()
	ctx.Markdown = r
	out := longText(ctx, "First.\n\nSecond.")
	assert.Contains(t, out, "First.")
	assert.Contains(t, out, "Second.")
	assert.Empty(t, longText(ctx, "   "))

	ctx.Markdown = nil
	assert.Contains(t, longText(ctx, "plain"), "plain")
}

func TestLoadError(t *testing.T) {
	out := LoadError(errors.New("financial_resources: status 500"), newCtx())
	assert.Contains(t, out, "failed to load, please retry")
	assert.Contains(t, out, "status 500")
}

func TestHelpers(t *testing.T) {
	tests := []struct {
		cursor, n, want int
	}{
		{0, 0, -1},
		{-2, 3, 0},
		{5, 3, 2},
		{1, 3, 1},
	}
	for _, tt := range tests {
		if got := clampCursor(tt.cursor, tt.n); got != tt.want {
			t.Errorf("clampCursor(%d, %d) = %d, want %d", tt.cursor, tt.n, got, tt.want)
		}
	}
	if got := excerpt(strings.Repeat("a", 10), 4); got != "aaaa..." {
		t.Errorf("excerpt = %q", got)
	}
	if lineCount("") != 0 || lineCount("a\nb") != 2 {
		t.Error("lineCount mismatch")
	}
}
