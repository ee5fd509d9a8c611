package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"t21dir/cmd/t21dir/ui"
	"t21dir/cmd/t21dir/views"
	"t21dir/internal/classify"
	"t21dir/internal/directory"
	"t21dir/internal/filter"
	"t21dir/internal/state"
)

var (
	listSearch string
	listFacets []string
	listLimit  int
)

// listCmd prints a filtered list as a table
var listCmd = &cobra.Command{
	Use:   "list [financial|therapy|inspiration]",
	Short: "Print a filtered list",
	Long: `Prints one page of a list after applying the search and facet filters the
interactive browser offers.

Example:
  t21dir list financial --facet category=Grant --facet age=0-3
  t21dir list therapy --search speech --limit 0`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := state.ParseList(args[0])
		if err != nil {
			return err
		}
		data, err := loadDirectory()
		if err != nil {
			return err
		}
		return listRecords(cmd.OutOrStdout(), data, l, listOptions{
			Search: listSearch,
			Facets: listFacets,
			Limit:  listLimit,
			Sizes:  pageSizes(cfg),
		})
	},
}

// showCmd prints one detail page
var showCmd = &cobra.Command{
	Use:   "show [financial|therapy|inspiration] [id]",
	Short: "Print the detail page of one record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := state.ParseList(args[0])
		if err != nil {
			return err
		}
		data, err := loadDirectory()
		if err != nil {
			return err
		}
		return showRecord(cmd.OutOrStdout(), data, l, args[1], ui.NewStyles(ui.DetectTheme(cfg.UI.DarkMode)))
	},
}

// statsCmd prints collection sizes
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the size of each collection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := loadDirectory()
		if err != nil {
			return err
		}
		return printStats(cmd.OutOrStdout(), data)
	},
}

type listOptions struct {
	Search string
	Facets []string
	// Limit < 0 means one page, 0 means everything.
	Limit int
	Sizes state.PageSizes
}

// parseFacet splits name=value and checks the facet belongs to l.
func parseFacet(l state.List, raw string) (filter.Facet, string, error) {
	name, value, ok := strings.Cut(raw, "=")
	if !ok || strings.TrimSpace(value) == "" {
		return "", "", fmt.Errorf("facet %q: expected name=value", raw)
	}
	f := filter.Facet(strings.TrimSpace(name))
	for _, g := range l.Facets() {
		if g.Facet == f {
			return f, strings.TrimSpace(value), nil
		}
	}
	return "", "", fmt.Errorf("unknown facet %q for %s", f, l)
}

func listRecords(w io.Writer, data *directory.Collections, l state.List, opts listOptions) error {
	store := state.NewStore(data, opts.Sizes, nil)
	if l != state.ListInspiration {
		store.Dispatch(state.SetSearch{Query: opts.Search})
	}
	for _, raw := range opts.Facets {
		f, v, err := parseFacet(l, raw)
		if err != nil {
			return err
		}
		store.Dispatch(state.ToggleFacet{List: l, Facet: f, Value: v})
	}

	limit := opts.Limit
	if limit < 0 {
		limit = opts.Sizes.For(l)
	}
	snap := store.Snapshot()
	styles := ui.NewStyles(ui.LightTheme())

	var table *ui.SimpleTable
	var total, shown int
	switch l {
	case state.ListFinancial:
		rows := snap.FilteredFinancial()
		page := state.Paginate(rows, pick(limit, len(rows)))
		table = ui.NewSimpleTable("Financial & Benefits", "ID", "Name", "Category", "Value", "Coverage")
		for _, r := range page.Items {
			b := classify.ValueBadge(r.Category, r.AwardMin, r.AwardMax)
			table.AddRow(r.ID, r.Name, r.Category, b.Label()+" "+b.Value, r.GeographicCoverage)
		}
		total, shown = page.Total, page.Visible
	case state.ListTherapy:
		rows := snap.FilteredTherapy()
		page := state.Paginate(rows, pick(limit, len(rows)))
		table = ui.NewSimpleTable("Healthcare & Therapy", "ID", "Name", "Organization", "Services", "Telehealth")
		for _, r := range page.Items {
			table.AddRow(r.ID, r.Name, r.OrganizationName, strings.Join(r.Services(), ", "), r.Telehealth)
		}
		total, shown = page.Total, page.Visible
	case state.ListInspiration:
		rows := snap.FilteredInspiration()
		page := state.Paginate(rows, pick(limit, len(rows)))
		table = ui.NewSimpleTable("Inspiring Individuals", "ID", "Name", "Field", "Location")
		for _, r := range page.Items {
			table.AddRow(r.ID, r.DisplayName(), classify.NormalizeField(r.PrimaryField), r.Location(true))
		}
		total, shown = page.Total, page.Visible
	}

	table.MaxCell = 40
	if view := table.View(styles); view != "" {
		fmt.Fprintln(w, view)
	}
	fmt.Fprintf(w, "Showing %d of %d\n", shown, total)
	return nil
}

func pick(limit, n int) int {
	if limit == 0 {
		return n
	}
	return limit
}

func showRecord(w io.Writer, data *directory.Collections, l state.List, id string, styles ui.Styles) error {
	store := state.NewStore(data, state.DefaultPageSizes, nil)
	store.Dispatch(state.ShowDetail{List: l, ID: id})
	snap := store.Snapshot()

	var found bool
	switch l {
	case state.ListFinancial:
		_, found = data.FindFinancial(id)
	case state.ListTherapy:
		_, found = data.FindTherapy(id)
	case state.ListInspiration:
		_, found = data.FindInspiration(id)
	}
	if !found {
		return fmt.Errorf("%s %q not found", l, id)
	}

	fmt.Fprintln(w, views.Detail(snap, views.Context{Styles: styles, Width: 100}))
	return nil
}

func printStats(w io.Writer, data *directory.Collections) error {
	c := views.CountsOf(state.Snapshot{Data: data})
	table := ui.NewSimpleTable("T21 Directory", "Collection", "Records")
	table.AddRow("Financial Resources", fmt.Sprint(c.Financial))
	table.AddRow("Healthcare Services", fmt.Sprint(c.Therapy))
	table.AddRow("Inspiring Individuals", fmt.Sprint(c.Inspiration))
	fmt.Fprintln(w, table.View(ui.NewStyles(ui.LightTheme())))

	categories := make(map[string]int)
	var order []string
	for _, r := range data.Financial {
		if r.Category == "" {
			continue
		}
		if categories[r.Category] == 0 {
			order = append(order, r.Category)
		}
		categories[r.Category]++
	}
	if len(order) > 0 {
		byCat := ui.NewSimpleTable("Financial by category", "Category", "Records")
		for _, cat := range order {
			byCat.AddRow(cat, fmt.Sprint(categories[cat]))
		}
		fmt.Fprintln(w, byCat.View(ui.NewStyles(ui.LightTheme())))
	}
	return nil
}
