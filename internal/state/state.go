// Package state owns the browsing session: which page is showing, facet
// selections, the search query and the load-more cursors. All changes go
// through Store.Dispatch.
package state

import (
	"fmt"
	"strings"

	"t21dir/internal/filter"
)

// Page is a top-level destination.
type Page int

const (
	PageHome Page = iota
	PageResources
	PageInspiration
	PageAbout
	PageDetail
)

func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageResources:
		return "resources"
	case PageInspiration:
		return "inspiration"
	case PageAbout:
		return "about"
	case PageDetail:
		return "detail"
	default:
		return fmt.Sprintf("page(%d)", int(p))
	}
}

// List identifies one of the three paginated collections.
type List int

const (
	ListFinancial List = iota
	ListTherapy
	ListInspiration

	listCount
)

// Lists enumerates every list.
var Lists = []List{ListFinancial, ListTherapy, ListInspiration}

func (l List) String() string {
	switch l {
	case ListFinancial:
		return "financial"
	case ListTherapy:
		return "therapy"
	case ListInspiration:
		return "inspiration"
	default:
		return fmt.Sprintf("list(%d)", int(l))
	}
}

// ParseList accepts a list name or its common synonyms.
func ParseList(s string) (List, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "financial", "finance", "resources", "resource":
		return ListFinancial, nil
	case "therapy", "healthcare", "health":
		return ListTherapy, nil
	case "inspiration", "profiles", "profile":
		return ListInspiration, nil
	}
	return 0, fmt.Errorf("unknown list %q (want financial, therapy or inspiration)", s)
}

func (l List) valid() bool { return l >= 0 && l < listCount }

// Facets returns the sidebar catalog for the list.
func (l List) Facets() []filter.Group {
	switch l {
	case ListTherapy:
		return filter.TherapyFacets
	case ListInspiration:
		return filter.InspirationFacets
	default:
		return filter.FinancialFacets
	}
}

// PageSizes is the load-more increment per list.
type PageSizes struct {
	Financial   int
	Therapy     int
	Inspiration int
}

// DefaultPageSizes matches the card grid: 10 rows per resource list, 12
// profile cards.
var DefaultPageSizes = PageSizes{Financial: 10, Therapy: 10, Inspiration: 12}

// For returns the size for a list, falling back to the default when unset.
func (p PageSizes) For(l List) int {
	var n, def int
	switch l {
	case ListTherapy:
		n, def = p.Therapy, DefaultPageSizes.Therapy
	case ListInspiration:
		n, def = p.Inspiration, DefaultPageSizes.Inspiration
	default:
		n, def = p.Financial, DefaultPageSizes.Financial
	}
	if n <= 0 {
		return def
	}
	return n
}

// Detail is the target of the detail page.
type Detail struct {
	List List
	ID   string
}

// State is the whole mutable session. Copies obtained from a Store share
// nothing with it.
type State struct {
	Page             Page
	Detail           Detail
	Tab              List
	SidebarCollapsed bool
	Search           string
	Selections       [listCount]filter.Selection
	Visible          [listCount]int
}

// newState returns the startup state with every cursor at one page.
func newState(sizes PageSizes) State {
	s := State{Page: PageHome, Tab: ListFinancial}
	for _, l := range Lists {
		s.Selections[l] = filter.Selection{}
		s.Visible[l] = sizes.For(l)
	}
	return s
}

func (s State) clone() State {
	out := s
	for _, l := range Lists {
		out.Selections[l] = s.Selections[l].Clone()
	}
	return out
}

// Selection returns the facet selection of a list.
func (s State) Selection(l List) filter.Selection {
	if !l.valid() {
		return nil
	}
	return s.Selections[l]
}
