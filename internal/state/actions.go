package state

import (
	"strings"

	"t21dir/internal/filter"
)

// Action is one atomic user intent. apply mutates s and reports whether
// anything changed.
type Action interface {
	apply(s *State, env *env) bool
}

// env is what actions may read besides the state.
type env struct {
	sizes PageSizes
	total func(List) int
}

// Navigate shows a top-level page and clears any detail target.
type Navigate struct{ Page Page }

func (a Navigate) apply(s *State, _ *env) bool {
	if a.Page == PageDetail || a.Page < PageHome || a.Page > PageDetail {
		return false
	}
	if s.Page == a.Page && s.Detail == (Detail{}) {
		return false
	}
	s.Page = a.Page
	s.Detail = Detail{}
	return true
}

// ShowDetail opens the detail page of one record. The id is not checked;
// a missing record renders as not found.
type ShowDetail struct {
	List List
	ID   string
}

func (a ShowDetail) apply(s *State, _ *env) bool {
	if !a.List.valid() {
		return false
	}
	target := Detail{List: a.List, ID: a.ID}
	if s.Page == PageDetail && s.Detail == target {
		return false
	}
	s.Page = PageDetail
	s.Detail = target
	return true
}

// SwitchTab selects the financial or therapy tab of the resources page.
type SwitchTab struct{ Tab List }

func (a SwitchTab) apply(s *State, _ *env) bool {
	if a.Tab != ListFinancial && a.Tab != ListTherapy {
		return false
	}
	if s.Tab == a.Tab {
		return false
	}
	s.Tab = a.Tab
	return true
}

// ToggleSidebar collapses or expands the filter sidebar.
type ToggleSidebar struct{}

func (ToggleSidebar) apply(s *State, _ *env) bool {
	s.SidebarCollapsed = !s.SidebarCollapsed
	return true
}

// ExpandSidebar opens the sidebar if it is collapsed.
type ExpandSidebar struct{}

func (ExpandSidebar) apply(s *State, _ *env) bool {
	if !s.SidebarCollapsed {
		return false
	}
	s.SidebarCollapsed = false
	return true
}

// ToggleFacet flips one value in a list's facet selection and rewinds that
// list to its first page.
type ToggleFacet struct {
	List  List
	Facet filter.Facet
	Value string
}

func (a ToggleFacet) apply(s *State, e *env) bool {
	if !a.List.valid() || a.Value == "" {
		return false
	}
	sel := s.Selections[a.List]
	sel.Toggle(a.Facet, a.Value)
	s.Selections[a.List] = sel
	s.Visible[a.List] = e.sizes.For(a.List)
	return true
}

// ResetFacets clears every facet of a list.
type ResetFacets struct{ List List }

func (a ResetFacets) apply(s *State, e *env) bool {
	if !a.List.valid() || s.Selections[a.List].Active() == 0 {
		return false
	}
	s.Selections[a.List] = filter.Selection{}
	s.Visible[a.List] = e.sizes.For(a.List)
	return true
}

// SetSearch replaces the search query. The query is stored lower-cased;
// changing it rewinds both searchable lists.
type SetSearch struct{ Query string }

func (a SetSearch) apply(s *State, e *env) bool {
	q := strings.ToLower(a.Query)
	if q == s.Search {
		return false
	}
	s.Search = q
	s.Visible[ListFinancial] = e.sizes.For(ListFinancial)
	s.Visible[ListTherapy] = e.sizes.For(ListTherapy)
	return true
}

// LoadMore reveals one more page of a list. It does nothing once every
// filtered record is visible.
type LoadMore struct{ List List }

func (a LoadMore) apply(s *State, e *env) bool {
	if !a.List.valid() {
		return false
	}
	if s.Visible[a.List] >= e.total(a.List) {
		return false
	}
	s.Visible[a.List] += e.sizes.For(a.List)
	return true
}
