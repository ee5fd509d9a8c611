package filter

import "slices"

// Selection holds the chosen values per facet. Values keep the order in
// which they were chosen. The zero value is usable.
type Selection map[Facet][]string

// Toggle flips membership of value in facet.
func (s *Selection) Toggle(facet Facet, value string) {
	if *s == nil {
		*s = Selection{}
	}
	cur := (*s)[facet]
	if idx := slices.Index(cur, value); idx >= 0 {
		cur = slices.Delete(slices.Clone(cur), idx, idx+1)
	} else {
		cur = append(slices.Clone(cur), value)
	}
	if len(cur) == 0 {
		delete(*s, facet)
		return
	}
	(*s)[facet] = cur
}

// Has reports whether value is selected in facet.
func (s Selection) Has(facet Facet, value string) bool {
	return slices.Contains(s[facet], value)
}

// Values returns the chosen values for facet.
func (s Selection) Values(facet Facet) []string {
	return s[facet]
}

// Reset clears one facet, or every facet when none are named.
func (s Selection) Reset(facets ...Facet) {
	if len(facets) == 0 {
		clear(s)
		return
	}
	for _, f := range facets {
		delete(s, f)
	}
}

// Active counts selected values across all facets.
func (s Selection) Active() int {
	n := 0
	for _, v := range s {
		n += len(v)
	}
	return n
}

// Clone returns an independent copy.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for k, v := range s {
		out[k] = slices.Clone(v)
	}
	return out
}
