package directory

// Collections is the full in-memory directory. It is built once by the
// loader and never modified afterwards.
type Collections struct {
	Financial   []FinancialResource
	Therapy     []TherapyService
	Inspiration []InspirationProfile
}

// Duplicate records an id that appeared more than once in a collection.
// Only the first occurrence is kept.
type Duplicate struct {
	Collection string
	ID         string
}

// Build normalizes raw rows into Collections. Rows without a display name
// are skipped, matching the store import; rows repeating an id are dropped
// and reported.
func Build(financial, therapy, inspiration []Row) (*Collections, []Duplicate) {
	var dups []Duplicate

	c := &Collections{}
	c.Financial, dups = collect(financial, NewFinancialResource,
		func(f FinancialResource) (string, string) { return f.ID, f.Name }, "financial", dups)
	c.Therapy, dups = collect(therapy, NewTherapyService,
		func(t TherapyService) (string, string) { return t.ID, t.Name }, "therapy", dups)
	c.Inspiration, dups = collect(inspiration, NewInspirationProfile,
		func(p InspirationProfile) (string, string) { return p.ID, p.FullName }, "inspiration", dups)

	return c, dups
}

func collect[T any](rows []Row, build func(Row) T, key func(T) (id, name string), collection string, dups []Duplicate) ([]T, []Duplicate) {
	out := make([]T, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		rec := build(row)
		id, name := key(rec)
		if name == "" {
			continue
		}
		if id != "" {
			if seen[id] {
				dups = append(dups, Duplicate{Collection: collection, ID: id})
				continue
			}
			seen[id] = true
		}
		out = append(out, rec)
	}
	return out, dups
}

// FindFinancial looks a resource up by program id.
func (c *Collections) FindFinancial(id string) (FinancialResource, bool) {
	return find(c.Financial, id, func(f FinancialResource) string { return f.ID })
}

// FindTherapy looks a service up by resource id.
func (c *Collections) FindTherapy(id string) (TherapyService, bool) {
	return find(c.Therapy, id, func(t TherapyService) string { return t.ID })
}

// FindInspiration looks a profile up by profile id.
func (c *Collections) FindInspiration(id string) (InspirationProfile, bool) {
	return find(c.Inspiration, id, func(p InspirationProfile) string { return p.ID })
}

func find[T any](items []T, id string, key func(T) string) (T, bool) {
	var zero T
	if id == "" {
		return zero, false
	}
	for _, it := range items {
		if key(it) == id {
			return it, true
		}
	}
	return zero, false
}
