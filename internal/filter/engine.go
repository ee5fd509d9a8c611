package filter

import (
	"slices"
	"strings"

	"t21dir/internal/classify"
	"t21dir/internal/directory"
)

// Predicate decides whether a record stays in the result.
type Predicate[T any] func(T) bool

// Apply keeps records satisfying every predicate, in input order. A nil
// predicate is skipped.
func Apply[T any](records []T, preds ...Predicate[T]) []T {
	preds = slices.DeleteFunc(slices.Clone(preds), func(p Predicate[T]) bool { return p == nil })
	out := make([]T, 0, len(records))
	for _, r := range records {
		if all(r, preds) {
			out = append(out, r)
		}
	}
	return out
}

func all[T any](r T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}

// search matches a lower-cased query against the fields text returns.
// An empty query yields a nil predicate.
func search[T any](query string, text func(T) []string) Predicate[T] {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	return func(r T) bool {
		for _, field := range text(r) {
			if strings.Contains(strings.ToLower(field), q) {
				return true
			}
		}
		return false
	}
}

// anyOf ORs match across the facet's chosen values. An empty facet yields a
// nil predicate.
func anyOf[T any](values []string, match func(T, string) bool) Predicate[T] {
	if len(values) == 0 {
		return nil
	}
	return func(r T) bool {
		for _, v := range values {
			if match(r, v) {
				return true
			}
		}
		return false
	}
}

// Financial filters financial resources by search and the financial facets.
func Financial(records []directory.FinancialResource, query string, sel Selection) []directory.FinancialResource {
	type rec = directory.FinancialResource
	return Apply(records,
		search(query, func(r rec) []string { return []string{r.Name, r.Description, r.Category} }),
		anyOf(sel[FacetCategory], func(r rec, v string) bool { return classify.Contains(r.Category, v) }),
		anyOf(sel[FacetCoverage], func(r rec, v string) bool { return r.GeographicCoverage == v }),
		anyOf(sel[FacetIncome], func(r rec, v string) bool { return v == "no" && classify.NoIncomeLimit(r.IncomeLimit) }),
		anyOf(sel[FacetAge], func(r rec, v string) bool { return classify.AgeBucket(v).Overlaps(r.AgeMin, r.AgeMax) }),
	)
}

// Therapy filters therapy services by search and the therapy facets.
func Therapy(records []directory.TherapyService, query string, sel Selection) []directory.TherapyService {
	type rec = directory.TherapyService
	return Apply(records,
		search(query, func(r rec) []string { return []string{r.Name, r.ShortDescription, r.Subcategories} }),
		anyOf(sel[FacetServiceType], func(r rec, v string) bool { return classify.Contains(r.Subcategories, v) }),
		anyOf(sel[FacetTelehealth], func(r rec, v string) bool { return classify.TelehealthMatches(r.Telehealth, v) }),
		anyOf(sel[FacetJurisdiction], func(r rec, v string) bool { return r.JurisdictionLevel == v }),
	)
}

// Inspiration filters profiles by the inspiration facets. Profiles have no
// search box.
func Inspiration(records []directory.InspirationProfile, sel Selection) []directory.InspirationProfile {
	type rec = directory.InspirationProfile
	return Apply(records,
		anyOf(sel[FacetField], func(r rec, v string) bool { return classify.SameField(r.PrimaryField, v) }),
		anyOf(sel[FacetCountry], func(r rec, v string) bool { return classify.CountryLabel(r.Country) == v }),
	)
}
