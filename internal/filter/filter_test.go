package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"t21dir/internal/classify"
	"t21dir/internal/directory"
)

func intp(v int) *int { return &v }

func financialFixture() []directory.FinancialResource {
	return []directory.FinancialResource{
		{ID: "F1", Name: "Hope Grant", Category: "Grant Program", GeographicCoverage: "National", IncomeLimit: "None"},
		{ID: "F2", Name: "SSI", Category: "SSI Benefits (Government Benefits)", GeographicCoverage: "National",
			IncomeLimit: "Strict", AgeMin: intp(0), AgeMax: intp(17)},
		{ID: "F3", Name: "ABLE Account", Category: "529 Savings", Description: "Tax advantaged savings",
			GeographicCoverage: "State", AgeMin: intp(4), AgeMax: intp(10)},
	}
}

func ids[T any](records []T, id func(T) string) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, id(r))
	}
	return out
}

func finIDs(rs []directory.FinancialResource) []string {
	return ids(rs, func(r directory.FinancialResource) string { return r.ID })
}

func TestFinancial_CategoryScenario(t *testing.T) {
	records := financialFixture()

	var sel Selection
	sel.Toggle(FacetCategory, "Grant")
	assert.Equal(t, []string{"F1"}, finIDs(Financial(records, "", sel)))

	sel.Reset()
	sel.Toggle(FacetCategory, "Government Benefits")
	got := Financial(records, "", sel)
	assert.Equal(t, []string{"F2"}, finIDs(got))
	assert.Equal(t, "Benefit", classify.ValueBadge(got[0].Category, got[0].AwardMin, got[0].AwardMax).Label())

	sel.Reset()
	if diff := cmp.Diff(records, Financial(records, "", sel)); diff != "" {
		t.Errorf("cleared facets should return everything in order (-want +got):\n%s", diff)
	}
}

func TestFinancial_Search(t *testing.T) {
	records := financialFixture()

	assert.Equal(t, []string{"F1", "F2", "F3"}, finIDs(Financial(records, "", nil)))
	assert.Equal(t, []string{"F3"}, finIDs(Financial(records, "able ACC", nil)))
	assert.Equal(t, []string{"F3"}, finIDs(Financial(records, "ADVANTAGED", nil)), "description is searched")
	assert.Equal(t, []string{"F2"}, finIDs(Financial(records, "government", nil)), "category is searched")
	assert.Empty(t, Financial(records, "zzz", nil))
}

func TestFinancial_OrWithinAndAcross(t *testing.T) {
	records := financialFixture()

	var sel Selection
	sel.Toggle(FacetCategory, "Grant")
	sel.Toggle(FacetCategory, "Savings")
	assert.Equal(t, []string{"F1", "F3"}, finIDs(Financial(records, "", sel)), "union within a facet")

	sel.Toggle(FacetCoverage, "National")
	assert.Equal(t, []string{"F1"}, finIDs(Financial(records, "", sel)), "intersection across facets")
}

func TestFinancial_AgeAndIncome(t *testing.T) {
	records := financialFixture()

	var sel Selection
	sel.Toggle(FacetAge, "3-5")
	assert.Equal(t, []string{"F1", "F2", "F3"}, finIDs(Financial(records, "", sel)))

	records[2].AgeMin = intp(6)
	assert.Equal(t, []string{"F1", "F2"}, finIDs(Financial(records, "", sel)))

	sel.Reset(FacetAge)
	sel.Toggle(FacetAge, "18+")
	assert.Equal(t, []string{"F1"}, finIDs(Financial(records, "", sel)))

	sel.Reset()
	sel.Toggle(FacetIncome, "no")
	assert.Equal(t, []string{"F1", "F3"}, finIDs(Financial(records, "", sel)))
}

func TestFinancial_Idempotent(t *testing.T) {
	records := financialFixture()
	selections := []Selection{
		nil,
		{FacetCategory: {"Grant", "Savings"}},
		{FacetAge: {"0-3"}, FacetCoverage: {"National"}},
		{FacetIncome: {"no"}},
	}
	for _, sel := range selections {
		once := Financial(records, "a", sel)
		twice := Financial(once, "a", sel)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("filter not idempotent for %v (-once +twice):\n%s", sel, diff)
		}
	}
}

func TestTherapy(t *testing.T) {
	records := []directory.TherapyService{
		{ID: "T1", Name: "Speech Clinic", Subcategories: "Speech Therapy; Telehealth", Telehealth: "Yes", JurisdictionLevel: "State"},
		{ID: "T2", Name: "Move Well", Subcategories: "Physical Therapy", Telehealth: "No", JurisdictionLevel: "National"},
		{ID: "T3", Name: "DS Center", ShortDescription: "Multidisciplinary", Subcategories: "DS Specialty Clinics", JurisdictionLevel: "Regional"},
	}
	tIDs := func(rs []directory.TherapyService) []string {
		return ids(rs, func(r directory.TherapyService) string { return r.ID })
	}

	assert.Equal(t, []string{"T3"}, tIDs(Therapy(records, "multi", nil)))
	assert.Equal(t, []string{"T1"}, tIDs(Therapy(records, "telehealth", nil)))

	var sel Selection
	sel.Toggle(FacetServiceType, "Speech")
	sel.Toggle(FacetServiceType, "Physical")
	assert.Equal(t, []string{"T1", "T2"}, tIDs(Therapy(records, "", sel)))

	sel.Toggle(FacetTelehealth, "Yes")
	assert.Equal(t, []string{"T1"}, tIDs(Therapy(records, "", sel)))

	sel.Reset()
	sel.Toggle(FacetJurisdiction, "Regional")
	assert.Equal(t, []string{"T3"}, tIDs(Therapy(records, "", sel)))
}

func TestInspiration(t *testing.T) {
	records := []directory.InspirationProfile{
		{ID: "P1", FullName: "A", PrimaryField: "Performing Arts / Theater", Country: "USA"},
		{ID: "P2", FullName: "B", PrimaryField: "Athlete", Country: "Australia"},
		{ID: "P3", FullName: "C", PrimaryField: "Modeling"},
	}
	pIDs := func(rs []directory.InspirationProfile) []string {
		return ids(rs, func(r directory.InspirationProfile) string { return r.ID })
	}

	var sel Selection
	sel.Toggle(FacetField, "Performing Arts")
	assert.Equal(t, []string{"P1"}, pIDs(Inspiration(records, sel)))

	sel.Reset()
	sel.Toggle(FacetCountry, "United States")
	assert.Equal(t, []string{"P1", "P3"}, pIDs(Inspiration(records, sel)))

	sel.Toggle(FacetField, "Athlete")
	assert.Empty(t, Inspiration(records, sel))
}

func TestSelection(t *testing.T) {
	var sel Selection
	assert.Zero(t, sel.Active())
	assert.False(t, sel.Has(FacetAge, "0-3"))

	sel.Toggle(FacetAge, "0-3")
	sel.Toggle(FacetAge, "18+")
	sel.Toggle(FacetField, "Artist")
	assert.Equal(t, 3, sel.Active())
	assert.Equal(t, []string{"0-3", "18+"}, sel.Values(FacetAge))

	clone := sel.Clone()
	sel.Toggle(FacetAge, "0-3")
	assert.Equal(t, []string{"18+"}, sel.Values(FacetAge))
	assert.Equal(t, []string{"0-3", "18+"}, clone.Values(FacetAge), "clone is independent")

	sel.Toggle(FacetAge, "18+")
	_, present := sel[FacetAge]
	assert.False(t, present, "emptied facet is removed")

	sel.Reset(FacetField)
	assert.Zero(t, sel.Active())
}

func TestCatalogs(t *testing.T) {
	for _, groups := range [][]Group{FinancialFacets, TherapyFacets, InspirationFacets} {
		for _, g := range groups {
			assert.NotEmpty(t, g.Title)
			assert.NotEmpty(t, g.Options, g.Facet)
		}
	}
	for _, o := range FinancialFacets[1].Options {
		_, err := classify.ParseAgeBucket(o.Value)
		assert.NoError(t, err)
	}
}
