// Package filter derives the visible subset of each collection from a search
// query and facet selections. Every function here is pure and keeps the
// collection's original order.
package filter

// Facet names a filter dimension.
type Facet string

const (
	FacetCategory     Facet = "category"
	FacetAge          Facet = "age"
	FacetCoverage     Facet = "coverage"
	FacetIncome       Facet = "income"
	FacetServiceType  Facet = "service_type"
	FacetTelehealth   Facet = "telehealth"
	FacetJurisdiction Facet = "jurisdiction"
	FacetField        Facet = "field"
	FacetCountry      Facet = "country"
)

// Option is one selectable value. Value is what gets matched, Label what the
// sidebar shows.
type Option struct {
	Value string
	Label string
}

// Group is a titled facet with its options, in sidebar order.
type Group struct {
	Facet   Facet
	Title   string
	Options []Option
}

func opts(pairs ...string) []Option {
	out := make([]Option, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Option{Value: pairs[i], Label: pairs[i+1]})
	}
	return out
}

// FinancialFacets is the financial sidebar.
var FinancialFacets = []Group{
	{FacetCategory, "Resource Type", opts(
		"Government Benefits", "Government Benefits",
		"Savings", "Savings Programs",
		"Grant", "Grants",
		"Scholarship", "Scholarships",
		"Insurance", "Health Insurance",
	)},
	{FacetAge, "Age Range", opts(
		"0-3", "Birth–3",
		"3-5", "3–5 Years",
		"5-18", "5–18 Years",
		"18+", "18+ Adults",
	)},
	{FacetCoverage, "Coverage", opts(
		"National", "National",
		"Multi-State", "Multi-State",
		"State", "State",
	)},
	{FacetIncome, "Income Requirements", opts(
		"no", "No Income Limits",
	)},
}

// TherapyFacets is the therapy sidebar.
var TherapyFacets = []Group{
	{FacetServiceType, "Service Type", opts(
		"DS Specialty Clinics", "DS Specialty Clinics",
		"Speech", "Speech Therapy",
		"Physical", "Physical Therapy",
		"Occupational", "Occupational Therapy",
		"Telehealth", "Telehealth Services",
	)},
	{FacetTelehealth, "Telehealth", opts(
		"Yes", "Available",
	)},
	{FacetJurisdiction, "Coverage", opts(
		"National", "National",
		"Regional", "Regional",
		"State", "State",
	)},
}

// InspirationFacets is the inspiration sidebar.
var InspirationFacets = []Group{
	{FacetField, "Field", opts(
		"Artist", "Artist",
		"Athlete", "Athlete",
		"Entrepreneur", "Entrepreneur",
		"Modeling", "Modeling",
		"Performing Arts", "Performing Arts",
	)},
	{FacetCountry, "Country", opts(
		"United States", "United States",
		"Australia", "Australia",
	)},
}

// SortOptions are the labels of the sort control. Sorting is not applied;
// results always keep collection order.
var SortOptions = []string{"Most Relevant", "Name (A-Z)", "Amount (High to Low)"}
