package classify

import (
	"strconv"
	"strings"
)

var fieldAliases = map[string]string{
	"Performing Arts / Theater":   "Performing Arts",
	"Entrepreneurship / Business": "Entrepreneur",
	"Athletics / Sports":          "Athlete",
	"Arts / Visual Arts":          "Artist",
}

// NormalizeField maps a free-text primary field onto its canonical label.
// Unknown values pass through trimmed.
func NormalizeField(field string) string {
	field = strings.TrimSpace(field)
	if canonical, ok := fieldAliases[field]; ok {
		return canonical
	}
	return field
}

// SameField compares two field values after normalization.
func SameField(a, b string) bool {
	return NormalizeField(a) == NormalizeField(b)
}

// Palette is a background/foreground hex pair.
type Palette struct {
	Background string
	Foreground string
}

var fieldPalettes = map[string]Palette{
	"Performing Arts": {"#f3e8ff", "#7c3aed"},
	"Entrepreneur":    {"#d1fae5", "#059669"},
	"Athlete":         {"#ffedd5", "#ea580c"},
	"Artist":          {"#e0e7ff", "#4f46e5"},
	"Modeling":        {"#fce7f3", "#db2777"},
}

var defaultPalette = Palette{"#f3f4f6", "#374151"}

// FieldPalette returns the badge colours for a primary field.
func FieldPalette(field string) Palette {
	if p, ok := fieldPalettes[NormalizeField(field)]; ok {
		return p
	}
	return defaultPalette
}

// CountryLabel treats a blank country and "USA" as United States.
func CountryLabel(country string) string {
	country = strings.TrimSpace(country)
	if country == "" || country == "USA" {
		return "United States"
	}
	return country
}

// NoIncomeLimit reports whether an income-limit column means "no limit".
// Only a blank value or the literal "None" qualify; anything else, including
// prose such as "none for SSI recipients", is treated as a limit.
func NoIncomeLimit(limit string) bool {
	limit = strings.TrimSpace(limit)
	return limit == "" || limit == "None"
}

// TelehealthMatches applies a telehealth facet label to the free-text
// availability column. Labels other than Yes and No impose no constraint.
func TelehealthMatches(value, label string) bool {
	v := strings.ToLower(value)
	switch label {
	case "Yes":
		return strings.Contains(v, "yes")
	case "No":
		return strings.Contains(v, "no")
	}
	return true
}

// OffersTelehealth is the card badge test.
func OffersTelehealth(value string) bool {
	return TelehealthMatches(value, "Yes")
}

// IsFree reports whether a therapy cost type is free.
func IsFree(costType string) bool {
	return strings.EqualFold(strings.TrimSpace(costType), "free")
}

// IsExpert reports whether a DS experience level marks an expert provider.
func IsExpert(level string) bool {
	return strings.Contains(level, "Expert")
}

// AgeRangeLabel renders an age interval for detail pages.
func AgeRangeLabel(min, max *int) string {
	if min == nil {
		return "All ages"
	}
	lo := strconv.Itoa(*min)
	if *min == 0 {
		lo = "Birth"
	}
	hi := "All ages"
	if max != nil && *max < 99 {
		hi = strconv.Itoa(*max) + " years"
	}
	return lo + " – " + hi
}
