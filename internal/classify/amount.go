// Package classify holds every free-text policy the directory applies to
// record fields: amount formatting, value badges, category and field
// matching, age buckets and the small yes/no columns.
package classify

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// Dollars formats an amount with thousands separators.
func Dollars(v float64) string {
	return "$" + humanize.Commaf(v)
}

// FormatAmount renders an award range.
//
//	absent or zero max, absent min   FREE
//	min == max                       $N
//	absent or zero min               Up to $max
//	absent max                       From $min
//	otherwise                        $min–$max
func FormatAmount(min, max *float64) string {
	hasMin := min != nil && *min != 0
	hasMax := max != nil && *max != 0

	switch {
	case !hasMin && !hasMax:
		return "FREE"
	case max != nil && *max == 0:
		return "FREE"
	case hasMin && hasMax && *min == *max:
		return Dollars(*max)
	case !hasMin:
		return "Up to " + Dollars(*max)
	case !hasMax:
		return "From " + Dollars(*min)
	}
	return Dollars(*min) + "–" + Dollars(*max)
}

// Contains reports whether category contains label. Category text is free
// form, so membership is always substring containment.
func Contains(category, label string) bool {
	return label != "" && strings.Contains(category, label)
}
