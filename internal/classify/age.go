package classify

import "fmt"

// AgeBucket is one selectable age range in the financial sidebar.
type AgeBucket string

const (
	AgeInfant AgeBucket = "0-3"
	AgePre    AgeBucket = "3-5"
	AgeSchool AgeBucket = "5-18"
	AgeAdult  AgeBucket = "18+"
)

// Record bounds default to this range when absent.
const (
	DefaultAgeMin = 0
	DefaultAgeMax = 99
)

// AgeBuckets lists the buckets in sidebar order.
var AgeBuckets = []AgeBucket{AgeInfant, AgePre, AgeSchool, AgeAdult}

// ParseAgeBucket validates a bucket name.
func ParseAgeBucket(s string) (AgeBucket, error) {
	for _, b := range AgeBuckets {
		if string(b) == s {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown age bucket %q", s)
}

// bounds returns the closed interval a bucket covers.
func (b AgeBucket) bounds() (lo, hi int, ok bool) {
	switch b {
	case AgeInfant:
		return 0, 3, true
	case AgePre:
		return 3, 5, true
	case AgeSchool:
		return 5, 18, true
	case AgeAdult:
		return 18, DefaultAgeMax, true
	}
	return 0, 0, false
}

// Overlaps reports whether a record's [min, max] intersects the bucket.
// Absent bounds take the defaults; an unknown bucket never matches.
func (b AgeBucket) Overlaps(min, max *int) bool {
	lo, hi, ok := b.bounds()
	if !ok {
		return false
	}
	rmin, rmax := DefaultAgeMin, DefaultAgeMax
	if min != nil {
		rmin = *min
	}
	if max != nil {
		rmax = *max
	}
	if b == AgeAdult {
		return rmax >= lo
	}
	return rmin <= hi && rmax >= lo
}
