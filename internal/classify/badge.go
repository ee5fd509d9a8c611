package classify

// BadgeKind is the presentation bucket of a financial resource.
type BadgeKind int

const (
	Benefit BadgeKind = iota
	Limit
	Coverage
	Award
	Resource
)

func (k BadgeKind) String() string {
	switch k {
	case Benefit:
		return "Benefit"
	case Limit:
		return "Limit"
	case Coverage:
		return "Coverage"
	case Award:
		return "Award"
	default:
		return "Resource"
	}
}

// Tone names the colour family a badge or tag is drawn in.
type Tone string

const (
	ToneBlue   Tone = "blue"
	TonePurple Tone = "purple"
	ToneGreen  Tone = "green"
	ToneGray   Tone = "gray"
)

// Badge summarizes the monetary or coverage value of a resource for a card.
type Badge struct {
	Kind  BadgeKind
	Value string
	Tone  Tone
}

// Label is the badge heading, e.g. "Benefit".
func (b Badge) Label() string { return b.Kind.String() }

// ValueBadge classifies a resource by checking category substrings in
// priority order. It is total: every input yields a badge with a non-empty
// Value.
func ValueBadge(category string, min, max *float64) Badge {
	hasMax := max != nil && *max != 0

	switch {
	case Contains(category, "Government Benefits"):
		b := Badge{Kind: Benefit, Value: "Varies", Tone: ToneBlue}
		if hasMax {
			b.Value = Dollars(*max) + "/mo"
		}
		return b
	case Contains(category, "Savings"):
		b := Badge{Kind: Limit, Value: "Varies", Tone: ToneBlue}
		if hasMax {
			b.Value = Dollars(*max)
		}
		return b
	case Contains(category, "Insurance"), Contains(category, "Health"):
		return Badge{Kind: Coverage, Value: "Comprehensive", Tone: TonePurple}
	case Contains(category, "Grant"), Contains(category, "Scholarship"):
		return Badge{Kind: Award, Value: FormatAmount(min, max), Tone: ToneGreen}
	case hasMax:
		return Badge{Kind: Award, Value: FormatAmount(min, max), Tone: ToneGreen}
	}
	return Badge{Kind: Resource, Value: "Free", Tone: ToneGray}
}
