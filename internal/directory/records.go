// Package directory holds the three listing collections browsed by t21dir
// and the normalization from raw store rows into typed records.
package directory

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Column aliases. The hosted store renamed several spreadsheet columns; the
// first non-empty alias wins.
var (
	aliasKeyFeatures      = []string{"key_features", "key_features_&_benefits"}
	aliasRealWorldContext = []string{"real_world_context", "real-world_context"}
	aliasKnownAs          = []string{"known_as", "known_as___stage_name"}
	aliasAwards           = []string{"awards_honors", "awards_&_honors"}
)

// FinancialResource is a grant, benefit, savings program, scholarship or
// insurance program.
type FinancialResource struct {
	ID                  string
	Name                string
	OrganizationType    string
	Description         string
	Category            string
	GeographicCoverage  string
	StatesAvailable     string
	IncomeLimit         string
	AgeMin              *int
	AgeMax              *int
	AwardMin            *float64
	AwardMax            *float64
	AnnualCap           *float64
	ApplicationProcess  string
	ApplicationDeadline string
	ProcessingTime      string
	KeyFeatures         string
	RealWorldContext    string
	Website             string
	Phone               string
}

// NewFinancialResource normalizes a financial_resources row.
func NewFinancialResource(r Row) FinancialResource {
	return FinancialResource{
		ID:                  r.String("program_id"),
		Name:                r.Text("program_name"),
		OrganizationType:    r.Text("organization_type"),
		Description:         r.Text("program_description"),
		Category:            r.Text("program_category"),
		GeographicCoverage:  r.String("geographic_coverage"),
		StatesAvailable:     r.Text("states_available"),
		IncomeLimit:         r.String("income_limit"),
		AgeMin:              r.Int("age_range_min"),
		AgeMax:              r.Int("age_range_max"),
		AwardMin:            r.Float("award_amount_min"),
		AwardMax:            r.Float("award_amount_max"),
		AnnualCap:           r.Float("annual_cap"),
		ApplicationProcess:  r.Text("application_process"),
		ApplicationDeadline: r.Text("application_deadline"),
		ProcessingTime:      r.Text("processing_time"),
		KeyFeatures:         r.Text(aliasKeyFeatures...),
		RealWorldContext:    r.Text(aliasRealWorldContext...),
		Website:             r.String("website"),
		Phone:               r.String("phone"),
	}
}

// TherapyService is a clinic, therapy provider or healthcare program.
type TherapyService struct {
	ID                string
	Name              string
	OrganizationName  string
	OrganizationType  string
	Subcategories     string
	ShortDescription  string
	FullDescription   string
	KeyFeatures       string
	PracticalNotes    string
	Telehealth        string
	JurisdictionLevel string
	StatesAvailable   string
	CostType          string
	ExperienceLevel   string
	MedicaidAccepted  string
	Website           string
	Phone             string
}

// NewTherapyService normalizes a therapy_services row.
func NewTherapyService(r Row) TherapyService {
	return TherapyService{
		ID:                r.String("resource_id"),
		Name:              r.Text("resource_name"),
		OrganizationName:  r.Text("organization_name"),
		OrganizationType:  r.Text("organization_type"),
		Subcategories:     r.String("subcategories"),
		ShortDescription:  r.Text("short_description"),
		FullDescription:   r.Text("full_description"),
		KeyFeatures:       r.Text(aliasKeyFeatures...),
		PracticalNotes:    r.Text("practical_notes"),
		Telehealth:        r.String("telehealth_available"),
		JurisdictionLevel: r.String("jurisdiction_level"),
		StatesAvailable:   r.Text("states_available"),
		CostType:          r.String("cost_type"),
		ExperienceLevel:   r.String("ds_experience_level"),
		MedicaidAccepted:  r.String("medicaid_accepted"),
		Website:           r.String("website"),
		Phone:             r.String("phone"),
	}
}

// Services splits the semicolon-delimited subcategory list.
func (t TherapyService) Services() []string {
	var out []string
	for _, s := range strings.Split(t.Subcategories, ";") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// InspirationProfile is a person featured as a role model.
type InspirationProfile struct {
	ID                string
	FullName          string
	KnownAs           string
	PrimaryField      string
	SecondaryFields   string
	City              string
	State             string
	Country           string
	ShortBio          string
	Achievements      string
	Accomplishments   string
	Awards            string
	NotableQuotes     string
	ActiveSince       string
	SpeakingAvailable bool
	Website           string
	Instagram         string
}

// NewInspirationProfile normalizes an inspiration_profiles row.
func NewInspirationProfile(r Row) InspirationProfile {
	return InspirationProfile{
		ID:                r.String("profile_id"),
		FullName:          r.Text("full_name"),
		KnownAs:           r.Text(aliasKnownAs...),
		PrimaryField:      r.String("primary_field"),
		SecondaryFields:   r.Text("secondary_fields"),
		City:              r.String("location_city"),
		State:             r.String("location_state"),
		Country:           r.String("location_country"),
		ShortBio:          r.Text("short_bio"),
		Achievements:      r.Text("specific_achievements"),
		Accomplishments:   r.Text("key_accomplishments"),
		Awards:            r.Text(aliasAwards...),
		NotableQuotes:     r.Text("notable_quotes"),
		ActiveSince:       r.String("active_since"),
		SpeakingAvailable: r.Bool("speaking_available"),
		Website:           r.String("website"),
		Instagram:         r.String("instagram"),
	}
}

// DisplayName prefers the stage name.
func (p InspirationProfile) DisplayName() string {
	if p.KnownAs != "" {
		return p.KnownAs
	}
	return p.FullName
}

// Highlights returns achievements, falling back to key accomplishments.
func (p InspirationProfile) Highlights() string {
	if p.Achievements != "" {
		return p.Achievements
	}
	return p.Accomplishments
}

// Location joins the non-empty location parts; the country is included only
// when withCountry is set.
func (p InspirationProfile) Location(withCountry bool) string {
	parts := []string{p.City, p.State}
	if withCountry {
		parts = append(parts, p.Country)
	}
	return joinNonEmpty(parts, ", ")
}

// Initials returns up to two leading initials, or "?" for an empty name.
func Initials(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "?"
	}
	var sb strings.Builder
	for _, f := range fields {
		r, _ := utf8.DecodeRuneInString(f)
		sb.WriteRune(unicode.ToUpper(r))
		if utf8.RuneCountInString(sb.String()) == 2 {
			break
		}
	}
	return sb.String()
}

// WebsiteURL adds a scheme when the stored value lacks one.
func WebsiteURL(site string) string {
	if site == "" || strings.HasPrefix(site, "http") {
		return site
	}
	return "https://" + site
}

// InstagramURL expands a bare handle into a profile link.
func InstagramURL(handle string) string {
	if handle == "" || strings.HasPrefix(handle, "http") {
		return handle
	}
	return "https://instagram.com/" + strings.TrimPrefix(handle, "@")
}

var nonDigits = regexp.MustCompile(`[^0-9]`)

// DialString strips everything but digits from a phone number.
func DialString(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

func joinNonEmpty(parts []string, sep string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
