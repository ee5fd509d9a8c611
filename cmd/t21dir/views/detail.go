package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"t21dir/cmd/t21dir/ui"
	"t21dir/internal/classify"
	"t21dir/internal/directory"
	"t21dir/internal/state"
)

// Detail renders the record named by the state's detail target.
func Detail(snap state.Snapshot, ctx Context) string {
	d := snap.State.Detail
	switch d.List {
	case state.ListTherapy:
		r, ok := snap.Data.FindTherapy(d.ID)
		if !ok {
			return notFound(ctx, "Resource not found")
		}
		return TherapyDetail(r, ctx)
	case state.ListInspiration:
		p, ok := snap.Data.FindInspiration(d.ID)
		if !ok {
			return notFound(ctx, "Profile not found")
		}
		return InspirationDetail(p, ctx)
	default:
		r, ok := snap.Data.FindFinancial(d.ID)
		if !ok {
			return notFound(ctx, "Resource not found")
		}
		return FinancialDetail(r, ctx)
	}
}

func notFound(ctx Context, msg string) string {
	return ctx.Styles.Error.Render(msg) + "\n\n" + backHint(ctx, "")
}

func backHint(ctx Context, to string) string {
	text := "esc  back"
	if to != "" {
		text += " to " + to
	}
	return ctx.Styles.Link.Render(text)
}

// quickInfo is the label/value box shown beside every detail page.
type quickInfo struct {
	rows [][2]string
}

func (q *quickInfo) add(label, value string) {
	if value != "" {
		q.rows = append(q.rows, [2]string{label, value})
	}
}

func (q *quickInfo) render(s ui.Styles) string {
	var sb strings.Builder
	sb.WriteString(s.Bold.Render("Quick Info"))
	for _, r := range q.rows {
		sb.WriteString("\n")
		sb.WriteString(s.Muted.Render(r[0]))
		sb.WriteString("\n  ")
		sb.WriteString(r[1])
	}
	return s.Card.Render(sb.String())
}

// detailPage assembles header, body sections and the info box.
type detailPage struct {
	ctx      Context
	back     string
	tags     []string
	title    string
	subtitle string
	actions  []string
	sections []string
	info     quickInfo
}

func (p *detailPage) section(title, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	s := p.ctx.Styles
	p.sections = append(p.sections, s.Subtitle.Render(title)+"\n"+longText(p.ctx, text))
}

func (p *detailPage) note(title, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	s := p.ctx.Styles
	body := s.Bold.Render(title) + "\n" + s.Body.Width(max(p.ctx.Width-8, 20)).Render(text)
	p.sections = append(p.sections, s.Card.Render(body))
}

func (p *detailPage) render() string {
	s := p.ctx.Styles
	var sb strings.Builder
	sb.WriteString(backHint(p.ctx, p.back))
	sb.WriteString("\n\n")
	if len(p.tags) > 0 {
		sb.WriteString(strings.Join(p.tags, ""))
		sb.WriteString("\n")
	}
	sb.WriteString(s.Title.Render(p.title))
	sb.WriteString("\n")
	if p.subtitle != "" {
		sb.WriteString(s.Muted.Render(p.subtitle))
		sb.WriteString("\n")
	}
	for _, a := range p.actions {
		sb.WriteString(a)
		sb.WriteString("\n")
	}
	sb.WriteString(s.RenderDivider(max(p.ctx.Width-2, 10)))
	sb.WriteString("\n\n")

	sb.WriteString(p.info.render(s))
	for _, sec := range p.sections {
		sb.WriteString("\n\n")
		sb.WriteString(sec)
	}
	return sb.String()
}

func contactActions(s ui.Styles, website, phone string) []string {
	var out []string
	if website != "" {
		out = append(out, s.Link.Render("Visit Website → "+directory.WebsiteURL(website)))
	}
	if phone != "" {
		out = append(out, s.Body.Render("☎ "+phone)+s.Muted.Render("  tel:"+directory.DialString(phone)))
	}
	return out
}

// FinancialDetail is the full page of a financial resource.
func FinancialDetail(r directory.FinancialResource, ctx Context) string {
	s := ctx.Styles
	p := &detailPage{
		ctx:      ctx,
		back:     "Resources",
		title:    r.Name,
		subtitle: r.OrganizationType,
		actions:  contactActions(s, r.Website, r.Phone),
	}
	for _, t := range []string{r.Category, r.GeographicCoverage} {
		if t != "" {
			p.tags = append(p.tags, s.Tag.Render(t))
		}
	}
	if classify.NoIncomeLimit(r.IncomeLimit) {
		p.tags = append(p.tags, s.TagHighlight.Render("No Income Limits"))
	}

	p.section("Overview", strings.Join(directory.Paragraphs(r.Description), "\n\n"))
	p.section("Key Features & Benefits", r.KeyFeatures)
	p.section("How to Apply", r.ApplicationProcess)
	p.note("Important Notes", strings.Join(directory.Paragraphs(r.RealWorldContext), "\n\n"))

	badge := classify.ValueBadge(r.Category, r.AwardMin, r.AwardMax)
	p.info.add(badge.Label(), badge.Value)
	if r.AnnualCap != nil && *r.AnnualCap != 0 {
		p.info.add("Annual Cap", classify.Dollars(*r.AnnualCap))
	}
	p.info.add("Age Range", classify.AgeRangeLabel(r.AgeMin, r.AgeMax))
	p.info.add("Coverage", orDefault(r.GeographicCoverage, "National"))
	p.info.add("Income Limits", orDefault(r.IncomeLimit, "None"))
	p.info.add("Deadline", r.ApplicationDeadline)
	p.info.add("Processing Time", r.ProcessingTime)
	return p.render()
}

// TherapyDetail is the full page of a therapy service.
func TherapyDetail(r directory.TherapyService, ctx Context) string {
	s := ctx.Styles
	services := r.Services()
	p := &detailPage{
		ctx:      ctx,
		back:     "Healthcare & Therapy",
		title:    r.Name,
		subtitle: strings.Join(nonEmpty(r.OrganizationName, r.OrganizationType), " · "),
		actions:  contactActions(s, r.Website, r.Phone),
	}
	for i, svc := range services {
		if i == 2 {
			break
		}
		p.tags = append(p.tags, s.Tag.Render(svc))
	}
	p.tags = append(p.tags, s.Tag.Render(orDefault(r.JurisdictionLevel, "National")))

	overview := append([]string{r.ShortDescription}, directory.Paragraphs(r.FullDescription)...)
	p.section("Overview", strings.Join(nonEmpty(overview...), "\n\n"))
	p.section("Key Features", r.KeyFeatures)
	if len(services) > 0 {
		tags := make([]string, len(services))
		for i, svc := range services {
			tags[i] = s.Tag.Render(svc)
		}
		p.sections = append(p.sections, s.Subtitle.Render("Services Offered")+"\n"+
			lipgloss.NewStyle().Width(max(ctx.Width-2, 20)).Render(strings.Join(tags, "")))
	}
	p.note("Important Notes", strings.Join(directory.Paragraphs(r.PracticalNotes), "\n\n"))

	p.info.add("DS Experience", orDefault(r.ExperienceLevel, "Experienced"))
	p.info.add("Cost", orDefault(r.CostType, "Contact for info"))
	p.info.add("Telehealth", orDefault(r.Telehealth, "Contact provider"))
	p.info.add("Medicaid", orDefault(r.MedicaidAccepted, "Contact provider"))
	p.info.add("Coverage", orDefault(r.JurisdictionLevel, "National"))
	p.info.add("States", r.StatesAvailable)
	return p.render()
}

// InspirationDetail is the full page of a profile.
func InspirationDetail(pr directory.InspirationProfile, ctx Context) string {
	s := ctx.Styles
	name := pr.DisplayName()
	location := pr.Location(true)

	p := &detailPage{
		ctx:      ctx,
		back:     "Inspiration",
		title:    s.Stat.Render(directory.Initials(pr.FullName)) + "  " + name,
		subtitle: location,
	}
	if pr.Website != "" {
		p.actions = append(p.actions, s.Link.Render("Visit Website → "+directory.WebsiteURL(pr.Website)))
	}
	if pr.Instagram != "" {
		p.actions = append(p.actions, s.Link.Render("Instagram → "+directory.InstagramURL(pr.Instagram)))
	}
	if pr.PrimaryField != "" {
		p.tags = append(p.tags, s.FieldBadge(pr.PrimaryField))
	}
	if pr.SecondaryFields != "" {
		p.tags = append(p.tags, s.Tag.Render(pr.SecondaryFields))
	}

	p.section("About", pr.ShortBio)
	p.section("Achievements", pr.Highlights())
	if pr.NotableQuotes != "" {
		p.note("“"+pr.NotableQuotes+"”", "— "+name)
	}

	p.info.add("Field", pr.PrimaryField)
	p.info.add("Location", location)
	p.info.add("Active Since", pr.ActiveSince)
	if pr.SpeakingAvailable {
		p.info.add("Speaking", "Available")
	}
	return p.render()
}
