package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"t21dir/internal/state"
)

// Counts is the dashboard summary of the loaded collections.
type Counts struct {
	Financial   int
	Therapy     int
	Inspiration int
}

// CountsOf summarizes a snapshot.
func CountsOf(snap state.Snapshot) Counts {
	return Counts{
		Financial:   len(snap.Data.Financial),
		Therapy:     len(snap.Data.Therapy),
		Inspiration: len(snap.Data.Inspiration),
	}
}

// Home is the dashboard with per-category counts.
func Home(snap state.Snapshot, ctx Context) string {
	s := ctx.Styles
	c := CountsOf(snap)

	var sb strings.Builder
	sb.WriteString(s.Title.Render("Resources for the Down Syndrome Community"))
	sb.WriteString("\n")
	sb.WriteString(s.Body.Width(max(ctx.Width-2, 20)).Render(
		"A comprehensive directory of financial resources, healthcare services, and inspiring individuals. " +
			"Built by the community, for the community."))
	sb.WriteString("\n\n")

	stat := func(n int, label string) string {
		return s.Card.Render(s.Stat.Render(fmt.Sprint(n)) + "\n" + s.Muted.Render(label))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		stat(c.Financial, "Financial Resources"),
		stat(c.Therapy, "Healthcare Services"),
		stat(c.Inspiration, "Inspiring Individuals"),
	))
	sb.WriteString("\n\n")

	sb.WriteString(s.Bold.Render("Explore the Directory"))
	sb.WriteString("\n")
	explore := []struct{ key, title, blurb string }{
		{"2", "Financial Resources", fmt.Sprintf("Discover %d+ grants, benefits, scholarships, and support programs.", c.Financial)},
		{"2 tab", "Healthcare & Therapy", fmt.Sprintf("Find %d+ specialized clinics, therapy services, and providers experienced with Down syndrome.", c.Therapy)},
		{"3", "Inspiring Individuals", fmt.Sprintf("Meet %d+ role models: athletes, artists, entrepreneurs, advocates, and creators.", c.Inspiration)},
	}
	for _, e := range explore {
		sb.WriteString(fmt.Sprintf("%s %s\n  %s\n",
			s.Link.Render(e.title), s.Muted.Render("["+e.key+"]"), s.Body.Render(e.blurb)))
	}
	return sb.String()
}

// About is the static mission page.
func About(ctx Context) string {
	s := ctx.Styles
	width := max(ctx.Width-2, 20)
	para := func(text string) string {
		return s.Body.Width(width).Render(text) + "\n\n"
	}

	var sb strings.Builder
	sb.WriteString(s.Title.Render("About T21"))
	sb.WriteString("\n")
	sb.WriteString(s.Subtitle.Render("Building the resource we wished existed when our journey began."))
	sb.WriteString("\n\n")

	sb.WriteString(s.Bold.Render("Our Mission"))
	sb.WriteString("\n")
	sb.WriteString(para("T21 exists to ensure every family touched by Down syndrome has access to the resources, " +
		"support, and inspiration they need to thrive, regardless of where they live, their income level, " +
		"or their prior knowledge of available benefits."))

	pillars := []struct{ title, text string }{
		{"Financial Foundation", "Navigate benefits, grants, and scholarships that can provide significant support over your child's lifetime."},
		{"Healthcare Access", "Find DS specialty clinics, therapy services, and healthcare providers who understand your child's unique needs."},
		{"Community & Inspiration", "Connect with role models and families who show what's possible."},
	}
	for _, p := range pillars {
		sb.WriteString(s.Link.Render(p.title))
		sb.WriteString("\n")
		sb.WriteString(para(p.text))
	}

	sb.WriteString(s.Bold.Render("Join Us"))
	sb.WriteString("\n")
	sb.WriteString(para("T21 is a community effort. We're building this directory together with parents, " +
		"advocates, organizations, and allies."))
	return strings.TrimRight(sb.String(), "\n")
}
