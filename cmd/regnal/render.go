package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ersonp/regnal/internal/application/handlers"
	"github.com/ersonp/regnal/internal/domain/entities"
	"github.com/ersonp/regnal/internal/infrastructure/styles"
)

func renderTable(w io.Writer, s *styles.Styles, result *handlers.ViewResult) error {
	if _, err := fmt.Fprintln(w, s.Muted.Render(result.Summary())); err != nil {
		return err
	}

	for _, g := range result.Groups {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(s.Theme().Border)).
			Headers("ID", "NAME", "DYNASTY", "REIGN", "YEARS", "ERA", "RELIGION")
		for _, r := range g.Rulers {
			t.Row(r.ID, r.Name, r.Dynasty, r.Reign(), strconv.Itoa(r.ReignYears()),
				s.EraBadge(r.Era), s.ReligionBadge(r.Religion))
		}

		if _, err := fmt.Fprintf(w, "\n%s (%d)\n%s\n", s.Subtitle.Render(g.Label), len(g.Rulers), t.Render()); err != nil {
			return err
		}
	}
	return nil
}

func renderCards(w io.Writer, s *styles.Styles, result *handlers.ViewResult) error {
	if _, err := fmt.Fprintln(w, s.Muted.Render(result.Summary())); err != nil {
		return err
	}

	for _, g := range result.Groups {
		if _, err := fmt.Fprintf(w, "\n%s\n", s.Subtitle.Render(g.Label)); err != nil {
			return err
		}
		for _, r := range g.Rulers {
			body := fmt.Sprintf("%s\n%s\n%s  %s %s",
				s.Title.Render(r.Name),
				s.Muted.Render(r.Dynasty),
				r.Reign(),
				s.EraBadge(r.Era),
				s.ReligionBadge(r.Religion),
			)
			if r.Notes != "" {
				body += "\n" + r.Notes
			}
			if _, err := fmt.Fprintln(w, s.Card.Render(body)); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderProfile(w io.Writer, s *styles.Styles, p *handlers.RulerProfile) error {
	var b strings.Builder

	b.WriteString(s.Title.Render(p.Ruler.Name) + "\n")
	fmt.Fprintf(&b, "%s  %s %s\n", p.Ruler.Dynasty, s.EraBadge(p.Ruler.Era), s.ReligionBadge(p.Ruler.Religion))
	fmt.Fprintf(&b, "Reign: %s (%d years)\n", p.Reign, p.ReignYears)

	section(&b, s, "Biography")
	b.WriteString(p.Detail.Biography + "\n")
	bullets(&b, s, "Key Achievements", p.Detail.Achievements)
	bullets(&b, s, "Historical Sources", p.Detail.Sources)

	if p.Detail.SuggestedReading != "" {
		section(&b, s, "Suggested Reading")
		b.WriteString(p.Detail.SuggestedReading + "\n")
	}
	if p.Ruler.Notes != "" {
		section(&b, s, "Historical Note")
		b.WriteString(p.Ruler.Notes + "\n")
	}
	if !p.Curated {
		b.WriteString("\n" + s.Muted.Render("No curated record; showing the default profile.") + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderTimeline(w io.Writer, s *styles.Styles, timeline entities.Timeline) error {
	var b strings.Builder

	for _, e := range timeline.Entries {
		fmt.Fprintf(&b, "%s  %s %s\n",
			s.Title.Render(e.Dynasty.Name), s.Muted.Render(e.Dynasty.Period()), s.EraBadge(e.Dynasty.Era))
		for _, r := range e.Rulers {
			fmt.Fprintf(&b, "  %-32s %s\n", r.Name, r.Reign())
		}
		b.WriteString("\n")
	}
	b.WriteString(s.Subtitle.Render(timeline.End.String()) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func section(b *strings.Builder, s *styles.Styles, title string) {
	b.WriteString("\n" + s.Subtitle.Render(title) + "\n")
}

func bullets(b *strings.Builder, s *styles.Styles, title string, items []string) {
	if len(items) == 0 {
		return
	}
	section(b, s, title)
	for _, item := range items {
		b.WriteString("  • " + item + "\n")
	}
}
