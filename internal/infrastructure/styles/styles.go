// Package styles provides the terminal colour palette for eras and religions.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ersonp/regnal/internal/domain/entities"
)

// Theme defines the colour palette.
type Theme struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Error   lipgloss.Color

	// Badges maps a style key (see entities.Era.StyleKey) to its badge colour.
	Badges map[string]lipgloss.Color
}

// DefaultTheme returns the fixed palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary: lipgloss.Color("#B45309"), // Amber
		Muted:   lipgloss.Color("#6B7280"), // Gray
		Border:  lipgloss.Color("#D6D3D1"), // Stone
		Error:   lipgloss.Color("#DC2626"), // Red
		Badges: map[string]lipgloss.Color{
			"era-ancient":        lipgloss.Color("#92400E"),
			"era-classical":      lipgloss.Color("#1D4ED8"),
			"era-post-classical": lipgloss.Color("#047857"),
			"era-medieval":       lipgloss.Color("#7C3AED"),
			"era-colonial":       lipgloss.Color("#B91C1C"),
			"era-unknown":        lipgloss.Color("#6B7280"),
			"religion-hindu":     lipgloss.Color("#EA580C"),
			"religion-buddhist":  lipgloss.Color("#CA8A04"),
			"religion-muslim":    lipgloss.Color("#15803D"),
			"religion-mixed":     lipgloss.Color("#0E7490"),
			"religion-unknown":   lipgloss.Color("#6B7280"),
		},
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for group labels.
	Subtitle lipgloss.Style

	// Muted style for secondary text.
	Muted lipgloss.Style

	// Selected style for the highlighted row.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Card frames a ruler in card layout.
	Card lipgloss.Style

	// Badge is the base style for era and religion badges.
	Badge lipgloss.Style
}

// DefaultStyles returns styles built from the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// NewStyles creates styles from the given theme.
func NewStyles(theme *Theme) *Styles {
	return &Styles{
		theme:    theme,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Subtitle: lipgloss.NewStyle().Bold(true).Underline(true),
		Muted:    lipgloss.NewStyle().Foreground(theme.Muted),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Error:    lipgloss.NewStyle().Foreground(theme.Error),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		Badge: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF")),
	}
}

// Theme returns the theme the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// BadgeColor returns the colour for a style key, falling back to Muted.
func (s *Styles) BadgeColor(key string) lipgloss.Color {
	if c, ok := s.theme.Badges[key]; ok {
		return c
	}
	return s.theme.Muted
}

// EraBadge renders an era as a coloured badge.
func (s *Styles) EraBadge(era entities.Era) string {
	return s.Badge.Background(s.BadgeColor(era.StyleKey())).Render(string(era))
}

// ReligionBadge renders a religion as a coloured badge.
func (s *Styles) ReligionBadge(religion entities.Religion) string {
	return s.Badge.Background(s.BadgeColor(religion.StyleKey())).Render(string(religion))
}
