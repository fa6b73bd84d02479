package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/ersonp/regnal/internal/domain/entities"
)

func TestDefaultTheme_CoversEveryStyleKey(t *testing.T) {
	theme := DefaultTheme()

	for _, era := range entities.AllEras() {
		assert.Contains(t, theme.Badges, era.StyleKey())
	}
	for _, religion := range entities.AllReligions() {
		assert.Contains(t, theme.Badges, religion.StyleKey())
	}
}

func TestStyles_BadgeColor(t *testing.T) {
	s := DefaultStyles()

	assert.Equal(t, lipgloss.Color("#7C3AED"), s.BadgeColor("era-medieval"))
	assert.Equal(t, s.Theme().Muted, s.BadgeColor("era-bronze"))
}

func TestStyles_Badges(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.EraBadge(entities.EraPostClassical), "Post-Classical")
	assert.Contains(t, s.ReligionBadge(entities.ReligionBuddhist), "Buddhist")
}
