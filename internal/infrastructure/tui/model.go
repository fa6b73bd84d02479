// Package tui provides the interactive ruler explorer.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ersonp/regnal/internal/application/handlers"
	"github.com/ersonp/regnal/internal/domain/entities"
	"github.com/ersonp/regnal/internal/infrastructure/styles"
)

var groupCycle = []entities.GroupBy{
	entities.GroupNone,
	entities.GroupByDynasty,
	entities.GroupByEra,
	entities.GroupByReligion,
}

var sortKeys = map[string]entities.SortBy{
	"1": entities.SortByName,
	"2": entities.SortByDynasty,
	"3": entities.SortByReignStart,
}

// Model is the explorer state. Every parameter change rebuilds the view.
type Model struct {
	ctx     context.Context
	styles  *styles.Styles
	views   *handlers.ViewHandler
	details *handlers.DetailHandler

	params entities.ViewParams
	search textinput.Model
	result *handlers.ViewResult
	rows   []entities.Ruler
	cursor int
	offset int // First visible list line

	profile     *handlers.RulerProfile
	focusSearch bool
	err         error

	width  int
	height int
}

// New creates an explorer starting from params.
func New(
	ctx context.Context,
	s *styles.Styles,
	views *handlers.ViewHandler,
	details *handlers.DetailHandler,
	params entities.ViewParams,
) *Model {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Search rulers or dynasties"
	ti.Prompt = "/ "
	ti.SetValue(params.Search)

	m := &Model{
		ctx:     ctx,
		styles:  s,
		views:   views,
		details: details,
		params:  params,
		search:  ti,
		width:   80,
		height:  24,
	}
	m.refresh()
	return m
}

// Params returns the current view parameters.
func (m *Model) Params() entities.ViewParams {
	return m.params
}

// Result returns the current view.
func (m *Model) Result() *handlers.ViewResult {
	return m.result
}

// Selected returns the ruler under the cursor.
func (m *Model) Selected() (entities.Ruler, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return entities.Ruler{}, false
	}
	return m.rows[m.cursor], true
}

// Profile returns the open ruler profile, or nil in the list.
func (m *Model) Profile() *handlers.RulerProfile {
	return m.profile
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.scroll()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.profile != nil {
			return m.handleProfileKey(msg)
		}
		if m.focusSearch {
			return m.handleSearchKey(msg)
		}
		return m.handleListKey(msg)
	}
	return m, nil
}

func (m *Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "enter":
		m.profile = nil
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.focusSearch = false
		m.search.Blur()
		return m, nil
	case tea.KeyTab:
		m.cycleGroup()
		return m, nil
	case tea.KeyUp:
		m.move(-1)
		return m, nil
	case tea.KeyDown:
		m.move(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.params.Search {
		m.params.Search = m.search.Value()
		m.refresh()
	}
	return m, cmd
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab:
		m.cycleGroup()
		return m, nil
	case tea.KeyUp:
		m.move(-1)
		return m, nil
	case tea.KeyDown:
		m.move(1)
		return m, nil
	case tea.KeyEnter:
		m.openProfile()
		return m, nil
	}

	key := msg.String()
	if column, ok := sortKeys[key]; ok {
		m.params = m.params.ToggleSort(column)
		m.refresh()
		return m, nil
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "/":
		m.focusSearch = true
		return m, m.search.Focus()
	case "k":
		m.move(-1)
	case "j":
		m.move(1)
	case "e":
		m.params.Era = cycleFilter(m.params.Era, entities.AllEras())
		m.refresh()
	case "r":
		m.params.Religion = cycleFilter(m.params.Religion, entities.AllReligions())
		m.refresh()
	}
	return m, nil
}

func (m *Model) cycleGroup() {
	next := 0
	for i, g := range groupCycle {
		if g == m.params.GroupBy {
			next = (i + 1) % len(groupCycle)
			break
		}
	}
	m.params.GroupBy = groupCycle[next]
	m.refresh()
}

// cycleFilter steps all → values[0] → ... → values[n-1] → all.
func cycleFilter[T comparable](f entities.Filter[T], values []T) entities.Filter[T] {
	current, ok := f.Value()
	if !ok {
		return entities.Only(values[0])
	}
	for i, v := range values {
		if v == current && i+1 < len(values) {
			return entities.Only(values[i+1])
		}
	}
	return entities.All[T]()
}

func (m *Model) move(delta int) {
	m.cursor += delta
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scroll()
}

// Lines drawn around the list: title, search, params, summary and a blank
// line above; a blank line and the key help below.
const (
	headerLines = 5
	footerLines = 2
)

// listHeight is the number of list lines that fit on screen.
func (m *Model) listHeight() int {
	h := m.height - headerLines - footerLines
	if m.err != nil {
		h--
	}
	return max(h, 1)
}

// listLine is one line of the grouped list: a group label, or a ruler row.
type listLine struct {
	label string
	row   int // Index into rows, -1 for a group label
}

func (m *Model) listLines() []listLine {
	if m.result == nil {
		return nil
	}
	var lines []listLine
	row := 0
	for _, g := range m.result.Groups {
		lines = append(lines, listLine{label: g.Label, row: -1})
		for range g.Rulers {
			lines = append(lines, listLine{row: row})
			row++
		}
	}
	return lines
}

// scroll moves the window so the cursor row, and its group label when
// possible, stays visible.
func (m *Model) scroll() {
	lines := m.listLines()
	height := m.listHeight()

	cursorLine := 0
	for i, l := range lines {
		if l.row == m.cursor {
			cursorLine = i
			break
		}
	}

	top := cursorLine
	if top > 0 && lines[top-1].row < 0 {
		top--
	}
	if top < m.offset {
		m.offset = top
	}
	if cursorLine >= m.offset+height {
		m.offset = cursorLine - height + 1
	}
	m.offset = max(0, min(m.offset, len(lines)-height))
}

func (m *Model) openProfile() {
	ruler, ok := m.Selected()
	if !ok {
		return
	}
	profile, err := m.details.Handle(m.ctx, ruler.ID)
	if err != nil {
		m.err = err
		return
	}
	m.profile = profile
}

func (m *Model) refresh() {
	result, err := m.views.Handle(m.ctx, m.params)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.result = result
	m.rows = result.Rulers()
	m.move(0)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.profile != nil {
		return m.renderProfile()
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Rulers of Bengal"))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf(
		"era: %s  religion: %s  group: %s  sort: %s %s",
		m.params.Era, m.params.Religion, m.params.GroupBy, m.params.SortBy, m.params.SortOrder,
	)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}
	if m.result == nil {
		return b.String()
	}

	b.WriteString(m.result.Summary())
	b.WriteString("\n\n")

	lines := m.listLines()
	end := min(m.offset+m.listHeight(), len(lines))
	for _, l := range lines[m.offset:end] {
		if l.row < 0 {
			b.WriteString(m.styles.Subtitle.Render(l.label))
			b.WriteString("\n")
			continue
		}
		r := m.rows[l.row]
		line := fmt.Sprintf("%-28s %-22s %s %s",
			r.Name, r.Reign(), m.styles.EraBadge(r.Era), m.styles.ReligionBadge(r.Religion))
		if l.row == m.cursor {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("/ search  tab group  e era  r religion  1 name  2 dynasty  3 reign  enter open  q quit"))
	return b.String()
}

func (m *Model) renderProfile() string {
	p := m.profile
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(p.Ruler.Name))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s %s\n", p.Ruler.Dynasty,
		m.styles.EraBadge(p.Ruler.Era), m.styles.ReligionBadge(p.Ruler.Religion))
	fmt.Fprintf(&b, "Reign: %s (%d years)\n\n", p.Reign, p.ReignYears)
	b.WriteString(p.Detail.Biography)
	b.WriteString("\n")

	writeList(&b, m.styles, "Achievements", p.Detail.Achievements)
	writeList(&b, m.styles, "Sources", p.Detail.Sources)
	if p.Detail.SuggestedReading != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Subtitle.Render("Suggested reading"))
		b.WriteString("\n" + p.Detail.SuggestedReading + "\n")
	}
	if p.Ruler.Notes != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Subtitle.Render("Historical note"))
		b.WriteString("\n" + p.Ruler.Notes + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("esc back  q quit"))
	return b.String()
}

func writeList(b *strings.Builder, s *styles.Styles, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(s.Subtitle.Render(title))
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString("  • " + item + "\n")
	}
}

// Run starts the explorer and blocks until the user quits.
func Run(ctx context.Context, m *Model) error {
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running explorer: %w", err)
	}
	return nil
}
