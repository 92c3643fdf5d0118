package careers

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/debugme/internal/catalog"
	"github.com/abhisek/debugme/internal/profile"
	"github.com/abhisek/debugme/internal/recommend"
	"github.com/abhisek/debugme/internal/router"
	"github.com/abhisek/debugme/internal/screen"
	"github.com/abhisek/debugme/internal/ui/components"
	"github.com/abhisek/debugme/internal/ui/layout"
	"github.com/abhisek/debugme/internal/ui/theme"
)

// ExplorerScreen shows career compatibility for the selected profile,
// the improvement plan, and per-career automation risk.
type ExplorerScreen struct {
	cat  *catalog.Catalog
	prof *profile.Store

	matches []recommend.Compatibility
	gaps    []recommend.Gap
	hasProf bool
	cursor  int
}

var _ screen.Screen = (*ExplorerScreen)(nil)
var _ screen.KeyHintProvider = (*ExplorerScreen)(nil)

// New creates the career explorer. Scores are computed once against the
// currently selected profile; selecting a different profile means
// reopening the screen.
func New(cat *catalog.Catalog, prof *profile.Store) *ExplorerScreen {
	e := &ExplorerScreen{cat: cat, prof: prof}

	selected, ok := prof.Selected()
	if !ok {
		return e
	}
	e.hasProf = true
	e.matches = recommend.RecommendCareers(selected.Competencies, cat.Careers(), len(cat.Careers()))
	e.gaps = recommend.RecommendLearningPaths(selected.Competencies, cat)
	return e
}

func (e *ExplorerScreen) Init() tea.Cmd {
	return nil
}

func (e *ExplorerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if e.cursor > 0 {
				e.cursor--
			}
		case "down", "j":
			if e.cursor < len(e.matches)-1 {
				e.cursor++
			}
		case "enter":
			return e, e.openDetail()
		case "q":
			return e, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return e, nil
}

func (e *ExplorerScreen) openDetail() tea.Cmd {
	if !e.hasProf || len(e.matches) == 0 {
		return nil
	}
	match := e.matches[e.cursor]
	risk, err := recommend.AutomationRiskFor(match.Career.Name, e.cat)
	if err != nil {
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: newDetailScreen(match, risk)}
	}
}

func (e *ExplorerScreen) View(width, height int) string {
	if !e.hasProf {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Text).
			Render("No profile selected.\n\nCreate and select a profile first\nto see career compatibility.")
	}

	var sections []string
	sections = append(sections, e.renderMatches(width))
	sections = append(sections, e.renderGaps(width))
	return strings.Join(sections, "\n\n")
}

func (e *ExplorerScreen) renderMatches(width int) string {
	var lines []string
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("CAREER COMPATIBILITY"))

	barWidth := width / 3
	if barWidth > 30 {
		barWidth = 30
	}

	for i, m := range e.matches {
		cursor := "  "
		if i == e.cursor {
			cursor = "▸ "
		}

		bar := components.NewProgressBar("", m.Score/100, false, barWidth)
		row := fmt.Sprintf("%s%-28s %s %5.1f%%", cursor, m.Career.Name, bar.View(), m.Score)

		if i == e.cursor {
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(row))
		} else {
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render(row))
		}
	}
	return strings.Join(lines, "\n")
}

func (e *ExplorerScreen) renderGaps(width int) string {
	var lines []string
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("IMPROVEMENT PLAN"))

	if len(e.gaps) == 0 {
		lines = append(lines, theme.Hint.Render("  No competencies below level 3. Nice work."))
		return strings.Join(lines, "\n")
	}

	for _, g := range e.gaps {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Accent).Render(
			fmt.Sprintf("  %s (level %d)", g.Competency, g.Level)))
		for _, p := range g.Paths {
			lines = append(lines, theme.Hint.Render("    · "+p))
		}
	}
	return strings.Join(lines, "\n")
}

func (e *ExplorerScreen) Title() string {
	return "Career Explorer"
}

func (e *ExplorerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Risk detail"},
		{Key: "Esc", Description: "Back"},
	}
}
