package careers

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/debugme/internal/catalog"
	"github.com/abhisek/debugme/internal/recommend"
	"github.com/abhisek/debugme/internal/router"
	"github.com/abhisek/debugme/internal/screen"
	"github.com/abhisek/debugme/internal/ui/layout"
	"github.com/abhisek/debugme/internal/ui/theme"
)

// detailScreen shows the automation-risk breakdown for one career.
type detailScreen struct {
	match        recommend.Compatibility
	risk         catalog.AutomationRisk
	scrollOffset int
}

var _ screen.Screen = (*detailScreen)(nil)
var _ screen.KeyHintProvider = (*detailScreen)(nil)

func newDetailScreen(match recommend.Compatibility, risk catalog.AutomationRisk) *detailScreen {
	return &detailScreen{match: match, risk: risk}
}

func (d *detailScreen) Init() tea.Cmd {
	return nil
}

func (d *detailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if d.scrollOffset > 0 {
				d.scrollOffset--
			}
		case "down", "j":
			d.scrollOffset++
		case "q", "enter":
			return d, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return d, nil
}

func (d *detailScreen) View(width, height int) string {
	lines := d.buildLines(width)

	if d.scrollOffset > len(lines)-height {
		d.scrollOffset = len(lines) - height
	}
	if d.scrollOffset < 0 {
		d.scrollOffset = 0
	}

	end := d.scrollOffset + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[d.scrollOffset:end], "\n")
}

func (d *detailScreen) buildLines(width int) []string {
	var lines []string

	lines = append(lines, theme.Title.Width(width).Render(d.match.Career.Name))
	lines = append(lines, theme.Subtitle.Width(width).Render(
		fmt.Sprintf("%.1f%% compatibility", d.match.Score)))
	lines = append(lines, "")

	lines = append(lines, fmt.Sprintf("  Overall automation risk: %s (%d%%)",
		riskStyle(d.risk.Level).Render(strings.ToUpper(string(d.risk.Level))),
		d.risk.Percentage))
	lines = append(lines, "")

	lines = append(lines, sectionHeader("TASK BREAKDOWN"))
	for _, t := range d.risk.TaskBreakdown {
		lines = append(lines, fmt.Sprintf("  %s %-40s %s",
			riskStyle(t.RiskLevel).Render("●"),
			t.Task,
			theme.Hint.Render(t.AutomationLikelihood)))
	}
	lines = append(lines, "")

	lines = append(lines, sectionHeader("ADAPTATION STRATEGIES"))
	for _, s := range d.risk.AdaptationStrategies {
		lines = append(lines, "  · "+s)
	}
	lines = append(lines, "")

	lines = append(lines, sectionHeader("COMPLEMENTARY SKILLS"))
	for _, s := range d.risk.ComplementarySkills {
		lines = append(lines, "  · "+s)
	}

	return lines
}

func sectionHeader(s string) string {
	return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(s)
}

func riskStyle(level catalog.RiskLevel) lipgloss.Style {
	switch level {
	case catalog.RiskLow:
		return theme.RiskLow
	case catalog.RiskHigh:
		return theme.RiskHigh
	default:
		return theme.RiskMedium
	}
}

func (d *detailScreen) Title() string {
	return d.match.Career.Name
}

func (d *detailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}
