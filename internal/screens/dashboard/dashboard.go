package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/debugme/internal/catalog"
	"github.com/abhisek/debugme/internal/progression"
	"github.com/abhisek/debugme/internal/router"
	"github.com/abhisek/debugme/internal/screen"
	"github.com/abhisek/debugme/internal/store"
	"github.com/abhisek/debugme/internal/ui/components"
	"github.com/abhisek/debugme/internal/ui/layout"
	"github.com/abhisek/debugme/internal/ui/theme"
)

// usageMsg carries the aggregated LLM usage stats.
type usageMsg struct {
	usage store.LLMUsage
	err   error
}

// DashboardScreen summarizes progression, badges and tutor usage.
type DashboardScreen struct {
	cat    *catalog.Catalog
	engine *progression.Engine
	db     *store.Store

	usage    *store.LLMUsage
	usageErr error
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates the dashboard screen.
func New(cat *catalog.Catalog, engine *progression.Engine, db *store.Store) *DashboardScreen {
	return &DashboardScreen{cat: cat, engine: engine, db: db}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return d.loadUsage()
}

func (d *DashboardScreen) loadUsage() tea.Cmd {
	return func() tea.Msg {
		u, err := d.db.SummarizeLLMUsage(context.Background())
		return usageMsg{usage: u, err: err}
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case usageMsg:
		if msg.err != nil {
			d.usageErr = msg.err
		} else {
			u := msg.usage
			d.usage = &u
		}
		return d, nil

	case tea.KeyMsg:
		if msg.String() == "q" {
			return d, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	p := d.engine.Progress()

	var sections []string
	sections = append(sections, d.renderLevel(p, width))
	sections = append(sections, d.renderCompletion(p, width))
	sections = append(sections, d.renderBadges(p))
	sections = append(sections, d.renderUsage())
	return strings.Join(sections, "\n\n")
}

func (d *DashboardScreen) renderLevel(p progression.Progress, width int) string {
	barWidth := width - 20
	if barWidth > 50 {
		barWidth = 50
	}

	bar := components.NewProgressBar(
		fmt.Sprintf("Level %d", p.Level),
		float64(p.XP)/float64(p.XPToNextLevel),
		true, barWidth)

	streak := fmt.Sprintf("★ %d day streak", p.Streak)

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionHeader("PROGRESS"),
		"  "+bar.View(),
		"  "+fmt.Sprintf("%d / %d XP to next level", p.XP, p.XPToNextLevel),
		"  "+lipgloss.NewStyle().Foreground(theme.Accent).Render(streak))
}

func (d *DashboardScreen) renderCompletion(p progression.Progress, width int) string {
	totalLessons := len(d.cat.Lessons())
	totalChallenges := len(d.cat.Challenges())

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionHeader("COMPLETION"),
		fmt.Sprintf("  Lessons     %d / %d", len(p.CompletedLessons), totalLessons),
		fmt.Sprintf("  Challenges  %d / %d", len(p.CompletedChallenges), totalChallenges))
}

func (d *DashboardScreen) renderBadges(p progression.Progress) string {
	earned := make(map[string]bool, len(p.Badges))
	for _, b := range p.Badges {
		earned[b] = true
	}

	all := []string{
		progression.BadgeFirstFive,
		progression.BadgeChallengeMaster,
		progression.BadgeWeekStreak,
	}

	lines := []string{sectionHeader("BADGES")}
	for _, id := range all {
		name := progression.BadgeName(id)
		if earned[id] {
			lines = append(lines, "  "+theme.BadgeEarned.Render("◆ "+name))
		} else {
			lines = append(lines, "  "+theme.BadgeLocked.Render("◇ "+name))
		}
	}
	return strings.Join(lines, "\n")
}

func (d *DashboardScreen) renderUsage() string {
	lines := []string{sectionHeader("TUTOR USAGE")}

	switch {
	case d.usageErr != nil:
		lines = append(lines, theme.Incorrect.Render("  "+d.usageErr.Error()))
	case d.usage == nil:
		lines = append(lines, theme.Hint.Render("  Loading..."))
	case d.usage.Requests == 0:
		lines = append(lines, theme.Hint.Render("  No tutor requests yet."))
	default:
		u := d.usage
		lines = append(lines,
			fmt.Sprintf("  Requests  %d (%d failed)", u.Requests, u.Failures),
			fmt.Sprintf("  Tokens    %d in / %d out", u.InputTokens, u.OutputTokens))
	}
	return strings.Join(lines, "\n")
}

func sectionHeader(s string) string {
	return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(s)
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}
