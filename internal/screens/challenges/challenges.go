package challenges

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/debugme/internal/catalog"
	"github.com/abhisek/debugme/internal/progression"
	"github.com/abhisek/debugme/internal/router"
	"github.com/abhisek/debugme/internal/screen"
	"github.com/abhisek/debugme/internal/store"
	"github.com/abhisek/debugme/internal/ui/layout"
	"github.com/abhisek/debugme/internal/ui/theme"
)

// ListScreen shows the challenge catalog with completion and level gating.
type ListScreen struct {
	cat    *catalog.Catalog
	engine *progression.Engine
	db     *store.Store

	challenges   []catalog.Challenge
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// New creates the challenge list screen.
func New(cat *catalog.Catalog, engine *progression.Engine, db *store.Store) *ListScreen {
	return &ListScreen{
		cat:        cat,
		engine:     engine,
		db:         db,
		challenges: cat.Challenges(),
	}
}

func (l *ListScreen) Init() tea.Cmd {
	return nil
}

func (l *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if l.cursor > 0 {
				l.cursor--
			}
		case "down", "j":
			if l.cursor < len(l.challenges)-1 {
				l.cursor++
			}
		case "enter":
			return l, l.openChallenge()
		case "q":
			return l, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return l, nil
}

func (l *ListScreen) openChallenge() tea.Cmd {
	if len(l.challenges) == 0 {
		return nil
	}
	ch := l.challenges[l.cursor]
	if l.engine.Progress().Level < ch.RequiredLevel {
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: newAttemptScreen(ch, l.engine, l.db)}
	}
}

func (l *ListScreen) View(width, height int) string {
	if len(l.challenges) == 0 {
		return theme.Hint.Render("No challenges available.")
	}

	p := l.engine.Progress()
	l.adjustScroll(height)

	var lines []string
	for i := l.scrollOffset; i < len(l.challenges) && len(lines) < height; i++ {
		lines = append(lines, l.renderRow(l.challenges[i], i == l.cursor, p, width))
	}
	return strings.Join(lines, "\n")
}

func (l *ListScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	if l.cursor < l.scrollOffset {
		l.scrollOffset = l.cursor
	}
	if l.cursor >= l.scrollOffset+height {
		l.scrollOffset = l.cursor - height + 1
	}
}

func (l *ListScreen) renderRow(ch catalog.Challenge, selected bool, p progression.Progress, width int) string {
	completed := slices.Contains(p.CompletedChallenges, ch.ID)
	locked := p.Level < ch.RequiredLevel

	icon := "○"
	if completed {
		icon = "✓"
	} else if locked {
		icon = "🔒"
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	meta := fmt.Sprintf("%-8s  %3d XP", ch.Difficulty, ch.XPReward)
	if locked {
		meta = fmt.Sprintf("requires level %d", ch.RequiredLevel)
	}

	nameWidth := width - 30
	if nameWidth < 16 {
		nameWidth = 16
	}
	title := ch.Title
	if len(title) > nameWidth {
		title = title[:nameWidth-1] + "…"
	}

	line := fmt.Sprintf("  %s%s %-*s %s", cursor, icon, nameWidth, title, meta)

	var style lipgloss.Style
	switch {
	case selected:
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	case completed:
		style = lipgloss.NewStyle().Foreground(theme.Success)
	case locked:
		style = lipgloss.NewStyle().Foreground(theme.TextDim)
	default:
		style = lipgloss.NewStyle().Foreground(theme.Text)
	}
	return style.Render(line)
}

func (l *ListScreen) Title() string {
	return "Challenges"
}

func (l *ListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}
