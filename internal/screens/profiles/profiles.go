package profiles

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/debugme/internal/catalog"
	"github.com/abhisek/debugme/internal/profile"
	"github.com/abhisek/debugme/internal/router"
	"github.com/abhisek/debugme/internal/screen"
	"github.com/abhisek/debugme/internal/store"
	"github.com/abhisek/debugme/internal/ui/layout"
	"github.com/abhisek/debugme/internal/ui/theme"
)

// profilesSavedMsg reports the outcome of persisting the profile list.
type profilesSavedMsg struct {
	err error
}

// ListScreen shows saved competency profiles and lets the user select
// one or create a new one.
type ListScreen struct {
	cat  *catalog.Catalog
	prof *profile.Store
	db   *store.Store

	cursor  int
	saveErr error
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// New creates the profile list screen.
func New(cat *catalog.Catalog, prof *profile.Store, db *store.Store) *ListScreen {
	return &ListScreen{cat: cat, prof: prof, db: db}
}

func (l *ListScreen) Init() tea.Cmd {
	return nil
}

func (l *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profilesSavedMsg:
		l.saveErr = msg.err
		return l, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if l.cursor > 0 {
				l.cursor--
			}
		case "down", "j":
			if l.cursor < l.prof.Len()-1 {
				l.cursor++
			}
		case "enter":
			return l, l.selectProfile()
		case "n":
			return l, func() tea.Msg {
				return router.PushScreenMsg{Screen: newEditorScreen(l.cat, l.prof, l.db)}
			}
		case "q":
			return l, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return l, nil
}

func (l *ListScreen) selectProfile() tea.Cmd {
	if l.prof.Len() == 0 {
		return nil
	}
	if err := l.prof.Select(l.cursor); err != nil {
		l.saveErr = err
		return nil
	}
	return l.persist()
}

func (l *ListScreen) persist() tea.Cmd {
	all := l.prof.All()
	selected := l.prof.SelectedIndex()
	return func() tea.Msg {
		err := l.db.SaveProfiles(context.Background(), all, selected)
		return profilesSavedMsg{err: err}
	}
}

func (l *ListScreen) View(width, height int) string {
	if l.prof.Len() == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Text).
			Render("No profiles yet.\n\nPress N to create one.")
	}

	var lines []string
	selectedIdx := l.prof.SelectedIndex()

	for i, p := range l.prof.All() {
		cursor := "  "
		if i == l.cursor {
			cursor = "▸ "
		}
		marker := "○"
		if i == selectedIdx {
			marker = "●"
		}

		avg := averageRating(p.Competencies)
		line := fmt.Sprintf("  %s%s %-24s avg %.1f", cursor, marker, p.Name, avg)

		if i == l.cursor {
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else if i == selectedIdx {
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.Success).Render(line))
		} else {
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
	}

	if l.saveErr != nil {
		lines = append(lines, "", theme.Incorrect.Render("Save failed: "+l.saveErr.Error()))
	}
	return strings.Join(lines, "\n")
}

func averageRating(ratings map[string]int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum int
	for _, v := range ratings {
		sum += v
	}
	return float64(sum) / float64(len(ratings))
}

func (l *ListScreen) Title() string {
	return "Profiles"
}

func (l *ListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "N", Description: "New"},
		{Key: "Esc", Description: "Back"},
	}
}
