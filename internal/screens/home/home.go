package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/debugme/internal/catalog"
	"github.com/abhisek/debugme/internal/chat"
	"github.com/abhisek/debugme/internal/profile"
	"github.com/abhisek/debugme/internal/progression"
	"github.com/abhisek/debugme/internal/router"
	"github.com/abhisek/debugme/internal/screen"
	"github.com/abhisek/debugme/internal/screens/careers"
	"github.com/abhisek/debugme/internal/screens/challenges"
	"github.com/abhisek/debugme/internal/screens/chatscreen"
	"github.com/abhisek/debugme/internal/screens/dashboard"
	"github.com/abhisek/debugme/internal/screens/lessons"
	"github.com/abhisek/debugme/internal/screens/profiles"
	"github.com/abhisek/debugme/internal/store"
	"github.com/abhisek/debugme/internal/ui/components"
	"github.com/abhisek/debugme/internal/ui/layout"
	"github.com/abhisek/debugme/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu   components.Menu
	engine *progression.Engine
	cat    *catalog.Catalog
	prof   *profile.Store
	db     *store.Store
	tutor  *chat.Service
	hasLLM bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen with injected dependencies. The tutor may
// be nil when no LLM provider is configured; the chat entry is disabled
// in that case.
func New(cat *catalog.Catalog, engine *progression.Engine, prof *profile.Store, db *store.Store, tutor *chat.Service) *HomeScreen {
	h := &HomeScreen{
		engine: engine,
		cat:    cat,
		prof:   prof,
		db:     db,
		tutor:  tutor,
		hasLLM: tutor != nil,
	}

	items := []components.MenuItem{
		{Label: "LESSONS", Hint: "learn debugging concepts", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: lessons.New(cat, engine, db)}
			}
		}},
		{Label: "CHALLENGES", Hint: "fix broken code", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: challenges.New(cat, engine, db)}
			}
		}},
		{Label: "CAREER EXPLORER", Hint: "compatibility and automation risk", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: careers.New(cat, prof)}
			}
		}},
		{Label: "PROFILES", Hint: "rate your competencies", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profiles.New(cat, prof, db)}
			}
		}},
		{Label: "BUGGY CHAT", Hint: "ask the tutor", Disabled: !h.hasLLM, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chatscreen.New(tutor, engine, prof)}
			}
		}},
		{Label: "DASHBOARD", Hint: "progress and badges", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(cat, engine, db)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	p := h.engine.Progress()

	var sections []string
	sections = append(sections, renderBanner(width))
	sections = append(sections, renderStatsLine(p, width))
	if !h.hasLLM {
		note := theme.Hint.Render("Tutor offline: no LLM API key found")
		sections = append(sections, lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(note))
	}

	menu := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func renderBanner(width int) string {
	banner := strings.Join([]string{
		"┌─┐ DebugMe",
		"│>│ learn to debug, debug to learn",
		"└─┘",
	}, "\n")
	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Width(width).
		Align(lipgloss.Center).
		Render(banner)
}

func renderStatsLine(p progression.Progress, width int) string {
	stats := fmt.Sprintf("Level %d   %d/%d XP   ★ %d day streak   %d badges",
		p.Level, p.XP, p.XPToNextLevel, p.Streak, len(p.Badges))
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(width).
		Align(lipgloss.Center).
		Render(stats)
}
