package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/debugme/internal/catalog"
	"github.com/abhisek/debugme/internal/chat"
	"github.com/abhisek/debugme/internal/profile"
	"github.com/abhisek/debugme/internal/progression"
	"github.com/abhisek/debugme/internal/router"
	"github.com/abhisek/debugme/internal/screen"
	"github.com/abhisek/debugme/internal/screens/home"
	"github.com/abhisek/debugme/internal/store"
	"github.com/abhisek/debugme/internal/ui/layout"
)

// Deps carries the wired services the TUI runs against. Tutor is nil
// when no LLM provider is configured.
type Deps struct {
	Catalog *catalog.Catalog
	Engine  *progression.Engine
	Profile *profile.Store
	Store   *store.Store
	Tutor   *chat.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	engine *progression.Engine
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(deps Deps) AppModel {
	homeScreen := home.New(deps.Catalog, deps.Engine, deps.Profile, deps.Store, deps.Tutor)
	return AppModel{
		router: router.New(homeScreen),
		engine: deps.Engine,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens that own text entry handle Esc themselves.
			if capt, ok := m.router.Active().(screen.InputCapturer); ok && capt.CapturesInput() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	p := m.engine.Progress()
	header := layout.RenderHeader(title, layout.HeaderStats{
		Level:  p.Level,
		XP:     p.XP,
		XPNext: p.XPToNextLevel,
		Streak: p.Streak,
	}, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints prefers the active screen's hints, with stack-aware defaults.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
