// Package chatscreen renders the BuggyChat tutor conversation.
package chatscreen

import (
	"context"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/debugme/internal/chat"
	"github.com/abhisek/debugme/internal/llm"
	"github.com/abhisek/debugme/internal/profile"
	"github.com/abhisek/debugme/internal/progression"
	"github.com/abhisek/debugme/internal/router"
	"github.com/abhisek/debugme/internal/screen"
	"github.com/abhisek/debugme/internal/ui/layout"
	"github.com/abhisek/debugme/internal/ui/theme"
)

// pollInterval is how often the screen checks for a finished reply.
const pollInterval = 100 * time.Millisecond

// pollMsg drives the reply poll loop while a generation is in flight.
type pollMsg time.Time

// suggestionMsg carries the result of a structured lesson suggestion.
type suggestionMsg struct {
	suggestion *chat.Suggestion
	err        error
}

// spinnerFrames animates the waiting indicator.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ChatScreen is the tutor conversation view.
type ChatScreen struct {
	tutor  *chat.Service
	engine *progression.Engine
	prof   *profile.Store

	input        textarea.Model
	waiting      bool
	spinnerTick  int
	errMsg       string
	suggestion   *chat.Suggestion
	scrollOffset int
	autoScroll   bool
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.InputCapturer = (*ChatScreen)(nil)

// New creates the chat screen against a live tutor service.
func New(tutor *chat.Service, engine *progression.Engine, prof *profile.Store) *ChatScreen {
	input := textarea.New()
	input.Placeholder = "Ask BuggyChat anything..."
	input.SetHeight(3)
	input.CharLimit = 2000
	input.Focus()

	return &ChatScreen{
		tutor:      tutor,
		engine:     engine,
		prof:       prof,
		input:      input,
		autoScroll: true,
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Focus()
}

// CapturesInput suspends the global Esc binding while the input has focus.
func (c *ChatScreen) CapturesInput() bool {
	return c.input.Focused()
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pollMsg:
		if !c.waiting {
			return c, nil
		}
		c.spinnerTick++
		if reply, ok := c.tutor.ConsumeReply(); ok {
			c.waiting = false
			if reply.Err != nil {
				c.errMsg = reply.Err.Error()
			}
			c.autoScroll = true
			return c, nil
		}
		return c, c.poll()

	case suggestionMsg:
		c.waiting = false
		if msg.err != nil {
			c.errMsg = msg.err.Error()
		} else {
			c.suggestion = msg.suggestion
		}
		return c, nil

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		c.input.Blur()
		return c, func() tea.Msg { return router.PopScreenMsg{} }

	case "enter":
		if c.waiting {
			return c, nil
		}
		question := strings.TrimSpace(c.input.Value())
		if question == "" {
			return c, nil
		}
		c.input.Reset()
		c.errMsg = ""
		c.suggestion = nil
		c.waiting = true
		c.autoScroll = true
		c.tutor.Ask(context.Background(), question, c.snapshot())
		return c, c.poll()

	case "ctrl+r":
		c.tutor.Reset()
		c.waiting = false
		c.errMsg = ""
		c.suggestion = nil
		c.scrollOffset = 0
		return c, nil

	case "ctrl+l":
		if c.waiting {
			return c, nil
		}
		c.errMsg = ""
		c.waiting = true
		return c, c.suggest()

	case "pgup":
		c.autoScroll = false
		c.scrollOffset -= 3
		if c.scrollOffset < 0 {
			c.scrollOffset = 0
		}
		return c, nil

	case "pgdown":
		c.scrollOffset += 3
		return c, nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) poll() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

// suggest asks for a structured next-lesson recommendation.
func (c *ChatScreen) suggest() tea.Cmd {
	snap := c.snapshot()
	return func() tea.Msg {
		s, err := c.tutor.SuggestLesson(context.Background(), snap)
		return suggestionMsg{suggestion: s, err: err}
	}
}

// snapshot captures current progress and profile for prompt grounding.
func (c *ChatScreen) snapshot() chat.Snapshot {
	snap := chat.Snapshot{
		CompletedLessonIDs: c.engine.Progress().CompletedLessons,
	}
	if p, ok := c.prof.Selected(); ok {
		snap.Profile = &p
	}
	return snap
}

func (c *ChatScreen) View(width, height int) string {
	inputView := c.renderInput(width)
	inputHeight := lipgloss.Height(inputView) + 1
	historyHeight := height - inputHeight
	if historyHeight < 3 {
		historyHeight = 3
	}

	history := c.renderHistory(width, historyHeight)
	return lipgloss.JoinVertical(lipgloss.Left, history, "", inputView)
}

func (c *ChatScreen) renderHistory(width, height int) string {
	var lines []string

	for _, m := range c.tutor.History() {
		lines = append(lines, renderMessage(m, width)...)
		lines = append(lines, "")
	}

	if c.waiting {
		frame := spinnerFrames[c.spinnerTick%len(spinnerFrames)]
		lines = append(lines, theme.Hint.Render(frame+" BuggyChat is thinking..."))
	}
	if c.errMsg != "" {
		lines = append(lines, theme.Incorrect.Render(c.errMsg))
	}
	if c.suggestion != nil {
		lines = append(lines, theme.BadgeEarned.Render("Suggested next lesson: "+c.suggestion.LessonID))
		lines = append(lines, theme.Hint.Width(width-4).Render(
			c.suggestion.Reason+" (confidence: "+c.suggestion.Confidence+")"))
	}

	if len(lines) == 0 {
		return theme.Hint.Render("Ask about debugging, lessons, or your career fit.\nCtrl+L suggests your next lesson.")
	}

	if c.autoScroll && len(lines) > height {
		c.scrollOffset = len(lines) - height
	}
	if c.scrollOffset > len(lines)-height {
		c.scrollOffset = len(lines) - height
	}
	if c.scrollOffset < 0 {
		c.scrollOffset = 0
	}

	end := c.scrollOffset + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[c.scrollOffset:end], "\n")
}

func (c *ChatScreen) renderInput(width int) string {
	c.input.SetWidth(width - 4)
	return c.input.View()
}

// renderMessage wraps one turn into prefixed display lines.
func renderMessage(m llm.Message, width int) []string {
	var prefix string
	var style lipgloss.Style
	if m.Role == llm.RoleUser {
		prefix = "You: "
		style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	} else {
		prefix = "BuggyChat: "
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	wrapped := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(width - 4).
		Render(m.Content)

	lines := strings.Split(wrapped, "\n")
	if len(lines) == 0 {
		return nil
	}
	out := make([]string, 0, len(lines))
	out = append(out, style.Render(prefix)+lines[0])
	for _, l := range lines[1:] {
		out = append(out, strings.Repeat(" ", len(prefix))+l)
	}
	return out
}

func (c *ChatScreen) Title() string {
	return "BuggyChat"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+L", Description: "Suggest lesson"},
		{Key: "Ctrl+R", Description: "New chat"},
		{Key: "Esc", Description: "Back"},
	}
}
