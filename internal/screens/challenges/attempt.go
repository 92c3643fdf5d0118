package challenges

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/debugme/internal/catalog"
	"github.com/abhisek/debugme/internal/dialog"
	"github.com/abhisek/debugme/internal/progression"
	"github.com/abhisek/debugme/internal/router"
	"github.com/abhisek/debugme/internal/screen"
	"github.com/abhisek/debugme/internal/store"
	"github.com/abhisek/debugme/internal/ui/layout"
	"github.com/abhisek/debugme/internal/ui/theme"
)

// savedMsg reports the outcome of persisting a completion.
type savedMsg struct {
	result progression.CompletionResult
	err    error
}

// attemptScreen runs one challenge: problem statement, code entry in a
// textarea, per-test results, then the completion summary.
type attemptScreen struct {
	flow   *dialog.ChallengeFlow
	engine *progression.Engine
	db     *store.Store

	editor   textarea.Model
	hintIdx  int // hints shown so far
	result   *progression.CompletionResult
	saveErr  error
	saved    bool
}

var _ screen.Screen = (*attemptScreen)(nil)
var _ screen.KeyHintProvider = (*attemptScreen)(nil)
var _ screen.InputCapturer = (*attemptScreen)(nil)

func newAttemptScreen(ch catalog.Challenge, engine *progression.Engine, db *store.Store) *attemptScreen {
	ed := textarea.New()
	ed.Placeholder = "Write your fix here..."
	ed.SetValue(ch.StarterCode)
	ed.CharLimit = 0

	return &attemptScreen{
		flow:   dialog.NewChallengeFlow(ch),
		engine: engine,
		db:     db,
		editor: ed,
	}
}

func (a *attemptScreen) Init() tea.Cmd {
	return nil
}

// CapturesInput suspends the global Esc binding while the editor has focus.
func (a *attemptScreen) CapturesInput() bool {
	return a.flow.Stage() == dialog.StageAttempt
}

func (a *attemptScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		a.result = &msg.result
		a.saveErr = msg.err
		a.saved = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *attemptScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch a.flow.Stage() {
	case dialog.StageLearn:
		switch msg.String() {
		case "enter":
			if err := a.flow.StartAttempt(); err == nil {
				a.editor.Focus()
			}
		case "h":
			a.showHint()
		}

	case dialog.StageAttempt:
		switch msg.String() {
		case "ctrl+s":
			if _, err := a.flow.Submit(a.editor.Value()); err == nil {
				a.editor.Blur()
			}
			return a, nil
		case "esc":
			a.editor.Blur()
			return a, func() tea.Msg { return router.PopScreenMsg{} }
		}
		var cmd tea.Cmd
		a.editor, cmd = a.editor.Update(msg)
		return a, cmd

	case dialog.StageResult:
		switch msg.String() {
		case "enter":
			if err := a.flow.Finish(); err != nil {
				return a, nil
			}
			switch a.flow.Stage() {
			case dialog.StageComplete:
				return a, a.complete()
			case dialog.StageAttempt:
				a.editor.Focus()
			}
		case "h":
			a.showHint()
		}

	case dialog.StageComplete:
		switch msg.String() {
		case "enter", "q":
			return a, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return a, nil
}

func (a *attemptScreen) showHint() {
	if a.hintIdx < len(a.flow.Challenge().Hints) {
		a.hintIdx++
	}
}

// complete awards XP and any eligible badges, then persists progress.
func (a *attemptScreen) complete() tea.Cmd {
	ch := a.flow.Challenge()
	return func() tea.Msg {
		res, err := a.engine.CompleteChallenge(ch.ID, ch.XPReward, time.Now())
		if err != nil {
			return savedMsg{err: err}
		}
		for _, badge := range res.BadgesEligible {
			if _, err := a.engine.EarnBadge(badge); err != nil {
				return savedMsg{result: res, err: err}
			}
		}
		err = a.db.SaveProgress(context.Background(), a.engine.Progress())
		return savedMsg{result: res, err: err}
	}
}

func (a *attemptScreen) View(width, height int) string {
	switch a.flow.Stage() {
	case dialog.StageLearn:
		return a.renderProblem(width, height)
	case dialog.StageAttempt:
		return a.renderEditor(width, height)
	case dialog.StageResult:
		return a.renderResults(width, height)
	case dialog.StageComplete:
		return a.renderComplete(width, height)
	}
	return ""
}

func (a *attemptScreen) renderProblem(width, height int) string {
	ch := a.flow.Challenge()

	var sections []string
	sections = append(sections, theme.Title.Width(width).Render(ch.Title))
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Text).Width(width-8).Render(ch.Problem))
	sections = append(sections, theme.Code.Width(width-8).Render(ch.StarterCode))
	sections = append(sections, a.renderTestCases())
	sections = append(sections, a.renderHints())
	sections = append(sections, theme.Hint.Render("Press Enter to start coding"))

	return strings.Join(sections, "\n\n")
}

func (a *attemptScreen) renderEditor(width, height int) string {
	a.editor.SetWidth(width - 4)
	editorHeight := height - 6
	if editorHeight < 5 {
		editorHeight = 5
	}
	a.editor.SetHeight(editorHeight)

	title := theme.Subtitle.Width(width).Render(a.flow.Challenge().Title)
	return lipgloss.JoinVertical(lipgloss.Left,
		title, "", a.editor.View(), "",
		theme.Hint.Render("Ctrl+S submit  ·  Esc abandon"))
}

func (a *attemptScreen) renderResults(width, height int) string {
	var lines []string
	for _, r := range a.flow.Results() {
		if r.Passed {
			lines = append(lines, theme.Correct.Render("✓ "+r.Message))
		} else {
			lines = append(lines, theme.Incorrect.Render("✗ "+r.Message))
		}
	}

	var verdict string
	if a.flow.Passed() {
		verdict = theme.Correct.Render("All tests passed!")
	} else {
		verdict = theme.Incorrect.Render("Some tests failed. Press Enter to try again.")
	}

	sections := []string{strings.Join(lines, "\n"), verdict}
	if !a.flow.Passed() {
		sections = append(sections, a.renderHints())
	}
	sections = append(sections, theme.Hint.Render("Press Enter to continue"))
	return strings.Join(sections, "\n\n")
}

func (a *attemptScreen) renderComplete(width, height int) string {
	var lines []string
	lines = append(lines, theme.Correct.Render("Challenge complete!"))
	lines = append(lines, "")

	if !a.saved {
		lines = append(lines, theme.Hint.Render("Saving..."))
		return strings.Join(lines, "\n")
	}

	if a.result != nil {
		if a.result.XPAwarded > 0 {
			lines = append(lines, fmt.Sprintf("+%d XP", a.result.XPAwarded))
		} else {
			lines = append(lines, theme.Hint.Render("Already completed, no XP awarded"))
		}
		if a.result.LeveledUp {
			lines = append(lines, theme.BadgeEarned.Render(
				fmt.Sprintf("Level up! You are now level %d", a.result.Progress.Level)))
		}
		for _, badge := range a.result.BadgesEligible {
			lines = append(lines, theme.BadgeEarned.Render(
				"Badge earned: "+progression.BadgeName(badge)))
		}
	}
	if a.saveErr != nil {
		lines = append(lines, theme.Incorrect.Render("Save failed: "+a.saveErr.Error()))
	}
	lines = append(lines, "", theme.Hint.Render("Press Enter to return"))
	return strings.Join(lines, "\n")
}

func (a *attemptScreen) renderTestCases() string {
	ch := a.flow.Challenge()
	var lines []string
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Test cases"))
	for i, tc := range ch.TestCases {
		lines = append(lines, fmt.Sprintf("  %d. %s → %s", i+1, tc.Input, tc.Expected))
	}
	return strings.Join(lines, "\n")
}

func (a *attemptScreen) renderHints() string {
	ch := a.flow.Challenge()
	if a.hintIdx == 0 {
		if len(ch.Hints) > 0 {
			return theme.Hint.Render(fmt.Sprintf("H reveal a hint (%d available)", len(ch.Hints)))
		}
		return ""
	}
	var lines []string
	for i := 0; i < a.hintIdx && i < len(ch.Hints); i++ {
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("Hint %d: %s", i+1, ch.Hints[i])))
	}
	if a.hintIdx < len(ch.Hints) {
		lines = append(lines, theme.Hint.Render("H reveal another hint"))
	}
	return strings.Join(lines, "\n")
}

func (a *attemptScreen) Title() string {
	return a.flow.Challenge().Title
}

func (a *attemptScreen) KeyHints() []layout.KeyHint {
	switch a.flow.Stage() {
	case dialog.StageLearn:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "H", Description: "Hint"},
			{Key: "Esc", Description: "Back"},
		}
	case dialog.StageAttempt:
		return []layout.KeyHint{
			{Key: "Ctrl+S", Description: "Submit"},
			{Key: "Esc", Description: "Abandon"},
		}
	case dialog.StageResult:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "H", Description: "Hint"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Return"},
	}
}
