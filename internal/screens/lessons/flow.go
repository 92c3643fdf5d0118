package lessons

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/debugme/internal/catalog"
	"github.com/abhisek/debugme/internal/dialog"
	"github.com/abhisek/debugme/internal/progression"
	"github.com/abhisek/debugme/internal/router"
	"github.com/abhisek/debugme/internal/screen"
	"github.com/abhisek/debugme/internal/store"
	"github.com/abhisek/debugme/internal/ui/components"
	"github.com/abhisek/debugme/internal/ui/layout"
	"github.com/abhisek/debugme/internal/ui/theme"
)

// savedMsg reports the outcome of persisting a completion.
type savedMsg struct {
	result progression.CompletionResult
	err    error
}

// flowScreen runs one lesson: explanation, quiz items one at a time,
// then the completion summary. XP is awarded through the progression
// engine, which makes repeat passes no-ops.
type flowScreen struct {
	flow   *dialog.LessonFlow
	engine *progression.Engine
	db     *store.Store

	choice      components.MultiChoice
	lastCorrect bool
	result      *progression.CompletionResult
	saveErr     error
	saved       bool
}

var _ screen.Screen = (*flowScreen)(nil)
var _ screen.KeyHintProvider = (*flowScreen)(nil)

func newFlowScreen(lesson catalog.Lesson, engine *progression.Engine, db *store.Store) *flowScreen {
	return &flowScreen{
		flow:   dialog.NewLessonFlow(lesson),
		engine: engine,
		db:     db,
	}
}

func (f *flowScreen) Init() tea.Cmd {
	return nil
}

func (f *flowScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		f.result = &msg.result
		f.saveErr = msg.err
		f.saved = true
		return f, nil

	case tea.KeyMsg:
		return f.handleKey(msg)
	}
	return f, nil
}

func (f *flowScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch f.flow.Stage() {
	case dialog.StageLearn:
		if msg.String() == "enter" {
			if err := f.flow.StartQuiz(); err == nil {
				f.loadQuestion()
			}
		}

	case dialog.StageAttempt:
		var cmd tea.Cmd
		f.choice, cmd = f.choice.Update(msg)
		if f.choice.Submitted {
			correct, err := f.flow.Answer(f.choice.ChosenIndex)
			if err == nil {
				f.lastCorrect = correct
			}
		}
		return f, cmd

	case dialog.StageResult:
		if msg.String() == "enter" {
			if err := f.flow.Advance(); err != nil {
				return f, nil
			}
			switch f.flow.Stage() {
			case dialog.StageAttempt:
				f.loadQuestion()
			case dialog.StageComplete:
				if f.flow.Passed() {
					return f, f.complete()
				}
			}
		}

	case dialog.StageComplete:
		switch msg.String() {
		case "r":
			if !f.flow.Passed() {
				f.flow.Retake()
				f.loadQuestion()
			}
		case "enter", "q":
			return f, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return f, nil
}

func (f *flowScreen) loadQuestion() {
	q, _, _ := f.flow.Question()
	f.choice = components.NewMultiChoice(q.Text, q.Options, q.CorrectAnswer)
}

// complete awards XP and any eligible badges, then persists progress.
func (f *flowScreen) complete() tea.Cmd {
	lesson := f.flow.Lesson()
	return func() tea.Msg {
		res, err := f.engine.CompleteLesson(lesson.ID, lesson.XPReward, time.Now())
		if err != nil {
			return savedMsg{err: err}
		}
		for _, badge := range res.BadgesEligible {
			if _, err := f.engine.EarnBadge(badge); err != nil {
				return savedMsg{result: res, err: err}
			}
		}
		err = f.db.SaveProgress(context.Background(), f.engine.Progress())
		return savedMsg{result: res, err: err}
	}
}

func (f *flowScreen) View(width, height int) string {
	lesson := f.flow.Lesson()

	switch f.flow.Stage() {
	case dialog.StageLearn:
		return f.renderLearn(lesson, width, height)
	case dialog.StageAttempt:
		return f.renderQuestion(width, height)
	case dialog.StageResult:
		return f.renderResult(width, height)
	case dialog.StageComplete:
		return f.renderComplete(lesson, width, height)
	}
	return ""
}

func (f *flowScreen) renderLearn(lesson catalog.Lesson, width, height int) string {
	title := theme.Title.Width(width).Render(lesson.Title)
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(width - 8).Render(lesson.Explanation)
	example := theme.Code.Width(width - 8).Render(lesson.Example)
	hint := theme.Hint.Render("Press Enter to start the quiz")

	return lipgloss.JoinVertical(lipgloss.Left,
		title, "", body, "", example, "", hint)
}

func (f *flowScreen) renderQuestion(width, height int) string {
	_, index, total := f.flow.Question()
	counter := theme.Subtitle.Width(width).Render(fmt.Sprintf("Question %d of %d", index+1, total))
	return lipgloss.JoinVertical(lipgloss.Left, counter, "", f.choice.View())
}

func (f *flowScreen) renderResult(width, height int) string {
	var verdict string
	if f.lastCorrect {
		verdict = theme.Correct.Render("Correct!")
	} else {
		verdict = theme.Incorrect.Render("Not quite.")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		f.choice.View(), "", verdict, "", theme.Hint.Render("Press Enter to continue"))
}

func (f *flowScreen) renderComplete(lesson catalog.Lesson, width, height int) string {
	_, _, total := f.flow.Question()

	if !f.flow.Passed() {
		score := fmt.Sprintf("You got %d of %d. All answers must be correct to pass.",
			f.flow.CorrectCount(), total)
		return lipgloss.JoinVertical(lipgloss.Left,
			theme.Incorrect.Render("Quiz not passed"), "",
			lipgloss.NewStyle().Foreground(theme.Text).Render(score), "",
			theme.Hint.Render("R retake quiz  ·  Q back to lessons"))
	}

	var lines []string
	lines = append(lines, theme.Correct.Render("Lesson complete!"))
	lines = append(lines, "")

	if !f.saved {
		lines = append(lines, theme.Hint.Render("Saving..."))
		return strings.Join(lines, "\n")
	}

	if f.result != nil {
		if f.result.XPAwarded > 0 {
			lines = append(lines, fmt.Sprintf("+%d XP", f.result.XPAwarded))
		} else {
			lines = append(lines, theme.Hint.Render("Already completed, no XP awarded"))
		}
		if f.result.LeveledUp {
			lines = append(lines, theme.BadgeEarned.Render(
				fmt.Sprintf("Level up! You are now level %d", f.result.Progress.Level)))
		}
		for _, badge := range f.result.BadgesEligible {
			lines = append(lines, theme.BadgeEarned.Render(
				"Badge earned: "+progression.BadgeName(badge)))
		}
	}
	if f.saveErr != nil {
		lines = append(lines, theme.Incorrect.Render("Save failed: "+f.saveErr.Error()))
	}
	lines = append(lines, "", theme.Hint.Render("Press Enter to return"))
	return strings.Join(lines, "\n")
}

func (f *flowScreen) Title() string {
	return f.flow.Lesson().Title
}

func (f *flowScreen) KeyHints() []layout.KeyHint {
	switch f.flow.Stage() {
	case dialog.StageAttempt:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
		}
	case dialog.StageComplete:
		if !f.flow.Passed() {
			return []layout.KeyHint{
				{Key: "R", Description: "Retake"},
				{Key: "Q", Description: "Back"},
			}
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}
