package lessons

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/debugme/internal/catalog"
	"github.com/abhisek/debugme/internal/dialog"
	"github.com/abhisek/debugme/internal/progression"
	"github.com/abhisek/debugme/internal/store"
)

func testLesson() catalog.Lesson {
	return catalog.Lesson{
		ID:          "test-lesson",
		Title:       "Reading Stack Traces",
		Description: "Find the failing frame",
		Topic:       "debugging",
		Difficulty:  catalog.DifficultyBeginner,
		XPReward:    50,
		Explanation: "The topmost frame of a stack trace is where the error surfaced.",
		Example:     "panic: runtime error: index out of range",
		Quiz: []catalog.QuizQuestion{
			{Text: "Where did the error surface?", Options: []string{"Top frame", "Bottom frame"}, CorrectAnswer: 0},
			{Text: "What does a panic print?", Options: []string{"Nothing", "A stack trace"}, CorrectAnswer: 1},
		},
	}
}

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// runQuiz answers the active question, picking the correct option when
// pass is true and the wrong one otherwise, then advances past feedback.
func answerQuestion(t *testing.T, f *flowScreen, pass bool) {
	t.Helper()
	q, _, _ := f.flow.Question()
	want := q.CorrectAnswer
	if !pass {
		want = (q.CorrectAnswer + 1) % len(q.Options)
	}
	for i := 0; i < want; i++ {
		f.Update(keyPress('j'))
	}
	f.Update(enter()) // submit answer
}

func TestFlowScreen_PassAwardsXP(t *testing.T) {
	engine := progression.NewEngine()
	st := openTestStore(t)
	f := newFlowScreen(testLesson(), engine, st)

	if f.flow.Stage() != dialog.StageLearn {
		t.Fatalf("initial stage = %v, want learn", f.flow.Stage())
	}

	f.Update(enter()) // start quiz
	for f.flow.Stage() != dialog.StageComplete {
		if f.flow.Stage() == dialog.StageAttempt {
			answerQuestion(t, f, true)
			continue
		}
		// Result stage: the final advance triggers the save command.
		_, cmd := f.Update(enter())
		if f.flow.Stage() == dialog.StageComplete {
			if cmd == nil {
				t.Fatal("expected save command on completion")
			}
			msg := cmd()
			f.Update(msg)
		}
	}

	if !f.flow.Passed() {
		t.Fatal("expected quiz to pass")
	}
	if f.saveErr != nil {
		t.Fatalf("save error: %v", f.saveErr)
	}
	if f.result == nil || f.result.XPAwarded != 50 {
		t.Fatalf("result = %+v, want 50 XP awarded", f.result)
	}

	p := engine.Progress()
	if len(p.CompletedLessons) != 1 || p.CompletedLessons[0] != "test-lesson" {
		t.Fatalf("completed lessons = %v", p.CompletedLessons)
	}

	loaded, err := st.LoadProgress(context.Background())
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if loaded == nil || loaded.XP != 50 {
		t.Fatalf("persisted progress = %+v, want XP 50", loaded)
	}

	view := f.View(80, 24)
	if !strings.Contains(view, "+50 XP") {
		t.Errorf("complete view missing XP line:\n%s", view)
	}
}

func TestFlowScreen_FailOffersRetake(t *testing.T) {
	engine := progression.NewEngine()
	st := openTestStore(t)
	f := newFlowScreen(testLesson(), engine, st)

	f.Update(enter()) // start quiz
	for f.flow.Stage() != dialog.StageComplete {
		if f.flow.Stage() == dialog.StageAttempt {
			answerQuestion(t, f, false)
			continue
		}
		_, cmd := f.Update(enter())
		if f.flow.Stage() == dialog.StageComplete && cmd != nil {
			t.Fatal("failed quiz must not trigger a save command")
		}
	}

	if f.flow.Passed() {
		t.Fatal("expected quiz to fail")
	}
	if got := engine.Progress().XP; got != 0 {
		t.Fatalf("XP = %d, want 0 after failed quiz", got)
	}

	view := f.View(80, 24)
	if !strings.Contains(view, "retake") {
		t.Errorf("fail view missing retake hint:\n%s", view)
	}

	// R restarts the quiz from the first question.
	f.Update(keyPress('r'))
	if f.flow.Stage() != dialog.StageAttempt {
		t.Fatalf("stage after retake = %v, want attempt", f.flow.Stage())
	}
}

func TestFlowScreen_ReplayAwardsNothing(t *testing.T) {
	engine := progression.NewEngine()
	st := openTestStore(t)

	lesson := testLesson()
	runToCompletion := func() *flowScreen {
		f := newFlowScreen(lesson, engine, st)
		f.Update(enter())
		for f.flow.Stage() != dialog.StageComplete {
			if f.flow.Stage() == dialog.StageAttempt {
				answerQuestion(t, f, true)
				continue
			}
			_, cmd := f.Update(enter())
			if cmd != nil {
				f.Update(cmd())
			}
		}
		return f
	}

	runToCompletion()
	f := runToCompletion()

	if f.result == nil || f.result.XPAwarded != 0 {
		t.Fatalf("replay result = %+v, want 0 XP", f.result)
	}
	if got := engine.Progress().XP; got != 50 {
		t.Fatalf("XP = %d, want 50 after replay", got)
	}
}
