package dialog

import (
	"errors"
	"testing"

	"github.com/abhisek/debugme/internal/catalog"
)

func testLesson() catalog.Lesson {
	return catalog.Lesson{
		ID:       "test-1",
		Title:    "Test Lesson",
		XPReward: 50,
		Quiz: []catalog.QuizQuestion{
			{Text: "q1", Options: []string{"a", "b"}, CorrectAnswer: 0},
			{Text: "q2", Options: []string{"a", "b", "c"}, CorrectAnswer: 2},
		},
	}
}

func testChallenge() catalog.Challenge {
	return catalog.Challenge{
		ID:          "c-1",
		Title:       "Test Challenge",
		XPReward:    80,
		StarterCode: "function f(x) {\n  // Your code here\n}",
		TestCases: []catalog.TestCase{
			{Input: "1", Expected: "2"},
			{Input: "2", Expected: "4"},
		},
	}
}

func TestLessonFlow_FullPass(t *testing.T) {
	f := NewLessonFlow(testLesson())
	if f.Stage() != StageLearn {
		t.Fatalf("initial stage = %s, want learn", f.Stage())
	}

	if err := f.StartQuiz(); err != nil {
		t.Fatalf("StartQuiz error: %v", err)
	}

	answers := []int{0, 2}
	for i, choice := range answers {
		q, idx, total := f.Question()
		if idx != i || total != 2 {
			t.Errorf("item %d: position %d/%d, want %d/2", i, idx, total, i)
		}
		correct, err := f.Answer(choice)
		if err != nil {
			t.Fatalf("Answer error: %v", err)
		}
		if !correct {
			t.Errorf("item %d (%s): graded wrong for correct choice", i, q.Text)
		}
		if f.Stage() != StageResult {
			t.Errorf("after answer: stage = %s, want result", f.Stage())
		}
		if err := f.Advance(); err != nil {
			t.Fatalf("Advance error: %v", err)
		}
	}

	if f.Stage() != StageComplete {
		t.Fatalf("final stage = %s, want complete", f.Stage())
	}
	if !f.Passed() {
		t.Error("all-correct run did not pass")
	}
}

func TestLessonFlow_WrongAnswerFails(t *testing.T) {
	f := NewLessonFlow(testLesson())
	if err := f.StartQuiz(); err != nil {
		t.Fatalf("StartQuiz error: %v", err)
	}

	for _, choice := range []int{1, 2} { // first answer wrong
		if _, err := f.Answer(choice); err != nil {
			t.Fatalf("Answer error: %v", err)
		}
		if err := f.Advance(); err != nil {
			t.Fatalf("Advance error: %v", err)
		}
	}

	if f.Stage() != StageComplete {
		t.Fatalf("stage = %s, want complete", f.Stage())
	}
	if f.Passed() {
		t.Error("run with a wrong answer passed")
	}
	if f.CorrectCount() != 1 {
		t.Errorf("correct = %d, want 1", f.CorrectCount())
	}
}

func TestLessonFlow_RetakeResets(t *testing.T) {
	f := NewLessonFlow(testLesson())
	if err := f.StartQuiz(); err != nil {
		t.Fatalf("StartQuiz error: %v", err)
	}
	for _, choice := range []int{1, 0} { // fail the run
		if _, err := f.Answer(choice); err != nil {
			t.Fatalf("Answer error: %v", err)
		}
		if err := f.Advance(); err != nil {
			t.Fatalf("Advance error: %v", err)
		}
	}

	f.Retake()
	if f.Stage() != StageAttempt {
		t.Fatalf("after retake: stage = %s, want attempt", f.Stage())
	}
	if f.CorrectCount() != 0 {
		t.Errorf("after retake: correct = %d, want 0", f.CorrectCount())
	}
	_, idx, _ := f.Question()
	if idx != 0 {
		t.Errorf("after retake: item = %d, want 0", idx)
	}

	for _, choice := range []int{0, 2} {
		if _, err := f.Answer(choice); err != nil {
			t.Fatalf("Answer error: %v", err)
		}
		if err := f.Advance(); err != nil {
			t.Fatalf("Advance error: %v", err)
		}
	}
	if !f.Passed() {
		t.Error("retake run did not pass")
	}
}

func TestLessonFlow_StageGuards(t *testing.T) {
	f := NewLessonFlow(testLesson())
	if _, err := f.Answer(0); !errors.Is(err, ErrWrongStage) {
		t.Errorf("Answer before quiz: error = %v, want ErrWrongStage", err)
	}
	if err := f.Advance(); !errors.Is(err, ErrWrongStage) {
		t.Errorf("Advance before quiz: error = %v, want ErrWrongStage", err)
	}
	if err := f.StartQuiz(); err != nil {
		t.Fatalf("StartQuiz error: %v", err)
	}
	if err := f.StartQuiz(); !errors.Is(err, ErrWrongStage) {
		t.Errorf("double StartQuiz: error = %v, want ErrWrongStage", err)
	}
	if _, err := f.Answer(99); err == nil {
		t.Error("out-of-range choice accepted")
	}
}

func TestChallengeFlow_PassAndRetry(t *testing.T) {
	f := NewChallengeFlow(testChallenge())
	if err := f.StartAttempt(); err != nil {
		t.Fatalf("StartAttempt error: %v", err)
	}

	// A submission without a return statement fails every displayed case.
	results, err := f.Submit("function f(x) {\n  let y = x;\n}")
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if f.Passed() {
		t.Error("return-less code passed")
	}
	for _, r := range results {
		if r.Passed {
			t.Errorf("test result passed on failing submission: %s", r.Message)
		}
	}
	if err := f.Finish(); err != nil {
		t.Fatalf("Finish error: %v", err)
	}
	if f.Stage() != StageAttempt {
		t.Errorf("after failed finish: stage = %s, want attempt", f.Stage())
	}

	results, err = f.Submit("function f(x) {\n  return x * 2;\n}")
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if !f.Passed() {
		t.Error("plausible solution failed the stub checker")
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("test result failed on passing submission: %s", r.Message)
		}
	}
	if err := f.Finish(); err != nil {
		t.Fatalf("Finish error: %v", err)
	}
	if f.Stage() != StageComplete {
		t.Errorf("after pass: stage = %s, want complete", f.Stage())
	}

	f.Retry()
	if f.Stage() != StageAttempt || f.Passed() || f.Results() != nil {
		t.Error("Retry did not reset flow state")
	}
}

func TestCheckCode_Heuristic(t *testing.T) {
	starter := "function f(x) {\n  // Your code here\n}"
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"solution", "function f(x) { return x * 2; }", true},
		{"no return", "function f(x) { let y = x * 2; }", false},
		{"unchanged starter", starter, false},
		{"whitespace-only change", "function  f(x)  {\n// Your code here\n}", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckCode(tt.code, starter); got != tt.want {
				t.Errorf("CheckCode = %v, want %v", got, tt.want)
			}
		})
	}
}
