package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/debugme/internal/profile"
	"github.com/abhisek/debugme/internal/progression"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadProgressEmpty(t *testing.T) {
	s := openTestStore(t)

	p, err := s.LoadProgress(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil progress on fresh store, got %+v", p)
	}
}

func TestProgressRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	engine := progression.NewEngine()
	day := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if _, err := engine.CompleteLesson("variables-1", 50, day); err != nil {
		t.Fatalf("complete lesson: %v", err)
	}
	if _, err := engine.CompleteChallenge("challenge-1", 70, day); err != nil {
		t.Fatalf("complete challenge: %v", err)
	}
	want := engine.Progress()

	if err := s.SaveProgress(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadProgress(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected progress, got nil")
	}

	if got.Level != want.Level || got.XP != want.XP || got.XPToNextLevel != want.XPToNextLevel {
		t.Fatalf("level state mismatch: got %+v, want %+v", got, want)
	}
	if got.Streak != want.Streak || !got.LastPractice.Equal(want.LastPractice) {
		t.Fatalf("streak state mismatch: got %+v, want %+v", got, want)
	}
	if len(got.CompletedLessons) != 1 || got.CompletedLessons[0] != "variables-1" {
		t.Fatalf("unexpected lessons: %v", got.CompletedLessons)
	}
	if len(got.CompletedChallenges) != 1 || got.CompletedChallenges[0] != "challenge-1" {
		t.Fatalf("unexpected challenges: %v", got.CompletedChallenges)
	}

	// The restored state must still satisfy the engine's invariants.
	if _, err := progression.Restore(*got); err != nil {
		t.Fatalf("restore rejected persisted state: %v", err)
	}
}

func TestProgressUpsertOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	engine := progression.NewEngine()
	if err := s.SaveProgress(ctx, engine.Progress()); err != nil {
		t.Fatalf("save initial: %v", err)
	}

	if _, err := engine.AddXP(250); err != nil {
		t.Fatalf("add xp: %v", err)
	}
	if err := s.SaveProgress(ctx, engine.Progress()); err != nil {
		t.Fatalf("save updated: %v", err)
	}

	got, err := s.LoadProgress(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Level != 3 || got.XP != 0 || got.XPToNextLevel != 225 {
		t.Fatalf("expected level 3 / 0 / 225, got %d / %d / %d", got.Level, got.XP, got.XPToNextLevel)
	}
}

func TestProfilesRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	profiles := []profile.Profile{
		{Name: "Current me", Competencies: map[string]int{"Programming Logic": 2, "Creativity": 4}},
		{Name: "Stretch goal", Competencies: map[string]int{"Programming Logic": 5}},
	}
	if err := s.SaveProfiles(ctx, profiles, 1); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, selected, err := s.LoadProfiles(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(got))
	}
	if got[0].Name != "Current me" || got[1].Name != "Stretch goal" {
		t.Fatalf("order not preserved: %v", got)
	}
	if got[0].Competencies["Creativity"] != 4 {
		t.Fatalf("competencies lost: %v", got[0].Competencies)
	}
	if selected != 1 {
		t.Fatalf("expected selected 1, got %d", selected)
	}

	if _, err := profile.Restore(got, selected); err != nil {
		t.Fatalf("restore rejected persisted profiles: %v", err)
	}
}

func TestProfilesNoSelection(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SaveProfiles(ctx, []profile.Profile{
		{Name: "Only", Competencies: map[string]int{"Creativity": 3}},
	}, -1); err != nil {
		t.Fatalf("save: %v", err)
	}

	_, selected, err := s.LoadProfiles(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if selected != -1 {
		t.Fatalf("expected no selection, got %d", selected)
	}
}

func TestLLMEventsAndUsage(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	events := []LLMEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "tutor_chat", InputTokens: 120, OutputTokens: 80, LatencyMs: 450, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "lesson_suggestion", InputTokens: 60, OutputTokens: 0, LatencyMs: 900, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := s.AppendLLMEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := s.SummarizeLLMUsage(ctx)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if usage.Requests != 2 || usage.Failures != 1 {
		t.Fatalf("unexpected counts: %+v", usage)
	}
	if usage.InputTokens != 180 || usage.OutputTokens != 80 {
		t.Fatalf("unexpected token totals: %+v", usage)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SaveProgress(ctx, progression.NewEngine().Progress()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	p, err := s.LoadProgress(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil progress after reset, got %+v", p)
	}
}

func TestListLLMEventsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i, purpose := range []string{"tutor_chat", "tutor_chat", "lesson_suggestion"} {
		err := s.AppendLLMEvent(ctx, LLMEventData{
			SessionID:   "sess-1",
			Provider:    "mock",
			Model:       "mock-model",
			Purpose:     purpose,
			InputTokens: (i + 1) * 10,
			Success:     true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := s.ListLLMEvents(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].ID <= events[1].ID {
		t.Fatalf("expected newest first, got IDs %d, %d", events[0].ID, events[1].ID)
	}
	if events[0].Purpose != "lesson_suggestion" {
		t.Fatalf("newest purpose = %q", events[0].Purpose)
	}
	if events[0].SessionID != "sess-1" {
		t.Fatalf("session = %q", events[0].SessionID)
	}
	if events[0].Timestamp.IsZero() {
		t.Fatal("timestamp not parsed")
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	data := []LLMEventData{
		{Purpose: "tutor_chat", InputTokens: 100, OutputTokens: 50, LatencyMs: 400, Success: true},
		{Purpose: "tutor_chat", InputTokens: 200, OutputTokens: 150, LatencyMs: 600, Success: true},
		{Purpose: "lesson_suggestion", InputTokens: 80, OutputTokens: 20, LatencyMs: 300, Success: true},
	}
	for _, e := range data {
		if err := s.AppendLLMEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := s.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("got %d purposes, want 2", len(usage))
	}
	if usage[0].Purpose != "tutor_chat" || usage[0].Calls != 2 {
		t.Fatalf("most-called first, got %+v", usage[0])
	}
	if usage[0].InputTokens != 300 || usage[0].OutputTokens != 200 {
		t.Fatalf("tutor_chat tokens = %+v", usage[0])
	}
	if usage[0].AvgLatencyMs != 500 {
		t.Fatalf("avg latency = %d, want 500", usage[0].AvgLatencyMs)
	}
}
