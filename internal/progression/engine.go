// Package progression owns the XP/leveling state machine: it consumes
// completion events and maintains level, XP, streak and badge state under
// two invariants: 0 <= XP < XPToNextLevel after every operation, and each
// lesson/challenge/badge ID appears at most once in its set.
package progression

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// ErrInvalidArgument reports a caller contract violation, such as a
// negative XP reward or an empty ID.
var ErrInvalidArgument = errors.New("invalid argument")

// initialXPToNextLevel is the level-1 threshold; each level-up multiplies
// the threshold by 1.5 (floored).
const initialXPToNextLevel = 100

// Engine is the single-writer owner of one learner's Progress.
// It is not safe for concurrent use; serialize callers per learner.
type Engine struct {
	progress Progress
}

// NewEngine creates an engine with fresh level-1 progress.
func NewEngine() *Engine {
	return &Engine{progress: Progress{
		Level:         1,
		XP:            0,
		XPToNextLevel: initialXPToNextLevel,
	}}
}

// Restore creates an engine from previously persisted progress,
// rejecting state that violates the progression invariants.
func Restore(p Progress) (*Engine, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	return &Engine{progress: p.clone()}, nil
}

// Progress returns a copy of the current state.
func (e *Engine) Progress() Progress {
	return e.progress.clone()
}

// AddXP adds amount to the XP pool and resolves level-ups. A single large
// award can cross several thresholds; the loop runs until XP drops below
// the current threshold. It terminates because every iteration strictly
// decreases XP by the positive threshold. amount 0 is a no-op.
func (e *Engine) AddXP(amount int) (Progress, error) {
	if amount < 0 {
		return Progress{}, fmt.Errorf("%w: negative XP amount %d", ErrInvalidArgument, amount)
	}
	e.addXP(amount)
	return e.Progress(), nil
}

func (e *Engine) addXP(amount int) bool {
	p := &e.progress
	p.XP += amount
	leveled := false
	for p.XP >= p.XPToNextLevel {
		p.XP -= p.XPToNextLevel
		p.Level++
		p.XPToNextLevel = p.XPToNextLevel * 3 / 2
		leveled = true
	}
	return leveled
}

// CompletionResult reports the outcome of a completion event.
type CompletionResult struct {
	Progress  Progress
	LeveledUp bool
	XPAwarded int // 0 when the event was a replay of an already-completed ID

	// BadgesEligible names the badges the caller may now award. A single
	// completion can cross more than one milestone, e.g. a 5th lesson that
	// also extends the streak to a week.
	BadgesEligible []string
}

// CompleteLesson records a lesson completion at the given time. Repeat
// completions of the same ID are no-ops: no XP, no badge signal. Crossing
// exactly FirstFiveCount distinct lessons signals the first-five badge.
func (e *Engine) CompleteLesson(id string, xpReward int, at time.Time) (CompletionResult, error) {
	if err := checkCompletion(id, xpReward); err != nil {
		return CompletionResult{}, err
	}
	if slices.Contains(e.progress.CompletedLessons, id) {
		return CompletionResult{Progress: e.Progress()}, nil
	}

	e.progress.CompletedLessons = append(e.progress.CompletedLessons, id)
	leveled := e.addXP(xpReward)

	var badges []string
	// Exact-count trigger: computed from the post-update set size so a 6th
	// completion can never re-fire it.
	if len(e.progress.CompletedLessons) == FirstFiveCount {
		badges = append(badges, BadgeFirstFive)
	}
	if b := e.recordPractice(at); b != "" {
		badges = append(badges, b)
	}

	return CompletionResult{
		Progress:       e.Progress(),
		LeveledUp:      leveled,
		XPAwarded:      xpReward,
		BadgesEligible: badges,
	}, nil
}

// CompleteChallenge records a challenge completion. Same idempotency rule
// as lessons; crossing exactly ChallengeMasterCount distinct challenges
// signals the challenge-master badge.
func (e *Engine) CompleteChallenge(id string, xpReward int, at time.Time) (CompletionResult, error) {
	if err := checkCompletion(id, xpReward); err != nil {
		return CompletionResult{}, err
	}
	if slices.Contains(e.progress.CompletedChallenges, id) {
		return CompletionResult{Progress: e.Progress()}, nil
	}

	e.progress.CompletedChallenges = append(e.progress.CompletedChallenges, id)
	leveled := e.addXP(xpReward)

	var badges []string
	if len(e.progress.CompletedChallenges) == ChallengeMasterCount {
		badges = append(badges, BadgeChallengeMaster)
	}
	if b := e.recordPractice(at); b != "" {
		badges = append(badges, b)
	}

	return CompletionResult{
		Progress:       e.Progress(),
		LeveledUp:      leveled,
		XPAwarded:      xpReward,
		BadgesEligible: badges,
	}, nil
}

// EarnBadge adds a badge to the set. Idempotent; re-earning is a no-op.
func (e *Engine) EarnBadge(id string) (Progress, error) {
	if id == "" {
		return Progress{}, fmt.Errorf("%w: empty badge ID", ErrInvalidArgument)
	}
	if !slices.Contains(e.progress.Badges, id) {
		e.progress.Badges = append(e.progress.Badges, id)
	}
	return e.Progress(), nil
}

// recordPractice updates the day-based practice streak: consecutive-day
// completions extend it, a gap resets it to 1, repeats on the same day
// leave it unchanged. Days are calendar days in at's time zone, so an
// 11 PM and a 7 AM session on adjacent local dates still count as
// consecutive. Returns a badge ID when the streak reaches exactly
// WeekStreakDays, "" otherwise.
func (e *Engine) recordPractice(at time.Time) string {
	p := &e.progress
	day := localDay(at, at.Location())
	last := localDay(p.LastPractice, at.Location())
	prev := p.Streak

	switch {
	case p.LastPractice.IsZero():
		p.Streak = 1
	case day.Equal(last):
		// Already practiced today.
	case day.Equal(last.AddDate(0, 0, 1)):
		p.Streak++
	case day.Before(last):
		// Clock went backwards; keep the streak rather than punish replays.
	default:
		p.Streak = 1
	}
	if p.LastPractice.IsZero() || day.After(last) {
		p.LastPractice = day
	}

	if p.Streak == WeekStreakDays && p.Streak != prev {
		return BadgeWeekStreak
	}
	return ""
}

// localDay maps t onto midnight of its calendar date in loc.
func localDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func checkCompletion(id string, xpReward int) error {
	if id == "" {
		return fmt.Errorf("%w: empty completion ID", ErrInvalidArgument)
	}
	if xpReward < 0 {
		return fmt.Errorf("%w: negative XP reward %d", ErrInvalidArgument, xpReward)
	}
	return nil
}
