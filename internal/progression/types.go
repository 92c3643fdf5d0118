package progression

import (
	"fmt"
	"slices"
	"time"
)

// Progress is one learner's progression state. Slices preserve insertion
// order and hold each ID at most once.
type Progress struct {
	Level               int
	XP                  int
	XPToNextLevel       int
	Streak              int
	CompletedLessons    []string
	CompletedChallenges []string
	Badges              []string

	// LastPractice is midnight of the most recent completion's calendar
	// day in the learner's zone, used to derive the streak. Zero means no
	// practice yet.
	LastPractice time.Time
}

func (p Progress) clone() Progress {
	p.CompletedLessons = slices.Clone(p.CompletedLessons)
	p.CompletedChallenges = slices.Clone(p.CompletedChallenges)
	p.Badges = slices.Clone(p.Badges)
	return p
}

// check verifies the progression invariants on restored state.
func (p Progress) check() error {
	if p.Level < 1 {
		return fmt.Errorf("%w: level %d < 1", ErrInvalidArgument, p.Level)
	}
	if p.XPToNextLevel <= 0 {
		return fmt.Errorf("%w: XP threshold %d <= 0", ErrInvalidArgument, p.XPToNextLevel)
	}
	if p.XP < 0 || p.XP >= p.XPToNextLevel {
		return fmt.Errorf("%w: XP %d outside [0,%d)", ErrInvalidArgument, p.XP, p.XPToNextLevel)
	}
	if p.Streak < 0 {
		return fmt.Errorf("%w: negative streak %d", ErrInvalidArgument, p.Streak)
	}
	for _, set := range [][]string{p.CompletedLessons, p.CompletedChallenges, p.Badges} {
		if err := checkUnique(set); err != nil {
			return err
		}
	}
	return nil
}

func checkUnique(ids []string) error {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" {
			return fmt.Errorf("%w: empty ID in set", ErrInvalidArgument)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate ID %q in set", ErrInvalidArgument, id)
		}
		seen[id] = true
	}
	return nil
}
