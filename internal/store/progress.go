package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"github.com/abhisek/debugme/internal/progression"
)

// SaveProgress upserts the single learner progress row. Completion sets
// are stored as JSON arrays to preserve insertion order.
func (s *Store) SaveProgress(ctx context.Context, p progression.Progress) error {
	lessons, err := json.Marshal(p.CompletedLessons)
	if err != nil {
		return fmt.Errorf("marshal lessons: %w", err)
	}
	challenges, err := json.Marshal(p.CompletedChallenges)
	if err != nil {
		return fmt.Errorf("marshal challenges: %w", err)
	}
	badges, err := json.Marshal(p.Badges)
	if err != nil {
		return fmt.Errorf("marshal badges: %w", err)
	}

	lastPractice := ""
	if !p.LastPractice.IsZero() {
		lastPractice = p.LastPractice.Format(time.RFC3339Nano)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO progress (id, level, xp, xp_to_next_level, streak, completed_lessons, completed_challenges, badges, last_practice)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
			level = excluded.level,
			xp = excluded.xp,
			xp_to_next_level = excluded.xp_to_next_level,
			streak = excluded.streak,
			completed_lessons = excluded.completed_lessons,
			completed_challenges = excluded.completed_challenges,
			badges = excluded.badges,
			last_practice = excluded.last_practice`,
		p.Level, p.XP, p.XPToNextLevel, p.Streak,
		string(lessons), string(challenges), string(badges), lastPractice,
	)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// LoadProgress returns the persisted progress, or (nil, nil) when no
// progress has been saved yet.
func (s *Store) LoadProgress(ctx context.Context) (*progression.Progress, error) {
	var (
		p            progression.Progress
		lessons      string
		challenges   string
		badges       string
		lastPractice string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT level, xp, xp_to_next_level, streak, completed_lessons, completed_challenges, badges, last_practice
		 FROM progress WHERE id = 1`,
	).Scan(&p.Level, &p.XP, &p.XPToNextLevel, &p.Streak, &lessons, &challenges, &badges, &lastPractice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	if err := json.Unmarshal([]byte(lessons), &p.CompletedLessons); err != nil {
		return nil, fmt.Errorf("unmarshal lessons: %w", err)
	}
	if err := json.Unmarshal([]byte(challenges), &p.CompletedChallenges); err != nil {
		return nil, fmt.Errorf("unmarshal challenges: %w", err)
	}
	if err := json.Unmarshal([]byte(badges), &p.Badges); err != nil {
		return nil, fmt.Errorf("unmarshal badges: %w", err)
	}

	if lastPractice != "" {
		t, err := time.Parse(time.RFC3339Nano, lastPractice)
		if err != nil {
			return nil, fmt.Errorf("parse last practice: %w", err)
		}
		p.LastPractice = t
	}

	return &p, nil
}
