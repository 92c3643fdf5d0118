package store

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/abhisek/debugme/internal/profile"
)

// SaveProfiles replaces the persisted profile list and selection.
// Profiles are stored in order; selected marks at most one row.
func (s *Store) SaveProfiles(ctx context.Context, profiles []profile.Profile, selected int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM profiles"); err != nil {
		return fmt.Errorf("clear profiles: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO profiles (position, name, competencies, selected) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range profiles {
		competencies, err := json.Marshal(p.Competencies)
		if err != nil {
			return fmt.Errorf("marshal competencies for %q: %w", p.Name, err)
		}
		sel := 0
		if i == selected {
			sel = 1
		}
		if _, err := stmt.ExecContext(ctx, i, p.Name, string(competencies), sel); err != nil {
			return fmt.Errorf("insert profile %q: %w", p.Name, err)
		}
	}

	return tx.Commit()
}

// LoadProfiles returns the persisted profiles in order and the selected
// index, or -1 when no profile is selected.
func (s *Store) LoadProfiles(ctx context.Context) ([]profile.Profile, int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, competencies, selected FROM profiles ORDER BY position ASC`)
	if err != nil {
		return nil, -1, fmt.Errorf("load profiles: %w", err)
	}
	defer rows.Close()

	var profiles []profile.Profile
	selected := -1
	for rows.Next() {
		var (
			p            profile.Profile
			competencies string
			sel          int
		)
		if err := rows.Scan(&p.Name, &competencies, &sel); err != nil {
			return nil, -1, err
		}
		if err := json.Unmarshal([]byte(competencies), &p.Competencies); err != nil {
			return nil, -1, fmt.Errorf("unmarshal competencies for %q: %w", p.Name, err)
		}
		if sel == 1 {
			selected = len(profiles)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	return profiles, selected, nil
}
