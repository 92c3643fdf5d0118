// Package profile holds user-entered competency profiles: an ordered list
// plus at most one selected profile. Independent of progression state.
package profile

import (
	"errors"
	"fmt"
	"maps"

	"github.com/abhisek/debugme/internal/catalog"
)

// Rating bounds for a competency level inside a profile.
const (
	MinLevel = 1
	MaxLevel = 5
)

var (
	// ErrInvalidLevel reports a competency rating outside [MinLevel, MaxLevel].
	ErrInvalidLevel = errors.New("competency level out of range")

	// ErrIndexOutOfRange reports a selection index with no profile behind it.
	ErrIndexOutOfRange = errors.New("profile index out of range")

	// ErrNoProfiles reports a selection attempt on an empty store.
	ErrNoProfiles = errors.New("no profiles exist")
)

// Profile is a named competency self-assessment. Names need not be unique.
type Profile struct {
	Name         string
	Competencies map[string]int // competency name -> level in [1,5]
}

func (p Profile) clone() Profile {
	p.Competencies = maps.Clone(p.Competencies)
	return p
}

// Store owns the ordered profile list and the current selection.
// Like the progression engine it assumes a single writer.
type Store struct {
	profiles []Profile
	selected int // index into profiles, or -1 for none
}

// NewStore creates an empty store with no selection.
func NewStore() *Store {
	return &Store{selected: -1}
}

// Restore rebuilds a store from persisted profiles and selection index
// (-1 for none), validating every rating.
func Restore(profiles []Profile, selected int) (*Store, error) {
	s := NewStore()
	for _, p := range profiles {
		if _, err := s.Add(p); err != nil {
			return nil, fmt.Errorf("profile %q: %w", p.Name, err)
		}
	}
	if selected >= 0 {
		if err := s.Select(selected); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add validates and appends a profile, returning its index.
func (s *Store) Add(p Profile) (int, error) {
	for comp, level := range p.Competencies {
		if level < MinLevel || level > MaxLevel {
			return 0, fmt.Errorf("%w: %q rated %d", ErrInvalidLevel, comp, level)
		}
	}
	s.profiles = append(s.profiles, p.clone())
	return len(s.profiles) - 1, nil
}

// Select marks the profile at index as active.
func (s *Store) Select(index int) error {
	if len(s.profiles) == 0 {
		return ErrNoProfiles
	}
	if index < 0 || index >= len(s.profiles) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(s.profiles))
	}
	s.selected = index
	return nil
}

// ClearSelection removes the active selection.
func (s *Store) ClearSelection() {
	s.selected = -1
}

// Selected returns the active profile, or ok=false when none is selected.
func (s *Store) Selected() (Profile, bool) {
	if s.selected < 0 {
		return Profile{}, false
	}
	return s.profiles[s.selected].clone(), true
}

// SelectedIndex returns the active index, or -1 when none is selected.
func (s *Store) SelectedIndex() int {
	return s.selected
}

// Len returns the number of stored profiles.
func (s *Store) Len() int {
	return len(s.profiles)
}

// At returns the profile at index.
func (s *Store) At(index int) (Profile, error) {
	if index < 0 || index >= len(s.profiles) {
		return Profile{}, fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(s.profiles))
	}
	return s.profiles[index].clone(), nil
}

// All returns copies of every profile in insertion order.
func (s *Store) All() []Profile {
	out := make([]Profile, len(s.profiles))
	for i, p := range s.profiles {
		out[i] = p.clone()
	}
	return out
}

// Draft returns a fully populated default assessment rating every known
// competency at MinLevel, so callers never special-case missing ratings.
func Draft(competencies []catalog.Competency) map[string]int {
	draft := make(map[string]int, len(competencies))
	for _, c := range competencies {
		draft[c.Name] = MinLevel
	}
	return draft
}
