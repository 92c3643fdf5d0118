// Package catalog holds the static reference data the engines consume:
// competencies, careers, learning paths, automation-risk tables, lessons
// and challenges. The data is validated once at load and never mutated.
package catalog

import (
	"fmt"
	"slices"
)

// Catalog is the immutable reference data set, with lookup indices
// precomputed at load.
type Catalog struct {
	competencies []Competency
	careers      []Career
	paths        map[string][]string
	risks        map[string]AutomationRisk
	lessons      []Lesson
	challenges   []Challenge

	competencyByName map[string]*Competency
	careerByName     map[string]*Career
	lessonByID       map[string]*Lesson
	challengeByID    map[string]*Challenge
}

// Load builds the catalog from the seed data and validates it.
// Validation failures are startup errors; the returned catalog is
// safe for unlimited concurrent readers.
func Load() (*Catalog, error) {
	c := &Catalog{
		competencies: defaultCompetencies(),
		careers:      defaultCareers(),
		paths:        defaultLearningPaths(),
		risks:        defaultAutomationRisks(),
		lessons:      defaultLessons(),
		challenges:   defaultChallenges(),
	}

	c.competencyByName = make(map[string]*Competency, len(c.competencies))
	for i := range c.competencies {
		c.competencyByName[c.competencies[i].Name] = &c.competencies[i]
	}
	c.careerByName = make(map[string]*Career, len(c.careers))
	for i := range c.careers {
		c.careerByName[c.careers[i].Name] = &c.careers[i]
	}
	c.lessonByID = make(map[string]*Lesson, len(c.lessons))
	for i := range c.lessons {
		c.lessonByID[c.lessons[i].ID] = &c.lessons[i]
	}
	c.challengeByID = make(map[string]*Challenge, len(c.challenges))
	for i := range c.challenges {
		c.challengeByID[c.challenges[i].ID] = &c.challenges[i]
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("catalog validation: %w", err)
	}
	return c, nil
}

// Competencies returns all competencies in declaration order.
func (c *Catalog) Competencies() []Competency {
	return slices.Clone(c.competencies)
}

// CompetencyByName returns a competency definition by its unique name.
func (c *Catalog) CompetencyByName(name string) (Competency, bool) {
	comp, ok := c.competencyByName[name]
	if !ok {
		return Competency{}, false
	}
	return *comp, true
}

// Careers returns all career definitions in declaration order.
func (c *Catalog) Careers() []Career {
	return slices.Clone(c.careers)
}

// CareerByName returns a career definition by its unique name.
func (c *Catalog) CareerByName(name string) (Career, bool) {
	car, ok := c.careerByName[name]
	if !ok {
		return Career{}, false
	}
	return *car, true
}

// LearningPathsFor returns the catalog-defined improvement suggestions for
// a competency, or nil if none are defined.
func (c *Catalog) LearningPathsFor(competency string) []string {
	return slices.Clone(c.paths[competency])
}

// RiskFor returns the automation-risk record for a career name.
func (c *Catalog) RiskFor(career string) (AutomationRisk, bool) {
	r, ok := c.risks[career]
	return r, ok
}

// Lessons returns all lessons in declaration order.
func (c *Catalog) Lessons() []Lesson {
	return slices.Clone(c.lessons)
}

// LessonByID returns a lesson by its unique ID.
func (c *Catalog) LessonByID(id string) (Lesson, bool) {
	l, ok := c.lessonByID[id]
	if !ok {
		return Lesson{}, false
	}
	return *l, true
}

// Challenges returns all challenges in declaration order.
func (c *Catalog) Challenges() []Challenge {
	return slices.Clone(c.challenges)
}

// ChallengeByID returns a challenge by its unique ID.
func (c *Catalog) ChallengeByID(id string) (Challenge, bool) {
	ch, ok := c.challengeByID[id]
	if !ok {
		return Challenge{}, false
	}
	return *ch, true
}
