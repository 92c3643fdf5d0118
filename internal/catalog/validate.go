package catalog

import (
	"fmt"
	"strings"
)

// validate performs all structural checks on the loaded catalog.
// Returns a combined error describing all problems found, or nil if valid.
func (c *Catalog) validate() error {
	var errs []string

	seen := make(map[string]bool, len(c.competencies))
	for _, comp := range c.competencies {
		if comp.Name == "" {
			errs = append(errs, "competency with empty name")
			continue
		}
		if seen[comp.Name] {
			errs = append(errs, fmt.Sprintf("duplicate competency: %q", comp.Name))
		}
		seen[comp.Name] = true
		if comp.Category != CategoryTechnical && comp.Category != CategoryBehavioral {
			errs = append(errs, fmt.Sprintf("competency %q has unknown category %q", comp.Name, comp.Category))
		}
	}

	careerSeen := make(map[string]bool, len(c.careers))
	for _, car := range c.careers {
		if car.Name == "" {
			errs = append(errs, "career with empty name")
			continue
		}
		if careerSeen[car.Name] {
			errs = append(errs, fmt.Sprintf("duplicate career: %q", car.Name))
		}
		careerSeen[car.Name] = true

		for comp, w := range car.RequiredCompetencies {
			if !seen[comp] {
				errs = append(errs, fmt.Sprintf("career %q requires unknown competency %q", car.Name, comp))
			}
			if w <= 0 || w > 1 {
				errs = append(errs, fmt.Sprintf("career %q weight for %q out of range (0,1]: %v", car.Name, comp, w))
			}
		}
	}

	for comp := range c.paths {
		if !seen[comp] {
			errs = append(errs, fmt.Sprintf("learning path defined for unknown competency %q", comp))
		}
	}

	for career, risk := range c.risks {
		if !careerSeen[career] {
			errs = append(errs, fmt.Sprintf("automation risk defined for unknown career %q", career))
		}
		if risk.Percentage < 0 || risk.Percentage > 100 {
			errs = append(errs, fmt.Sprintf("automation risk for %q has percentage %d outside [0,100]", career, risk.Percentage))
		}
		if !validRiskLevel(risk.Level) {
			errs = append(errs, fmt.Sprintf("automation risk for %q has unknown level %q", career, risk.Level))
		}
		for _, t := range risk.TaskBreakdown {
			if !validRiskLevel(t.RiskLevel) {
				errs = append(errs, fmt.Sprintf("task %q in %q has unknown risk level %q", t.Task, career, t.RiskLevel))
			}
		}
		for _, skill := range risk.ComplementarySkills {
			if !seen[skill] {
				errs = append(errs, fmt.Sprintf("automation risk for %q names unknown complementary skill %q", career, skill))
			}
		}
	}

	lessonSeen := make(map[string]bool, len(c.lessons))
	for _, l := range c.lessons {
		if l.ID == "" {
			errs = append(errs, fmt.Sprintf("lesson %q with empty ID", l.Title))
			continue
		}
		if lessonSeen[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
		}
		lessonSeen[l.ID] = true
		if l.XPReward <= 0 {
			errs = append(errs, fmt.Sprintf("lesson %q has non-positive XP reward %d", l.ID, l.XPReward))
		}
		if len(l.Quiz) == 0 {
			errs = append(errs, fmt.Sprintf("lesson %q has no quiz questions", l.ID))
		}
		for i, q := range l.Quiz {
			if len(q.Options) == 0 {
				errs = append(errs, fmt.Sprintf("lesson %q quiz %d has no options", l.ID, i))
				continue
			}
			if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
				errs = append(errs, fmt.Sprintf("lesson %q quiz %d answer index %d out of range", l.ID, i, q.CorrectAnswer))
			}
		}
	}

	challengeSeen := make(map[string]bool, len(c.challenges))
	for _, ch := range c.challenges {
		if ch.ID == "" {
			errs = append(errs, fmt.Sprintf("challenge %q with empty ID", ch.Title))
			continue
		}
		if challengeSeen[ch.ID] {
			errs = append(errs, fmt.Sprintf("duplicate challenge ID: %q", ch.ID))
		}
		challengeSeen[ch.ID] = true
		if ch.XPReward <= 0 {
			errs = append(errs, fmt.Sprintf("challenge %q has non-positive XP reward %d", ch.ID, ch.XPReward))
		}
		if len(ch.TestCases) == 0 {
			errs = append(errs, fmt.Sprintf("challenge %q has no test cases", ch.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d problem(s):\n  %s", len(errs), strings.Join(errs, "\n  "))
	}
	return nil
}

func validRiskLevel(l RiskLevel) bool {
	return l == RiskLow || l == RiskMedium || l == RiskHigh
}
