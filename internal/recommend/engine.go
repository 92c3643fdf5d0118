// Package recommend derives career fit and improvement suggestions from a
// competency profile. Every function is pure, so concurrent callers need
// no synchronization.
package recommend

import (
	"errors"
	"fmt"
	"sort"

	"github.com/abhisek/debugme/internal/catalog"
)

// ErrUnknownCareer reports an automation-risk lookup for a career the
// catalog does not define.
var ErrUnknownCareer = errors.New("unknown career")

// DefaultLimit is the number of career matches returned when the caller
// does not ask for more.
const DefaultLimit = 3

// gapThreshold is the rating below which a competency counts as an
// improvement area.
const gapThreshold = 3

// Compatibility pairs a career with its computed fit score in [0,100].
type Compatibility struct {
	Career catalog.Career
	Score  float64
}

// Gap names a below-threshold competency together with its catalog-defined
// learning paths.
type Gap struct {
	Competency string
	Level      int
	Paths      []string
}

// ScoreCareer computes the weighted-average fit of the given ratings to a
// career's required competencies, as a percentage in [0,100]. A missing
// rating contributes level 0, so an unrated skill is maximally penalized
// rather than skipped. A career with zero total weight scores 0.
func ScoreCareer(career catalog.Career, ratings map[string]int) float64 {
	// Sum in sorted key order: float addition is not associative, and map
	// iteration order would otherwise leak into the result.
	comps := make([]string, 0, len(career.RequiredCompetencies))
	for comp := range career.RequiredCompetencies {
		comps = append(comps, comp)
	}
	sort.Strings(comps)

	var sumWeights float64
	for _, comp := range comps {
		sumWeights += career.RequiredCompetencies[comp]
	}
	if sumWeights == 0 {
		return 0
	}

	var total float64
	for _, comp := range comps {
		level := ratings[comp] // 0 when absent
		total += (float64(level) / 5) * career.RequiredCompetencies[comp]
	}
	return (total / sumWeights) * 100
}

// RecommendCareers scores every catalog career against the ratings and
// returns the top matches, highest first. Ties keep catalog order (stable
// sort), so results are fully deterministic. limit <= 0 means DefaultLimit;
// a limit beyond the catalog returns everything.
func RecommendCareers(ratings map[string]int, careers []catalog.Career, limit int) []Compatibility {
	if limit <= 0 {
		limit = DefaultLimit
	}

	results := make([]Compatibility, len(careers))
	for i, career := range careers {
		results[i] = Compatibility{Career: career, Score: ScoreCareer(career, ratings)}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit < len(results) {
		results = results[:limit]
	}
	return results
}

// RecommendLearningPaths returns an improvement plan: every competency the
// profile rates below the gap threshold that has catalog-defined learning
// paths. Iteration follows catalog declaration order, never map order, so
// the result is deterministic. An empty result means no improvement areas.
func RecommendLearningPaths(ratings map[string]int, cat *catalog.Catalog) []Gap {
	var gaps []Gap
	for _, comp := range cat.Competencies() {
		level, rated := ratings[comp.Name]
		if !rated || level >= gapThreshold {
			continue
		}
		paths := cat.LearningPathsFor(comp.Name)
		if len(paths) == 0 {
			continue
		}
		gaps = append(gaps, Gap{Competency: comp.Name, Level: level, Paths: paths})
	}
	return gaps
}

// AutomationRiskFor looks up the automation-risk record for a career name.
func AutomationRiskFor(name string, cat *catalog.Catalog) (catalog.AutomationRisk, error) {
	risk, ok := cat.RiskFor(name)
	if !ok {
		return catalog.AutomationRisk{}, fmt.Errorf("%w: %q", ErrUnknownCareer, name)
	}
	return risk, nil
}
