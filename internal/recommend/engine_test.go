package recommend

import (
	"errors"
	"math"
	"testing"

	"github.com/abhisek/debugme/internal/catalog"
)

func twoSkillCareer() catalog.Career {
	return catalog.Career{
		Name: "Test Career",
		RequiredCompetencies: map[string]float64{
			"A": 0.5,
			"B": 0.5,
		},
	}
}

func TestScoreCareer_PerfectProfile(t *testing.T) {
	got := ScoreCareer(twoSkillCareer(), map[string]int{"A": 5, "B": 5})
	if got != 100.0 {
		t.Errorf("score = %v, want 100.0", got)
	}
}

func TestScoreCareer_EmptyProfile(t *testing.T) {
	got := ScoreCareer(twoSkillCareer(), map[string]int{})
	if got != 0.0 {
		t.Errorf("score = %v, want 0.0", got)
	}
}

func TestScoreCareer_ZeroWeights(t *testing.T) {
	career := catalog.Career{Name: "Empty", RequiredCompetencies: map[string]float64{}}
	got := ScoreCareer(career, map[string]int{"A": 5})
	if got != 0.0 {
		t.Errorf("score = %v, want 0.0", got)
	}
}

func TestScoreCareer_MissingRatingIsZeroNotSkipped(t *testing.T) {
	// Rating only A at 5 gives half the weight: 50%, not 100%.
	got := ScoreCareer(twoSkillCareer(), map[string]int{"A": 5})
	if math.Abs(got-50.0) > 1e-9 {
		t.Errorf("score = %v, want 50.0", got)
	}
}

func TestScoreCareer_Deterministic(t *testing.T) {
	career := catalog.Career{
		Name: "Mixed",
		RequiredCompetencies: map[string]float64{
			"A": 0.25, "B": 0.30, "C": 0.10, "D": 0.35,
		},
	}
	ratings := map[string]int{"A": 3, "B": 1, "C": 4, "D": 2}
	first := ScoreCareer(career, ratings)
	for range 50 {
		if got := ScoreCareer(career, ratings); got != first {
			t.Fatalf("score varied across calls: %v vs %v", got, first)
		}
	}
	if first < 0 || first > 100 {
		t.Errorf("score %v outside [0,100]", first)
	}
}

func TestRecommendCareers_TiesKeepCatalogOrder(t *testing.T) {
	careers := []catalog.Career{
		{Name: "First", RequiredCompetencies: map[string]float64{"A": 0.5}},
		{Name: "Second", RequiredCompetencies: map[string]float64{"A": 0.5}},
		{Name: "Third", RequiredCompetencies: map[string]float64{"B": 1.0}},
	}
	// First and Second tie exactly; Third outranks both.
	ratings := map[string]int{"A": 2, "B": 5}

	got := RecommendCareers(ratings, careers, 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Career.Name != "Third" {
		t.Errorf("top match = %q, want Third", got[0].Career.Name)
	}
	if got[1].Career.Name != "First" || got[2].Career.Name != "Second" {
		t.Errorf("tied careers ordered %q, %q; want First, Second",
			got[1].Career.Name, got[2].Career.Name)
	}
}

func TestRecommendCareers_LimitBehavior(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load error: %v", err)
	}
	careers := cat.Careers()

	if got := RecommendCareers(nil, careers, 0); len(got) != DefaultLimit {
		t.Errorf("limit 0 returned %d results, want %d", len(got), DefaultLimit)
	}
	if got := RecommendCareers(nil, careers, 100); len(got) != len(careers) {
		t.Errorf("oversized limit returned %d results, want %d", len(got), len(careers))
	}

	scored := RecommendCareers(map[string]int{"Programming Logic": 5}, careers, 100)
	for i := 1; i < len(scored); i++ {
		if scored[i].Score > scored[i-1].Score {
			t.Errorf("results not descending at %d: %v > %v", i, scored[i].Score, scored[i-1].Score)
		}
	}
}

func TestRecommendLearningPaths_GapDetection(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load error: %v", err)
	}

	ratings := map[string]int{"Creativity": 2, "Leadership": 4}
	gaps := RecommendLearningPaths(ratings, cat)

	if len(gaps) != 1 {
		t.Fatalf("gaps = %d, want 1 (%+v)", len(gaps), gaps)
	}
	if gaps[0].Competency != "Creativity" {
		t.Errorf("gap = %q, want Creativity", gaps[0].Competency)
	}
	if len(gaps[0].Paths) == 0 {
		t.Error("gap has no learning paths")
	}
}

func TestRecommendLearningPaths_CatalogDeclarationOrder(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load error: %v", err)
	}

	// Everything rated below threshold: gaps must come back in catalog order.
	ratings := make(map[string]int)
	for _, comp := range cat.Competencies() {
		ratings[comp.Name] = 1
	}

	gaps := RecommendLearningPaths(ratings, cat)
	comps := cat.Competencies()
	if len(gaps) != len(comps) {
		t.Fatalf("gaps = %d, want %d", len(gaps), len(comps))
	}
	for i, gap := range gaps {
		if gap.Competency != comps[i].Name {
			t.Errorf("gap %d = %q, want %q", i, gap.Competency, comps[i].Name)
		}
	}
}

func TestRecommendLearningPaths_EmptyProfile(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load error: %v", err)
	}
	if gaps := RecommendLearningPaths(nil, cat); len(gaps) != 0 {
		t.Errorf("empty profile produced %d gaps, want 0", len(gaps))
	}
}

func TestAutomationRiskFor(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load error: %v", err)
	}

	risk, err := AutomationRiskFor("UX Designer", cat)
	if err != nil {
		t.Fatalf("AutomationRiskFor error: %v", err)
	}
	if risk.Level != catalog.RiskLow || risk.Percentage != 25 {
		t.Errorf("UX Designer risk = %s/%d, want low/25", risk.Level, risk.Percentage)
	}

	if _, err := AutomationRiskFor("Astronaut", cat); !errors.Is(err, ErrUnknownCareer) {
		t.Errorf("unknown career error = %v, want ErrUnknownCareer", err)
	}
}
