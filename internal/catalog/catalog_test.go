package catalog

import (
	"strings"
	"testing"
)

func TestLoad_SeedDataIsValid(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := len(c.Competencies()); got != 10 {
		t.Errorf("competencies = %d, want 10", got)
	}
	if got := len(c.Careers()); got != 6 {
		t.Errorf("careers = %d, want 6", got)
	}
	if got := len(c.Lessons()); got != 5 {
		t.Errorf("lessons = %d, want 5", got)
	}
	if got := len(c.Challenges()); got != 5 {
		t.Errorf("challenges = %d, want 5", got)
	}
}

func TestLoad_EveryCareerHasRisk(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	for _, career := range c.Careers() {
		risk, ok := c.RiskFor(career.Name)
		if !ok {
			t.Errorf("no automation risk for %q", career.Name)
			continue
		}
		if risk.Percentage < 0 || risk.Percentage > 100 {
			t.Errorf("%q risk percentage = %d, want [0,100]", career.Name, risk.Percentage)
		}
	}
}

func TestLoad_EveryCompetencyHasPaths(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	for _, comp := range c.Competencies() {
		if len(c.LearningPathsFor(comp.Name)) == 0 {
			t.Errorf("no learning paths for %q", comp.Name)
		}
	}
}

func TestCareerByName(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	career, ok := c.CareerByName("Data Scientist")
	if !ok {
		t.Fatal("Data Scientist not found")
	}
	if w := career.RequiredCompetencies["Analytical Thinking"]; w != 0.30 {
		t.Errorf("Analytical Thinking weight = %v, want 0.30", w)
	}
	if _, ok := c.CareerByName("Astronaut"); ok {
		t.Error("unknown career name should not resolve")
	}
}

func TestValidate_RejectsBadCatalog(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Catalog)
		wantMsg string
	}{
		{
			name: "duplicate competency",
			mutate: func(c *Catalog) {
				c.competencies = append(c.competencies, c.competencies[0])
			},
			wantMsg: "duplicate competency",
		},
		{
			name: "weight out of range",
			mutate: func(c *Catalog) {
				c.careers[0].RequiredCompetencies["Creativity"] = 1.5
			},
			wantMsg: "out of range",
		},
		{
			name: "career requires unknown competency",
			mutate: func(c *Catalog) {
				c.careers[0].RequiredCompetencies["Juggling"] = 0.5
			},
			wantMsg: "unknown competency",
		},
		{
			name: "risk for unknown career",
			mutate: func(c *Catalog) {
				c.risks["Astronaut"] = AutomationRisk{Level: RiskLow, Percentage: 10}
			},
			wantMsg: "unknown career",
		},
		{
			name: "quiz answer index out of range",
			mutate: func(c *Catalog) {
				c.lessons[0].Quiz[0].CorrectAnswer = 99
			},
			wantMsg: "out of range",
		},
		{
			name: "non-positive XP reward",
			mutate: func(c *Catalog) {
				c.challenges[0].XPReward = 0
			},
			wantMsg: "non-positive XP",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load()
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			tt.mutate(c)
			err = c.validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}
