package catalog

// Category classifies a competency axis.
type Category string

const (
	CategoryTechnical  Category = "Technical"
	CategoryBehavioral Category = "Behavioral"
)

// Competency is a named skill axis rated 1-5 in a profile.
type Competency struct {
	Name        string
	Category    Category
	Description string
}

// Career describes a role as a weighted set of required competencies
// plus a suggested learning path. Weights are in (0,1] and need not sum to 1.
type Career struct {
	Name                 string
	RequiredCompetencies map[string]float64
	LearningPath         []string
}

// RiskLevel grades how exposed a career or task is to automation.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// TaskRisk describes the automation exposure of a single task within a career.
type TaskRisk struct {
	Task                 string
	RiskLevel            RiskLevel
	AutomationLikelihood string
}

// AutomationRisk is the per-career automation outlook.
type AutomationRisk struct {
	Level                RiskLevel
	Percentage           int // 0-100
	TaskBreakdown        []TaskRisk
	AdaptationStrategies []string
	ComplementarySkills  []string
}

// Difficulty grades lessons and challenges for display and gating.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyEasy         Difficulty = "easy"
	DifficultyMedium       Difficulty = "medium"
	DifficultyHard         Difficulty = "hard"
)

// QuizQuestion is a single multiple-choice item within a lesson.
type QuizQuestion struct {
	Text          string
	Options       []string
	CorrectAnswer int // index into Options
}

// Lesson is a teachable unit: explanation, worked example, then a quiz.
type Lesson struct {
	ID            string
	Title         string
	Description   string
	Topic         string
	Difficulty    Difficulty
	XPReward      int
	RequiredLevel int
	Explanation   string
	Example       string
	Quiz          []QuizQuestion
}

// TestCase is a displayed input/expected pair for a challenge.
// The checker is a heuristic stub; cases are never executed.
type TestCase struct {
	Input    string
	Expected string
}

// Challenge is a coding exercise with starter code and hints.
type Challenge struct {
	ID            string
	Title         string
	Description   string
	Topic         string
	Difficulty    Difficulty
	XPReward      int
	RequiredLevel int
	Problem       string
	StarterCode   string
	Solution      string
	TestCases     []TestCase
	Hints         []string
}
