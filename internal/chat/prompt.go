package chat

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/debugme/internal/catalog"
	"github.com/abhisek/debugme/internal/profile"
	"github.com/abhisek/debugme/internal/recommend"
)

// Snapshot is the read-only learner state the tutor grounds its answers
// in. Callers build it from the progression engine and profile store so
// the tutor never mutates domain state.
type Snapshot struct {
	CompletedLessonIDs []string
	Profile            *profile.Profile // nil when no profile is selected
}

// buildSystemPrompt assembles the tutor system prompt: persona and
// instructions, then the learner's lesson history and career context,
// then the full catalog reference data.
func buildSystemPrompt(cat *catalog.Catalog, snap Snapshot) string {
	var b strings.Builder

	b.WriteString(systemPersona)
	b.WriteString("\n\n")
	b.WriteString(buildLessonContext(cat, snap.CompletedLessonIDs))
	b.WriteString(buildCareerContext(cat, snap.Profile))
	b.WriteString("\n\n=== AVAILABLE DATA ===\n\n")
	b.WriteString(buildCatalogReference(cat))
	b.WriteString("\n")
	b.WriteString(systemInstructions)

	return b.String()
}

const systemPersona = `You are BuggyChat, a friendly and helpful AI tutor for DebugMe. You have TWO main roles:

=== ROLE 1: PROGRAMMING TUTOR ===
1. Answer questions about the programming lessons the user has already completed, using the lesson content below as your reference.
2. Teach new programming concepts the user asks about, even if no lesson covers them yet.
3. Provide clear, beginner-friendly explanations with code examples when appropriate.
4. Be encouraging and supportive, explaining concepts step by step.

=== ROLE 2: CAREER GUIDANCE ADVISOR ===
You also help with career guidance, upskilling, reskilling, job interviews and automation risk analysis. Detect career questions from keywords like: career, job, interview, automation, upskill, reskilling, career path.

When providing career guidance:
1. Career recommendations: use the compatibility scores provided below and explain why each career fits the user's competencies.
2. Upskilling: point at competencies below level 3 and suggest the matching learning paths.
3. Reskilling: identify the gap between the current profile and the target career and order the competencies to work on.
4. Interview preparation: technical questions for the role, behavioral questions using the STAR method, and how to highlight relevant competencies.
5. Automation risk: start with the high-level view (risk level and percentage), and give the task-by-task breakdown, adaptation strategies and complementary skills only when asked for detail. Stay encouraging about adapting alongside automation.`

const systemInstructions = `=== INSTRUCTIONS ===

When answering:
- Detect whether the question is about programming or career guidance.
- Programming questions: use the lesson context and show code examples (JavaScript by default).
- Career questions: use the career profile context when present. Without a profile, still answer but mention that creating a profile enables personalized advice.
- Keep explanations clear and well structured, and use markdown formatting.`

func buildLessonContext(cat *catalog.Catalog, completedIDs []string) string {
	var completed []catalog.Lesson
	for _, id := range completedIDs {
		if lesson, ok := cat.LessonByID(id); ok {
			completed = append(completed, lesson)
		}
	}

	if len(completed) == 0 {
		return "The user has not completed any lessons yet.\n"
	}

	var b strings.Builder
	b.WriteString("The user has completed the following lessons:\n\n")
	for _, lesson := range completed {
		fmt.Fprintf(&b, "Lesson: %s\n", lesson.Title)
		fmt.Fprintf(&b, "Topic: %s\n", lesson.Topic)
		fmt.Fprintf(&b, "Difficulty: %s\n", lesson.Difficulty)
		fmt.Fprintf(&b, "Description: %s\n", lesson.Description)
		fmt.Fprintf(&b, "Explanation: %s\n", lesson.Explanation)
		fmt.Fprintf(&b, "Example:\n%s\n\n", lesson.Example)
	}
	return b.String()
}

func buildCareerContext(cat *catalog.Catalog, prof *profile.Profile) string {
	if prof == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n\n=== CAREER PROFILE CONTEXT ===\nThe user has a career profile named %q with the following competency levels (1-5 scale):\n\n", prof.Name)

	for _, comp := range cat.Competencies() {
		fmt.Fprintf(&b, "- %s (%s): Level %d/5 - %s\n",
			comp.Name, comp.Category, prof.Competencies[comp.Name], comp.Description)
	}

	// All careers ranked, not just the top picks.
	scores := recommend.RecommendCareers(prof.Competencies, cat.Careers(), len(cat.Careers()))
	b.WriteString("\nCareer Compatibility Scores (based on profile competencies):\n")
	for _, s := range scores {
		fmt.Fprintf(&b, "- %s: %.1f%% match\n", s.Career.Name, s.Score)
	}

	gaps := recommend.RecommendLearningPaths(prof.Competencies, cat)
	if len(gaps) > 0 {
		b.WriteString("\nSkills needing improvement (below level 3):\n")
		for _, g := range gaps {
			fmt.Fprintf(&b, "- %s: Current level %d/5\n", g.Competency, g.Level)
		}
	}

	return b.String()
}

func buildCatalogReference(cat *catalog.Catalog) string {
	var b strings.Builder

	b.WriteString("Competencies (used for career matching):\n")
	for _, comp := range cat.Competencies() {
		fmt.Fprintf(&b, "- %s (%s): %s\n", comp.Name, comp.Category, comp.Description)
	}

	b.WriteString("\nAvailable Careers:\n")
	for _, career := range cat.Careers() {
		comps := make([]string, 0, len(career.RequiredCompetencies))
		for name := range career.RequiredCompetencies {
			comps = append(comps, name)
		}
		sort.Strings(comps)
		for i, name := range comps {
			comps[i] = fmt.Sprintf("%s (%.0f%%)", name, career.RequiredCompetencies[name]*100)
		}
		fmt.Fprintf(&b, "- %s: Requires %s. Learning path: %s\n",
			career.Name, strings.Join(comps, ", "), strings.Join(career.LearningPath, "; "))
	}

	b.WriteString("\nAutomation Risk Data:\n")
	for _, career := range cat.Careers() {
		risk, ok := cat.RiskFor(career.Name)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s risk (%d%% automation risk)\n  Task breakdown:\n", career.Name, risk.Level, risk.Percentage)
		for _, t := range risk.TaskBreakdown {
			fmt.Fprintf(&b, "    - %s: %s risk (%s)\n", t.Task, t.RiskLevel, t.AutomationLikelihood)
		}
		fmt.Fprintf(&b, "  Adaptation strategies: %s\n", strings.Join(risk.AdaptationStrategies, "; "))
		fmt.Fprintf(&b, "  Complementary skills: %s\n\n", strings.Join(risk.ComplementarySkills, ", "))
	}

	b.WriteString("Competency Learning Paths:\n")
	for _, comp := range cat.Competencies() {
		paths := cat.LearningPathsFor(comp.Name)
		if len(paths) == 0 {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", comp.Name, strings.Join(paths, "; "))
	}

	return b.String()
}
