package catalog

// defaultCompetencies returns the competency axes in declaration order.
// Declaration order is load-bearing: learning-path recommendations iterate
// competencies in this order to stay deterministic.
func defaultCompetencies() []Competency {
	return []Competency{
		{
			Name:        "Programming Logic",
			Category:    CategoryTechnical,
			Description: "Ability to understand algorithms and logical structures",
		},
		{
			Name:        "Creativity",
			Category:    CategoryBehavioral,
			Description: "Ability to propose innovative and original solutions",
		},
		{
			Name:        "Collaboration",
			Category:    CategoryBehavioral,
			Description: "Work well in teams and share knowledge",
		},
		{
			Name:        "Adaptability",
			Category:    CategoryBehavioral,
			Description: "Ability to adjust quickly to changes",
		},
		{
			Name:        "Analytical Thinking",
			Category:    CategoryTechnical,
			Description: "Analyze data and problems in a structured way",
		},
		{
			Name:        "Artificial Intelligence",
			Category:    CategoryTechnical,
			Description: "Knowledge of AI algorithms and tools",
		},
		{
			Name:        "Communication",
			Category:    CategoryBehavioral,
			Description: "Express ideas clearly and objectively",
		},
		{
			Name:        "Problem Solving",
			Category:    CategoryBehavioral,
			Description: "Diagnose and solve problems effectively",
		},
		{
			Name:        "Curiosity",
			Category:    CategoryBehavioral,
			Description: "Continuous desire to learn new things",
		},
		{
			Name:        "Leadership",
			Category:    CategoryBehavioral,
			Description: "Influence and motivate people to achieve goals",
		},
	}
}

// defaultLearningPaths returns the per-competency improvement suggestions.
func defaultLearningPaths() map[string][]string {
	return map[string][]string{
		"Programming Logic": {
			"Introductory logic course on Codecademy",
			"Solve challenges on platforms like HackerRank or LeetCode",
		},
		"Creativity": {
			"Practice brainstorming and design thinking",
			"Participate in innovation workshops",
		},
		"Collaboration": {
			"Work on team projects",
			"Study agile methodologies",
		},
		"Adaptability": {
			"Take courses on change management",
			"Exercise flexibility in multidisciplinary projects",
		},
		"Analytical Thinking": {
			"Learn basic statistics and data analysis",
			"Practice interpreting dashboards and graphs",
		},
		"Artificial Intelligence": {
			"Take an introduction to Machine Learning course",
			"Explore AI libraries like TensorFlow or PyTorch",
		},
		"Communication": {
			"Participate in debates and presentations",
			"Study storytelling techniques",
		},
		"Problem Solving": {
			"Practice logic and puzzles",
			"Apply methodologies like Design Thinking",
		},
		"Curiosity": {
			"Read articles from different areas regularly",
			"Explore new hobbies and tools",
		},
		"Leadership": {
			"Take team management courses",
			"Read biographies of inspiring leaders",
		},
	}
}
