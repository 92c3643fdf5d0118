package catalog

// defaultCareers returns the career definitions in declaration order.
// Catalog order is the tie-break for equal compatibility scores.
func defaultCareers() []Career {
	return []Career{
		{
			Name: "Data Scientist",
			RequiredCompetencies: map[string]float64{
				"Programming Logic":   0.25,
				"Analytical Thinking": 0.30,
				"Curiosity":           0.10,
				"Collaboration":       0.10,
				"Problem Solving":     0.25,
			},
			LearningPath: []string{
				"Python programming course",
				"Specialization in data science and statistics",
				"Practical data analysis projects",
			},
		},
		{
			Name: "Software Engineer",
			RequiredCompetencies: map[string]float64{
				"Programming Logic": 0.30,
				"Problem Solving":   0.25,
				"Collaboration":     0.15,
				"Adaptability":      0.15,
				"Communication":     0.15,
			},
			LearningPath: []string{
				"Advanced object-oriented programming course",
				"Practice versioning with Git and GitHub",
				"Contribute to open source projects",
			},
		},
		{
			Name: "UX Designer",
			RequiredCompetencies: map[string]float64{
				"Creativity":    0.30,
				"Communication": 0.20,
				"Curiosity":     0.10,
				"Collaboration": 0.20,
				"Adaptability":  0.20,
			},
			LearningPath: []string{
				"User interface and experience design courses",
				"Usability and user behavior studies",
				"Build a portfolio with design projects",
			},
		},
		{
			Name: "Cybersecurity Specialist",
			RequiredCompetencies: map[string]float64{
				"Programming Logic":   0.20,
				"Analytical Thinking": 0.30,
				"Problem Solving":     0.30,
				"Adaptability":        0.20,
			},
			LearningPath: []string{
				"Information security training",
				"Certifications like CEH or CompTIA Security+",
				"Practice in capture the flag (CTF) environments",
			},
		},
		{
			Name: "Machine Learning Engineer",
			RequiredCompetencies: map[string]float64{
				"Programming Logic":       0.20,
				"Artificial Intelligence": 0.40,
				"Analytical Thinking":     0.25,
				"Curiosity":               0.15,
			},
			LearningPath: []string{
				"Intensive Machine Learning course",
				"AI projects applied to real problems",
				"Study advanced learning algorithms",
			},
		},
		{
			Name: "Tech Entrepreneur",
			RequiredCompetencies: map[string]float64{
				"Creativity":    0.30,
				"Leadership":    0.30,
				"Adaptability":  0.20,
				"Communication": 0.20,
			},
			LearningPath: []string{
				"Entrepreneurship and innovation courses",
				"Participation in hackathons and incubators",
				"Reading about business models and startups",
			},
		},
	}
}
