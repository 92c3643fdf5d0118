package catalog

// defaultAutomationRisks returns the per-career automation outlook records.
func defaultAutomationRisks() map[string]AutomationRisk {
	return map[string]AutomationRisk{
		"Data Scientist": {
			Level:      RiskMedium,
			Percentage: 45,
			TaskBreakdown: []TaskRisk{
				{
					Task:                 "Data cleaning and preprocessing",
					RiskLevel:            RiskHigh,
					AutomationLikelihood: "80% - Automated tools can handle routine data cleaning",
				},
				{
					Task:                 "Statistical analysis and modeling",
					RiskLevel:            RiskMedium,
					AutomationLikelihood: "50% - AI can assist but human insight needed for interpretation",
				},
				{
					Task:                 "Business strategy and communication",
					RiskLevel:            RiskLow,
					AutomationLikelihood: "20% - Requires human judgment and stakeholder interaction",
				},
				{
					Task:                 "Complex problem-solving and research",
					RiskLevel:            RiskLow,
					AutomationLikelihood: "25% - Creative problem-solving remains human domain",
				},
			},
			AdaptationStrategies: []string{
				"Focus on strategic thinking and business acumen",
				"Develop expertise in domain-specific knowledge",
				"Enhance communication and storytelling skills",
				"Learn to work alongside AI tools rather than compete",
				"Specialize in areas requiring human judgment (ethics, bias detection)",
			},
			ComplementarySkills: []string{"Communication", "Leadership", "Creativity", "Problem Solving"},
		},
		"Software Engineer": {
			Level:      RiskMedium,
			Percentage: 40,
			TaskBreakdown: []TaskRisk{
				{
					Task:                 "Code generation for routine tasks",
					RiskLevel:            RiskHigh,
					AutomationLikelihood: "70% - AI coding assistants can generate boilerplate code",
				},
				{
					Task:                 "Bug fixing and debugging",
					RiskLevel:            RiskMedium,
					AutomationLikelihood: "45% - AI can help identify issues but complex debugging requires human insight",
				},
				{
					Task:                 "System architecture and design",
					RiskLevel:            RiskLow,
					AutomationLikelihood: "25% - Requires deep understanding of business needs and trade-offs",
				},
				{
					Task:                 "Code review and team collaboration",
					RiskLevel:            RiskLow,
					AutomationLikelihood: "30% - Human judgment needed for code quality and team dynamics",
				},
			},
			AdaptationStrategies: []string{
				"Focus on system design and architecture",
				"Develop expertise in complex problem-solving",
				"Enhance collaboration and mentoring skills",
				"Learn to leverage AI tools to increase productivity",
				"Specialize in areas requiring security and performance optimization",
			},
			ComplementarySkills: []string{"Problem Solving", "Collaboration", "Communication", "Adaptability"},
		},
		"UX Designer": {
			Level:      RiskLow,
			Percentage: 25,
			TaskBreakdown: []TaskRisk{
				{
					Task:                 "Basic wireframing and prototyping",
					RiskLevel:            RiskMedium,
					AutomationLikelihood: "40% - AI tools can generate initial designs but lack human creativity",
				},
				{
					Task:                 "User research and empathy",
					RiskLevel:            RiskLow,
					AutomationLikelihood: "15% - Understanding human emotions and needs requires human insight",
				},
				{
					Task:                 "Creative design and aesthetics",
					RiskLevel:            RiskLow,
					AutomationLikelihood: "20% - Artistic vision and creativity are uniquely human",
				},
				{
					Task:                 "Stakeholder communication and strategy",
					RiskLevel:            RiskLow,
					AutomationLikelihood: "10% - Requires human interaction and negotiation skills",
				},
			},
			AdaptationStrategies: []string{
				"Deepen user research and empathy skills",
				"Focus on strategic design thinking",
				"Enhance storytelling and presentation abilities",
				"Develop expertise in accessibility and inclusive design",
				"Build strong collaboration skills with cross-functional teams",
			},
			ComplementarySkills: []string{"Creativity", "Communication", "Collaboration", "Curiosity"},
		},
		"Cybersecurity Specialist": {
			Level:      RiskLow,
			Percentage: 30,
			TaskBreakdown: []TaskRisk{
				{
					Task:                 "Automated threat detection",
					RiskLevel:            RiskMedium,
					AutomationLikelihood: "50% - AI can detect patterns but human analysis needed for context",
				},
				{
					Task:                 "Vulnerability scanning",
					RiskLevel:            RiskHigh,
					AutomationLikelihood: "75% - Automated tools excel at finding known vulnerabilities",
				},
				{
					Task:                 "Incident response and forensics",
					RiskLevel:            RiskLow,
					AutomationLikelihood: "25% - Complex investigations require human judgment and experience",
				},
				{
					Task:                 "Security strategy and policy",
					RiskLevel:            RiskLow,
					AutomationLikelihood: "15% - Strategic planning requires understanding business context",
				},
			},
			AdaptationStrategies: []string{
				"Focus on advanced threat hunting and incident response",
				"Develop expertise in security architecture",
				"Enhance communication skills for explaining risks to stakeholders",
				"Learn to leverage AI for threat intelligence while maintaining human oversight",
				"Specialize in areas requiring ethical judgment (privacy, compliance)",
			},
			ComplementarySkills: []string{"Analytical Thinking", "Problem Solving", "Communication", "Adaptability"},
		},
		"Machine Learning Engineer": {
			Level:      RiskMedium,
			Percentage: 35,
			TaskBreakdown: []TaskRisk{
				{
					Task:                 "Model training and hyperparameter tuning",
					RiskLevel:            RiskMedium,
					AutomationLikelihood: "55% - AutoML can automate some tasks but expert knowledge still needed",
				},
				{
					Task:                 "Data pipeline development",
					RiskLevel:            RiskHigh,
					AutomationLikelihood: "65% - Many data engineering tasks can be automated",
				},
				{
					Task:                 "Model interpretation and ethics",
					RiskLevel:            RiskLow,
					AutomationLikelihood: "20% - Understanding bias and fairness requires human judgment",
				},
				{
					Task:                 "Research and innovation",
					RiskLevel:            RiskLow,
					AutomationLikelihood: "25% - Novel research and creative solutions remain human domain",
				},
			},
			AdaptationStrategies: []string{
				"Focus on model interpretability and ethics",
				"Develop expertise in specialized domains (healthcare, finance, etc.)",
				"Enhance research and innovation capabilities",
				"Learn to design AI systems that augment human capabilities",
				"Specialize in areas requiring domain expertise and human judgment",
			},
			ComplementarySkills: []string{"Analytical Thinking", "Curiosity", "Problem Solving", "Communication"},
		},
		"Tech Entrepreneur": {
			Level:      RiskLow,
			Percentage: 20,
			TaskBreakdown: []TaskRisk{
				{
					Task:                 "Market research and analysis",
					RiskLevel:            RiskMedium,
					AutomationLikelihood: "40% - AI can gather data but strategic insights require human judgment",
				},
				{
					Task:                 "Business strategy and vision",
					RiskLevel:            RiskLow,
					AutomationLikelihood: "10% - Vision and strategic thinking are uniquely human",
				},
				{
					Task:                 "Team building and leadership",
					RiskLevel:            RiskLow,
					AutomationLikelihood: "5% - Human relationships and motivation cannot be automated",
				},
				{
					Task:                 "Innovation and creativity",
					RiskLevel:            RiskLow,
					AutomationLikelihood: "15% - Creative problem-solving and innovation require human insight",
				},
			},
			AdaptationStrategies: []string{
				"Focus on building strong human relationships",
				"Develop deep domain expertise in your industry",
				"Enhance leadership and team-building skills",
				"Learn to leverage AI tools for market insights while maintaining strategic vision",
				"Build skills in areas that require human judgment (negotiation, fundraising, partnerships)",
			},
			ComplementarySkills: []string{"Leadership", "Creativity", "Communication", "Adaptability"},
		},
	}
}
