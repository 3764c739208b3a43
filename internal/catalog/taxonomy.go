package catalog

// SkillCategory is one slice of the skill taxonomy used by the diversity
// validator: a keyword set that identifies the category and a role-specific
// fallback skill to inject when the category is absent.
type SkillCategory struct {
	Name      string
	Keywords  []string
	Fallbacks map[string]string
}

// skillCategories is ordered; the diversity validator visits categories in
// this sequence so injection order is stable.
var skillCategories = []SkillCategory{
	{
		Name: "language_framework",
		Keywords: []string{
			"python", "java", "javascript", "c++", "c#", "go", "ruby", "php",
			"typescript", "swift", "kotlin", "rust", "scala", "r",
			"react", "angular", "vue", "flask", "django", "spring",
			"express", "node.js", "fastapi", ".net", "rails",
		},
		Fallbacks: map[string]string{
			"Web Developer": "Node.js", "Backend Developer": "Django",
			"Data Analyst": "R", "ML Engineer": "scikit-learn",
			"Software Engineer": "Python",
		},
	},
	{
		Name: "database_storage",
		Keywords: []string{
			"sql", "mysql", "postgresql", "mongodb", "redis", "sqlite",
			"cassandra", "dynamodb", "firebase", "elasticsearch",
			"oracle", "neo4j", "pandas", "numpy",
		},
		Fallbacks: map[string]string{
			"Web Developer": "MongoDB", "Backend Developer": "PostgreSQL",
			"Data Analyst": "SQL", "ML Engineer": "NumPy",
			"Software Engineer": "SQL",
		},
	},
	{
		Name: "tool_platform",
		Keywords: []string{
			"git", "docker", "aws", "azure", "gcp", "linux", "kubernetes",
			"jenkins", "ci/cd", "terraform", "ansible", "jira",
			"heroku", "vercel", "netlify", "postman", "vscode",
		},
		Fallbacks: map[string]string{
			"Web Developer": "Git", "Backend Developer": "Docker",
			"Data Analyst": "Jupyter", "ML Engineer": "Git",
			"Software Engineer": "Git",
		},
	},
	{
		Name: "cs_concept",
		Keywords: []string{
			"data structures", "algorithms", "oop", "design patterns",
			"system design", "rest apis", "agile", "microservices",
			"testing", "machine learning", "deep learning", "statistics",
			"data analysis", "networking", "operating systems",
		},
		Fallbacks: map[string]string{
			"Web Developer": "REST APIs", "Backend Developer": "System Design",
			"Data Analyst": "Statistics", "ML Engineer": "Deep Learning",
			"Software Engineer": "Data Structures",
		},
	},
}

// SkillCategories returns the fixed skill-category taxonomy.
func SkillCategories() []SkillCategory {
	return skillCategories
}
