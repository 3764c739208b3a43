package types

// Insights summarizes structural qualities of a resume's flattened text.
type Insights struct {
	Length          string   `json:"length"`
	MissingSections []string `json:"missing_sections"`
	SkillDensity    string   `json:"skill_density"`
	Strength        string   `json:"strength"`
}

// JDMatch is the result of matching resume skills against a job description.
type JDMatch struct {
	MatchPercentage int                 `json:"match_percentage"`
	MatchedSkills   []string            `json:"matched_skills"`
	MissingKeywords []string            `json:"missing_keywords"`
	GroupedMissing  map[string][]string `json:"grouped_missing"`
}

// RolePrediction scores the resume's skill set against one catalog role.
type RolePrediction struct {
	Role          string   `json:"role"`
	Score         int      `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	Reason        string   `json:"reason"`
}

// CareerPlan is a role-targeted learning recommendation assembled from the
// score breakdown, curriculum gaps, and resume insights.
type CareerPlan struct {
	RecommendedRole     string            `json:"recommended_role"`
	SkillsToLearn       []string          `json:"skills_to_learn"`
	RecommendedProjects []string          `json:"recommended_projects"`
	Priority            string            `json:"priority"`
	Roadmap             map[string]string `json:"roadmap"`
}

// AnalysisReport bundles every sub-analysis the API produces for one resume.
type AnalysisReport struct {
	Score       *ScoreResult     `json:"score"`
	Insights    *Insights        `json:"insights"`
	Suggestions []string         `json:"suggestions"`
	JDMatch     *JDMatch         `json:"jd_match,omitempty"`
	Roles       []RolePrediction `json:"predicted_roles"`
	CareerPlan  *CareerPlan      `json:"career_plan,omitempty"`
}
