package types

// Maximum values for each scoring component.
const (
	MaxSkillScore        = 50
	MaxKeywordScore      = 30
	MaxCompletenessScore = 20
	MaxTotalScore        = 100
)

// MissingClassified partitions a missing-skill list against a reference set:
// Critical holds the members of the reference set, Optional the rest.
type MissingClassified struct {
	Critical []string `json:"critical"`
	Optional []string `json:"optional"`
}

// ScoreResult is an immutable snapshot of one scoring call. Instances are
// recomputed from scratch on every call, never patched incrementally.
type ScoreResult struct {
	TotalScore        int               `json:"total_score"`
	SkillScore        int               `json:"skill_score"`
	KeywordScore      int               `json:"keyword_score"`
	CompletenessScore int               `json:"completeness_score"`
	MatchedSkills     []string          `json:"matched_skills"`
	MissingSkills     []string          `json:"missing_skills"`
	MissingClassified MissingClassified `json:"missing_classified"`
}
