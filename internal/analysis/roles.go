package analysis

import (
	"sort"
	"strings"

	"github.com/nexuscv/ats-refinery/internal/catalog"
	"github.com/nexuscv/ats-refinery/internal/types"
)

// maxPredictedRoles caps how many role predictions are returned.
const maxPredictedRoles = 3

// PredictRoles scores the resume's skill set against every role in the
// predictor map and returns the top matches with a confidence reason.
func PredictRoles(resumeSkills []string, cat *catalog.Catalog) []types.RolePrediction {
	skillsLower := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		skillsLower[strings.ToLower(s)] = true
	}

	predictions := make([]types.RolePrediction, 0, len(cat.PredictorRoles()))
	for _, role := range cat.PredictorRoles() {
		profile := cat.PredictorSkills(role)

		matched := []string{}
		missing := []string{}
		for _, skill := range profile {
			if skillsLower[strings.ToLower(skill)] {
				matched = append(matched, skill)
			} else {
				missing = append(missing, skill)
			}
		}

		score := 0
		if len(profile) > 0 {
			score = len(matched) * 100 / len(profile)
		}

		predictions = append(predictions, types.RolePrediction{
			Role:          role,
			Score:         score,
			MatchedSkills: matched,
			MissingSkills: missing,
			Reason:        confidenceReason(role, matched),
		})
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Score > predictions[j].Score
	})
	if len(predictions) > maxPredictedRoles {
		predictions = predictions[:maxPredictedRoles]
	}
	return predictions
}

// confidenceReason explains a prediction in terms of the skill overlap that
// drove it.
func confidenceReason(role string, matchedSkills []string) string {
	matched := make(map[string]bool, len(matchedSkills))
	for _, s := range matchedSkills {
		matched[strings.ToLower(s)] = true
	}
	anyOf := func(skills ...string) bool {
		for _, s := range skills {
			if matched[s] {
				return true
			}
		}
		return false
	}

	switch {
	case role == "Web Developer" && anyOf("html", "css", "javascript", "react"):
		return "Strong frontend skill overlap"
	case role == "Backend Developer" && anyOf("python", "flask", "api", "sql"):
		return "Backend development skill alignment"
	case role == "ML Engineer" && anyOf("python", "machine learning", "numpy", "pandas"):
		return "Programming + Python dominance"
	case role == "Data Analyst" && anyOf("python", "sql", "pandas", "statistics"):
		return "Data analysis and statistics focus"
	case role == "Software Engineer":
		return "General engineering skill alignment"
	default:
		return "Relevant skill match"
	}
}
