// Package scoring computes the composite resume fitness score for a
// (resume, role) pair. Scoring is a pure function of its inputs: the same
// resume content and catalog always produce the same ScoreResult.
package scoring

import (
	"sort"
	"strings"

	"github.com/nexuscv/ats-refinery/internal/catalog"
	"github.com/nexuscv/ats-refinery/internal/types"
)

// Completeness awards 5 points per present field, 20 max.
const completenessPointsPerField = 5

// Score computes a fresh ScoreResult for the resume against the role's
// required-skill set. An unknown role yields an empty requirement set and
// therefore a skill score of 0; this is a graceful degradation, not an error.
func Score(resume *types.ResumeContent, role string, cat *catalog.Catalog) *types.ScoreResult {
	resumeSkills := toLowerSet(resume.Skills)
	requiredList := cat.RequiredSkills(role)
	requiredSkills := toLowerSet(requiredList)

	matched := make([]string, 0, len(requiredSkills))
	missing := make([]string, 0, len(requiredSkills))
	for skill := range requiredSkills {
		if resumeSkills[skill] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	// Skill match: up to 50 points, floor of the matched fraction.
	skillScore := 0
	if len(requiredSkills) > 0 {
		skillScore = len(matched) * types.MaxSkillScore / len(requiredSkills)
	}

	// Keyword coverage: 2 points per distinct skill, capped at 30.
	keywordScore := 2 * len(resumeSkills)
	if keywordScore > types.MaxKeywordScore {
		keywordScore = types.MaxKeywordScore
	}

	// Completeness: presence of name, email, phone, and any skills.
	completeness := 0
	for _, present := range []bool{
		resume.Name != "",
		resume.Email != "",
		resume.Phone != "",
		len(resume.Skills) > 0,
	} {
		if present {
			completeness += completenessPointsPerField
		}
	}

	total := skillScore + keywordScore + completeness
	if total > types.MaxTotalScore {
		total = types.MaxTotalScore
	}

	return &types.ScoreResult{
		TotalScore:        total,
		SkillScore:        skillScore,
		KeywordScore:      keywordScore,
		CompletenessScore: completeness,
		MatchedSkills:     matched,
		MissingSkills:     missing,
		MissingClassified: ClassifyMissing(missing, requiredList),
	}
}

// ClassifyMissing partitions missing skills against a reference set:
// members of the reference set are critical, the rest optional. The reference
// set is a parameter so the classifier can be reused against a broader
// curriculum than the required set that produced the missing list.
func ClassifyMissing(missing, reference []string) types.MissingClassified {
	referenceSet := toLowerSet(reference)

	classified := types.MissingClassified{
		Critical: make([]string, 0, len(missing)),
		Optional: make([]string, 0),
	}
	for _, skill := range missing {
		if referenceSet[strings.ToLower(skill)] {
			classified.Critical = append(classified.Critical, skill)
		} else {
			classified.Optional = append(classified.Optional, skill)
		}
	}
	return classified
}

func toLowerSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		set[strings.ToLower(s)] = true
	}
	return set
}
