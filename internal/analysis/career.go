package analysis

import (
	"fmt"
	"strings"

	"github.com/nexuscv/ats-refinery/internal/catalog"
	"github.com/nexuscv/ats-refinery/internal/scoring"
	"github.com/nexuscv/ats-refinery/internal/types"
)

// Score bands for application-readiness priority.
const (
	priorityLowBelow  = 60
	priorityMedBelow  = 80
	readyToApplyScore = 80
)

// RecommendCareer builds a role-targeted learning plan: curriculum gaps,
// priority banding from the total score, the weakest scoring component, and
// a month-by-month roadmap referencing the actual skill gaps. Returns nil
// when the role has no career path in the catalog.
func RecommendCareer(
	score *types.ScoreResult,
	role string,
	resumeSkills []string,
	insights *types.Insights,
	jdMatch *types.JDMatch,
	cat *catalog.Catalog,
) *types.CareerPlan {
	curriculum, ok := cat.Curriculum(role)
	if !ok {
		return nil
	}

	plan := &types.CareerPlan{
		RecommendedRole:     role,
		SkillsToLearn:       curriculum.All(),
		RecommendedProjects: cat.SuggestedProjects(role),
		Roadmap:             map[string]string{},
	}

	switch {
	case score.TotalScore < priorityLowBelow:
		plan.Priority = "Low – build fundamentals first"
	case score.TotalScore < priorityMedBelow:
		plan.Priority = "Medium – skill gaps to fill"
	default:
		plan.Priority = "High – ready for applications"
	}

	// Curriculum skills the resume does not cover yet. Classifying the gap
	// list against the role's required set splits it into critical gaps
	// (required skills) and optional ones (curriculum-only).
	skillSet := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		skillSet[strings.ToLower(s)] = true
	}
	var gaps []string
	for _, s := range curriculum.All() {
		if !skillSet[strings.ToLower(s)] {
			gaps = append(gaps, strings.ToLower(s))
		}
	}
	gapClassified := scoring.ClassifyMissing(gaps, cat.RequiredSkills(role))

	criticalMissing := score.MissingClassified.Critical
	buildRoadmap(plan, score, role, criticalMissing, gaps, gapClassified.Optional, insights, jdMatch, cat)
	return plan
}

// weakestComponent returns the label, value, and maximum of the scoring
// component with the lowest fill ratio.
func weakestComponent(score *types.ScoreResult) (key, label string, value, max int) {
	components := []struct {
		key   string
		label string
		value int
		max   int
	}{
		{"skill_score", "Skills Match", score.SkillScore, types.MaxSkillScore},
		{"keyword_score", "Keyword Coverage", score.KeywordScore, types.MaxKeywordScore},
		{"completeness_score", "Resume Completeness", score.CompletenessScore, types.MaxCompletenessScore},
	}

	weakest := components[0]
	for _, c := range components[1:] {
		if float64(c.value)/float64(c.max) < float64(weakest.value)/float64(weakest.max) {
			weakest = c
		}
	}
	return weakest.key, weakest.label, weakest.value, weakest.max
}

func buildRoadmap(
	plan *types.CareerPlan,
	score *types.ScoreResult,
	role string,
	criticalMissing, gaps, optionalGaps []string,
	insights *types.Insights,
	jdMatch *types.JDMatch,
	cat *catalog.Catalog,
) {
	month := 1
	add := func(text string) {
		plan.Roadmap[fmt.Sprintf("Month %d", month)] = text
		month++
	}

	// Month 1: highest-impact gap.
	switch {
	case len(criticalMissing) > 0:
		add(fmt.Sprintf("Master %s — the highest-impact critical skill gap for the %s role. Build hands-on projects and earn certification.",
			criticalMissing[0], role))
	case len(gaps) > 0:
		add(fmt.Sprintf("Learn and practice %s — your top missing skill for %s readiness.", gaps[0], role))
	default:
		add(fmt.Sprintf("Deepen expertise in your strongest skills. Focus on advanced techniques and real-world application for %s.", role))
	}

	// Month 2: weakest scoring component.
	key, label, value, max := weakestComponent(score)
	var remedy string
	switch key {
	case "skill_score":
		remedy = "add more role-specific skills to your resume"
	case "keyword_score":
		remedy = "increase keyword density with industry-standard terminology"
	default:
		remedy = "add missing resume sections (contact info, objective, skills)"
	}
	add(fmt.Sprintf("Improve your %s (currently %d/%d) — %s to boost your overall score.", label, value, max, remedy))

	// Month 3: structural gaps.
	if insights != nil && len(insights.MissingSections) > 0 {
		sections := insights.MissingSections
		if len(sections) > 3 {
			sections = sections[:3]
		}
		add(fmt.Sprintf("Add missing resume sections: %s. A complete resume structure significantly improves ATS parsing.",
			strings.Join(sections, ", ")))
	} else {
		add("Polish resume formatting and structure — your sections are complete. Focus on quantifying achievements and using action verbs.")
	}

	// Month 4: JD gap remediation.
	if jdMatch != nil && len(jdMatch.MissingKeywords) > 0 {
		keywords := jdMatch.MissingKeywords
		if len(keywords) > 4 {
			keywords = keywords[:4]
		}
		add(fmt.Sprintf("Bridge job description gaps by learning: %s. Tailor your resume for each application to maximize JD match.",
			strings.Join(keywords, ", ")))
	} else {
		add("Your resume aligns well with job descriptions. Practice mock interviews and refine your portfolio presentation.")
	}

	// Month 5+: portfolio projects referencing remaining gaps; curriculum-only
	// (optional) gaps come after the remaining critical ones.
	var projectSkills []string
	if len(criticalMissing) > 1 {
		end := len(criticalMissing)
		if end > 3 {
			end = 3
		}
		projectSkills = append(projectSkills, criticalMissing[1:end]...)
	}
	for _, s := range optionalGaps {
		if len(projectSkills) >= 3 {
			break
		}
		projectSkills = append(projectSkills, s)
	}

	if len(projectSkills) > 0 {
		add(fmt.Sprintf("Build portfolio projects demonstrating %s. Showcase real-world problem-solving for %s roles.",
			strings.Join(projectSkills, ", "), role))
	} else {
		projects := cat.SuggestedProjects(role)
		if len(projects) > 2 {
			projects = projects[:2]
		}
		for _, project := range projects {
			add(project)
		}
	}

	// Final month: application readiness.
	if score.TotalScore >= readyToApplyScore {
		add("Apply to target roles — your profile is strong. Focus on networking, interview prep, and continuous skill sharpening.")
	} else {
		add("Iterate on your resume, re-run the analysis, and begin applying to roles while continuing to close remaining skill gaps.")
	}
}
