// Package analysis derives human-readable reports from a scored resume:
// structural insights, improvement suggestions, job-description matching,
// multi-role prediction, and a career roadmap. Everything here is a pure
// function over resume content and catalog data.
package analysis

import (
	"fmt"
	"strings"

	"github.com/nexuscv/ats-refinery/internal/types"
)

// Word-count bands for resume length analysis.
const (
	minIdealWords = 150
	maxIdealWords = 400
)

// resumeSections maps a detection keyword to the section label reported when
// the keyword is absent from the resume text.
var resumeSections = []struct{ keyword, label string }{
	{"education", "Education"},
	{"experience", "Experience"},
	{"project", "Projects"},
	{"skill", "Skills"},
}

// Insights analyzes the flattened resume text and skill list for length,
// section presence, skill density, and overall strength.
func Insights(resumeText string, skills []string) *types.Insights {
	insights := &types.Insights{MissingSections: []string{}}

	wordCount := len(strings.Fields(resumeText))
	switch {
	case wordCount < minIdealWords:
		insights.Length = "Too Short – Resume lacks detail"
	case wordCount <= maxIdealWords:
		insights.Length = "Good Length – Ideal for ATS"
	default:
		insights.Length = "Too Long – Consider shortening"
	}

	textLower := strings.ToLower(resumeText)
	for _, section := range resumeSections {
		if !strings.Contains(textLower, section.keyword) {
			insights.MissingSections = append(insights.MissingSections, section.label)
		}
	}

	insights.SkillDensity = fmt.Sprintf("%d skills detected", len(skills))

	strength := 0
	if wordCount >= minIdealWords {
		strength++
	}
	if len(insights.MissingSections) <= 1 {
		strength++
	}
	if len(skills) >= 5 {
		strength++
	}
	switch strength {
	case 3:
		insights.Strength = "Strong Resume"
	case 2:
		insights.Strength = "Moderate Resume"
	default:
		insights.Strength = "Weak Resume"
	}

	return insights
}
