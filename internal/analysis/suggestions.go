package analysis

import (
	"fmt"
	"strings"

	"github.com/nexuscv/ats-refinery/internal/types"
)

// jdMatchThreshold is the JD match percentage below which keyword
// customization is suggested.
const jdMatchThreshold = 70

// Suggestions assembles a fixed-template improvement list from the insights,
// the missing-skill list, and an optional JD match result. When nothing needs
// improvement a single affirmative line is returned.
func Suggestions(insights *types.Insights, missingSkills []string, jdMatch *types.JDMatch) []string {
	suggestions := []string{}

	if insights != nil {
		if strings.Contains(insights.Length, "Too Short") {
			suggestions = append(suggestions, "Add more project details and responsibilities to increase resume depth.")
		}
		if strings.Contains(insights.Length, "Too Long") {
			suggestions = append(suggestions, "Shorten descriptions and remove less relevant content.")
		}
		for _, section := range insights.MissingSections {
			suggestions = append(suggestions, fmt.Sprintf("Add a dedicated %s section to improve ATS score.", section))
		}
	}

	for i, skill := range missingSkills {
		if i >= 3 {
			break
		}
		suggestions = append(suggestions, fmt.Sprintf("Consider learning or mentioning %s if you have experience.", skill))
	}

	if jdMatch != nil && jdMatch.MatchPercentage < jdMatchThreshold {
		suggestions = append(suggestions, "Customize your resume keywords according to the job description.")
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Your resume is well optimized. Minor improvements can make it even stronger.")
	}

	return suggestions
}
