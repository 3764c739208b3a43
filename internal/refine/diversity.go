package refine

import (
	"strings"

	"github.com/nexuscv/ats-refinery/internal/catalog"
	"github.com/nexuscv/ats-refinery/internal/types"
)

// Diversify ensures the skills list spans the skill-category taxonomy. For
// each category with no representative among the current skills, the role's
// fallback skill for that category is appended, at most one skill per
// category per call. Roles without a fallback for a category are skipped.
func Diversify(resume *types.ResumeContent, role string) {
	current := resume.SkillsLower()

	for _, category := range catalog.SkillCategories() {
		hasCategory := false
		for _, kw := range category.Keywords {
			if current[kw] {
				hasCategory = true
				break
			}
		}
		if hasCategory {
			continue
		}

		fallback, ok := category.Fallbacks[role]
		if !ok || current[strings.ToLower(fallback)] {
			continue
		}
		resume.Skills = append(resume.Skills, fallback)
		current[strings.ToLower(fallback)] = true
	}
}
