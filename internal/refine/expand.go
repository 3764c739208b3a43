package refine

import (
	"strings"

	"github.com/nexuscv/ats-refinery/internal/catalog"
	"github.com/nexuscv/ats-refinery/internal/types"
)

// DefaultExpandLimit bounds how many complementary skills one expansion adds.
const DefaultExpandLimit = 5

// Expand appends up to limit role-adjacent skills to the skills list. The
// candidate pool starts with the target role's own skills (predictor profile,
// required set, curriculum) followed by the skills of every other role whose
// profile shares at least one skill with the target pool, a one-hop walk
// over the relatedness graph spanned by the two catalogs. Candidates are
// deduplicated against the current skill list and within the run, and are
// appended in discovery order. Bullet text is never touched.
func Expand(resume *types.ResumeContent, role string, cat *catalog.Catalog, limit int) {
	if limit <= 0 {
		limit = DefaultExpandLimit
	}

	// Target-role pool: predictor profile, required skills, curriculum.
	candidates := make([]string, 0, 32)
	candidates = append(candidates, cat.PredictorSkills(role)...)
	candidates = append(candidates, cat.RequiredSkills(role)...)
	if curriculum, ok := cat.Curriculum(role); ok {
		candidates = append(candidates, curriculum.All()...)
	}

	targetPool := make(map[string]bool, len(candidates))
	for _, s := range candidates {
		targetPool[strings.ToLower(s)] = true
	}

	// One-hop relatedness: any other role sharing a skill with the target
	// pool contributes its skills, predictor map first, then the catalog.
	for _, other := range cat.PredictorRoles() {
		if strings.EqualFold(other, role) {
			continue
		}
		skills := cat.PredictorSkills(other)
		if overlaps(targetPool, skills) {
			candidates = append(candidates, skills...)
		}
	}
	for _, other := range cat.Roles() {
		if strings.EqualFold(other, role) {
			continue
		}
		skills := cat.RequiredSkills(other)
		if overlaps(targetPool, skills) {
			candidates = append(candidates, skills...)
		}
	}

	current := resume.SkillsLower()
	seen := make(map[string]bool)
	added := 0
	for _, skill := range candidates {
		lower := strings.ToLower(skill)
		if current[lower] || seen[lower] {
			continue
		}
		seen[lower] = true
		resume.Skills = append(resume.Skills, skill)
		current[lower] = true
		added++
		if added >= limit {
			break
		}
	}
}

func overlaps(pool map[string]bool, skills []string) bool {
	for _, s := range skills {
		if pool[strings.ToLower(s)] {
			return true
		}
	}
	return false
}
