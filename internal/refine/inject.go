package refine

import (
	"fmt"

	"github.com/nexuscv/ats-refinery/internal/types"
)

// DefaultInjectLimit bounds how many critical skills one injection pass adds.
const DefaultInjectLimit = 2

// InjectCritical adds up to limit missing critical skills to the resume. Each
// injected skill is appended to the skills list and woven into exactly one
// narrative bullet via a rotating template, targeting experience entries
// first and falling back to project entries. A rotating entry index spreads
// consecutive injections across different entries. When the target entry's
// bullet cap is already reached the skill still joins the skills list but no
// bullet is added.
func InjectCritical(resume *types.ResumeContent, score *types.ScoreResult, limit int) {
	if limit <= 0 {
		limit = DefaultInjectLimit
	}

	entryIndex := 0
	injected := 0
	for _, skill := range score.MissingClassified.Critical {
		if injected >= limit {
			break
		}
		if !resume.AddSkill(skill) {
			continue
		}
		injected++

		switch {
		case len(resume.Experience) > 0:
			entry := &resume.Experience[entryIndex%len(resume.Experience)]
			template := experienceTemplates[entryIndex%len(experienceTemplates)]
			if len(entry.Bullets) < types.MaxExperienceBullets {
				entry.Bullets = append(entry.Bullets, fmt.Sprintf(template, skill))
			}
		case len(resume.Projects) > 0:
			entry := &resume.Projects[entryIndex%len(resume.Projects)]
			template := projectTemplates[entryIndex%len(projectTemplates)]
			if len(entry.Bullets) < types.MaxProjectBullets {
				entry.Bullets = append(entry.Bullets, fmt.Sprintf(template, skill))
			}
		}
		entryIndex++
	}
}
