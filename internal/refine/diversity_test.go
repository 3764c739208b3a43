package refine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexuscv/ats-refinery/internal/types"
)

func TestDiversify_FillsEveryMissingCategory(t *testing.T) {
	resume := &types.ResumeContent{Skills: []string{"communication"}}

	Diversify(resume, "Backend Developer")

	assert.Equal(t,
		[]string{"communication", "Django", "PostgreSQL", "Docker", "System Design"},
		resume.Skills)
}

func TestDiversify_SkipsCoveredCategories(t *testing.T) {
	resume := &types.ResumeContent{Skills: []string{"Python", "PostgreSQL"}}

	Diversify(resume, "Backend Developer")

	// Language and database categories are already represented.
	assert.Equal(t,
		[]string{"Python", "PostgreSQL", "Docker", "System Design"},
		resume.Skills)
}

func TestDiversify_AtMostOneSkillPerCategory(t *testing.T) {
	resume := &types.ResumeContent{Skills: []string{"communication"}}

	Diversify(resume, "Web Developer")

	// One fallback per category, four categories.
	assert.Len(t, resume.Skills, 5)
}

func TestDiversify_UnknownRoleAddsNothing(t *testing.T) {
	resume := &types.ResumeContent{Skills: []string{"communication"}}

	Diversify(resume, "Underwater Basket Weaver")

	assert.Equal(t, []string{"communication"}, resume.Skills)
}

func TestDiversify_Idempotent(t *testing.T) {
	resume := &types.ResumeContent{Skills: []string{"communication"}}

	Diversify(resume, "ML Engineer")
	once := append([]string(nil), resume.Skills...)
	Diversify(resume, "ML Engineer")

	assert.Equal(t, once, resume.Skills)
}

func TestDiversify_CaseInsensitiveCoverage(t *testing.T) {
	resume := &types.ResumeContent{Skills: []string{"PYTHON", "Sql", "GIT", "Statistics"}}

	Diversify(resume, "Data Analyst")

	assert.Equal(t, []string{"PYTHON", "Sql", "GIT", "Statistics"}, resume.Skills)
}
