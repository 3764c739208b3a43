package refine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexuscv/ats-refinery/internal/types"
)

func criticalScore(skills ...string) *types.ScoreResult {
	return &types.ScoreResult{
		MissingSkills:     skills,
		MissingClassified: types.MissingClassified{Critical: skills},
	}
}

func TestInjectCritical_AddsSkillAndExperienceBullet(t *testing.T) {
	resume := &types.ResumeContent{
		Skills:     []string{"python"},
		Experience: []types.Experience{{Title: "Engineer", Bullets: []string{"Shipped things"}}},
	}

	InjectCritical(resume, criticalScore("flask"), 2)

	assert.Equal(t, []string{"python", "flask"}, resume.Skills)
	assert.Equal(t,
		"Engineered scalable solutions leveraging flask for production-grade deployment",
		resume.Experience[0].Bullets[1])
}

func TestInjectCritical_RespectsLimit(t *testing.T) {
	resume := &types.ResumeContent{
		Skills:     []string{"python"},
		Experience: []types.Experience{{Bullets: nil}},
	}

	InjectCritical(resume, criticalScore("flask", "api", "sql"), 2)

	assert.Equal(t, []string{"python", "flask", "api"}, resume.Skills)
	assert.Len(t, resume.Experience[0].Bullets, 2)
}

func TestInjectCritical_RotatesAcrossEntriesAndTemplates(t *testing.T) {
	resume := &types.ResumeContent{
		Experience: []types.Experience{
			{Title: "A"},
			{Title: "B"},
		},
	}

	InjectCritical(resume, criticalScore("flask", "api"), 2)

	// Consecutive injections land on consecutive entries with consecutive
	// templates.
	assert.Equal(t,
		[]string{"Engineered scalable solutions leveraging flask for production-grade deployment"},
		resume.Experience[0].Bullets)
	assert.Equal(t,
		[]string{"Architected and delivered features using api to meet critical business requirements"},
		resume.Experience[1].Bullets)
}

func TestInjectCritical_FallsBackToProjects(t *testing.T) {
	resume := &types.ResumeContent{
		Projects: []types.Project{{Name: "CLI"}},
	}

	InjectCritical(resume, criticalScore("sql"), 1)

	assert.Equal(t, []string{"sql"}, resume.Skills)
	assert.Equal(t,
		[]string{"Implemented sql to enhance system reliability and performance"},
		resume.Projects[0].Bullets)
}

func TestInjectCritical_SkillStillAddedWhenBulletsCapped(t *testing.T) {
	resume := &types.ResumeContent{
		Experience: []types.Experience{{Bullets: []string{"a", "b", "c", "d"}}},
	}

	InjectCritical(resume, criticalScore("flask"), 1)

	assert.Equal(t, []string{"flask"}, resume.Skills)
	assert.Len(t, resume.Experience[0].Bullets, types.MaxExperienceBullets)
}

func TestInjectCritical_SkipsAlreadyPresentSkills(t *testing.T) {
	resume := &types.ResumeContent{
		Skills:     []string{"Flask"},
		Experience: []types.Experience{{}},
	}

	InjectCritical(resume, criticalScore("flask", "api"), 2)

	// "flask" is present (case-insensitive) so only "api" is injected and it
	// does not consume the injection budget.
	assert.Equal(t, []string{"Flask", "api"}, resume.Skills)
	assert.Len(t, resume.Experience[0].Bullets, 1)
}

func TestInjectCritical_NoEntriesStillAddsSkills(t *testing.T) {
	resume := &types.ResumeContent{Skills: []string{"python"}}

	InjectCritical(resume, criticalScore("flask"), 1)

	assert.Equal(t, []string{"python", "flask"}, resume.Skills)
}
