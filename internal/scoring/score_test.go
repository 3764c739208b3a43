package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexuscv/ats-refinery/internal/catalog"
	"github.com/nexuscv/ats-refinery/internal/types"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return cat
}

func TestScore_PartialMatch(t *testing.T) {
	cat := testCatalog(t)
	resume := &types.ResumeContent{
		Name:   "Ada Lovelace",
		Email:  "ada@example.com",
		Phone:  "555-0100",
		Skills: []string{"Python", "SQL"},
	}

	score := Score(resume, "Backend Developer", cat)

	// 2 of 4 required skills: floor(2*50/4) = 25.
	assert.Equal(t, 25, score.SkillScore)
	// 2 distinct skills at 2 points each.
	assert.Equal(t, 4, score.KeywordScore)
	// Name, email, phone, skills all present.
	assert.Equal(t, 20, score.CompletenessScore)
	assert.Equal(t, 49, score.TotalScore)

	assert.Equal(t, []string{"python", "sql"}, score.MatchedSkills)
	assert.Equal(t, []string{"api", "flask"}, score.MissingSkills)
	assert.Equal(t, []string{"api", "flask"}, score.MissingClassified.Critical)
	assert.Empty(t, score.MissingClassified.Optional)
}

func TestScore_SkillMatchFloors(t *testing.T) {
	cat := testCatalog(t)
	resume := &types.ResumeContent{
		Name:   "Ada",
		Email:  "ada@example.com",
		Phone:  "555-0100",
		Skills: []string{"python"},
	}

	// 1 of 4 required: floor(50/4) = 12, not 12.5.
	score := Score(resume, "Backend Developer", cat)
	assert.Equal(t, 12, score.SkillScore)
}

func TestScore_UnknownRoleGetsZeroSkillScore(t *testing.T) {
	cat := testCatalog(t)
	resume := &types.ResumeContent{
		Name:   "Ada",
		Email:  "ada@example.com",
		Phone:  "555-0100",
		Skills: []string{"python", "sql"},
	}

	score := Score(resume, "Underwater Basket Weaver", cat)
	assert.Equal(t, 0, score.SkillScore)
	assert.Empty(t, score.MatchedSkills)
	assert.Empty(t, score.MissingSkills)
	// Keyword and completeness components are unaffected by the role.
	assert.Equal(t, 4, score.KeywordScore)
	assert.Equal(t, 20, score.CompletenessScore)
	assert.Equal(t, 24, score.TotalScore)
}

func TestScore_KeywordScoreCaps(t *testing.T) {
	cat := testCatalog(t)
	resume := &types.ResumeContent{Name: "Ada", Skills: []string{
		"a", "b", "c", "d", "e", "f", "g", "h", "i", "j",
		"k", "l", "m", "n", "o", "p", "q", "r", "s", "t",
	}}

	score := Score(resume, "Backend Developer", cat)
	assert.Equal(t, types.MaxKeywordScore, score.KeywordScore)
}

func TestScore_CompletenessPerField(t *testing.T) {
	cat := testCatalog(t)

	tests := []struct {
		name   string
		resume types.ResumeContent
		want   int
	}{
		{"empty", types.ResumeContent{}, 0},
		{"name only", types.ResumeContent{Name: "Ada"}, 5},
		{"name and email", types.ResumeContent{Name: "Ada", Email: "a@b.c"}, 10},
		{"all four", types.ResumeContent{Name: "Ada", Email: "a@b.c", Phone: "1", Skills: []string{"go"}}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Score(&tt.resume, "Backend Developer", cat)
			assert.Equal(t, tt.want, score.CompletenessScore)
		})
	}
}

func TestScore_CaseInsensitiveMatch(t *testing.T) {
	cat := testCatalog(t)
	resume := &types.ResumeContent{
		Name:   "Ada",
		Skills: []string{"PYTHON", "Sql", "FlAsK", "API"},
	}

	score := Score(resume, "Backend Developer", cat)
	assert.Equal(t, 50, score.SkillScore)
	assert.Empty(t, score.MissingSkills)
}

func TestScore_MonotonicInMatchedSkills(t *testing.T) {
	cat := testCatalog(t)
	base := &types.ResumeContent{
		Name:   "Ada",
		Email:  "ada@example.com",
		Phone:  "555-0100",
		Skills: []string{"python"},
	}

	prev := Score(base, "Backend Developer", cat).TotalScore
	for _, add := range []string{"sql", "flask", "api"} {
		base.Skills = append(base.Skills, add)
		next := Score(base, "Backend Developer", cat).TotalScore
		assert.GreaterOrEqual(t, next, prev)
		prev = next
	}
	assert.Equal(t, 78, prev) // 50 + 8 + 20
}

func TestScore_Deterministic(t *testing.T) {
	cat := testCatalog(t)
	resume := &types.ResumeContent{
		Name:   "Ada",
		Email:  "ada@example.com",
		Phone:  "555-0100",
		Skills: []string{"react", "css", "docker", "figma"},
	}

	first := Score(resume, "Web Developer", cat)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(resume, "Web Developer", cat))
	}
}

func TestClassifyMissing(t *testing.T) {
	classified := ClassifyMissing(
		[]string{"flask", "kubernetes", "api"},
		[]string{"python", "flask", "api", "sql"},
	)
	assert.Equal(t, []string{"flask", "api"}, classified.Critical)
	assert.Equal(t, []string{"kubernetes"}, classified.Optional)
}

func TestClassifyMissing_EmptyReference(t *testing.T) {
	classified := ClassifyMissing([]string{"flask", "api"}, nil)
	assert.Empty(t, classified.Critical)
	assert.Equal(t, []string{"flask", "api"}, classified.Optional)
}
