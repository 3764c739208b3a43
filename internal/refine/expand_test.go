package refine

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

func TestExpand_FillsFromTargetRolePoolFirst(t *testing.T) {
	cat := testCatalog(t)
	resume := &types.ResumeContent{Skills: []string{"python", "flask"}}

	Expand(resume, "Backend Developer", cat, 5)

	// Predictor profile, required set, then curriculum, in discovery order.
	assert.Equal(t,
		[]string{"python", "flask", "java", "sql", "api", "django", "postgresql"},
		resume.Skills)
}

func TestExpand_RespectsLimit(t *testing.T) {
	cat := testCatalog(t)
	resume := &types.ResumeContent{Skills: []string{"python"}}

	Expand(resume, "Backend Developer", cat, 2)

	assert.Len(t, resume.Skills, 3)
}

func TestExpand_DedupesCaseInsensitively(t *testing.T) {
	cat := testCatalog(t)
	resume := &types.ResumeContent{Skills: []string{"Python", "FLASK", "Java"}}

	Expand(resume, "Backend Developer", cat, 3)

	assert.Equal(t,
		[]string{"Python", "FLASK", "Java", "sql", "api", "django"},
		resume.Skills)
}

func TestExpand_ReachesRelatedRolesWhenPoolExhausted(t *testing.T) {
	cat := testCatalog(t)
	resume := &types.ResumeContent{Skills: []string{
		"python", "java", "sql", "flask", "api",
		"django", "postgresql", "docker", "caching", "query optimization",
		"load balancing", "microservices", "message queues", "system design",
	}}

	Expand(resume, "Backend Developer", cat, 5)

	// The target pool is saturated, so candidates come from roles that share
	// a skill with it, in predictor-map order.
	assert.Equal(t,
		[]string{"html", "css", "javascript", "react", "pandas"},
		resume.Skills[14:])
}

func TestExpand_UnknownRoleAddsNothing(t *testing.T) {
	cat := testCatalog(t)
	resume := &types.ResumeContent{Skills: []string{"python"}}

	Expand(resume, "Underwater Basket Weaver", cat, 5)

	assert.Equal(t, []string{"python"}, resume.Skills)
}

func TestExpand_NeverTouchesBullets(t *testing.T) {
	cat := testCatalog(t)
	resume := &types.ResumeContent{
		Skills:     []string{"python"},
		Experience: []types.Experience{{Bullets: []string{"Shipped things"}}},
	}

	Expand(resume, "Backend Developer", cat, 5)

	assert.Equal(t, []string{"Shipped things"}, resume.Experience[0].Bullets)
}
