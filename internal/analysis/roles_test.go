package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexuscv/ats-refinery/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return cat
}

func TestPredictRoles_TopThreeByOverlap(t *testing.T) {
	cat := testCatalog(t)

	predictions := PredictRoles([]string{"python", "sql", "pandas", "statistics", "excel"}, cat)

	require.Len(t, predictions, 3)
	assert.Equal(t, "Data Analyst", predictions[0].Role)
	assert.Equal(t, 100, predictions[0].Score)
	assert.Equal(t, "Data analysis and statistics focus", predictions[0].Reason)
}

func TestPredictRoles_StableOrderOnTies(t *testing.T) {
	cat := testCatalog(t)

	// "python" alone matches Backend Developer, Data Analyst, and ML Engineer
	// equally badly; predictor-map order breaks the tie.
	predictions := PredictRoles([]string{"python"}, cat)

	require.Len(t, predictions, 3)
	assert.Equal(t, "ML Engineer", predictions[0].Role)
	assert.Equal(t, 25, predictions[0].Score)
	assert.Equal(t, "Backend Developer", predictions[1].Role)
	assert.Equal(t, "Data Analyst", predictions[2].Role)
}

func TestPredictRoles_NoSkills(t *testing.T) {
	cat := testCatalog(t)

	predictions := PredictRoles(nil, cat)

	require.Len(t, predictions, 3)
	for _, p := range predictions {
		assert.Equal(t, 0, p.Score)
		assert.Empty(t, p.MatchedSkills)
	}
}

func TestPredictRoles_ReportsMissingProfileSkills(t *testing.T) {
	cat := testCatalog(t)

	predictions := PredictRoles([]string{"html", "css", "javascript", "react", "sql"}, cat)

	assert.Equal(t, "Web Developer", predictions[0].Role)
	assert.Empty(t, predictions[0].MissingSkills)
	assert.Equal(t, "Strong frontend skill overlap", predictions[0].Reason)
}
