package analysis

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nexuscv/ats-refinery/internal/catalog"
	"github.com/nexuscv/ats-refinery/internal/scoring"
	"github.com/nexuscv/ats-refinery/internal/types"
)

// Analyze assembles the full analysis report for an already-validated resume.
// The independent sub-analyses (insights, role prediction, JD matching) run
// concurrently; jobDescription may be empty, in which case the JD section is
// omitted. The resume itself is read-only here; analysis never mutates
// content.
func Analyze(ctx context.Context, resume *types.ResumeContent, role string, jobDescription string, cat *catalog.Catalog) (*types.AnalysisReport, error) {
	canonical := cat.Normalize(role)
	resume.RebuildDerivedText()
	score := scoring.Score(resume, canonical, cat)

	report := &types.AnalysisReport{Score: score}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		report.Insights = Insights(resume.DerivedText, resume.Skills)
		return nil
	})
	g.Go(func() error {
		report.Roles = PredictRoles(resume.Skills, cat)
		return nil
	})
	if jobDescription != "" {
		g.Go(func() error {
			report.JDMatch = MatchJobDescription(resume.Skills, jobDescription)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Suggestions = Suggestions(report.Insights, score.MissingSkills, report.JDMatch)
	report.CareerPlan = RecommendCareer(score, canonical, resume.Skills, report.Insights, report.JDMatch, cat)
	return report, nil
}
