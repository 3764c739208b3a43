// Package refine implements the bounded resume refinement pipeline: language
// polish, skill-category diversification, critical-skill injection, and
// complementary-skill expansion, sequenced under an early-exit policy. Every
// stage is strictly additive: skills and bullets are only ever appended.
package refine

import (
	"go.uber.org/zap"

	"github.com/nexuscv/ats-refinery/internal/catalog"
	"github.com/nexuscv/ats-refinery/internal/scoring"
	"github.com/nexuscv/ats-refinery/internal/types"
)

// Default orchestration bounds.
const (
	DefaultTargetScore = 90
	DefaultMaxAttempts = 2
)

// Engine sequences the refinement stages against a fixed catalog. The
// catalog accessors are injected at construction; stages never resolve them
// themselves mid-pipeline.
type Engine struct {
	catalog     *catalog.Catalog
	log         *zap.Logger
	targetScore int
	maxAttempts int
}

// Result is the outcome of one refinement run.
type Result struct {
	Resume *types.ResumeContent `json:"resume"`
	Score  *types.ScoreResult   `json:"score"`
	// Role is the canonical catalog role the resume was refined against.
	Role string `json:"role"`
	// ScoringPasses counts how many times the resume was scored.
	ScoringPasses int `json:"scoring_passes"`
}

// NewEngine creates a refinement engine with default bounds. A nil logger
// disables stage logging.
func NewEngine(cat *catalog.Catalog, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		catalog:     cat,
		log:         log,
		targetScore: DefaultTargetScore,
		maxAttempts: DefaultMaxAttempts,
	}
}

// ScoreOnly rebuilds the derived text and scores the resume against the
// normalized role without mutating any content field.
func (e *Engine) ScoreOnly(resume *types.ResumeContent, role string) (*types.ScoreResult, string) {
	canonical := e.catalog.Normalize(role)
	resume.RebuildDerivedText()
	return scoring.Score(resume, canonical, e.catalog), canonical
}

// Refine runs the full refinement pipeline on the resume, mutating it in
// place, and returns the final score snapshot. Reaching the stage budget
// without hitting the target score is a normal outcome, not an error.
func (e *Engine) Refine(resume *types.ResumeContent, role string) *Result {
	canonical := e.catalog.Normalize(role)
	e.log.Debug("refinement started",
		zap.String("role", role),
		zap.String("canonical_role", canonical),
		zap.Int("skills", len(resume.Skills)))

	result := &Result{Resume: resume, Role: canonical}

	// Pre-refinement: language polish, then category diversification. The
	// diversity stage reads only the skills list, so order with polish is
	// fixed but independent.
	Polish(resume)
	Diversify(resume, canonical)

	score := e.score(resume, canonical, result)
	if score.TotalScore >= e.targetScore {
		e.log.Debug("target reached before injection", zap.Int("score", score.TotalScore))
		result.Score = score
		return result
	}

	// Phase 1: critical skill injection, re-scoring each attempt.
	for attempt := 0; attempt < e.maxAttempts; attempt++ {
		InjectCritical(resume, score, DefaultInjectLimit)
		score = e.score(resume, canonical, result)
		e.log.Debug("critical injection pass",
			zap.Int("attempt", attempt+1),
			zap.Int("score", score.TotalScore),
			zap.Int("missing", len(score.MissingSkills)))

		if score.TotalScore >= e.targetScore {
			result.Score = score
			return result
		}
		if len(score.MissingSkills) == 0 {
			break
		}
	}

	// Phase 2: complementary domain skills, one expansion only.
	if score.TotalScore < e.targetScore {
		Expand(resume, canonical, e.catalog, DefaultExpandLimit)
		score = e.score(resume, canonical, result)
		e.log.Debug("complementary expansion", zap.Int("score", score.TotalScore))
	}

	result.Score = score
	return result
}

// score rebuilds the derived text projection and computes a fresh snapshot.
// Scoring a stale projection is a correctness bug, so the rebuild lives here
// rather than in the stages.
func (e *Engine) score(resume *types.ResumeContent, role string, result *Result) *types.ScoreResult {
	resume.RebuildDerivedText()
	result.ScoringPasses++
	return scoring.Score(resume, role, e.catalog)
}
