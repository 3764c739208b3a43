package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Analysis is one stored refinement/scoring snapshot for a user.
type Analysis struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	Role              string    `json:"role"`
	TotalScore        int       `json:"total_score"`
	SkillScore        int       `json:"skill_score"`
	KeywordScore      int       `json:"keyword_score"`
	CompletenessScore int       `json:"completeness_score"`
	SkillsAdded       int       `json:"skills_added"`
	CreatedAt         time.Time `json:"created_at"`
}

// SaveAnalysis stores an analysis snapshot and returns its ID.
func (db *DB) SaveAnalysis(ctx context.Context, a *Analysis) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO analyses (user_id, role, total_score, skill_score, keyword_score, completeness_score, skills_added)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		a.UserID, a.Role, a.TotalScore, a.SkillScore, a.KeywordScore, a.CompletenessScore, a.SkillsAdded,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// ListAnalyses returns the most recent analyses for a user, newest first.
func (db *DB) ListAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, role, total_score, skill_score, keyword_score, completeness_score, skills_added, created_at
		 FROM analyses WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []Analysis
	for rows.Next() {
		var a Analysis
		if err := rows.Scan(&a.ID, &a.UserID, &a.Role, &a.TotalScore, &a.SkillScore,
			&a.KeywordScore, &a.CompletenessScore, &a.SkillsAdded, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read analyses: %w", err)
	}
	return analyses, nil
}
