package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/nexuscv/ats-refinery/internal/analysis"
	"github.com/nexuscv/ats-refinery/internal/db"
	"github.com/nexuscv/ats-refinery/internal/fetch"
	"github.com/nexuscv/ats-refinery/internal/server/middleware"
	"github.com/nexuscv/ats-refinery/internal/types"
)

// ScoreRequest is the request body for /score and /refine.
type ScoreRequest struct {
	Resume *types.ResumeContent `json:"resume"`
	Role   string               `json:"role"`
}

// ScoreResponse is the response body for /score.
type ScoreResponse struct {
	Role  string             `json:"role"`
	Score *types.ScoreResult `json:"score"`
}

// AnalyzeRequest is the request body for /analyze.
type AnalyzeRequest struct {
	Resume         *types.ResumeContent `json:"resume"`
	Role           string               `json:"role"`
	JobDescription string               `json:"job_description,omitempty"`
	JobURL         string               `json:"job_url,omitempty"`
}

// JDMatchRequest is the request body for /jd-match.
type JDMatchRequest struct {
	Skills         []string `json:"skills"`
	JobDescription string   `json:"job_description,omitempty"`
	JobURL         string   `json:"job_url,omitempty"`
}

// handleScore scores a resume against a role without mutating it.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeScoreRequest(w, r)
	if !ok {
		return
	}

	score, role := s.engine.ScoreOnly(req.Resume, req.Role)
	s.persistAnalysis(r, role, score, 0)
	jsonResponse(w, http.StatusOK, ScoreResponse{Role: role, Score: score})
}

// handleRefine runs the full refinement pipeline and returns the mutated
// resume alongside the final score.
func (s *Server) handleRefine(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeScoreRequest(w, r)
	if !ok {
		return
	}

	skillsBefore := len(req.Resume.Skills)
	result := s.engine.Refine(req.Resume, req.Role)
	s.persistAnalysis(r, result.Role, result.Score, len(result.Resume.Skills)-skillsBefore)
	jsonResponse(w, http.StatusOK, result)
}

// handleAnalyze produces the full analysis report, optionally matching
// against a job description supplied inline or by URL.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Resume == nil {
		errorResponse(w, http.StatusBadRequest, "resume is required")
		return
	}
	req.Resume.Sanitize()
	if err := req.Resume.Validate(); err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jobDescription := req.JobDescription
	if jobDescription == "" && req.JobURL != "" {
		text, err := fetch.JobDescription(r.Context(), req.JobURL, s.fetchOptions())
		if err != nil {
			errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		jobDescription = text
	}

	report, err := analysis.Analyze(r.Context(), req.Resume, req.Role, jobDescription, s.catalog)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.persistAnalysis(r, s.catalog.Normalize(req.Role), report.Score, 0)
	jsonResponse(w, http.StatusOK, report)
}

// handleJDMatch matches a skill list against a job description.
func (s *Server) handleJDMatch(w http.ResponseWriter, r *http.Request) {
	var req JDMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.JobDescription == "" && req.JobURL == "" {
		errorResponse(w, http.StatusBadRequest, "Either job_description or job_url is required")
		return
	}

	jobDescription := req.JobDescription
	if jobDescription == "" {
		text, err := fetch.JobDescription(r.Context(), req.JobURL, s.fetchOptions())
		if err != nil {
			errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		jobDescription = text
	}

	jsonResponse(w, http.StatusOK, analysis.MatchJobDescription(req.Skills, jobDescription))
}

// handleHistory lists the authenticated user's recent analyses.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	analyses, err := s.db.ListAnalyses(r.Context(), userID, 20)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if analyses == nil {
		analyses = []db.Analysis{}
	}
	jsonResponse(w, http.StatusOK, analyses)
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			errorResponse(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
	}
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeScoreRequest decodes and structurally validates a score/refine
// request. Input-shape errors surface here, before any scoring.
func decodeScoreRequest(w http.ResponseWriter, r *http.Request) (*ScoreRequest, bool) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if req.Resume == nil {
		errorResponse(w, http.StatusBadRequest, "resume is required")
		return nil, false
	}
	req.Resume.Sanitize()
	if err := req.Resume.Validate(); err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return nil, false
	}
	return &req, true
}

// persistAnalysis stores a score snapshot for authenticated callers.
// Anonymous requests and serve modes without a database skip persistence.
func (s *Server) persistAnalysis(r *http.Request, role string, score *types.ScoreResult, skillsAdded int) {
	if s.db == nil {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return
	}

	_, err := s.db.SaveAnalysis(r.Context(), &db.Analysis{
		UserID:            userID,
		Role:              role,
		TotalScore:        score.TotalScore,
		SkillScore:        score.SkillScore,
		KeywordScore:      score.KeywordScore,
		CompletenessScore: score.CompletenessScore,
		SkillsAdded:       skillsAdded,
	})
	if err != nil {
		s.log.Warn("failed to persist analysis", zap.Error(err))
	}
}
