package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/job-matcher/internal/db"
	"github.com/jonathan/job-matcher/internal/ingestion"
	"github.com/jonathan/job-matcher/internal/ranking"
	"github.com/jonathan/job-matcher/internal/types"
)

// analyzeResponse wraps the profile returned by POST /analyze.
type analyzeResponse struct {
	Profile *types.CandidateProfile `json:"profile"`
}

// recommendationsResponse wraps the ranked results of POST /recommendations.
type recommendationsResponse struct {
	Count    int                 `json:"count"`
	Strategy string              `json:"strategy"`
	Results  []types.MatchResult `json:"results"`
}

// handleAnalyze turns raw resume text into a candidate profile.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	text := ingestion.Prepare(req.ResumeText)
	profile := s.analyzer.Analyze(text, req.Hints)

	s.jsonResponse(w, http.StatusOK, analyzeResponse{Profile: profile})
}

// handleRecommendations ranks job postings for a profile or raw
// resume. Jobs come inline with the request or, by default, from the
// visible postings in the store.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	profile := req.Profile
	if profile == nil {
		profile = s.analyzer.Analyze(ingestion.Prepare(req.ResumeText), types.Hints{})
	}

	jobs := req.Jobs
	if len(jobs) == 0 {
		var err error
		jobs, err = s.db.ListVisibleJobPostings(r.Context(), db.JobPostingFilters{})
		if err != nil {
			log.Printf("Error loading job postings: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "failed to load job postings")
			return
		}
	}

	strategy := req.Strategy
	if strategy == "" {
		strategy = types.StrategyRule
	}

	opts := ranking.Options{
		Strategy:     strategy,
		Limit:        req.Limit,
		MinRelevance: req.MinRelevance,
		OnJobError: func(jobID string, err error) {
			log.Printf("Skipping job %s: %v", jobID, err)
		},
	}

	results, err := ranking.Rank(r.Context(), jobs, profile, opts)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, recommendationsResponse{
		Count:    len(results),
		Strategy: strategy,
		Results:  results,
	})
}
