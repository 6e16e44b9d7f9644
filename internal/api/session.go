package api

import (
	"encoding/json"
	"net/http"

	"github.com/MikeSquared-Agency/Compass/internal/portfolio"
	"github.com/MikeSquared-Agency/Compass/internal/scoring"
)

type SessionHandler struct {
	manager *portfolio.Manager
}

func NewSessionHandler(m *portfolio.Manager) *SessionHandler {
	return &SessionHandler{manager: m}
}

// SessionView is the live form plus everything derived from it.
type SessionView struct {
	Ratings    scoring.RatingSet    `json:"ratings"`
	Weights    scoring.WeightSet    `json:"weights"`
	Thresholds scoring.ThresholdSet `json:"thresholds"`
	Evaluation portfolio.Evaluation `json:"evaluation"`
	Quadrant   Quadrant             `json:"quadrant"`
}

func sessionView(s *portfolio.Session) SessionView {
	eval := s.Evaluate()
	return SessionView{
		Ratings:    s.Ratings(),
		Weights:    s.Weights(),
		Thresholds: s.Thresholds(),
		Evaluation: eval,
		Quadrant:   QuadrantFor(eval.Position),
	}
}

// Get handles GET /api/v1/session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	var view SessionView
	h.manager.GetOrCreate(sessionID(r)).WithState(func(s *portfolio.Session, _ *portfolio.Store) {
		view = sessionView(s)
	})
	writeJSON(w, http.StatusOK, view)
}

// PatchRatings handles PATCH /api/v1/session/ratings. The body is a partial
// key→value map; values are clamped to [0,10] and unknown keys dropped.
func (h *SessionHandler) PatchRatings(w http.ResponseWriter, r *http.Request) {
	var patch map[string]float64
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	var view SessionView
	h.manager.GetOrCreate(sessionID(r)).WithState(func(s *portfolio.Session, _ *portfolio.Store) {
		for key, value := range patch {
			s.SetRating(key, value)
		}
		view = sessionView(s)
	})
	writeJSON(w, http.StatusOK, view)
}

// PatchWeights handles PATCH /api/v1/session/weights. Values are clamped to
// [0,1]. A weight sum away from 1.0 flips the advisory flag in the response
// but never rejects the update.
func (h *SessionHandler) PatchWeights(w http.ResponseWriter, r *http.Request) {
	var patch map[string]float64
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	var view SessionView
	h.manager.GetOrCreate(sessionID(r)).WithState(func(s *portfolio.Session, _ *portfolio.Store) {
		for key, value := range patch {
			s.SetWeight(key, value)
		}
		view = sessionView(s)
	})
	writeJSON(w, http.StatusOK, view)
}

// PatchThresholds handles PATCH /api/v1/session/thresholds
func (h *SessionHandler) PatchThresholds(w http.ResponseWriter, r *http.Request) {
	var req scoring.ThresholdSet
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	var view SessionView
	h.manager.GetOrCreate(sessionID(r)).WithState(func(s *portfolio.Session, _ *portfolio.Store) {
		s.SetThresholds(req)
		view = sessionView(s)
	})
	writeJSON(w, http.StatusOK, view)
}

// Reset handles POST /api/v1/session/reset
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	weights, thresholds := h.manager.Defaults()

	var view SessionView
	h.manager.GetOrCreate(sessionID(r)).WithState(func(s *portfolio.Session, _ *portfolio.Store) {
		s.Reset(weights, thresholds)
		view = sessionView(s)
	})
	writeJSON(w, http.StatusOK, view)
}

type PreviewRequest struct {
	Scores     scoring.RatingSet     `json:"scores"`
	Weights    scoring.WeightSet     `json:"weights"`
	Thresholds *scoring.ThresholdSet `json:"thresholds,omitempty"`
}

type PreviewResponse struct {
	portfolio.Evaluation
	Quadrant Quadrant `json:"quadrant"`
}

// Preview handles POST /api/v1/evaluations/preview — a stateless run of the
// engine over sets supplied in the body. Missing thresholds fall back to the
// session defaults.
func (h *SessionHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	thresholds := req.Thresholds
	if thresholds == nil {
		_, t := h.manager.Defaults()
		thresholds = &t
	}

	eval := portfolio.Evaluate(req.Scores, req.Weights, *thresholds)
	writeJSON(w, http.StatusOK, PreviewResponse{
		Evaluation: eval,
		Quadrant:   QuadrantFor(eval.Position),
	})
}

// GetCriteria handles GET /api/v1/criteria
func GetCriteria(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scoring.Criteria())
}
