package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Compass/internal/events"
	"github.com/MikeSquared-Agency/Compass/internal/portfolio"
	"github.com/MikeSquared-Agency/Compass/internal/scoring"
)

// sanitizeRatings clamps body-supplied ratings and drops out-of-rubric keys,
// mirroring what the session setters do for live edits.
func sanitizeRatings(in scoring.RatingSet) scoring.RatingSet {
	out := make(scoring.RatingSet, len(in))
	for key, value := range in {
		if scoring.IsCriterionKey(key) {
			out[key] = scoring.ClampRating(value)
		}
	}
	return out
}

func sanitizeWeights(in scoring.WeightSet) scoring.WeightSet {
	out := make(scoring.WeightSet, len(in))
	for key, value := range in {
		if scoring.IsCriterionKey(key) {
			out[key] = scoring.ClampWeight(value)
		}
	}
	return out
}

type PortfolioHandler struct {
	manager *portfolio.Manager
	events  events.Client
}

func NewPortfolioHandler(m *portfolio.Manager, ev events.Client) *PortfolioHandler {
	return &PortfolioHandler{manager: m, events: ev}
}

type SaveRequest struct {
	Title string `json:"title"`
	Owner string `json:"owner,omitempty"`
	Tags  string `json:"tags,omitempty"`

	// Optional explicit sets; when omitted, the live session sets are used.
	Scores     scoring.RatingSet     `json:"scores,omitempty"`
	Weights    scoring.WeightSet     `json:"weights,omitempty"`
	Thresholds *scoring.ThresholdSet `json:"thresholds,omitempty"`
}

// Save handles POST /api/v1/portfolio
func (h *PortfolioHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	var rec *portfolio.Record
	h.manager.GetOrCreate(sessionID(r)).WithState(func(s *portfolio.Session, p *portfolio.Store) {
		save := portfolio.SaveRequest{
			Title:      req.Title,
			Owner:      req.Owner,
			TagsText:   req.Tags,
			Ratings:    s.Ratings(),
			Weights:    s.Weights(),
			Thresholds: s.Thresholds(),
		}
		if req.Scores != nil {
			save.Ratings = sanitizeRatings(req.Scores)
		}
		if req.Weights != nil {
			save.Weights = sanitizeWeights(req.Weights)
		}
		if req.Thresholds != nil {
			save.Thresholds = *req.Thresholds
		}
		rec = p.Save(save)
	})

	recordsSaved.Inc()

	if h.events != nil {
		_ = h.events.Publish(events.SubjectRecordSaved(rec.ID.String()), events.RecordSavedEvent{
			RecordID:  rec.ID.String(),
			SessionID: sessionID(r),
			Title:     rec.Title,
			Total:     rec.Total,
			Tier:      string(rec.Label.Tier),
			Priority:  string(rec.Label.Priority),
			CreatedAt: rec.CreatedAt,
		})
	}

	writeJSON(w, http.StatusCreated, rec)
}

// List handles GET /api/v1/portfolio — ?q= filters by case-insensitive
// substring over title, owner and tags.
func (h *PortfolioHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var records []*portfolio.Record
	h.manager.GetOrCreate(sessionID(r)).WithState(func(_ *portfolio.Session, p *portfolio.Store) {
		records = p.Filter(query)
	})
	writeJSON(w, http.StatusOK, records)
}

// Get handles GET /api/v1/portfolio/{id}
func (h *PortfolioHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var rec *portfolio.Record
	h.manager.GetOrCreate(sessionID(r)).WithState(func(_ *portfolio.Session, p *portfolio.Store) {
		rec = p.Get(id)
	})
	if rec == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "record not found"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Delete handles DELETE /api/v1/portfolio/{id}. Removing an unknown id is a
// silent no-op: 204 either way.
func (h *PortfolioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var removed bool
	h.manager.GetOrCreate(sessionID(r)).WithState(func(_ *portfolio.Session, p *portfolio.Store) {
		removed = p.Remove(id)
	})

	if removed {
		recordsRemoved.Inc()
		if h.events != nil {
			_ = h.events.Publish(events.SubjectRecordRemoved(id.String()), events.RecordRemovedEvent{
				RecordID:  id.String(),
				SessionID: sessionID(r),
			})
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
