package portfolio

import (
	"github.com/MikeSquared-Agency/Compass/internal/scoring"
)

// Session is the live editing state behind one form: the ratings, weights and
// thresholds currently on screen. Setters clamp on entry so out-of-range
// values never reach the model; out-of-rubric keys are dropped. The session is
// owned by a single caller and is not safe for concurrent use — the session
// manager serializes access.
type Session struct {
	ratings    scoring.RatingSet
	weights    scoring.WeightSet
	thresholds scoring.ThresholdSet
}

// NewSession returns a session seeded from the rubric defaults and the given
// thresholds.
func NewSession(weights scoring.WeightSet, thresholds scoring.ThresholdSet) *Session {
	return &Session{
		ratings:    scoring.RatingSet{},
		weights:    weights.Clone(),
		thresholds: thresholds,
	}
}

// SetRating stores a clamped rating. Unknown criterion keys are ignored.
func (s *Session) SetRating(key string, value float64) {
	if !scoring.IsCriterionKey(key) {
		return
	}
	s.ratings[key] = scoring.ClampRating(value)
}

// SetWeight stores a clamped weight. Unknown criterion keys are ignored.
func (s *Session) SetWeight(key string, value float64) {
	if !scoring.IsCriterionKey(key) {
		return
	}
	s.weights[key] = scoring.ClampWeight(value)
}

// SetThresholds replaces both cut points. No ordering check: the classifier's
// first-match-wins behavior with misordered thresholds is part of its
// contract.
func (s *Session) SetThresholds(t scoring.ThresholdSet) {
	s.thresholds = t
}

// Reset restores the session to its initial state.
func (s *Session) Reset(weights scoring.WeightSet, thresholds scoring.ThresholdSet) {
	s.ratings = scoring.RatingSet{}
	s.weights = weights.Clone()
	s.thresholds = thresholds
}

// Ratings returns a copy of the live ratings.
func (s *Session) Ratings() scoring.RatingSet { return s.ratings.Clone() }

// Weights returns a copy of the live weights.
func (s *Session) Weights() scoring.WeightSet { return s.weights.Clone() }

// Thresholds returns the live thresholds.
func (s *Session) Thresholds() scoring.ThresholdSet { return s.thresholds }

// Evaluation is the derived view of a rating/weight/threshold triple: the
// composite score, its classification, the chart position and the weight-sum
// advisory.
type Evaluation struct {
	Total       float64          `json:"total"`
	Label       scoring.Label    `json:"label"`
	Position    scoring.Position `json:"position"`
	WeightSum   float64          `json:"weight_sum"`
	WeightValid bool             `json:"weight_valid"`
}

// Evaluate runs the full engine pipeline over the given sets.
func Evaluate(ratings scoring.RatingSet, weights scoring.WeightSet, thresholds scoring.ThresholdSet) Evaluation {
	total := scoring.ComputeScore(ratings, weights)
	return Evaluation{
		Total:       total,
		Label:       scoring.Classify(total, thresholds),
		Position:    scoring.ImpactEffort(ratings),
		WeightSum:   weights.Sum(),
		WeightValid: weights.IsValid(),
	}
}

// Evaluate runs the engine pipeline over the session's live state.
func (s *Session) Evaluate() Evaluation {
	return Evaluate(s.ratings, s.weights, s.thresholds)
}
