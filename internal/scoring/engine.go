package scoring

import (
	"math"
)

// RatingSet maps criterion keys to raw ratings on the 0–10 scale.
type RatingSet map[string]float64

// WeightSet maps criterion keys to weights, nominally in [0,1].
type WeightSet map[string]float64

// Get returns the rating for key, or 0 when the key is absent. Missing keys
// are a normal state of a half-edited form, not an error.
func (r RatingSet) Get(key string) float64 {
	return r[key]
}

// Clone returns an independent copy.
func (r RatingSet) Clone() RatingSet {
	out := make(RatingSet, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Get returns the weight for key, or 0 when the key is absent.
func (w WeightSet) Get(key string) float64 {
	return w[key]
}

// Clone returns an independent copy.
func (w WeightSet) Clone() WeightSet {
	out := make(WeightSet, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// Sum totals the rubric weights in canonical criterion order. Fixed order
// keeps the result deterministic (map iteration is not); out-of-rubric keys
// never contribute, matching the scoring engine.
func (w WeightSet) Sum() float64 {
	var total float64
	for _, c := range criteria {
		total += w[c.Key]
	}
	return total
}

// IsValid reports whether the weights sum to 1.0 within the advisory
// tolerance. This is informational only: scoring, classification and saving
// all proceed regardless.
func (w WeightSet) IsValid() bool {
	return math.Abs(w.Sum()-1.0) < weightSumTolerance
}

// DefaultWeights returns the rubric's default weight distribution.
func DefaultWeights() WeightSet {
	w := make(WeightSet, len(criteria))
	for _, c := range criteria {
		w[c.Key] = c.DefaultWeight
	}
	return w
}

const (
	ratingMin = 0.0
	ratingMax = 10.0
	weightMin = 0.0
	weightMax = 1.0

	weightSumTolerance = 0.01
)

// ClampRating forces a rating into the [0,10] scale.
func ClampRating(v float64) float64 {
	return clamp(v, ratingMin, ratingMax)
}

// ClampWeight forces a weight into [0,1].
func ClampWeight(v float64) float64 {
	return clamp(v, weightMin, weightMax)
}

// ComputeScore computes the weighted composite score on the 0–10 scale,
// rounded to 2 decimal places.
//
// Each rating is clamped to [0,10] before weighting. The implementation
// effort criterion contributes inverted (10 - rating): effort is a cost, so
// higher raw effort lowers the composite. Missing ratings and missing weights
// contribute 0.
func ComputeScore(ratings RatingSet, weights WeightSet) float64 {
	var total float64
	for _, c := range criteria {
		contribution := ClampRating(ratings.Get(c.Key))
		if c.Inverted {
			contribution = ratingMax - contribution
		}
		total += contribution * weights.Get(c.Key)
	}
	return round2(total)
}

// round2 rounds half up on the scaled integer: x100, round, /100.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
