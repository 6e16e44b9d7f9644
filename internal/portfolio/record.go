package portfolio

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Compass/internal/scoring"
)

// DefaultTitle is used when a record is saved with a blank title.
const DefaultTitle = "Untitled initiative"

// Record is an immutable snapshot of one scored initiative. All sets are
// deep-copied at save time; a record is never mutated after creation, only
// removed.
type Record struct {
	ID         uuid.UUID            `json:"id"`
	Title      string               `json:"title"`
	Owner      string               `json:"owner"`
	Tags       []string             `json:"tags"`
	Scores     scoring.RatingSet    `json:"scores"`
	Weights    scoring.WeightSet    `json:"weights"`
	Thresholds scoring.ThresholdSet `json:"thresholds"`
	Total      float64              `json:"total"`
	Label      scoring.Label        `json:"label"`
	Impact     float64              `json:"impact"`
	Effort     float64              `json:"effort"`
	CreatedAt  time.Time            `json:"createdAt"`
}

// matches reports whether query (already lower-cased, non-empty) appears as a
// substring of the record's title, owner or any tag.
func (r *Record) matches(query string) bool {
	if strings.Contains(strings.ToLower(r.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Owner), query) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// ParseTags splits a comma-delimited tag string into trimmed, non-empty
// tokens, preserving order.
func ParseTags(text string) []string {
	tags := []string{}
	for _, raw := range strings.Split(text, ",") {
		if tag := strings.TrimSpace(raw); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
