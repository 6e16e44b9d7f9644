package portfolio

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Compass/internal/scoring"
)

// SaveRequest carries everything needed to snapshot one evaluation.
type SaveRequest struct {
	Title      string
	Owner      string
	TagsText   string
	Ratings    scoring.RatingSet
	Weights    scoring.WeightSet
	Thresholds scoring.ThresholdSet
}

// Store is the in-memory portfolio: an ordered collection of saved records,
// most-recently-saved first. It lives for the process only; durable storage is
// deliberately out of scope. Mutations are serialized with a mutex since the
// HTTP host is concurrent, but each session owns its own Store so there is no
// cross-session sharing.
type Store struct {
	mu      sync.Mutex
	records []*Record
}

// NewStore returns an empty portfolio.
func NewStore() *Store {
	return &Store{}
}

// Save snapshots the request into an immutable record, prepends it and
// returns it. Input sets are deep-copied so later edits to the live form
// never change saved records. A blank title falls back to DefaultTitle.
func (s *Store) Save(req SaveRequest) *Record {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = DefaultTitle
	}

	eval := Evaluate(req.Ratings, req.Weights, req.Thresholds)

	rec := &Record{
		ID:         uuid.New(),
		Title:      title,
		Owner:      strings.TrimSpace(req.Owner),
		Tags:       ParseTags(req.TagsText),
		Scores:     req.Ratings.Clone(),
		Weights:    req.Weights.Clone(),
		Thresholds: req.Thresholds,
		Total:      eval.Total,
		Label:      eval.Label,
		Impact:     eval.Position.Impact,
		Effort:     eval.Position.Effort,
		CreatedAt:  time.Now().UTC(),
	}

	s.mu.Lock()
	s.records = append([]*Record{rec}, s.records...)
	s.mu.Unlock()
	return rec
}

// Remove deletes the record with the given id. Removing an unknown id is a
// silent no-op; it reports whether a record was deleted.
func (s *Store) Remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.records {
		if rec.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the record with the given id, or nil.
func (s *Store) Get(id uuid.UUID) *Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.records {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}

// List returns all records, most-recent-first.
func (s *Store) List() []*Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Record, len(s.records))
	copy(out, s.records)
	return out
}

// Filter returns records whose title, owner or any tag contains query as a
// case-insensitive substring. An empty or whitespace-only query returns the
// full sequence in original order.
func (s *Store) Filter(query string) []*Record {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.List()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*Record{}
	for _, rec := range s.records {
		if rec.matches(query) {
			out = append(out, rec)
		}
	}
	return out
}

// Len returns the number of saved records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
