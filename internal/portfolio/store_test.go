package portfolio

import (
	"testing"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Compass/internal/scoring"
)

func sampleRequest(title string) SaveRequest {
	return SaveRequest{
		Title:    title,
		Owner:    "Data Office",
		TagsText: "NLP, automation",
		Ratings: scoring.RatingSet{
			scoring.KeyBusinessValue:        8,
			scoring.KeyStrategicAlignment:   7,
			scoring.KeyTechnicalFeasibility: 6,
			scoring.KeyImplementationEffort: 5,
			scoring.KeyChangeImpact:         5,
			scoring.KeyEthicalRisk:          5,
		},
		Weights:    scoring.DefaultWeights(),
		Thresholds: scoring.DefaultThresholds(),
	}
}

func TestSaveComputesDerivedFields(t *testing.T) {
	s := NewStore()
	rec := s.Save(sampleRequest("Invoice triage"))

	if rec.ID == uuid.Nil {
		t.Error("expected generated id")
	}
	if rec.Total != 6.35 {
		t.Errorf("expected total 6.35, got %f", rec.Total)
	}
	if rec.Label.Tier != scoring.TierStrategicBet || rec.Label.Priority != scoring.PriorityMedium {
		t.Errorf("expected strategic_bet/medium, got %s/%s", rec.Label.Tier, rec.Label.Priority)
	}
	if rec.Impact != 7.5 || rec.Effort != 5 {
		t.Errorf("expected position (7.5, 5), got (%f, %f)", rec.Impact, rec.Effort)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("expected creation timestamp")
	}
	if len(rec.Tags) != 2 || rec.Tags[0] != "NLP" || rec.Tags[1] != "automation" {
		t.Errorf("unexpected tags: %v", rec.Tags)
	}
}

func TestSavePrependsAndGeneratesDistinctIDs(t *testing.T) {
	s := NewStore()
	first := s.Save(sampleRequest("First"))
	second := s.Save(sampleRequest("Second"))

	if first.ID == second.ID {
		t.Error("expected distinct identifiers")
	}

	records := s.List()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Title != "Second" || records[1].Title != "First" {
		t.Errorf("expected most-recent-first order, got %s then %s", records[0].Title, records[1].Title)
	}
}

func TestSaveBlankTitleFallsBack(t *testing.T) {
	s := NewStore()
	if rec := s.Save(sampleRequest("   ")); rec.Title != DefaultTitle {
		t.Errorf("expected %q, got %q", DefaultTitle, rec.Title)
	}
}

func TestSaveCopiesInputSets(t *testing.T) {
	s := NewStore()
	req := sampleRequest("Snapshot isolation")
	rec := s.Save(req)

	// Later edits to the live form must not change the saved record.
	req.Ratings[scoring.KeyBusinessValue] = 1
	req.Weights[scoring.KeyBusinessValue] = 0

	if rec.Scores[scoring.KeyBusinessValue] != 8 {
		t.Error("saved ratings aliased the live rating set")
	}
	if rec.Weights[scoring.KeyBusinessValue] != 0.25 {
		t.Error("saved weights aliased the live weight set")
	}
}

func TestRemove(t *testing.T) {
	s := NewStore()
	rec := s.Save(sampleRequest("Doomed"))
	keeper := s.Save(sampleRequest("Keeper"))

	if !s.Remove(rec.ID) {
		t.Error("expected removal of existing record")
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 record after removal, got %d", s.Len())
	}
	if s.Get(keeper.ID) == nil {
		t.Error("unrelated record went missing")
	}
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	s := NewStore()
	s.Save(sampleRequest("Survivor"))

	if s.Remove(uuid.New()) {
		t.Error("expected no-op for unknown id")
	}
	if s.Len() != 1 {
		t.Errorf("expected portfolio unchanged, got %d records", s.Len())
	}
}

func TestGetUnknownID(t *testing.T) {
	s := NewStore()
	if s.Get(uuid.New()) != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestFilter(t *testing.T) {
	s := NewStore()
	s.Save(SaveRequest{Title: "Churn model", Owner: "Alice", TagsText: "ml, retention"})
	s.Save(SaveRequest{Title: "Document NLP pipeline", Owner: "Bob", TagsText: "nlp"})
	s.Save(SaveRequest{Title: "Chatbot", Owner: "Carol", TagsText: "NLP, support"})

	tests := []struct {
		name       string
		query      string
		wantTitles []string
	}{
		{"empty query returns all in order", "", []string{"Chatbot", "Document NLP pipeline", "Churn model"}},
		{"whitespace query returns all", "   ", []string{"Chatbot", "Document NLP pipeline", "Churn model"}},
		{"tag match is case-insensitive", "nlp", []string{"Chatbot", "Document NLP pipeline"}},
		{"title substring", "churn", []string{"Churn model"}},
		{"owner substring", "bob", []string{"Document NLP pipeline"}},
		{"no match", "blockchain", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Filter(tt.query)
			if len(got) != len(tt.wantTitles) {
				t.Fatalf("expected %d records, got %d", len(tt.wantTitles), len(got))
			}
			for i, want := range tt.wantTitles {
				if got[i].Title != want {
					t.Errorf("position %d: expected %q, got %q", i, want, got[i].Title)
				}
			}
		})
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"  ,  , ", []string{}},
		{"nlp", []string{"nlp"}},
		{" NLP , automation,  ops ", []string{"NLP", "automation", "ops"}},
		{"a,,b", []string{"a", "b"}},
	}

	for _, tt := range tests {
		got := ParseTags(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("ParseTags(%q): expected %v, got %v", tt.in, tt.want, got)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseTags(%q): expected %v, got %v", tt.in, tt.want, got)
				break
			}
		}
	}
}
