package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MikeSquared-Agency/Compass/internal/scoring"
)

func decodeView(t *testing.T, body *json.Decoder) SessionView {
	t.Helper()
	var view SessionView
	if err := body.Decode(&view); err != nil {
		t.Fatalf("decode session view: %v", err)
	}
	return view
}

func TestPatchRatingsClampsAndEvaluates(t *testing.T) {
	router, _ := setupRouter("")

	rec := doRequest(t, router, http.MethodPatch, "/api/v1/session/ratings", "s1",
		`{"businessValue": 14, "ethicalRisk": -3, "velocity": 9}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	view := decodeView(t, json.NewDecoder(rec.Body))
	if view.Ratings[scoring.KeyBusinessValue] != 10 {
		t.Errorf("expected clamped rating 10, got %f", view.Ratings[scoring.KeyBusinessValue])
	}
	if view.Ratings[scoring.KeyEthicalRisk] != 0 {
		t.Errorf("expected clamped rating 0, got %f", view.Ratings[scoring.KeyEthicalRisk])
	}
	if _, ok := view.Ratings["velocity"]; ok {
		t.Error("unknown rating key should be dropped")
	}
}

func TestPatchWeightsAdvisoryOnly(t *testing.T) {
	router, _ := setupRouter("")

	rec := doRequest(t, router, http.MethodPatch, "/api/v1/session/weights", "s1",
		`{"businessValue": 0.9}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	view := decodeView(t, json.NewDecoder(rec.Body))
	if view.Evaluation.WeightValid {
		t.Errorf("expected invalid weight advisory, sum=%f", view.Evaluation.WeightSum)
	}
}

func TestSessionLifecycle(t *testing.T) {
	router, _ := setupRouter("")

	doRequest(t, router, http.MethodPatch, "/api/v1/session/ratings", "s1",
		`{"businessValue": 8, "strategicAlignment": 7, "technicalFeasibility": 6,
		  "implementationEffort": 5, "changeImpact": 5, "ethicalRisk": 5}`)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/session", "s1", "")
	view := decodeView(t, json.NewDecoder(rec.Body))
	if view.Evaluation.Total != 6.35 {
		t.Errorf("expected total 6.35, got %f", view.Evaluation.Total)
	}
	if view.Evaluation.Label.Tier != scoring.TierStrategicBet {
		t.Errorf("expected strategic_bet, got %s", view.Evaluation.Label.Tier)
	}
	if view.Quadrant != QuadrantBigBet {
		t.Errorf("expected big_bet quadrant for (7.5, 5), got %s", view.Quadrant)
	}

	// Another session starts clean.
	rec = doRequest(t, router, http.MethodGet, "/api/v1/session", "s2", "")
	view = decodeView(t, json.NewDecoder(rec.Body))
	if len(view.Ratings) != 0 {
		t.Errorf("expected fresh session for s2, got ratings %v", view.Ratings)
	}

	// Reset clears the first session.
	rec = doRequest(t, router, http.MethodPost, "/api/v1/session/reset", "s1", "")
	view = decodeView(t, json.NewDecoder(rec.Body))
	if len(view.Ratings) != 0 {
		t.Errorf("expected empty ratings after reset, got %v", view.Ratings)
	}
	if view.Weights[scoring.KeyBusinessValue] != 0.25 {
		t.Errorf("expected default weights after reset, got %f", view.Weights[scoring.KeyBusinessValue])
	}
}

func TestPatchThresholds(t *testing.T) {
	router, _ := setupRouter("")

	rec := doRequest(t, router, http.MethodPatch, "/api/v1/session/thresholds", "s1",
		`{"immediate": 9.0, "strong": 8.0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	view := decodeView(t, json.NewDecoder(rec.Body))
	if view.Thresholds.Immediate != 9.0 || view.Thresholds.Strong != 8.0 {
		t.Errorf("unexpected thresholds: %+v", view.Thresholds)
	}
}

func TestPreview(t *testing.T) {
	router, _ := setupRouter("")

	body := `{
		"scores": {"businessValue": 8, "strategicAlignment": 7, "technicalFeasibility": 6,
		           "implementationEffort": 5, "changeImpact": 5, "ethicalRisk": 5},
		"weights": {"businessValue": 0.25, "strategicAlignment": 0.20, "technicalFeasibility": 0.20,
		            "implementationEffort": 0.15, "changeImpact": 0.10, "ethicalRisk": 0.10}
	}`
	rec := doRequest(t, router, http.MethodPost, "/api/v1/evaluations/preview", "s1", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp PreviewResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 6.35 {
		t.Errorf("expected total 6.35, got %f", resp.Total)
	}
	if resp.Label.Tier != scoring.TierStrategicBet {
		t.Errorf("expected strategic_bet, got %s", resp.Label.Tier)
	}
	if resp.Position.Impact != 7.5 || resp.Position.Effort != 5 {
		t.Errorf("expected (7.5, 5), got (%f, %f)", resp.Position.Impact, resp.Position.Effort)
	}
}

func TestPreviewInvalidBody(t *testing.T) {
	router, _ := setupRouter("")
	rec := doRequest(t, router, http.MethodPost, "/api/v1/evaluations/preview", "s1", "{nope")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
