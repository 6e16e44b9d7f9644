package api

import (
	"testing"

	"github.com/MikeSquared-Agency/Compass/internal/scoring"
)

func TestQuadrantFor(t *testing.T) {
	tests := []struct {
		name   string
		impact float64
		effort float64
		want   Quadrant
	}{
		{"high impact low effort", 8, 2, QuadrantQuickWin},
		{"high impact high effort", 8, 8, QuadrantBigBet},
		{"low impact low effort", 2, 2, QuadrantFillIn},
		{"low impact high effort", 2, 8, QuadrantReconsider},
		{"midpoint counts as high", 5, 5, QuadrantBigBet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuadrantFor(scoring.Position{Impact: tt.impact, Effort: tt.effort})
			if got != tt.want {
				t.Errorf("(%f, %f): expected %s, got %s", tt.impact, tt.effort, tt.want, got)
			}
		})
	}
}
