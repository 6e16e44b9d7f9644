package api

import (
	"github.com/MikeSquared-Agency/Compass/internal/scoring"
)

// Quadrant is the chart cell a position falls into. The split point and the
// labels are presentation concerns, which is why they live here and not in the
// engine.
type Quadrant string

const (
	QuadrantQuickWin   Quadrant = "quick_win"  // high impact, low effort
	QuadrantBigBet     Quadrant = "big_bet"    // high impact, high effort
	QuadrantFillIn     Quadrant = "fill_in"    // low impact, low effort
	QuadrantReconsider Quadrant = "reconsider" // low impact, high effort
)

// quadrantMidpoint splits the [0,10]x[0,10] chart at its center. High-side
// boundaries are inclusive.
const quadrantMidpoint = 5.0

func QuadrantFor(pos scoring.Position) Quadrant {
	highImpact := pos.Impact >= quadrantMidpoint
	highEffort := pos.Effort >= quadrantMidpoint
	switch {
	case highImpact && !highEffort:
		return QuadrantQuickWin
	case highImpact && highEffort:
		return QuadrantBigBet
	case !highImpact && !highEffort:
		return QuadrantFillIn
	default:
		return QuadrantReconsider
	}
}
