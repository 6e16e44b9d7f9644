package scoring

// Tier is the discrete bucket an initiative lands in.
type Tier string

const (
	TierQuickWin     Tier = "quick_win"
	TierStrategicBet Tier = "strategic_bet"
	TierFillIn       Tier = "fill_in"
)

// Priority is the coarse urgency attached to each tier.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ThresholdSet holds the two classification cut points. Immediate is expected
// to sit above Strong for the strategic-bet band to be reachable; the
// classifier does not enforce that (see Classify).
type ThresholdSet struct {
	Immediate float64 `json:"immediate" yaml:"immediate"`
	Strong    float64 `json:"strong" yaml:"strong"`
}

// DefaultThresholds returns the rubric's default cut points.
func DefaultThresholds() ThresholdSet {
	return ThresholdSet{Immediate: 7.5, Strong: 5.5}
}

// Label pairs a tier with its priority.
type Label struct {
	Tier     Tier     `json:"tier"`
	Priority Priority `json:"priority"`
}

// Classify maps a composite score to a tier and priority. Rules are evaluated
// top-down, first match wins, boundaries inclusive:
//
//	score >= immediate → quick_win / high
//	score >= strong    → strategic_bet / medium
//	otherwise          → fill_in / low
//
// Misordered thresholds (immediate <= strong) are applied mechanically: the
// strategic_bet band simply becomes unreachable. Callers wanting a guard must
// add one; the classifier stays a pure first-match rule chain.
func Classify(score float64, thresholds ThresholdSet) Label {
	switch {
	case score >= thresholds.Immediate:
		return Label{Tier: TierQuickWin, Priority: PriorityHigh}
	case score >= thresholds.Strong:
		return Label{Tier: TierStrategicBet, Priority: PriorityMedium}
	default:
		return Label{Tier: TierFillIn, Priority: PriorityLow}
	}
}
