package scoring

// Position is the impact/effort coordinate used for quadrant placement.
type Position struct {
	Impact float64 `json:"impact"`
	Effort float64 `json:"effort"`
}

// ImpactEffort derives the 2-D chart position from raw ratings, both axes
// rounded to 2 decimal places.
//
// Impact is the average of business value and strategic alignment. Effort is
// the raw implementation effort rating, deliberately NOT inverted: unlike the
// composite score, the chart should show effort-heavy items as high effort.
func ImpactEffort(ratings RatingSet) Position {
	impact := (ClampRating(ratings.Get(KeyBusinessValue)) +
		ClampRating(ratings.Get(KeyStrategicAlignment))) / 2
	effort := ClampRating(ratings.Get(KeyImplementationEffort))
	return Position{
		Impact: round2(impact),
		Effort: round2(effort),
	}
}
