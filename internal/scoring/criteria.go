package scoring

// Criterion keys. These double as the JSON keys in rating/weight maps, so they
// are part of the external record shape.
const (
	KeyBusinessValue        = "businessValue"
	KeyStrategicAlignment   = "strategicAlignment"
	KeyTechnicalFeasibility = "technicalFeasibility"
	KeyImplementationEffort = "implementationEffort"
	KeyChangeImpact         = "changeImpact"
	KeyEthicalRisk          = "ethicalRisk"
)

// Criterion describes one dimension of the GSAIF rubric.
type Criterion struct {
	Key           string  `json:"key"`
	Label         string  `json:"label"`
	Description   string  `json:"description"`
	DefaultWeight float64 `json:"default_weight"`
	Inverted      bool    `json:"inverted"`
}

// criteria is the fixed six-dimension GSAIF rubric. The set is immutable after
// process start; Criteria returns a copy so callers cannot reorder or edit it.
var criteria = []Criterion{
	{
		Key:           KeyBusinessValue,
		Label:         "Business Value",
		Description:   "Expected contribution to revenue, cost reduction or service quality",
		DefaultWeight: 0.25,
	},
	{
		Key:           KeyStrategicAlignment,
		Label:         "Strategic Alignment",
		Description:   "Fit with the organisation's stated strategic objectives",
		DefaultWeight: 0.20,
	},
	{
		Key:           KeyTechnicalFeasibility,
		Label:         "Technical Feasibility",
		Description:   "Maturity of the required technology and availability of data",
		DefaultWeight: 0.20,
	},
	{
		Key:           KeyImplementationEffort,
		Label:         "Implementation Effort",
		Description:   "Cost, duration and complexity of delivery; higher effort lowers the composite score",
		DefaultWeight: 0.15,
		Inverted:      true,
	},
	{
		Key:           KeyChangeImpact,
		Label:         "Change Impact",
		Description:   "Organisational change required to adopt the initiative",
		DefaultWeight: 0.10,
	},
	{
		Key:           KeyEthicalRisk,
		Label:         "Ethical Risk Readiness",
		Description:   "Confidence that ethical, legal and compliance risks are managed",
		DefaultWeight: 0.10,
	},
}

// Criteria returns the rubric in its canonical order.
func Criteria() []Criterion {
	out := make([]Criterion, len(criteria))
	copy(out, criteria)
	return out
}

// CriterionKeys returns the rubric keys in canonical order.
func CriterionKeys() []string {
	keys := make([]string, len(criteria))
	for i, c := range criteria {
		keys[i] = c.Key
	}
	return keys
}

// IsCriterionKey reports whether key names a rubric dimension.
func IsCriterionKey(key string) bool {
	for _, c := range criteria {
		if c.Key == key {
			return true
		}
	}
	return false
}
