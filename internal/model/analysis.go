package model

// Analysis holds one document's model-generated analysis after JSON recovery
// and score clamping. The model's output shape is enforced only by the prompt
// example plus the top-level key check, so fields stay dynamic.
type Analysis map[string]any

// Score returns a named numeric field when present and numeric.
func (a Analysis) Score(field string) (float64, bool) {
	v, ok := a[field]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// CVScoreFields are the numeric fields of a CV analysis, each clamped into
// [0, 100] when present.
var CVScoreFields = []string{
	"overallMatchScore",
	"skillsAlignment",
	"experienceRelevance",
	"credentialsFit",
	"careerStageFit",
}

// CoverLetterScoreFields are the numeric fields of a cover-letter analysis.
var CoverLetterScoreFields = []string{
	"overallMatchScore",
	"motivationLevel",
	"roleUnderstanding",
	"communicationClarity",
	"careerStageFit",
}

// CVRequiredKeys must all be present in a parsed CV analysis.
var CVRequiredKeys = []string{
	"overallMatchScore",
	"keyStrengths",
	"skillGaps",
	"tailoringSuggestions",
	"summary",
}

// CoverLetterRequiredKeys must all be present in a parsed cover-letter analysis.
var CoverLetterRequiredKeys = []string{
	"overallMatchScore",
	"keyStrengths",
	"improvementAreas",
	"tailoringSuggestions",
	"summary",
}

// CombinedInsight is the cross-document summary produced only when both
// analyses succeed. It is computed deterministically, never by the model.
type CombinedInsight struct {
	OverallApplicationScore int         `json:"overallApplicationScore"`
	CareerStageReadiness    int         `json:"careerStageReadiness"`
	Consistency             Consistency `json:"consistency"`
	StrategicAdvice         []string    `json:"strategicAdvice"`
	Recommendation          string      `json:"recommendation"`
}

type Consistency struct {
	Score      int    `json:"score"`
	Assessment string `json:"assessment"`
	Note       string `json:"note"`
}
