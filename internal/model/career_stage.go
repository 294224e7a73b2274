package model

// CareerStageContext is derived, never stored: narrative guidance keyed by the
// candidate's career-stage tag, interpolated into analysis prompts and echoed
// in the response.
type CareerStageContext struct {
	Stage        string   `json:"stage"`
	Description  string   `json:"description"`
	Focus        string   `json:"focus"`
	Expectations string   `json:"expectations"`
	Priorities   []string `json:"priorities"`
}

var careerStageContexts = map[string]CareerStageContext{
	"early_career": {
		Stage:        "early_career",
		Description:  "Building foundational professional experience",
		Focus:        "demonstrating learning ability, relevant coursework, internships, and transferable skills",
		Expectations: "Employers expect potential and eagerness to grow rather than a deep track record",
		Priorities: []string{
			"Highlight academic projects and internships",
			"Show enthusiasm for the industry",
			"Emphasize adaptability and willingness to learn",
		},
	},
	"established": {
		Stage:        "established",
		Description:  "Progressing within an existing professional track",
		Focus:        "quantifiable achievements, ownership of outcomes, and growing scope of responsibility",
		Expectations: "Employers expect a proven record of delivery and increasing autonomy",
		Priorities: []string{
			"Quantify impact with concrete results",
			"Show progression in responsibility",
			"Demonstrate depth in core skills",
		},
	},
	"transitioning": {
		Stage:        "transitioning",
		Description:  "Moving between industries, functions, or career tracks",
		Focus:        "transferable skills, motivation for the change, and bridging experience",
		Expectations: "Employers expect a clear narrative for the transition and evidence the skills carry over",
		Priorities: []string{
			"Connect past experience to the target role",
			"Address the transition directly and positively",
			"Show investment in the new field",
		},
	},
}

// fallbackCareerStageContext is the single context used when the candidate's
// tag is missing or unrecognized.
var fallbackCareerStageContext = CareerStageContext{
	Stage:        "unspecified",
	Description:  "Career stage not specified",
	Focus:        "presenting skills and experience in the strongest general terms",
	Expectations: "Employers will evaluate the application on its overall merits",
	Priorities: []string{
		"Lead with the most relevant experience",
		"Keep the narrative consistent across documents",
	},
}

// StageContext resolves a career-stage tag to its narrative context, falling
// back to the single unspecified context for unknown tags.
func StageContext(stage string) CareerStageContext {
	if ctx, ok := careerStageContexts[stage]; ok {
		return ctx
	}
	return fallbackCareerStageContext
}
