package usecase

import (
	"fmt"
	"math"

	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/model"
)

const (
	defaultCareerStageScore = 50.0
	readinessThreshold      = 70.0
	consistencyScore        = 75
)

// combineInsights merges both analyses into the cross-document summary. It
// only runs when both documents were analyzed successfully. The consistency
// block is a deterministic placeholder, not an extra model call.
func combineInsights(cv, coverLetter model.Analysis, stageCtx model.CareerStageContext) *model.CombinedInsight {
	cvScore, _ := cv.Score("overallMatchScore")
	clScore, _ := coverLetter.Score("overallMatchScore")

	cvStage, ok := cv.Score("careerStageFit")
	if !ok {
		cvStage = defaultCareerStageScore
	}
	clStage, ok := coverLetter.Score("careerStageFit")
	if !ok {
		clStage = defaultCareerStageScore
	}

	recommendation := "Your application needs improvement before applying: strengthen the weaker document using the suggestions above, then reassess."
	if cvScore >= readinessThreshold && clScore >= readinessThreshold {
		recommendation = "Your application is ready to submit: both documents align well with this role."
	}

	return &model.CombinedInsight{
		OverallApplicationScore: int(math.Round((cvScore + clScore) / 2)),
		CareerStageReadiness:    int(math.Round((cvStage + clStage) / 2)),
		Consistency: model.Consistency{
			Score:      consistencyScore,
			Assessment: "Your CV and cover letter tell a broadly consistent story.",
			Note:       "Review both documents side by side to confirm dates, titles, and claims match exactly.",
		},
		StrategicAdvice: []string{
			fmt.Sprintf("At your career stage, focus on %s.", stageCtx.Focus),
			"Mirror the job posting's language for the skills you genuinely have.",
			"Lead both documents with the experience most relevant to this specific role.",
		},
		Recommendation: recommendation,
	}
}
