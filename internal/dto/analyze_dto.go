package dto

import (
	"time"

	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/model"
)

// AnalyzeRequest is the single JSON request body. Document payloads are
// base64-encoded; each is optional but at least one must be present.
type AnalyzeRequest struct {
	TalentID            string `json:"talentId"`
	JobID               string `json:"jobId"`
	CVData              string `json:"cvData"`
	CVFileName          string `json:"cvFileName"`
	CoverLetterData     string `json:"coverLetterData"`
	CoverLetterFileName string `json:"coverLetterFileName"`
}

// AnalyzeResponse is the success envelope. Failures are rendered by
// util.ErrorResponse instead.
type AnalyzeResponse struct {
	Success            bool                      `json:"success"`
	StatusCode         int                       `json:"statusCode"`
	Analysis           *AnalysisSection          `json:"analysis"`
	CareerStageContext *model.CareerStageContext `json:"careerStageContext"`
	JobContext         *JobContext               `json:"jobContext"`
	Summary            *Summary                  `json:"summary"`
}

type AnalysisSection struct {
	CV               model.Analysis         `json:"cv,omitempty"`
	CoverLetter      model.Analysis         `json:"coverLetter,omitempty"`
	CombinedInsights *model.CombinedInsight `json:"combinedInsights,omitempty"`
}

type JobContext struct {
	Title          string `json:"title"`
	SeniorityLevel string `json:"seniorityLevel"`
	Company        string `json:"company"`
	Industry       string `json:"industry"`
}

type Summary struct {
	DocumentsAnalyzed []string  `json:"documentsAnalyzed"`
	ExecutionTime     string    `json:"executionTime"`
	AnalyzedAt        time.Time `json:"analyzedAt"`
}
