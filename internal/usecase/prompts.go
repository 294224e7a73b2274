package usecase

import (
	"fmt"
	"strings"

	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/model"
)

const (
	notSpecifiedPlaceholder = "not specified"
	noEmployerPlaceholder   = "not available"
)

// joinOrPlaceholder renders a list for prompt interpolation, substituting a
// fixed placeholder when the list is empty.
func joinOrPlaceholder(items []string) string {
	if len(items) == 0 {
		return notSpecifiedPlaceholder
	}
	return strings.Join(items, ", ")
}

func employerName(rc *requestContext) string {
	if rc.employer == nil {
		return noEmployerPlaceholder
	}
	return rc.employer.Name
}

// buildCVAnalysisPrompt interpolates the full candidate/job/employer context
// and the extracted CV text. The embedded example JSON is the only schema
// contract the model gets.
func buildCVAnalysisPrompt(rc *requestContext, stageCtx model.CareerStageContext, cvText string) string {
	cand := rc.candidate
	job := rc.job

	return fmt.Sprintf(`You are an expert career advisor analyzing a candidate's CV against a specific job opening.

CANDIDATE:
Name: %s
Career stage: %s (%s)
Career stage focus: %s
Career stage expectations: %s
Skills: %s
Degrees and credentials: %s

JOB:
Title: %s
Seniority level: %s
Company: %s
Industry: %s
Required skills: %s
Required credentials: %s
Responsibilities: %s

CV TEXT:
%s

Analyze how well this CV matches the job, taking the candidate's career stage into account.
All scores are whole numbers from 0 to 100.

Return your answer STRICTLY in JSON format with this exact shape:
{
  "overallMatchScore": 75,
  "skillsAlignment": 70,
  "experienceRelevance": 80,
  "credentialsFit": 65,
  "careerStageFit": 72,
  "keyStrengths": ["strength one", "strength two"],
  "skillGaps": ["gap one", "gap two"],
  "tailoringSuggestions": ["suggestion one", "suggestion two"],
  "summary": "Two to four sentences summarizing the CV's fit for this job."
}`,
		cand.Name,
		stageCtx.Stage, stageCtx.Description,
		stageCtx.Focus,
		stageCtx.Expectations,
		joinOrPlaceholder(cand.Skills),
		joinOrPlaceholder(cand.Degrees),
		job.Title,
		job.SeniorityLevel,
		employerName(rc),
		job.Industry,
		joinOrPlaceholder(job.RequiredSkills),
		joinOrPlaceholder(job.RequiredDegrees),
		job.Responsibilities,
		cvText,
	)
}

// buildCoverLetterAnalysisPrompt mirrors the CV prompt with cover-letter
// specific criteria and example shape.
func buildCoverLetterAnalysisPrompt(rc *requestContext, stageCtx model.CareerStageContext, letterText string) string {
	cand := rc.candidate
	job := rc.job

	return fmt.Sprintf(`You are an expert career advisor analyzing a candidate's cover letter against a specific job opening.

CANDIDATE:
Name: %s
Career stage: %s (%s)
Career stage focus: %s
Career stage expectations: %s
Skills: %s
Degrees and credentials: %s

JOB:
Title: %s
Seniority level: %s
Company: %s
Industry: %s
Required skills: %s
Required credentials: %s
Responsibilities: %s

COVER LETTER TEXT:
%s

Analyze how well this cover letter supports the candidate's application for the job,
taking the candidate's career stage into account. All scores are whole numbers from 0 to 100.

Return your answer STRICTLY in JSON format with this exact shape:
{
  "overallMatchScore": 75,
  "motivationLevel": 80,
  "roleUnderstanding": 70,
  "communicationClarity": 85,
  "careerStageFit": 72,
  "keyStrengths": ["strength one", "strength two"],
  "improvementAreas": ["area one", "area two"],
  "tailoringSuggestions": ["suggestion one", "suggestion two"],
  "summary": "Two to four sentences summarizing how the letter supports the application."
}`,
		cand.Name,
		stageCtx.Stage, stageCtx.Description,
		stageCtx.Focus,
		stageCtx.Expectations,
		joinOrPlaceholder(cand.Skills),
		joinOrPlaceholder(cand.Degrees),
		job.Title,
		job.SeniorityLevel,
		employerName(rc),
		job.Industry,
		joinOrPlaceholder(job.RequiredSkills),
		joinOrPlaceholder(job.RequiredDegrees),
		job.Responsibilities,
		letterText,
	)
}
