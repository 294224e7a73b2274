package usecase

import (
	"context"
	"strings"

	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/apperror"
	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/service"
)

const cvExtractionPrompt = `Extract all text content from this CV/resume document.
Focus on: personal details, professional summary, work experience with dates and
responsibilities, education and qualifications, technical and soft skills,
certifications, and notable achievements.
Return the extracted text as plain text, preserving the document's structure.
Do not summarize, interpret, or omit content.`

const coverLetterExtractionPrompt = `Extract all text content from this cover letter document.
Focus on: the opening and addressee, the candidate's stated motivation for the role,
claims about relevant experience and skills, references to the company or position,
and the closing.
Return the extracted text as plain text, preserving the document's structure.
Do not summarize, interpret, or omit content.`

// extractText converts a binary document into plain text via the model
// service. Shorter than the threshold after trimming counts as the model
// silently giving up, not as success.
func (uc *AnalysisUsecase) extractText(ctx context.Context, data []byte, fileName string, kind DocumentKind) (string, error) {
	prompt := cvExtractionPrompt
	if kind == KindCoverLetter {
		prompt = coverLetterExtractionPrompt
	}

	text, err := uc.gemini.GenerateContent(ctx, prompt, &service.Attachment{
		MIMEType: mimeTypeFor(fileName),
		Data:     data,
	})
	if err != nil {
		return "", apperror.Extraction("failed to extract text from "+fileName, err)
	}

	if len(strings.TrimSpace(text)) < uc.cfg.MinExtractedChars {
		return "", apperror.Extraction("extracted text from "+fileName+" is too short to analyze", nil)
	}

	return text, nil
}
