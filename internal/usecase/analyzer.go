package usecase

import (
	"context"
	"errors"

	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/apperror"
	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/model"
	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/util"
)

// analyzeDocument runs one model call for the document kind, recovers the
// JSON object from the response, checks its shape, and clamps the declared
// score fields. Any failure propagates; no default analysis is substituted.
func (uc *AnalysisUsecase) analyzeDocument(ctx context.Context, rc *requestContext, stageCtx model.CareerStageContext, kind DocumentKind, text string) (model.Analysis, error) {
	var prompt string
	var scoreFields, requiredKeys []string
	switch kind {
	case KindCoverLetter:
		prompt = buildCoverLetterAnalysisPrompt(rc, stageCtx, text)
		scoreFields = model.CoverLetterScoreFields
		requiredKeys = model.CoverLetterRequiredKeys
	default:
		prompt = buildCVAnalysisPrompt(rc, stageCtx, text)
		scoreFields = model.CVScoreFields
		requiredKeys = model.CVRequiredKeys
	}

	raw, err := uc.gemini.GenerateContent(ctx, prompt, nil)
	if err != nil {
		return nil, apperror.Analysis("failed to analyze "+string(kind), err)
	}

	obj, cleaned, err := util.ParseModelJSON(raw)
	if err != nil {
		if errors.Is(err, util.ErrNoJSONFound) {
			return nil, apperror.Parse("model returned no JSON for "+string(kind), err)
		}
		return nil, apperror.Parse("model returned malformed JSON for "+string(kind), err)
	}

	if err := util.ValidateShape(cleaned, requiredKeys); err != nil {
		return nil, apperror.Parse("model response has unexpected shape for "+string(kind), err)
	}

	util.ClampScores(obj, scoreFields)
	return model.Analysis(obj), nil
}
