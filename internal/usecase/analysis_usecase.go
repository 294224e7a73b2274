package usecase

import (
	"context"
	"encoding/base64"
	"time"

	"go.uber.org/zap"

	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/apperror"
	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/config"
	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/dto"
	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/model"
	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/service"
	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/util"
)

// Record-store lookups the pipeline consumes, satisfied by the gorm
// repositories and stubbed in tests.
type CandidateRepository interface {
	FindByTalentID(ctx context.Context, talentID string) (*model.Candidate, error)
}

type JobRepository interface {
	FindByID(ctx context.Context, id string) (*model.Job, error)
}

type EmployerRepository interface {
	FindByID(ctx context.Context, id string) (*model.Employer, error)
}

// AnalysisUsecase orchestrates one request end to end: validation, context
// fetch, per-document extraction and analysis, aggregation, and guaranteed
// temp-artifact cleanup.
type AnalysisUsecase struct {
	candidates CandidateRepository
	jobs       JobRepository
	employers  EmployerRepository
	gemini     service.GeminiServiceInterface
	storage    service.ObjectStorageInterface
	cfg        config.AnalysisConfig
	logger     *zap.Logger
}

func NewAnalysisUsecase(
	candidates CandidateRepository,
	jobs JobRepository,
	employers EmployerRepository,
	gemini service.GeminiServiceInterface,
	storage service.ObjectStorageInterface,
	cfg config.AnalysisConfig,
	logger *zap.Logger,
) *AnalysisUsecase {
	return &AnalysisUsecase{
		candidates: candidates,
		jobs:       jobs,
		employers:  employers,
		gemini:     gemini,
		storage:    storage,
		cfg:        cfg,
		logger:     logger,
	}
}

type document struct {
	kind     DocumentKind
	fileName string
	encoded  string
}

// Analyze runs the full pipeline for one request. The first failure at any
// step aborts the request; temp artifacts already uploaded are still swept
// on the way out.
func (uc *AnalysisUsecase) Analyze(ctx context.Context, req dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	started := time.Now()

	docs, err := uc.validate(req)
	if err != nil {
		return nil, err
	}

	rc, err := uc.fetchContext(ctx, req.TalentID, req.JobID)
	if err != nil {
		return nil, err
	}
	stageCtx := model.StageContext(rc.candidate.CareerStage)

	temp := newTempArtifacts(uc.storage, uc.logger)
	defer temp.sweep(ctx)

	analyses := map[DocumentKind]model.Analysis{}
	documentsAnalyzed := make([]string, 0, len(docs))

	for _, doc := range docs {
		data, err := base64.StdEncoding.DecodeString(doc.encoded)
		if err != nil {
			return nil, apperror.Input("document %s is not valid base64", doc.fileName)
		}

		temp.upload(ctx, doc.fileName, data, req.TalentID)

		text, err := uc.extractText(ctx, data, doc.fileName, doc.kind)
		if err != nil {
			return nil, err
		}

		analysis, err := uc.analyzeDocument(ctx, rc, stageCtx, doc.kind, text)
		if err != nil {
			return nil, err
		}

		analyses[doc.kind] = analysis
		documentsAnalyzed = append(documentsAnalyzed, string(doc.kind))
		uc.logger.Info("document analyzed",
			zap.String("kind", string(doc.kind)),
			zap.String("talent_id", req.TalentID),
			zap.String("job_id", req.JobID),
		)
	}

	section := &dto.AnalysisSection{
		CV:          analyses[KindCV],
		CoverLetter: analyses[KindCoverLetter],
	}
	if section.CV != nil && section.CoverLetter != nil {
		section.CombinedInsights = combineInsights(section.CV, section.CoverLetter, stageCtx)
	}

	return &dto.AnalyzeResponse{
		Success:            true,
		StatusCode:         200,
		Analysis:           section,
		CareerStageContext: &stageCtx,
		JobContext: &dto.JobContext{
			Title:          rc.job.Title,
			SeniorityLevel: rc.job.SeniorityLevel,
			Company:        employerName(rc),
			Industry:       rc.job.Industry,
		},
		Summary: &dto.Summary{
			DocumentsAnalyzed: documentsAnalyzed,
			ExecutionTime:     util.FormatExecutionTime(started),
			AnalyzedAt:        time.Now().UTC(),
		},
	}, nil
}

// validate checks required parameters and every supplied document before any
// external call is made.
func (uc *AnalysisUsecase) validate(req dto.AnalyzeRequest) ([]document, error) {
	if req.TalentID == "" {
		return nil, apperror.Input("talentId is required")
	}
	if req.JobID == "" {
		return nil, apperror.Input("jobId is required")
	}

	var docs []document
	if req.CVData != "" {
		if req.CVFileName == "" {
			return nil, apperror.Input("cvFileName is required when cvData is present")
		}
		docs = append(docs, document{kind: KindCV, fileName: req.CVFileName, encoded: req.CVData})
	}
	if req.CoverLetterData != "" {
		if req.CoverLetterFileName == "" {
			return nil, apperror.Input("coverLetterFileName is required when coverLetterData is present")
		}
		docs = append(docs, document{kind: KindCoverLetter, fileName: req.CoverLetterFileName, encoded: req.CoverLetterData})
	}
	if len(docs) == 0 {
		return nil, apperror.Input("at least one of cvData or coverLetterData is required")
	}

	for _, doc := range docs {
		if err := validateDocument(doc.fileName, doc.encoded, uc.cfg.MaxFileSizeBytes); err != nil {
			return nil, err
		}
	}
	return docs, nil
}
