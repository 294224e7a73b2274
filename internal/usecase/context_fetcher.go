package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/apperror"
	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/model"
)

// requestContext is the per-request read-only snapshot of the record store.
type requestContext struct {
	candidate *model.Candidate
	job       *model.Job
	employer  *model.Employer
}

type candidateFetch struct {
	candidate *model.Candidate
	err       error
}

type jobFetch struct {
	job *model.Job
	err error
}

// fetchContext loads candidate and job concurrently, then attempts the
// employer lookup. Employer failures are swallowed: a missing employer
// degrades to a placeholder downstream and never aborts the request.
func (uc *AnalysisUsecase) fetchContext(ctx context.Context, talentID, jobID string) (*requestContext, error) {
	candCh := make(chan candidateFetch, 1)
	jobCh := make(chan jobFetch, 1)

	go func() {
		c, err := uc.candidates.FindByTalentID(ctx, talentID)
		candCh <- candidateFetch{candidate: c, err: err}
	}()
	go func() {
		j, err := uc.jobs.FindByID(ctx, jobID)
		jobCh <- jobFetch{job: j, err: err}
	}()

	cand := <-candCh
	job := <-jobCh

	if cand.err != nil {
		if errors.Is(cand.err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("candidate not found: %s", talentID)
		}
		return nil, cand.err
	}
	if job.err != nil {
		if errors.Is(job.err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("job not found: %s", jobID)
		}
		return nil, job.err
	}

	rc := &requestContext{candidate: cand.candidate, job: job.job}

	if job.job.EmployerID != "" {
		employer, err := uc.employers.FindByID(ctx, job.job.EmployerID)
		if err != nil {
			uc.logger.Warn("employer lookup failed, continuing without employer",
				zap.String("employer_id", job.job.EmployerID),
				zap.Error(err),
			)
		} else {
			rc.employer = employer
		}
	}

	return rc, nil
}
