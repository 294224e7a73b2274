package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/model"
)

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db}
}

// FindByTalentID looks up a candidate by the external-facing talent id. When
// the store holds duplicates the first row wins; ordering beyond that is not
// guaranteed.
func (r *CandidateRepository) FindByTalentID(ctx context.Context, talentID string) (*model.Candidate, error) {
	var c model.Candidate
	err := r.db.WithContext(ctx).Where("talent_id = ?", talentID).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
