package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/model"
)

type EmployerRepository struct {
	db *gorm.DB
}

func NewEmployerRepository(db *gorm.DB) *EmployerRepository {
	return &EmployerRepository{db}
}

func (r *EmployerRepository) FindByID(ctx context.Context, id string) (*model.Employer, error) {
	var e model.Employer
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}
