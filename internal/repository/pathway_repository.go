package repository

import (
	"fundi_backend/internal/model"

	"gorm.io/gorm"
)

type PathwayRepository struct {
	DB *gorm.DB
}

func NewPathwayRepository(db *gorm.DB) *PathwayRepository {
	return &PathwayRepository{DB: db}
}

func (r *PathwayRepository) CreateInputs(inputs *model.PathwayInputs) error {
	return r.DB.Create(inputs).Error
}

// LatestInputs returns the most recently captured inputs for a learner.
func (r *PathwayRepository) LatestInputs(learnerID string) (*model.PathwayInputs, error) {
	var inputs model.PathwayInputs
	err := r.DB.Where("learner_id = ?", learnerID).
		Order("captured_at desc").
		First(&inputs).Error
	if err != nil {
		return nil, err
	}
	return &inputs, nil
}

func (r *PathwayRepository) CreateSnapshot(snapshot *model.GateSnapshot) error {
	return r.DB.Create(snapshot).Error
}

func (r *PathwayRepository) ListSnapshots(learnerID string, limit int) ([]model.GateSnapshot, error) {
	var snapshots []model.GateSnapshot
	err := r.DB.Where("learner_id = ?", learnerID).
		Order("created_at desc").
		Limit(limit).
		Find(&snapshots).Error
	return snapshots, err
}
