package repository

import (
	"fundi_backend/internal/model"

	"gorm.io/gorm"
)

type ArtifactRepository struct {
	DB *gorm.DB
}

func NewArtifactRepository(db *gorm.DB) *ArtifactRepository {
	return &ArtifactRepository{DB: db}
}

func (r *ArtifactRepository) Create(artifact *model.Artifact) error {
	return r.DB.Create(artifact).Error
}

func (r *ArtifactRepository) FindByID(id string) (*model.Artifact, error) {
	var artifact model.Artifact
	if err := r.DB.Where("id = ?", id).First(&artifact).Error; err != nil {
		return nil, err
	}
	return &artifact, nil
}

func (r *ArtifactRepository) ListByLearner(learnerID string, page, limit int) ([]model.Artifact, int64, error) {
	var artifacts []model.Artifact
	var total int64
	query := r.DB.Model(&model.Artifact{}).Where("learner_id = ?", learnerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("submitted_at desc").Offset(offset).Limit(limit).Find(&artifacts).Error
	return artifacts, total, err
}

func (r *ArtifactRepository) CountByLearner(learnerID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Artifact{}).Where("learner_id = ?", learnerID).Count(&count).Error
	return count, err
}
