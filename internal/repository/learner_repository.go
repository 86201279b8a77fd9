package repository

import (
	"fundi_backend/internal/model"

	"gorm.io/gorm"
)

type LearnerRepository struct {
	DB *gorm.DB
}

func NewLearnerRepository(db *gorm.DB) *LearnerRepository {
	return &LearnerRepository{DB: db}
}

func (r *LearnerRepository) Create(learner *model.Learner) error {
	return r.DB.Create(learner).Error
}

func (r *LearnerRepository) Update(learner *model.Learner) error {
	return r.DB.Save(learner).Error
}

func (r *LearnerRepository) FindByID(id string) (*model.Learner, error) {
	var learner model.Learner
	if err := r.DB.Where("id = ?", id).First(&learner).Error; err != nil {
		return nil, err
	}
	return &learner, nil
}

func (r *LearnerRepository) ListByParent(parentID uint) ([]model.Learner, error) {
	var learners []model.Learner
	err := r.DB.Where("parent_id = ?", parentID).
		Order("first_name, last_name").
		Find(&learners).Error
	return learners, err
}

// ListBySchool is tenant-scoped; the school ID is always passed in
// explicitly by the caller.
func (r *LearnerRepository) ListBySchool(schoolID string) ([]model.Learner, error) {
	var learners []model.Learner
	err := r.DB.Where("school_id = ?", schoolID).
		Order("first_name, last_name").
		Find(&learners).Error
	return learners, err
}
