package repository

import (
	"fundi_backend/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) Create(enrollment *model.CourseEnrollment) error {
	return r.DB.Create(enrollment).Error
}

func (r *EnrollmentRepository) Save(enrollment *model.CourseEnrollment) error {
	return r.DB.Save(enrollment).Error
}

func (r *EnrollmentRepository) FindByID(id string) (*model.CourseEnrollment, error) {
	var enrollment model.CourseEnrollment
	err := r.DB.Preload("CurrentLevel").
		Where("id = ?", id).
		First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// FindByLearnerAndCourse finds the single enrollment for the pair,
// active or withdrawn. Returns gorm.ErrRecordNotFound when none exists.
func (r *EnrollmentRepository) FindByLearnerAndCourse(learnerID, courseID string) (*model.CourseEnrollment, error) {
	var enrollment model.CourseEnrollment
	err := r.DB.Preload("CurrentLevel").
		Where("learner_id = ? AND course_id = ?", learnerID, courseID).
		First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *EnrollmentRepository) ListByLearner(learnerID string) ([]model.CourseEnrollment, error) {
	var enrollments []model.CourseEnrollment
	err := r.DB.Preload("CurrentLevel").
		Where("learner_id = ?", learnerID).
		Order("enrolled_at desc").
		Find(&enrollments).Error
	return enrollments, err
}
