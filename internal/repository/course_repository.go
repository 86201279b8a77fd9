package repository

import (
	"fundi_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var course model.Course
	if err := r.DB.Where("id = ?", id).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// ListVisible returns active courses visible to a tenant: global courses
// plus the tenant's own. A nil tenantID gets global courses only.
func (r *CourseRepository) ListVisible(tenantID *string) ([]model.Course, error) {
	var courses []model.Course
	query := r.DB.Where("is_active = ?", true)
	if tenantID != nil {
		query = query.Where("tenant_id IS NULL OR tenant_id = ?", *tenantID)
	} else {
		query = query.Where("tenant_id IS NULL")
	}
	err := query.Order("name").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) CreateCareer(career *model.Career) error {
	return r.DB.Create(career).Error
}

func (r *CourseRepository) ListCareers(courseID string) ([]model.Career, error) {
	var careers []model.Career
	err := r.DB.Where("course_id = ?", courseID).Order("title").Find(&careers).Error
	return careers, err
}
