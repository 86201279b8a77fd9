package service

import (
	"encoding/json"
	"errors"

	"fundi_backend/internal/model"
	"fundi_backend/internal/repository"
	"fundi_backend/internal/util"

	"gorm.io/gorm"
)

// CourseService handles course and level authoring. Level numbers are
// reassigned sequentially (1..N) whenever the level set is edited, so
// the catalog never holds gaps or duplicates.
type CourseService struct {
	CourseRepo *repository.CourseRepository
	LevelRepo  *repository.LevelRepository
	DB         *gorm.DB
}

func NewCourseService(courseRepo *repository.CourseRepository, levelRepo *repository.LevelRepository, db *gorm.DB) *CourseService {
	return &CourseService{
		CourseRepo: courseRepo,
		LevelRepo:  levelRepo,
		DB:         db,
	}
}

type LevelSpec struct {
	Name                        string   `json:"name" binding:"required"`
	Description                 string   `json:"description"`
	LearningOutcomes            []string `json:"learningOutcomes"`
	RequiredModulesCount        int      `json:"requiredModulesCount"`
	RequiredArtifactsCount      int      `json:"requiredArtifactsCount"`
	RequiredAssessmentScore     int      `json:"requiredAssessmentScore"`
	RequiresTeacherConfirmation bool     `json:"requiresTeacherConfirmation"`
}

type CourseCreateRequest struct {
	Name        string      `json:"name" binding:"required"`
	Description string      `json:"description"`
	TenantID    *string     `json:"tenantId"`
	Levels      []LevelSpec `json:"levels"`
}

func (s *CourseService) CreateCourse(req CourseCreateRequest) (*model.Course, error) {
	if req.Name == "" {
		return nil, errors.New("name required")
	}

	var created *model.Course
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		course := &model.Course{
			Name:        req.Name,
			Description: req.Description,
			IsActive:    true,
			TenantID:    req.TenantID,
		}
		if err := tx.Create(course).Error; err != nil {
			return err
		}
		if err := s.createLevels(tx, course.ID, req.Levels); err != nil {
			return err
		}
		created = course
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ReplaceLevels swaps a course's level set for the given specs. The new
// levels are numbered 1..N in the order supplied. Existing progress
// records keep their level references; only level authoring before a
// course is in active use should call this.
func (s *CourseService) ReplaceLevels(courseID string, specs []LevelSpec) ([]model.CourseLevel, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", courseID).Delete(&model.CourseLevel{}).Error; err != nil {
			return err
		}
		return s.createLevels(tx, courseID, specs)
	})
	if err != nil {
		return nil, err
	}
	return s.LevelRepo.ListByCourse(courseID)
}

func (s *CourseService) createLevels(tx *gorm.DB, courseID string, specs []LevelSpec) error {
	for i, spec := range specs {
		outcomes, _ := json.Marshal(spec.LearningOutcomes)
		level := &model.CourseLevel{
			CourseID:                    courseID,
			LevelNumber:                 i + 1,
			Name:                        spec.Name,
			Description:                 spec.Description,
			LearningOutcomes:            outcomes,
			RequiredModulesCount:        spec.RequiredModulesCount,
			RequiredArtifactsCount:      spec.RequiredArtifactsCount,
			RequiredAssessmentScore:     spec.RequiredAssessmentScore,
			RequiresTeacherConfirmation: spec.RequiresTeacherConfirmation,
		}
		if err := s.LevelRepo.Create(tx, level); err != nil {
			return err
		}
	}
	return nil
}

func (s *CourseService) GetCourse(id string) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	levels, err := s.LevelRepo.ListByCourse(id)
	if err != nil {
		return nil, err
	}
	careers, err := s.CourseRepo.ListCareers(id)
	if err != nil {
		return nil, err
	}
	course.Levels = levels
	course.Careers = careers
	return course, nil
}

func (s *CourseService) ListCourses(tenantID *string) ([]model.Course, error) {
	return s.CourseRepo.ListVisible(tenantID)
}

func (s *CourseService) ListLevels(courseID string) ([]model.CourseLevel, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return s.LevelRepo.ListByCourse(courseID)
}

type CareerCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

func (s *CourseService) AddCareer(courseID string, req CareerCreateRequest) (*model.Career, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	career := &model.Career{
		CourseID:    courseID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.CourseRepo.CreateCareer(career); err != nil {
		return nil, err
	}
	return career, nil
}
