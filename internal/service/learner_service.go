package service

import (
	"errors"
	"time"

	"fundi_backend/internal/model"
	"fundi_backend/internal/repository"
	"fundi_backend/internal/util"

	"gorm.io/gorm"
)

type LearnerService struct {
	LearnerRepo     *repository.LearnerRepository
	AchievementRepo *repository.AchievementRepository
}

func NewLearnerService(learnerRepo *repository.LearnerRepository, achievementRepo *repository.AchievementRepository) *LearnerService {
	return &LearnerService{
		LearnerRepo:     learnerRepo,
		AchievementRepo: achievementRepo,
	}
}

type LearnerCreateRequest struct {
	FirstName     string     `json:"firstName" binding:"required"`
	LastName      string     `json:"lastName" binding:"required"`
	DateOfBirth   *time.Time `json:"dateOfBirth"`
	CurrentSchool string     `json:"currentSchool"`
	CurrentClass  string     `json:"currentClass"`
	ConsentMedia  bool       `json:"consentMedia"`
	SchoolID      *string    `json:"schoolId"`
}

func (s *LearnerService) CreateLearner(parentID uint, req LearnerCreateRequest) (*model.Learner, error) {
	learner := &model.Learner{
		SchoolID:      req.SchoolID,
		ParentID:      parentID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		DateOfBirth:   req.DateOfBirth,
		CurrentSchool: req.CurrentSchool,
		CurrentClass:  req.CurrentClass,
		ConsentMedia:  req.ConsentMedia,
	}
	if err := s.LearnerRepo.Create(learner); err != nil {
		return nil, err
	}
	return learner, nil
}

func (s *LearnerService) GetLearner(id string) (*model.Learner, error) {
	learner, err := s.LearnerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLearnerNotFound
		}
		return nil, err
	}
	return learner, nil
}

func (s *LearnerService) ListByParent(parentID uint) ([]model.Learner, error) {
	return s.LearnerRepo.ListByParent(parentID)
}

func (s *LearnerService) ListBySchool(schoolID string) ([]model.Learner, error) {
	return s.LearnerRepo.ListBySchool(schoolID)
}

func (s *LearnerService) ListAchievements(learnerID string) ([]model.Achievement, error) {
	if _, err := s.LearnerRepo.FindByID(learnerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLearnerNotFound
		}
		return nil, err
	}
	return s.AchievementRepo.ListByLearner(learnerID)
}
