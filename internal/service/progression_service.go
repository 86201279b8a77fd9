package service

import (
	"errors"
	"time"

	"fundi_backend/internal/model"
	"fundi_backend/internal/repository"
	"fundi_backend/internal/util"
	"fundi_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProgressionService owns the course progression state machine: it
// applies progress updates, decides level completion and promotes
// enrollments through the ordered level sequence. Every read-evaluate-
// write sequence runs inside one transaction; callers are expected to
// serialize writes per enrollment at the request layer.
type ProgressionService struct {
	EnrollmentRepo  *repository.EnrollmentRepository
	ProgressRepo    *repository.ProgressRepository
	LevelRepo       *repository.LevelRepository
	CourseRepo      *repository.CourseRepository
	LearnerRepo     *repository.LearnerRepository
	AchievementRepo *repository.AchievementRepository
	DB              *gorm.DB
}

func NewProgressionService(
	enrollmentRepo *repository.EnrollmentRepository,
	progressRepo *repository.ProgressRepository,
	levelRepo *repository.LevelRepository,
	courseRepo *repository.CourseRepository,
	learnerRepo *repository.LearnerRepository,
	achievementRepo *repository.AchievementRepository,
	db *gorm.DB,
) *ProgressionService {
	return &ProgressionService{
		EnrollmentRepo:  enrollmentRepo,
		ProgressRepo:    progressRepo,
		LevelRepo:       levelRepo,
		CourseRepo:      courseRepo,
		LearnerRepo:     learnerRepo,
		AchievementRepo: achievementRepo,
		DB:              db,
	}
}

// ProgressUpdateRequest enumerates exactly the fields a progress update
// may touch. Every field is independently optional; nil leaves the
// stored value unchanged.
type ProgressUpdateRequest struct {
	ModulesCompleted   *int  `json:"modulesCompleted"`
	ArtifactsSubmitted *int  `json:"artifactsSubmitted"`
	AssessmentScore    *int  `json:"assessmentScore"`
	TeacherConfirmed   *bool `json:"teacherConfirmed"`
}

// EnrollLearner enrolls a learner in a course, or reactivates the
// existing enrollment for the pair. The unique (learner, course)
// constraint is never violated: a concurrent duplicate create is caught
// and resolved as a reactivation.
func (s *ProgressionService) EnrollLearner(learnerID, courseID string) (*model.CourseEnrollment, error) {
	if _, err := s.LearnerRepo.FindByID(learnerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLearnerNotFound
		}
		return nil, err
	}
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	existing, err := s.EnrollmentRepo.FindByLearnerAndCourse(learnerID, courseID)
	if err == nil {
		return s.reactivate(existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var enrollment *model.CourseEnrollment
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		firstLevel, err := s.LevelRepo.FirstLevel(tx, courseID)
		if err != nil {
			return err
		}

		enrollment = &model.CourseEnrollment{
			LearnerID: learnerID,
			CourseID:  courseID,
			IsActive:  true,
		}
		if firstLevel != nil {
			enrollment.CurrentLevelID = &firstLevel.ID
		}
		if err := tx.Create(enrollment).Error; err != nil {
			return err
		}

		if firstLevel != nil {
			progress := &model.LevelProgress{
				EnrollmentID: enrollment.ID,
				LevelID:      firstLevel.ID,
			}
			if err := s.ProgressRepo.Create(tx, progress); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost a race with a concurrent enroll for the same pair.
		existing, ferr := s.EnrollmentRepo.FindByLearnerAndCourse(learnerID, courseID)
		if ferr != nil {
			return nil, ferr
		}
		return s.reactivate(existing)
	}
	if err != nil {
		return nil, err
	}

	logger.Log.Info("learner enrolled",
		zap.String("learnerId", learnerID),
		zap.String("courseId", courseID),
		zap.String("enrollmentId", enrollment.ID),
	)
	return enrollment, nil
}

// reactivate flips is_active back on. Existing progress records and the
// current level pointer are preserved as-is.
func (s *ProgressionService) reactivate(enrollment *model.CourseEnrollment) (*model.CourseEnrollment, error) {
	if enrollment.IsActive {
		return enrollment, nil
	}
	enrollment.IsActive = true
	if err := s.EnrollmentRepo.Save(enrollment); err != nil {
		return nil, err
	}
	logger.Log.Info("enrollment reactivated", zap.String("enrollmentId", enrollment.ID))
	return enrollment, nil
}

// Withdraw deactivates an enrollment without touching its progress.
func (s *ProgressionService) Withdraw(enrollmentID string) error {
	enrollment, err := s.EnrollmentRepo.FindByID(enrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrEnrollmentNotFound
		}
		return err
	}
	enrollment.IsActive = false
	return s.EnrollmentRepo.Save(enrollment)
}

// UpdateProgress applies the supplied counters to a progress record and
// runs the promotion check on the owning enrollment. ModulesCompleted
// and ArtifactsSubmitted replace the stored values; AssessmentScore
// keeps the best score ever seen and is never lowered.
func (s *ProgressionService) UpdateProgress(progressID string, req ProgressUpdateRequest) (*model.LevelProgress, bool, error) {
	var progress *model.LevelProgress
	var promoted bool

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		p, err := s.ProgressRepo.FindByID(tx, progressID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrProgressNotFound
			}
			return err
		}

		if req.ModulesCompleted != nil {
			p.ModulesCompleted = *req.ModulesCompleted
		}
		if req.ArtifactsSubmitted != nil {
			p.ArtifactsSubmitted = *req.ArtifactsSubmitted
		}
		if req.AssessmentScore != nil && *req.AssessmentScore > p.AssessmentScore {
			p.AssessmentScore = *req.AssessmentScore
		}
		if req.TeacherConfirmed != nil {
			p.TeacherConfirmed = *req.TeacherConfirmed
		}
		if err := s.ProgressRepo.Save(tx, p); err != nil {
			return err
		}

		var enrollment model.CourseEnrollment
		if err := tx.Where("id = ?", p.EnrollmentID).First(&enrollment).Error; err != nil {
			return err
		}

		promoted, err = s.checkAndPromote(tx, &enrollment)
		if err != nil {
			return err
		}

		// Promotion may have flagged this record completed; return the
		// persisted state.
		progress, err = s.ProgressRepo.FindByID(tx, progressID)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return progress, promoted, nil
}

// ConfirmCompletion records teacher sign-off on a level and runs the
// promotion check.
func (s *ProgressionService) ConfirmCompletion(progressID string) (*model.LevelProgress, bool, error) {
	confirmed := true
	return s.UpdateProgress(progressID, ProgressUpdateRequest{TeacherConfirmed: &confirmed})
}

// CheckAndPromote re-evaluates the enrollment's current level and
// promotes if its criteria are met. Safe to call redundantly.
func (s *ProgressionService) CheckAndPromote(enrollmentID string) (bool, error) {
	var promoted bool
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var enrollment model.CourseEnrollment
		if err := tx.Where("id = ?", enrollmentID).First(&enrollment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrEnrollmentNotFound
			}
			return err
		}
		var err error
		promoted, err = s.checkAndPromote(tx, &enrollment)
		return err
	})
	return promoted, err
}

// checkAndPromote is the transition function of the promotion state
// machine. It reports true only when it changed state: marking the
// current level complete and either advancing to the next level or
// stamping course completion. Re-runs after a terminal promotion change
// nothing and report false.
func (s *ProgressionService) checkAndPromote(tx *gorm.DB, enrollment *model.CourseEnrollment) (bool, error) {
	if enrollment.CurrentLevelID == nil {
		return false, nil
	}

	level, err := s.LevelRepo.FindByID(tx, *enrollment.CurrentLevelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	progress, err := s.ProgressRepo.FindByEnrollmentAndLevel(tx, enrollment.ID, level.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// A record should always exist once a level is current.
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if !progress.IsComplete(level) {
		return false, nil
	}

	changed := false
	if !progress.Completed {
		now := time.Now()
		progress.Completed = true
		progress.CompletedAt = &now
		if err := s.ProgressRepo.Save(tx, progress); err != nil {
			return false, err
		}
		if err := s.awardLevelBadge(tx, enrollment, level); err != nil {
			return false, err
		}
		changed = true
	}

	next, err := s.LevelRepo.NextLevel(tx, level.CourseID, level.LevelNumber)
	if err != nil {
		return false, err
	}

	if next != nil {
		enrollment.CurrentLevelID = &next.ID
		if err := tx.Save(enrollment).Error; err != nil {
			return false, err
		}
		// Reuse an existing record so a learner re-promoted into a level
		// keeps prior partial progress.
		if _, err := s.ProgressRepo.GetOrCreate(tx, enrollment.ID, next.ID); err != nil {
			return false, err
		}
		logger.Log.Info("learner promoted",
			zap.String("enrollmentId", enrollment.ID),
			zap.Int("levelNumber", next.LevelNumber),
		)
		return true, nil
	}

	// Final level done. Stamp course completion once; later re-checks
	// must not move the timestamp.
	if enrollment.CompletedAt == nil {
		now := time.Now()
		enrollment.CompletedAt = &now
		if err := tx.Save(enrollment).Error; err != nil {
			return false, err
		}
		if err := s.awardCourseBadge(tx, enrollment); err != nil {
			return false, err
		}
		logger.Log.Info("course completed",
			zap.String("enrollmentId", enrollment.ID),
			zap.String("courseId", enrollment.CourseID),
		)
		return true, nil
	}
	return changed, nil
}

func (s *ProgressionService) awardLevelBadge(tx *gorm.DB, enrollment *model.CourseEnrollment, level *model.CourseLevel) error {
	exists, err := s.AchievementRepo.ExistsForLevel(tx, enrollment.LearnerID, level.ID, model.AchievementLevelComplete)
	if err != nil || exists {
		return err
	}
	return s.AchievementRepo.Create(tx, &model.Achievement{
		LearnerID:   enrollment.LearnerID,
		Name:        "Completed " + level.Name,
		Description: "Met every completion criterion of the level",
		Type:        model.AchievementLevelComplete,
		Icon:        "medal",
		CourseID:    &enrollment.CourseID,
		LevelID:     &level.ID,
	})
}

func (s *ProgressionService) awardCourseBadge(tx *gorm.DB, enrollment *model.CourseEnrollment) error {
	exists, err := s.AchievementRepo.ExistsForCourse(tx, enrollment.LearnerID, enrollment.CourseID, model.AchievementCourseComplete)
	if err != nil || exists {
		return err
	}
	var course model.Course
	if err := tx.Where("id = ?", enrollment.CourseID).First(&course).Error; err != nil {
		return err
	}
	return s.AchievementRepo.Create(tx, &model.Achievement{
		LearnerID:   enrollment.LearnerID,
		Name:        "Completed " + course.Name,
		Description: "Finished every level of the course",
		Type:        model.AchievementCourseComplete,
		Icon:        "trophy",
		CourseID:    &enrollment.CourseID,
	})
}

// EnrollmentLevelProgress pairs a level with the learner's progress on
// it, nil when the learner has not reached the level yet.
type EnrollmentLevelProgress struct {
	Level                model.CourseLevel    `json:"level"`
	Progress             *model.LevelProgress `json:"progress"`
	CompletionPercentage int                  `json:"completionPercentage"`
}

// GetEnrollmentProgress returns the full per-level breakdown for an
// enrollment, ordered by level number.
func (s *ProgressionService) GetEnrollmentProgress(enrollmentID string) ([]EnrollmentLevelProgress, error) {
	enrollment, err := s.EnrollmentRepo.FindByID(enrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrEnrollmentNotFound
		}
		return nil, err
	}

	levels, err := s.LevelRepo.ListByCourse(enrollment.CourseID)
	if err != nil {
		return nil, err
	}
	records, err := s.ProgressRepo.ListByEnrollment(enrollment.ID)
	if err != nil {
		return nil, err
	}

	byLevel := make(map[string]*model.LevelProgress, len(records))
	for i := range records {
		byLevel[records[i].LevelID] = &records[i]
	}

	result := make([]EnrollmentLevelProgress, 0, len(levels))
	for i := range levels {
		entry := EnrollmentLevelProgress{Level: levels[i]}
		if p, ok := byLevel[levels[i].ID]; ok {
			entry.Progress = p
			entry.CompletionPercentage = p.CompletionPercentage(&levels[i])
		}
		result = append(result, entry)
	}
	return result, nil
}

// ListEnrollments returns a learner's enrollments, newest first.
func (s *ProgressionService) ListEnrollments(learnerID string) ([]model.CourseEnrollment, error) {
	if _, err := s.LearnerRepo.FindByID(learnerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLearnerNotFound
		}
		return nil, err
	}
	return s.EnrollmentRepo.ListByLearner(learnerID)
}
