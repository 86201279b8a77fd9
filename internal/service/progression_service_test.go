package service

import (
	"testing"

	"fundi_backend/internal/model"
	"fundi_backend/internal/repository"
	"fundi_backend/internal/util"
	"fundi_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newProgressionService(db *gorm.DB) *ProgressionService {
	return NewProgressionService(
		repository.NewEnrollmentRepository(db),
		repository.NewProgressRepository(db),
		repository.NewLevelRepository(db),
		repository.NewCourseRepository(db),
		repository.NewLearnerRepository(db),
		repository.NewAchievementRepository(db),
		db,
	)
}

// seedCourse creates a learner and a three level robotics course with
// uniform thresholds, returning both.
func seedCourse(t *testing.T, db *gorm.DB) (*model.Learner, *model.Course) {
	t.Helper()

	learner := &model.Learner{ParentID: 1, FirstName: "Amina", LastName: "Oduya"}
	require.NoError(t, db.Create(learner).Error)

	course := &model.Course{Name: "Robotics", IsActive: true}
	require.NoError(t, db.Create(course).Error)

	for i := 1; i <= 3; i++ {
		level := &model.CourseLevel{
			CourseID:                course.ID,
			LevelNumber:             i,
			Name:                    levelName(i),
			RequiredModulesCount:    2,
			RequiredArtifactsCount:  1,
			RequiredAssessmentScore: 60,
		}
		require.NoError(t, db.Create(level).Error)
	}
	return learner, course
}

func levelName(n int) string {
	return []string{"", "Explorer", "Builder", "Inventor"}[n]
}

func intPtr(v int) *int { return &v }

func TestEnrollLearner_StartsAtFirstLevel(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressionService(db)
	learner, course := seedCourse(t, db)

	enrollment, err := svc.EnrollLearner(learner.ID, course.ID)
	require.NoError(t, err)
	require.True(t, enrollment.IsActive)
	require.NotNil(t, enrollment.CurrentLevelID)

	var level model.CourseLevel
	require.NoError(t, db.First(&level, "id = ?", *enrollment.CurrentLevelID).Error)
	require.Equal(t, 1, level.LevelNumber)

	var progress model.LevelProgress
	require.NoError(t, db.First(&progress, "enrollment_id = ?", enrollment.ID).Error)
	require.Equal(t, level.ID, progress.LevelID)
	require.False(t, progress.Completed)
}

func TestEnrollLearner_UnknownIDs(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressionService(db)
	learner, course := seedCourse(t, db)

	_, err := svc.EnrollLearner("missing", course.ID)
	require.ErrorIs(t, err, util.ErrLearnerNotFound)

	_, err = svc.EnrollLearner(learner.ID, "missing")
	require.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestEnrollLearner_DuplicateReactivates(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressionService(db)
	learner, course := seedCourse(t, db)

	first, err := svc.EnrollLearner(learner.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Withdraw(first.ID))

	second, err := svc.EnrollLearner(learner.ID, course.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.True(t, second.IsActive)

	var count int64
	require.NoError(t, db.Model(&model.CourseEnrollment{}).
		Where("learner_id = ? AND course_id = ?", learner.ID, course.ID).
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestReenrollment_PreservesProgress(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressionService(db)
	learner, course := seedCourse(t, db)

	enrollment, err := svc.EnrollLearner(learner.ID, course.ID)
	require.NoError(t, err)

	var progress model.LevelProgress
	require.NoError(t, db.First(&progress, "enrollment_id = ?", enrollment.ID).Error)

	_, _, err = svc.UpdateProgress(progress.ID, ProgressUpdateRequest{ModulesCompleted: intPtr(1)})
	require.NoError(t, err)

	require.NoError(t, svc.Withdraw(enrollment.ID))
	_, err = svc.EnrollLearner(learner.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, db.First(&progress, "id = ?", progress.ID).Error)
	require.Equal(t, 1, progress.ModulesCompleted)
}

func TestUpdateProgress_PromotesThroughLevels(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressionService(db)
	learner, course := seedCourse(t, db)

	enrollment, err := svc.EnrollLearner(learner.ID, course.ID)
	require.NoError(t, err)

	var progress model.LevelProgress
	require.NoError(t, db.First(&progress, "enrollment_id = ?", enrollment.ID).Error)

	// Partial progress does not promote.
	_, promoted, err := svc.UpdateProgress(progress.ID, ProgressUpdateRequest{
		ModulesCompleted: intPtr(2),
	})
	require.NoError(t, err)
	require.False(t, promoted)

	// Meeting every threshold promotes to level 2.
	updated, promoted, err := svc.UpdateProgress(progress.ID, ProgressUpdateRequest{
		ArtifactsSubmitted: intPtr(1),
		AssessmentScore:    intPtr(60),
	})
	require.NoError(t, err)
	require.True(t, promoted)
	require.True(t, updated.Completed)
	require.NotNil(t, updated.CompletedAt)

	require.NoError(t, db.First(&enrollment, "id = ?", enrollment.ID).Error)
	var current model.CourseLevel
	require.NoError(t, db.First(&current, "id = ?", *enrollment.CurrentLevelID).Error)
	require.Equal(t, 2, current.LevelNumber)

	// A progress record for the new level exists.
	var nextProgress model.LevelProgress
	require.NoError(t, db.First(&nextProgress,
		"enrollment_id = ? AND level_id = ?", enrollment.ID, current.ID).Error)
	require.False(t, nextProgress.Completed)
}

func TestCheckAndPromote_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressionService(db)
	learner, course := seedCourse(t, db)

	enrollment, err := svc.EnrollLearner(learner.ID, course.ID)
	require.NoError(t, err)

	var progress model.LevelProgress
	require.NoError(t, db.First(&progress, "enrollment_id = ?", enrollment.ID).Error)

	_, promoted, err := svc.UpdateProgress(progress.ID, ProgressUpdateRequest{
		ModulesCompleted:   intPtr(2),
		ArtifactsSubmitted: intPtr(1),
		AssessmentScore:    intPtr(60),
	})
	require.NoError(t, err)
	require.True(t, promoted)

	// Re-running the check with no new evidence changes nothing.
	promoted, err = svc.CheckAndPromote(enrollment.ID)
	require.NoError(t, err)
	require.False(t, promoted)
}

func TestCourseCompletion_TerminalAndStable(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressionService(db)
	learner, course := seedCourse(t, db)

	enrollment, err := svc.EnrollLearner(learner.ID, course.ID)
	require.NoError(t, err)

	// Walk all three levels.
	for i := 0; i < 3; i++ {
		require.NoError(t, db.First(&enrollment, "id = ?", enrollment.ID).Error)
		var progress model.LevelProgress
		require.NoError(t, db.First(&progress,
			"enrollment_id = ? AND level_id = ?", enrollment.ID, *enrollment.CurrentLevelID).Error)

		_, promoted, err := svc.UpdateProgress(progress.ID, ProgressUpdateRequest{
			ModulesCompleted:   intPtr(2),
			ArtifactsSubmitted: intPtr(1),
			AssessmentScore:    intPtr(60),
		})
		require.NoError(t, err)
		require.True(t, promoted)
	}

	require.NoError(t, db.First(&enrollment, "id = ?", enrollment.ID).Error)
	require.NotNil(t, enrollment.CompletedAt)
	require.True(t, enrollment.CompletedCourse())
	completedAt := *enrollment.CompletedAt

	// Final level stays current; re-checks change nothing and keep the
	// original completion timestamp.
	promoted, err := svc.CheckAndPromote(enrollment.ID)
	require.NoError(t, err)
	require.False(t, promoted)

	require.NoError(t, db.First(&enrollment, "id = ?", enrollment.ID).Error)
	require.Equal(t, completedAt.Unix(), enrollment.CompletedAt.Unix())

	var level model.CourseLevel
	require.NoError(t, db.First(&level, "id = ?", *enrollment.CurrentLevelID).Error)
	require.Equal(t, 3, level.LevelNumber)
}

func TestUpdateProgress_ScoreNeverLowered(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressionService(db)
	learner, course := seedCourse(t, db)

	enrollment, err := svc.EnrollLearner(learner.ID, course.ID)
	require.NoError(t, err)

	var progress model.LevelProgress
	require.NoError(t, db.First(&progress, "enrollment_id = ?", enrollment.ID).Error)

	updated, _, err := svc.UpdateProgress(progress.ID, ProgressUpdateRequest{AssessmentScore: intPtr(80)})
	require.NoError(t, err)
	require.Equal(t, 80, updated.AssessmentScore)

	updated, _, err = svc.UpdateProgress(progress.ID, ProgressUpdateRequest{AssessmentScore: intPtr(40)})
	require.NoError(t, err)
	require.Equal(t, 80, updated.AssessmentScore)
}

func TestUpdateProgress_NilFieldsUntouched(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressionService(db)
	learner, course := seedCourse(t, db)

	enrollment, err := svc.EnrollLearner(learner.ID, course.ID)
	require.NoError(t, err)

	var progress model.LevelProgress
	require.NoError(t, db.First(&progress, "enrollment_id = ?", enrollment.ID).Error)

	_, _, err = svc.UpdateProgress(progress.ID, ProgressUpdateRequest{ModulesCompleted: intPtr(1)})
	require.NoError(t, err)

	updated, _, err := svc.UpdateProgress(progress.ID, ProgressUpdateRequest{AssessmentScore: intPtr(50)})
	require.NoError(t, err)
	require.Equal(t, 1, updated.ModulesCompleted)
	require.Equal(t, 0, updated.ArtifactsSubmitted)
}

func TestConfirmCompletion_GatesPromotion(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressionService(db)

	learner := &model.Learner{ParentID: 1, FirstName: "Kito", LastName: "Mwangi"}
	require.NoError(t, db.Create(learner).Error)
	course := &model.Course{Name: "Music Production", IsActive: true}
	require.NoError(t, db.Create(course).Error)
	level := &model.CourseLevel{
		CourseID:                    course.ID,
		LevelNumber:                 1,
		Name:                        "Foundations",
		RequiredModulesCount:        1,
		RequiredArtifactsCount:      0,
		RequiredAssessmentScore:     0,
		RequiresTeacherConfirmation: true,
	}
	require.NoError(t, db.Create(level).Error)

	enrollment, err := svc.EnrollLearner(learner.ID, course.ID)
	require.NoError(t, err)

	var progress model.LevelProgress
	require.NoError(t, db.First(&progress, "enrollment_id = ?", enrollment.ID).Error)

	// Thresholds met but unconfirmed: no promotion.
	_, promoted, err := svc.UpdateProgress(progress.ID, ProgressUpdateRequest{ModulesCompleted: intPtr(1)})
	require.NoError(t, err)
	require.False(t, promoted)

	// Confirmation completes the only level and the course.
	_, promoted, err = svc.ConfirmCompletion(progress.ID)
	require.NoError(t, err)
	require.True(t, promoted)

	require.NoError(t, db.First(&enrollment, "id = ?", enrollment.ID).Error)
	require.NotNil(t, enrollment.CompletedAt)
}

func TestPromotion_AwardsBadgesOnce(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressionService(db)
	learner, course := seedCourse(t, db)

	enrollment, err := svc.EnrollLearner(learner.ID, course.ID)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, db.First(&enrollment, "id = ?", enrollment.ID).Error)
		var progress model.LevelProgress
		require.NoError(t, db.First(&progress,
			"enrollment_id = ? AND level_id = ?", enrollment.ID, *enrollment.CurrentLevelID).Error)
		_, _, err := svc.UpdateProgress(progress.ID, ProgressUpdateRequest{
			ModulesCompleted:   intPtr(2),
			ArtifactsSubmitted: intPtr(1),
			AssessmentScore:    intPtr(60),
		})
		require.NoError(t, err)
	}

	_, err = svc.CheckAndPromote(enrollment.ID)
	require.NoError(t, err)

	var levelBadges, courseBadges int64
	require.NoError(t, db.Model(&model.Achievement{}).
		Where("learner_id = ? AND type = ?", learner.ID, model.AchievementLevelComplete).
		Count(&levelBadges).Error)
	require.NoError(t, db.Model(&model.Achievement{}).
		Where("learner_id = ? AND type = ?", learner.ID, model.AchievementCourseComplete).
		Count(&courseBadges).Error)
	require.EqualValues(t, 3, levelBadges)
	require.EqualValues(t, 1, courseBadges)
}

func TestGetEnrollmentProgress_OrderedBreakdown(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressionService(db)
	learner, course := seedCourse(t, db)

	enrollment, err := svc.EnrollLearner(learner.ID, course.ID)
	require.NoError(t, err)

	rows, err := svc.GetEnrollmentProgress(enrollment.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, 1, rows[0].Level.LevelNumber)
	require.NotNil(t, rows[0].Progress)
	require.Equal(t, 0, rows[0].CompletionPercentage)

	// Unreached levels carry no progress record.
	require.Nil(t, rows[1].Progress)
	require.Nil(t, rows[2].Progress)
}

func TestEnrollLearner_CourseWithoutLevels(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressionService(db)

	learner := &model.Learner{ParentID: 1, FirstName: "Zawadi", LastName: "Njoroge"}
	require.NoError(t, db.Create(learner).Error)
	course := &model.Course{Name: "Empty Track", IsActive: true}
	require.NoError(t, db.Create(course).Error)

	enrollment, err := svc.EnrollLearner(learner.ID, course.ID)
	require.NoError(t, err)
	require.Nil(t, enrollment.CurrentLevelID)

	// Promotion on a level-less enrollment is a no-op.
	promoted, err := svc.CheckAndPromote(enrollment.ID)
	require.NoError(t, err)
	require.False(t, promoted)
}
