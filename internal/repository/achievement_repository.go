package repository

import (
	"fundi_backend/internal/model"

	"gorm.io/gorm"
)

// AchievementRepository stores earned badges. The existence checks and
// Create take the caller's transaction so badge awards stay inside the
// promotion transaction; nil falls back to the bare connection.
type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.DB
}

func (r *AchievementRepository) Create(tx *gorm.DB, achievement *model.Achievement) error {
	return r.conn(tx).Create(achievement).Error
}

func (r *AchievementRepository) ListByLearner(learnerID string) ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.DB.Where("learner_id = ?", learnerID).Order("earned_at DESC").Find(&achievements).Error
	return achievements, err
}

// ExistsForLevel reports whether the learner already holds a badge of
// the given type for the level.
func (r *AchievementRepository) ExistsForLevel(tx *gorm.DB, learnerID, levelID, achievementType string) (bool, error) {
	var count int64
	err := r.conn(tx).Model(&model.Achievement{}).
		Where("learner_id = ? AND level_id = ? AND type = ?", learnerID, levelID, achievementType).
		Count(&count).Error
	return count > 0, err
}

// ExistsForCourse reports whether the learner already holds a badge of
// the given type for the course.
func (r *AchievementRepository) ExistsForCourse(tx *gorm.DB, learnerID, courseID, achievementType string) (bool, error) {
	var count int64
	err := r.conn(tx).Model(&model.Achievement{}).
		Where("learner_id = ? AND course_id = ? AND type = ?", learnerID, courseID, achievementType).
		Count(&count).Error
	return count > 0, err
}
