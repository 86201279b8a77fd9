package repository

import (
	"errors"

	"fundi_backend/internal/model"

	"gorm.io/gorm"
)

// LevelRepository handles course level lookups. The engine-facing
// methods take the caller's transaction; nil falls back to the bare
// connection.
type LevelRepository struct {
	DB *gorm.DB
}

func NewLevelRepository(db *gorm.DB) *LevelRepository {
	return &LevelRepository{DB: db}
}

func (r *LevelRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.DB
}

func (r *LevelRepository) Create(tx *gorm.DB, level *model.CourseLevel) error {
	return r.conn(tx).Create(level).Error
}

func (r *LevelRepository) FindByID(tx *gorm.DB, id string) (*model.CourseLevel, error) {
	var level model.CourseLevel
	if err := r.conn(tx).Where("id = ?", id).First(&level).Error; err != nil {
		return nil, err
	}
	return &level, nil
}

func (r *LevelRepository) ListByCourse(courseID string) ([]model.CourseLevel, error) {
	var levels []model.CourseLevel
	err := r.DB.Where("course_id = ?", courseID).Order("level_number").Find(&levels).Error
	return levels, err
}

// FirstLevel returns the lowest-numbered level of a course, or nil if
// the course has no levels yet.
func (r *LevelRepository) FirstLevel(tx *gorm.DB, courseID string) (*model.CourseLevel, error) {
	var level model.CourseLevel
	err := r.conn(tx).Where("course_id = ?", courseID).Order("level_number").First(&level).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &level, nil
}

// NextLevel returns the level immediately after levelNumber in a
// course, or nil when levelNumber is the last one.
func (r *LevelRepository) NextLevel(tx *gorm.DB, courseID string, levelNumber int) (*model.CourseLevel, error) {
	var level model.CourseLevel
	err := r.conn(tx).Where("course_id = ? AND level_number = ?", courseID, levelNumber+1).
		First(&level).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &level, nil
}
