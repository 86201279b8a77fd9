package repository

import (
	"fundi_backend/internal/model"

	"gorm.io/gorm"
)

// ProgressRepository reads and writes level progress records. Methods
// take the caller's transaction so the promotion engine can run its
// read-evaluate-write cycle atomically; nil falls back to the bare
// connection.
type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.DB
}

func (r *ProgressRepository) Create(tx *gorm.DB, progress *model.LevelProgress) error {
	return r.conn(tx).Create(progress).Error
}

func (r *ProgressRepository) Save(tx *gorm.DB, progress *model.LevelProgress) error {
	return r.conn(tx).Save(progress).Error
}

func (r *ProgressRepository) FindByID(tx *gorm.DB, id string) (*model.LevelProgress, error) {
	var progress model.LevelProgress
	if err := r.conn(tx).Where("id = ?", id).First(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) FindByEnrollmentAndLevel(tx *gorm.DB, enrollmentID, levelID string) (*model.LevelProgress, error) {
	var progress model.LevelProgress
	err := r.conn(tx).Where("enrollment_id = ? AND level_id = ?", enrollmentID, levelID).
		First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// GetOrCreate returns the record for the pair, creating a zeroed one if
// absent. The unique (enrollment_id, level_id) index makes concurrent
// creates collapse to a single row.
func (r *ProgressRepository) GetOrCreate(tx *gorm.DB, enrollmentID, levelID string) (*model.LevelProgress, error) {
	var progress model.LevelProgress
	err := r.conn(tx).Where(model.LevelProgress{EnrollmentID: enrollmentID, LevelID: levelID}).
		FirstOrCreate(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) ListByEnrollment(enrollmentID string) ([]model.LevelProgress, error) {
	var records []model.LevelProgress
	err := r.DB.Where("enrollment_id = ?", enrollmentID).Find(&records).Error
	return records, err
}
