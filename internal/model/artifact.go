package model

import (
	"encoding/json"
	"time"
)

// MediaRef points at one stored media object attached to an artifact.
type MediaRef struct {
	Key             string  `json:"key"`
	URL             string  `json:"url"`
	ContentType     string  `json:"contentType"`
	SizeBytes       int64   `json:"sizeBytes"`
	DurationSeconds float64 `json:"durationSeconds,omitempty"`
}

// Artifact is evidence of a learner's work captured by a teacher: photos
// or videos plus a short reflection.
//
// swagger:model Artifact
type Artifact struct {
	UUIDBase
	SchoolID    *string         `gorm:"type:varchar(36);index" json:"schoolId,omitempty"`
	LearnerID   string          `gorm:"type:varchar(36);not null;index" json:"learnerId"`
	CreatedByID *uint           `gorm:"index" json:"createdById,omitempty"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Reflection  string          `gorm:"type:text" json:"reflection"`
	MediaRefs   json.RawMessage `gorm:"type:json" json:"mediaRefs,omitempty"`
	SubmittedAt time.Time       `gorm:"autoCreateTime;index" json:"submittedAt"`
}

func (Artifact) TableName() string {
	return "artifacts"
}
