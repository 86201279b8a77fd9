package model

import "encoding/json"

// CourseLevel is one ordered stage of a course. Level numbers are unique
// within a course and kept sequential (1..N) by the authoring service.
//
// swagger:model CourseLevel
type CourseLevel struct {
	UUIDBase
	CourseID    string `gorm:"type:varchar(36);not null;uniqueIndex:idx_course_level_number" json:"courseId"`
	LevelNumber int    `gorm:"not null;uniqueIndex:idx_course_level_number" json:"levelNumber"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	LearningOutcomes json.RawMessage `gorm:"type:json" json:"learningOutcomes,omitempty"`

	// Completion thresholds. All are hard requirements; there is no
	// partial credit in the pass decision.
	RequiredModulesCount        int  `gorm:"default:4" json:"requiredModulesCount"`
	RequiredArtifactsCount      int  `gorm:"default:6" json:"requiredArtifactsCount"`
	RequiredAssessmentScore     int  `gorm:"default:70" json:"requiredAssessmentScore"`
	RequiresTeacherConfirmation bool `gorm:"default:false" json:"requiresTeacherConfirmation"`
}

func (CourseLevel) TableName() string {
	return "course_levels"
}
