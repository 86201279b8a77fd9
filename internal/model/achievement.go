package model

import (
	"time"
)

const (
	AchievementLevelComplete  = "level_complete"
	AchievementCourseComplete = "course_complete"
	AchievementSkillMastery   = "skill_mastery"
	AchievementParticipation  = "participation"
	AchievementSpecial        = "special"
)

// Achievement is a badge earned by a learner, awarded automatically on
// level and course completion or manually by staff.
//
// swagger:model Achievement
type Achievement struct {
	UUIDBase
	LearnerID   string `gorm:"type:varchar(36);not null;index" json:"learnerId"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Type        string `gorm:"size:50;default:'level_complete'" json:"type"`
	Icon        string `gorm:"size:100" json:"icon"`

	CourseID *string `gorm:"type:varchar(36)" json:"courseId,omitempty"`
	LevelID  *string `gorm:"type:varchar(36)" json:"levelId,omitempty"`

	EarnedAt time.Time `gorm:"autoCreateTime;index" json:"earnedAt"`
}

func (Achievement) TableName() string {
	return "achievements"
}
