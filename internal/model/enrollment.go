package model

import (
	"time"
)

// CourseEnrollment binds one learner to one course. At most one row
// exists per (learner, course); re-enrollment reactivates instead of
// duplicating. CurrentLevelID is nil only when the course has no levels.
//
// swagger:model CourseEnrollment
type CourseEnrollment struct {
	UUIDBase
	LearnerID      string  `gorm:"type:varchar(36);not null;uniqueIndex:idx_learner_course" json:"learnerId"`
	CourseID       string  `gorm:"type:varchar(36);not null;uniqueIndex:idx_learner_course" json:"courseId"`
	CurrentLevelID *string `gorm:"type:varchar(36)" json:"currentLevelId,omitempty"`

	CurrentLevel *CourseLevel `gorm:"foreignKey:CurrentLevelID" json:"currentLevel,omitempty"`

	EnrolledAt  time.Time  `gorm:"autoCreateTime" json:"enrolledAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	IsActive    bool       `gorm:"default:true;index" json:"isActive"`
}

func (CourseEnrollment) TableName() string {
	return "course_enrollments"
}

// CompletedCourse reports whether every level of the course has been
// finished.
func (e *CourseEnrollment) CompletedCourse() bool {
	return e.CompletedAt != nil
}
