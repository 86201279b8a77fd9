package model

import (
	"time"
)

// Learner is a child profile managed by a parent user. The school link is
// optional so parents can register children before a school assignment.
//
// swagger:model Learner
type Learner struct {
	UUIDBase
	SchoolID      *string    `gorm:"type:varchar(36);index" json:"schoolId,omitempty"`
	ParentID      uint       `gorm:"index;not null" json:"parentId"`
	FirstName     string     `gorm:"size:128;not null" json:"firstName"`
	LastName      string     `gorm:"size:128;not null" json:"lastName"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty"`
	CurrentSchool string     `gorm:"size:255" json:"currentSchool"`
	CurrentClass  string     `gorm:"size:100" json:"currentClass"`
	ConsentMedia  bool       `gorm:"default:false" json:"consentMedia"`
	EquityFlag    bool       `gorm:"default:false" json:"equityFlag"`
	JoinedAt      *time.Time `json:"joinedAt,omitempty"`
}

func (Learner) TableName() string {
	return "learners"
}

func (l *Learner) FullName() string {
	return l.FirstName + " " + l.LastName
}

// Age in whole years, nil when the birth date is unknown.
func (l *Learner) Age() *int {
	if l.DateOfBirth == nil {
		return nil
	}
	now := time.Now()
	years := now.Year() - l.DateOfBirth.Year()
	if now.YearDay() < l.DateOfBirth.YearDay() {
		years--
	}
	return &years
}
