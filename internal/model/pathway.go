package model

import (
	"time"
)

const (
	GateGreen = "GREEN"
	GateAmber = "AMBER"
	GateRed   = "RED"
)

// PathwayInputs holds the advisory signals captured for a learner on one
// pathway. Values are 0-100 except Breadth, which counts distinct domains
// the learner has explored.
//
// swagger:model PathwayInputs
type PathwayInputs struct {
	UUIDBase
	SchoolID  *string `gorm:"type:varchar(36);index" json:"schoolId,omitempty"`
	LearnerID string  `gorm:"type:varchar(36);not null;index" json:"learnerId"`
	CourseID  *string `gorm:"type:varchar(36);index" json:"courseId,omitempty"`

	InterestPersistence int `gorm:"default:0" json:"interestPersistence"`
	SkillReadiness      int `gorm:"default:0" json:"skillReadiness"`
	Enjoyment           int `gorm:"default:0" json:"enjoyment"`
	LocalDemand         int `gorm:"default:0" json:"localDemand"`
	Breadth             int `gorm:"default:0" json:"breadth"`

	CapturedAt time.Time `gorm:"autoCreateTime" json:"capturedAt"`
}

func (PathwayInputs) TableName() string {
	return "pathway_inputs"
}

// GateSnapshot records the score and gate computed from a set of pathway
// inputs at one point in time.
//
// swagger:model GateSnapshot
type GateSnapshot struct {
	UUIDBase
	SchoolID  *string `gorm:"type:varchar(36);index" json:"schoolId,omitempty"`
	LearnerID string  `gorm:"type:varchar(36);not null;index" json:"learnerId"`

	Score          int    `json:"score"`
	Gate           string `gorm:"size:10" json:"gate"`
	SkillReadiness int    `json:"skillReadiness"`
	PositiveMood   bool   `gorm:"default:true" json:"positiveMood"`
}

func (GateSnapshot) TableName() string {
	return "gate_snapshots"
}
