package model

import (
	"time"
)

// LevelProgress accumulates a learner's completion evidence for one level
// of one enrollment. At most one record exists per (enrollment, level).
// Counters are replace-on-write except AssessmentScore, which keeps the
// best score ever recorded. Completed and CompletedAt are written exactly
// once, by the promotion check.
//
// swagger:model LevelProgress
type LevelProgress struct {
	UUIDBase
	EnrollmentID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_enrollment_level" json:"enrollmentId"`
	LevelID      string `gorm:"type:varchar(36);not null;uniqueIndex:idx_enrollment_level" json:"levelId"`

	ModulesCompleted   int  `gorm:"default:0" json:"modulesCompleted"`
	ArtifactsSubmitted int  `gorm:"default:0" json:"artifactsSubmitted"`
	AssessmentScore    int  `gorm:"default:0" json:"assessmentScore"`
	TeacherConfirmed   bool `gorm:"default:false" json:"teacherConfirmed"`

	Completed   bool       `gorm:"default:false;index" json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	StartedAt   time.Time  `gorm:"autoCreateTime" json:"startedAt"`
}

func (LevelProgress) TableName() string {
	return "level_progress"
}

// IsComplete reports whether every completion criterion of the level is
// met. All thresholds are hard requirements; teacher confirmation only
// counts when the level demands it.
func (p *LevelProgress) IsComplete(level *CourseLevel) bool {
	if level == nil {
		return false
	}

	modulesOK := p.ModulesCompleted >= level.RequiredModulesCount
	artifactsOK := p.ArtifactsSubmitted >= level.RequiredArtifactsCount
	assessmentOK := p.AssessmentScore >= level.RequiredAssessmentScore

	if level.RequiresTeacherConfirmation {
		return modulesOK && artifactsOK && assessmentOK && p.TeacherConfirmed
	}
	return modulesOK && artifactsOK && assessmentOK
}

// CompletionPercentage counts how many applicable criteria are currently
// satisfied and scales to 0-100, truncating. With three applicable
// criteria the result steps 0/33/66/100.
func (p *LevelProgress) CompletionPercentage(level *CourseLevel) int {
	if level == nil {
		return 0
	}

	met := 0
	total := 3 // modules, artifacts, assessment

	if p.ModulesCompleted >= level.RequiredModulesCount {
		met++
	}
	if p.ArtifactsSubmitted >= level.RequiredArtifactsCount {
		met++
	}
	if p.AssessmentScore >= level.RequiredAssessmentScore {
		met++
	}

	if level.RequiresTeacherConfirmation {
		total++
		if p.TeacherConfirmed {
			met++
		}
	}

	return met * 100 / total
}
