package model

type UserRole string

const (
	Admin   UserRole = "admin"
	Teacher UserRole = "teacher"
	Parent  UserRole = "parent"
	RoleLearner UserRole = "learner"
)

// Capability is a closed set of actions a role may perform. Controllers
// check capabilities instead of comparing role strings inline.
type Capability string

const (
	CapManageCourses     Capability = "manage_courses"
	CapManageLearners    Capability = "manage_learners"
	CapEnrollLearners    Capability = "enroll_learners"
	CapRecordProgress    Capability = "record_progress"
	CapConfirmCompletion Capability = "confirm_completion"
	CapCaptureArtifacts  Capability = "capture_artifacts"
	CapViewProgress      Capability = "view_progress"
	CapScorePathways     Capability = "score_pathways"
)

var roleCapabilities = map[UserRole][]Capability{
	Admin: {
		CapManageCourses, CapManageLearners, CapEnrollLearners,
		CapRecordProgress, CapConfirmCompletion, CapCaptureArtifacts,
		CapViewProgress, CapScorePathways,
	},
	Teacher: {
		CapRecordProgress, CapConfirmCompletion, CapCaptureArtifacts,
		CapViewProgress, CapScorePathways,
	},
	Parent: {
		CapManageLearners, CapViewProgress,
	},
	RoleLearner: {
		CapViewProgress,
	},
}

func (r UserRole) Valid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// Can reports whether the role holds the given capability. Unknown roles
// hold nothing.
func (r UserRole) Can(c Capability) bool {
	for _, held := range roleCapabilities[r] {
		if held == c {
			return true
		}
	}
	return false
}
