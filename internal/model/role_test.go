package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRole_Valid(t *testing.T) {
	assert.True(t, Admin.Valid())
	assert.True(t, Teacher.Valid())
	assert.True(t, Parent.Valid())
	assert.True(t, RoleLearner.Valid())
	assert.False(t, UserRole("principal").Valid())
	assert.False(t, UserRole("").Valid())
}

func TestUserRole_Can(t *testing.T) {
	assert.True(t, Admin.Can(CapManageCourses))
	assert.True(t, Admin.Can(CapEnrollLearners))

	assert.True(t, Teacher.Can(CapRecordProgress))
	assert.True(t, Teacher.Can(CapConfirmCompletion))
	assert.False(t, Teacher.Can(CapManageCourses))

	assert.True(t, Parent.Can(CapManageLearners))
	assert.False(t, Parent.Can(CapRecordProgress))

	assert.True(t, RoleLearner.Can(CapViewProgress))
	assert.False(t, RoleLearner.Can(CapCaptureArtifacts))
}

func TestUserRole_UnknownRoleHoldsNothing(t *testing.T) {
	unknown := UserRole("visitor")
	for _, c := range []Capability{
		CapManageCourses, CapManageLearners, CapEnrollLearners,
		CapRecordProgress, CapConfirmCompletion, CapCaptureArtifacts,
		CapViewProgress, CapScorePathways,
	} {
		assert.False(t, unknown.Can(c))
	}
}
