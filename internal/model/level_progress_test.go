package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseLevel() *CourseLevel {
	return &CourseLevel{
		RequiredModulesCount:        4,
		RequiredArtifactsCount:      6,
		RequiredAssessmentScore:     70,
		RequiresTeacherConfirmation: false,
	}
}

func TestIsComplete_AllThresholdsMet(t *testing.T) {
	p := &LevelProgress{ModulesCompleted: 4, ArtifactsSubmitted: 6, AssessmentScore: 70}
	assert.True(t, p.IsComplete(baseLevel()))
}

func TestIsComplete_EachCriterionIsHard(t *testing.T) {
	cases := []struct {
		name     string
		progress LevelProgress
	}{
		{"modules one short", LevelProgress{ModulesCompleted: 3, ArtifactsSubmitted: 6, AssessmentScore: 70}},
		{"artifacts one short", LevelProgress{ModulesCompleted: 4, ArtifactsSubmitted: 5, AssessmentScore: 70}},
		{"score one short", LevelProgress{ModulesCompleted: 4, ArtifactsSubmitted: 6, AssessmentScore: 69}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, tc.progress.IsComplete(baseLevel()))
		})
	}
}

func TestIsComplete_ExceedingThresholdsStillPasses(t *testing.T) {
	p := &LevelProgress{ModulesCompleted: 10, ArtifactsSubmitted: 12, AssessmentScore: 100}
	assert.True(t, p.IsComplete(baseLevel()))
}

func TestIsComplete_TeacherConfirmationGate(t *testing.T) {
	level := baseLevel()
	level.RequiresTeacherConfirmation = true

	p := &LevelProgress{ModulesCompleted: 4, ArtifactsSubmitted: 6, AssessmentScore: 70}
	assert.False(t, p.IsComplete(level), "thresholds alone must not pass a confirmation level")

	p.TeacherConfirmed = true
	assert.True(t, p.IsComplete(level))
}

func TestIsComplete_ConfirmationIgnoredWhenNotRequired(t *testing.T) {
	p := &LevelProgress{
		ModulesCompleted: 4, ArtifactsSubmitted: 6, AssessmentScore: 70,
		TeacherConfirmed: false,
	}
	assert.True(t, p.IsComplete(baseLevel()))
}

func TestIsComplete_ZeroThresholds(t *testing.T) {
	level := &CourseLevel{}
	p := &LevelProgress{}
	assert.True(t, p.IsComplete(level))
}

func TestIsComplete_NilLevel(t *testing.T) {
	p := &LevelProgress{ModulesCompleted: 100}
	assert.False(t, p.IsComplete(nil))
}

func TestCompletionPercentage_Steps(t *testing.T) {
	level := baseLevel()

	cases := []struct {
		name     string
		progress LevelProgress
		want     int
	}{
		{"nothing met", LevelProgress{}, 0},
		{"one of three", LevelProgress{ModulesCompleted: 4}, 33},
		{"two of three", LevelProgress{ModulesCompleted: 4, ArtifactsSubmitted: 6}, 66},
		{"all three", LevelProgress{ModulesCompleted: 4, ArtifactsSubmitted: 6, AssessmentScore: 70}, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.progress.CompletionPercentage(level))
		})
	}
}

func TestCompletionPercentage_WithConfirmationCriterion(t *testing.T) {
	level := baseLevel()
	level.RequiresTeacherConfirmation = true

	p := &LevelProgress{ModulesCompleted: 4, ArtifactsSubmitted: 6, AssessmentScore: 70}
	assert.Equal(t, 75, p.CompletionPercentage(level))

	p.TeacherConfirmed = true
	assert.Equal(t, 100, p.CompletionPercentage(level))
}

func TestCompletionPercentage_NilLevel(t *testing.T) {
	p := &LevelProgress{ModulesCompleted: 4}
	assert.Equal(t, 0, p.CompletionPercentage(nil))
}
