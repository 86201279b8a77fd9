package service

import (
	"testing"
	"time"

	"fundi_backend/internal/model"
	"fundi_backend/internal/repository"
	"fundi_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPathwayService(db *gorm.DB) *PathwayService {
	return NewPathwayService(
		repository.NewPathwayRepository(db),
		repository.NewLearnerRepository(db),
		repository.NewArtifactRepository(db),
	)
}

func TestCalculateScore(t *testing.T) {
	cases := []struct {
		name   string
		inputs model.PathwayInputs
		want   int
	}{
		{"all zero", model.PathwayInputs{}, 0},
		{"all max", model.PathwayInputs{InterestPersistence: 100, SkillReadiness: 100, Enjoyment: 100, LocalDemand: 100}, 100},
		{"weighted mix", model.PathwayInputs{InterestPersistence: 80, SkillReadiness: 60, Enjoyment: 50, LocalDemand: 40}, 64},
		{"rounds to nearest", model.PathwayInputs{InterestPersistence: 74, SkillReadiness: 0, Enjoyment: 0, LocalDemand: 0}, 30},
		{"half rounds down to even", model.PathwayInputs{LocalDemand: 5}, 0},
		{"half rounds up to even", model.PathwayInputs{SkillReadiness: 5}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CalculateScore(&tc.inputs))
		})
	}
}

func TestDetermineGate(t *testing.T) {
	cases := []struct {
		name         string
		score        int
		skill        int
		positiveMood bool
		want         string
	}{
		{"green", 70, 60, true, model.GateGreen},
		{"high score low skill is amber", 85, 50, true, model.GateAmber},
		{"high score bad mood is amber", 85, 90, false, model.GateAmber},
		{"amber floor", 50, 100, true, model.GateAmber},
		{"red below amber floor", 49, 100, true, model.GateRed},
		{"red at zero", 0, 0, false, model.GateRed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetermineGate(tc.score, tc.skill, tc.positiveMood))
		})
	}
}

func TestRecommendNextMoves_BridgeFirstWhenGated(t *testing.T) {
	inputs := &model.PathwayInputs{Enjoyment: 70, Breadth: 1}
	moves := RecommendNextMoves(inputs, 0, model.GateRed)

	assert.Len(t, moves, 2)
	assert.Equal(t, "BRIDGE", moves[0].Type)
	assert.Equal(t, "EXPLORE", moves[1].Type)
}

func TestRecommendNextMoves_ShowcaseNeedsArtifactsAndEnjoyment(t *testing.T) {
	inputs := &model.PathwayInputs{Enjoyment: 60, Breadth: 5}

	moves := RecommendNextMoves(inputs, 2, model.GateGreen)
	assert.Len(t, moves, 1)
	assert.Equal(t, "SHOWCASE", moves[0].Type)

	moves = RecommendNextMoves(inputs, 1, model.GateGreen)
	assert.Empty(t, moves)
}

func TestRecommendNextMoves_DeepenOnStrongProfile(t *testing.T) {
	inputs := &model.PathwayInputs{InterestPersistence: 80, SkillReadiness: 75, Enjoyment: 40, Breadth: 4}
	moves := RecommendNextMoves(inputs, 0, model.GateGreen)

	assert.Len(t, moves, 1)
	assert.Equal(t, "DEEPEN", moves[0].Type)
}

func TestRecommendNextMoves_CapsAtTwo(t *testing.T) {
	inputs := &model.PathwayInputs{InterestPersistence: 80, SkillReadiness: 75, Enjoyment: 80, Breadth: 1}
	moves := RecommendNextMoves(inputs, 5, model.GateAmber)

	assert.Len(t, moves, 2)
	assert.Equal(t, "BRIDGE", moves[0].Type)
	assert.Equal(t, "SHOWCASE", moves[1].Type)
}

func TestLatestInputs_ReturnsNewestCapture(t *testing.T) {
	db := newTestDB(t)
	svc := newPathwayService(db)

	learner := &model.Learner{ParentID: 1, FirstName: "Juma", LastName: "Karanja"}
	require.NoError(t, db.Create(learner).Error)

	earlier := &model.PathwayInputs{
		LearnerID:           learner.ID,
		InterestPersistence: 40,
		CapturedAt:          time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(earlier).Error)

	_, err := svc.CaptureAndScore(learner.ID, PathwayInputsRequest{
		InterestPersistence: 85,
		SkillReadiness:      70,
	})
	require.NoError(t, err)

	latest, err := svc.LatestInputs(learner.ID)
	require.NoError(t, err)
	require.Equal(t, 85, latest.InterestPersistence)
	require.Equal(t, 70, latest.SkillReadiness)
}

func TestLatestInputs_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newPathwayService(db)

	learner := &model.Learner{ParentID: 1, FirstName: "Juma", LastName: "Karanja"}
	require.NoError(t, db.Create(learner).Error)

	_, err := svc.LatestInputs(learner.ID)
	require.ErrorIs(t, err, util.ErrPathwayInputsNotFound)

	_, err = svc.LatestInputs("missing")
	require.ErrorIs(t, err, util.ErrLearnerNotFound)
}
