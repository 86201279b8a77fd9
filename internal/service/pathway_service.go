package service

import (
	"errors"
	"math"

	"fundi_backend/internal/model"
	"fundi_backend/internal/repository"
	"fundi_backend/internal/util"

	"gorm.io/gorm"
)

// PathwayService is the thin advisory layer next to the progression
// engine: a stateless weighted score, a traffic-light gate and a short
// list of recommended next moves. It consumes the same learner data but
// never influences promotion.
type PathwayService struct {
	PathwayRepo  *repository.PathwayRepository
	LearnerRepo  *repository.LearnerRepository
	ArtifactRepo *repository.ArtifactRepository
}

func NewPathwayService(pathwayRepo *repository.PathwayRepository, learnerRepo *repository.LearnerRepository, artifactRepo *repository.ArtifactRepository) *PathwayService {
	return &PathwayService{
		PathwayRepo:  pathwayRepo,
		LearnerRepo:  learnerRepo,
		ArtifactRepo: artifactRepo,
	}
}

// CalculateScore computes the pathway score:
// 0.4*interest + 0.3*skill + 0.2*enjoyment + 0.1*demand, clamped to
// 0-100 and rounded half to even.
func CalculateScore(inputs *model.PathwayInputs) int {
	score := 0.4*float64(inputs.InterestPersistence) +
		0.3*float64(inputs.SkillReadiness) +
		0.2*float64(inputs.Enjoyment) +
		0.1*float64(inputs.LocalDemand)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(math.RoundToEven(score))
}

// DetermineGate maps a score to a traffic light:
// GREEN needs score >= 70, skill >= 60 and positive mood; AMBER needs
// score >= 50; everything else is RED.
func DetermineGate(score, skillReadiness int, positiveMood bool) string {
	switch {
	case score >= 70 && skillReadiness >= 60 && positiveMood:
		return model.GateGreen
	case score >= 50:
		return model.GateAmber
	default:
		return model.GateRed
	}
}

// NextMove is one advisory recommendation.
type NextMove struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RecommendNextMoves builds recommendations in priority order and keeps
// the top two: BRIDGE when gated amber/red, SHOWCASE with enough
// artifacts, EXPLORE for narrow breadth, DEEPEN for strong
// interest+skill.
func RecommendNextMoves(inputs *model.PathwayInputs, artifactCount int64, gate string) []NextMove {
	var moves []NextMove

	if gate == model.GateAmber || gate == model.GateRed {
		moves = append(moves, NextMove{
			Type:        "BRIDGE",
			Title:       "Bridge the Gap",
			Description: "Focus on building foundational skills and addressing gaps",
		})
	}
	if artifactCount >= 2 && inputs.Enjoyment >= 60 {
		moves = append(moves, NextMove{
			Type:        "SHOWCASE",
			Title:       "Showcase Your Work",
			Description: "There are enough artifacts ready to present",
		})
	}
	if inputs.Breadth <= 2 && inputs.Enjoyment >= 60 {
		moves = append(moves, NextMove{
			Type:        "EXPLORE",
			Title:       "Explore New Pathways",
			Description: "Try new modules and expand interests",
		})
	}
	if inputs.InterestPersistence >= 70 && inputs.SkillReadiness >= 70 {
		moves = append(moves, NextMove{
			Type:        "DEEPEN",
			Title:       "Deepen Your Expertise",
			Description: "Build on a strong foundation with advanced work",
		})
	}

	if len(moves) > 2 {
		moves = moves[:2]
	}
	return moves
}

type PathwayInputsRequest struct {
	CourseID            *string `json:"courseId"`
	InterestPersistence int     `json:"interestPersistence"`
	SkillReadiness      int     `json:"skillReadiness"`
	Enjoyment           int     `json:"enjoyment"`
	LocalDemand         int     `json:"localDemand"`
	Breadth             int     `json:"breadth"`
	PositiveMood        *bool   `json:"positiveMood"`
}

// PathwayAssessment is the full advisory result returned to callers.
type PathwayAssessment struct {
	Score     int                 `json:"score"`
	Gate      string              `json:"gate"`
	NextMoves []NextMove          `json:"nextMoves"`
	Snapshot  *model.GateSnapshot `json:"snapshot"`
}

// CaptureAndScore stores the submitted inputs, computes score and gate,
// persists a snapshot and returns the assessment.
func (s *PathwayService) CaptureAndScore(learnerID string, req PathwayInputsRequest) (*PathwayAssessment, error) {
	learner, err := s.LearnerRepo.FindByID(learnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLearnerNotFound
		}
		return nil, err
	}

	inputs := &model.PathwayInputs{
		SchoolID:            learner.SchoolID,
		LearnerID:           learnerID,
		CourseID:            req.CourseID,
		InterestPersistence: req.InterestPersistence,
		SkillReadiness:      req.SkillReadiness,
		Enjoyment:           req.Enjoyment,
		LocalDemand:         req.LocalDemand,
		Breadth:             req.Breadth,
	}
	if err := s.PathwayRepo.CreateInputs(inputs); err != nil {
		return nil, err
	}

	positiveMood := true
	if req.PositiveMood != nil {
		positiveMood = *req.PositiveMood
	}

	score := CalculateScore(inputs)
	gate := DetermineGate(score, inputs.SkillReadiness, positiveMood)

	artifactCount, err := s.ArtifactRepo.CountByLearner(learnerID)
	if err != nil {
		return nil, err
	}

	snapshot := &model.GateSnapshot{
		SchoolID:       learner.SchoolID,
		LearnerID:      learnerID,
		Score:          score,
		Gate:           gate,
		SkillReadiness: inputs.SkillReadiness,
		PositiveMood:   positiveMood,
	}
	if err := s.PathwayRepo.CreateSnapshot(snapshot); err != nil {
		return nil, err
	}

	return &PathwayAssessment{
		Score:     score,
		Gate:      gate,
		NextMoves: RecommendNextMoves(inputs, artifactCount, gate),
		Snapshot:  snapshot,
	}, nil
}

// LatestInputs returns the most recently captured inputs for a learner.
func (s *PathwayService) LatestInputs(learnerID string) (*model.PathwayInputs, error) {
	if _, err := s.LearnerRepo.FindByID(learnerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLearnerNotFound
		}
		return nil, err
	}
	inputs, err := s.PathwayRepo.LatestInputs(learnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPathwayInputsNotFound
		}
		return nil, err
	}
	return inputs, nil
}

// History returns recent gate snapshots for a learner, newest first.
func (s *PathwayService) History(learnerID string, limit int) ([]model.GateSnapshot, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.PathwayRepo.ListSnapshots(learnerID, limit)
}
