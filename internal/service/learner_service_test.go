package service

import (
	"testing"

	"fundi_backend/internal/model"
	"fundi_backend/internal/repository"
	"fundi_backend/internal/util"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLearnerService(db *gorm.DB) *LearnerService {
	return NewLearnerService(
		repository.NewLearnerRepository(db),
		repository.NewAchievementRepository(db),
	)
}

func TestListBySchool_ScopedToTenant(t *testing.T) {
	db := newTestDB(t)
	svc := newLearnerService(db)

	schoolA := &model.School{Name: "Mwangaza Primary", Code: "MWZ-01"}
	schoolB := &model.School{Name: "Tumaini Academy", Code: "TMN-01"}
	require.NoError(t, db.Create(schoolA).Error)
	require.NoError(t, db.Create(schoolB).Error)

	for _, l := range []*model.Learner{
		{SchoolID: &schoolA.ID, ParentID: 1, FirstName: "Amina", LastName: "Oduya"},
		{SchoolID: &schoolA.ID, ParentID: 2, FirstName: "Baraka", LastName: "Njoroge"},
		{SchoolID: &schoolB.ID, ParentID: 3, FirstName: "Chausiku", LastName: "Mwende"},
		{ParentID: 4, FirstName: "Daudi", LastName: "Kip"},
	} {
		require.NoError(t, db.Create(l).Error)
	}

	learners, err := svc.ListBySchool(schoolA.ID)
	require.NoError(t, err)
	require.Len(t, learners, 2)
	for _, l := range learners {
		require.Equal(t, schoolA.ID, *l.SchoolID)
	}

	learners, err = svc.ListBySchool(schoolB.ID)
	require.NoError(t, err)
	require.Len(t, learners, 1)
	require.Equal(t, "Chausiku", learners[0].FirstName)
}

func TestGetLearner_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newLearnerService(db)

	_, err := svc.GetLearner("missing")
	require.ErrorIs(t, err, util.ErrLearnerNotFound)
}
