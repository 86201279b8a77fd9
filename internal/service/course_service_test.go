package service

import (
	"testing"

	"fundi_backend/internal/model"
	"fundi_backend/internal/repository"
	"fundi_backend/internal/util"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCourseService(db *gorm.DB) *CourseService {
	return NewCourseService(
		repository.NewCourseRepository(db),
		repository.NewLevelRepository(db),
		db,
	)
}

func TestCreateCourse_NumbersLevelsSequentially(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)

	course, err := svc.CreateCourse(CourseCreateRequest{
		Name: "Coding",
		Levels: []LevelSpec{
			{Name: "Scratch Basics", RequiredModulesCount: 3},
			{Name: "Game Design", RequiredModulesCount: 4},
			{Name: "Python Intro", RequiredModulesCount: 5},
		},
	})
	require.NoError(t, err)

	levels, err := svc.ListLevels(course.ID)
	require.NoError(t, err)
	require.Len(t, levels, 3)
	for i, level := range levels {
		require.Equal(t, i+1, level.LevelNumber)
	}
	require.Equal(t, "Scratch Basics", levels[0].Name)
	require.Equal(t, "Python Intro", levels[2].Name)
}

func TestReplaceLevels_RenumbersFromOne(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)

	course, err := svc.CreateCourse(CourseCreateRequest{
		Name: "Art",
		Levels: []LevelSpec{
			{Name: "Sketching"},
			{Name: "Painting"},
		},
	})
	require.NoError(t, err)

	levels, err := svc.ReplaceLevels(course.ID, []LevelSpec{
		{Name: "Color Theory"},
		{Name: "Sketching"},
		{Name: "Painting"},
	})
	require.NoError(t, err)
	require.Len(t, levels, 3)
	require.Equal(t, "Color Theory", levels[0].Name)
	require.Equal(t, 1, levels[0].LevelNumber)
	require.Equal(t, 3, levels[2].LevelNumber)

	var count int64
	require.NoError(t, db.Model(&model.CourseLevel{}).
		Where("course_id = ?", course.ID).Count(&count).Error)
	require.EqualValues(t, 3, count)
}

func TestReplaceLevels_UnknownCourse(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)

	_, err := svc.ReplaceLevels("missing", []LevelSpec{{Name: "x"}})
	require.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestListCourses_TenantVisibility(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)

	schoolA := model.GenerateUUID()
	schoolB := model.GenerateUUID()

	_, err := svc.CreateCourse(CourseCreateRequest{Name: "Global Robotics"})
	require.NoError(t, err)
	_, err = svc.CreateCourse(CourseCreateRequest{Name: "School A Coding", TenantID: &schoolA})
	require.NoError(t, err)
	_, err = svc.CreateCourse(CourseCreateRequest{Name: "School B Coding", TenantID: &schoolB})
	require.NoError(t, err)

	// A school sees global courses plus its own.
	courses, err := svc.ListCourses(&schoolA)
	require.NoError(t, err)
	names := make([]string, 0, len(courses))
	for _, c := range courses {
		names = append(names, c.Name)
	}
	require.ElementsMatch(t, []string{"Global Robotics", "School A Coding"}, names)

	// No tenant sees only global content.
	courses, err = svc.ListCourses(nil)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, "Global Robotics", courses[0].Name)
}

func TestGetCourse_IncludesLevelsAndCareers(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)

	course, err := svc.CreateCourse(CourseCreateRequest{
		Name:   "Robotics",
		Levels: []LevelSpec{{Name: "Explorer"}},
	})
	require.NoError(t, err)

	_, err = svc.AddCareer(course.ID, CareerCreateRequest{Title: "Mechatronics Engineer"})
	require.NoError(t, err)

	got, err := svc.GetCourse(course.ID)
	require.NoError(t, err)
	require.Len(t, got.Levels, 1)
	require.Len(t, got.Careers, 1)
	require.Equal(t, "Mechatronics Engineer", got.Careers[0].Title)
}
