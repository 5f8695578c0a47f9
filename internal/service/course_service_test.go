package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradeview/gradeview-api/internal/models"
	appErrors "github.com/gradeview/gradeview-api/pkg/errors"
)

type mockCourseRepo struct {
	course      *models.Course
	deptCourses []models.DepartmentCourse
	departments []models.DepartmentSummary
	queried     bool
}

func (m *mockCourseRepo) Find(context.Context, string, string) (*models.Course, error) {
	m.queried = true
	return m.course, nil
}

func (m *mockCourseRepo) DepartmentCourses(context.Context, string) ([]models.DepartmentCourse, error) {
	m.queried = true
	return m.deptCourses, nil
}

func (m *mockCourseRepo) ListDepartments(context.Context, string, string) ([]models.DepartmentSummary, error) {
	m.queried = true
	return m.departments, nil
}

type mockGrouper struct {
	groups []models.CourseGroup
}

func (m *mockGrouper) ListCourseGroups(context.Context, models.ClassFilter) ([]models.CourseGroup, error) {
	return m.groups, nil
}

func TestCourseServiceInfoNotFound(t *testing.T) {
	svc := NewCourseService(&mockCourseRepo{}, &mockGrouper{}, nil)

	_, err := svc.Info(context.Background(), "CS", "999")
	require.Error(t, err)
	assert.Equal(t, 404, appErrors.FromError(err).Code)
}

func TestCourseServiceDepartmentRejectsInvalidCodeBeforeQuerying(t *testing.T) {
	repo := &mockCourseRepo{}
	svc := NewCourseService(repo, &mockGrouper{}, nil)

	for _, code := range []string{"abc123", "C", "TOOLONG", "CS!", ""} {
		_, err := svc.Department(context.Background(), code)
		require.Error(t, err, code)
		assert.Equal(t, 400, appErrors.FromError(err).Code, code)
	}
	assert.False(t, repo.queried, "invalid codes must never reach the query layer")
}

func TestCourseServiceDepartmentEmptyIsNotFound(t *testing.T) {
	svc := NewCourseService(&mockCourseRepo{}, &mockGrouper{}, nil)

	_, err := svc.Department(context.Background(), "ZZZZ")
	require.Error(t, err)
	assert.Equal(t, 404, appErrors.FromError(err).Code)
}

func TestCourseServiceDepartmentAcceptsValidCodes(t *testing.T) {
	count := 3
	repo := &mockCourseRepo{deptCourses: []models.DepartmentCourse{{Code: "CS 111", ClassCount: &count}}}
	svc := NewCourseService(repo, &mockGrouper{}, nil)

	for _, code := range []string{"CS", "math", "BioE"} {
		repo.queried = false
		_, err := svc.Department(context.Background(), code)
		require.NoError(t, err, code)
		assert.True(t, repo.queried, code)
	}
}

func TestCourseServiceGroupsNeverReturnsNilSlice(t *testing.T) {
	svc := NewCourseService(&mockCourseRepo{}, &mockGrouper{}, nil)

	groups, err := svc.Groups(context.Background(), models.ClassFilter{})
	require.NoError(t, err)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}
