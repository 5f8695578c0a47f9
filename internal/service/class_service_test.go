package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradeview/gradeview-api/internal/models"
	appErrors "github.com/gradeview/gradeview-api/pkg/errors"
)

type mockSectionRepo struct {
	sections []models.ClassRow
	first    *models.ClassSection
	similar  []models.SimilarCourse
	err      error

	similarArgs struct {
		departmentCode    string
		courseNumber      int
		excludeInstructor string
	}
}

func (m *mockSectionRepo) ListSections(context.Context, models.ClassFilter) ([]models.ClassRow, error) {
	return m.sections, m.err
}

func (m *mockSectionRepo) FirstSection(context.Context, models.ClassFilter) (*models.ClassSection, error) {
	return m.first, m.err
}

func (m *mockSectionRepo) FindSimilar(_ context.Context, departmentCode string, courseNumber int, excludeInstructor string) ([]models.SimilarCourse, error) {
	m.similarArgs.departmentCode = departmentCode
	m.similarArgs.courseNumber = courseNumber
	m.similarArgs.excludeInstructor = excludeInstructor
	return m.similar, nil
}

func TestClassServiceDetail(t *testing.T) {
	gpa := 3.15
	repo := &mockSectionRepo{
		first: &models.ClassSection{
			SubjectCode:       "CS",
			CourseNumber:      201,
			DepartmentCode:    "CS",
			PrimaryInstructor: "SMITH",
			AvgGPA:            &gpa,
		},
		similar: []models.SimilarCourse{{ComputedID: "CS-201", PrimaryInstructor: "JONES"}},
	}
	svc := NewClassService(repo, nil)

	detail, err := svc.Detail(context.Background(), models.ClassFilter{Department: "CS", CourseNumber: "201"})
	require.NoError(t, err)

	assert.Equal(t, "SMITH", detail.PrimaryInstructor)
	require.Len(t, detail.SimilarClasses, 1)
	// Neighbors exclude the reference row's own instructor.
	assert.Equal(t, "SMITH", repo.similarArgs.excludeInstructor)
	assert.Equal(t, "CS", repo.similarArgs.departmentCode)
	assert.Equal(t, 201, repo.similarArgs.courseNumber)
}

func TestClassServiceDetailNotFound(t *testing.T) {
	svc := NewClassService(&mockSectionRepo{}, nil)

	_, err := svc.Detail(context.Background(), models.ClassFilter{Department: "ZZZZ"})
	require.Error(t, err)
	assert.Equal(t, 404, appErrors.FromError(err).Code)
}

func TestClassServiceDetailEmptySimilarIsNotAnError(t *testing.T) {
	repo := &mockSectionRepo{first: &models.ClassSection{DepartmentCode: "CS", CourseNumber: 594}}
	svc := NewClassService(repo, nil)

	detail, err := svc.Detail(context.Background(), models.ClassFilter{})
	require.NoError(t, err)
	assert.NotNil(t, detail.SimilarClasses)
	assert.Empty(t, detail.SimilarClasses)
}

func TestClassServiceListPropagatesQueryErrors(t *testing.T) {
	svc := NewClassService(&mockSectionRepo{err: errors.New("disk on fire")}, nil)

	_, err := svc.List(context.Background(), models.ClassFilter{})
	require.Error(t, err)
	assert.Equal(t, 500, appErrors.FromError(err).Code)
}

func TestClassServiceListNeverReturnsNilSlice(t *testing.T) {
	svc := NewClassService(&mockSectionRepo{}, nil)

	rows, err := svc.List(context.Background(), models.ClassFilter{})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
