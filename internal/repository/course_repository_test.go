package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseRepositoryFind(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	rows := sqlmock.NewRows([]string{"CRSNBR", "CRSSUBJCD", "CRSHOURS", "CRSTITLE", "CRSSUBJDESC"}).
		AddRow(201, "CS", "3 hours", "Intro to Programming II", "Continuation of CS 141.")
	mock.ExpectQuery(regexp.QuoteMeta("FROM courses WHERE CRSSUBJCD = ? AND CRSNBR = ? LIMIT 1")).
		WithArgs("CS", "201").
		WillReturnRows(rows)

	course, err := repo.Find(context.Background(), "CS", "201")
	require.NoError(t, err)
	require.NotNil(t, course)
	assert.Equal(t, "3 hours", course.CreditHours)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryFindUnknown(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM courses WHERE CRSSUBJCD = ? AND CRSNBR = ? LIMIT 1")).
		WithArgs("CS", "999").
		WillReturnRows(sqlmock.NewRows([]string{"CRSNBR"}))

	course, err := repo.Find(context.Background(), "CS", "999")
	require.NoError(t, err)
	assert.Nil(t, course)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryDepartmentCourses(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	rows := sqlmock.NewRows([]string{"CRSSUBJCD", "CRSNBR", "CRSTITLE", "CODE", "CLASSCOUNT"}).
		AddRow("CS", 111, "Program Design I", "CS 111", 40).
		AddRow("CS", 294, "Special Topics", "CS 294", nil)
	mock.ExpectQuery("LEFT JOIN").
		WithArgs("CS", "CS").
		WillReturnRows(rows)

	courses, err := repo.DepartmentCourses(context.Background(), "CS")
	require.NoError(t, err)
	require.Len(t, courses, 2)
	require.NotNil(t, courses[0].ClassCount)
	assert.Equal(t, 40, *courses[0].ClassCount)
	assert.Nil(t, courses[1].ClassCount, "courses with no graded sections join to NULL")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryListDepartments(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	rows := sqlmock.NewRows([]string{"CRSSUBJCD", "DEPTNAME", "num_courses"}).
		AddRow("CS", "Computer Science", 120).
		AddRow("MATH", "Mathematics", 95)
	mock.ExpectQuery(regexp.QuoteMeta("JOIN departments USING (CRSSUBJCD) GROUP BY DEPTNAME ORDER BY num_courses DESC")).
		WillReturnRows(rows)

	departments, err := repo.ListDepartments(context.Background(), "num_courses", "desc")
	require.NoError(t, err)
	require.Len(t, departments, 2)
	assert.Equal(t, 120, departments[0].NumCourses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryListDepartmentsRejectsUnknownOrderColumn(t *testing.T) {
	db, _, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	_, err := repo.ListDepartments(context.Background(), "DEPTNAME)--", "asc")
	require.Error(t, err)
}
