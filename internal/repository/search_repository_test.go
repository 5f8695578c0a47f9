package repository

import (
	"context"
	"regexp"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRepositorySearchCourses(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSearchRepository(db)

	rows := sqlmock.NewRows([]string{"CRSSUBJCD", "CRSNBR", "CRSTITLE", "CLASSTITLE"}).
		AddRow("<b>CS</b>", "<b>2</b>01", "Intro to Programming II", "Intro to Programming II").
		AddRow("<b>CS</b>", "<b>2</b>11", "Programming Practicum", "Programming Practicum")
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY bm25(course_fts, 10.0, 10.0, 5.0, 5.0, 10.0)")).
		WithArgs("CS 2*").
		WillReturnRows(rows)

	hits, err := repo.SearchCourses(context.Background(), "CS 2")
	require.NoError(t, err)
	require.Len(t, hits, 2)
	for _, hit := range hits {
		highlighted := strings.Contains(hit.SubjectCode, "<b>") ||
			strings.Contains(hit.CourseNumber, "<b>") ||
			strings.Contains(hit.Title, "<b>") ||
			strings.Contains(hit.SectionTitle, "<b>")
		assert.True(t, highlighted, "every hit carries a highlight marker in at least one field")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchRepositorySearchInstructorsAnchored(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSearchRepository(db)

	rows := sqlmock.NewRows([]string{"PrimaryInstructor"}).AddRow("SMITH, JOHN")
	mock.ExpectQuery(regexp.QuoteMeta("FROM instructor_fts WHERE instructor MATCH ?")).
		WithArgs("^S*").
		WillReturnRows(rows)

	names, err := repo.SearchInstructors(context.Background(), "S", true, 0)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "SMITH, JOHN", names[0].PrimaryInstructor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchRepositorySearchInstructorsTokenPrefixWithLimit(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSearchRepository(db)

	rows := sqlmock.NewRows([]string{"PrimaryInstructor"}).AddRow("DOE, SAM")
	mock.ExpectQuery(regexp.QuoteMeta("WHERE instructor MATCH ? LIMIT 5")).
		WithArgs("sa*").
		WillReturnRows(rows)

	names, err := repo.SearchInstructors(context.Background(), "sa", false, 5)
	require.NoError(t, err)
	assert.Len(t, names, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
