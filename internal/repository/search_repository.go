package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gradeview/gradeview-api/internal/models"
)

// SearchRepository queries the FTS5 indexes backing full-text search.
type SearchRepository struct {
	db *sqlx.DB
}

// NewSearchRepository creates a new search repository.
func NewSearchRepository(db *sqlx.DB) *SearchRepository {
	return &SearchRepository{db: db}
}

// SearchCourses runs a prefix match over the four indexed course fields and
// returns up to ten hits with matches wrapped in <b> markers. bm25 weights
// boost code and number over titles; lower scores rank first.
func (r *SearchRepository) SearchCourses(ctx context.Context, rawQuery string) ([]models.SearchHit, error) {
	const query = `SELECT
        highlight(course_fts, 0, '<b>', '</b>') AS CRSSUBJCD,
        highlight(course_fts, 1, '<b>', '</b>') AS CRSNBR,
        highlight(course_fts, 2, '<b>', '</b>') AS CRSTITLE,
        highlight(course_fts, 3, '<b>', '</b>') AS CLASSTITLE
        FROM course_fts
        WHERE course_fts MATCH ?
        ORDER BY bm25(course_fts, 10.0, 10.0, 5.0, 5.0, 10.0)
        LIMIT 10`

	var hits []models.SearchHit
	if err := r.db.SelectContext(ctx, &hits, query, rawQuery+"*"); err != nil {
		return nil, fmt.Errorf("search courses: %w", err)
	}
	return hits, nil
}

// SearchInstructors matches instructor names by prefix. Anchored matches only
// names starting with the prefix; unanchored matches any token start. A
// non-positive limit returns all matches.
func (r *SearchRepository) SearchInstructors(ctx context.Context, prefix string, anchored bool, limit int) ([]models.InstructorName, error) {
	match := prefix + "*"
	if anchored {
		match = "^" + match
	}

	query := "SELECT instructor AS PrimaryInstructor FROM instructor_fts WHERE instructor MATCH ?" +
		limitClause(limit)

	var names []models.InstructorName
	if err := r.db.SelectContext(ctx, &names, query, match); err != nil {
		return nil, fmt.Errorf("search instructors: %w", err)
	}
	return names, nil
}
