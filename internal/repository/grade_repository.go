package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gradeview/gradeview-api/internal/models"
)

// gpaExpr is the weighted 4.0-scale GPA of a single section. F counts in the
// denominator but contributes no points; with zero graded students the
// division yields NULL rather than an error.
const gpaExpr = "ROUND((((A*4.0) + (B*3.0) + (C*2.0) + (D*1.0))/((A+B+C+D+F)*4.0))*4.0, 2) AS avg_gpa"

var (
	classOrderColumns = allow("CRSSUBJCD", "CRSNBR", "CRSTITLE", "DEPTNAME", "PrimaryInstructor", "SEASON", "YEAR", "avg_gpa")
	groupOrderColumns = allow("CODE", "CRSTITLE", "DEPTNAME", "CRSSUBJCD", "CRSNBR", "CLASSCOUNT")
)

// GradeRepository reads the historical grade dataset.
type GradeRepository struct {
	db *sqlx.DB
}

// NewGradeRepository creates a new grade repository.
func NewGradeRepository(db *sqlx.DB) *GradeRepository {
	return &GradeRepository{db: db}
}

// ListSections returns graded sections matching the filter.
func (r *GradeRepository) ListSections(ctx context.Context, filter models.ClassFilter) ([]models.ClassRow, error) {
	query := "SELECT CRSSUBJCD, CRSNBR, CRSTITLE, DEPTNAME, PrimaryInstructor, SEASON, YEAR, " + gpaExpr +
		" FROM grades WHERE 1=1"
	where, args := classWhere(filter)
	order, err := orderClause(filter.OrderBy, filter.Sort, classOrderColumns)
	if err != nil {
		return nil, err
	}
	query += where + order + limitClause(filter.Limit)

	var rows []models.ClassRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list class sections: %w", err)
	}
	return rows, nil
}

// FirstSection returns the first graded section matching the filter, or nil
// when nothing matches.
func (r *GradeRepository) FirstSection(ctx context.Context, filter models.ClassFilter) (*models.ClassSection, error) {
	query := "SELECT CRSSUBJCD, CRSNBR, CRSTITLE, DEPTNAME, PrimaryInstructor, DEPTCD, A, B, C, D, F, W, SEASON, YEAR, " + gpaExpr +
		" FROM grades WHERE 1=1"
	where, args := classWhere(filter)
	query += where + " LIMIT 1"

	var section models.ClassSection
	if err := r.db.GetContext(ctx, &section, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find class section: %w", err)
	}
	return &section, nil
}

// FindSimilar returns up to three neighbor sections of a reference course:
// same department code, course number at or above the reference, taught by a
// different instructor, ordered by the string form of "DEPTCD-CRSNBR". The
// >= bound can surface the reference course's own other sections; kept as
// the site has always behaved.
func (r *GradeRepository) FindSimilar(ctx context.Context, departmentCode string, courseNumber int, excludeInstructor string) ([]models.SimilarCourse, error) {
	query := "SELECT CRSNBR, CRSSUBJCD, CRSTITLE, PrimaryInstructor, SEASON, YEAR, " + gpaExpr + ", " +
		"(DEPTCD || '-' || CRSNBR) AS computed_id" +
		" FROM grades" +
		" WHERE DEPTCD = ? AND CRSNBR >= ? AND PrimaryInstructor <> ?" +
		" ORDER BY computed_id ASC LIMIT 3"

	var similar []models.SimilarCourse
	if err := r.db.SelectContext(ctx, &similar, query, departmentCode, courseNumber, excludeInstructor); err != nil {
		return nil, fmt.Errorf("find similar courses: %w", err)
	}
	return similar, nil
}

// InstructorStats sums grade counts across every section the instructor
// taught and derives DFW rate and GPA from the sums. Sections whose NR count
// does not reconcile with official registrations (neither alone nor together
// with withdrawals) are incomplete records and are excluded up front. Returns
// nil when no reconciled section exists.
func (r *GradeRepository) InstructorStats(ctx context.Context, name string, compare bool) (*models.InstructorStats, error) {
	query := "SELECT PrimaryInstructor, " +
		"ROUND((((SUM(D)+SUM(F)+SUM(W))*1.0)/((SUM(A)+SUM(B)+SUM(C)+SUM(D)+SUM(F)+SUM(W))*1.0))*100.0, 2) AS dfw_rate, " +
		"ROUND((((SUM(A)*4.0)+(SUM(B)*3.0)+(SUM(C)*2.0)+(SUM(D)*1.0))/((SUM(A)+SUM(B)+SUM(C)+SUM(D)+SUM(F)))), 2) AS avg_gpa"
	if compare {
		query += ", SUM(A) AS A, SUM(B) AS B, SUM(C) AS C, SUM(D) AS D, SUM(F) AS F, SUM(W) AS W"
	}
	query += " FROM grades" +
		" WHERE NR <> GradeRegs AND NR+W <> GradeRegs AND PrimaryInstructor = ?" +
		" GROUP BY PrimaryInstructor"

	var stats models.InstructorStats
	if err := r.db.GetContext(ctx, &stats, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("instructor stats: %w", err)
	}
	return &stats, nil
}

// ListCourseGroups groups graded sections by course code with a section
// count per course.
func (r *GradeRepository) ListCourseGroups(ctx context.Context, filter models.ClassFilter) ([]models.CourseGroup, error) {
	query := "SELECT CRSSUBJCD || ' ' || CRSNBR AS CODE, CRSTITLE, DEPTNAME, CRSSUBJCD, CRSNBR, COUNT(*) AS CLASSCOUNT" +
		" FROM grades WHERE 1=1"
	where, args := classWhere(filter)
	order, err := orderClause(filter.OrderBy, filter.Sort, groupOrderColumns)
	if err != nil {
		return nil, err
	}
	query += where + " GROUP BY CODE" + order + limitClause(filter.Limit)

	var groups []models.CourseGroup
	if err := r.db.SelectContext(ctx, &groups, query, args...); err != nil {
		return nil, fmt.Errorf("list course groups: %w", err)
	}
	return groups, nil
}
