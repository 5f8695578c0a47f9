package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gradeview/gradeview-api/internal/models"
)

var departmentOrderColumns = allow("CRSSUBJCD", "DEPTNAME", "num_courses")

// CourseRepository reads the course catalog tables.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Find returns catalog info for one course, or nil when unknown.
func (r *CourseRepository) Find(ctx context.Context, department, courseNumber string) (*models.Course, error) {
	const query = "SELECT CRSNBR, CRSSUBJCD, CRSHOURS, CRSTITLE, CRSSUBJDESC FROM courses" +
		" WHERE CRSSUBJCD = ? AND CRSNBR = ? LIMIT 1"

	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, department, courseNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return &course, nil
}

// DepartmentCourses joins a department's catalog courses against its graded
// sections, carrying a NULL count for courses that were never graded.
func (r *CourseRepository) DepartmentCourses(ctx context.Context, departmentCode string) ([]models.DepartmentCourse, error) {
	const query = `
        SELECT a.CRSSUBJCD, a.CRSNBR, a.CRSTITLE, a.CODE, CLASSCOUNT FROM
        (SELECT CRSSUBJCD, CRSNBR, CRSTITLE, CRSSUBJCD || ' ' || CRSNBR AS CODE
        FROM courses
        WHERE CRSSUBJCD LIKE ?
        ORDER BY CRSNBR) AS a
        LEFT JOIN
        (SELECT CRSSUBJCD || ' ' || CRSNBR AS CODE, CRSSUBJCD, CRSNBR, COUNT(*) AS CLASSCOUNT
        FROM grades
        WHERE CRSSUBJCD LIKE ?
        GROUP BY CODE) AS b
        USING (CODE)`

	var courses []models.DepartmentCourse
	if err := r.db.SelectContext(ctx, &courses, query, departmentCode, departmentCode); err != nil {
		return nil, fmt.Errorf("department courses: %w", err)
	}
	return courses, nil
}

// ListDepartments aggregates catalog course counts per department.
func (r *CourseRepository) ListDepartments(ctx context.Context, orderBy, sortDir string) ([]models.DepartmentSummary, error) {
	query := "SELECT CRSSUBJCD, DEPTNAME, COUNT(*) AS num_courses FROM courses" +
		" JOIN departments USING (CRSSUBJCD) GROUP BY DEPTNAME"
	order, err := orderClause(orderBy, sortDir, departmentOrderColumns)
	if err != nil {
		return nil, err
	}
	query += order

	var departments []models.DepartmentSummary
	if err := r.db.SelectContext(ctx, &departments, query); err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return departments, nil
}
