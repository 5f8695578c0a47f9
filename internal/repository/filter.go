package repository

import (
	"fmt"
	"strings"

	"github.com/gradeview/gradeview-api/internal/models"
	appErrors "github.com/gradeview/gradeview-api/pkg/errors"
)

// classWhere renders the conjunctive predicate set of a ClassFilter as an
// " AND ..." suffix for a query that already contains "WHERE 1=1".
func classWhere(filter models.ClassFilter) (string, []interface{}) {
	var clause strings.Builder
	var args []interface{}

	if filter.Department != "" {
		clause.WriteString(" AND CRSSUBJCD = ?")
		args = append(args, filter.Department)
	}
	if filter.CourseNumber != "" {
		clause.WriteString(" AND CRSNBR = ?")
		args = append(args, filter.CourseNumber)
	}
	if filter.CourseTitle != "" {
		clause.WriteString(" AND CRSTITLE = ?")
		args = append(args, filter.CourseTitle)
	}
	if filter.Season != "" {
		clause.WriteString(" AND SEASON = ?")
		args = append(args, filter.Season)
	}
	if filter.Year != "" {
		clause.WriteString(" AND YEAR = ?")
		args = append(args, filter.Year)
	}
	if filter.DepartmentName != "" {
		clause.WriteString(" AND DEPTNAME LIKE ?")
		args = append(args, filter.DepartmentName)
	}
	if filter.Instructor != "" {
		clause.WriteString(" AND PrimaryInstructor LIKE ?")
		args = append(args, filter.Instructor)
	}

	return clause.String(), args
}

// orderClause validates order_by against an allow-list of sortable columns
// and renders the ORDER BY suffix. Caller input never reaches the SQL text
// unvalidated; unknown columns and directions fail before any query runs.
func orderClause(orderBy, sort string, allowed map[string]struct{}) (string, error) {
	if orderBy == "" {
		return "", nil
	}
	if _, ok := allowed[orderBy]; !ok {
		return "", appErrors.Validation(fmt.Sprintf("unknown order_by column %q", orderBy))
	}

	direction := "ASC"
	switch strings.ToLower(sort) {
	case "", "asc":
	case "desc":
		direction = "DESC"
	default:
		return "", appErrors.Validation("sort must be asc or desc")
	}

	return fmt.Sprintf(" ORDER BY %s %s", orderBy, direction), nil
}

// limitClause caps the result count. Non-positive limits mean unbounded.
func limitClause(limit int) string {
	if limit <= 0 {
		return ""
	}
	return fmt.Sprintf(" LIMIT %d", limit)
}

func allow(columns ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(columns))
	for _, column := range columns {
		set[column] = struct{}{}
	}
	return set
}
