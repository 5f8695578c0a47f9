package models

// ClassFilter is the request-scoped predicate set for grade queries. Empty
// fields impose no constraint; filters always compose conjunctively. Built
// once per request and never mutated after the query runs.
//
// Department, CourseNumber, CourseTitle, Season and Year match exactly.
// DepartmentName and Instructor are LIKE patterns passed through verbatim,
// so callers may use % and _ wildcards.
type ClassFilter struct {
	Department     string
	DepartmentName string
	CourseNumber   string
	CourseTitle    string
	Instructor     string
	Season         string
	Year           string

	OrderBy string
	Sort    string
	Limit   int
}
