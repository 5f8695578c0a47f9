package models

// Course is a row of the courses catalog table. Tags carry the dataset's
// original column names, which the public front end consumes verbatim.
type Course struct {
	CourseNumber int    `db:"CRSNBR" json:"CRSNBR"`
	SubjectCode  string `db:"CRSSUBJCD" json:"CRSSUBJCD"`
	CreditHours  string `db:"CRSHOURS" json:"CRSHOURS"`
	Title        string `db:"CRSTITLE" json:"CRSTITLE"`
	Description  string `db:"CRSSUBJDESC" json:"CRSSUBJDESC"`
}

// CourseGroup is one grouped row of the course listing: one course code with
// the number of graded sections behind it.
type CourseGroup struct {
	Code           string `db:"CODE" json:"CODE"`
	Title          string `db:"CRSTITLE" json:"CRSTITLE"`
	DepartmentName string `db:"DEPTNAME" json:"DEPTNAME"`
	SubjectCode    string `db:"CRSSUBJCD" json:"CRSSUBJCD"`
	CourseNumber   int    `db:"CRSNBR" json:"CRSNBR"`
	ClassCount     int    `db:"CLASSCOUNT" json:"CLASSCOUNT"`
}

// DepartmentCourse joins a catalog course with its graded-section count.
// ClassCount is nil for courses that never appear in the grade data.
type DepartmentCourse struct {
	SubjectCode  string `db:"CRSSUBJCD" json:"CRSSUBJCD"`
	CourseNumber int    `db:"CRSNBR" json:"CRSNBR"`
	Title        string `db:"CRSTITLE" json:"CRSTITLE"`
	Code         string `db:"CODE" json:"CODE"`
	ClassCount   *int   `db:"CLASSCOUNT" json:"CLASSCOUNT"`
}

// DepartmentSummary aggregates catalog size per department.
type DepartmentSummary struct {
	SubjectCode    string `db:"CRSSUBJCD" json:"CRSSUBJCD"`
	DepartmentName string `db:"DEPTNAME" json:"DEPTNAME"`
	NumCourses     int    `db:"num_courses" json:"num_courses"`
}
