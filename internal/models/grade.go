package models

// ClassRow is one graded section in a class listing, with its weighted GPA.
// AvgGPA is nil when a section has no letter grades at all (the SQL ROUND
// divides by zero and yields NULL).
type ClassRow struct {
	SubjectCode       string   `db:"CRSSUBJCD" json:"CRSSUBJCD"`
	CourseNumber      int      `db:"CRSNBR" json:"CRSNBR"`
	Title             string   `db:"CRSTITLE" json:"CRSTITLE"`
	DepartmentName    string   `db:"DEPTNAME" json:"DEPTNAME"`
	PrimaryInstructor string   `db:"PrimaryInstructor" json:"PrimaryInstructor"`
	Season            string   `db:"SEASON" json:"SEASON"`
	Year              int      `db:"YEAR" json:"YEAR"`
	AvgGPA            *float64 `db:"avg_gpa" json:"avg_gpa"`
}

// ClassSection is the detail projection of a graded section including the
// raw letter-grade counts.
type ClassSection struct {
	SubjectCode       string   `db:"CRSSUBJCD" json:"CRSSUBJCD"`
	CourseNumber      int      `db:"CRSNBR" json:"CRSNBR"`
	Title             string   `db:"CRSTITLE" json:"CRSTITLE"`
	DepartmentName    string   `db:"DEPTNAME" json:"DEPTNAME"`
	PrimaryInstructor string   `db:"PrimaryInstructor" json:"PrimaryInstructor"`
	DepartmentCode    string   `db:"DEPTCD" json:"DEPTCD"`
	A                 int      `db:"A" json:"A"`
	B                 int      `db:"B" json:"B"`
	C                 int      `db:"C" json:"C"`
	D                 int      `db:"D" json:"D"`
	F                 int      `db:"F" json:"F"`
	W                 int      `db:"W" json:"W"`
	Season            string   `db:"SEASON" json:"SEASON"`
	Year              int      `db:"YEAR" json:"YEAR"`
	AvgGPA            *float64 `db:"avg_gpa" json:"avg_gpa"`
}

// SimilarCourse is a neighbor hit: same department, course number at or above
// the reference, different instructor. ComputedID only exists to give the
// neighbor set a stable string ordering.
type SimilarCourse struct {
	CourseNumber      int      `db:"CRSNBR" json:"CRSNBR"`
	SubjectCode       string   `db:"CRSSUBJCD" json:"CRSSUBJCD"`
	Title             string   `db:"CRSTITLE" json:"CRSTITLE"`
	PrimaryInstructor string   `db:"PrimaryInstructor" json:"PrimaryInstructor"`
	Season            string   `db:"SEASON" json:"SEASON"`
	Year              int      `db:"YEAR" json:"YEAR"`
	AvgGPA            *float64 `db:"avg_gpa" json:"avg_gpa"`
	ComputedID        string   `db:"computed_id" json:"computed_id"`
}

// ClassDetail is the /class response body: the first matching section plus
// its similar-course neighbors.
type ClassDetail struct {
	ClassSection
	SimilarClasses []SimilarCourse `json:"similar_class"`
}
