package models

// InstructorStats sums grade counts across every reconciled section an
// instructor taught. The per-letter sums are only selected in compare mode
// and stay nil (omitted from JSON) otherwise.
type InstructorStats struct {
	PrimaryInstructor string   `db:"PrimaryInstructor" json:"PrimaryInstructor"`
	DFWRate           *float64 `db:"dfw_rate" json:"dfw_rate"`
	AvgGPA            *float64 `db:"avg_gpa" json:"avg_gpa"`
	A                 *int     `db:"A" json:"A,omitempty"`
	B                 *int     `db:"B" json:"B,omitempty"`
	C                 *int     `db:"C" json:"C,omitempty"`
	D                 *int     `db:"D" json:"D,omitempty"`
	F                 *int     `db:"F" json:"F,omitempty"`
	W                 *int     `db:"W" json:"W,omitempty"`
}

// InstructorName is a single name hit from the instructor search index.
type InstructorName struct {
	PrimaryInstructor string `db:"PrimaryInstructor" json:"PrimaryInstructor"`
}
