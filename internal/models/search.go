package models

// SearchHit is one ranked full-text hit. Every field is the indexed text
// with matching terms wrapped in <b> markers; CourseNumber is a string for
// that reason.
type SearchHit struct {
	SubjectCode  string `db:"CRSSUBJCD" json:"CRSSUBJCD"`
	CourseNumber string `db:"CRSNBR" json:"CRSNBR"`
	Title        string `db:"CRSTITLE" json:"CRSTITLE"`
	SectionTitle string `db:"CLASSTITLE" json:"CLASSTITLE"`
}
