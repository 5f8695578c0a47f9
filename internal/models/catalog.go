package models

// CourseMetadata is the structured form of a scraped catalog course block.
type CourseMetadata struct {
	CourseNumber int    `json:"CRSSUBJNBR"`
	SubjectCode  string `json:"CRSSUBJCD"`
	CreditHours  string `json:"CRSHOURS"`
	Title        string `json:"CRSTITLE"`
	Description  string `json:"CRSSUBJDESC"`
}
