// Package catalog turns the loosely formatted text of a scraped catalog
// course block into structured course metadata.
package catalog

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/gradeview/gradeview-api/internal/models"
)

var (
	// ErrMissingCourseCode means the first title segment did not start with
	// a course code such as "CS 201".
	ErrMissingCourseCode = errors.New("catalog: course code header not found")
	// ErrMalformedTitle means the title line had fewer than two segments and
	// carries no credit-hours descriptor to parse.
	ErrMalformedTitle = errors.New("catalog: malformed title line")
)

var courseCodePattern = regexp.MustCompile(`(?i)^[a-z]{2,4}\s\d{2,3}`)

// Parse extracts course metadata from a catalog title line and description.
//
// The title line is a ". "-delimited sequence: a course-code header first, a
// credit-hours descriptor last, and the human-readable title in between. The
// title may itself contain ". " only at segment boundaries; the source format
// has no escape mechanism, so a title containing the literal sequence cannot
// be represented (known limitation of the upstream format). The description
// is stored verbatim after trimming.
func Parse(titleLine, descriptionLine string) (models.CourseMetadata, error) {
	segments := strings.Split(titleLine, ". ")
	if len(segments) < 2 {
		return models.CourseMetadata{}, ErrMalformedTitle
	}

	code := courseCodePattern.FindString(segments[0])
	if code == "" {
		return models.CourseMetadata{}, ErrMissingCourseCode
	}

	hours := strings.TrimSpace(segments[len(segments)-1])
	hours = strings.TrimSpace(strings.ReplaceAll(hours, ".", ""))

	title := strings.TrimSpace(strings.Join(segments[1:len(segments)-1], ". "))

	parts := strings.Fields(code)
	number, err := strconv.Atoi(parts[1])
	if err != nil {
		return models.CourseMetadata{}, ErrMissingCourseCode
	}

	return models.CourseMetadata{
		CourseNumber: number,
		SubjectCode:  parts[0],
		CreditHours:  hours,
		Title:        title,
		Description:  strings.TrimSpace(descriptionLine),
	}, nil
}
