package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/gradeview/gradeview-api/internal/models"
	appErrors "github.com/gradeview/gradeview-api/pkg/errors"
)

type sectionRepo interface {
	ListSections(ctx context.Context, filter models.ClassFilter) ([]models.ClassRow, error)
	FirstSection(ctx context.Context, filter models.ClassFilter) (*models.ClassSection, error)
	FindSimilar(ctx context.Context, departmentCode string, courseNumber int, excludeInstructor string) ([]models.SimilarCourse, error)
}

// ClassService answers graded-section queries: filtered listings and the
// single-class detail with its similar-course neighbors.
type ClassService struct {
	sections sectionRepo
	logger   *zap.Logger
}

// NewClassService constructs ClassService.
func NewClassService(sections sectionRepo, logger *zap.Logger) *ClassService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{sections: sections, logger: logger}
}

// List returns all graded sections matching the filter.
func (s *ClassService) List(ctx context.Context, filter models.ClassFilter) ([]models.ClassRow, error) {
	rows, err := s.sections.ListSections(ctx, filter)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.ClassRow{}
	}
	return rows, nil
}

// Detail returns the first section matching the filter plus up to three
// similar courses taught by other instructors. The two reads run
// sequentially against the store with no snapshot guarantee; the dataset is
// read-only so inconsistency between them is not observable in practice.
func (s *ClassService) Detail(ctx context.Context, filter models.ClassFilter) (*models.ClassDetail, error) {
	section, err := s.sections.FirstSection(ctx, filter)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, appErrors.ErrNotFound
	}

	similar, err := s.sections.FindSimilar(ctx, section.DepartmentCode, section.CourseNumber, section.PrimaryInstructor)
	if err != nil {
		return nil, err
	}
	if similar == nil {
		similar = []models.SimilarCourse{}
	}

	return &models.ClassDetail{ClassSection: *section, SimilarClasses: similar}, nil
}
