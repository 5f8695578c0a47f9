package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/gradeview/gradeview-api/internal/models"
)

type courseSearchRepo interface {
	SearchCourses(ctx context.Context, rawQuery string) ([]models.SearchHit, error)
}

// SearchService answers ranked full-text course search.
type SearchService struct {
	courses courseSearchRepo
	logger  *zap.Logger
}

// NewSearchService constructs SearchService.
func NewSearchService(courses courseSearchRepo, logger *zap.Logger) *SearchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchService{courses: courses, logger: logger}
}

// Courses returns up to ten highlighted hits, best match first.
func (s *SearchService) Courses(ctx context.Context, query string) ([]models.SearchHit, error) {
	hits, err := s.courses.SearchCourses(ctx, query)
	if err != nil {
		return nil, err
	}
	if hits == nil {
		hits = []models.SearchHit{}
	}
	return hits, nil
}
