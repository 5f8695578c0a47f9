package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/gradeview/gradeview-api/internal/models"
	appErrors "github.com/gradeview/gradeview-api/pkg/errors"
)

type instructorStatsRepo interface {
	InstructorStats(ctx context.Context, name string, compare bool) (*models.InstructorStats, error)
}

type instructorSearchRepo interface {
	SearchInstructors(ctx context.Context, prefix string, anchored bool, limit int) ([]models.InstructorName, error)
}

// InstructorService answers instructor aggregate and name-search queries.
type InstructorService struct {
	stats  instructorStatsRepo
	search instructorSearchRepo
	logger *zap.Logger
}

// NewInstructorService constructs InstructorService.
func NewInstructorService(stats instructorStatsRepo, search instructorSearchRepo, logger *zap.Logger) *InstructorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstructorService{stats: stats, search: search, logger: logger}
}

// Stats returns summed grade aggregates for one instructor. An instructor
// whose every section fails the NR/registrations reconciliation has no
// analytic signal and is reported as not found, not as an empty aggregate.
func (s *InstructorService) Stats(ctx context.Context, name string, compare bool) (*models.InstructorStats, error) {
	stats, err := s.stats.InstructorStats(ctx, name, compare)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, appErrors.ErrNotFound
	}
	return stats, nil
}

// Search returns instructor names matching a prefix, anchored to the start
// of the name or to any token start.
func (s *InstructorService) Search(ctx context.Context, prefix string, anchored bool, limit int) ([]models.InstructorName, error) {
	names, err := s.search.SearchInstructors(ctx, prefix, anchored, limit)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []models.InstructorName{}
	}
	return names, nil
}
