package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/gradeview/gradeview-api/internal/catalog"
	"github.com/gradeview/gradeview-api/internal/models"
	appErrors "github.com/gradeview/gradeview-api/pkg/errors"
)

type courseBlockFetcher interface {
	FetchCourseBlock(ctx context.Context, subjectCode, courseNumber string) (string, string, error)
}

// CatalogService proxies the upstream catalog: one fetch, one parse, no
// retries. Fetch and format failures both surface as upstream errors.
type CatalogService struct {
	fetcher courseBlockFetcher
	logger  *zap.Logger
}

// NewCatalogService constructs CatalogService.
func NewCatalogService(fetcher courseBlockFetcher, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{fetcher: fetcher, logger: logger}
}

// Lookup fetches and parses the catalog entry for one course.
func (s *CatalogService) Lookup(ctx context.Context, subjectCode, courseNumber string) (models.CourseMetadata, error) {
	titleLine, descriptionLine, err := s.fetcher.FetchCourseBlock(ctx, subjectCode, courseNumber)
	if err != nil {
		s.logger.Warn("catalog fetch failed",
			zap.String("subject", subjectCode),
			zap.String("number", courseNumber),
			zap.Error(err),
		)
		return models.CourseMetadata{}, appErrors.Upstream(err)
	}

	metadata, err := catalog.Parse(titleLine, descriptionLine)
	if err != nil {
		s.logger.Warn("catalog parse failed",
			zap.String("subject", subjectCode),
			zap.String("number", courseNumber),
			zap.Error(err),
		)
		return models.CourseMetadata{}, appErrors.Upstream(err)
	}

	return metadata, nil
}
