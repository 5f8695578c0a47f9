package service

import (
	"context"
	"regexp"

	"go.uber.org/zap"

	"github.com/gradeview/gradeview-api/internal/models"
	appErrors "github.com/gradeview/gradeview-api/pkg/errors"
)

type courseRepo interface {
	Find(ctx context.Context, department, courseNumber string) (*models.Course, error)
	DepartmentCourses(ctx context.Context, departmentCode string) ([]models.DepartmentCourse, error)
	ListDepartments(ctx context.Context, orderBy, sortDir string) ([]models.DepartmentSummary, error)
}

type courseGrouper interface {
	ListCourseGroups(ctx context.Context, filter models.ClassFilter) ([]models.CourseGroup, error)
}

// Department codes are validated before any query runs.
var departmentCodePattern = regexp.MustCompile(`^[A-Za-z]{2,4}$`)

// CourseService answers catalog queries: course info, grouped course
// listings, per-department course lists and the department index.
type CourseService struct {
	courses courseRepo
	groups  courseGrouper
	logger  *zap.Logger
}

// NewCourseService constructs CourseService.
func NewCourseService(courses courseRepo, groups courseGrouper, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{courses: courses, groups: groups, logger: logger}
}

// Info returns catalog info for one course.
func (s *CourseService) Info(ctx context.Context, department, courseNumber string) (*models.Course, error) {
	course, err := s.courses.Find(ctx, department, courseNumber)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, appErrors.ErrNotFound
	}
	return course, nil
}

// Groups returns the grouped course listing over graded sections.
func (s *CourseService) Groups(ctx context.Context, filter models.ClassFilter) ([]models.CourseGroup, error) {
	groups, err := s.groups.ListCourseGroups(ctx, filter)
	if err != nil {
		return nil, err
	}
	if groups == nil {
		groups = []models.CourseGroup{}
	}
	return groups, nil
}

// Department lists a department's catalog courses joined with graded-section
// counts. The code shape is checked up front so arbitrary input never
// reaches the query layer.
func (s *CourseService) Department(ctx context.Context, departmentCode string) ([]models.DepartmentCourse, error) {
	if !departmentCodePattern.MatchString(departmentCode) {
		return nil, appErrors.Validation("Invalid department")
	}

	courses, err := s.courses.DepartmentCourses(ctx, departmentCode)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, appErrors.ErrNotFound
	}
	return courses, nil
}

// Departments returns the department index with catalog course counts.
func (s *CourseService) Departments(ctx context.Context, orderBy, sortDir string) ([]models.DepartmentSummary, error) {
	departments, err := s.courses.ListDepartments(ctx, orderBy, sortDir)
	if err != nil {
		return nil, err
	}
	if departments == nil {
		departments = []models.DepartmentSummary{}
	}
	return departments, nil
}
