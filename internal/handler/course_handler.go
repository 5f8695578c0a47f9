package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gradeview/gradeview-api/internal/service"
	appErrors "github.com/gradeview/gradeview-api/pkg/errors"
	"github.com/gradeview/gradeview-api/pkg/response"
)

// CourseHandler serves catalog endpoints.
type CourseHandler struct {
	courses *service.CourseService
}

// NewCourseHandler constructs the course handler.
func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// Info returns catalog info for one course; both parameters are required.
func (h *CourseHandler) Info(c *gin.Context) {
	department := c.Query("department")
	courseNumber := c.Query("course_number")
	if department == "" || courseNumber == "" {
		response.Error(c, appErrors.ErrBadRequest)
		return
	}

	course, err := h.courses.Info(c.Request.Context(), department, courseNumber)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

// List returns the grouped course listing.
func (h *CourseHandler) List(c *gin.Context) {
	groups, err := h.courses.Groups(c.Request.Context(), parseClassFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, groups)
}

// Department returns one department's courses with graded-section counts.
func (h *CourseHandler) Department(c *gin.Context) {
	courses, err := h.courses.Department(c.Request.Context(), c.Param("deptCode"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

// Departments returns the department index.
func (h *CourseHandler) Departments(c *gin.Context) {
	departments, err := h.courses.Departments(c.Request.Context(), c.Query("order_by"), c.Query("sort"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, departments)
}
