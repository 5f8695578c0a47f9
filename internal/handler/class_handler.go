package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gradeview/gradeview-api/internal/models"
	"github.com/gradeview/gradeview-api/internal/service"
	"github.com/gradeview/gradeview-api/pkg/response"
)

// ClassHandler serves graded-section endpoints.
type ClassHandler struct {
	classes *service.ClassService
}

// NewClassHandler constructs the class handler.
func NewClassHandler(classes *service.ClassService) *ClassHandler {
	return &ClassHandler{classes: classes}
}

// parseClassFilter maps the recognized query parameters onto a filter.
// Unparsable limits are ignored, imposing no cap.
func parseClassFilter(c *gin.Context) models.ClassFilter {
	limit, _ := strconv.Atoi(c.Query("limit"))
	return models.ClassFilter{
		Department:     c.Query("department"),
		DepartmentName: c.Query("department_name"),
		CourseNumber:   c.Query("course_number"),
		CourseTitle:    c.Query("course_title"),
		Instructor:     c.Query("instructor"),
		Season:         c.Query("season"),
		Year:           c.Query("year"),
		OrderBy:        c.Query("order_by"),
		Sort:           c.Query("sort"),
		Limit:          limit,
	}
}

// Detail returns the first matching section with its similar courses.
func (h *ClassHandler) Detail(c *gin.Context) {
	detail, err := h.classes.Detail(c.Request.Context(), parseClassFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail)
}

// List returns every matching section.
func (h *ClassHandler) List(c *gin.Context) {
	rows, err := h.classes.List(c.Request.Context(), parseClassFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}
