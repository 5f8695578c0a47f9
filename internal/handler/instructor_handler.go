package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gradeview/gradeview-api/internal/service"
	"github.com/gradeview/gradeview-api/pkg/response"
)

// InstructorHandler serves instructor aggregate and search endpoints.
type InstructorHandler struct {
	instructors *service.InstructorService
}

// NewInstructorHandler constructs the instructor handler.
func NewInstructorHandler(instructors *service.InstructorService) *InstructorHandler {
	return &InstructorHandler{instructors: instructors}
}

// Stats returns summed aggregates for one instructor. compare=1 includes the
// raw per-letter sums alongside the derived rates.
func (h *InstructorHandler) Stats(c *gin.Context) {
	compare, _ := strconv.Atoi(c.Query("compare"))

	stats, err := h.instructors.Stats(c.Request.Context(), c.Param("name"), compare != 0)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}

// Search returns instructor names matching a letter or prefix. search=1
// matches any token start instead of anchoring to the name start.
func (h *InstructorHandler) Search(c *gin.Context) {
	search, _ := strconv.Atoi(c.Query("search"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	names, err := h.instructors.Search(c.Request.Context(), c.Param("letter"), search == 0, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, names)
}
