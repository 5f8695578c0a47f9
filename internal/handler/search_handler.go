package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gradeview/gradeview-api/internal/service"
	"github.com/gradeview/gradeview-api/pkg/response"
)

// SearchHandler serves full-text course search.
type SearchHandler struct {
	search *service.SearchService
}

// NewSearchHandler constructs the search handler.
func NewSearchHandler(search *service.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// Courses returns up to ten highlighted hits for the query.
func (h *SearchHandler) Courses(c *gin.Context) {
	hits, err := h.search.Courses(c.Request.Context(), c.Param("query"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, hits)
}
