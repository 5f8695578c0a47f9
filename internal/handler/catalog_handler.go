package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gradeview/gradeview-api/internal/service"
	appErrors "github.com/gradeview/gradeview-api/pkg/errors"
	"github.com/gradeview/gradeview-api/pkg/response"
)

// CatalogHandler serves the catalog scrape proxy.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs the catalog handler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Proxy fetches and parses one catalog course block.
func (h *CatalogHandler) Proxy(c *gin.Context) {
	subjectCode := c.Query("CRSSUBJCD")
	courseNumber := c.Query("CRSNBR")
	if subjectCode == "" || courseNumber == "" {
		response.Error(c, appErrors.New(http.StatusBadRequest, "Malformed request"))
		return
	}

	metadata, err := h.catalog.Lookup(c.Request.Context(), subjectCode, courseNumber)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, metadata)
}
