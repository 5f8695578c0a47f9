package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradeview/gradeview-api/internal/models"
	"github.com/gradeview/gradeview-api/internal/service"
)

type fakeSearchRepo struct {
	hits      []models.SearchHit
	lastQuery string
}

func (f *fakeSearchRepo) SearchCourses(_ context.Context, rawQuery string) ([]models.SearchHit, error) {
	f.lastQuery = rawQuery
	return f.hits, nil
}

func newSearchRouter(repo *fakeSearchRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSearchHandler(service.NewSearchService(repo, nil))
	r.GET("/api/search/:query", h.Courses)
	return r
}

func TestSearchHandlerCourses(t *testing.T) {
	repo := &fakeSearchRepo{hits: []models.SearchHit{{
		SubjectCode:  "CS",
		CourseNumber: "201",
		Title:        "Intro to <b>Programming</b> II",
	}}}
	r := newSearchRouter(repo)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/search/programming", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "programming", repo.lastQuery)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Intro to <b>Programming</b> II", body[0]["CRSTITLE"])
}

func TestSearchHandlerCoursesEmpty(t *testing.T) {
	r := newSearchRouter(&fakeSearchRepo{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/search/zzz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}
