package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/gradeview/gradeview-api/pkg/errors"
)

// JSON sends a success payload. Bodies are raw (no envelope) because the
// public front end consumes the dataset field names directly.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// Text sends a plaintext body.
func Text(c *gin.Context, status int, message string) {
	c.String(status, message)
}

// Error sends the common {code, msg} error body with a matching status.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Code, appErr)
}

// NotFoundBody is the catch-all body for unmatched routes.
func NotFoundBody(c *gin.Context) {
	c.JSON(http.StatusNotFound, appErrors.ErrNotFound)
}
