package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// MaxUploadBytes is the ceiling for uploaded question files.
const MaxUploadBytes = 2 << 20

// JSONUploadGuard rejects uploads that are not .json files or exceed the size
// ceiling before the controller runs. Rejections answer with a plain-text 500,
// the same way the upload middleware in front of the original controller
// surfaced them.
func JSONUploadGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > MaxUploadBytes {
			c.String(http.StatusInternalServerError, "File too large")
			c.Abort()
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			// No file attached; the controller answers 400 for that.
			c.Next()
			return
		}
		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".json") {
			c.String(http.StatusInternalServerError, "Only .json files are allowed!")
			c.Abort()
			return
		}
		if fileHeader.Size > MaxUploadBytes {
			c.String(http.StatusInternalServerError, "File too large")
			c.Abort()
			return
		}

		c.Next()
	}
}
