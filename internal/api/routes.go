package api

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
)

// localePattern recognizes a locale-shaped path segment (e.g. "en-US").
var localePattern = regexp.MustCompile(`^[a-z]{2}-[A-Z]{2}$`)

// RegisterRoutes mounts the full API under the given router. It is called
// once per mount prefix; the prefixes expose identical behavior.
func RegisterRoutes(r gin.IRouter, h *Handler) {
	q := r.Group("/questionsAndAnswers")
	{
		q.GET("", h.questionsMissingBrandID)
		q.GET("/", h.questionsMissingBrandID)
		q.POST("/upload", JSONUploadGuard(), h.UploadQuestions)
		q.GET("/download", h.DownloadQuestions)
		q.GET("/:brandId", h.ListQuestions)
		q.GET("/:brandId/:locale", h.ListQuestions)
		q.DELETE("/:brandId", h.DeleteQuestion)
	}

	p := r.Group("/preferences")
	{
		p.POST("", h.CreatePreference)
		p.PUT("", h.UpdatePreference)
		p.GET("/:brandId/:locale", h.GetPreferences)
		p.DELETE("/:brandId/:locale", h.DeletePreference)

		// Fallbacks for malformed preference paths: a lone segment is
		// classified by shape to report which parameter is missing.
		p.GET("", h.preferencesMissingBoth)
		p.GET("/", h.preferencesMissingBoth)
		p.DELETE("", h.preferencesMissingBoth)
		p.DELETE("/", h.preferencesMissingBoth)
		p.GET("/:brandId", h.preferencesSingleSegment)
		p.DELETE("/:brandId", h.preferencesSingleSegment)
	}
}

func (h *Handler) questionsMissingBrandID(c *gin.Context) {
	respondError(c, http.StatusBadRequest, "Brand ID is required")
}

func (h *Handler) preferencesMissingBoth(c *gin.Context) {
	respondError(c, http.StatusBadRequest, "Brand ID and Locale are required")
}

// preferencesSingleSegment handles one path segment where two are expected. A
// locale-shaped segment means the brand id was dropped; anything else means
// the locale was.
func (h *Handler) preferencesSingleSegment(c *gin.Context) {
	if localePattern.MatchString(c.Param("brandId")) {
		respondError(c, http.StatusBadRequest, "Brand ID is required")
		return
	}
	respondError(c, http.StatusBadRequest, "Locale is required")
}
