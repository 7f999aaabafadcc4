package api

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/expomadeinworld/preference-service/internal/models"
	"github.com/gin-gonic/gin"
)

// ListQuestions handles GET /questionsAndAnswers/:brandId and
// GET /questionsAndAnswers/:brandId/:locale.
func (h *Handler) ListQuestions(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	brandID := c.Param("brandId")
	locale := c.Param("locale")

	if brandID == "" {
		respondError(c, http.StatusBadRequest, "Brand ID is required")
		return
	}
	if !h.validBrandID(ctx, brandID) {
		respondError(c, http.StatusBadRequest, "Invalid brandId")
		return
	}

	if locale != "" {
		if !h.validLocale(ctx, locale) {
			respondError(c, http.StatusBadRequest, "Invalid locale")
			return
		}
		exists, err := h.store.QuestionExists(ctx, brandID, locale)
		if err != nil {
			log.Printf("Question existence probe failed: %v", err)
			respondErrorDetail(c, http.StatusInternalServerError, "Error fetching questions", err)
			return
		}
		if !exists {
			// Distinct shape from the other not-found responses.
			c.JSON(http.StatusNotFound, gin.H{"message": "Locale not found for the given brandId"})
			return
		}
	}

	records, err := h.store.FindQuestions(ctx, brandID, locale)
	if err != nil {
		log.Printf("Failed to fetch questions: %v", err)
		respondErrorDetail(c, http.StatusInternalServerError, "Error fetching questions", err)
		return
	}
	if len(records) == 0 {
		respondError(c, http.StatusNotFound, "No questions found for the given brandId")
		return
	}

	h.logEvent("listQuestions", brandID, locale, http.StatusOK, "questions fetched")
	respondSuccess(c, http.StatusOK, "Questions fetched successfully", records)
}

// UploadQuestions handles POST /questionsAndAnswers/upload. The extension and
// size limits are enforced by JSONUploadGuard before this runs; the body must
// be a single question object, not an array.
func (h *Handler) UploadQuestions(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respondErrorDetail(c, http.StatusInternalServerError, "Error uploading questions", err)
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		respondErrorDetail(c, http.StatusInternalServerError, "Error uploading questions", err)
		return
	}

	var q models.Question
	if err := json.Unmarshal(raw, &q); err != nil {
		respondErrorDetail(c, http.StatusInternalServerError, "Error uploading questions", err)
		return
	}

	// Checked one at a time; each absence has its own message.
	if strings.TrimSpace(q.BrandID) == "" {
		respondError(c, http.StatusBadRequest, "brandId is missing in the uploaded file")
		return
	}
	if strings.TrimSpace(q.QuestionID) == "" {
		respondError(c, http.StatusBadRequest, "questionId is missing in the uploaded file")
		return
	}
	if strings.TrimSpace(q.Locale) == "" {
		respondError(c, http.StatusBadRequest, "locale is missing in the uploaded file")
		return
	}
	if !h.validBrandID(ctx, q.BrandID) {
		respondError(c, http.StatusBadRequest, "Invalid Brand ID")
		return
	}
	if !h.validLocale(ctx, q.Locale) {
		respondError(c, http.StatusBadRequest, "Invalid Locale")
		return
	}

	saved, err := h.store.UpsertQuestion(ctx, q)
	if err != nil {
		log.Printf("Failed to upload questions: %v", err)
		respondErrorDetail(c, http.StatusInternalServerError, "Error uploading questions", err)
		return
	}

	h.logEvent("uploadQuestions", q.BrandID, q.Locale, http.StatusOK, "questions uploaded")
	respondSuccess(c, http.StatusOK, "Questions uploaded successfully", saved)
}

// DownloadQuestions handles GET /questionsAndAnswers/download. Every record
// in the collection is returned as a pretty-printed JSON attachment.
func (h *Handler) DownloadQuestions(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	if h.store == nil {
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}

	records, err := h.store.AllQuestions(ctx)
	if err != nil {
		log.Printf("Failed to download questions: %v", err)
		respondErrorDetail(c, http.StatusInternalServerError, "Error downloading questions", err)
		return
	}
	if len(records) == 0 {
		respondError(c, http.StatusNotFound, "No questions found")
		return
	}

	body, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		respondErrorDetail(c, http.StatusInternalServerError, "Error downloading questions", err)
		return
	}

	h.logEvent("downloadQuestions", "", "", http.StatusOK, "questions downloaded")
	c.Header("Content-Disposition", "attachment; filename=all_questions.json")
	c.Data(http.StatusOK, "application/json", body)
}

// DeleteQuestion handles DELETE /questionsAndAnswers/:brandId. A single
// matching document is removed even when several locales share the brandId.
func (h *Handler) DeleteQuestion(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	brandID := c.Param("brandId")
	// Emptiness and reference membership collapse into one check here.
	if strings.TrimSpace(brandID) == "" || !h.validBrandID(ctx, brandID) {
		respondError(c, http.StatusBadRequest, "Invalid brandId")
		return
	}

	deleted, err := h.store.DeleteQuestionByBrand(ctx, brandID)
	if err != nil {
		log.Printf("Failed to delete question: %v", err)
		respondErrorDetail(c, http.StatusInternalServerError, "Error deleting question", err)
		return
	}
	if deleted == nil {
		respondError(c, http.StatusNotFound, "No question found for the given brandId")
		return
	}

	h.logEvent("deleteQuestion", brandID, "", http.StatusOK, "question deleted")
	respondSuccess(c, http.StatusOK, "Question deleted successfully", deleted)
}
